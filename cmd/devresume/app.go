package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"devresume/internal/config"
	"devresume/internal/domain"
	"devresume/internal/export"
	"devresume/internal/session"
	"devresume/internal/storage"
)

// app bundles the components every subcommand needs.
type app struct {
	cfg      config.Config
	log      *logrus.Logger
	kv       *storage.BadgerKV
	sessions *session.Registry
	exporter *export.RodExporter
}

func newLogger(level string, out io.Writer) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(out)
	if level == "" {
		level = "info"
	}
	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	log.SetLevel(lvl)
	return log, nil
}

// openApp loads configuration and opens the database. The caller must call
// close.
func openApp(configDir string, logOut io.Writer) (*app, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, fmt.Errorf("error loading configuration: %w", err)
	}

	log, err := newLogger(cfg.LogLevel, logOut)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"badgerdb_path": cfg.BadgerDBPath,
		"http_addr":     cfg.HTTPAddr,
		"bot_enabled":   cfg.BotEnabled(),
	}).Info("Configuration loaded successfully")

	kv, err := storage.NewBadgerKV(cfg.BadgerDBPath, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	systemTheme := func() domain.Theme { return domain.SystemTheme(cfg.SystemTheme) }
	return &app{
		cfg:      cfg,
		log:      log,
		kv:       kv,
		sessions: session.NewRegistry(kv, systemTheme, log),
		exporter: export.NewRodExporter(cfg.BrowserPath, cfg.ExportTimeout, log),
	}, nil
}

// local returns the session of the configured store namespace.
func (a *app) local() *session.Session {
	return a.sessions.Get(a.cfg.StoreNamespace)
}

func (a *app) close() {
	a.log.Info("Closing database...")
	if err := a.kv.Close(); err != nil {
		a.log.WithError(err).Error("Error closing database")
	}
}
