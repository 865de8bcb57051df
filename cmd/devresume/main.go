package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"

	"devresume/internal/bot"
	"devresume/internal/httpserver"
	"devresume/internal/preview"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configDir string
	rootCmd := &cobra.Command{
		Use:           "devresume",
		Short:         "Build a developer resume with a live preview and PDF export",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configDir, "config", "c", "./configs", "Directory holding config.yaml")

	open := func(cmd *cobra.Command) (*app, error) {
		return openApp(configDir, cmd.ErrOrStderr())
	}

	rootCmd.AddCommand(
		newServeCmd(open),
		newEditCmd(open),
		newPreviewCmd(open),
		newExportCmd(open),
	)
	return rootCmd
}

type opener func(cmd *cobra.Command) (*app, error)

func newServeCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP preview server and, when a token is set, the Telegram bot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := open(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			var wg sync.WaitGroup
			if a.cfg.BotEnabled() {
				botHandler, err := bot.NewHandler(a.cfg, a.sessions, a.exporter, a.log)
				if err != nil {
					return fmt.Errorf("failed to initialize Telegram bot handler: %w", err)
				}
				wg.Add(1)
				go func() {
					defer wg.Done()
					botHandler.Start(ctx)
				}()
			} else {
				a.log.Info("TELEGRAM_BOT_TOKEN not set, bot disabled")
			}

			srv := httpserver.New(a.local(), a.exporter, a.log)
			a.log.Info("DevResume is running. Press Ctrl+C to exit.")
			err = srv.Run(ctx, a.cfg.HTTPAddr)
			stop()
			wg.Wait()

			a.log.Info("DevResume shut down gracefully.")
			return err
		},
	}
}

func newEditCmd(open opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <command> [args...]",
		Short: "Apply one resume command, e.g. edit profile fullName \"Jane Doe\"",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := open(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			out, err := a.local().Exec(args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	// Everything after the command name belongs to the resume command.
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func newPreviewCmd(open opener) *cobra.Command {
	var (
		out       string
		zoom      int
		sheetOnly bool
	)
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render the live preview as HTML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := open(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			html, err := a.local().HTML(preview.Options{Zoom: preview.Zoom(zoom).Clamp(), Print: sheetOnly})
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), out, html)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write to this file instead of stdout")
	cmd.Flags().IntVarP(&zoom, "zoom", "z", int(preview.DefaultZoom), "Zoom in percent (50-200)")
	cmd.Flags().BoolVar(&sheetOnly, "print", false, "Render only the printable sheet")
	return cmd
}

func newExportCmd(open opener) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the resume to PDF with a headless browser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := open(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			pdf, err := a.local().PDF(ctx, a.exporter)
			if err != nil {
				return fmt.Errorf("export failed: %w", err)
			}
			a.log.WithField("out", out).Info("PDF written")
			return writeOutput(cmd.OutOrStdout(), out, pdf)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "resume.pdf", "Output file, - for stdout")
	return cmd
}

func writeOutput(stdout io.Writer, path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
