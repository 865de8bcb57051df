package bot

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/sirupsen/logrus"

	"devresume/internal/config"
	"devresume/internal/export"
	"devresume/internal/preview"
	"devresume/internal/session"
)

const welcomeMessage = "Welcome to DevResume! Build your resume one command at a time.\n" +
	"Try: profile fullName \"Alex Rivera\", then /preview or /pdf.\nSend /help for every command."

// Handler holds dependencies for the Telegram bot handlers.
type Handler struct {
	bot      *tgbot.Bot
	cfg      config.Config
	sessions *session.Registry
	exporter export.Exporter
	log      logrus.FieldLogger
}

// NewHandler creates a new bot handler instance.
func NewHandler(cfg config.Config, sessions *session.Registry, exporter export.Exporter, logger logrus.FieldLogger) (*Handler, error) {
	log := logger.WithField("component", "bot_handler")

	h := &Handler{
		cfg:      cfg,
		sessions: sessions,
		exporter: exporter,
		log:      log,
	}

	// Every text that is not a slash command is a resume command.
	b, err := tgbot.New(cfg.TelegramBotToken, tgbot.WithDefaultHandler(h.defaultHandler))
	if err != nil {
		log.WithError(err).Error("Failed to create Telegram bot instance")
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}
	h.bot = b

	h.registerHandlers()

	log.Info("Telegram bot handler initialized")
	return h, nil
}

// registerHandlers sets up the slash command handlers.
func (h *Handler) registerHandlers() {
	h.bot.RegisterHandler(tgbot.HandlerTypeMessageText, "/start", tgbot.MatchTypeExact, h.startHandler)
	h.bot.RegisterHandler(tgbot.HandlerTypeMessageText, "/help", tgbot.MatchTypeExact, h.helpHandler)
	h.bot.RegisterHandler(tgbot.HandlerTypeMessageText, "/preview", tgbot.MatchTypeExact, h.previewHandler)
	h.bot.RegisterHandler(tgbot.HandlerTypeMessageText, "/pdf", tgbot.MatchTypeExact, h.pdfHandler)
	h.log.Info("Registered /start, /help, /preview and /pdf handlers")
}

// Start begins polling for updates from Telegram.
// This function blocks until the context is cancelled.
func (h *Handler) Start(ctx context.Context) {
	h.log.Info("Starting Telegram bot polling...")
	h.bot.Start(ctx)
	h.log.Info("Telegram bot polling stopped.")
}

// Namespace returns the store namespace of a chat.
func Namespace(chatID int64) string {
	return fmt.Sprintf("chat:%d:", chatID)
}

func (h *Handler) session(update *models.Update) *session.Session {
	return h.sessions.Get(Namespace(update.Message.Chat.ID))
}

func (h *Handler) reply(ctx context.Context, b *tgbot.Bot, update *models.Update, text string) {
	_, err := b.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text:   text,
	})
	if err != nil {
		h.log.WithError(err).WithField("chat_id", update.Message.Chat.ID).Error("Failed to send message")
	}
}

func (h *Handler) sendFile(ctx context.Context, b *tgbot.Bot, update *models.Update, name string, data []byte) error {
	_, err := b.SendDocument(ctx, &tgbot.SendDocumentParams{
		ChatID:   update.Message.Chat.ID,
		Document: &models.InputFileUpload{Filename: name, Data: bytes.NewReader(data)},
	})
	return err
}

// startHandler handles the /start command.
func (h *Handler) startHandler(ctx context.Context, b *tgbot.Bot, update *models.Update) {
	h.log.WithFields(logrus.Fields{
		"chat_id": update.Message.Chat.ID,
		"command": "/start",
	}).Info("Received /start command")
	h.reply(ctx, b, update, welcomeMessage)
}

func (h *Handler) helpHandler(ctx context.Context, b *tgbot.Bot, update *models.Update) {
	text, _ := h.session(update).Exec([]string{"help"})
	h.reply(ctx, b, update, text)
}

// previewHandler sends the live preview as an HTML file.
func (h *Handler) previewHandler(ctx context.Context, b *tgbot.Bot, update *models.Update) {
	log := h.log.WithField("chat_id", update.Message.Chat.ID)
	html, err := h.session(update).HTML(preview.Options{})
	if err != nil {
		log.WithError(err).Error("Failed to render preview")
		h.reply(ctx, b, update, "Could not render the preview.")
		return
	}
	if err := h.sendFile(ctx, b, update, "resume-preview.html", html); err != nil {
		log.WithError(err).Error("Failed to send preview")
	}
}

// pdfHandler exports the resume and sends it back. Export failures are
// reported to the user since there is no fallback.
func (h *Handler) pdfHandler(ctx context.Context, b *tgbot.Bot, update *models.Update) {
	log := h.log.WithField("chat_id", update.Message.Chat.ID)
	if h.exporter == nil {
		h.reply(ctx, b, update, "PDF export is not configured.")
		return
	}
	pdf, err := h.session(update).PDF(ctx, h.exporter)
	if err != nil {
		log.WithError(err).Error("PDF export failed")
		h.reply(ctx, b, update, "Export failed: "+exportMessage(err))
		return
	}
	if err := h.sendFile(ctx, b, update, "resume.pdf", pdf); err != nil {
		log.WithError(err).Error("Failed to send PDF")
	}
}

func exportMessage(err error) string {
	switch {
	case errors.Is(err, export.ErrPreviewNotMounted):
		return "the resume preview is not available."
	case errors.Is(err, export.ErrBrowserNotFound):
		return "no browser is installed on the server."
	}
	return "please try again later."
}

// defaultHandler treats any other text as a resume command.
func (h *Handler) defaultHandler(ctx context.Context, b *tgbot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}
	log := h.log.WithFields(logrus.Fields{
		"chat_id": update.Message.Chat.ID,
		"text":    update.Message.Text,
	})
	log.Debug("Received resume command")

	text := strings.TrimPrefix(update.Message.Text, "/")
	out, err := h.session(update).ExecLine(text)
	if err != nil {
		log.WithError(err).Debug("Command rejected")
		h.reply(ctx, b, update, "Error: "+err.Error())
		return
	}
	h.reply(ctx, b, update, out)
}
