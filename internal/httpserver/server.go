// Package httpserver serves the live preview, the command surface and PDF
// export over HTTP for one document namespace.
package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"devresume/internal/command"
	"devresume/internal/domain"
	"devresume/internal/export"
	"devresume/internal/preview"
	"devresume/internal/section"
	"devresume/internal/session"
)

// Server wires a session to gin routes.
type Server struct {
	sess     *session.Session
	exporter export.Exporter
	log      logrus.FieldLogger
	engine   *gin.Engine
}

// New builds the server and registers its routes. exporter may be nil, in
// which case PDF export answers 503.
func New(sess *session.Session, exporter export.Exporter, logger logrus.FieldLogger) *Server {
	s := &Server{
		sess:     sess,
		exporter: exporter,
		log:      logger.WithField("component", "http"),
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), s.logging())
	s.engine = engine
	s.registerRoutes()
	return s
}

// Handler exposes the gin engine.
func (s *Server) Handler() http.Handler { return s.engine }

func (s *Server) registerRoutes() {
	s.engine.GET("/", func(c *gin.Context) { c.Redirect(http.StatusFound, "/preview") })
	s.engine.GET("/preview", s.previewPage)
	s.engine.GET("/export.pdf", s.exportPDF)

	api := s.engine.Group("/api")
	api.GET("/document", s.document)
	api.GET("/sections/:name", s.sectionView)
	api.POST("/commands", s.runCommand)
	api.POST("/theme/toggle", s.toggleTheme)
}

// Run listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.WithField("addr", addr).Info("HTTP server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.log.Info("Shutting down HTTP server...")
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.WithFields(logrus.Fields{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status":      c.Writer.Status(),
			"duration_ms": float64(time.Since(start).Microseconds()) / 1000.0,
		}).Debug("request.complete")
	}
}

type errorBody struct {
	Error string `json:"error"`
}

func (s *Server) fail(c *gin.Context, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.log.WithError(err).WithField("path", c.Request.URL.Path).Error("Request failed")
	}
	c.AbortWithStatusJSON(status, errorBody{Error: err.Error()})
}

// statusFor maps command errors onto HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, command.ErrUsage):
		return http.StatusBadRequest
	case errors.Is(err, section.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, command.ErrRejected),
		errors.Is(err, section.ErrUnknownField),
		errors.Is(err, section.ErrFieldDisabled),
		errors.Is(err, section.ErrBlank):
		return http.StatusUnprocessableEntity
	case errors.Is(err, export.ErrPreviewNotMounted):
		return http.StatusConflict
	case errors.Is(err, export.ErrBrowserNotFound):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func (s *Server) previewPage(c *gin.Context) {
	var opts preview.Options
	if z := c.Query("zoom"); z != "" {
		n, err := strconv.Atoi(z)
		if err != nil {
			s.fail(c, http.StatusBadRequest, errors.New("zoom must be a percentage"))
			return
		}
		opts.Zoom = preview.Zoom(n).Clamp()
	}
	if t := c.Query("theme"); t != "" {
		theme, ok := domain.ParseTheme(t)
		if !ok {
			s.fail(c, http.StatusBadRequest, errors.New("theme must be dark or light"))
			return
		}
		opts.Theme = theme
	}

	html, err := s.sess.HTML(opts)
	if err != nil {
		s.fail(c, http.StatusInternalServerError, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}

func (s *Server) document(c *gin.Context) {
	c.JSON(http.StatusOK, s.sess.Document())
}

func (s *Server) sectionView(c *gin.Context) {
	v, err := s.sess.View(c.Param("name"))
	if err != nil {
		s.fail(c, http.StatusNotFound, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

type commandRequest struct {
	Args []string `json:"args"`
	Line string   `json:"line"`
}

type commandResponse struct {
	Output string `json:"output"`
}

// runCommand accepts either pre-split args or a single command line.
func (s *Server) runCommand(c *gin.Context) {
	var req commandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return
	}

	var (
		out string
		err error
	)
	switch {
	case len(req.Args) > 0:
		out, err = s.sess.Exec(req.Args)
	case req.Line != "":
		out, err = s.sess.ExecLine(req.Line)
	default:
		s.fail(c, http.StatusBadRequest, errors.New("args or line is required"))
		return
	}
	if err != nil {
		s.fail(c, statusFor(err), err)
		return
	}
	c.JSON(http.StatusOK, commandResponse{Output: out})
}

func (s *Server) toggleTheme(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"theme": s.sess.ToggleTheme()})
}

func (s *Server) exportPDF(c *gin.Context) {
	if s.exporter == nil {
		s.fail(c, http.StatusServiceUnavailable, errors.New("PDF export is not configured"))
		return
	}
	pdf, err := s.sess.PDF(c.Request.Context(), s.exporter)
	if err != nil {
		s.fail(c, statusFor(err), err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="resume.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
