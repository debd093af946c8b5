// Package server exposes the portfolio over HTTP with gin.
package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/karanbhatia-svg/portfolio/internal/config"
	"github.com/karanbhatia-svg/portfolio/internal/content"
	"github.com/karanbhatia-svg/portfolio/internal/logger"
	"github.com/karanbhatia-svg/portfolio/internal/resume"
	"github.com/karanbhatia-svg/portfolio/internal/site"
)

//go:embed static
var staticFS embed.FS

// Server serves the portfolio page, section fragments and the resume download.
type Server struct {
	cfg        config.Config
	engine     *gin.Engine
	tmpl       *template.Template
	portfolio  *content.Portfolio
	dispatcher *site.Dispatcher
	locator    *resume.Locator
	log        zerolog.Logger
	salt       string
}

// Option customises a Server.
type Option func(*Server)

// WithResumeFS replaces the directory resume candidates are resolved in.
func WithResumeFS(fsys fs.FS) Option {
	return func(s *Server) {
		s.locator = resume.NewLocator(fsys, s.cfg.ResumeCandidates)
	}
}

// WithLogger sets the logger used for access and error logs.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Server) {
		s.log = l
	}
}

// New builds the gin engine. gin's mode is process-wide and set from cfg.
func New(cfg config.Config, portfolio *content.Portfolio, opts ...Option) (*Server, error) {
	tmpl, err := site.Templates()
	if err != nil {
		return nil, err
	}
	dispatcher, err := site.NewDispatcher(tmpl, portfolio)
	if err != nil {
		return nil, err
	}
	salt, err := newSalt()
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:        cfg,
		portfolio:  portfolio,
		dispatcher: dispatcher,
		tmpl:       tmpl,
		locator:    resume.NewLocator(os.DirFS(cfg.ResumeRoot), cfg.ResumeCandidates),
		log:        logger.Logger,
		salt:       salt,
	}
	for _, opt := range opts {
		opt(s)
	}

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), requestID(s.log), accessLog(s.salt))
	r.SetHTMLTemplate(tmpl)

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("static assets: %w", err)
	}
	r.StaticFS("/static", http.FS(static))
	s.engine = r
	s.routes()

	return s, nil
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on cfg.Addr until ctx is cancelled, then shuts down within
// cfg.ShutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", srv.Addr).Strs("resume_candidates", s.locator.Candidates()).Msg("portfolio listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	s.log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen: %w", err)
	}
	return nil
}
