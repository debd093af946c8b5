package server

import (
	"bytes"
	"html/template"
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/karanbhatia-svg/portfolio/internal/content"
	"github.com/karanbhatia-svg/portfolio/internal/logger"
	"github.com/karanbhatia-svg/portfolio/internal/resume"
	"github.com/karanbhatia-svg/portfolio/internal/site"
)

func (s *Server) routes() {
	r := s.engine

	// Home page route
	r.GET("/", s.handlePage)

	// HTMX section fragments
	r.GET("/sections/:section", s.handleSection)

	r.GET("/resume", s.handleResume)

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
}

type resumeView struct {
	Name  string
	Pages int
}

// navView feeds the "nav" template. OOB marks the copy sent alongside a
// section fragment so htmx swaps the selected marker out of band.
type navView struct {
	Items []site.NavItem
	OOB   bool
}

type pageView struct {
	Profile content.Profile
	KPIs    []content.KPI
	Nav     navView
	Resume  *resumeView
	Section template.HTML
	Footer  string
}

func (s *Server) handlePage(c *gin.Context) {
	section, ok := site.ParseSection(c.Query("section"))
	if !ok && c.Query("section") != "" {
		logger.Ctx(c.Request.Context()).Debug().Str("section", c.Query("section")).Msg("unknown section, showing default")
	}

	var buf bytes.Buffer
	if err := s.dispatcher.Render(&buf, section); err != nil {
		s.renderError(c, err)
		return
	}

	view := pageView{
		Profile: s.portfolio.Profile,
		KPIs:    s.portfolio.KPIs,
		Nav:     navView{Items: site.Nav(section)},
		Section: template.HTML(buf.String()),
		Footer:  s.portfolio.Footer,
	}
	if f, found := s.locateResume(c); found {
		view.Resume = &resumeView{Name: f.Name, Pages: resume.Inspect(f).Pages}
	}
	c.HTML(http.StatusOK, "page", view)
}

func (s *Server) handleSection(c *gin.Context) {
	section, ok := site.ParseSection(c.Param("section"))
	if !ok {
		c.String(http.StatusNotFound, "unknown section")
		return
	}

	var buf bytes.Buffer
	if err := s.dispatcher.Render(&buf, section); err != nil {
		s.renderError(c, err)
		return
	}
	if c.GetHeader("HX-Request") == "true" {
		if err := s.tmpl.ExecuteTemplate(&buf, "nav", navView{Items: site.Nav(section), OOB: true}); err != nil {
			s.renderError(c, err)
			return
		}
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (s *Server) handleResume(c *gin.Context) {
	f, found := s.locateResume(c)
	if !found {
		c.String(http.StatusNotFound, "resume not available")
		return
	}

	if info := resume.Inspect(f); !info.IsPDF {
		logger.Ctx(c.Request.Context()).Warn().Str("file", f.Path).Str("mime", info.MIME).Msg("resume does not look like a PDF")
	}
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": f.Name}))
	c.Data(http.StatusOK, resume.MIMEType, f.Data)
}

// locateResume checks the candidates for this request. Read failures are
// logged and treated as absence so the page still renders.
func (s *Server) locateResume(c *gin.Context) (resume.File, bool) {
	f, found, err := s.locator.Locate()
	if err != nil {
		logger.Ctx(c.Request.Context()).Warn().Err(err).Msg("resume unavailable")
		return resume.File{}, false
	}
	return f, found
}

func (s *Server) renderError(c *gin.Context, err error) {
	logger.Ctx(c.Request.Context()).Error().Err(err).Msg("render failed")
	c.String(http.StatusInternalServerError, "internal error")
}
