package site

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"

	"github.com/karanbhatia-svg/portfolio/internal/content"
)

//go:embed templates/*.html
var templateFS embed.FS

// ErrUnknownSection is returned for a Section outside the enumeration.
var ErrUnknownSection = errors.New("unknown section")

// Templates parses the page and section templates.
func Templates() (*template.Template, error) {
	tmpl, err := template.New("site").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}

// Dispatcher renders exactly one section per call. It holds no state between
// calls, so rendering the same section twice yields the same bytes.
type Dispatcher struct {
	tmpl      *template.Template
	portfolio *content.Portfolio
}

// NewDispatcher checks that tmpl defines a template for every section.
func NewDispatcher(tmpl *template.Template, portfolio *content.Portfolio) (*Dispatcher, error) {
	for _, s := range Sections() {
		if tmpl.Lookup(templateName(s)) == nil {
			return nil, fmt.Errorf("missing template %q", templateName(s))
		}
	}
	return &Dispatcher{tmpl: tmpl, portfolio: portfolio}, nil
}

// view is the data every section template receives.
type view struct {
	Section Section
	Heading string
	Emoji   string
	Content any
}

// Render writes the markup for s and nothing else.
func (d *Dispatcher) Render(w io.Writer, s Section) error {
	p := d.portfolio
	switch s {
	case About:
		return d.execute(w, s, p.About)
	case Experience:
		return d.execute(w, s, p.Experience)
	case Skills:
		return d.execute(w, s, p.Skills)
	case Projects:
		return d.execute(w, s, p.Projects)
	case Certificates:
		return d.execute(w, s, p.Certificates)
	case Education:
		return d.execute(w, s, p.Education)
	}
	return fmt.Errorf("%w: %d", ErrUnknownSection, int(s))
}

func (d *Dispatcher) execute(w io.Writer, s Section, data any) error {
	v := view{Section: s, Heading: s.Heading(), Emoji: s.Emoji(), Content: data}
	if err := d.tmpl.ExecuteTemplate(w, templateName(s), v); err != nil {
		return fmt.Errorf("render %s: %w", s.Slug(), err)
	}
	return nil
}

func templateName(s Section) string {
	return "section/" + s.Slug()
}
