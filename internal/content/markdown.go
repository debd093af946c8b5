package content

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"
)

var md = goldmark.New()

// Markdown is inline markdown text rendered to HTML when the document is
// decoded. Raw HTML in the source is dropped by the renderer.
type Markdown struct {
	Source string
	HTML   template.HTML
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *Markdown) UnmarshalYAML(value *yaml.Node) error {
	var src string
	if err := value.Decode(&src); err != nil {
		return err
	}
	out, err := RenderInline(src)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	m.Source = src
	m.HTML = out
	return nil
}

// RenderInline converts a single markdown paragraph to HTML without the
// surrounding <p> element.
func RenderInline(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	out := strings.TrimSpace(buf.String())
	if strings.HasPrefix(out, "<p>") && strings.HasSuffix(out, "</p>") && strings.Count(out, "<p>") == 1 {
		out = strings.TrimSuffix(strings.TrimPrefix(out, "<p>"), "</p>")
	}
	return template.HTML(out), nil
}
