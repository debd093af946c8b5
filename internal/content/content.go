// Package content holds the static portfolio document shown by the site.
//
// The document is YAML, embedded at build time and parsed once at startup.
// A Portfolio is never mutated after Parse returns.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed portfolio.yaml
var defaultDocument []byte

// Portfolio is the whole site content.
type Portfolio struct {
	Profile      Profile        `yaml:"profile"`
	KPIs         []KPI          `yaml:"kpis"`
	About        About          `yaml:"about"`
	Experience   []Role         `yaml:"experience"`
	Skills       []SkillGroup   `yaml:"skills"`
	Projects     []ProjectEntry `yaml:"projects"`
	Certificates []Credential   `yaml:"certificates"`
	Education    []Degree       `yaml:"education"`
	Footer       string         `yaml:"footer"`
}

type Profile struct {
	Name     string `yaml:"name"`
	Title    string `yaml:"title"`
	Headline string `yaml:"headline"`
	Summary  string `yaml:"summary"`
	Location string `yaml:"location"`
	Contacts []Link `yaml:"contacts"`
}

// KPI is one quick-stat card in the header.
type KPI struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

type About struct {
	Text   Markdown `yaml:"text"`
	Badges []string `yaml:"badges"`
}

type Role struct {
	Title   string     `yaml:"title"`
	Org     string     `yaml:"org"`
	Period  string     `yaml:"period"`
	Bullets []Markdown `yaml:"bullets"`
}

type SkillGroup struct {
	Label  string   `yaml:"label"`
	Badges []string `yaml:"badges"`
}

// ProjectEntry is a highlighted project. Stack and Links keep document order.
type ProjectEntry struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Stack       []string `yaml:"stack"`
	Links       []Link   `yaml:"links"`
}

type Credential struct {
	Name   string `yaml:"name"`
	Detail string `yaml:"detail"`
}

type Degree struct {
	Degree      string `yaml:"degree"`
	Institution string `yaml:"institution"`
	Period      string `yaml:"period"`
}

// Link is an outbound reference: a web URL, mailto: or tel:. URLs are
// rendered as written and never fetched.
type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// Href marks the URL as trusted so html/template keeps tel: links intact.
func (l Link) Href() template.URL {
	return template.URL(l.URL)
}

// External reports whether the link leaves the site in a new tab.
func (l Link) External() bool {
	return strings.HasPrefix(l.URL, "http://") || strings.HasPrefix(l.URL, "https://")
}

// Default parses the embedded document.
func Default() (*Portfolio, error) {
	return Parse(defaultDocument)
}

// Load reads the document at path, or the embedded one when path is empty.
func Load(path string) (*Portfolio, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Parse decodes and validates a YAML document. Unknown keys are rejected.
func Parse(data []byte) (*Portfolio, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var p Portfolio
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks the fields every page render depends on.
func (p *Portfolio) Validate() error {
	var errs []error
	if strings.TrimSpace(p.Profile.Name) == "" {
		errs = append(errs, errors.New("profile.name is required"))
	}
	for i, l := range p.Profile.Contacts {
		if l.URL == "" {
			errs = append(errs, fmt.Errorf("profile.contacts[%d]: url is required", i))
		}
	}
	for i, proj := range p.Projects {
		if strings.TrimSpace(proj.Name) == "" {
			errs = append(errs, fmt.Errorf("projects[%d]: name is required", i))
		}
		for j, l := range proj.Links {
			if l.Label == "" || l.URL == "" {
				errs = append(errs, fmt.Errorf("projects[%d].links[%d]: label and url are required", i, j))
			}
		}
	}
	return errors.Join(errs...)
}
