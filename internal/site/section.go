// Package site renders the portfolio sections behind the sidebar navigation.
package site

import (
	"fmt"
	"strings"
)

// Section is one navigable area of the page.
type Section int

const (
	About Section = iota
	Experience
	Skills
	Projects
	Certificates
	Education
)

// DefaultSection is selected when nothing else is.
const DefaultSection = About

var sectionMeta = [...]struct {
	label   string
	heading string
	emoji   string
}{
	About:        {"About", "About", "👋"},
	Experience:   {"Experience", "Experience", "💼"},
	Skills:       {"Skills", "Skills", "🧰"},
	Projects:     {"Projects", "Highlighted Projects", "🚀"},
	Certificates: {"Certificates", "Certificates", "📜"},
	Education:    {"Education", "Education", "🎓"},
}

// Sections returns every section in navigation order.
func Sections() []Section {
	return []Section{About, Experience, Skills, Projects, Certificates, Education}
}

func (s Section) Valid() bool {
	return s >= About && int(s) < len(sectionMeta)
}

// String is the navigation label.
func (s Section) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Section(%d)", int(s))
	}
	return sectionMeta[s].label
}

// Slug is the lower-case form used in URLs and template names.
func (s Section) Slug() string {
	return strings.ToLower(s.String())
}

// Heading is the title shown above the section body.
func (s Section) Heading() string {
	if !s.Valid() {
		return s.String()
	}
	return sectionMeta[s].heading
}

func (s Section) Emoji() string {
	if !s.Valid() {
		return ""
	}
	return sectionMeta[s].emoji
}

// ParseSection matches v against section labels, ignoring case and
// surrounding space.
func ParseSection(v string) (Section, bool) {
	v = strings.TrimSpace(v)
	for _, s := range Sections() {
		if strings.EqualFold(v, s.String()) {
			return s, true
		}
	}
	return DefaultSection, false
}

// NavItem is one entry of the sidebar radio group.
type NavItem struct {
	Section  Section
	Label    string
	Slug     string
	Selected bool
}

// Nav lists the sidebar entries with selected marked.
func Nav(selected Section) []NavItem {
	items := make([]NavItem, 0, len(sectionMeta))
	for _, s := range Sections() {
		items = append(items, NavItem{
			Section:  s,
			Label:    s.String(),
			Slug:     s.Slug(),
			Selected: s == selected,
		})
	}
	return items
}
