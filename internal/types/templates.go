// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// DefaultTemplate is used when no template has been chosen or a snapshot carries none.
const DefaultTemplate = "modern"

// TemplateColors is the palette applied to the preview.
type TemplateColors struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
}

// Template is a visual styling choice for the preview and PDF export.
type Template struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Colors TemplateColors `json:"colors"`
}

// Templates lists the available templates in display order.
var Templates = []Template{
	{ID: "modern", Name: "Modern", Colors: TemplateColors{Primary: "#667eea", Secondary: "#764ba2", Accent: "#f093fb"}},
	{ID: "professional", Name: "Professional", Colors: TemplateColors{Primary: "#2c3e50", Secondary: "#34495e", Accent: "#3498db"}},
	{ID: "creative", Name: "Creative", Colors: TemplateColors{Primary: "#ff6b6b", Secondary: "#ffa726", Accent: "#4ecdc4"}},
	{ID: "minimal", Name: "Minimal", Colors: TemplateColors{Primary: "#2d3436", Secondary: "#636e72", Accent: "#00b894"}},
}

// LookupTemplate finds a template by id.
func LookupTemplate(id string) (Template, bool) {
	for _, t := range Templates {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}
