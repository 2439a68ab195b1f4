package rendering

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/types"
)

func previewDoc() types.ResumeDocument {
	doc := types.NewResumeDocument()
	doc.PersonalInfo = types.PersonalInfo{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@x.com",
		Address:   "Berlin",
		LinkedIn:  "https://linkedin.com/in/jane",
		Title:     "Staff Engineer",
	}
	doc.Summary = "Builds <reliable> systems."
	doc.Experience = append(doc.Experience, types.ExperienceEntry{
		ID: "e1", Company: "Acme", Position: "Engineer", StartDate: "2020-01", Current: true,
		Description: "Owned the storage layer.", Achievements: []string{"Cut costs 30%", " "},
	})
	doc.Education = append(doc.Education, types.EducationEntry{
		ID: "ed1", Institution: "MIT", Degree: "BSc", Field: "CS", EndDate: "2018-05", GPA: "3.9",
	})
	doc.Skills = append(doc.Skills, "Go", "SQL")
	doc.Projects = append(doc.Projects, types.ProjectEntry{
		ID: "p1", Name: "kv", Link: "https://github.com/jane/kv", Technologies: []string{"Go", "Raft"},
	})
	return doc
}

func parse(t *testing.T, html string) *goquery.Document {
	t.Helper()
	d, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return d
}

func TestRenderPreview(t *testing.T) {
	html, err := RenderPreview(previewDoc(), "professional")
	require.NoError(t, err)

	d := parse(t, html)
	root := d.Find("#" + PreviewElementID)
	require.Equal(t, 1, root.Length())

	assert.Equal(t, "Jane Doe", root.Find("h1").Text())
	assert.Equal(t, "Staff Engineer", root.Find("h2").Text())
	assert.Equal(t, "jane@x.com | Berlin | linkedin.com/in/jane", root.Find(".contact-info").Text())
	assert.Equal(t, "Builds <reliable> systems.", root.Find(".section-content p").First().Text())
	assert.Equal(t, "Jan 2020 - Present", root.Find(".item-right").First().Text())
	assert.Equal(t, 1, root.Find("li").Length())
	assert.Equal(t, "Go | SQL", root.Find(".skills").Text())
	assert.Equal(t, "github.com/jane/kv", root.Find(".project-link").Text())
	assert.Contains(t, root.Find(".item-subtitle").First().Text(), "GPA: 3.9")

	assert.True(t, d.Find("body").HasClass("template-professional"))
	assert.Contains(t, html, "#2c3e50")
	assert.NotContains(t, html, "<reliable>")
}

func TestRenderPreview_EmptySectionsOmitted(t *testing.T) {
	html, err := RenderPreview(types.NewResumeDocument(), "")
	require.NoError(t, err)

	d := parse(t, html)
	assert.Equal(t, 1, d.Find("#"+PreviewElementID).Length())
	assert.Equal(t, 0, d.Find("section").Length())
	assert.Equal(t, 0, d.Find(".contact-info").Length())
	assert.True(t, d.Find("body").HasClass("template-"+types.DefaultTemplate))
}

func TestRenderPreview_UnknownTemplate(t *testing.T) {
	_, err := RenderPreview(previewDoc(), "baroque")
	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Contains(t, err.Error(), "baroque")
}

func TestRenderPreviewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.html")
	require.NoError(t, os.WriteFile(path, []byte(`<div id="resume-preview">{{.Name}} / {{join .Skills ", "}}</div>`), 0o644))

	html, err := RenderPreviewFile(previewDoc(), "minimal", path)
	require.NoError(t, err)
	assert.Equal(t, `<div id="resume-preview">Jane Doe / Go, SQL</div>`, html)
}

func TestRenderPreviewFile_NotFound(t *testing.T) {
	_, err := RenderPreviewFile(previewDoc(), "", "/nonexistent/preview.html")
	var templateErr *TemplateError
	require.ErrorAs(t, err, &templateErr)
	assert.Contains(t, err.Error(), "template file not found")
}

func TestRenderPreviewFile_InvalidSyntax(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.html")
	require.NoError(t, os.WriteFile(path, []byte(`<div>{{.Name{{}}</div>`), 0o644))

	_, err := RenderPreviewFile(previewDoc(), "", path)
	var templateErr *TemplateError
	require.ErrorAs(t, err, &templateErr)
	assert.Contains(t, err.Error(), "failed to parse template")
}

func TestDisplayURL(t *testing.T) {
	assert.Equal(t, "jane.dev", DisplayURL("https://jane.dev"))
	assert.Equal(t, "http://jane.dev", DisplayURL("http://jane.dev"))
	assert.Equal(t, "", DisplayURL(""))
}

func TestErrors_Unwrap(t *testing.T) {
	cause := os.ErrNotExist
	assert.ErrorIs(t, &TemplateError{Message: "m", Cause: cause}, cause)
	assert.ErrorIs(t, &RenderError{Message: "m", Cause: cause}, cause)
	assert.Equal(t, "render error: m", (&RenderError{Message: "m"}).Error())
}
