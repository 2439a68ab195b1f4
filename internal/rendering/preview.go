// Package rendering renders the HTML preview of a resume, the page the PDF export prints.
package rendering

import (
	"embed"
	"fmt"
	"html/template"
	"os"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// PreviewElementID is the id of the element wrapping the printable resume.
const PreviewElementID = "resume-preview"

//go:embed templates/preview.html.tmpl
var templateFS embed.FS

const defaultTemplateName = "templates/preview.html.tmpl"

// PreviewData is the data passed to the preview template.
type PreviewData struct {
	TemplateID string
	Colors     types.TemplateColors
	Name       string
	Title      string
	Contact    []string
	Summary    string
	Experience []ExperienceView
	Education  []EducationView
	Skills     []string
	Projects   []ProjectView
}

// ExperienceView is an experience entry with its date range formatted.
type ExperienceView struct {
	Position     string
	Company      string
	Dates        string
	Description  string
	Achievements []string
}

// EducationView is an education entry with its graduation date formatted.
type EducationView struct {
	Degree      string
	Field       string
	Institution string
	Graduated   string
	GPA         string
}

// ProjectView is a project with its link shortened for display.
type ProjectView struct {
	Name         string
	Link         string
	Description  string
	Technologies []string
}

// RenderPreview renders doc with the built-in preview template and the colors
// of templateID.
func RenderPreview(doc types.ResumeDocument, templateID string) (string, error) {
	content, err := templateFS.ReadFile(defaultTemplateName)
	if err != nil {
		return "", &TemplateError{Message: "failed to read built-in template", Cause: err}
	}
	tmpl, err := parseTemplate(string(content))
	if err != nil {
		return "", err
	}
	return execute(tmpl, doc, templateID)
}

// RenderPreviewFile renders doc with the html/template at templatePath. The
// template receives a PreviewData and a "join" function.
func RenderPreviewFile(doc types.ResumeDocument, templateID, templatePath string) (string, error) {
	content, err := os.ReadFile(templatePath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &TemplateError{
				Message: fmt.Sprintf("template file not found: %s", templatePath),
				Cause:   err,
			}
		}
		return "", &TemplateError{
			Message: fmt.Sprintf("failed to read template file: %s", templatePath),
			Cause:   err,
		}
	}
	tmpl, err := parseTemplate(string(content))
	if err != nil {
		return "", err
	}
	return execute(tmpl, doc, templateID)
}

func parseTemplate(content string) (*template.Template, error) {
	tmpl, err := template.New("preview").Funcs(template.FuncMap{
		"join": strings.Join,
	}).Parse(content)
	if err != nil {
		return nil, &TemplateError{
			Message: "failed to parse template",
			Cause:   err,
		}
	}
	return tmpl, nil
}

func execute(tmpl *template.Template, doc types.ResumeDocument, templateID string) (string, error) {
	data, err := BuildPreviewData(doc, templateID)
	if err != nil {
		return "", &RenderError{
			Message: "failed to build template data",
			Cause:   err,
		}
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, data); err != nil {
		return "", &TemplateError{
			Message: "failed to execute template",
			Cause:   err,
		}
	}
	return result.String(), nil
}

// BuildPreviewData flattens doc into display strings. An empty templateID
// selects the default template; an unknown one is an error.
func BuildPreviewData(doc types.ResumeDocument, templateID string) (*PreviewData, error) {
	if templateID == "" {
		templateID = types.DefaultTemplate
	}
	tmpl, ok := types.LookupTemplate(templateID)
	if !ok {
		return nil, fmt.Errorf("unknown template %q", templateID)
	}

	info := doc.PersonalInfo
	data := &PreviewData{
		TemplateID: tmpl.ID,
		Colors:     tmpl.Colors,
		Name:       info.FullName(),
		Title:      info.Title,
		Contact:    contactParts(info),
		Summary:    doc.Summary,
		Skills:     doc.Skills,
	}

	for _, exp := range doc.Experience {
		data.Experience = append(data.Experience, ExperienceView{
			Position:     exp.Position,
			Company:      exp.Company,
			Dates:        DateRange(exp.StartDate, exp.EndDate, exp.Current),
			Description:  exp.Description,
			Achievements: nonBlank(exp.Achievements),
		})
	}
	for _, edu := range doc.Education {
		data.Education = append(data.Education, EducationView{
			Degree:      edu.Degree,
			Field:       edu.Field,
			Institution: edu.Institution,
			Graduated:   FormatDate(edu.EndDate),
			GPA:         edu.GPA,
		})
	}
	for _, p := range doc.Projects {
		data.Projects = append(data.Projects, ProjectView{
			Name:         p.Name,
			Link:         DisplayURL(p.Link),
			Description:  p.Description,
			Technologies: p.Technologies,
		})
	}
	return data, nil
}

// contactParts lists the non-empty contact fields in display order.
func contactParts(info types.PersonalInfo) []string {
	var parts []string
	for _, v := range []string{
		info.Email,
		info.Phone,
		info.Address,
		DisplayURL(info.LinkedIn),
		DisplayURL(info.GitHub),
		DisplayURL(info.Website),
	} {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return parts
}

// DisplayURL drops the https:// scheme for display.
func DisplayURL(u string) string {
	return strings.TrimPrefix(u, "https://")
}

func nonBlank(in []string) []string {
	var out []string
	for _, s := range in {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}
