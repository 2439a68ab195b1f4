package export

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
)

// PlainText renders doc as line-oriented UTF-8 text: header and contact lines,
// then summary, experience, education, skills and projects. Empty list
// sections are left out.
func PlainText(doc types.ResumeDocument) string {
	info := doc.PersonalInfo
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", info.FirstName, info.LastName)
	fmt.Fprintf(&b, "%s\n\n", info.Title)
	fmt.Fprintf(&b, "Contact: %s | %s | %s\n", info.Email, info.Phone, info.Address)
	fmt.Fprintf(&b, "LinkedIn: %s | GitHub: %s\n\n", info.LinkedIn, info.GitHub)

	fmt.Fprintf(&b, "SUMMARY\n%s\n\n", doc.Summary)

	if len(doc.Experience) > 0 {
		b.WriteString("EXPERIENCE\n")
		for _, exp := range doc.Experience {
			fmt.Fprintf(&b, "%s at %s\n", exp.Position, exp.Company)
			fmt.Fprintf(&b, "%s\n", rendering.DateRange(exp.StartDate, exp.EndDate, exp.Current))
			fmt.Fprintf(&b, "%s\n\n", exp.Description)
		}
	}

	if len(doc.Education) > 0 {
		b.WriteString("EDUCATION\n")
		for _, edu := range doc.Education {
			fmt.Fprintf(&b, "%s in %s\n", edu.Degree, edu.Field)
			fmt.Fprintf(&b, "%s | %s\n", edu.Institution, rendering.FormatDate(edu.EndDate))
			if edu.GPA != "" {
				fmt.Fprintf(&b, "GPA: %s\n", edu.GPA)
			}
			b.WriteString("\n")
		}
	}

	if len(doc.Skills) > 0 {
		fmt.Fprintf(&b, "SKILLS\n%s\n\n", strings.Join(doc.Skills, ", "))
	}

	if len(doc.Projects) > 0 {
		b.WriteString("PROJECTS\n")
		for _, p := range doc.Projects {
			fmt.Fprintf(&b, "%s\n", p.Name)
			fmt.Fprintf(&b, "%s\n", p.Description)
			if p.Link != "" {
				fmt.Fprintf(&b, "Link: %s\n", p.Link)
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}
