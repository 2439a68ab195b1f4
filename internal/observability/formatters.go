// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jonathan/resume-builder/internal/analytics"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
	// barWidth is the number of cells in a progress bar
	barWidth = 20
)

// Printer handles formatted output for the CLI
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintDocument outputs the working resume with every entry numbered from 1,
// so the positions can be passed straight to remove and move.
func (p *Printer) PrintDocument(doc types.ResumeDocument, templateID string) {
	var sb strings.Builder

	info := doc.PersonalInfo
	name := info.FullName()
	if name == "" {
		name = "(no name)"
	}
	sb.WriteString(fmt.Sprintf("Name:     %s\n", name))
	if info.Title != "" {
		sb.WriteString(fmt.Sprintf("Title:    %s\n", info.Title))
	}
	for _, f := range []struct{ label, value string }{
		{"Email", info.Email},
		{"Phone", info.Phone},
		{"Address", info.Address},
		{"LinkedIn", info.LinkedIn},
		{"GitHub", info.GitHub},
		{"Website", info.Website},
	} {
		if f.value != "" {
			sb.WriteString(fmt.Sprintf("%-9s %s\n", f.label+":", f.value))
		}
	}
	sb.WriteString(fmt.Sprintf("Template: %s\n", templateID))

	if doc.Summary != "" {
		sb.WriteString("\nSummary:\n")
		sb.WriteString(fmt.Sprintf("  %s\n", doc.Summary))
	}

	if len(doc.Experience) > 0 {
		sb.WriteString("\nExperience:\n")
		for i, exp := range doc.Experience {
			sb.WriteString(fmt.Sprintf("  %d. %s at %s\n", i+1, exp.Position, exp.Company))
			sb.WriteString(fmt.Sprintf("     %s\n", rendering.DateRange(exp.StartDate, exp.EndDate, exp.Current)))
		}
	}

	if len(doc.Education) > 0 {
		sb.WriteString("\nEducation:\n")
		for i, edu := range doc.Education {
			sb.WriteString(fmt.Sprintf("  %d. %s in %s, %s\n", i+1, edu.Degree, edu.Field, edu.Institution))
		}
	}

	if len(doc.Skills) > 0 {
		sb.WriteString("\nSkills:\n")
		for i, skill := range doc.Skills {
			sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, skill))
		}
	}

	if len(doc.Projects) > 0 {
		sb.WriteString("\nProjects:\n")
		for i, proj := range doc.Projects {
			sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, proj.Name))
			if len(proj.Technologies) > 0 {
				sb.WriteString(fmt.Sprintf("     [%s]\n", strings.Join(proj.Technologies, ", ")))
			}
		}
	}

	p.printBox("RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// bar draws a fixed-width bar for earned out of weight.
func bar(earned float64, weight int) string {
	filled := 0
	if weight > 0 {
		filled = int(earned / float64(weight) * barWidth)
	}
	filled = max(0, min(filled, barWidth))
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

// PrintProgress outputs the overall completion percentage with a bar per category.
func (p *Printer) PrintProgress(percent int, sections []analytics.SectionProgress) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Completion: %d%%\n", percent))
	sb.WriteString(fmt.Sprintf("%s\n\n", bar(float64(percent), 100)))

	for _, s := range sections {
		mark := " "
		if s.Complete() {
			mark = "✓"
		}
		sb.WriteString(fmt.Sprintf("%s %-11s %s %4.1f/%d\n", mark, s.Section, bar(s.Earned, s.Weight), s.Earned, s.Weight))
	}

	p.printBox("RESUME PROGRESS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintStats outputs the descriptive counts for a document.
func (p *Printer) PrintStats(stats types.Stats) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Words:      %d\n", stats.WordCount))
	sb.WriteString(fmt.Sprintf("Experience: %d\n", stats.ExperienceCount))
	sb.WriteString(fmt.Sprintf("Education:  %d\n", stats.EducationCount))
	sb.WriteString(fmt.Sprintf("Skills:     %d\n", stats.SkillCount))
	sb.WriteString(fmt.Sprintf("Projects:   %d", stats.ProjectCount))

	p.printBox("RESUME STATS", sb.String())
}

// PrintSavedList outputs the saved snapshots, newest first.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintSavedList(saved []types.SavedResume) {
	if len(saved) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "No saved resumes yet")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	for i, s := range saved {
		sb.WriteString(fmt.Sprintf("%s\n", s.Title))
		sb.WriteString(fmt.Sprintf("  id:    %s\n", s.ID))
		sb.WriteString(fmt.Sprintf("  saved: %s", s.SavedAt.Local().Format(time.DateTime)))
		if s.Template != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", s.Template))
		}
		sb.WriteString("\n")
		if s.Preview != "" {
			sb.WriteString(fmt.Sprintf("  %s\n", s.Preview))
		}
		if i < len(saved)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox(fmt.Sprintf("SAVED RESUMES (%d)", len(saved)), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkills outputs a list of skills, shortening long lists.
func (p *Printer) PrintSkills(title string, skills []string) {
	if len(skills) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(skills), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", skills[i]))
	}
	if len(skills) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(skills)-maxItemsToShow))
	}

	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintIssues outputs advisory field problems.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintIssues(issues []types.FieldIssue) {
	if len(issues) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ CONTACT DETAILS LOOK VALID")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d issues:\n\n", len(issues)))
	for i, issue := range issues {
		sb.WriteString(fmt.Sprintf("⚠ %s\n", issue.Field))
		sb.WriteString(fmt.Sprintf("  %s\n", issue.Message))
		if i < len(issues)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("CONTACT ISSUES", strings.TrimSuffix(sb.String(), "\n"))
}
