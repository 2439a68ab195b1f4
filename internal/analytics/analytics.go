// Package analytics computes completion progress and descriptive statistics for a resume.
package analytics

import (
	"math"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// Category weights. They sum to 100.
const (
	WeightPersonal   = 25
	WeightSummary    = 15
	WeightExperience = 30
	WeightEducation  = 15
	WeightSkills     = 10
	WeightProjects   = 5
)

const (
	nameShare           = 0.6
	emailShare          = 0.4
	minSummaryLength    = 50
	fullExperienceCount = 3
	minSkillCount       = 3
)

// SectionProgress is the credit one category earned toward the total.
type SectionProgress struct {
	Section string  `json:"section"`
	Earned  float64 `json:"earned"`
	Weight  int     `json:"weight"`
}

// Complete reports whether the category earned its full weight.
func (s SectionProgress) Complete() bool {
	return s.Earned >= float64(s.Weight)
}

// SectionStatus breaks progress down by category, in display order.
func SectionStatus(doc types.ResumeDocument) []SectionProgress {
	info := doc.PersonalInfo

	var personal float64
	if info.FirstName != "" && info.LastName != "" {
		personal += WeightPersonal * nameShare
	}
	if info.Email != "" {
		personal += WeightPersonal * emailShare
	}

	var summary float64
	if len([]rune(doc.Summary)) > minSummaryLength {
		summary = WeightSummary
	}

	experience := WeightExperience * math.Min(float64(len(doc.Experience))/fullExperienceCount, 1)

	return []SectionProgress{
		{Section: "personal", Earned: personal, Weight: WeightPersonal},
		{Section: "summary", Earned: summary, Weight: WeightSummary},
		{Section: "experience", Earned: experience, Weight: WeightExperience},
		{Section: "education", Earned: credit(len(doc.Education) > 0, WeightEducation), Weight: WeightEducation},
		{Section: "skills", Earned: credit(len(doc.Skills) >= minSkillCount, WeightSkills), Weight: WeightSkills},
		{Section: "projects", Earned: credit(len(doc.Projects) > 0, WeightProjects), Weight: WeightProjects},
	}
}

func credit(ok bool, weight int) float64 {
	if ok {
		return float64(weight)
	}
	return 0
}

// CalculateProgress returns the weighted completion percentage, rounded and clamped to [0, 100].
func CalculateProgress(doc types.ResumeDocument) int {
	var total float64
	for _, s := range SectionStatus(doc) {
		total += s.Earned
	}
	progress := int(math.Round(total))
	return max(0, min(progress, 100))
}

// Stats returns word and section counts. WordCount counts whitespace-separated
// tokens in the summary.
func Stats(doc types.ResumeDocument) types.Stats {
	return types.Stats{
		WordCount:       len(strings.Fields(doc.Summary)),
		ExperienceCount: len(doc.Experience),
		SkillCount:      len(doc.Skills),
		ProjectCount:    len(doc.Projects),
		EducationCount:  len(doc.Education),
	}
}
