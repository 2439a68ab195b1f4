package heuristics

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// MaxSuggestedSkills caps how many skills one suggestion round adds.
const MaxSuggestedSkills = 8

// titleKeywords maps a category to the title substrings that make it eligible.
// Categories without an entry are always eligible.
var titleKeywords = map[string][]string{
	CategoryTechnical: {"developer", "engineer"},
	CategoryDesign:    {"design"},
	CategoryBusiness:  {"manager", "lead"},
}

// SuggestSkills returns up to MaxSuggestedSkills catalog skills that fit the
// document's title and are not already listed, in catalog order.
func SuggestSkills(doc types.ResumeDocument) []string {
	title := strings.ToLower(doc.PersonalInfo.Title)

	var candidates []string
	for _, cat := range SkillCategories {
		if categoryMatches(cat.Name, title) {
			candidates = append(candidates, cat.Skills...)
		}
	}

	suggested := make([]string, 0, MaxSuggestedSkills)
	for _, skill := range candidates {
		if len(suggested) == MaxSuggestedSkills {
			break
		}
		if slices.Contains(doc.Skills, skill) || slices.Contains(suggested, skill) {
			continue
		}
		suggested = append(suggested, skill)
	}
	return suggested
}

func categoryMatches(category, title string) bool {
	keywords, ok := titleKeywords[category]
	if !ok {
		return true
	}
	for _, kw := range keywords {
		if strings.Contains(title, kw) {
			return true
		}
	}
	return false
}

// MergeSkills appends add to existing, dropping anything already present.
// The first occurrence of each skill wins.
func MergeSkills(existing, add []string) []string {
	out := make([]string, 0, len(existing)+len(add))
	seen := make(map[string]struct{}, len(existing)+len(add))
	for _, list := range [][]string{existing, add} {
		for _, s := range list {
			if _, dup := seen[s]; dup {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}

// GenerateSummary builds a summary paragraph from the title, skills and
// experience. The same document always yields the same text.
func GenerateSummary(doc types.ResumeDocument) string {
	hasExperience := len(doc.Experience) > 0

	years := "several"
	closing := "achieving business goals"
	if hasExperience {
		years = "5+"
		closing = "various projects"
	}

	role := doc.PersonalInfo.Title
	if role == "" {
		role = "professional"
	}

	top := doc.Skills
	if len(top) > 3 {
		top = top[:3]
	}
	specialty := strings.Join(top, ", ")
	if specialty == "" {
		specialty = "delivering high-quality solutions"
	}

	return fmt.Sprintf("Experienced %s with %s years in the industry. Specialized in %s. Proven track record of success in %s.",
		role, years, specialty, closing)
}

// SampleDocument returns the onboarding sample resume. Item IDs are freshly
// minted on each call; everything else is fixed.
func SampleDocument() types.ResumeDocument {
	doc := types.NewResumeDocument()
	doc.PersonalInfo = types.PersonalInfo{
		FirstName: "Alex",
		LastName:  "Johnson",
		Email:     "alex.johnson@email.com",
		Phone:     "+1 (555) 123-4567",
		Address:   "San Francisco, CA",
		LinkedIn:  "https://linkedin.com/in/alexjohnson",
		GitHub:    "https://github.com/alexjohnson",
		Website:   "https://alexjohnson.dev",
		Title:     "Senior Full Stack Developer",
	}
	doc.Summary = SampleSummaries[0]
	doc.Experience = append(doc.Experience, types.ExperienceEntry{
		ID:           types.NewID(),
		Company:      "Tech Innovations Inc.",
		Position:     "Senior Developer",
		StartDate:    "2020-01",
		Current:      true,
		Description:  "Lead development of scalable web applications using React and Node.js. Mentored junior developers and improved team productivity by 25%.",
		Achievements: []string{},
	})
	doc.Education = append(doc.Education, types.EducationEntry{
		ID:          types.NewID(),
		Institution: "Stanford University",
		Degree:      "Master of Science",
		Field:       "Computer Science",
		StartDate:   "2016-09",
		EndDate:     "2018-05",
		GPA:         "3.8",
	})
	doc.Skills = append(doc.Skills, "JavaScript", "React", "Node.js", "TypeScript", "Python", "AWS")
	doc.Projects = append(doc.Projects, types.ProjectEntry{
		ID:           types.NewID(),
		Name:         "E-commerce Platform",
		Description:  "Built a full-stack e-commerce solution serving 10,000+ users",
		Technologies: []string{"React", "Node.js", "MongoDB"},
		Link:         "https://github.com/alexjohnson/ecommerce",
	})
	return doc
}
