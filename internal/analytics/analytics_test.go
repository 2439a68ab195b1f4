package analytics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/types"
)

func janeDoe() types.ResumeDocument {
	doc := types.NewResumeDocument()
	doc.PersonalInfo.FirstName = "Jane"
	doc.PersonalInfo.LastName = "Doe"
	doc.PersonalInfo.Email = "jane@x.com"
	return doc
}

func fullDocument() types.ResumeDocument {
	doc := janeDoe()
	doc.Summary = strings.Repeat("word ", 12)
	for i := 0; i < 3; i++ {
		doc.Experience = append(doc.Experience, types.ExperienceEntry{ID: types.NewID()})
	}
	doc.Education = append(doc.Education, types.EducationEntry{ID: types.NewID()})
	doc.Skills = append(doc.Skills, "Go", "SQL", "Docker")
	doc.Projects = append(doc.Projects, types.ProjectEntry{ID: types.NewID()})
	return doc
}

func TestCalculateProgress_PersonalOnly(t *testing.T) {
	doc := janeDoe()
	assert.Equal(t, 25, CalculateProgress(doc))
	assert.Equal(t, 0, Stats(doc).WordCount)
}

func TestCalculateProgress_Empty(t *testing.T) {
	assert.Equal(t, 0, CalculateProgress(types.NewResumeDocument()))
}

func TestCalculateProgress_Full(t *testing.T) {
	assert.Equal(t, 100, CalculateProgress(fullDocument()))

	// More entries than needed never push past 100.
	doc := fullDocument()
	for i := 0; i < 5; i++ {
		doc.Experience = append(doc.Experience, types.ExperienceEntry{ID: types.NewID()})
	}
	assert.Equal(t, 100, CalculateProgress(doc))
}

func TestCalculateProgress_PartialCredit(t *testing.T) {
	tests := []struct {
		name string
		edit func(*types.ResumeDocument)
		want int
	}{
		{"names only", func(d *types.ResumeDocument) { d.PersonalInfo.FirstName, d.PersonalInfo.LastName = "A", "B" }, 15},
		{"first name alone earns nothing", func(d *types.ResumeDocument) { d.PersonalInfo.FirstName = "A" }, 0},
		{"email only", func(d *types.ResumeDocument) { d.PersonalInfo.Email = "a@b.co" }, 10},
		{"summary at 50 chars", func(d *types.ResumeDocument) { d.Summary = strings.Repeat("x", 50) }, 0},
		{"summary over 50 chars", func(d *types.ResumeDocument) { d.Summary = strings.Repeat("x", 51) }, 15},
		{"one experience", func(d *types.ResumeDocument) { d.Experience = make([]types.ExperienceEntry, 1) }, 10},
		{"two experiences", func(d *types.ResumeDocument) { d.Experience = make([]types.ExperienceEntry, 2) }, 20},
		{"two skills", func(d *types.ResumeDocument) { d.Skills = []string{"a", "b"} }, 0},
		{"three skills", func(d *types.ResumeDocument) { d.Skills = []string{"a", "b", "c"} }, 10},
		{"education", func(d *types.ResumeDocument) { d.Education = make([]types.EducationEntry, 1) }, 15},
		{"project", func(d *types.ResumeDocument) { d.Projects = make([]types.ProjectEntry, 1) }, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := types.NewResumeDocument()
			tt.edit(&doc)
			assert.Equal(t, tt.want, CalculateProgress(doc))
		})
	}
}

func TestCalculateProgress_MonotonicUnderAdditiveEdits(t *testing.T) {
	steps := []func(*types.ResumeDocument){
		func(d *types.ResumeDocument) { d.PersonalInfo.FirstName = "Jane" },
		func(d *types.ResumeDocument) { d.PersonalInfo.LastName = "Doe" },
		func(d *types.ResumeDocument) { d.Skills = append(d.Skills, "Go") },
		func(d *types.ResumeDocument) { d.Experience = append(d.Experience, types.ExperienceEntry{}) },
		func(d *types.ResumeDocument) { d.Summary = strings.Repeat("y", 80) },
		func(d *types.ResumeDocument) { d.Skills = append(d.Skills, "SQL", "Git") },
		func(d *types.ResumeDocument) { d.Experience = append(d.Experience, types.ExperienceEntry{}) },
		func(d *types.ResumeDocument) { d.PersonalInfo.Email = "jane@x.com" },
		func(d *types.ResumeDocument) { d.Projects = append(d.Projects, types.ProjectEntry{}) },
		func(d *types.ResumeDocument) { d.Education = append(d.Education, types.EducationEntry{}) },
		func(d *types.ResumeDocument) { d.Experience = append(d.Experience, types.ExperienceEntry{}) },
	}

	doc := types.NewResumeDocument()
	prev := CalculateProgress(doc)
	for i, step := range steps {
		step(&doc)
		got := CalculateProgress(doc)
		assert.GreaterOrEqual(t, got, prev, "step %d", i)
		prev = got
	}
	assert.Equal(t, 100, prev)
}

func TestSectionStatus(t *testing.T) {
	status := SectionStatus(janeDoe())
	require.Len(t, status, 6)

	assert.Equal(t, "personal", status[0].Section)
	assert.True(t, status[0].Complete())
	for _, s := range status[1:] {
		assert.False(t, s.Complete(), s.Section)
		assert.Zero(t, s.Earned, s.Section)
	}

	total := 0
	for _, s := range status {
		total += s.Weight
	}
	assert.Equal(t, 100, total)
}

func TestStats(t *testing.T) {
	doc := fullDocument()
	doc.Summary = "  Builds   reliable\tsystems\nfor people  "

	assert.Equal(t, types.Stats{
		WordCount:       5,
		ExperienceCount: 3,
		SkillCount:      3,
		ProjectCount:    1,
		EducationCount:  1,
	}, Stats(doc))
}
