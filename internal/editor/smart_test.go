package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/heuristics"
	"github.com/jonathan/resume-builder/internal/persistence"
	"github.com/jonathan/resume-builder/internal/types"
)

func TestSuggestSkills(t *testing.T) {
	f := newFixture(t, Options{})
	s := f.store
	s.UpdatePersonalInfo(PersonalInfoPatch{Title: strPtr("Senior Software Engineer")})
	SetSection(s, Skills.Section(), []string{"Go", "React"})

	added, res := s.SuggestSkills()
	require.True(t, res.Success)
	assert.Equal(t, "🎯 Added 8 relevant skills!", res.Message)
	assert.Len(t, added, 8)
	assert.NotContains(t, added, "React")

	skills := s.Document().Skills
	assert.Equal(t, []string{"Go", "React"}, skills[:2])
	assert.Len(t, skills, 10)
}

func TestSuggestSkills_NothingNew(t *testing.T) {
	f := newFixture(t, Options{})
	s := f.store

	_, res := s.SuggestSkills()
	require.True(t, res.Success)
	require.NoError(t, s.Close())

	added, res := s.SuggestSkills()
	assert.False(t, res.Success)
	assert.Equal(t, "No new skills to suggest", res.Message)
	assert.Empty(t, added)
	assert.False(t, s.Dirty())
}

func TestGenerateSummary(t *testing.T) {
	f := newFixture(t, Options{})
	s := f.store
	s.UpdatePersonalInfo(PersonalInfoPatch{Title: strPtr("Designer")})
	SetSection(s, Skills.Section(), []string{"Figma", "Prototyping"})

	res := s.GenerateSummary()
	require.True(t, res.Success)
	assert.Equal(t, "📝 Summary generated!", res.Message)

	summary := s.Document().Summary
	assert.Contains(t, summary, "Designer")
	assert.Contains(t, summary, "Figma, Prototyping")
	assert.Contains(t, summary, "several")
}

func TestGenerateSummary_MarksDirtyAndPersists(t *testing.T) {
	f := newFixture(t, Options{})
	s := f.store
	s.UpdatePersonalInfo(PersonalInfoPatch{Title: strPtr("Designer")})
	require.True(t, s.autosave.Flush())
	require.False(t, s.Dirty())

	require.True(t, s.GenerateSummary().Success)
	assert.True(t, s.Dirty())

	require.NoError(t, s.Close())
	assert.Contains(t, f.persisted(t, persistence.KeyCurrent), "Designer")
}

func TestAutoFillSample(t *testing.T) {
	f := newFixture(t, Options{})
	s := f.store
	AddItem(s, Skills, "Cobol")

	res := s.AutoFillSample()
	require.True(t, res.Success)
	assert.True(t, s.Dirty())

	doc := s.Document()
	assert.Equal(t, "Alex", doc.PersonalInfo.FirstName)
	assert.Equal(t, heuristics.SampleSummaries[0], doc.Summary)
	assert.NotContains(t, doc.Skills, "Cobol")
	assert.Equal(t, 80, s.Progress())
}

func TestImport(t *testing.T) {
	f := newFixture(t, Options{})
	s := f.store

	res := s.Import(types.ResumeDocument{Summary: "From a file"})
	require.True(t, res.Success)
	assert.True(t, s.Dirty())

	doc := s.Document()
	assert.Equal(t, "From a file", doc.Summary)
	assert.NotNil(t, doc.Skills)
	assert.NotNil(t, doc.Experience)

	require.NoError(t, s.Close())
	assert.Contains(t, f.persisted(t, persistence.KeyCurrent), "From a file")
}

func TestImport_CopiesCallerDocument(t *testing.T) {
	f := newFixture(t, Options{})
	s := f.store

	doc := types.NewResumeDocument()
	doc.Skills = append(doc.Skills, "Go")
	s.Import(doc)
	doc.Skills[0] = "Changed"

	assert.Equal(t, []string{"Go"}, s.Document().Skills)
}
