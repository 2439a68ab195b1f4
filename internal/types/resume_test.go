package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullDocument() ResumeDocument {
	return ResumeDocument{
		PersonalInfo: PersonalInfo{
			FirstName: "Jane",
			LastName:  "Doe",
			Email:     "jane@example.com",
			Phone:     "+1 555 0100",
			Address:   "Portland, OR",
			LinkedIn:  "https://linkedin.com/in/janedoe",
			GitHub:    "https://github.com/janedoe",
			Website:   "https://janedoe.dev",
			Title:     "Staff Engineer",
		},
		Summary: "Engineer with a decade of distributed systems work.",
		Experience: []ExperienceEntry{
			{ID: "exp-1", Company: "Acme", Position: "Engineer", StartDate: "2019-04", Current: true, Description: "Built things", Achievements: []string{"Cut latency 40%"}},
			{ID: "exp-2", Company: "Globex", Position: "Intern", StartDate: "2018-06", EndDate: "2018-09"},
		},
		Education: []EducationEntry{
			{ID: "edu-1", Institution: "State University", Degree: "BSc", Field: "Computer Science", StartDate: "2014-09", EndDate: "2018-05", GPA: "3.7"},
		},
		Skills: []string{"Go", "SQL"},
		Projects: []ProjectEntry{
			{ID: "proj-1", Name: "kvctl", Description: "CLI for key-value stores", Technologies: []string{"Go"}, Link: "https://github.com/janedoe/kvctl"},
		},
		Certifications: []string{},
		Languages:      []string{"English"},
	}
}

func TestResumeDocument_JSONRoundTrip(t *testing.T) {
	doc := fullDocument()

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	var decoded ResumeDocument
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, doc, decoded)
}

func TestResumeDocument_JSONFieldNames(t *testing.T) {
	data, err := json.Marshal(fullDocument())
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, `"personalInfo":{"firstName":"Jane"`)
	assert.Contains(t, out, `"startDate":"2019-04"`)
	assert.Contains(t, out, `"current":true`)
	assert.Contains(t, out, `"gpa":"3.7"`)
	assert.Contains(t, out, `"technologies":["Go"]`)
}

func TestNewResumeDocument_EmptyListsNotNull(t *testing.T) {
	data, err := json.Marshal(NewResumeDocument())
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, `"experience":[]`)
	assert.Contains(t, out, `"skills":[]`)
	assert.NotContains(t, out, "null")
}

func TestResumeDocument_CloneIsDeep(t *testing.T) {
	doc := fullDocument()
	clone := doc.Clone()

	clone.Skills[0] = "Rust"
	clone.Experience[0].Achievements[0] = "changed"
	clone.Projects[0].Technologies[0] = "changed"
	clone.PersonalInfo.FirstName = "John"

	assert.Equal(t, "Go", doc.Skills[0])
	assert.Equal(t, "Cut latency 40%", doc.Experience[0].Achievements[0])
	assert.Equal(t, "Go", doc.Projects[0].Technologies[0])
	assert.Equal(t, "Jane", doc.PersonalInfo.FirstName)
}

func TestResumeDocument_Normalize(t *testing.T) {
	var doc ResumeDocument
	doc.Normalize()

	assert.Equal(t, NewResumeDocument(), doc)
}

func TestPersonalInfo_FullName(t *testing.T) {
	assert.Equal(t, "Jane Doe", PersonalInfo{FirstName: "Jane", LastName: "Doe"}.FullName())
	assert.Equal(t, "Jane", PersonalInfo{FirstName: "Jane"}.FullName())
	assert.Equal(t, "", PersonalInfo{}.FullName())
}

func TestNewID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewID()
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestSavedResume_FlattenedJSON(t *testing.T) {
	saved := SavedResume{
		ResumeDocument: fullDocument(),
		ID:             "snap-1",
		Title:          "Jane Doe - Resume",
		SavedAt:        time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		Template:       "minimal",
		Preview:        "Jane Doe - Engineer...",
	}

	data, err := json.Marshal(saved)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"id":"snap-1"`)
	assert.Contains(t, string(data), `"personalInfo":`)
	assert.Contains(t, string(data), `"savedAt":"2024-03-01T12:00:00Z"`)

	var decoded SavedResume
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, saved, decoded)
}

func TestSavedResume_ParsesJavaScriptTimestamp(t *testing.T) {
	input := `{"id":"x","title":"t","savedAt":"2024-01-15T09:30:00.000Z","template":"modern","preview":"p","personalInfo":{"firstName":"A"},"skills":["Go"]}`

	var decoded SavedResume
	require.NoError(t, json.Unmarshal([]byte(input), &decoded))
	assert.Equal(t, 2024, decoded.SavedAt.Year())
	assert.Equal(t, "A", decoded.PersonalInfo.FirstName)
	assert.Equal(t, []string{"Go"}, decoded.Skills)
}

func TestLookupTemplate(t *testing.T) {
	tmpl, ok := LookupTemplate("professional")
	require.True(t, ok)
	assert.Equal(t, "Professional", tmpl.Name)
	assert.Equal(t, "#2c3e50", tmpl.Colors.Primary)

	_, ok = LookupTemplate("baroque")
	assert.False(t, ok)

	_, ok = LookupTemplate(DefaultTemplate)
	assert.True(t, ok)
}

func TestResultHelpers(t *testing.T) {
	assert.Equal(t, Result{Success: true, Message: "ok"}, Succeeded("ok"))
	assert.Equal(t, Result{Success: false, Message: "no"}, Failed("no"))
}
