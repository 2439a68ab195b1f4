package document

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/heuristics"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
)

func TestWriteThenLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	doc := heuristics.SampleDocument()

	require.NoError(t, Write(fs, "/exports/resume.json", doc))

	got, err := Load(fs, "/exports/resume.json")
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(afero.NewMemMapFs(), "missing.json")
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr), "error should be LoadError type")
	assert.Contains(t, loadErr.Error(), "failed to read file")
}

func TestLoad_InvalidJSON(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "bad.json", []byte("{ not json"), 0o644))

	_, err := Load(fs, "bad.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not a resume document")
}

func TestLoad_SchemaViolation(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "wrong.json", []byte(`{"summary": "no contact header"}`), 0o644))

	_, err := Load(fs, "wrong.json")
	require.Error(t, err)

	var verr *schemas.ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestLoad_Normalizes(t *testing.T) {
	fs := afero.NewMemMapFs()
	raw := `{
  "personalInfo": {"firstName": "Jane"},
  "experience": [{"company": "Acme"}, {"id": "x", "company": "Initech"}, {"id": "x", "company": "Globex"}],
  "skills": [" Go ", "Go", "", "Rust"]
}`
	require.NoError(t, afero.WriteFile(fs, "in.json", []byte(raw), 0o644))

	doc, err := Load(fs, "in.json")
	require.NoError(t, err)

	require.Len(t, doc.Experience, 3)
	assert.NotEmpty(t, doc.Experience[0].ID)
	assert.Equal(t, "x", doc.Experience[1].ID)
	assert.NotEqual(t, "x", doc.Experience[2].ID)
	assert.NotNil(t, doc.Experience[0].Achievements)
	assert.Equal(t, []string{"Go", "Rust"}, doc.Skills)
	assert.NotNil(t, doc.Languages)
}

func TestEncode_DoesNotMutateInput(t *testing.T) {
	doc := types.ResumeDocument{Skills: []string{"Go"}}

	data, err := Encode(doc)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"certifications": []`)
	assert.Nil(t, doc.Certifications)
}

func TestWrite_ReadOnlyFs(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())

	err := Write(fs, "/out/resume.json", heuristics.SampleDocument())
	var writeErr *WriteError
	require.True(t, errors.As(err, &writeErr))
}
