package editor

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/persistence"
	"github.com/jonathan/resume-builder/internal/registry"
	"github.com/jonathan/resume-builder/internal/types"
)

// stepClock advances a minute on every call.
func stepClock() func() time.Time {
	t := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Minute)
		return t
	}
}

func TestSave(t *testing.T) {
	f := newFixture(t, Options{Clock: stepClock()})
	s := f.store
	ctx := context.Background()
	s.UpdatePersonalInfo(PersonalInfoPatch{FirstName: strPtr("Jane"), LastName: strPtr("Doe")})
	s.UpdateSummary("Backend engineer focused on storage systems and the tooling around them.")
	s.SetTemplate("professional")

	res := s.Save(ctx, "")
	require.True(t, res.Success)
	assert.Equal(t, "✨ Resume saved successfully!", res.Message)
	assert.False(t, s.Dirty())

	saved := s.Saved()
	require.Len(t, saved, 1)
	snap := saved[0]
	assert.Equal(t, "Jane Doe - Resume", snap.Title)
	assert.Equal(t, "professional", snap.Template)
	assert.Equal(t, "Jane Doe - Backend engineer focused on storage systems and th...", snap.Preview)
	assert.Equal(t, s.Document(), snap.ResumeDocument)

	// Both the list and the draft were written.
	list, err := persistence.DecodeSavedList(f.persisted(t, persistence.KeySaved))
	require.NoError(t, err)
	assert.Equal(t, saved, list)

	var draft types.ResumeDocument
	require.NoError(t, json.Unmarshal([]byte(f.persisted(t, persistence.KeyCurrent)), &draft))
	assert.Equal(t, s.Document(), draft)
}

func TestSave_CustomAndUntitled(t *testing.T) {
	f := newFixture(t, Options{})
	s := f.store
	ctx := context.Background()

	s.Save(ctx, "")
	s.Save(ctx, "For Acme")

	saved := s.Saved()
	require.Len(t, saved, 2)
	assert.Equal(t, "For Acme", saved[0].Title)
	assert.Equal(t, registry.UntitledTitle, saved[1].Title)
}

func TestSave_ElevenTimesKeepsTen(t *testing.T) {
	f := newFixture(t, Options{Clock: stepClock()})
	s := f.store
	ctx := context.Background()

	for i := 0; i < 11; i++ {
		require.True(t, s.Save(ctx, fmt.Sprintf("save %d", i)).Success)
	}

	saved := s.Saved()
	require.Len(t, saved, registry.MaxEntries)
	assert.Equal(t, "save 10", saved[0].Title)
	assert.Equal(t, "save 1", saved[len(saved)-1].Title)
	for i := 1; i < len(saved); i++ {
		assert.True(t, saved[i-1].SavedAt.After(saved[i].SavedAt))
	}
}

func TestSave_BackendFailure(t *testing.T) {
	f := newFixture(t, Options{})
	s := f.store
	s.UpdateSummary("draft")
	f.kv.fail.Store(true)

	res := s.Save(context.Background(), "")
	assert.False(t, res.Success)
	assert.Empty(t, s.Saved())
	assert.True(t, s.Dirty())
}

func TestLoad(t *testing.T) {
	f := newFixture(t, Options{})
	s := f.store
	ctx := context.Background()

	s.AutoFillSample()
	s.SetTemplate("creative")
	require.True(t, s.Save(ctx, "sample").Success)
	sample := s.Document()
	id := s.Saved()[0].ID

	require.True(t, s.Reset(ctx).Success)
	s.SetTemplate("minimal")
	require.True(t, s.Dirty())

	res := s.Load(ctx, id)
	require.True(t, res.Success)
	assert.Equal(t, "📂 Resume loaded!", res.Message)
	assert.Equal(t, sample, s.Document())
	assert.Equal(t, "creative", s.Template())
	assert.False(t, s.Dirty())
	assert.Len(t, s.Saved(), 1, "loading keeps the snapshot")
	assert.Equal(t, "creative", f.persisted(t, persistence.KeyTemplate))
}

func TestLoad_MissingTemplateFallsBackToDefault(t *testing.T) {
	f := newFixture(t, Options{})
	s := f.store
	ctx := context.Background()

	snap := registry.NewSnapshot(types.NewResumeDocument(), "", "legacy", time.Now())
	snap.Template = ""
	s.mu.Lock()
	s.saved = []types.SavedResume{snap}
	s.mu.Unlock()
	s.SetTemplate("creative")

	require.True(t, s.Load(ctx, snap.ID).Success)
	assert.Equal(t, types.DefaultTemplate, s.Template())
}

func TestLoad_UnknownID(t *testing.T) {
	f := newFixture(t, Options{})
	res := f.store.Load(context.Background(), "missing")
	assert.False(t, res.Success)
	assert.Equal(t, "Resume not found", res.Message)
}

func TestDeleteSaved(t *testing.T) {
	f := newFixture(t, Options{})
	s := f.store
	ctx := context.Background()
	s.Save(ctx, "a")
	s.Save(ctx, "b")
	saved := s.Saved()

	res := s.DeleteSaved(ctx, saved[1].ID)
	require.True(t, res.Success)
	assert.Equal(t, "🗑️ Resume deleted!", res.Message)
	require.Len(t, s.Saved(), 1)
	assert.Equal(t, "b", s.Saved()[0].Title)

	// Idempotent.
	res = s.DeleteSaved(ctx, saved[1].ID)
	assert.True(t, res.Success)
	assert.Len(t, s.Saved(), 1)

	list, err := persistence.DecodeSavedList(f.persisted(t, persistence.KeySaved))
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestDuplicate(t *testing.T) {
	f := newFixture(t, Options{Clock: stepClock()})
	s := f.store
	ctx := context.Background()
	s.AutoFillSample()
	s.Save(ctx, "")
	orig := s.Saved()[0]

	res := s.Duplicate(ctx, orig.ID)
	require.True(t, res.Success)
	assert.Equal(t, "📋 Resume duplicated!", res.Message)

	saved := s.Saved()
	require.Len(t, saved, 2)
	dup := saved[0]
	assert.NotEqual(t, orig.ID, dup.ID)
	assert.Equal(t, "Alex Johnson - Resume (Copy)", dup.Title)
	assert.True(t, dup.SavedAt.After(orig.SavedAt))
	assert.Equal(t, orig.ResumeDocument, dup.ResumeDocument)
	assert.Equal(t, orig.Template, dup.Template)
	assert.Equal(t, orig, saved[1])
}

func TestDuplicate_RespectsCap(t *testing.T) {
	f := newFixture(t, Options{})
	s := f.store
	ctx := context.Background()
	for i := 0; i < registry.MaxEntries; i++ {
		s.Save(ctx, fmt.Sprintf("s%d", i))
	}

	require.True(t, s.Duplicate(ctx, s.Saved()[0].ID).Success)
	saved := s.Saved()
	assert.Len(t, saved, registry.MaxEntries)
	assert.Equal(t, "s9 (Copy)", saved[0].Title)
}

func TestDuplicate_UnknownID(t *testing.T) {
	f := newFixture(t, Options{})
	res := f.store.Duplicate(context.Background(), "missing")
	assert.False(t, res.Success)
	assert.Empty(t, f.store.Saved())
}
