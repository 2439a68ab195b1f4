// Package persistence bridges the resume store and the key-value backend: it
// hydrates state at startup, writes drafts and the saved list, and debounces autosave.
package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-builder/internal/kvstore"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
)

// Storage keys. The names match the drafts written by the browser build. Its
// spread-string list entries are turned back into strings on decode.
const (
	KeyCurrent  = "resumeCraft_current"
	KeySaved    = "resumeCraft_saved"
	KeyTemplate = "resumeCraft_template"
)

// State is what Hydrate recovered from the store.
type State struct {
	Document    types.ResumeDocument
	HasDocument bool
	Saved       []types.SavedResume
	Template    string
	// Problems lists values that were present but unusable. Each affected
	// piece of state was left at its default.
	Problems []error
}

// Gateway reads and writes resume state. Writes are serialized so autosave and
// explicit saves never interleave on the same keys.
type Gateway struct {
	kv  kvstore.Store
	log logrus.FieldLogger
	mu  sync.Mutex
}

// NewGateway wraps a key-value store.
func NewGateway(kv kvstore.Store, log logrus.FieldLogger) *Gateway {
	return &Gateway{kv: kv, log: log}
}

// Hydrate reads the current document, the saved list and the template.
// Missing keys leave defaults in place. Corrupt values are reported in
// State.Problems and logged; only backend failures are returned as errors.
func (g *Gateway) Hydrate(ctx context.Context) (State, error) {
	var rawCurrent, rawSaved, rawTemplate string
	var hasCurrent, hasSaved, hasTemplate bool

	eg, egCtx := errgroup.WithContext(ctx)
	read := func(key string, dst *string, found *bool) func() error {
		return func() error {
			v, err := g.kv.Get(egCtx, key)
			if errors.Is(err, kvstore.ErrNotFound) {
				return nil
			}
			if err != nil {
				return err
			}
			*dst, *found = v, true
			return nil
		}
	}
	eg.Go(read(KeyCurrent, &rawCurrent, &hasCurrent))
	eg.Go(read(KeySaved, &rawSaved, &hasSaved))
	eg.Go(read(KeyTemplate, &rawTemplate, &hasTemplate))
	if err := eg.Wait(); err != nil {
		return State{}, err
	}

	state := State{
		Document: types.NewResumeDocument(),
		Saved:    []types.SavedResume{},
		Template: types.DefaultTemplate,
	}

	if hasCurrent {
		doc, err := DecodeDocument(rawCurrent)
		if err != nil {
			state.Problems = append(state.Problems, &DecodeError{Key: KeyCurrent, Cause: err})
		} else {
			state.Document = doc
			state.HasDocument = true
		}
	}

	if hasSaved {
		saved, err := DecodeSavedList(rawSaved)
		if err != nil {
			state.Problems = append(state.Problems, &DecodeError{Key: KeySaved, Cause: err})
		} else {
			state.Saved = saved
		}
	}

	if hasTemplate && rawTemplate != "" {
		if _, ok := types.LookupTemplate(rawTemplate); ok {
			state.Template = rawTemplate
		} else {
			state.Problems = append(state.Problems, &DecodeError{Key: KeyTemplate, Cause: &UnknownTemplateError{ID: rawTemplate}})
		}
	}

	for _, p := range state.Problems {
		g.log.WithError(p).Warn("ignoring unreadable persisted state")
	}

	g.log.WithFields(logrus.Fields{
		"document": state.HasDocument,
		"saved":    len(state.Saved),
		"template": state.Template,
	}).Debug("hydrated state")

	return state, nil
}

// SaveCurrent writes the draft document and template.
func (g *Gateway) SaveCurrent(ctx context.Context, doc types.ResumeDocument, template string) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return &EncodeError{Key: KeyCurrent, Cause: err}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.kv.Set(ctx, KeyCurrent, string(data)); err != nil {
		return err
	}
	if err := g.kv.Set(ctx, KeyTemplate, template); err != nil {
		return err
	}
	g.log.WithField("bytes", len(data)).Debug("flushed current resume")
	return nil
}

// SaveList writes the saved-resume registry.
func (g *Gateway) SaveList(ctx context.Context, saved []types.SavedResume) error {
	if saved == nil {
		saved = []types.SavedResume{}
	}
	data, err := json.Marshal(saved)
	if err != nil {
		return &EncodeError{Key: KeySaved, Cause: err}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.kv.Set(ctx, KeySaved, string(data)); err != nil {
		return err
	}
	g.log.WithField("count", len(saved)).Debug("wrote saved resumes")
	return nil
}

// RemoveCurrent deletes the persisted draft document.
func (g *Gateway) RemoveCurrent(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.kv.Remove(ctx, KeyCurrent)
}

// DecodeDocument parses and schema-checks a persisted document.
func DecodeDocument(raw string) (types.ResumeDocument, error) {
	raw = recoverDocument(raw)
	var doc types.ResumeDocument
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return types.ResumeDocument{}, err
	}
	if err := schemas.Validate(schemas.ResumeDocument, raw); err != nil {
		return types.ResumeDocument{}, err
	}
	doc.Normalize()
	return doc, nil
}

// DecodeSavedList parses and schema-checks the persisted registry.
func DecodeSavedList(raw string) ([]types.SavedResume, error) {
	raw = recoverSavedList(raw)
	var saved []types.SavedResume
	if err := json.Unmarshal([]byte(raw), &saved); err != nil {
		return nil, err
	}
	if err := schemas.Validate(schemas.SavedResumes, raw); err != nil {
		return nil, err
	}
	if saved == nil {
		saved = []types.SavedResume{}
	}
	for i := range saved {
		saved[i].Normalize()
	}
	return saved, nil
}
