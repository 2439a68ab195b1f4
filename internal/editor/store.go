// Package editor owns the resume being edited: it applies mutations, tracks
// whether the draft has been flushed, autosaves it and manages saved snapshots.
package editor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jonathan/resume-builder/internal/analytics"
	"github.com/jonathan/resume-builder/internal/logger"
	"github.com/jonathan/resume-builder/internal/persistence"
	"github.com/jonathan/resume-builder/internal/types"
)

const (
	// DefaultAutosaveDelay is the quiescence window before a draft is flushed.
	DefaultAutosaveDelay = time.Second

	flushTimeout = 10 * time.Second
)

// Options configures a Store.
type Options struct {
	// AutosaveDelay defaults to DefaultAutosaveDelay.
	AutosaveDelay time.Duration
	// Strict makes precondition violations panic instead of being logged and ignored.
	Strict bool
	Logger logrus.FieldLogger
	// Clock defaults to time.Now.
	Clock func() time.Time
}

// Store holds the current document, template, dirty flag and saved snapshots.
// It is safe for concurrent use; the autosave timer runs on its own goroutine.
type Store struct {
	gw     *persistence.Gateway
	log    logrus.FieldLogger
	strict bool
	now    func() time.Time

	autosave *persistence.Debouncer

	// writeMu serializes every operation that writes through the gateway, so a
	// late autosave can never land on top of a load, reset or delete.
	writeMu sync.Mutex

	mu       sync.Mutex
	doc      types.ResumeDocument
	template string
	saved    []types.SavedResume
	dirty    bool
	version  uint64
	flushErr error
	problems []error
}

// Open hydrates a Store from the gateway. Unreadable persisted values are
// logged and left at their defaults; see HydrationProblems.
func Open(ctx context.Context, gw *persistence.Gateway, opts Options) (*Store, error) {
	state, err := gw.Hydrate(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to hydrate resume state: %w", err)
	}

	s := &Store{
		gw:       gw,
		log:      opts.Logger,
		strict:   opts.Strict,
		now:      opts.Clock,
		doc:      state.Document,
		template: state.Template,
		saved:    state.Saved,
		problems: state.Problems,
	}
	if s.log == nil {
		s.log = logger.Discard()
	}
	if s.now == nil {
		s.now = time.Now
	}

	delay := opts.AutosaveDelay
	if delay <= 0 {
		delay = DefaultAutosaveDelay
	}
	s.autosave = persistence.NewDebouncer(delay, s.flush)
	return s, nil
}

// Close writes any pending autosave and stops the timer. It returns the error
// of the last failed autosave, if the draft is still unflushed.
func (s *Store) Close() error {
	s.autosave.Flush()
	s.autosave.Stop()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dirty {
		return s.flushErr
	}
	return nil
}

// flush is the autosave action. It clears dirty only if nothing changed while
// the write was in flight.
func (s *Store) flush() {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	if !s.dirty {
		s.mu.Unlock()
		return
	}
	doc := s.doc.Clone()
	tmpl := s.template
	version := s.version
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()
	err := s.gw.SaveCurrent(ctx, doc, tmpl)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.flushErr = err
	if err != nil {
		s.log.WithError(err).Error("autosave failed")
		return
	}
	if s.version == version {
		s.dirty = false
	}
	s.log.WithField("version", version).Debug("autosaved current resume")
}

// touch records a mutation and reschedules autosave. Callers hold s.mu.
func (s *Store) touch() {
	s.dirty = true
	s.version++
	s.autosave.Trigger()
}

// violation applies the precondition policy. Callers hold s.mu via defer, so
// the panic in strict mode releases it.
func (s *Store) violation(err *PreconditionError) types.Result {
	if s.strict {
		panic(err)
	}
	s.log.WithError(err).Error("ignoring invalid store operation")
	return types.Failed(err.Error())
}

// Document returns a copy of the current document.
func (s *Store) Document() types.ResumeDocument {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// Template returns the current template id.
func (s *Store) Template() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.template
}

// Dirty reports whether the draft differs from what was last written.
func (s *Store) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// HydrationProblems lists persisted values that could not be read at Open.
func (s *Store) HydrationProblems() []error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]error(nil), s.problems...)
}

// Progress returns the completion percentage of the current document.
func (s *Store) Progress() int {
	return analytics.CalculateProgress(s.Document())
}

// Stats returns descriptive counts for the current document.
func (s *Store) Stats() types.Stats {
	return analytics.Stats(s.Document())
}

// ValidateContact reports advisory problems with the contact fields.
func (s *Store) ValidateContact() []types.FieldIssue {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.PersonalInfo.Validate()
}

// SetTemplate switches the visual template.
func (s *Store) SetTemplate(id string) types.Result {
	tmpl, ok := types.LookupTemplate(id)
	if !ok {
		return types.Failed(fmt.Sprintf("Unknown template %q", id))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.template = tmpl.ID
	s.touch()
	return types.Succeeded(fmt.Sprintf("Template set to %s", tmpl.Name))
}

// Reset replaces the draft with an empty document and writes it immediately.
// Confirmation is the caller's job.
func (s *Store) Reset(ctx context.Context) types.Result {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	empty := types.NewResumeDocument()
	if err := s.gw.SaveCurrent(ctx, empty, s.Template()); err != nil {
		s.log.WithError(err).Error("failed to write reset resume")
		return types.Failed("Failed to reset the form")
	}

	s.replace(empty)
	return types.Succeeded("🔄 Form reset successfully!")
}

// DeleteCurrent clears the draft and removes its persisted copy.
// Confirmation is the caller's job.
func (s *Store) DeleteCurrent(ctx context.Context) types.Result {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.gw.RemoveCurrent(ctx); err != nil {
		s.log.WithError(err).Error("failed to remove current resume")
		return types.Failed("Failed to delete the current resume")
	}

	s.replace(types.NewResumeDocument())
	return types.Succeeded("Resume deleted successfully!")
}

// replace installs doc as an already-persisted document.
func (s *Store) replace(doc types.ResumeDocument) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = doc
	s.dirty = false
	s.version++
}
