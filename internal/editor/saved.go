package editor

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/jonathan/resume-builder/internal/registry"
	"github.com/jonathan/resume-builder/internal/types"
)

const msgResumeNotFound = "Resume not found"

// Saved returns a copy of the saved snapshots, newest first.
func (s *Store) Saved() []types.SavedResume {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.SavedResume, len(s.saved))
	for i, snap := range s.saved {
		out[i] = snap.Clone()
	}
	return out
}

// Save snapshots the current document under title (or a derived title when
// empty), writes the saved list and the draft, and clears dirty.
func (s *Store) Save(ctx context.Context, title string) types.Result {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	doc := s.doc.Clone()
	tmpl := s.template
	version := s.version
	snap := registry.NewSnapshot(doc, tmpl, title, s.now())
	saved := registry.Prepend(s.saved, snap)
	s.mu.Unlock()

	if err := s.gw.SaveList(ctx, saved); err != nil {
		s.log.WithError(err).Error("failed to write saved resumes")
		return types.Failed("Failed to save resume")
	}
	if err := s.gw.SaveCurrent(ctx, doc, tmpl); err != nil {
		s.log.WithError(err).Error("failed to write current resume")
		return types.Failed("Failed to save resume")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved = saved
	if s.version == version {
		s.dirty = false
	}
	s.log.WithFields(logrus.Fields{"id": snap.ID, "title": snap.Title}).Info("saved resume")
	return types.Succeeded("✨ Resume saved successfully!")
}

// Load replaces the current document and template with a saved snapshot. The
// snapshot stays in the list.
func (s *Store) Load(ctx context.Context, id string) types.Result {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	snap, ok := registry.Find(s.saved, id)
	s.mu.Unlock()
	if !ok {
		return types.Failed(msgResumeNotFound)
	}

	doc := snap.ResumeDocument.Clone()
	doc.Normalize()
	tmpl := snap.Template
	if _, known := types.LookupTemplate(tmpl); !known {
		tmpl = types.DefaultTemplate
	}

	if err := s.gw.SaveCurrent(ctx, doc, tmpl); err != nil {
		s.log.WithError(err).Error("failed to write loaded resume")
		return types.Failed("Failed to load resume")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = doc
	s.template = tmpl
	s.dirty = false
	s.version++
	return types.Succeeded("📂 Resume loaded!")
}

// DeleteSaved removes a snapshot. Deleting an unknown id still succeeds.
// Confirmation is the caller's job.
func (s *Store) DeleteSaved(ctx context.Context, id string) types.Result {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	saved := registry.Remove(s.saved, id)
	s.mu.Unlock()

	if err := s.gw.SaveList(ctx, saved); err != nil {
		s.log.WithError(err).Error("failed to write saved resumes")
		return types.Failed("Failed to delete resume")
	}

	s.mu.Lock()
	s.saved = saved
	s.mu.Unlock()
	return types.Succeeded("🗑️ Resume deleted!")
}

// Duplicate copies a snapshot under a new id and " (Copy)" title and puts it
// first in the list.
func (s *Store) Duplicate(ctx context.Context, id string) types.Result {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	snap, ok := registry.Find(s.saved, id)
	var saved []types.SavedResume
	if ok {
		saved = registry.Prepend(s.saved, registry.Duplicate(snap, s.now()))
	}
	s.mu.Unlock()
	if !ok {
		return types.Failed(msgResumeNotFound)
	}

	if err := s.gw.SaveList(ctx, saved); err != nil {
		s.log.WithError(err).Error("failed to write saved resumes")
		return types.Failed("Failed to duplicate resume")
	}

	s.mu.Lock()
	s.saved = saved
	s.mu.Unlock()
	return types.Succeeded("📋 Resume duplicated!")
}
