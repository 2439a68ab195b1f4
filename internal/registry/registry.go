// Package registry maintains the bounded, newest-first list of saved resume snapshots.
package registry

import (
	"strings"
	"time"

	"github.com/jonathan/resume-builder/internal/types"
)

const (
	// MaxEntries is the number of snapshots kept; older ones fall off the end.
	MaxEntries = 10

	// UntitledTitle is used when a snapshot has neither a custom title nor a name.
	UntitledTitle = "Untitled Resume"

	previewSummaryRunes = 50
)

// NewSnapshot captures doc as a snapshot with a fresh id. An empty customTitle
// falls back to "{first} {last} - Resume", then to UntitledTitle.
func NewSnapshot(doc types.ResumeDocument, template, customTitle string, now time.Time) types.SavedResume {
	if template == "" {
		template = types.DefaultTemplate
	}
	return types.SavedResume{
		ResumeDocument: doc.Clone(),
		ID:             types.NewID(),
		Title:          Title(doc, customTitle),
		SavedAt:        now.UTC(),
		Template:       template,
		Preview:        Preview(doc),
	}
}

// Title picks the snapshot title.
func Title(doc types.ResumeDocument, customTitle string) string {
	if t := strings.TrimSpace(customTitle); t != "" {
		return t
	}
	if doc.PersonalInfo.FullName() != "" {
		return doc.PersonalInfo.FirstName + " " + doc.PersonalInfo.LastName + " - Resume"
	}
	return UntitledTitle
}

// Preview renders the one-line summary shown in the saved list:
// "{first} {last} - {first 50 characters of summary}...".
func Preview(doc types.ResumeDocument) string {
	summary := []rune(doc.Summary)
	if len(summary) > previewSummaryRunes {
		summary = summary[:previewSummaryRunes]
	}
	return doc.PersonalInfo.FirstName + " " + doc.PersonalInfo.LastName + " - " + string(summary) + "..."
}

// Prepend returns a new list with snap first, any other entry sharing its id
// removed, truncated to MaxEntries. The input slice is not modified.
func Prepend(list []types.SavedResume, snap types.SavedResume) []types.SavedResume {
	out := make([]types.SavedResume, 0, min(len(list)+1, MaxEntries))
	out = append(out, snap)
	for _, s := range list {
		if len(out) == MaxEntries {
			break
		}
		if s.ID == snap.ID {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Remove returns a new list without the entry whose id matches. Removing an
// absent id returns an equal list.
func Remove(list []types.SavedResume, id string) []types.SavedResume {
	out := make([]types.SavedResume, 0, len(list))
	for _, s := range list {
		if s.ID != id {
			out = append(out, s)
		}
	}
	return out
}

// Find returns the entry with the given id.
func Find(list []types.SavedResume, id string) (types.SavedResume, bool) {
	for _, s := range list {
		if s.ID == id {
			return s, true
		}
	}
	return types.SavedResume{}, false
}

// Duplicate copies snap under a fresh id, a " (Copy)" title suffix and a new timestamp.
func Duplicate(snap types.SavedResume, now time.Time) types.SavedResume {
	dup := snap.Clone()
	dup.ID = types.NewID()
	dup.Title = snap.Title + " (Copy)"
	dup.SavedAt = now.UTC()
	return dup
}
