package editor

import (
	"fmt"

	"github.com/jonathan/resume-builder/internal/heuristics"
	"github.com/jonathan/resume-builder/internal/types"
)

// SuggestSkills adds catalog skills matching the current title and returns the
// ones added. A failed Result with no skills means there was nothing new to add.
func (s *Store) SuggestSkills() ([]string, types.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	added := heuristics.SuggestSkills(s.doc)
	if len(added) == 0 {
		return nil, types.Failed("No new skills to suggest")
	}
	s.doc.Skills = heuristics.MergeSkills(s.doc.Skills, added)
	s.touch()
	return added, types.Succeeded(fmt.Sprintf("🎯 Added %d relevant skills!", len(added)))
}

// GenerateSummary replaces the summary with one synthesized from the document.
func (s *Store) GenerateSummary() types.Result {
	s.mu.Lock()
	summary := heuristics.GenerateSummary(s.doc)
	s.mu.Unlock()

	if res := s.UpdateSummary(summary); !res.Success {
		return res
	}
	return types.Succeeded("📝 Summary generated!")
}

// AutoFillSample replaces the whole document with the sample resume.
func (s *Store) AutoFillSample() types.Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.doc = heuristics.SampleDocument()
	s.touch()
	return types.Succeeded("🎨 Sample data loaded! Customize it to make it yours.")
}

// Import replaces the whole document with doc, as read from a file.
func (s *Store) Import(doc types.ResumeDocument) types.Result {
	doc.Normalize()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.doc = doc.Clone()
	s.touch()
	return types.Succeeded("📥 Resume imported!")
}
