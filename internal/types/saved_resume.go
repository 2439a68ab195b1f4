// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// SavedResume is a named, timestamped snapshot of a ResumeDocument. The document
// fields are flattened into the same JSON object as the snapshot metadata.
type SavedResume struct {
	ResumeDocument
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	SavedAt  time.Time `json:"savedAt"`
	Template string    `json:"template,omitempty"`
	Preview  string    `json:"preview"`
}

// Clone returns a deep copy of the snapshot.
func (s SavedResume) Clone() SavedResume {
	out := s
	out.ResumeDocument = s.ResumeDocument.Clone()
	return out
}

// Result describes the outcome of a store operation. Message is meant to be
// shown to the user whether or not the operation succeeded.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Succeeded returns a successful Result.
func Succeeded(message string) Result {
	return Result{Success: true, Message: message}
}

// Failed returns a failed Result.
func Failed(message string) Result {
	return Result{Success: false, Message: message}
}

// Stats holds descriptive counts for a document.
type Stats struct {
	WordCount       int `json:"wordCount"`
	ExperienceCount int `json:"experienceCount"`
	SkillCount      int `json:"skillCount"`
	ProjectCount    int `json:"projectCount"`
	EducationCount  int `json:"educationCount"`
}
