// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"

	"github.com/google/uuid"
)

// ResumeDocument is the canonical resume being edited. The JSON field names match
// the persisted format, so documents written by older builds load unchanged.
type ResumeDocument struct {
	PersonalInfo   PersonalInfo      `json:"personalInfo"`
	Summary        string            `json:"summary"`
	Experience     []ExperienceEntry `json:"experience"`
	Education      []EducationEntry  `json:"education"`
	Skills         []string          `json:"skills"`
	Projects       []ProjectEntry    `json:"projects"`
	Certifications []string          `json:"certifications"`
	Languages      []string          `json:"languages"`
}

// PersonalInfo holds the contact header of a resume.
// Email and URL fields are checked by Validate but never enforced.
type PersonalInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email" validate:"omitempty,email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	LinkedIn  string `json:"linkedin" validate:"omitempty,url"`
	GitHub    string `json:"github" validate:"omitempty,url"`
	Website   string `json:"website" validate:"omitempty,url"`
	Title     string `json:"title"`
}

// FullName joins first and last name, trimming the separator when either is empty.
func (p PersonalInfo) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// ExperienceEntry is one position in the work history.
type ExperienceEntry struct {
	ID           string   `json:"id"`
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Current      bool     `json:"current"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
}

// EducationEntry is one degree or course of study.
type EducationEntry struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	GPA         string `json:"gpa"`
}

// ProjectEntry is a portfolio project.
type ProjectEntry struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Link         string   `json:"link"`
	StartDate    string   `json:"startDate,omitempty"`
	EndDate      string   `json:"endDate,omitempty"`
}

// NewID returns a process-unique identifier for list items and saved snapshots.
func NewID() string {
	return uuid.NewString()
}

// NewResumeDocument returns the empty schema. Every list is non-nil so the
// persisted form always carries [] rather than null.
func NewResumeDocument() ResumeDocument {
	return ResumeDocument{
		Experience:     []ExperienceEntry{},
		Education:      []EducationEntry{},
		Skills:         []string{},
		Projects:       []ProjectEntry{},
		Certifications: []string{},
		Languages:      []string{},
	}
}

// Clone returns a deep copy of the document.
func (d ResumeDocument) Clone() ResumeDocument {
	out := d
	out.Experience = cloneSlice(d.Experience)
	for i := range out.Experience {
		out.Experience[i].Achievements = cloneSlice(d.Experience[i].Achievements)
	}
	out.Education = cloneSlice(d.Education)
	out.Skills = cloneSlice(d.Skills)
	out.Projects = cloneSlice(d.Projects)
	for i := range out.Projects {
		out.Projects[i].Technologies = cloneSlice(d.Projects[i].Technologies)
	}
	out.Certifications = cloneSlice(d.Certifications)
	out.Languages = cloneSlice(d.Languages)
	return out
}

// Normalize replaces nil top-level lists with empty ones. Documents written by
// the sample generator of older builds omit certifications and languages.
func (d *ResumeDocument) Normalize() {
	if d.Experience == nil {
		d.Experience = []ExperienceEntry{}
	}
	if d.Education == nil {
		d.Education = []EducationEntry{}
	}
	if d.Skills == nil {
		d.Skills = []string{}
	}
	if d.Projects == nil {
		d.Projects = []ProjectEntry{}
	}
	if d.Certifications == nil {
		d.Certifications = []string{}
	}
	if d.Languages == nil {
		d.Languages = []string{}
	}
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
