package editor

import "github.com/jonathan/resume-builder/internal/types"

// Section addresses one top-level field of a ResumeDocument with its concrete type.
type Section[T any] struct {
	name string
	get  func(*types.ResumeDocument) *T
}

// Name is the persisted field name of the section.
func (s Section[T]) Name() string { return s.name }

// List addresses an ordered section of a ResumeDocument. Entries with an id
// field get a fresh one when added.
type List[T any] struct {
	name     string
	get      func(*types.ResumeDocument) *[]T
	assignID func(*T)
}

// Name is the persisted field name of the list.
func (l List[T]) Name() string { return l.name }

// Section returns the handle for replacing the whole list.
func (l List[T]) Section() Section[[]T] {
	return Section[[]T]{name: l.name, get: l.get}
}

var (
	Personal = Section[types.PersonalInfo]{
		name: "personalInfo",
		get:  func(d *types.ResumeDocument) *types.PersonalInfo { return &d.PersonalInfo },
	}
	Summary = Section[string]{
		name: "summary",
		get:  func(d *types.ResumeDocument) *string { return &d.Summary },
	}
)

var (
	Experience = List[types.ExperienceEntry]{
		name:     "experience",
		get:      func(d *types.ResumeDocument) *[]types.ExperienceEntry { return &d.Experience },
		assignID: func(e *types.ExperienceEntry) { e.ID = types.NewID() },
	}
	Education = List[types.EducationEntry]{
		name:     "education",
		get:      func(d *types.ResumeDocument) *[]types.EducationEntry { return &d.Education },
		assignID: func(e *types.EducationEntry) { e.ID = types.NewID() },
	}
	Projects = List[types.ProjectEntry]{
		name:     "projects",
		get:      func(d *types.ResumeDocument) *[]types.ProjectEntry { return &d.Projects },
		assignID: func(p *types.ProjectEntry) { p.ID = types.NewID() },
	}
	// Skills are identified by value.
	Skills = List[string]{
		name: "skills",
		get:  func(d *types.ResumeDocument) *[]string { return &d.Skills },
	}
	Certifications = List[string]{
		name: "certifications",
		get:  func(d *types.ResumeDocument) *[]string { return &d.Certifications },
	}
	Languages = List[string]{
		name: "languages",
		get:  func(d *types.ResumeDocument) *[]string { return &d.Languages },
	}
)
