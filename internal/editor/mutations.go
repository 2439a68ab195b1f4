package editor

import (
	"fmt"
	"slices"

	"github.com/jonathan/resume-builder/internal/types"
)

// PersonalInfoPatch carries the fields to change in UpdatePersonalInfo.
// Nil fields are left alone.
type PersonalInfoPatch struct {
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
	Address   *string
	LinkedIn  *string
	GitHub    *string
	Website   *string
	Title     *string
}

// Apply merges the non-nil fields of p into info.
func (p PersonalInfoPatch) Apply(info *types.PersonalInfo) {
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	set(&info.FirstName, p.FirstName)
	set(&info.LastName, p.LastName)
	set(&info.Email, p.Email)
	set(&info.Phone, p.Phone)
	set(&info.Address, p.Address)
	set(&info.LinkedIn, p.LinkedIn)
	set(&info.GitHub, p.GitHub)
	set(&info.Website, p.Website)
	set(&info.Title, p.Title)
}

// SetSection replaces a section with a copy of v. Later changes to v do not
// reach the store.
func SetSection[T any](s *Store, sec Section[T], v T) types.Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sec.get == nil {
		return s.violation(&PreconditionError{Op: "set", Target: sec.name, Len: -1})
	}
	*sec.get(&s.doc) = v
	s.doc = s.doc.Clone()
	s.touch()
	return types.Succeeded(fmt.Sprintf("Updated %s", sec.name))
}

// UpdateSection replaces a section with fn applied to its previous value.
// fn receives a copy and cannot alter the store by mutating it.
func UpdateSection[T any](s *Store, sec Section[T], fn func(prev T) T) types.Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sec.get == nil {
		return s.violation(&PreconditionError{Op: "update", Target: sec.name, Len: -1})
	}
	prev := s.doc.Clone()
	*sec.get(&s.doc) = fn(*sec.get(&prev))
	s.touch()
	return types.Succeeded(fmt.Sprintf("Updated %s", sec.name))
}

// UpdatePersonalInfo merges patch into the contact header.
func (s *Store) UpdatePersonalInfo(patch PersonalInfoPatch) types.Result {
	return UpdateSection(s, Personal, func(prev types.PersonalInfo) types.PersonalInfo {
		patch.Apply(&prev)
		return prev
	})
}

// UpdateSummary replaces the summary verbatim.
func (s *Store) UpdateSummary(text string) types.Result {
	return SetSection(s, Summary, text)
}

// AddItem appends item to the list, minting a fresh id for identified entries.
func AddItem[T any](s *Store, list List[T], item T) types.Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	if list.get == nil {
		return s.violation(&PreconditionError{Op: "add", Target: list.name, Len: -1})
	}
	if list.assignID != nil {
		list.assignID(&item)
	}
	items := list.get(&s.doc)
	*items = append(slices.Clip(*items), item)
	s.doc = s.doc.Clone()
	s.touch()
	return types.Succeeded(fmt.Sprintf("Added to %s", list.name))
}

// UpdateItem applies fn to the entry at index. An index out of range is a
// precondition violation and nothing is modified.
func UpdateItem[T any](s *Store, list List[T], index int, fn func(*T)) types.Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	if list.get == nil {
		return s.violation(&PreconditionError{Op: "update", Target: list.name, Len: -1})
	}
	items := list.get(&s.doc)
	if index < 0 || index >= len(*items) {
		return s.violation(&PreconditionError{Op: "update", Target: list.name, Index: index, Len: len(*items)})
	}

	prev := s.doc.Clone()
	next := *list.get(&prev)
	fn(&next[index])
	*items = next
	s.doc = s.doc.Clone()
	s.touch()
	return types.Succeeded(fmt.Sprintf("Updated %s entry", list.name))
}

// RemoveItem deletes the entry at index. An index out of range changes nothing.
func RemoveItem[T any](s *Store, list List[T], index int) types.Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	if list.get == nil {
		return s.violation(&PreconditionError{Op: "remove", Target: list.name, Len: -1})
	}
	items := list.get(&s.doc)
	if index < 0 || index >= len(*items) {
		return types.Failed(fmt.Sprintf("No %s entry at position %d", list.name, index))
	}
	*items = slices.Delete(slices.Clone(*items), index, index+1)
	s.touch()
	return types.Succeeded(fmt.Sprintf("Removed from %s", list.name))
}

// MoveItem removes the entry at from and reinserts it at to, counted after the
// removal. Moving an entry onto itself changes nothing; either index out of
// range is a precondition violation.
func MoveItem[T any](s *Store, list List[T], from, to int) types.Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	if list.get == nil {
		return s.violation(&PreconditionError{Op: "move", Target: list.name, Len: -1})
	}
	if from == to {
		return types.Succeeded("Nothing to move")
	}
	items := list.get(&s.doc)
	n := len(*items)
	if from < 0 || from >= n {
		return s.violation(&PreconditionError{Op: "move", Target: list.name, Index: from, Len: n})
	}
	if to < 0 || to >= n {
		return s.violation(&PreconditionError{Op: "move", Target: list.name, Index: to, Len: n})
	}

	moved := (*items)[from]
	rest := slices.Delete(slices.Clone(*items), from, from+1)
	*items = slices.Insert(rest, to, moved)
	s.touch()
	return types.Succeeded(fmt.Sprintf("Moved %s entry", list.name))
}

// Items returns a copy of a list in the current document.
func Items[T any](s *Store, list List[T]) []T {
	doc := s.Document()
	if list.get == nil {
		return nil
	}
	return *list.get(&doc)
}
