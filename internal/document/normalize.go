package document

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// Normalize applies all normalization steps to an imported document
func Normalize(doc *types.ResumeDocument) {
	doc.Normalize()
	AssignIDs(doc)
	doc.Skills = normalizeList(doc.Skills)
	doc.Certifications = normalizeList(doc.Certifications)
	doc.Languages = normalizeList(doc.Languages)
	for i := range doc.Experience {
		if doc.Experience[i].Achievements == nil {
			doc.Experience[i].Achievements = []string{}
		}
	}
	for i := range doc.Projects {
		if doc.Projects[i].Technologies == nil {
			doc.Projects[i].Technologies = []string{}
		}
	}
}

// AssignIDs gives every experience, education and project entry a unique id.
// Missing ids and repeats of an earlier id are replaced.
func AssignIDs(doc *types.ResumeDocument) {
	seen := make(map[string]struct{})
	fix := func(id *string) {
		if _, dup := seen[*id]; *id == "" || dup {
			*id = types.NewID()
		}
		seen[*id] = struct{}{}
	}
	for i := range doc.Experience {
		fix(&doc.Experience[i].ID)
	}
	for i := range doc.Education {
		fix(&doc.Education[i].ID)
	}
	for i := range doc.Projects {
		fix(&doc.Projects[i].ID)
	}
}

// normalizeList trims entries and drops blanks and exact duplicates, keeping
// the first occurrence.
func normalizeList(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, exists := seen[v]; !exists {
			out = append(out, v)
			seen[v] = struct{}{}
		}
	}
	return out
}
