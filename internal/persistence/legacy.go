package persistence

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
)

// stringListFields hold plain strings. The browser build spread each added
// value into an object with an id, so a skill "Go" was stored as
// {"0":"G","1":"o","id":"..."}.
var stringListFields = []string{"skills", "certifications", "languages"}

// recoverDocument rewrites spread-string entries of a persisted document back
// into strings. Input that is not a JSON object is returned unchanged.
func recoverDocument(raw string) string {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &obj); err != nil || obj == nil {
		return raw
	}
	if !recoverStringLists(obj) {
		return raw
	}
	out, err := json.Marshal(obj)
	if err != nil {
		return raw
	}
	return string(out)
}

// recoverSavedList applies recoverDocument to every snapshot of a registry.
func recoverSavedList(raw string) string {
	var items []map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return raw
	}
	changed := false
	for _, obj := range items {
		if obj != nil && recoverStringLists(obj) {
			changed = true
		}
	}
	if !changed {
		return raw
	}
	out, err := json.Marshal(items)
	if err != nil {
		return raw
	}
	return string(out)
}

func recoverStringLists(obj map[string]json.RawMessage) bool {
	changed := false
	for _, field := range stringListFields {
		value, ok := obj[field]
		if !ok {
			continue
		}
		var entries []json.RawMessage
		if err := json.Unmarshal(value, &entries); err != nil {
			continue
		}
		fixed := make([]any, 0, len(entries))
		modified := false
		for _, entry := range entries {
			if s, ok := spreadString(entry); ok {
				fixed = append(fixed, s)
				modified = true
				continue
			}
			fixed = append(fixed, entry)
		}
		if !modified {
			continue
		}
		out, err := json.Marshal(fixed)
		if err != nil {
			continue
		}
		obj[field] = out
		changed = true
	}
	return changed
}

// spreadString joins the index-keyed characters of a spread string object.
// Keys other than indexes, such as id, are ignored.
func spreadString(entry json.RawMessage) (string, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(entry, &fields); err != nil || fields == nil {
		return "", false
	}
	type char struct {
		pos int
		s   string
	}
	var chars []char
	for k, v := range fields {
		pos, err := strconv.Atoi(k)
		if err != nil || pos < 0 {
			continue
		}
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return "", false
		}
		chars = append(chars, char{pos, s})
	}
	if len(chars) == 0 {
		return "", false
	}
	sort.Slice(chars, func(i, j int) bool { return chars[i].pos < chars[j].pos })
	var b strings.Builder
	for _, c := range chars {
		b.WriteString(c.s)
	}
	return b.String(), true
}
