package editor

import "fmt"

// PreconditionError reports a call the store refuses because it would address
// something that does not exist. It indicates a bug in the caller.
type PreconditionError struct {
	Op     string
	Target string
	Index  int
	Len    int
}

func (e *PreconditionError) Error() string {
	if e.Len < 0 {
		return fmt.Sprintf("%s: unknown section %q", e.Op, e.Target)
	}
	return fmt.Sprintf("%s: index %d out of range for %s (len %d)", e.Op, e.Index, e.Target, e.Len)
}
