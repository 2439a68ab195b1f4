package persistence

import "fmt"

// DecodeError reports a persisted value that could not be used.
type DecodeError struct {
	Key   string
	Cause error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode error: %s: %v", e.Key, e.Cause)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// EncodeError reports a value that could not be serialized for writing.
type EncodeError struct {
	Key   string
	Cause error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode error: %s: %v", e.Key, e.Cause)
}

func (e *EncodeError) Unwrap() error {
	return e.Cause
}

// UnknownTemplateError reports a persisted template id that is not in the catalog.
type UnknownTemplateError struct {
	ID string
}

func (e *UnknownTemplateError) Error() string {
	return fmt.Sprintf("unknown template %q", e.ID)
}
