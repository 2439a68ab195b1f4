package document

import "fmt"

// LoadError represents an error during file I/O or decoding
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// WriteError represents an error encoding or writing a document file
type WriteError struct {
	Message string
	Cause   error
}

func (e *WriteError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("write error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("write error: %s", e.Message)
}

func (e *WriteError) Unwrap() error {
	return e.Cause
}
