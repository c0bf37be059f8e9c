package analyzer

import "fmt"

// EmptyInputError reports a required input that is blank after trimming.
type EmptyInputError struct {
	Field string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("%s cannot be empty", e.Field)
}

// MalformedInputError reports an input that failed to parse or validate.
type MalformedInputError struct {
	Field string
	Err   error
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *MalformedInputError) Unwrap() error { return e.Err }

// UnexpectedError wraps any other failure during extraction, resolution or
// comparison. The core recovers panics into this type so the host process
// never crashes on unexpected value shapes.
type UnexpectedError struct {
	Err error
}

func (e *UnexpectedError) Error() string {
	return fmt.Sprintf("analysis failed: %v", e.Err)
}

func (e *UnexpectedError) Unwrap() error { return e.Err }
