package question

import "fmt"

// ParseError reports a lecture file that is malformed or fails validation.
type ParseError struct {
	Path string
	Err  error
}

// Error returns a readable message for the failing file.
func (err *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", err.Path, err.Err)
}

// Unwrap exposes the underlying decode or validation error.
func (err *ParseError) Unwrap() error {
	return err.Err
}

// NotFoundError reports a requested lecture that has no file in the bank.
type NotFoundError struct {
	Lecture string
	Dir     string
}

// Error returns a readable message for the missing lecture.
func (err *NotFoundError) Error() string {
	if err.Dir == "" {
		return fmt.Sprintf("lecture %q not found", err.Lecture)
	}
	return fmt.Sprintf("lecture %q not found in %s", err.Lecture, err.Dir)
}
