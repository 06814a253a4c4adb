package errs

import "fmt"

// DuplicateError is returned when the store rejects a write on a unique key.
type DuplicateError struct {
	message string
}

func (v *DuplicateError) Error() string {
	return v.message
}

func DuplicateErrorf(format string, args ...any) *DuplicateError {
	return &DuplicateError{
		message: fmt.Sprintf(format, args...),
	}
}

var _ error = &DuplicateError{}
