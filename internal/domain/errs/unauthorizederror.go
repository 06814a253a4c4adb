package errs

import "fmt"

type UnauthorizedError struct {
	message string
}

func (v *UnauthorizedError) Error() string {
	return v.message
}

func UnauthorizedErrorf(format string, args ...any) *UnauthorizedError {
	return &UnauthorizedError{
		message: fmt.Sprintf(format, args...),
	}
}

var _ error = &UnauthorizedError{}
