package errs

import "fmt"

// AgentError reports a failed or invalid response from the agent client.
type AgentError struct {
	message string
}

func (v *AgentError) Error() string {
	return v.message
}

func AgentErrorf(format string, args ...any) *AgentError {
	return &AgentError{
		message: fmt.Sprintf(format, args...),
	}
}

var _ error = &AgentError{}
