package ynab

import "fmt"

// ServiceError is an error raised by the budget service, carrying its
// message and, when the failure came from an HTTP response, the status
// code.
type ServiceError struct {
	Message    string
	StatusCode int
}

func (e *ServiceError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("budget service error (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("budget service error: %s", e.Message)
}
