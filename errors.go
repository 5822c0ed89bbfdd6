package json

import "fmt"

// CaughtError wraps a value that was raised during serialization but is
// not itself an error. The original value is kept in Value so nothing is
// lost even for non-standard failures.
type CaughtError struct {
	Message string `json:"message"` // Human-readable description
	Value   any    `json:"value"`   // The original raised value
}

func (e *CaughtError) Error() string {
	return e.Message
}

// caught normalizes a recovered panic value into an error. Error values
// pass through unchanged; anything else becomes a *CaughtError carrying
// a textual rendering of the value alongside the value itself.
func caught(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return &CaughtError{
		Message: fmt.Sprintf("caught non-error value: %v", r),
		Value:   r,
	}
}
