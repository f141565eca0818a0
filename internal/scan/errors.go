package scan

import "fmt"

// RootError is returned when the scan root cannot be measured at all.
type RootError struct {
	Root  string
	Cause error
}

func (e *RootError) Error() string {
	return fmt.Sprintf("cannot scan %s: %v", e.Root, e.Cause)
}

func (e *RootError) Unwrap() error {
	return e.Cause
}
