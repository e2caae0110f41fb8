package oerror

import "fmt"

// LocomotionError is the error type returned at the edges of the simulator (configuration, scenarios,
// input lookups). The per-tick path never produces one.
type LocomotionError struct {
	Err string
}

// New returns a new LocomotionError with a message formatted from the arguments passed.
func New(format string, args ...any) *LocomotionError {
	return &LocomotionError{Err: fmt.Sprintf(format, args...)}
}

func (e *LocomotionError) Error() string {
	return e.Err
}
