package assert

import "github.com/oomph-ac/locomotion/oerror"

// IsTrue panics with a LocomotionError if ok is false. It is reserved for wiring errors that leave the
// simulator unable to run at all.
func IsTrue(ok bool, message string, args ...any) {
	if !ok {
		panic(oerror.New(message, args...))
	}
}
