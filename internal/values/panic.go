package values

// UserPanic is the value a user-triggered runtime_panic unwinds through
// via Go's native panic/recover. It crosses Evaluate (expression) call
// frames, which Signal threading cannot, so the interpreter driver
// recovers it once at the top level. Internal invariant violations use
// InternalError (see Fail) instead.
type UserPanic struct {
	Reason string
}

// RaisePanic raises a user-visible panic with reason, unwinding to the
// nearest recover in the interpreter driver (spec §5 "a top-level panic
// terminates interpretation").
func RaisePanic(reason string) {
	panic(UserPanic{Reason: reason})
}
