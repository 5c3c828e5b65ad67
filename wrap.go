// wrap.go — bridges between Result and the standard error model.
//
//   - Result.Err turns a failed Result into an error (nil on success), so a
//     Result can cross into code that speaks errors.Is/As.
//   - From turns any error back into a Result. Errors produced by Err
//     round-trip with their message; foreign errors become ExceptionOccurred
//     with the error text appended to the trail.
//
// An error may travel to any goroutine, so the error form holds a detached
// payload and hands out detached copies; its counter is never shared.
package fruitbowl

import "errors"

// resultError is the error form of a failed Result.
type resultError struct {
	r Result
}

func (e *resultError) Error() string { return e.r.Message() }

// Is matches any other resultError with the same code, so New(c).Err() works
// as a sentinel for errors.Is.
func (e *resultError) Is(target error) bool {
	t, ok := target.(*resultError)
	return ok && e.r.code == t.r.code
}

// Result returns a detached copy of the wrapped Result.
func (e *resultError) Result() Result { return e.r.Detach() }

// Err returns nil when r is successful and an error otherwise. The error's
// text is r.Message() and IsCode(err, r.Code()) holds.
func (r Result) Err() error {
	if r.OK() {
		return nil
	}
	return &resultError{r: r.Detach()}
}

// From converts err to a Result.
//   - nil → Success
//   - an error from Result.Err (possibly wrapped) → that Result
//   - anything else → ExceptionOccurred with err.Error() appended
func From(err error) Result {
	if err == nil {
		return Result{}
	}
	var re *resultError
	if errors.As(err, &re) {
		return re.Result()
	}
	return New(ExceptionOccurred).Append(err.Error())
}
