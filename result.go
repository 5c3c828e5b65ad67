// result.go — the Result value: a code, a severity and an optional shared
// message.
//
// Ownership model:
//   - A Result built by New or the zero value owns nothing; it is free to copy.
//   - Append returns a Result that owns a fresh payload (refs=1).
//   - Clone is the owning copy: it aliases the payload and adds a reference.
//     A plain Go assignment (b := a) is a borrowed view and adds none.
//   - Release gives the reference back; Assign releases the old payload and
//     takes a reference on the new one. Assign is safe on itself.
//
// Equality (Equal, Is) looks at the code only. Severity and message are
// diagnostic annotations.
package fruitbowl

import (
	"fmt"
	"strings"
)

// Result carries the outcome of an operation. The zero value is Success with
// SeverityInfo and no message.
type Result struct {
	code     Code
	severity Severity
	msg      *message
}

// New returns a Result for code with SeverityInfo. It does not allocate.
func New(code Code) Result {
	return Result{code: code}
}

// NewWithSeverity returns a Result for code carrying sev.
func NewWithSeverity(code Code, sev Severity) Result {
	return Result{code: code, severity: sev}
}

// Errorf is shorthand for New(code).Appendf(format, args...).
func Errorf(code Code, format string, args ...any) Result {
	return New(code).Appendf(format, args...)
}

func (r Result) Code() Code         { return r.code }
func (r Result) Severity() Severity { return r.severity }

// Message returns the appended trail if present, otherwise the code's
// default text. It never returns an empty string.
func (r Result) Message() string {
	if r.msg != nil && r.msg.refs > 0 {
		return r.msg.text
	}
	return r.code.Text()
}

// HasMessage reports whether r holds a live appended message.
func (r Result) HasMessage() bool {
	return r.msg != nil && r.msg.refs > 0
}

// Refs reports how many owners share r's message, or 0 when r has none.
func (r Result) Refs() int {
	if r.msg == nil {
		return 0
	}
	return r.msg.refs
}

// Clone returns an owning copy of r that shares its message. If the message
// has already been freed the copy has none.
func (r Result) Clone() Result {
	r.msg = r.msg.retain()
	return r
}

// Detach returns a copy of r with a payload of its own (refs=1), sharing no
// counter with r. Use it to hand a Result to another goroutine.
func (r Result) Detach() Result {
	d := Result{code: r.code, severity: r.severity}
	if r.HasMessage() {
		d.msg = newMessage(r.msg.text)
	}
	return d
}

// Assign makes r an owning copy of other, releasing r's previous message.
// Assigning a Result to itself (or to another holder of the same payload)
// leaves the reference count unchanged.
func (r *Result) Assign(other Result) {
	if r == nil {
		return
	}
	if r.msg == other.msg {
		r.code = other.code
		r.severity = other.severity
		return
	}
	old := r.msg
	r.code = other.code
	r.severity = other.severity
	r.msg = other.msg.retain()
	old.release()
}

// Release drops r's reference to its message. The code and severity remain.
// Calling Release on a Result without a message is a no-op.
func (r *Result) Release() {
	if r == nil || r.msg == nil {
		return
	}
	r.msg.release()
	r.msg = nil
}

// Append returns a new Result with r's code and severity and the message
// "<r.Message()>\n  -><text>". The new Result owns a fresh payload; r is
// unchanged.
func (r Result) Append(text string) Result {
	return Result{
		code:     r.code,
		severity: r.severity,
		msg:      newMessage(joinTrail(r.Message(), text)),
	}
}

// Appendf is Append with fmt.Sprintf formatting.
func (r Result) Appendf(format string, args ...any) Result {
	return r.Append(fmt.Sprintf(format, args...))
}

// WithSeverity returns an owning copy of r carrying sev.
func (r Result) WithSeverity(sev Severity) Result {
	c := r.Clone()
	c.severity = sev
	return c
}

// OK reports whether r's code is Success.
func (r Result) OK() bool { return r.code == Success }

// Failed reports whether r's code is anything but Success.
func (r Result) Failed() bool { return r.code != Success }

// Equal compares codes only.
func (r Result) Equal(other Result) bool { return r.code == other.code }

// Is reports whether r carries code.
func (r Result) Is(code Code) bool { return r.code == code }

// Trace splits the message into its breadcrumbs: the base text first, then
// each appended cause in the order it was added, without the marker.
func (r Result) Trace() []string {
	return strings.Split(r.Message(), trailMarker)
}
