// message.go — the shared, reference-counted message payload behind Result.
//
// Design:
//   • A payload is created only by Append; a Result without one allocates
//     nothing and reads its text from Code.Text().
//   • The text is immutable once published. Copies alias the same payload and
//     bump refs; they never duplicate the string.
//   • refs is a plain int. Results that share a payload must stay on one
//     goroutine, or the caller serializes access.
//
// Lifecycle:
//   newMessage → refs=1
//   retain     → refs+1 (Clone, Assign, WithSeverity); nil once freed
//   release    → refs-1; at zero the text is dropped
package fruitbowl

// trailMarker separates successive causes in an appended message.
const trailMarker = "\n  ->"

type message struct {
	text string
	refs int
}

func newMessage(text string) *message {
	return &message{text: text, refs: 1}
}

// retain adds one owner and returns m for chaining. A nil or already freed
// payload yields nil.
func (m *message) retain() *message {
	if m == nil || m.refs <= 0 {
		return nil
	}
	m.refs++
	return m
}

// release drops one owner; the last owner clears the payload.
func (m *message) release() {
	if m == nil || m.refs <= 0 {
		return
	}
	m.refs--
	if m.refs == 0 {
		m.text = ""
	}
}

// joinTrail builds "<base>\n  -><text>" in a single allocation.
func joinTrail(base, text string) string {
	buf := make([]byte, 0, len(base)+len(trailMarker)+len(text))
	buf = append(buf, base...)
	buf = append(buf, trailMarker...)
	buf = append(buf, text...)
	return string(buf)
}
