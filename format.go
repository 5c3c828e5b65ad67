// format.go — fmt.Formatter and io.WriterTo for Result.
//
// Behavior:
//
//   %s, %v   → exactly Message(), no framing.
//   %q       → Message() quoted.
//   %+v      → verbose header, then the message on the next line:
//                code=0x11(BUFFER_OVERFLOW) severity=ERROR refs=1
//                [0x11] The buffer exceeded its size
//                  ->Base case reached
//
// Write errors in formatting paths are ignored, as fmt does.
package fruitbowl

import (
	"fmt"
	"io"
)

// String returns Message().
func (r Result) String() string { return r.Message() }

// WriteTo writes Message() to w.
func (r Result) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, r.Message())
	return int64(n), err
}

func (r Result) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			formatVerbose(s, r)
			return
		}
		_, _ = io.WriteString(s, r.Message())
	case 's':
		_, _ = io.WriteString(s, r.Message())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", r.Message())
	default:
		_, _ = fmt.Fprintf(s, "%%!%c(fruitbowl.Result=%s)", verb, r.Message())
	}
}

func formatVerbose(w io.Writer, r Result) {
	_, _ = fmt.Fprintf(w, "code=0x%02X(%s) severity=%s refs=%d\n",
		uint8(r.code), r.code, r.severity, r.Refs())
	_, _ = io.WriteString(w, r.Message())
}
