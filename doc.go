// doc.go — package documentation for fruitbowl
//
// Package fruitbowl provides Result, a small copyable outcome value: a Code
// from a closed set, a Severity, and an optional diagnostic message that is
// allocated lazily and shared between copies by reference count. It is meant
// to be returned by value from every fallible function without costing an
// allocation on the success path.
//
// The companion package jhash provides the incremental string hash used to
// identify short strings.
//
// # Building a trail
//
// Append never mutates its receiver. It returns a new Result whose message is
// the receiver's current text, a newline, the "  ->" marker and the new text.
// Chaining Append as an error climbs the call stack yields a breadcrumb trail
// with the most recent cause last:
//
//	func load(n int) fruitbowl.Result {
//	    if n == 0 {
//	        return fruitbowl.New(fruitbowl.BufferOverflow).Append("Base case reached")
//	    }
//	    return load(n - 1).Appendf("n=%d", n)
//	}
//
//	fmt.Println(load(2))
//	// [0x11] The buffer exceeded its size
//	//   ->Base case reached
//	//   ->n=1
//	//   ->n=2
//
// # Sharing and ownership
//
//	+----------------------+---------------------+-------------------------------+
//	| Operation            | Allocates?          | Reference count               |
//	+----------------------+---------------------+-------------------------------+
//	| New / zero value     | NO                  | no payload                    |
//	| Append / Appendf     | YES (one string)    | new payload, refs=1           |
//	| Clone / WithSeverity | NO                  | +1 on the shared payload      |
//	| Detach               | YES if a message    | own payload, refs=1           |
//	| Assign               | NO                  | -1 old payload, +1 new one    |
//	| Release              | NO                  | -1; text dropped at zero      |
//	+----------------------+---------------------+-------------------------------+
//
// A plain Go assignment copies the handle without taking a reference. Use
// Clone when the copy must outlive the original's Release.
//
// The counter is not atomic. Results that share a payload must be used from
// one goroutine at a time. Use Detach to hand a Result to another goroutine;
// Err and Recorder do so internally.
//
// # Comparison
//
// Equal and Is compare codes only. Two Results with the same code and
// different messages or severities are equal. OK reports Code() == Success.
//
// # Formatting
//
// Result implements fmt.Formatter and io.WriterTo:
//   - %v, %s, String, WriteTo → exactly Message()
//   - %q                      → quoted Message()
//   - %+v                     → code, severity and refs header, then Message()
//
// # Interop
//
//   - Result.Err gives an error (nil on success); From converts back.
//   - CodeOf and IsCode classify plain errors through wrapping and joins.
//   - Recorder and RunRecorded keep the last Result for boundaries that can
//     only return a Code.
package fruitbowl
