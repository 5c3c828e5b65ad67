// predicates.go — classification helpers over plain errors.
//
// Scope:
//   • Answer "which code does this error carry?" for errors produced by
//     Result.Err, through any fmt.Errorf("%w") or errors.Join wrapping.
//   • Use errors.As so traversal covers single and multi unwraps.
package fruitbowl

import "errors"

// CodeOf returns the code of the first Result found along err's chain.
// nil yields Success; an error with no Result in its chain yields
// ExceptionOccurred.
func CodeOf(err error) Code {
	if err == nil {
		return Success
	}
	var re *resultError
	if errors.As(err, &re) {
		return re.r.code
	}
	return ExceptionOccurred
}

// IsCode reports whether err carries a Result with the given code.
// IsCode(nil, Success) is true.
func IsCode(err error, code Code) bool {
	return CodeOf(err) == code
}
