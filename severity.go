// severity.go — display severity carried alongside a Result code.
package fruitbowl

import (
	"errors"
	"fmt"
	"strings"
)

// Severity annotates a Result for display. It never takes part in equality.
type Severity uint8

const (
	// SeverityInfo is the zero value.
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
	SeverityCritical
)

// ErrUnknownSeverity is returned by ParseSeverity for unrecognized names.
var ErrUnknownSeverity = errors.New("unknown severity")

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	case SeverityCritical:
		return "CRITICAL"
	}
	return "UNKNOWN"
}

// ParseSeverity accepts the String form in any case, plus "warn" and "crit".
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "INFO":
		return SeverityInfo, nil
	case "WARNING", "WARN":
		return SeverityWarning, nil
	case "ERROR":
		return SeverityError, nil
	case "CRITICAL", "CRIT":
		return SeverityCritical, nil
	}
	return SeverityInfo, fmt.Errorf("severity %q: %w", s, ErrUnknownSeverity)
}
