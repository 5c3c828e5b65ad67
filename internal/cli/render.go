// render.go — colour palette for codes, severities and hash values.
package cli

import (
	"github.com/fatih/color"

	"github.com/xgx-io/fruitbowl"
)

var (
	okColor       = color.New(color.FgGreen, color.Bold)
	codeColor     = color.New(color.FgYellow, color.Bold)
	hashColor     = color.New(color.FgCyan)
	infoColor     = color.New(color.FgBlue)
	warningColor  = color.New(color.FgYellow)
	errorColor    = color.New(color.FgRed)
	criticalColor = color.New(color.FgRed, color.Bold, color.ReverseVideo)
)

func paintCode(c fruitbowl.Code) string {
	if c.OK() {
		return okColor.Sprint(c.String())
	}
	return codeColor.Sprint(c.String())
}

func paintSeverity(s fruitbowl.Severity) string {
	switch s {
	case fruitbowl.SeverityWarning:
		return warningColor.Sprint(s.String())
	case fruitbowl.SeverityError:
		return errorColor.Sprint(s.String())
	case fruitbowl.SeverityCritical:
		return criticalColor.Sprint(s.String())
	}
	return infoColor.Sprint(s.String())
}
