package internal

// ANSI styling for human-facing output. The passphrase itself is never styled.

import "strings"

// Default: colors enabled. Override via SetColorEnabled.
var colorEnabled = true

// ANSI escape codes (Tokyo Night–inspired)
const (
	Reset  = "\x1b[0m"
	Bold   = "\x1b[1m"
	Purple = "\x1b[38;2;187;154;247m"
	Gray   = "\x1b[38;2;136;146;176m"
	Green  = "\x1b[38;2;158;206;106m"
	Red    = "\x1b[38;2;247;118;142m"
)

// SetColorEnabled toggles ANSI styling on or off.
func SetColorEnabled(on bool) {
	colorEnabled = on
}

// Style wraps s with the provided ANSI codes when color is enabled.
// When disabled, returns s unchanged.
//
// Example:
//
//	Style("PASSED", Bold, Green)
func Style(s string, codes ...string) string {
	if !colorEnabled || len(codes) == 0 {
		return s
	}
	var b strings.Builder
	for _, c := range codes {
		b.WriteString(c)
	}
	b.WriteString(s)
	b.WriteString(Reset)
	return b.String()
}

// Banner returns the styled version header.
func Banner(version string) string {
	return Style("passclip "+version, Bold, Purple)
}
