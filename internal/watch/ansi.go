package watch

import "fmt"

// ANSI escape codes used by the status line.
const (
	Reset     = "\033[0m"
	Bold      = "\033[1m"
	Dim       = "\033[2m"
	Red       = "\033[31m"
	Green     = "\033[32m"
	Yellow    = "\033[33m"
	Cyan      = "\033[36m"
	BrightRed = "\033[91m"
	ClearLine = "\r\033[2K"
)

// Colorize wraps text with color and a reset suffix. An empty color returns
// text unchanged.
func Colorize(color, text string) string {
	if color == "" {
		return text
	}
	return color + text + Reset
}

// Colorf formats according to format and colorizes the result.
func Colorf(color, format string, args ...any) string {
	return Colorize(color, fmt.Sprintf(format, args...))
}
