package cli

import (
	"fmt"
	"os"
)

const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Blue   = "\033[34m"
	Purple = "\033[35m"
	Cyan   = "\033[36m"
	White  = "\033[37m"
)

// disableColor is a cached check for the environment variable
var disableColor = checkNoColor()

func checkNoColor() bool {
	_, exists := os.LookupEnv("NO_COLOR")
	return exists
}

// Enabled reports whether colored output is on for this process.
func Enabled() bool {
	return !disableColor
}

// Stylize wraps text in a color code, honoring NO_COLOR.
func Stylize(text string, colorCode string) string {
	if disableColor {
		return text
	}
	return fmt.Sprintf("%s%s%s", colorCode, text, Reset)
}

// Paint wraps text in a color code unconditionally. Callers that carry
// their own with-color flag (like the log filter) use this instead of
// Stylize so the flag stays authoritative.
func Paint(text string, colorCode string) string {
	return fmt.Sprintf("%s%s%s", colorCode, text, Reset)
}

func CheckMark() string {
	return Stylize("✔", Green)
}

func CrossMark() string {
	return Stylize("✘", Red)
}

func Arrow() string {
	return Stylize("➜", Blue)
}

func WarningSign() string {
	return Stylize("⚠", Yellow)
}
