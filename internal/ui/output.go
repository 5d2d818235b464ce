package ui

import "fmt"

// Status symbols shared by all text-mode output.
const (
	SymbolSuccess = "✓"
	SymbolError   = "✗"
	SymbolWarning = "⚠"
	SymbolInfo    = "ℹ"
)

func tagged(symbol, msg string) string {
	return symbol + " " + msg
}

// Success prefixes a message with the success symbol.
func Success(msg string) string { return tagged(SymbolSuccess, msg) }

// Successf is Success with fmt-style formatting.
func Successf(format string, args ...interface{}) string {
	return Success(fmt.Sprintf(format, args...))
}

// Error prefixes a message with the error symbol.
func Error(msg string) string { return tagged(SymbolError, msg) }

// Warning prefixes a message with the warning symbol.
func Warning(msg string) string { return tagged(SymbolWarning, msg) }

// Info prefixes a message with the info symbol.
func Info(msg string) string { return tagged(SymbolInfo, msg) }

// Infof is Info with fmt-style formatting.
func Infof(format string, args ...interface{}) string {
	return Info(fmt.Sprintf(format, args...))
}

// Header styles a section header.
func Header(msg string) string { return Bold.Render(msg) }

// StorePath styles a store file path.
func StorePath(path string) string { return Accent.Render(path) }

// Hint styles muted secondary detail.
func Hint(msg string) string { return Muted.Render(msg) }

// Count formats a count badge like "(3 tracks)".
func Count(n int, singular, plural string) string {
	word := plural
	if n == 1 {
		word = singular
	}
	return fmt.Sprintf("(%d %s)", n, word)
}
