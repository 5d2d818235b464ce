package ui

import (
	"os"
	"strconv"

	"github.com/charmbracelet/x/term"
)

// DefaultTermWidth is the fallback terminal width when detection fails.
const DefaultTermWidth = 120

// DisplayContext carries the terminal facts commands use to choose between
// rendered and plain output.
type DisplayContext struct {
	TermWidth int
	IsTTY     bool
}

// NewDisplayContext inspects stdout. Width comes from the terminal when
// stdout is one, then $COLUMNS, then DefaultTermWidth.
func NewDisplayContext() *DisplayContext {
	fd := os.Stdout.Fd()
	ctx := &DisplayContext{
		TermWidth: DefaultTermWidth,
		IsTTY:     term.IsTerminal(fd),
	}

	if ctx.IsTTY {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			ctx.TermWidth = w
			return ctx
		}
	}
	if w := widthFromEnv(); w > 0 {
		ctx.TermWidth = w
	}

	return ctx
}

// AvailableWidth returns the usable width after accounting for left margin.
func (d *DisplayContext) AvailableWidth(leftMargin int) int {
	return d.TermWidth - leftMargin
}

func widthFromEnv() int {
	v := os.Getenv("COLUMNS")
	if v == "" {
		return 0
	}
	w, err := strconv.Atoi(v)
	if err != nil || w <= 0 {
		return 0
	}
	return w
}
