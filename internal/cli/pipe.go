// Package cli implements the command-line interface.
// This file selects and writes pipe-friendly output for list commands.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/aidanlsb/trackfile/internal/store"
)

// pipeFormatOverride holds an explicit --pipe flag value. nil means
// auto-detect from the output device.
var pipeFormatOverride *bool

// SetPipeFormat forces pipe format on or off. Pass nil to restore
// auto-detection.
func SetPipeFormat(usePipe *bool) {
	pipeFormatOverride = usePipe
}

// IsPipedOutput reports whether stdout is not a terminal.
func IsPipedOutput() bool {
	return !isatty.IsTerminal(os.Stdout.Fd())
}

// ShouldUsePipeFormat reports whether list output should be tab-separated.
// An explicit flag wins over detection; JSON mode never uses pipe format
// since the envelope is already machine-readable.
func ShouldUsePipeFormat() bool {
	switch {
	case isJSONOutput():
		return false
	case pipeFormatOverride != nil:
		return *pipeFormatOverride
	default:
		return IsPipedOutput()
	}
}

// WriteTrackLines writes name<TAB>date lines in stored order. Tabs and
// newlines inside names are flattened to spaces so downstream cut/fzf see
// one record per line.
func WriteTrackLines(w io.Writer, tracks []store.Track) {
	sanitize := strings.NewReplacer("\t", " ", "\n", " ")
	for _, t := range tracks {
		fmt.Fprintf(w, "%s\t%s\n", sanitize.Replace(t.Name), t.Date)
	}
}
