package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/trackfile/internal/store"
	"github.com/aidanlsb/trackfile/internal/ui"
)

var renameCmd = &cobra.Command{
	Use:   "rename <store> <old-name> <new-name>",
	Short: "Rename a track in a schedule store",
	Long: `Rename a track in a schedule store, keeping its date.

The store argument is a base name or path; the .emat extension is appended
when missing, and bare names resolve against --store-dir (or store_dir from
config). The store is rewritten atomically, and on any error it is left
byte-for-byte untouched.

If the new name already exists, its date is replaced by the renamed track's
date (last write wins) and a warning is emitted. Renaming a track to its
own name is a no-op and skips the write entirely.

Examples:
  trk rename spring alice carol
  trk rename ./season-2024 alice carol
  trk rename spring alice carol --json`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		storeArg, oldName, newName := args[0], args[1], args[2]

		if storeArg == "" {
			return handleErrorMsg(ErrInvalidInput, "store name must not be empty",
				"Usage: trk rename <store> <old-name> <new-name>")
		}
		if oldName == "" || newName == "" {
			return handleErrorMsg(ErrInvalidInput, "track names must not be empty",
				"Usage: trk rename <store> <old-name> <new-name>")
		}

		path := resolveStorePath(storeArg)
		outcome, err := store.RenameTrack(path, oldName, newName)
		if err != nil {
			return handleStoreError(storeArg, err)
		}

		var warnings []Warning
		if outcome.Overwrote {
			warnings = append(warnings, Warning{
				Code:    WarnTrackOverwritten,
				Message: fmt.Sprintf("overwrote existing track %q (was %s)", newName, outcome.Previous.Date),
				Track:   outcome.Previous.Name,
				Date:    outcome.Previous.Date,
			})
		}

		if isJSONOutput() {
			result := RenameResult{
				Store:     path,
				OldName:   oldName,
				NewName:   newName,
				Date:      outcome.Track.Date,
				NoOp:      outcome.NoOp,
				Overwrote: outcome.Overwrote,
			}
			outputSuccessWithWarnings(result, warnings, nil)
			return nil
		}

		if outcome.NoOp {
			fmt.Println(ui.Infof("%s is already named %s; store untouched", oldName, newName))
			return nil
		}

		fmt.Println(ui.Successf("Renamed %s → %s in %s", oldName, newName, ui.StorePath(path)))
		for _, w := range warnings {
			fmt.Println(ui.Warning(w.Message))
		}
		return nil
	},
}

// RenameResult represents the result of a rename operation.
type RenameResult struct {
	Store     string `json:"store"`
	OldName   string `json:"old_name"`
	NewName   string `json:"new_name"`
	Date      string `json:"date"`
	NoOp      bool   `json:"no_op,omitempty"`
	Overwrote bool   `json:"overwrote,omitempty"`
}

func init() {
	rootCmd.AddCommand(renameCmd)
}
