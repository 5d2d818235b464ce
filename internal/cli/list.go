package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/trackfile/internal/dates"
	"github.com/aidanlsb/trackfile/internal/store"
	"github.com/aidanlsb/trackfile/internal/ui"
)

var listPipeFlag bool

var listCmd = &cobra.Command{
	Use:   "list <store>",
	Short: "List tracks in a schedule store",
	Long: `List every track in a schedule store, in stored order.

When stdout is a terminal the output is an aligned table with a relative
date hint. When piped (or with --pipe) it degrades to name<TAB>date lines
for cut/fzf.

Examples:
  trk list spring
  trk list spring --json
  trk list spring | cut -f1`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if listPipeFlag {
			usePipe := true
			SetPipeFormat(&usePipe)
			defer SetPipeFormat(nil)
		}

		path := resolveStorePath(args[0])
		s, err := store.Load(path)
		if err != nil {
			return handleStoreError(args[0], err)
		}

		if isJSONOutput() {
			items := make([]TrackView, 0, s.Len())
			for _, t := range s.Tracks {
				items = append(items, TrackView{Name: t.Name, Date: t.Date})
			}
			outputSuccess(map[string]interface{}{
				"store":  path,
				"tracks": items,
			}, &Meta{Count: len(items)})
			return nil
		}

		if ShouldUsePipeFormat() {
			WriteTrackLines(os.Stdout, s.Tracks)
			return nil
		}

		fmt.Printf("%s %s\n", ui.StorePath(path), ui.Count(s.Len(), "track", "tracks"))
		if s.Len() == 0 {
			return nil
		}
		fmt.Println()

		now := time.Now()
		tbl := ui.NewTable(3)
		tbl.AddRow(ui.Hint("NAME"), ui.Hint("DATE"), "")
		for _, t := range s.Tracks {
			hint := ""
			if d := dates.Describe(t.Date, now); d != "" {
				hint = ui.Hint(d)
			}
			tbl.AddRow(t.Name, t.Date, hint)
		}
		fmt.Print(tbl.String())
		return nil
	},
}

// TrackView is the JSON representation of a single track.
type TrackView struct {
	Name string `json:"name"`
	Date string `json:"date"`
}

func init() {
	listCmd.Flags().BoolVar(&listPipeFlag, "pipe", false, "Force pipe-friendly tab-separated output")
	rootCmd.AddCommand(listCmd)
}
