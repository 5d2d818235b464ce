package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/trackfile/internal/dates"
	"github.com/aidanlsb/trackfile/internal/store"
	"github.com/aidanlsb/trackfile/internal/ui"
)

var showCmd = &cobra.Command{
	Use:   "show <store> <name>",
	Short: "Show a single track",
	Long: `Show one track's name and date.

Examples:
  trk show spring alice
  trk show spring alice --json`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		storeArg, name := args[0], args[1]

		path := resolveStorePath(storeArg)
		s, err := store.Load(path)
		if err != nil {
			return handleStoreError(storeArg, err)
		}

		track, ok := s.Get(name)
		if !ok {
			return handleErrorMsg(ErrTrackNotFound,
				fmt.Sprintf("track not found: %s", name),
				fmt.Sprintf("Run 'trk list %s' to see track names", storeArg))
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"store": path,
				"track": TrackView{Name: track.Name, Date: track.Date},
			}, nil)
			return nil
		}

		if hint := dates.Describe(track.Date, time.Now()); hint != "" {
			fmt.Printf("%s  %s  %s\n", ui.Bold.Render(track.Name), track.Date, ui.Hint("("+hint+")"))
		} else {
			fmt.Printf("%s  %s\n", ui.Bold.Render(track.Name), track.Date)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
