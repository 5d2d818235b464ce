package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var pathCmd = &cobra.Command{
	Use:   "path <store>",
	Short: "Print the resolved path of a schedule store",
	Long: `Prints the absolute path a store argument resolves to, applying the
extension and store directory rules without requiring the store to exist.

Useful for shell integration:
  cat $(trk path spring)`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := resolveStorePath(args[0])
		abs, err := filepath.Abs(path)
		if err != nil {
			return handleError(ErrInternal, err, "")
		}

		_, statErr := os.Stat(abs)
		exists := statErr == nil

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"store":  args[0],
				"path":   abs,
				"exists": exists,
			}, nil)
			return nil
		}

		fmt.Println(abs)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pathCmd)
}
