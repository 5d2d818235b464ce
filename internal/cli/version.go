package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/trackfile/internal/buildinfo"
)

var resolveBuildInfo = buildinfo.Resolve

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show trk version and build information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := resolveBuildInfo()

		if isJSONOutput() {
			outputSuccess(info, nil)
			return nil
		}

		fmt.Printf("trk %s (%s)\n", info.Version, info.ModulePath)
		if info.Commit != "" {
			line := "built from " + info.Commit
			if info.CommitTime != "" {
				line += " at " + info.CommitTime
			}
			if info.Modified {
				line += ", modified"
			}
			fmt.Println(line)
		}
		fmt.Printf("%s %s/%s\n", info.GoVersion, info.GOOS, info.GOARCH)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
