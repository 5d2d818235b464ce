// Package cli implements the command-line interface.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/trackfile/internal/config"
	"github.com/aidanlsb/trackfile/internal/ui"
)

var (
	// Global flags
	storeDirFlag string
	configPath   string

	// Resolved values
	resolvedStoreDir string
	cfg              *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "trk",
	Short: "Trackfile - rename and inspect track schedule stores",
	Long: `Trackfile manages track schedule stores: small versioned files that map
track names to dates. The primary operation is renaming a track while
keeping its date and the order of everything around it.

Stores are plain files (one per schedule, extension .emat) written by the
scheduling system; trk reads them, rewrites them atomically, and never
touches them on error.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config resolution for commands that don't need it
		switch cmd.Name() {
		case "completion", "help", "version":
			return nil
		}
		if cmd.Parent() != nil && cmd.Parent().Name() == "completion" {
			return nil
		}

		var err error
		cfg, err = loadGlobalConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		ui.ConfigureTheme(cfg.UI.Accent)
		ui.ConfigureMarkdownCodeTheme(cfg.UI.CodeTheme)

		// Resolve store dir: explicit flag > config > current directory
		if storeDirFlag != "" {
			resolvedStoreDir = storeDirFlag
		} else {
			resolvedStoreDir = cfg.ExpandedStoreDir()
		}

		return nil
	},
}

// Execute runs the CLI.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !jsonOutput {
		fmt.Fprintln(os.Stderr, ui.Error(err.Error()))
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&storeDirFlag, "store-dir", "d", "", "Directory bare store names resolve against")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for agent/script use)")
}

// getStoreDir returns the resolved store directory. Empty means the
// current working directory.
func getStoreDir() string {
	return resolvedStoreDir
}

func loadGlobalConfig() (*config.Config, error) {
	var loadedCfg *config.Config
	var err error
	if strings.TrimSpace(configPath) != "" {
		loadedCfg, err = config.LoadFrom(configPath)
	} else {
		loadedCfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if loadedCfg == nil {
		loadedCfg = &config.Config{}
	}
	return loadedCfg, nil
}
