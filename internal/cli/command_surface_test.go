package cli

import (
	"slices"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// commandFlagSurface declares the local flags of every runnable command.
// New commands and flags must be added here so the docs topics and shell
// completions stay in step with the CLI tree.
var commandFlagSurface = map[string][]string{
	"rename":  {},
	"list":    {"pipe"},
	"show":    {},
	"path":    {},
	"docs":    {},
	"version": {},
}

func TestCommandFlagsMatchDeclaredSurface(t *testing.T) {
	for path, declared := range commandFlagSurface {
		cmd, ok := findCommandByPath(rootCmd, path)
		if !ok {
			t.Errorf("declared command %q missing from CLI tree", path)
			continue
		}

		var got []string
		cmd.LocalFlags().VisitAll(func(f *pflag.Flag) {
			if f.Name != "help" {
				got = append(got, f.Name)
			}
		})
		slices.Sort(got)

		want := append([]string(nil), declared...)
		slices.Sort(want)

		if !slices.Equal(got, want) {
			t.Errorf("command %q flags = %v, declared surface = %v", path, got, want)
		}
	}
}

func TestAllRunnableCommandsAreDeclared(t *testing.T) {
	// Cobra injects these itself.
	skip := []string{"completion", "help"}

	for _, path := range commandPaths(rootCmd, "") {
		if path == "" || slices.Contains(skip, strings.Fields(path)[0]) {
			continue
		}

		cmd, ok := findCommandByPath(rootCmd, path)
		if !ok {
			t.Errorf("failed to locate command for path %q", path)
			continue
		}
		if !cmd.Runnable() {
			continue
		}

		if _, ok := commandFlagSurface[path]; !ok {
			t.Errorf("CLI command %q is missing from commandFlagSurface", path)
		}
	}
}

func TestGlobalFlags(t *testing.T) {
	for _, name := range []string{"store-dir", "config", "json"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("root command is missing persistent flag %q", name)
		}
	}

	short := rootCmd.PersistentFlags().ShorthandLookup("d")
	if short == nil || short.Name != "store-dir" {
		t.Error("expected -d to be the shorthand for --store-dir")
	}
}

// commandPaths lists every space-joined subcommand path below cmd.
func commandPaths(cmd *cobra.Command, prefix string) []string {
	var paths []string
	for _, child := range cmd.Commands() {
		p := child.Name()
		if prefix != "" {
			p = prefix + " " + child.Name()
		}
		paths = append(paths, p)
		paths = append(paths, commandPaths(child, p)...)
	}
	return paths
}

func findCommandByPath(root *cobra.Command, path string) (*cobra.Command, bool) {
	cmd, rest, err := root.Find(strings.Fields(path))
	if err != nil || cmd == nil || len(rest) > 0 {
		return nil, false
	}
	return cmd, true
}
