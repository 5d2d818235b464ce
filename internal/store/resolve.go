package store

import (
	"path/filepath"
	"strings"
)

// ResolvePath turns a store argument into its on-disk path.
//
// The fixed Extension is appended unless already present. Arguments that
// carry a path separator or are absolute are used as given; bare names
// resolve against storeDir when one is configured, and against the working
// directory otherwise.
func ResolvePath(arg, storeDir string) string {
	path := arg
	if !strings.HasSuffix(path, Extension) {
		path += Extension
	}

	if storeDir == "" || filepath.IsAbs(path) || strings.ContainsAny(arg, `/\`) {
		return path
	}
	return filepath.Join(storeDir, path)
}
