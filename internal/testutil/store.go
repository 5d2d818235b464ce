// Package testutil provides reusable test utilities for Trackfile integration tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aidanlsb/trackfile/internal/store"
)

// TestStoreDir represents a temporary store directory for testing.
type TestStoreDir struct {
	Path  string
	t     *testing.T
	files map[string]string
}

// NewTestStoreDir creates a new store directory builder.
// Call Build() to create the actual directory.
func NewTestStoreDir(t *testing.T) *TestStoreDir {
	t.Helper()
	return &TestStoreDir{
		t:     t,
		files: make(map[string]string),
	}
}

// WithStore adds a store file with the given content. The name gets the
// store extension appended when missing.
func (d *TestStoreDir) WithStore(name, content string) *TestStoreDir {
	if !strings.HasSuffix(name, store.Extension) {
		name += store.Extension
	}
	d.files[name] = content
	return d
}

// WithFile adds an arbitrary file, name used as given.
func (d *TestStoreDir) WithFile(name, content string) *TestStoreDir {
	d.files[name] = content
	return d
}

// Build creates the directory and all configured files.
// Returns the TestStoreDir for method chaining.
func (d *TestStoreDir) Build() *TestStoreDir {
	d.t.Helper()

	d.Path = d.t.TempDir()
	for name, content := range d.files {
		d.writeFile(name, content)
	}

	return d
}

// writeFile writes a file to the store directory, creating parents as needed.
func (d *TestStoreDir) writeFile(relPath, content string) {
	d.t.Helper()
	fullPath := filepath.Join(d.Path, relPath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		d.t.Fatalf("failed to create directory for %s: %v", relPath, err)
	}
	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		d.t.Fatalf("failed to write file %s: %v", fullPath, err)
	}
}

// ReadFile reads a file from the store directory.
func (d *TestStoreDir) ReadFile(relPath string) string {
	d.t.Helper()
	content, err := os.ReadFile(filepath.Join(d.Path, relPath))
	if err != nil {
		d.t.Fatalf("failed to read file %s: %v", relPath, err)
	}
	return string(content)
}

// FileExists checks if a file exists in the store directory.
func (d *TestStoreDir) FileExists(relPath string) bool {
	d.t.Helper()
	_, err := os.Stat(filepath.Join(d.Path, relPath))
	return err == nil
}

// TwoTrackStore returns a canonical two-track store document.
func TwoTrackStore() string {
	return `version: 1
tracks:
    - name: alice
      date: "2024-01-01"
    - name: bob
      date: "2024-02-02"
`
}

// SingleTrackStore returns a canonical one-track store document.
func SingleTrackStore(name, date string) string {
	return `version: 1
tracks:
    - name: ` + name + `
      date: "` + date + `"
`
}
