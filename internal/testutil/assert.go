package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// AssertFileExists fails the test if the file does not exist.
func (d *TestStoreDir) AssertFileExists(relPath string) {
	d.t.Helper()
	fullPath := filepath.Join(d.Path, relPath)
	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		d.t.Errorf("expected file to exist: %s", relPath)
	}
}

// AssertFileNotExists fails the test if the file exists.
func (d *TestStoreDir) AssertFileNotExists(relPath string) {
	d.t.Helper()
	fullPath := filepath.Join(d.Path, relPath)
	if _, err := os.Stat(fullPath); err == nil {
		d.t.Errorf("expected file to not exist: %s", relPath)
	}
}

// AssertFileContains fails the test if the file does not contain the substring.
func (d *TestStoreDir) AssertFileContains(relPath, substr string) {
	d.t.Helper()
	content := d.ReadFile(relPath)
	if !strings.Contains(content, substr) {
		d.t.Errorf("expected file %s to contain %q, got:\n%s", relPath, substr, content)
	}
}

// AssertFileNotContains fails the test if the file contains the substring.
func (d *TestStoreDir) AssertFileNotContains(relPath, substr string) {
	d.t.Helper()
	content := d.ReadFile(relPath)
	if strings.Contains(content, substr) {
		d.t.Errorf("expected file %s to not contain %q, got:\n%s", relPath, substr, content)
	}
}

// AssertFileEquals fails the test if the file content differs from expected.
// Use it to pin down the exact serialized form of a store after a write,
// or to verify a store was left untouched.
func (d *TestStoreDir) AssertFileEquals(relPath, expected string) {
	d.t.Helper()
	content := d.ReadFile(relPath)
	if content != expected {
		d.t.Errorf("file %s content mismatch\nexpected:\n%s\ngot:\n%s", relPath, expected, content)
	}
}

// AssertNoTempFiles fails the test if any temp files from interrupted
// writes are left in the store directory.
func (d *TestStoreDir) AssertNoTempFiles() {
	d.t.Helper()
	entries, err := os.ReadDir(d.Path)
	if err != nil {
		d.t.Fatalf("failed to read store directory: %v", err)
	}
	for _, entry := range entries {
		if strings.Contains(entry.Name(), ".tmp-") {
			d.t.Errorf("expected no temp files, found: %s", entry.Name())
		}
	}
}

// AssertHasWarning checks that the result contains a warning with the given code.
func (r *CLIResult) AssertHasWarning(t *testing.T, code string) {
	t.Helper()
	for _, w := range r.Warnings {
		if w.Code == code {
			return
		}
	}
	t.Errorf("expected warning with code %s, got warnings: %+v", code, r.Warnings)
}

// AssertNoWarnings checks that the result has no warnings.
func (r *CLIResult) AssertNoWarnings(t *testing.T) {
	t.Helper()
	if len(r.Warnings) > 0 {
		t.Errorf("expected no warnings, got: %+v", r.Warnings)
	}
}

// AssertResultCount checks that a list in the result data has the expected length.
func (r *CLIResult) AssertResultCount(t *testing.T, key string, expected int) {
	t.Helper()
	results := r.DataList(key)
	if len(results) != expected {
		t.Errorf("expected %d %s, got %d\nRaw: %s", expected, key, len(results), r.RawOutput)
	}
}
