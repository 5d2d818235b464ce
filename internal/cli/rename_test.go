package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/aidanlsb/trackfile/internal/store"
)

var captureStdoutMu sync.Mutex

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	captureStdoutMu.Lock()
	defer captureStdoutMu.Unlock()

	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}

	os.Stdout = w

	outputCh := make(chan string, 1)
	errCh := make(chan error, 1)
	go func() {
		var buf bytes.Buffer
		_, copyErr := io.Copy(&buf, r)
		_ = r.Close()
		if copyErr != nil {
			errCh <- copyErr
			return
		}
		outputCh <- buf.String()
	}()

	fn()

	os.Stdout = orig
	_ = w.Close()
	select {
	case err := <-errCh:
		t.Fatalf("io.Copy: %v", err)
		return ""
	case output := <-outputCh:
		return output
	}
}

const twoTrackDoc = `version: 1
tracks:
    - name: alice
      date: "2024-01-01"
    - name: bob
      date: "2024-02-02"
`

func seedStore(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("failed to seed store: %v", err)
	}
	return dir
}

func useStoreDir(t *testing.T, dir string) {
	t.Helper()
	prev := resolvedStoreDir
	resolvedStoreDir = dir
	t.Cleanup(func() {
		resolvedStoreDir = prev
	})
}

func useJSONOutput(t *testing.T, on bool) {
	t.Helper()
	prev := jsonOutput
	jsonOutput = on
	t.Cleanup(func() {
		jsonOutput = prev
	})
}

type renameEnvelope struct {
	OK   bool `json:"ok"`
	Data struct {
		Store     string `json:"store"`
		OldName   string `json:"old_name"`
		NewName   string `json:"new_name"`
		Date      string `json:"date"`
		NoOp      bool   `json:"no_op"`
		Overwrote bool   `json:"overwrote"`
	} `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Warnings []struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Track   string `json:"track"`
		Date    string `json:"date"`
	} `json:"warnings"`
}

func runRename(t *testing.T, args ...string) (renameEnvelope, error) {
	t.Helper()

	var runErr error
	out := captureStdout(t, func() {
		runErr = renameCmd.RunE(renameCmd, args)
	})

	var env renameEnvelope
	if jsonOutput && out != "" {
		if err := json.Unmarshal([]byte(out), &env); err != nil {
			t.Fatalf("expected JSON output, got parse error: %v; out=%s", err, out)
		}
	}
	return env, runErr
}

func TestRenameCommandRenamesTrack(t *testing.T) {
	dir := seedStore(t, "spring.emat", twoTrackDoc)
	useStoreDir(t, dir)
	useJSONOutput(t, true)

	env, err := runRename(t, "spring", "alice", "carol")
	if err != nil {
		t.Fatalf("rename: %v", err)
	}
	if !env.OK {
		t.Fatalf("expected ok=true, got error: %+v", env.Error)
	}
	if env.Data.OldName != "alice" || env.Data.NewName != "carol" {
		t.Errorf("expected alice -> carol, got %s -> %s", env.Data.OldName, env.Data.NewName)
	}
	if env.Data.Date != "2024-01-01" {
		t.Errorf("expected date to survive the rename, got %q", env.Data.Date)
	}
	if len(env.Warnings) != 0 {
		t.Errorf("expected no warnings, got %+v", env.Warnings)
	}

	got, readErr := os.ReadFile(filepath.Join(dir, "spring.emat"))
	if readErr != nil {
		t.Fatalf("read store: %v", readErr)
	}
	want := `version: 1
tracks:
    - name: bob
      date: "2024-02-02"
    - name: carol
      date: "2024-01-01"
`
	if string(got) != want {
		t.Errorf("store content mismatch\nexpected:\n%s\ngot:\n%s", want, got)
	}
}

func TestRenameCommandCollisionWarnsAndKeepsPosition(t *testing.T) {
	dir := seedStore(t, "spring.emat", twoTrackDoc)
	useStoreDir(t, dir)
	useJSONOutput(t, true)

	env, err := runRename(t, "spring", "alice", "bob")
	if err != nil {
		t.Fatalf("rename: %v", err)
	}
	if !env.OK {
		t.Fatalf("expected ok=true, got error: %+v", env.Error)
	}
	if !env.Data.Overwrote {
		t.Error("expected overwrote=true")
	}
	if len(env.Warnings) != 1 {
		t.Fatalf("expected one warning, got %+v", env.Warnings)
	}
	if env.Warnings[0].Code != WarnTrackOverwritten {
		t.Errorf("expected warning code %s, got %s", WarnTrackOverwritten, env.Warnings[0].Code)
	}
	if !strings.Contains(env.Warnings[0].Message, "2024-02-02") {
		t.Errorf("expected warning to name the replaced date, got %q", env.Warnings[0].Message)
	}

	got, readErr := os.ReadFile(filepath.Join(dir, "spring.emat"))
	if readErr != nil {
		t.Fatalf("read store: %v", readErr)
	}
	want := `version: 1
tracks:
    - name: bob
      date: "2024-01-01"
`
	if string(got) != want {
		t.Errorf("store content mismatch\nexpected:\n%s\ngot:\n%s", want, got)
	}
}

func TestRenameCommandNoOpSkipsWrite(t *testing.T) {
	// A trailing comment survives only if the file is never rewritten.
	doc := twoTrackDoc + "\n# reviewed 2024-03-01\n"
	dir := seedStore(t, "spring.emat", doc)
	useStoreDir(t, dir)
	useJSONOutput(t, true)

	env, err := runRename(t, "spring", "alice", "alice")
	if err != nil {
		t.Fatalf("rename: %v", err)
	}
	if !env.OK {
		t.Fatalf("expected ok=true, got error: %+v", env.Error)
	}
	if !env.Data.NoOp {
		t.Error("expected no_op=true")
	}

	got, readErr := os.ReadFile(filepath.Join(dir, "spring.emat"))
	if readErr != nil {
		t.Fatalf("read store: %v", readErr)
	}
	if string(got) != doc {
		t.Errorf("expected store to be untouched\nexpected:\n%s\ngot:\n%s", doc, got)
	}
}

func TestRenameCommandMissingTrack(t *testing.T) {
	dir := seedStore(t, "spring.emat", twoTrackDoc)
	useStoreDir(t, dir)
	useJSONOutput(t, true)

	env, err := runRename(t, "spring", "mallory", "carol")
	if err != nil {
		t.Fatalf("expected nil error in JSON mode, got %v", err)
	}
	if env.OK {
		t.Fatal("expected ok=false")
	}
	if env.Error == nil || env.Error.Code != ErrTrackNotFound {
		t.Fatalf("expected error code %s, got %+v", ErrTrackNotFound, env.Error)
	}
	if !strings.Contains(env.Error.Message, "mallory") {
		t.Errorf("expected error to name the missing track, got %q", env.Error.Message)
	}

	got, readErr := os.ReadFile(filepath.Join(dir, "spring.emat"))
	if readErr != nil {
		t.Fatalf("read store: %v", readErr)
	}
	if string(got) != twoTrackDoc {
		t.Errorf("expected store to be untouched on error\ngot:\n%s", got)
	}
}

func TestRenameCommandMissingStoreTextMode(t *testing.T) {
	dir := t.TempDir()
	useStoreDir(t, dir)
	useJSONOutput(t, false)

	_, err := runRename(t, "missing", "alice", "carol")
	if err == nil {
		t.Fatal("expected an error for a missing store")
	}
	if !errors.Is(err, store.ErrStoreNotFound) {
		t.Errorf("expected ErrStoreNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "missing.emat") {
		t.Errorf("expected error to name the store file, got %q", err.Error())
	}

	if _, statErr := os.Stat(filepath.Join(dir, "missing.emat")); statErr == nil {
		t.Error("expected no store file to be created")
	}
}

func TestRenameCommandCorruptStore(t *testing.T) {
	dir := seedStore(t, "broken.emat", "version: 2\ntracks: []\n")
	useStoreDir(t, dir)
	useJSONOutput(t, true)

	env, err := runRename(t, "broken", "alice", "carol")
	if err != nil {
		t.Fatalf("expected nil error in JSON mode, got %v", err)
	}
	if env.OK {
		t.Fatal("expected ok=false")
	}
	if env.Error == nil || env.Error.Code != ErrStoreCorrupt {
		t.Fatalf("expected error code %s, got %+v", ErrStoreCorrupt, env.Error)
	}
}

func TestRenameCommandRejectsEmptyNames(t *testing.T) {
	dir := seedStore(t, "spring.emat", twoTrackDoc)
	useStoreDir(t, dir)
	useJSONOutput(t, false)

	_, err := runRename(t, "spring", "", "carol")
	if err == nil {
		t.Fatal("expected an error for an empty track name")
	}
	if !strings.Contains(err.Error(), "must not be empty") {
		t.Errorf("unexpected error: %v", err)
	}
}
