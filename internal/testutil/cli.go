package testutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
)

var (
	buildMu     sync.Mutex
	builtBinary string
	buildFailed error
)

// CLIResult is the observed outcome of one trk invocation: the decoded JSON
// envelope when run through RunCLI, plus the raw output and exit code.
type CLIResult struct {
	OK        bool
	Data      map[string]interface{}
	Error     *CLIError
	Warnings  []CLIWarning
	Meta      *CLIMeta
	RawOutput string
	ExitCode  int
}

// CLIError mirrors the envelope's error object.
type CLIError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// CLIWarning mirrors one entry of the envelope's warnings list.
type CLIWarning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Track   string `json:"track,omitempty"`
	Date    string `json:"date,omitempty"`
}

// CLIMeta mirrors the envelope's meta object.
type CLIMeta struct {
	Count int `json:"count,omitempty"`
}

// BuildCLI compiles the trk binary once per test process and returns its
// path. RunCLI calls it implicitly.
func BuildCLI(t *testing.T) string {
	t.Helper()

	buildMu.Lock()
	defer buildMu.Unlock()

	// A cached binary can vanish on runners that scrub temp dirs mid-run.
	if builtBinary != "" {
		if _, err := os.Stat(builtBinary); err == nil {
			return builtBinary
		}
		builtBinary, buildFailed = "", nil
	}

	if buildFailed == nil && builtBinary == "" {
		builtBinary, buildFailed = compileBinary()
	}
	if buildFailed != nil {
		t.Fatalf("failed to build CLI: %v", buildFailed)
	}

	return builtBinary
}

func compileBinary() (string, error) {
	root, err := moduleRoot()
	if err != nil {
		return "", err
	}

	dir, err := os.MkdirTemp("", "trk-cli-bin-*")
	if err != nil {
		return "", err
	}

	name := "trk"
	if runtime.GOOS == "windows" {
		name = "trk.exe"
	}

	target := filepath.Join(dir, name)
	cmd := exec.Command("go", "build", "-o", target, "./cmd/trk")
	cmd.Dir = root
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("go build: %w\n%s", err, out)
	}
	return target, nil
}

// moduleRoot walks upward from the working directory until it finds go.mod.
func moduleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("no go.mod above " + dir)
		}
		dir = parent
	}
}

// RunCLI runs trk with --store-dir pointed at this directory and --json, and
// decodes the envelope.
func (d *TestStoreDir) RunCLI(args ...string) *CLIResult {
	d.t.Helper()

	result := d.invoke(append([]string{"--store-dir", d.Path, "--json"}, args...))

	var envelope struct {
		OK       bool                   `json:"ok"`
		Data     map[string]interface{} `json:"data,omitempty"`
		Error    *CLIError              `json:"error,omitempty"`
		Warnings []CLIWarning           `json:"warnings,omitempty"`
		Meta     *CLIMeta               `json:"meta,omitempty"`
	}
	if err := json.Unmarshal([]byte(result.RawOutput), &envelope); err != nil {
		result.OK = false
		result.Error = &CLIError{
			Code:    "PARSE_ERROR",
			Message: fmt.Sprintf("undecodable envelope: %v\nraw: %s", err, result.RawOutput),
		}
		return result
	}

	result.OK = envelope.OK
	result.Data = envelope.Data
	result.Error = envelope.Error
	result.Warnings = envelope.Warnings
	result.Meta = envelope.Meta
	return result
}

// RunCLIPlain runs trk in text mode, without --json. Only RawOutput and
// ExitCode are populated; use it to assert exit codes and human-readable
// messages.
func (d *TestStoreDir) RunCLIPlain(args ...string) *CLIResult {
	d.t.Helper()
	return d.invoke(append([]string{"--store-dir", d.Path}, args...))
}

// invoke runs the compiled binary. TRACKFILE_CONFIG points at a path that
// does not exist so the developer's real config never leaks into a test.
func (d *TestStoreDir) invoke(args []string) *CLIResult {
	d.t.Helper()

	cmd := exec.Command(BuildCLI(d.t), args...)
	cmd.Env = append(os.Environ(), "TRACKFILE_CONFIG="+filepath.Join(d.Path, "no-such-config.toml"))
	out, err := cmd.CombinedOutput()

	return &CLIResult{
		RawOutput: string(out),
		ExitCode:  exitCode(err),
	}
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// MustSucceed fails the test unless the envelope reported ok.
func (r *CLIResult) MustSucceed(t *testing.T) *CLIResult {
	t.Helper()
	if !r.OK {
		detail := "unknown error"
		if r.Error != nil {
			detail = r.Error.Code + ": " + r.Error.Message
		}
		t.Fatalf("command failed: %s\nraw: %s", detail, r.RawOutput)
	}
	return r
}

// MustFail fails the test unless the envelope reported an error with the
// given code.
func (r *CLIResult) MustFail(t *testing.T, code string) *CLIResult {
	t.Helper()
	if r.OK {
		t.Fatalf("command succeeded, want error %s\nraw: %s", code, r.RawOutput)
	}
	if r.Error == nil {
		t.Fatalf("no error object, want code %s\nraw: %s", code, r.RawOutput)
	}
	if r.Error.Code != code {
		t.Fatalf("error code = %s (%s), want %s\nraw: %s", r.Error.Code, r.Error.Message, code, r.RawOutput)
	}
	return r
}

// MustFailWithMessage fails the test unless the command failed and its error
// message or suggestion contains the substring.
func (r *CLIResult) MustFailWithMessage(t *testing.T, substr string) *CLIResult {
	t.Helper()
	if r.OK {
		t.Fatalf("command succeeded, want failure mentioning %q\nraw: %s", substr, r.RawOutput)
	}
	if substr != "" && r.Error != nil {
		if !strings.Contains(r.Error.Message, substr) && !strings.Contains(r.Error.Suggestion, substr) {
			t.Errorf("error %q (suggestion %q) does not mention %q", r.Error.Message, r.Error.Suggestion, substr)
		}
	}
	return r
}

// DataList extracts a list from the Data field.
func (r *CLIResult) DataList(key string) []interface{} {
	list, _ := r.Data[key].([]interface{})
	return list
}

// DataString extracts a string from the Data field.
func (r *CLIResult) DataString(key string) string {
	s, _ := r.Data[key].(string)
	return s
}

// DataBool extracts a boolean from the Data field.
func (r *CLIResult) DataBool(key string) bool {
	b, _ := r.Data[key].(bool)
	return b
}

// DataMap extracts a nested object from the Data field.
func (r *CLIResult) DataMap(key string) map[string]interface{} {
	m, _ := r.Data[key].(map[string]interface{})
	return m
}
