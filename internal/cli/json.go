// Package cli implements the command-line interface.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// jsonOutput is set by the global --json flag.
var jsonOutput bool

func isJSONOutput() bool {
	return jsonOutput
}

// Response is the single JSON envelope every command emits in --json mode.
type Response struct {
	OK       bool        `json:"ok"`
	Data     interface{} `json:"data,omitempty"`
	Error    *ErrorInfo  `json:"error,omitempty"`
	Warnings []Warning   `json:"warnings,omitempty"`
	Meta     *Meta       `json:"meta,omitempty"`
}

// ErrorInfo is the envelope's error object.
type ErrorInfo struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// Warning is one non-fatal notice attached to a success response.
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Track   string `json:"track,omitempty"`
	Date    string `json:"date,omitempty"`
}

// Meta carries response metadata.
type Meta struct {
	Count int `json:"count,omitempty"`
}

// emit writes the envelope to stdout, indented for readability.
func (r Response) emit() {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(r)
}

func outputSuccess(data interface{}, meta *Meta) {
	Response{OK: true, Data: data, Meta: meta}.emit()
}

func outputSuccessWithWarnings(data interface{}, warnings []Warning, meta *Meta) {
	Response{OK: true, Data: data, Warnings: warnings, Meta: meta}.emit()
}

func outputError(code, message, suggestion string) {
	Response{
		Error: &ErrorInfo{Code: code, Message: message, Suggestion: suggestion},
	}.emit()
}

// handleError reports err in the mode-appropriate way: a failed envelope in
// JSON mode (the process still exits 0 for machine consumers), or the error
// itself in text mode so cobra prints it and main exits nonzero.
func handleError(code string, err error, suggestion string) error {
	if jsonOutput {
		outputError(code, err.Error(), suggestion)
		return nil
	}
	return err
}

// handleErrorMsg is handleError for preformatted messages.
func handleErrorMsg(code, message, suggestion string) error {
	if jsonOutput {
		outputError(code, message, suggestion)
		return nil
	}
	return fmt.Errorf("%s", message)
}
