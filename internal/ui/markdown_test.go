package ui

import (
	"strings"
	"testing"
)

func swapCodeTheme(t *testing.T) {
	t.Helper()
	orig := markdownCodeTheme
	t.Cleanup(func() { markdownCodeTheme = orig })
}

func TestRenderMarkdownOutput(t *testing.T) {
	doc := "# Store format\n\nTracks live in a `version: 1` document.\n"

	out, err := RenderMarkdown(doc, 80)
	if err != nil {
		t.Fatalf("RenderMarkdown() error = %v", err)
	}
	for _, want := range []string{"Store format", "version: 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered output missing %q:\n%s", want, out)
		}
	}
	if !strings.HasSuffix(out, "\n") || strings.HasSuffix(out, "\n\n") {
		t.Errorf("want exactly one trailing newline, got %q", out)
	}
}

func TestRenderMarkdownZeroWidthFallsBackToDefault(t *testing.T) {
	out, err := RenderMarkdown("plain text", 0)
	if err != nil {
		t.Fatalf("RenderMarkdown() error = %v", err)
	}
	if strings.TrimSpace(out) == "" {
		t.Fatal("rendered output is empty")
	}
}

func TestTrackMarkdownStyle(t *testing.T) {
	style := trackMarkdownStyle()

	underlined := func(name string, v *bool) {
		t.Helper()
		if v == nil || !*v {
			t.Errorf("%s headings should be underlined", name)
		}
	}
	underlined("H1", style.H1.Underline)
	underlined("H2", style.H2.Underline)

	if style.Code.Color == nil {
		t.Error("inline code has no color")
	}
	if style.CodeBlock.StylePrimitive.Color == nil {
		t.Error("code blocks have no color")
	}
	if style.CodeBlock.Theme == "" {
		t.Error("code blocks have no syntax theme")
	}
}

func TestConfigureMarkdownCodeTheme(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"known theme", "dracula", "dracula"},
		{"normalizes case and space", "  DrAcUlA  ", "dracula"},
		{"unknown theme falls back", "not-a-real-theme", defaultCodeTheme},
		{"empty falls back", "", defaultCodeTheme},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			swapCodeTheme(t)
			ConfigureMarkdownCodeTheme(tc.in)
			if markdownCodeTheme != tc.want {
				t.Fatalf("ConfigureMarkdownCodeTheme(%q): theme = %q, want %q", tc.in, markdownCodeTheme, tc.want)
			}
			if got := trackMarkdownStyle().CodeBlock.Theme; got != tc.want {
				t.Fatalf("style theme = %q, want %q", got, tc.want)
			}
		})
	}
}
