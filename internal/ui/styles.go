package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
// - Default (white/black): Primary text
// - Accent (soft blue #7AA2F7, configurable): store paths, track names
// - Muted (gray): secondary info, date hints
// - No colored success/error/warning - use unicode symbols only

// DefaultAccentColor is used until a config overrides or disables it.
const DefaultAccentColor = "#7AA2F7"

// PlainEnv disables all styling when set truthy. NO_COLOR is honored
// separately by the terminal detection underneath lipgloss.
const PlainEnv = "TRK_PLAIN"

var accentColor = DefaultAccentColor

var (
	// Accent style for store paths, track names, highlights
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(DefaultAccentColor))

	// Muted style for secondary info and hints
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	// Bold style for emphasis
	Bold = lipgloss.NewStyle().Bold(true)

	// AccentBold combines accent color with bold
	AccentBold = lipgloss.NewStyle().Foreground(lipgloss.Color(DefaultAccentColor)).Bold(true)
)

// ConfigureTheme applies the accent color from config. An empty value keeps
// the default; "none", "off", "default", or anything that isn't an ANSI code
// or hex color disables accent styling entirely. TRK_PLAIN overrides config
// and strips every style.
func ConfigureTheme(accent string) {
	if PlainOutput() {
		applyPlain()
		return
	}
	if strings.TrimSpace(accent) == "" {
		return
	}
	color, ok := normalizeAccentColor(accent)
	if !ok {
		color = ""
	}
	accentColor = color
	applyAccent()
}

// PlainOutput reports whether the plain-output environment override is set.
func PlainOutput() bool {
	value := strings.ToLower(strings.TrimSpace(os.Getenv(PlainEnv)))
	switch value {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

// AccentColor returns the active accent color and whether accent styling
// is enabled.
func AccentColor() (string, bool) {
	if accentColor == "" {
		return "", false
	}
	return accentColor, true
}

func applyAccent() {
	if accentColor == "" {
		Accent = lipgloss.NewStyle()
		AccentBold = lipgloss.NewStyle().Bold(true)
		return
	}
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(accentColor))
	AccentBold = lipgloss.NewStyle().Foreground(lipgloss.Color(accentColor)).Bold(true)
}

func applyPlain() {
	accentColor = ""
	Accent = lipgloss.NewStyle()
	AccentBold = lipgloss.NewStyle()
	Muted = lipgloss.NewStyle()
	Bold = lipgloss.NewStyle()
}

// normalizeAccentColor canonicalizes an accent color value: ANSI 256 codes
// pass through ("39"), hex colors lowercase with #abc expanded to #aabbcc.
// Returns false for empty values, disable keywords, and anything malformed.
func normalizeAccentColor(value string) (string, bool) {
	v := strings.ToLower(strings.TrimSpace(value))
	switch v {
	case "", "none", "off", "default":
		return "", false
	}

	if strings.HasPrefix(v, "#") {
		hex := v[1:]
		for _, r := range hex {
			if !strings.ContainsRune("0123456789abcdef", r) {
				return "", false
			}
		}
		switch len(hex) {
		case 6:
			return "#" + hex, true
		case 3:
			var sb strings.Builder
			sb.WriteByte('#')
			for _, r := range hex {
				sb.WriteRune(r)
				sb.WriteRune(r)
			}
			return sb.String(), true
		default:
			return "", false
		}
	}

	n, err := strconv.Atoi(v)
	if err != nil || n < 0 || n > 255 {
		return "", false
	}
	return v, true
}
