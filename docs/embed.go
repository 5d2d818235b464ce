package docs

import "embed"

// FS contains long-form Markdown docs bundled with the trk binary.
//
//go:embed topics
var FS embed.FS
