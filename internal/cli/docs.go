package cli

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	builtindocs "github.com/aidanlsb/trackfile/docs"
	"github.com/aidanlsb/trackfile/internal/ui"
)

const docsCommandHint = "For command docs, use: trk help <command>"

// Indirections for tests.
var (
	docsTerminal = ui.NewDisplayContext
	docsRenderer = ui.RenderMarkdown
)

// docTopic is one bundled markdown topic.
type docTopic struct {
	ID    string
	Title string
	Path  string
}

var docsCmd = &cobra.Command{
	Use:   "docs [topic]",
	Short: "Browse bundled documentation",
	Long: `Browse long-form documentation bundled into the trk binary.

Without arguments, lists available topics. With a topic name, prints that
topic, rendered when stdout is a terminal.

Examples:
  trk docs
  trk docs store-format
  trk docs concurrency`,
	Args: cobra.RangeArgs(0, 1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topics, err := loadDocTopics(builtindocs.FS)
		if err != nil {
			return handleError(ErrInternal, err, "Rebuild trk so bundled docs are available")
		}

		if len(args) == 0 {
			return printTopicIndex(topics)
		}

		topic, ok := matchDocTopic(topics, args[0])
		if !ok {
			return unknownTopicError(args[0], topics)
		}
		return printTopic(topic)
	},
}

func printTopicIndex(topics []docTopic) error {
	if isJSONOutput() {
		type topicSummary struct {
			ID    string `json:"id"`
			Title string `json:"title"`
		}
		summaries := make([]topicSummary, len(topics))
		for i, t := range topics {
			summaries[i] = topicSummary{ID: t.ID, Title: t.Title}
		}
		outputSuccess(map[string]interface{}{"topics": summaries}, &Meta{Count: len(summaries)})
		return nil
	}

	fmt.Println(ui.Header("Documentation topics:"))
	index := ui.NewList()
	for _, t := range topics {
		index.Add(fmt.Sprintf("trk docs %-16s %s", t.ID, ui.Hint(t.Title)))
	}
	fmt.Print(index.String())
	fmt.Println()
	fmt.Println(docsCommandHint)
	return nil
}

func printTopic(topic docTopic) error {
	raw, err := fs.ReadFile(builtindocs.FS, topic.Path)
	if err != nil {
		return handleError(ErrInternal, err, "")
	}

	if isJSONOutput() {
		outputSuccess(map[string]interface{}{
			"topic":   topic.ID,
			"title":   topic.Title,
			"content": string(raw),
		}, nil)
		return nil
	}

	out := string(raw)
	if term := docsTerminal(); term.IsTTY && !ui.PlainOutput() {
		if rendered, err := docsRenderer(out, term.AvailableWidth(ui.MarkdownRenderMargin)); err == nil {
			out = rendered
		}
	}

	fmt.Print(out)
	if !strings.HasSuffix(out, "\n") {
		fmt.Println()
	}
	return nil
}

// loadDocTopics collects the visible topic files under topics/, sorted by ID.
func loadDocTopics(docsFS fs.FS) ([]docTopic, error) {
	entries, err := fs.ReadDir(docsFS, "topics")
	if err != nil {
		return nil, fmt.Errorf("read docs topics: %w", err)
	}

	var topics []docTopic
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !visibleTopicFile(name) {
			continue
		}
		id := strings.TrimSuffix(name, ".md")
		p := path.Join("topics", name)
		topics = append(topics, docTopic{ID: id, Title: topicTitle(docsFS, p, id), Path: p})
	}

	sort.Slice(topics, func(i, j int) bool { return topics[i].ID < topics[j].ID })
	return topics, nil
}

// matchDocTopic resolves user input to a topic, tolerating a .md suffix,
// case differences, and underscores for dashes.
func matchDocTopic(topics []docTopic, raw string) (docTopic, bool) {
	want := canonicalTopicSlug(strings.TrimSuffix(strings.TrimSpace(raw), ".md"))
	for _, t := range topics {
		if t.ID == want {
			return t, true
		}
	}
	return docTopic{}, false
}

func unknownTopicError(input string, topics []docTopic) error {
	ids := make([]string, len(topics))
	for i, t := range topics {
		ids[i] = t.ID
	}
	sort.Strings(ids)

	return handleErrorMsg(
		ErrInvalidInput,
		fmt.Sprintf("unknown docs topic: %s", input),
		fmt.Sprintf("Run 'trk docs' to list topics (available: %s)", strings.Join(ids, ", ")),
	)
}

// topicTitle takes the first level-1 heading of a topic file, falling back
// to a title derived from the slug.
func topicTitle(docsFS fs.FS, topicPath, slug string) string {
	raw, err := fs.ReadFile(docsFS, topicPath)
	if err != nil {
		return slugTitle(slug)
	}

	for _, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimSpace(line)
		if after, ok := strings.CutPrefix(line, "# "); ok {
			if title := strings.TrimSpace(after); title != "" {
				return title
			}
		}
	}
	return slugTitle(slug)
}

// visibleTopicFile reports whether a directory entry is a listable topic.
// Dotfiles and underscore-prefixed drafts are not.
func visibleTopicFile(name string) bool {
	return strings.HasSuffix(name, ".md") &&
		!strings.HasPrefix(name, ".") &&
		!strings.HasPrefix(name, "_")
}

// canonicalTopicSlug lowercases input and folds underscores and spaces into
// single dashes.
func canonicalTopicSlug(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	s = strings.NewReplacer("_", "-", " ", "-").Replace(s)
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return strings.Trim(s, "-")
}

// slugTitle turns "store-format" into "Store Format".
func slugTitle(slug string) string {
	words := strings.FieldsFunc(slug, func(r rune) bool { return r == '-' || r == '_' })
	if len(words) == 0 {
		return slug
	}
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func init() {
	rootCmd.AddCommand(docsCmd)
}
