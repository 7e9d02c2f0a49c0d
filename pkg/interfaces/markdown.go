package interfaces

// ParseOptions configures Markdown rendering for recipe descriptions.
// Extension names map onto goldmark extenders; unsupported names are
// ignored.
type ParseOptions struct {
	Extensions []string
	HardWraps  bool
	SafeMode   bool
}

// MarkdownRenderer converts Markdown source into HTML.
type MarkdownRenderer interface {
	Render(markdown []byte) ([]byte, error)
	RenderWithOptions(markdown []byte, opts ParseOptions) ([]byte, error)
}
