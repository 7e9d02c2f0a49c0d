package recipes

import (
	"github.com/goliatone/go-recipes/internal/logging/gologger"
	"github.com/goliatone/go-recipes/internal/markdown"
	"github.com/goliatone/go-recipes/pkg/interfaces"
)

// Config carries the runtime configuration for the recipes module. There is
// no configuration file; hosts populate the struct directly.
type Config struct {
	Logging  LoggingConfig
	Markdown MarkdownConfig
}

// LoggingConfig selects the logger provider used to scope module loggers.
// A nil provider disables logging.
type LoggingConfig struct {
	Provider interfaces.LoggerProvider
}

// MarkdownConfig configures the recipe content source.
type MarkdownConfig struct {
	// BasePath is the root directory where recipe documents live.
	BasePath string
	// Pattern limits discovered files (defaults to "*.md").
	Pattern string
	// Recursive controls whether sub-directories are traversed.
	Recursive bool
	// IncludeDrafts keeps documents whose frontmatter marks them as drafts.
	IncludeDrafts bool
	// Parser configures description HTML rendering.
	Parser interfaces.ParseOptions
}

// LoaderConfig re-exports the markdown loader configuration for advanced
// integrations that construct their own loader.
type LoaderConfig = markdown.LoaderConfig

// GoLoggerConfig re-exports the go-logger provider configuration.
type GoLoggerConfig = gologger.Config

// NewGoLoggerProvider constructs a logger provider backed by
// github.com/goliatone/go-logger, suitable for Config.Logging.Provider.
func NewGoLoggerProvider(cfg GoLoggerConfig) (interfaces.LoggerProvider, error) {
	return gologger.NewProvider(cfg)
}

// DefaultConfig returns a configuration suitable for a content directory of
// flat Markdown recipe files.
func DefaultConfig() Config {
	return Config{
		Markdown: MarkdownConfig{
			Pattern:   "*.md",
			Recursive: true,
		},
	}
}
