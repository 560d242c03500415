// Package config loads promptpack's user-level configuration from a
// YAML file under the user config directory. Missing files and missing
// fields fall back to defaults; a config problem never stops the tool.
package config

// Config is the user-level configuration.
type Config struct {
	// DefaultExtensions seeds the extension view filter, e.g. [".go", ".md"].
	// Empty means no extension filtering by default.
	DefaultExtensions []string `yaml:"default_extensions"`

	// MaxTreeDepth bounds tree scanning recursion.
	MaxTreeDepth int `yaml:"max_tree_depth"`

	// TokenEncoding names the tiktoken encoding used for counting.
	TokenEncoding string `yaml:"token_encoding"`

	// TokenSizeLimit is the content size in bytes above which token
	// counting is skipped.
	TokenSizeLimit int64 `yaml:"token_size_limit"`

	// GlobalIgnoreFile overrides the location of the global exclusion
	// list. Empty selects <config dir>/ignore.txt.
	GlobalIgnoreFile string `yaml:"global_ignore_file"`
}
