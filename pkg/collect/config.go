// File: pkg/collect/config.go
package collect

// Config holds the scan parameters for a single collection run.
type Config struct {
	Root   string // Directory tree to scan.
	Suffix string // Trailing-match filter applied to file names.
}

// DefaultConfig returns the built-in scan parameters. The tool exposes no
// flags, environment variables, or config files; these values are fixed
// for every run.
func DefaultConfig() Config {
	return Config{
		Root:   "src",
		Suffix: ".rs",
	}
}

// FileBlock represents the content of a single matched file.
type FileBlock struct {
	Path    string // The path the traversal reported for the file.
	Content string // The raw file contents, unaltered.
}
