package discovery

import "github.com/indaco/pyver/internal/extractor"

// Candidate represents a file that may carry a version string.
type Candidate struct {
	// Path is the full path used to read the file.
	Path string

	// RelPath is the path relative to the discovery root.
	RelPath string

	// Kind is the extraction strategy inferred for the file.
	Kind extractor.Kind
}

// Result represents the outcome of a resolution run. A run that finds no
// version is a valid terminal outcome, not an error.
type Result struct {
	// Version is the extracted version string, empty when not found.
	Version string

	// Source is the candidate that produced the version.
	Source Candidate

	// Found reports whether any candidate yielded a version.
	Found bool
}
