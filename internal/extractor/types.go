package extractor

import "path/filepath"

// Kind identifies which extraction strategy applies to a file.
type Kind string

const (
	// KindSetup is for setup.py build scripts.
	KindSetup Kind = "setup"

	// KindPyProject is for pyproject.toml project manifests.
	KindPyProject Kind = "pyproject"

	// KindInit is for __init__.py package initializers.
	KindInit Kind = "init"

	// KindUnknown is for files whose strategy must be sniffed from content.
	KindUnknown Kind = "unknown"
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// KindForFile infers the extraction strategy from a file's base name.
func KindForFile(path string) Kind {
	switch filepath.Base(path) {
	case "setup.py":
		return KindSetup
	case "pyproject.toml":
		return KindPyProject
	case "__init__.py":
		return KindInit
	default:
		return KindUnknown
	}
}
