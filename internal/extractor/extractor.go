package extractor

import (
	"bytes"
	"context"
	"regexp"
	"strings"

	"github.com/indaco/pyver/internal/core"
	"github.com/pelletier/go-toml/v2"
)

var (
	// inlineVersionRegex matches a version keyword assignment with a quoted
	// value, e.g. `version="1.2.3"` in a setup() call or a pyproject table.
	inlineVersionRegex = regexp.MustCompile(`version\s*=\s*['"](.*?)['"]`)

	// dunderVersionRegex matches a module-level __version__ assignment.
	dunderVersionRegex = regexp.MustCompile(`__version__\s*=\s*['"](.*?)['"]`)
)

// Extractor reads files through a core.FileSystem and applies the
// kind-specific extraction strategy.
type Extractor struct {
	fs core.FileSystem
}

// New creates an Extractor with the given filesystem.
func New(fs core.FileSystem) *Extractor {
	return &Extractor{fs: fs}
}

// Extract reads the file at path and returns the extracted version string.
// The second return value is false when the file cannot be read or no
// strategy layer matched; read failures are deliberately folded into the
// miss outcome so callers fall through to the next candidate.
func (e *Extractor) Extract(ctx context.Context, path string) (string, bool) {
	data, err := e.fs.ReadFile(ctx, path)
	if err != nil {
		return "", false
	}
	return ExtractContent(data, KindForFile(path))
}

// ExtractContent applies the strategy for the given kind to raw file
// content. KindUnknown sniffs the content for characteristic markers and
// redirects to the matching strategy.
func ExtractContent(data []byte, kind Kind) (string, bool) {
	switch kind {
	case KindSetup:
		return extractSetup(data)
	case KindPyProject:
		return extractPyProject(data)
	case KindInit:
		return extractInit(data)
	default:
		return extractSniffed(data)
	}
}

// extractSetup tries the setup.py strategy layers in order: an inline
// version keyword match, a module-level __version__ match, then a structured
// scan for a setup() call with a version keyword argument.
func extractSetup(data []byte) (string, bool) {
	if m := inlineVersionRegex.FindSubmatch(data); m != nil {
		return string(m[1]), true
	}

	if m := dunderVersionRegex.FindSubmatch(data); m != nil {
		return string(m[1]), true
	}

	return scanSetupCalls(data)
}

// extractPyProject parses the manifest as TOML and checks the known version
// locations in order: [project], [tool.poetry], then top level. A TOML parse
// failure falls back to the inline textual match; a clean parse without a
// version key is a plain miss.
func extractPyProject(data []byte) (string, bool) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		if m := inlineVersionRegex.FindSubmatch(data); m != nil {
			return string(m[1]), true
		}
		return "", false
	}

	for _, field := range []string{"project.version", "tool.poetry.version", "version"} {
		if v, ok := lookupString(doc, field); ok {
			return v, true
		}
	}

	return "", false
}

// extractInit matches the conventional __version__ assignment.
func extractInit(data []byte) (string, bool) {
	if m := dunderVersionRegex.FindSubmatch(data); m != nil {
		return string(m[1]), true
	}
	return "", false
}

// extractSniffed inspects content for characteristic markers to pick a
// strategy: a setup() call signature, a manifest section header, or neither
// (treated as an initializer file).
func extractSniffed(data []byte) (string, bool) {
	switch {
	case bytes.Contains(data, []byte("setup(")):
		return extractSetup(data)
	case bytes.Contains(data, []byte("[project]")) || bytes.Contains(data, []byte("[tool.poetry]")):
		return extractPyProject(data)
	default:
		return extractInit(data)
	}
}

// lookupString retrieves a string value from a nested map using dot
// notation. Example: "tool.poetry.version" accesses
// doc["tool"]["poetry"]["version"]. Missing keys, non-map intermediates, and
// non-string leaves all report a miss.
func lookupString(doc map[string]any, field string) (string, bool) {
	current := any(doc)

	for _, part := range strings.Split(field, ".") {
		currentMap, ok := current.(map[string]any)
		if !ok {
			return "", false
		}

		value, exists := currentMap[part]
		if !exists {
			return "", false
		}

		current = value
	}

	s, ok := current.(string)
	return s, ok
}
