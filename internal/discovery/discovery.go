package discovery

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/indaco/pyver/internal/core"
	"github.com/indaco/pyver/internal/extractor"
)

// conventionalFiles is the fixed ordered list of filenames checked in the
// discovery root. The order doubles as the extraction preference order:
// build script first, then project manifest, then initializer files.
var conventionalFiles = []string{
	"setup.py",
	"pyproject.toml",
	"__init__.py",
	filepath.Join("src", "__init__.py"),
}

// initFileName is the package initializer looked up in subdirectories.
const initFileName = "__init__.py"

// Service provides version file discovery and resolution.
type Service struct {
	fs        core.FileSystem
	extractor *extractor.Extractor
	extra     []string
}

// NewService creates a discovery Service. Extra filenames from configuration
// are appended to the conventional candidate list, after the initializers.
func NewService(fs core.FileSystem, extra ...string) *Service {
	return &Service{
		fs:        fs,
		extractor: extractor.New(fs),
		extra:     extra,
	}
}

// Resolve extracts a version using the given file path, or auto-detection
// when filePath is empty or "auto". Every failure along the way (missing
// file, unreadable file, no pattern match) degrades to a not-found Result.
func (s *Service) Resolve(ctx context.Context, root, filePath string) Result {
	if filePath != "" && filePath != "auto" {
		return s.resolveExplicit(ctx, filePath)
	}

	for _, c := range s.FindCandidates(ctx, root) {
		// Only a non-empty result stops the scan; a candidate that yields
		// an empty version falls through to the next one.
		if version, ok := s.extractor.Extract(ctx, c.Path); ok && version != "" {
			return Result{Version: version, Source: c, Found: true}
		}
	}

	return Result{}
}

// resolveExplicit handles a caller-supplied path: use it if it exists,
// otherwise report not found.
func (s *Service) resolveExplicit(ctx context.Context, path string) Result {
	if _, err := s.fs.Stat(ctx, path); err != nil {
		return Result{}
	}

	version, ok := s.extractor.Extract(ctx, path)
	if !ok {
		return Result{}
	}

	return Result{
		Version: version,
		Source: Candidate{
			Path:    path,
			RelPath: path,
			Kind:    extractor.KindForFile(path),
		},
		Found: true,
	}
}

// FindCandidates collects existing candidate files under root, in
// extraction preference order: the conventional list first, then one
// initializer per non-hidden immediate subdirectory, then any extra
// configured filenames.
func (s *Service) FindCandidates(ctx context.Context, root string) []Candidate {
	names := make([]string, 0, len(conventionalFiles)+len(s.extra))
	names = append(names, conventionalFiles...)
	names = append(names, s.subdirInitFiles(ctx, root)...)
	names = append(names, s.extra...)

	var candidates []Candidate
	for _, name := range names {
		path := filepath.Join(root, name)
		if _, err := s.fs.Stat(ctx, path); err != nil {
			continue
		}
		candidates = append(candidates, Candidate{
			Path:    path,
			RelPath: name,
			Kind:    extractor.KindForFile(name),
		})
	}

	return candidates
}

// subdirInitFiles lists <dir>/__init__.py for each non-hidden immediate
// subdirectory of root. Directories that cannot be read are skipped.
func (s *Service) subdirInitFiles(ctx context.Context, root string) []string {
	entries, err := s.fs.ReadDir(ctx, root)
	if err != nil {
		return nil
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		names = append(names, filepath.Join(entry.Name(), initFileName))
	}

	return names
}
