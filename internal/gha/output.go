// Package gha emits resolved version information in the GitHub Actions
// output-file format: one key=value pair per line, appended so that multiple
// pipeline steps accumulate entries without truncating each other.
package gha

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/indaco/pyver/internal/core"
	"github.com/indaco/pyver/internal/semver"
)

// Output holds the five fields written for a resolved version.
type Output struct {
	Version string
	Tag     string
	Major   string
	Minor   string
	Patch   string
}

// FromVersion builds an Output from a version string and its parsed parts.
// The tag is the version with a "v" prefix.
func FromVersion(version string, parts semver.Parts) Output {
	return Output{
		Version: version,
		Tag:     "v" + version,
		Major:   parts.Major,
		Minor:   parts.Minor,
		Patch:   parts.Patch,
	}
}

// WriteTo writes the five key=value lines in their fixed order.
func (o Output) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintf(w,
		"version=%s\ntag=%s\nmajor=%s\nminor=%s\npatch=%s\n",
		o.Version, o.Tag, o.Major, o.Minor, o.Patch)
	return int64(n), err
}

// Append appends the output lines to the file at path, creating it if
// needed. The file is opened in append mode so repeated invocations within
// a pipeline accumulate entries.
func Append(ctx context.Context, fsys core.FileSystem, path string, o Output) error {
	var buf bytes.Buffer
	if _, err := o.WriteTo(&buf); err != nil {
		return err
	}

	if err := fsys.AppendFile(ctx, path, buf.Bytes(), core.PermSharedFile); err != nil {
		return fmt.Errorf("failed to append output to %q: %w", path, err)
	}

	return nil
}
