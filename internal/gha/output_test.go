package gha

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/indaco/pyver/internal/core"
	"github.com/indaco/pyver/internal/semver"
)

func TestFromVersion(t *testing.T) {
	out := FromVersion("1.2.3", semver.Parts{Major: "1", Minor: "2", Patch: "3"})

	want := Output{Version: "1.2.3", Tag: "v1.2.3", Major: "1", Minor: "2", Patch: "3"}
	if out != want {
		t.Errorf("FromVersion() = %+v, want %+v", out, want)
	}
}

func TestOutput_WriteTo(t *testing.T) {
	out := Output{Version: "1.2.3", Tag: "v1.2.3", Major: "1", Minor: "2", Patch: "3"}

	var sb strings.Builder
	if _, err := out.WriteTo(&sb); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "version=1.2.3\ntag=v1.2.3\nmajor=1\nminor=2\npatch=3\n"
	if sb.String() != want {
		t.Errorf("got %q, want %q", sb.String(), want)
	}
}

func TestAppend_Accumulates(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "output.txt")
	fsys := core.NewOSFileSystem()
	ctx := context.Background()

	first := FromVersion("1.0.0", semver.ParseParts("1.0.0"))
	second := FromVersion("2.0.0", semver.ParseParts("2.0.0"))

	if err := Append(ctx, fsys, path, first); err != nil {
		t.Fatalf("first append: %v", err)
	}
	if err := Append(ctx, fsys, path, second); err != nil {
		t.Fatalf("second append: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	want := "version=1.0.0\ntag=v1.0.0\nmajor=1\nminor=0\npatch=0\n" +
		"version=2.0.0\ntag=v2.0.0\nmajor=2\nminor=0\npatch=0\n"
	if string(data) != want {
		t.Errorf("got %q, want %q", string(data), want)
	}
}

func TestAppend_MockFileSystem(t *testing.T) {
	fsys := core.NewMockFileSystem()
	ctx := context.Background()

	out := FromVersion("0.1.0", semver.ParseParts("0.1.0"))
	if err := Append(ctx, fsys, "/out/github_output", out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := fsys.ReadFile(ctx, "/out/github_output")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "tag=v0.1.0\n") {
		t.Errorf("missing tag line in %q", string(data))
	}
}
