package config

import (
	"os"
	"testing"
)

func chdir(t *testing.T, dir string) {
	t.Helper()

	orig, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(orig)
	})
}

func TestLoadConfig_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := LoadConfigFn()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.FilePath != "auto" {
		t.Errorf("FilePath = %q, want %q", cfg.FilePath, "auto")
	}
	if cfg.FallbackVersion != "0.0.0" {
		t.Errorf("FallbackVersion = %q, want %q", cfg.FallbackVersion, "0.0.0")
	}
	if cfg.OutputFile != "" {
		t.Errorf("OutputFile = %q, want empty", cfg.OutputFile)
	}
}

func TestLoadConfig_YAMLFile(t *testing.T) {
	tmp := t.TempDir()
	chdir(t, tmp)

	content := "file-path: mypackage/__init__.py\nfallback-version: 1.0.0\nextra-files:\n  - version.py\n"
	if err := os.WriteFile(ConfigFile, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfigFn()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.FilePath != "mypackage/__init__.py" {
		t.Errorf("FilePath = %q, want %q", cfg.FilePath, "mypackage/__init__.py")
	}
	if cfg.FallbackVersion != "1.0.0" {
		t.Errorf("FallbackVersion = %q, want %q", cfg.FallbackVersion, "1.0.0")
	}
	if len(cfg.ExtraFiles) != 1 || cfg.ExtraFiles[0] != "version.py" {
		t.Errorf("ExtraFiles = %v, want [version.py]", cfg.ExtraFiles)
	}
}

func TestLoadConfig_EmptyYAMLFile(t *testing.T) {
	tmp := t.TempDir()
	chdir(t, tmp)

	if err := os.WriteFile(ConfigFile, []byte("\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfigFn()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.FilePath != "auto" {
		t.Errorf("FilePath = %q, want %q", cfg.FilePath, "auto")
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	tmp := t.TempDir()
	chdir(t, tmp)

	if err := os.WriteFile(ConfigFile, []byte("file-path: [broken\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfigFn(); err == nil {
		t.Error("expected error for invalid YAML, got nil")
	}
}

func TestLoadConfig_UnknownField(t *testing.T) {
	tmp := t.TempDir()
	chdir(t, tmp)

	if err := os.WriteFile(ConfigFile, []byte("unknown-key: value\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	// Strict decoding rejects unknown fields.
	if _, err := LoadConfigFn(); err == nil {
		t.Error("expected error for unknown field, got nil")
	}
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv(EnvFilePath, "/abs/path/setup.py")

	cfg, err := LoadConfigFn()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.FilePath != "/abs/path/setup.py" {
		t.Errorf("FilePath = %q, want %q", cfg.FilePath, "/abs/path/setup.py")
	}
}

func TestLoadConfig_EnvTraversalRejected(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv(EnvFilePath, "../../etc/setup.py")

	if _, err := LoadConfigFn(); err == nil {
		t.Error("expected error for path traversal, got nil")
	}
}
