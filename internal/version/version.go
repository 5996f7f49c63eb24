// Package version exposes the build-time version metadata stamped into the
// pyver binary.
package version

import "runtime/debug"

// version is injected via -ldflags; the default is used for dev builds.
var version = ""

// GetVersion returns the semantic version of this build. When no version
// was stamped, it falls back to the module version recorded by the Go
// toolchain, then to "dev".
func GetVersion() string {
	if version != "" {
		return version
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}

	return "dev"
}
