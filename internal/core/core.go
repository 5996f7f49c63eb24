// Package core provides shared low-level abstractions used across the pyver
// CLI, most importantly the context-aware FileSystem interface with its OS
// and in-memory implementations.
package core

import "io/fs"

// PermSharedFile defines permissions for files shared with other pipeline
// steps, such as GitHub Actions output files.
const PermSharedFile fs.FileMode = 0o644
