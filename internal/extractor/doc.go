// Package extractor provides per-file-kind strategies for pulling a version
// string out of Python package metadata files (setup.py, pyproject.toml,
// __init__.py). Each strategy is a layered sequence of fallible matchers
// tried in order; a miss at every layer is a normal outcome, not an error.
package extractor
