// Package discovery locates candidate version files in a project directory
// and resolves the first extractable version across them. It scans a fixed
// list of conventional filenames (setup.py, pyproject.toml, __init__.py)
// plus package subdirectories, trying candidates in preference order.
package discovery
