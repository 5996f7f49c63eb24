package extractor

import (
	"bytes"
	"strings"
)

// scanSetupCalls looks for a setup(...) call with a version keyword argument
// bound to a string literal, mirroring a syntax-tree walk over the file.
// Calls are matched anywhere in the file, nested or shadowed included; the
// first call carrying a version keyword wins. Malformed syntax never raises
// an error, it only reduces what the scan can see.
func scanSetupCalls(src []byte) (string, bool) {
	for i := 0; i+len("setup") <= len(src); i++ {
		if !bytes.HasPrefix(src[i:], []byte("setup")) {
			continue
		}

		// Require a standalone identifier: not part of a longer name and not
		// an attribute access like obj.setup(...).
		if i > 0 && (isIdentChar(src[i-1]) || src[i-1] == '.') {
			continue
		}

		j := i + len("setup")
		for j < len(src) && (src[j] == ' ' || src[j] == '\t') {
			j++
		}
		if j >= len(src) || src[j] != '(' {
			continue
		}

		if v, ok := scanCallArgs(src, j+1); ok {
			return v, true
		}
	}

	return "", false
}

// scanCallArgs walks a call's argument list starting just past the opening
// parenthesis, looking for a top-level `version=` keyword followed by a
// string literal. Strings, comments, and nested brackets are skipped so a
// version= inside a nested structure or literal does not match.
func scanCallArgs(src []byte, start int) (string, bool) {
	depth := 1
	atArgStart := true

	for k := start; k < len(src); k++ {
		c := src[k]

		switch {
		case c == '#':
			for k < len(src) && src[k] != '\n' {
				k++
			}

		case c == '\'' || c == '"':
			_, next, ok := scanPyString(src, k)
			if !ok {
				return "", false
			}
			k = next - 1
			atArgStart = false

		case c == '(' || c == '[' || c == '{':
			depth++
			atArgStart = false

		case c == ')' || c == ']' || c == '}':
			depth--
			if depth == 0 {
				return "", false
			}

		case c == ',':
			if depth == 1 {
				atArgStart = true
			}

		case isIdentStart(c):
			end := k
			for end < len(src) && isIdentChar(src[end]) {
				end++
			}
			word := string(src[k:end])

			if depth == 1 && atArgStart && word == "version" {
				if v, ok := scanKeywordValue(src, end); ok {
					return v, true
				}
			}

			k = end - 1
			atArgStart = false

		case c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\\':
			// Whitespace and line continuations do not end an argument.

		default:
			atArgStart = false
		}
	}

	// Unterminated call.
	return "", false
}

// scanKeywordValue expects `= <string literal>` at pos (skipping whitespace
// and comments) and returns the literal's contents.
func scanKeywordValue(src []byte, pos int) (string, bool) {
	pos = skipInsignificant(src, pos)
	if pos >= len(src) || src[pos] != '=' {
		return "", false
	}
	// Reject comparisons (==).
	if pos+1 < len(src) && src[pos+1] == '=' {
		return "", false
	}

	pos = skipInsignificant(src, pos+1)
	if pos >= len(src) {
		return "", false
	}

	// Allow raw/bytes/unicode string prefixes; f-strings are not constant
	// literals and stay excluded.
	prefixEnd := pos
	for prefixEnd < len(src) && prefixEnd-pos < 2 && isStringPrefixChar(src[prefixEnd]) {
		prefixEnd++
	}
	if prefixEnd >= len(src) || (src[prefixEnd] != '\'' && src[prefixEnd] != '"') {
		return "", false
	}

	value, _, ok := scanPyString(src, prefixEnd)
	return value, ok
}

// scanPyString consumes a Python string literal starting at the opening
// quote and returns its raw contents (escapes are not interpreted) plus the
// index just past the closing quote. Triple-quoted strings are supported.
func scanPyString(src []byte, pos int) (string, int, bool) {
	quote := src[pos]

	// Triple-quoted string.
	if pos+2 < len(src) && src[pos+1] == quote && src[pos+2] == quote {
		delim := src[pos : pos+3]
		for k := pos + 3; k+3 <= len(src); k++ {
			if src[k] == '\\' {
				k++
				continue
			}
			if bytes.Equal(src[k:k+3], delim) {
				return string(src[pos+3 : k]), k + 3, true
			}
		}
		return "", 0, false
	}

	for k := pos + 1; k < len(src); k++ {
		switch src[k] {
		case '\\':
			k++
		case quote:
			return string(src[pos+1 : k]), k + 1, true
		case '\n':
			// Single-quoted strings do not span lines.
			return "", 0, false
		}
	}

	return "", 0, false
}

// skipInsignificant advances past whitespace, comments, and line
// continuations.
func skipInsignificant(src []byte, pos int) int {
	for pos < len(src) {
		switch src[pos] {
		case ' ', '\t', '\r', '\n', '\\':
			pos++
		case '#':
			for pos < len(src) && src[pos] != '\n' {
				pos++
			}
		default:
			return pos
		}
	}
	return pos
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

func isStringPrefixChar(c byte) bool {
	return strings.ContainsRune("rbuRBU", rune(c))
}
