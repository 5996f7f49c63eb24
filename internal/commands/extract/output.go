package extract

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/indaco/pyver/internal/discovery"
	"github.com/indaco/pyver/internal/gha"
	"github.com/indaco/pyver/internal/printer"
)

// Formatter handles display of extraction results.
type Formatter struct {
	format OutputFormat
	quiet  bool
}

// NewFormatter creates a Formatter with the given output format.
// In quiet mode the human-readable text output is suppressed entirely;
// JSON output is still emitted since it exists to be machine-read.
func NewFormatter(format OutputFormat, quiet bool) *Formatter {
	return &Formatter{format: format, quiet: quiet}
}

// FormatResult formats the resolved version for display.
func (f *Formatter) FormatResult(res discovery.Result, out gha.Output, usedFallback bool) string {
	if f.format == FormatJSON {
		return f.formatJSON(res, out, usedFallback)
	}
	if f.quiet {
		return ""
	}
	return f.formatText(res, out, usedFallback)
}

// formatText renders the fixed three-line summary, plus a faint source line
// naming the file that produced the version. The first three lines are kept
// stable and unstyled for pipelines that grep stdout.
func (f *Formatter) formatText(res discovery.Result, out gha.Output, usedFallback bool) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Extracted version: %s\n", out.Version)
	fmt.Fprintf(&sb, "Tag: %s\n", out.Tag)
	fmt.Fprintf(&sb, "Parts: %s.%s.%s\n", out.Major, out.Minor, out.Patch)

	if res.Found && !usedFallback {
		sb.WriteString(printer.Faint(fmt.Sprintf("Source: %s", res.Source.RelPath)))
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatJSON renders the result as a single JSON object.
func (f *Formatter) formatJSON(res discovery.Result, out gha.Output, usedFallback bool) string {
	payload := struct {
		Version  string `json:"version"`
		Tag      string `json:"tag"`
		Major    string `json:"major"`
		Minor    string `json:"minor"`
		Patch    string `json:"patch"`
		Source   string `json:"source,omitempty"`
		Fallback bool   `json:"fallback"`
	}{
		Version:  out.Version,
		Tag:      out.Tag,
		Major:    out.Major,
		Minor:    out.Minor,
		Patch:    out.Patch,
		Fallback: usedFallback,
	}

	if res.Found {
		payload.Source = res.Source.RelPath
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting JSON: %v\n", err)
		return ""
	}

	return string(data) + "\n"
}

// PrintResult prints the formatted result to stdout.
func (f *Formatter) PrintResult(res discovery.Result, out gha.Output, usedFallback bool) {
	if s := f.FormatResult(res, out, usedFallback); s != "" {
		fmt.Print(s)
	}
}
