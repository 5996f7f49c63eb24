package extract

// OutputFormat selects how results are rendered on stdout.
type OutputFormat string

const (
	// FormatText is the human-readable default.
	FormatText OutputFormat = "text"

	// FormatJSON renders the result as a single JSON object.
	FormatJSON OutputFormat = "json"
)

// ParseOutputFormat converts a string to an OutputFormat, returning
// FormatText as fallback.
func ParseOutputFormat(s string) OutputFormat {
	switch OutputFormat(s) {
	case FormatJSON:
		return FormatJSON
	default:
		return FormatText
	}
}
