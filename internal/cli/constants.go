package cli

// Default values for CLI flags and output.
const (
	// MaxSearchDescriptionLength is the maximum length of a generator description in search results.
	MaxSearchDescriptionLength = 60

	// Output formats selectable with --output.
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"

	// jsonIndent indents --output json.
	jsonIndent = "  "
)
