package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/glorpus-work/genhub/pkg/config"
	"gopkg.in/yaml.v3"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// renderTable renders rows under headers with a normal border.
func renderTable(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	for _, row := range rows {
		t.Row(row...)
	}
	return t.String()
}

// writeStructured writes v as JSON or YAML. It reports false for the table format,
// leaving the rendering to the caller.
func writeStructured(w io.Writer, format string, v any) (bool, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(v, "", jsonIndent)
		if err != nil {
			return true, err
		}
		_, err = fmt.Fprintln(w, string(data))
		return true, err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(config.YAMLIndent)
		defer func() { _ = enc.Close() }()
		return true, enc.Encode(v)
	case FormatTable, "":
		return false, nil
	default:
		return true, fmt.Errorf("unsupported output format %q (valid: table, json, yaml)", format)
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
