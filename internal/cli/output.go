package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

const defaultJSONIndent = 2

// render writes v in the selected output format. text draws the text form.
func (a *App) render(v any, text func(w io.Writer) error) error {
	switch a.output() {
	case OutputJSON:
		encoder := json.NewEncoder(a.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(v)
	case OutputYAML:
		encoder := yaml.NewEncoder(a.Stdout)
		encoder.SetIndent(defaultJSONIndent)
		defer encoder.Close()
		return encoder.Encode(v)
	case OutputText, "":
		return text(a.Stdout)
	default:
		return fmt.Errorf("unsupported output format '%s' (use text, json or yaml)", a.output())
	}
}

// renderBlob writes a raw JSON document. Text and JSON output print it
// indented; YAML output converts it.
func (a *App) renderBlob(blob []byte) error {
	if a.output() == OutputYAML {
		var doc any
		if err := json.Unmarshal(blob, &doc); err != nil {
			return fmt.Errorf("failed to decode settings: %w", err)
		}
		return a.render(doc, nil)
	}
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, blob, "", "  "); err != nil {
		return fmt.Errorf("failed to format settings: %w", err)
	}
	pretty.WriteByte('\n')
	_, err := a.Stdout.Write(pretty.Bytes())
	return err
}

// propertyTable renders name/value rows.
func propertyTable(w io.Writer, rows [][2]string) error {
	table := tablewriter.NewWriter(w)
	table.Header("Property", "Value")
	for _, row := range rows {
		_ = table.Append(row[0], row[1])
	}
	return table.Render()
}

// listTable renders a header and rows.
func listTable(w io.Writer, header []string, rows [][]string) error {
	table := tablewriter.NewWriter(w)
	table.Header(cells(header)...)
	for _, row := range rows {
		_ = table.Append(cells(row)...)
	}
	return table.Render()
}

func cells(values []string) []any {
	out := make([]any, 0, len(values))
	for _, v := range values {
		out = append(out, v)
	}
	return out
}

func yesNo(b bool) string {
	return strconv.FormatBool(b)
}
