// Package report renders scheduled reports for people and other programs.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"fcfs-simulator/internal/core"
)

const DefaultColumnWidth = 10

const (
	FormatText  = "text"
	FormatTable = "table"
	FormatJSON  = "json"
)

func CheckFormat(format string) error {
	switch format {
	case FormatText, FormatTable, FormatJSON, "":
		return nil
	}
	return fmt.Errorf("unknown output format %q (want text, table or json)", format)
}

// Write renders one scheduled batch as text or a table. width only applies to text output.
func Write(w io.Writer, format string, reports []core.Report, width int) error {
	switch format {
	case FormatText, "":
		return WriteText(w, reports, width)
	case FormatTable:
		return WriteTable(w, reports)
	}
	return fmt.Errorf("format %q does not render per batch", format)
}

// WriteText writes the fixed width report: a header row followed by one row per process,
// every cell right-justified to width. Cells at least as wide as width get a single
// leading space instead.
func WriteText(w io.Writer, reports []core.Report, width int) error {
	if width <= 0 {
		width = DefaultColumnWidth
	}

	if err := writeRow(w, core.Columns, width); err != nil {
		return err
	}
	for _, r := range reports {
		values := r.Values()
		cells := make([]string, 0, len(values))
		for _, v := range values {
			cells = append(cells, strconv.Itoa(v))
		}
		if err := writeRow(w, cells, width); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(w io.Writer, cells []string, width int) error {
	var row strings.Builder
	for _, cell := range cells {
		if len(cell) >= width {
			row.WriteString(" " + cell)
			continue
		}
		fmt.Fprintf(&row, "%*s", width, cell)
	}
	row.WriteString("\n")
	_, err := io.WriteString(w, row.String())
	return err
}

func WriteTable(w io.Writer, reports []core.Report) error {
	table := tablewriter.NewWriter(w)

	header := make([]any, 0, len(core.Columns))
	for _, column := range core.Columns {
		header = append(header, column)
	}
	table.Header(header...)

	for _, r := range reports {
		row := make([]any, 0, len(core.Columns))
		for _, v := range r.Values() {
			row = append(row, strconv.Itoa(v))
		}
		if err := table.Append(row...); err != nil {
			return fmt.Errorf("failed to append row for process %d: %w", r.ProcessID, err)
		}
	}
	return table.Render()
}

func WriteJSON(w io.Writer, v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(output))
	return err
}
