// Package render turns an assembled report table into console or HTML
// output.
package render

import (
	"io"

	"github.com/huangsam/wily/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// GridStyle selects the alignment of the console grid.
type GridStyle struct {
	HeaderAlignment tw.Align
	RowAlignment    tw.Align
}

// DefaultGridStyle is the bordered grid every report renders with.
var DefaultGridStyle = GridStyle{
	HeaderAlignment: tw.AlignCenter,
	RowAlignment:    tw.AlignLeft,
}

// WriteConsole renders the report with the default grid style.
func WriteConsole(w io.Writer, table *schema.ReportTable) error {
	return WriteConsoleStyled(w, table, DefaultGridStyle)
}

// WriteConsoleStyled renders the report as a bordered grid table.
func WriteConsoleStyled(w io.Writer, table *schema.ReportTable, style GridStyle) error {
	t := tablewriter.NewWriter(w)
	t.Header(table.Headers)

	t.Configure(func(cfg *tablewriter.Config) {
		cfg.Header.Alignment.Global = style.HeaderAlignment
		cfg.Row.Alignment.Global = style.RowAlignment
	})

	if err := t.Bulk(table.Rows); err != nil {
		return err
	}
	return t.Render()
}
