package cmd

import (
	"os"

	"github.com/huangsam/wily/internal/contract"
	"github.com/huangsam/wily/internal/operators"
	"github.com/huangsam/wily/internal/render"
	"github.com/huangsam/wily/schema"
	"github.com/spf13/cobra"
)

// metricsCmd lists every metric wily can report on.
var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "List all reportable metrics.",
	Run: func(_ *cobra.Command, _ []string) {
		table := &schema.ReportTable{
			Headers: []string{"Metric", "Title", "Type", "Direction"},
		}
		for _, op := range operators.All() {
			for _, m := range op.Metrics {
				table.Rows = append(table.Rows, []string{
					op.Name + "." + m.Key,
					m.Title,
					string(m.ValueType),
					string(m.Direction),
				})
			}
		}
		if err := render.WriteConsole(os.Stdout, table); err != nil {
			contract.LogFatal("Cannot list metrics", err)
		}
	},
}
