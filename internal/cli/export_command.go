package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"medtime/internal/report"
)

func (r *RootCommand) newExportCommand() *cobra.Command {
	handler := NewErrorHandler()
	var output string

	cmd := &cobra.Command{
		Use:   "export <period>",
		Short: "Write an HTML time report for a year (YYYY) or month (YYYY-MM)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			period := args[0]

			html, err := report.Build(r.ledger.Entries(), period)
			if err != nil {
				return handler.Handle("export report", err)
			}

			filename := output
			if filename == "" {
				filename = report.Filename(period)
			}
			if err := os.WriteFile(filename, []byte(html), 0o644); err != nil {
				return handler.Handle("export report", err)
			}
			fmt.Printf("Report written to %s\n", filename)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (defaults to the report's download name)")
	return cmd
}
