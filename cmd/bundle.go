package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/cot-cli/internal/cot"
)

var bundleCmd = &cobra.Command{
	Use:   "bundle",
	Short: "Download a multi-year historical bundle",
	Long: `Download the older bulk package (e.g. 2006-2016) for a report type.

Bundles never change once published, so a cached copy is always reused.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		log := zap.L().With(zap.String("command", "bundle"))

		report, _ := cmd.Flags().GetString("report")
		out, _ := cmd.Flags().GetString("out")

		client, err := clientFromFlags(cmd)
		if err != nil {
			return err
		}

		log.Info("downloading bundle", zap.String("report", report))
		t, err := client.DownloadBundle(ctx, cot.ReportType(report))
		if err != nil {
			return eris.Wrap(err, "bundle")
		}

		if err := writeTable(t, out); err != nil {
			return eris.Wrap(err, "bundle: write table")
		}

		if out != "" {
			fmt.Printf("Wrote %d rows to %s\n", t.Len(), out)
		}
		return nil
	},
}

func init() {
	addSharedFlags(bundleCmd)
	rootCmd.AddCommand(bundleCmd)
}
