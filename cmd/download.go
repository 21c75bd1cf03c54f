package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/cot-cli/internal/cot"
)

var downloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Download COT data for a year or year range",
	Long: `Download yearly COT archives and print the extracted table as CSV.

Use --year for a single year, or --start-year/--end-year for an inclusive
range (rows concatenated years-ascending). Historical years are served
from the local archive cache when present; the current year is always
re-fetched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		log := zap.L().With(zap.String("command", "download"))

		report, _ := cmd.Flags().GetString("report")
		year, _ := cmd.Flags().GetInt("year")
		startYear, _ := cmd.Flags().GetInt("start-year")
		endYear, _ := cmd.Flags().GetInt("end-year")
		out, _ := cmd.Flags().GetString("out")

		client, err := clientFromFlags(cmd)
		if err != nil {
			return err
		}

		var t *cot.Table
		switch {
		case startYear != 0 || endYear != 0:
			log.Info("downloading year range",
				zap.String("report", report),
				zap.Int("start_year", startYear),
				zap.Int("end_year", endYear),
			)
			t, err = client.DownloadYearRange(ctx, cot.ReportType(report), startYear, endYear)
		case year != 0:
			log.Info("downloading year", zap.String("report", report), zap.Int("year", year))
			t, err = client.DownloadYear(ctx, cot.ReportType(report), year)
		default:
			return eris.New("download: --year or --start-year/--end-year is required")
		}
		if err != nil {
			return eris.Wrap(err, "download")
		}

		if err := writeTable(t, out); err != nil {
			return eris.Wrap(err, "download: write table")
		}

		if out != "" {
			fmt.Printf("Wrote %d rows to %s\n", t.Len(), out)
		}
		return nil
	},
}

func init() {
	addSharedFlags(downloadCmd)
	downloadCmd.Flags().Int("year", 0, "single year to download")
	downloadCmd.Flags().Int("start-year", 0, "first year of an inclusive range")
	downloadCmd.Flags().Int("end-year", 0, "last year of an inclusive range")
	rootCmd.AddCommand(downloadCmd)
}
