package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sells-group/cot-cli/internal/cot"
)

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "List registered report types",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "REPORT TYPE\tYEAR PREFIX\tBUNDLE")
		for _, rt := range cot.ReportTypes() {
			spec, err := cot.Spec(rt)
			if err != nil {
				return err
			}
			bundle := spec.BundleZipFilename
			if bundle == "" {
				bundle = "-"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", rt, spec.YearZipPrefix, bundle)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(reportsCmd)
}
