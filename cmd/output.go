package main

import (
	"os"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/cot-cli/internal/cot"
	"github.com/sells-group/cot-cli/internal/fetcher"
)

// clientFromFlags builds a cot.Client from config defaults overlaid with
// the command's shared flags (--path, --no-store, --timeout).
func clientFromFlags(cmd *cobra.Command) (*cot.Client, error) {
	dataDir := cfg.COT.DataDir
	if v, _ := cmd.Flags().GetString("path"); v != "" {
		dataDir = v
	}

	storeZip := cfg.COT.StoreZip
	if v, _ := cmd.Flags().GetBool("no-store"); v {
		storeZip = false
	}

	timeoutSecs := cfg.COT.TimeoutSecs
	if v, _ := cmd.Flags().GetInt("timeout"); v > 0 {
		timeoutSecs = v
	}

	f := fetcher.NewHTTPFetcher(fetcher.HTTPOptions{
		UserAgent: cfg.COT.UserAgent,
		Timeout:   time.Duration(timeoutSecs) * time.Second,
	})

	return cot.NewClient(cot.ClientConfig{
		Fetcher:  f,
		BaseURL:  cfg.COT.BaseURL,
		NotesURL: cfg.COT.NotesURL,
		DataDir:  dataDir,
		StoreZip: storeZip,
	})
}

// writeTable emits a table to stdout as CSV, or to --out when set. An
// .xlsx destination gets a spreadsheet, anything else gets CSV.
func writeTable(t *cot.Table, out string) error {
	if out == "" {
		return t.WriteCSV(os.Stdout)
	}

	if strings.HasSuffix(strings.ToLower(out), ".xlsx") {
		return t.WriteXLSX(out, "")
	}

	f, err := os.Create(out)
	if err != nil {
		return eris.Wrapf(err, "create output file %s", out)
	}
	defer f.Close() //nolint:errcheck

	return t.WriteCSV(f)
}

// addSharedFlags registers the flags common to the download commands.
func addSharedFlags(cmd *cobra.Command) {
	cmd.Flags().String("report", string(cot.FinancialFuturesFut), "report type (see `cot reports`)")
	cmd.Flags().String("path", "", "archive cache directory (default from config)")
	cmd.Flags().Bool("no-store", false, "do not persist fetched archives")
	cmd.Flags().Int("timeout", 0, "fetch timeout in seconds (default from config)")
	cmd.Flags().String("out", "", "write table to file (.xlsx or CSV) instead of stdout")
}
