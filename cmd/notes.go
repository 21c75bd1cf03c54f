package main

import (
	"fmt"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/cot-cli/internal/cot"
	"github.com/sells-group/cot-cli/internal/fetcher"
)

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "Scrape the Explanatory Notes glossary",
	Long: `Scrape the CFTC Explanatory Notes page into a {section, title, text}
table. When the page's accordion markup is missing, a single fallback row
carries the whole page's visible text.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		log := zap.L().With(zap.String("command", "notes"))

		out, _ := cmd.Flags().GetString("out")
		timeoutSecs, _ := cmd.Flags().GetInt("timeout")
		if timeoutSecs <= 0 {
			timeoutSecs = cfg.COT.TimeoutSecs
		}

		f := fetcher.NewHTTPFetcher(fetcher.HTTPOptions{
			UserAgent: cfg.COT.UserAgent,
			Timeout:   time.Duration(timeoutSecs) * time.Second,
		})
		client, err := cot.NewClient(cot.ClientConfig{
			Fetcher:  f,
			NotesURL: cfg.COT.NotesURL,
			DataDir:  cfg.COT.DataDir,
		})
		if err != nil {
			return err
		}

		log.Info("scraping explanatory notes", zap.String("url", cfg.COT.NotesURL))
		t, err := client.ExplanatoryNotes(ctx)
		if err != nil {
			return eris.Wrap(err, "notes")
		}

		if err := writeTable(t, out); err != nil {
			return eris.Wrap(err, "notes: write table")
		}

		if out != "" {
			fmt.Printf("Wrote %d rows to %s\n", t.Len(), out)
		}
		return nil
	},
}

func init() {
	notesCmd.Flags().Int("timeout", 0, "fetch timeout in seconds (default from config)")
	notesCmd.Flags().String("out", "", "write table to file (.xlsx or CSV) instead of stdout")
	rootCmd.AddCommand(notesCmd)
}
