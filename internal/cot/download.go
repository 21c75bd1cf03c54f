package cot

import (
	"bytes"
	"context"
	"os"
	"path/filepath"

	"github.com/jonboulle/clockwork"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/cot-cli/internal/fetcher"
)

// ClientConfig configures a Client.
type ClientConfig struct {
	// Fetcher performs network fetches. Required.
	Fetcher fetcher.Fetcher

	// BaseURL is the archive root. Defaults to DefaultBaseURL.
	BaseURL string

	// NotesURL is the Explanatory Notes page. Defaults to DefaultNotesURL.
	NotesURL string

	// DataDir is where fetched archives are cached. Defaults to "./dataset".
	DataDir string

	// StoreZip persists freshly fetched archives into DataDir.
	StoreZip bool

	// Clock supplies the current-year check. Defaults to the real clock.
	Clock clockwork.Clock
}

// Client runs the COT download pipeline: resolve archive name, reuse or
// fetch the zip, unwrap it, and parse the embedded data file. All
// operations are sequential and blocking; the caller's context and the
// fetcher timeout are the only cancellation.
type Client struct {
	cfg ClientConfig
}

// NewClient creates a Client, applying defaults for unset fields.
func NewClient(cfg ClientConfig) (*Client, error) {
	if cfg.Fetcher == nil {
		return nil, eris.New("cot: fetcher is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.NotesURL == "" {
		cfg.NotesURL = DefaultNotesURL
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "./dataset"
	}
	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}
	return &Client{cfg: cfg}, nil
}

// DownloadYear downloads one year of COT data for a report type.
func (c *Client) DownloadYear(ctx context.Context, report ReportType, year int) (*Table, error) {
	name, url, err := YearResource(c.cfg.BaseURL, report, year)
	if err != nil {
		return nil, err
	}

	// Current-year archives are always potentially stale; historical
	// archives are immutable once published.
	reuseLocal := year != c.cfg.Clock.Now().Year()

	archive, err := c.obtainArchive(ctx, url, name, reuseLocal)
	if err != nil {
		return nil, eris.Wrapf(err, "cot: download year %d of %s", year, report)
	}

	return c.loadTable(report, archive)
}

// DownloadBundle downloads the multi-year historical bundle of a report
// type. A local copy, when present, is always reused: bundles never change
// once published.
func (c *Client) DownloadBundle(ctx context.Context, report ReportType) (*Table, error) {
	name, url, err := BundleResource(c.cfg.BaseURL, report)
	if err != nil {
		return nil, err
	}

	archive, err := c.obtainArchive(ctx, url, name, true)
	if err != nil {
		return nil, eris.Wrapf(err, "cot: download bundle of %s", report)
	}

	return c.loadTable(report, archive)
}

// DownloadYearRange downloads [start, end] inclusive, ascending, and
// concatenates the rows. Any year's failure aborts the whole range.
func (c *Client) DownloadYearRange(ctx context.Context, report ReportType, start, end int) (*Table, error) {
	if start > end {
		return nil, eris.Wrapf(ErrInvalidRange, "%d > %d", start, end)
	}

	result := &Table{}
	for year := start; year <= end; year++ {
		t, err := c.DownloadYear(ctx, report, year)
		if err != nil {
			return nil, err
		}
		result.Append(t)
	}
	return result, nil
}

// obtainArchive returns archive bytes for a URL, reading the cached copy
// under DataDir when reuseLocal allows and one exists, otherwise fetching
// and (when StoreZip is set) persisting before returning.
func (c *Client) obtainArchive(ctx context.Context, url, name string, reuseLocal bool) ([]byte, error) {
	log := zap.L().With(zap.String("archive", name))
	localPath := filepath.Join(c.cfg.DataDir, name)

	if reuseLocal {
		if _, err := os.Stat(localPath); err == nil {
			log.Debug("reusing local archive", zap.String("path", localPath))
			data, err := os.ReadFile(localPath)
			if err != nil {
				return nil, eris.Wrapf(err, "cot: read cached archive %s", localPath)
			}
			return data, nil
		}
	}

	log.Info("fetching archive", zap.String("url", url))
	data, err := c.cfg.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	if c.cfg.StoreZip {
		if err := os.MkdirAll(c.cfg.DataDir, 0o755); err != nil {
			return nil, eris.Wrapf(err, "cot: create data dir %s", c.cfg.DataDir)
		}
		if err := os.WriteFile(localPath, data, 0o644); err != nil {
			return nil, eris.Wrapf(err, "cot: store archive %s", localPath)
		}
		log.Debug("stored archive", zap.String("path", localPath), zap.Int("bytes", len(data)))
	}

	return data, nil
}

// loadTable unwraps an archive and parses its data file.
func (c *Client) loadTable(report ReportType, archive []byte) (*Table, error) {
	name, data, err := extractDataFile(archive)
	if err != nil {
		return nil, eris.Wrapf(err, "cot: unwrap archive for %s", report)
	}

	t, err := ParseTable(bytes.NewReader(data))
	if err != nil {
		return nil, eris.Wrapf(err, "cot: parse %s", name)
	}

	zap.L().Debug("loaded table",
		zap.String("report", string(report)),
		zap.String("entry", name),
		zap.Int("rows", t.Len()),
	)
	return t, nil
}
