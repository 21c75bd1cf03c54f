package cot

import (
	"archive/zip"
	"bytes"
	"io"
	"sort"
	"strings"

	"github.com/rotisserie/eris"
)

// maxListedEntries caps how many entry names an ErrNoDataFile carries.
const maxListedEntries = 20

// Entry is one archive member, as seen by the selection rule.
type Entry struct {
	Name string
	Size uint64 // uncompressed
}

// SelectDataEntry picks the primary data file among archive entries.
// Directory entries are skipped, candidates are names ending in .txt or
// .csv (case-insensitive), and the largest uncompressed candidate wins.
// Archives bundle small auxiliary text files (readmes, notes) alongside
// exactly one large data file, and size is the only reliable discriminator
// across years and report types. Equal sizes fall back to lexical name
// order so the pick stays deterministic.
func SelectDataEntry(entries []Entry) (string, error) {
	var candidates []Entry
	var names []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name, "/") {
			continue
		}
		if len(names) < maxListedEntries {
			names = append(names, e.Name)
		}
		lower := strings.ToLower(e.Name)
		if strings.HasSuffix(lower, ".txt") || strings.HasSuffix(lower, ".csv") {
			candidates = append(candidates, e)
		}
	}

	if len(candidates) == 0 {
		return "", eris.Wrapf(ErrNoDataFile, "entries: %v", names)
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Size != candidates[j].Size {
			return candidates[i].Size > candidates[j].Size
		}
		return candidates[i].Name < candidates[j].Name
	})

	return candidates[0].Name, nil
}

// extractDataFile opens a zip archive held in memory, selects the primary
// data entry, and returns its name and uncompressed bytes.
func extractDataFile(archive []byte) (string, []byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return "", nil, eris.Wrap(err, "cot: open zip")
	}

	entries := make([]Entry, 0, len(zr.File))
	for _, zf := range zr.File {
		entries = append(entries, Entry{Name: zf.Name, Size: zf.UncompressedSize64})
	}

	name, err := SelectDataEntry(entries)
	if err != nil {
		return "", nil, err
	}

	for _, zf := range zr.File {
		if zf.Name != name {
			continue
		}
		rc, err := zf.Open()
		if err != nil {
			return "", nil, eris.Wrapf(err, "cot: open entry %s", name)
		}
		defer rc.Close() //nolint:errcheck

		data, err := io.ReadAll(rc)
		if err != nil {
			return "", nil, eris.Wrapf(err, "cot: read entry %s", name)
		}
		return name, data, nil
	}

	// Unreachable: the selected name came from the same entry list.
	return "", nil, eris.Errorf("cot: entry %s vanished from archive", name)
}
