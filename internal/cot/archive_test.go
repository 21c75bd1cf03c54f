package cot

import (
	"archive/zip"
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeZip builds an in-memory zip with the given member contents.
func makeZip(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range files {
		fw, err := w.Create(name)
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestSelectDataEntry_PicksLargest(t *testing.T) {
	name, err := SelectDataEntry([]Entry{
		{Name: "readme.txt", Size: 5},
		{Name: "data.csv", Size: 31},
		{Name: "other.txt", Size: 18},
	})
	require.NoError(t, err)
	assert.Equal(t, "data.csv", name)
}

func TestSelectDataEntry_CaseInsensitiveExtensions(t *testing.T) {
	name, err := SelectDataEntry([]Entry{
		{Name: "ANNUAL.TXT", Size: 100},
		{Name: "notes.Csv", Size: 10},
	})
	require.NoError(t, err)
	assert.Equal(t, "ANNUAL.TXT", name)
}

func TestSelectDataEntry_SkipsDirectoriesAndOtherTypes(t *testing.T) {
	name, err := SelectDataEntry([]Entry{
		{Name: "data/", Size: 0},
		{Name: "chart.png", Size: 9999},
		{Name: "data/annual.txt", Size: 42},
	})
	require.NoError(t, err)
	assert.Equal(t, "data/annual.txt", name)
}

func TestSelectDataEntry_TieBreaksOnName(t *testing.T) {
	name, err := SelectDataEntry([]Entry{
		{Name: "b.txt", Size: 10},
		{Name: "a.txt", Size: 10},
	})
	require.NoError(t, err)
	assert.Equal(t, "a.txt", name)
}

func TestSelectDataEntry_NoCandidates(t *testing.T) {
	_, err := SelectDataEntry([]Entry{
		{Name: "image.png", Size: 12},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoDataFile))
	assert.Contains(t, err.Error(), "image.png")
}

func TestExtractDataFile(t *testing.T) {
	archive := makeZip(t, map[string]string{
		"readme.txt": "short",
		"data.csv":   "this is a longer piece of data",
		"other.txt":  "medium length data",
	})

	name, data, err := extractDataFile(archive)
	require.NoError(t, err)
	assert.Equal(t, "data.csv", name)
	assert.Equal(t, "this is a longer piece of data", string(data))
}

func TestExtractDataFile_NoDataFile(t *testing.T) {
	archive := makeZip(t, map[string]string{"image.png": "binary"})

	_, _, err := extractDataFile(archive)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoDataFile))
}

func TestExtractDataFile_NotAZip(t *testing.T) {
	_, _, err := extractDataFile([]byte("definitely not a zip"))
	require.Error(t, err)
}
