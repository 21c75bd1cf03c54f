package cot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const accordionPage = `
<html>
	<body>
		<main>
			<div class="ckeditor-accordion">
				<dt>Title 1</dt>
				<dd>Explanation 1</dd>
				<dt>Open Interest</dt>
				<dd>The total of all futures contracts entered into and not yet
				offset by a transaction.</dd>
			</div>
		</main>
	</body>
</html>`

func TestParseExplanatoryNotes(t *testing.T) {
	table, err := parseExplanatoryNotes([]byte(accordionPage))
	require.NoError(t, err)

	assert.Equal(t, []string{"section", "title", "text"}, table.Columns)
	require.Equal(t, 2, table.Len())

	assert.Equal(t, "title_1", table.Get(0, "section"))
	assert.Equal(t, "Title 1", table.Get(0, "title"))
	assert.Equal(t, "Explanation 1", table.Get(0, "text"))

	assert.Equal(t, "open_interest", table.Get(1, "section"))
	assert.Contains(t, table.Get(1, "text"), "not yet offset")
}

func TestParseExplanatoryNotes_DtWithoutDdSkipped(t *testing.T) {
	page := `<html><body><div class="ckeditor-accordion">
		<dt>Orphan</dt>
		<dt>Paired</dt><dd>Has a definition</dd>
	</div></body></html>`

	table, err := parseExplanatoryNotes([]byte(page))
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())
	assert.Equal(t, "paired", table.Get(0, "section"))
}

func TestParseExplanatoryNotes_Fallback(t *testing.T) {
	table, err := parseExplanatoryNotes([]byte("<html><main>Fallback Text</main></html>"))
	require.NoError(t, err)

	require.Equal(t, 1, table.Len())
	assert.Equal(t, "full_page_fallback", table.Get(0, "section"))
	assert.Equal(t, "Explanatory Notes (fallback)", table.Get(0, "title"))
	assert.Contains(t, table.Get(0, "text"), "Fallback Text")
}

func TestParseExplanatoryNotes_FallbackWithoutMain(t *testing.T) {
	page := `<html><body><script>var x = 1;</script><p>Visible  body   text</p></body></html>`

	table, err := parseExplanatoryNotes([]byte(page))
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())
	text := table.Get(0, "text")
	assert.Contains(t, text, "Visible body text")
	assert.NotContains(t, text, "var x")
}

func TestExplanatoryNotes_ViaClient(t *testing.T) {
	f := &stubFetcher{responses: map[string][]byte{
		"https://notes.test/index.htm": []byte(accordionPage),
	}}
	c, err := NewClient(ClientConfig{
		Fetcher:  f,
		NotesURL: "https://notes.test/index.htm",
		DataDir:  t.TempDir(),
	})
	require.NoError(t, err)

	table, err := c.ExplanatoryNotes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())
	require.Len(t, f.calls, 1)
}

func TestNormalizeSection(t *testing.T) {
	assert.Equal(t, "title_1", normalizeSection("Title 1"))
	assert.Equal(t, "open_interest", normalizeSection("Open Interest"))
	assert.Equal(t, "nonreportable_positions", normalizeSection("  Nonreportable Positions?  "))
	assert.Equal(t, "a_b_c", normalizeSection("A--B__C"))
}
