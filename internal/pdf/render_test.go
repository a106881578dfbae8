package pdf

import (
	"bytes"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devbydaniel/minutes/internal/domain/minutes"
)

// testFont resolves a system font or skips the test on machines without
// one. Rendering without a regular+bold pair is a hard error by design.
func testFont(t *testing.T) *FontFamily {
	t.Helper()
	family, err := ResolveFont(DefaultFontDirs())
	if err != nil {
		t.Skipf("no system font available: %v", err)
	}
	return family
}

func testRecord(entryCount int) *minutes.Record {
	rec := &minutes.Record{
		Title:    "Quarterly Review",
		DateText: "Thursday, 05.02.2026",
		Location: "Room 4",
		Recorder: minutes.Person{Name: "Anna Beispiel", Code: "AB"},
		Attendees: []minutes.Person{
			{Name: "Bernd Carstens", Code: "BC"},
		},
		About:    "Budget and roadmap.",
		Draft:    true,
		Security: minutes.SecurityInternal,
	}
	for i := 0; i < entryCount; i++ {
		kind := minutes.KindInfo
		if i%3 == 0 {
			kind = minutes.KindTodo
		}
		rec.Entries = append(rec.Entries, minutes.Entry{
			Topic: fmt.Sprintf("Item %d", i+1),
			Kind:  kind,
			Note:  fmt.Sprintf("note %d with a [link %d](http://example.com/%d)", i+1, i+1, i+1),
			Owner: "BC",
			Due:   "12.02.2026",
		})
	}
	return rec
}

func TestRenderProducesPDF(t *testing.T) {
	family := testFont(t)

	data, err := Render(testRecord(3), family)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "output must be a PDF document")
}

func TestRenderPageCountStable(t *testing.T) {
	family := testFont(t)
	rec := testRecord(80)

	counts := make([]int, 2)
	for i := range counts {
		r := newRenderer(family, 0)
		r.writeDocument(rec)
		require.NoError(t, r.pdf.Output(io.Discard))
		counts[i] = r.pdf.PageCount()
	}

	assert.Equal(t, counts[0], counts[1], "identical content must paginate identically")
	assert.Greater(t, counts[0], 1, "80 entries must not fit on one page")
}

func TestRenderFinalPassMatchesCountingPass(t *testing.T) {
	family := testFont(t)
	rec := testRecord(80)

	counting := newRenderer(family, 0)
	counting.writeDocument(rec)
	require.NoError(t, counting.pdf.Output(io.Discard))
	total := counting.pdf.PageCount()

	final := newRenderer(family, total)
	final.writeDocument(rec)
	require.NoError(t, final.pdf.Output(io.Discard))

	assert.Equal(t, total, final.pdf.PageCount(), "footer stamping must not change the layout")
}

func TestRenderFootersCoverEveryPage(t *testing.T) {
	family := testFont(t)
	rec := testRecord(80)

	counting := newRenderer(family, 0)
	counting.writeDocument(rec)
	require.NoError(t, counting.pdf.Output(io.Discard))
	assert.Empty(t, counting.footers, "the counting pass stamps nothing")
	total := counting.pdf.PageCount()

	final := newRenderer(family, total)
	final.writeDocument(rec)
	require.NoError(t, final.pdf.Output(io.Discard))

	require.Len(t, final.footers, total)
	for i, footer := range final.footers {
		assert.Equal(t, fmt.Sprintf("Page %d of %d", i+1, total), footer)
	}
}

func TestRenderDeterministic(t *testing.T) {
	family := testFont(t)
	rec := testRecord(10)

	first, err := Render(rec, family)
	require.NoError(t, err)
	second, err := Render(rec, family)
	require.NoError(t, err)

	assert.Equal(t, len(first), len(second), "re-rendering unchanged input must not change the output size")
}

func TestWrapURL(t *testing.T) {
	assert.Equal(t, []string{"http://short/x"}, wrapURL("http://short/x"))

	long := "http://example.com/" + string(bytes.Repeat([]byte("a"), 95)) + "/tail"
	chunks := wrapURL(long)
	require.Len(t, chunks, 2)
	assert.Equal(t, "tail", chunks[1], "the split lands right after a slash")
	assert.Equal(t, long, chunks[0]+chunks[1])
}
