package minutes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkExtraction(t *testing.T) {
	var links LinkTable

	got := links.Extract("See [Docs](http://x) and [More](http://y)")

	assert.Equal(t, "See Docs [1] and More [2]", got)
	require.Len(t, links.Links, 2)
	assert.Equal(t, LinkReference{Index: 1, Label: "Docs", URL: "http://x"}, links.Links[0])
	assert.Equal(t, LinkReference{Index: 2, Label: "More", URL: "http://y"}, links.Links[1])
}

func TestLinkExtractionSharedCounter(t *testing.T) {
	var links LinkTable

	first := links.Extract("intro [A](http://a)")
	second := links.Extract("follow-up [B](http://b)")

	assert.Equal(t, "intro A [1]", first)
	assert.Equal(t, "follow-up B [2]", second)
}

func TestLinkExtractionDeterministic(t *testing.T) {
	input := "See [Docs](http://x) and [More](http://y)"

	var a, b LinkTable
	assert.Equal(t, a.Extract(input), b.Extract(input))
	assert.Equal(t, a.Links, b.Links)
}

func TestLinkExtractionLeavesPlainTextAlone(t *testing.T) {
	var links LinkTable

	for _, input := range []string{
		"no links here",
		"brackets [alone] stay",
		"parens (alone) stay",
		"empty label [](http://x) stays",
	} {
		assert.Equal(t, input, links.Extract(input))
	}
	assert.Empty(t, links.Links)
}

func TestLinkExtractionLabelKeepsOpenBracket(t *testing.T) {
	var links LinkTable

	got := links.Extract("see [a[b](http://x)")

	assert.Equal(t, "see a[b [1]", got)
	require.Len(t, links.Links, 1)
	assert.Equal(t, "a[b", links.Links[0].Label)
}

func TestLinkExtractionDoesNotMutateInput(t *testing.T) {
	var links LinkTable
	input := "See [Docs](http://x)"

	links.Extract(input)

	assert.Equal(t, "See [Docs](http://x)", input)
}
