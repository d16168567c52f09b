package opengrok

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecords(t *testing.T) {
	doc, err := Parse([]byte(resultsPage))
	require.NoError(t, err)

	got := slices.Collect(doc.Records())
	want := []MatchRecord{
		{
			Project: "proj",
			Path:    "/a/b.go",
			Lineno:  42,
			Snippet: "func <b>Foo</b>()",
			Href:    "/source/xref/proj/a/b.go#42",
		},
		{
			Project: "proj",
			Path:    "/a/b.go",
			Lineno:  50,
			Snippet: "\treturn <b>Foo</b>() &amp;&amp; x &lt; 3",
			Href:    "/source/xref/proj/a/b.go#50",
		},
		{
			Project: "other",
			Path:    "/x/y.c",
			Lineno:  7,
			Snippet: "int <b>Foo</b>;",
			Href:    "/source/xref/other/x/y.c#7",
		},
	}
	assert.Equal(t, want, got)
}

func TestRecordsStopEarly(t *testing.T) {
	doc, err := Parse([]byte(resultsPage))
	require.NoError(t, err)

	var seen []int
	for rec := range doc.Records() {
		seen = append(seen, rec.Lineno)
		break
	}
	assert.Equal(t, []int{42}, seen)
}

func TestRecordsLabelNotLeading(t *testing.T) {
	page := `<div id="results"><table><tr><td><tt class="con">` +
		`<a class="s" href="/xref/p/f.txt#3">see <span class="l">3</span></a>` +
		`</tt></td></tr></table></div>`
	doc, err := Parse([]byte(page))
	require.NoError(t, err)

	got := slices.Collect(doc.Records())
	require.Len(t, got, 1)
	assert.Equal(t, `see <span class="l">3</span>`, got[0].Snippet)
}

func TestRecordsOutsideResultsTable(t *testing.T) {
	page := `<div id="other"><table><tr><td><tt class="con">` +
		`<a class="s" href="/xref/p/f.txt#3"><span class="l">3</span>x</a>` +
		`</tt></td></tr></table></div>` +
		`<div id="results"><table><tr><td><tt class="con">` +
		`<a href="/xref/p/g.txt#4"><span class="l">4</span>no class</a>` +
		`</tt></td></tr></table></div>`
	doc, err := Parse([]byte(page))
	require.NoError(t, err)
	assert.Empty(t, slices.Collect(doc.Records()))
}

func TestTruncated(t *testing.T) {
	tests := []struct {
		name string
		page string
		want bool
	}{
		{name: "more link", page: resultsPage, want: true},
		{name: "single page", page: singlePage, want: false},
		{name: "no results", page: noResultsPage, want: false},
		{
			name: "more link without results",
			page: `<div id="results"><p class="slider"><a class="more" href="#">more</a></p></div>`,
			want: true,
		},
		{
			name: "more link outside results",
			page: `<div id="results"></div><p class="slider"><a class="more" href="#">more</a></p>`,
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse([]byte(tt.page))
			require.NoError(t, err)
			assert.Equal(t, tt.want, doc.Truncated())
		})
	}
}

func TestParseEmpty(t *testing.T) {
	_, err := Parse(nil)
	assert.ErrorIs(t, err, ErrEmptyDocument)

	_, err = Parse([]byte("  \n\t"))
	assert.ErrorIs(t, err, ErrEmptyDocument)

	doc, err := Parse(nil, Lenient())
	require.NoError(t, err)
	assert.Empty(t, slices.Collect(doc.Records()))
	assert.False(t, doc.Truncated())
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name string
		page string
		want int
	}{
		{name: "not html", page: "<<<not html at all", want: 0},
		{
			name: "unclosed elements",
			page: `<div id="results"><table><tr><td><tt class="con"><a class="s" href="/xref/p/f.c#9">`,
			want: 1,
		},
		{name: "binary", page: "\x00\xff\xfe", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse([]byte(tt.page), Lenient())
			require.NoError(t, err)
			assert.Len(t, slices.Collect(doc.Records()), tt.want)
			assert.False(t, doc.Truncated())
		})
	}
}
