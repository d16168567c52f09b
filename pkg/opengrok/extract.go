package opengrok

import (
	"iter"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	matchSelector = "div#results > table > tbody > tr > td > tt.con > a.s"
	moreSelector  = "div#results > p.slider > a.more"
)

// Records yields a record for every match anchor in the results table, in
// document order. Anchors whose link is not an xref location are skipped.
func (d *Document) Records() iter.Seq[MatchRecord] {
	return func(yield func(MatchRecord) bool) {
		d.doc.Find(matchSelector).EachWithBreak(func(_ int, a *goquery.Selection) bool {
			rec, ok := recordFromAnchor(a)
			if !ok {
				return true
			}
			return yield(rec)
		})
	}
}

// Truncated reports whether the page offers more results than it contains.
func (d *Document) Truncated() bool {
	return d.doc.Find(moreSelector).Length() > 0
}

func recordFromAnchor(a *goquery.Selection) (MatchRecord, bool) {
	href, _ := a.Attr("href")
	loc, ok := ParseHref(href)
	if !ok {
		return MatchRecord{}, false
	}
	return MatchRecord{
		Project: loc.Project,
		Path:    loc.Path,
		Lineno:  loc.Lineno,
		Snippet: snippetMarkup(a),
		Href:    href,
	}, true
}

// snippetMarkup serializes the children of a match anchor, leaving out a
// leading line label.
func snippetMarkup(a *goquery.Selection) string {
	var b strings.Builder
	a.Contents().Each(func(i int, c *goquery.Selection) {
		if i == 0 && goquery.NodeName(c) == "span" && c.HasClass("l") {
			return
		}
		s, err := goquery.OuterHtml(c)
		if err != nil {
			return
		}
		b.WriteString(s)
	})
	return b.String()
}
