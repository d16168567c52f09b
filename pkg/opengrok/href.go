package opengrok

import (
	"regexp"
	"strconv"
)

// the greedy prefix prefers the last /xref/ that still leaves a project and
// a path after it.
var hrefPattern = regexp.MustCompile(`^.*/xref/([^/]+)(/.*)#(\d+)$`)

// XrefLocation is the location encoded in a cross-reference link.
type XrefLocation struct {
	Project string
	Path    string
	Lineno  int
}

// ParseHref parses a link of the form .../xref/<project>/<path>#<line>.
// The second return value is false when the link does not have that shape.
func ParseHref(href string) (XrefLocation, bool) {
	m := hrefPattern.FindStringSubmatch(href)
	if m == nil {
		return XrefLocation{}, false
	}
	lineno, err := strconv.Atoi(m[3])
	if err != nil || lineno < 1 {
		return XrefLocation{}, false
	}
	return XrefLocation{
		Project: m[1],
		Path:    m[2],
		Lineno:  lineno,
	}, true
}
