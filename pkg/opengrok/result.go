package opengrok

// MatchRecord is a single highlighted occurrence extracted from a results
// document.
type MatchRecord struct {
	Project string
	Path    string
	Lineno  int
	// Snippet is the inner markup of the match anchor with the line label
	// removed. Emphasized terms are still wrapped in <b> tags.
	Snippet string
	// Href is the raw link target the record was parsed from.
	Href string
}

// DedupKey identifies the file a record belongs to.
func (r MatchRecord) DedupKey() string {
	return r.Project + ":" + r.Path
}

// Identifier returns the plain file identifier, prefixed with the project
// when more than one project was searched.
func (r MatchRecord) Identifier(multiProject bool) string {
	if multiProject {
		return r.DedupKey()
	}
	return r.Path
}
