package opengrok

import (
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// Summary describes a formatting pass.
type Summary struct {
	// Records is the number of records consumed, duplicates included.
	Records int
	// Lines is the number of lines written.
	Lines int
}

// Formatter renders match records as terminal text.
type Formatter struct {
	opts         RenderOptions
	multiProject bool
	dec          Decorator
	link         func(MatchRecord) string
}

type FormatterOpt func(f *Formatter)

// WithDecorator overrides the decorator chosen from RenderOptions.Color.
func WithDecorator(d Decorator) FormatterOpt {
	return func(f *Formatter) {
		f.dec = d
	}
}

// WithLinker sets the function computing hyperlink targets for identifiers.
// It is only used when RenderOptions.Hyperlink is set.
func WithLinker(link func(MatchRecord) string) FormatterOpt {
	return func(f *Formatter) {
		f.link = link
	}
}

func NewFormatter(opts RenderOptions, multiProject bool, fopts ...FormatterOpt) *Formatter {
	f := Formatter{
		opts:         opts,
		multiProject: multiProject,
		dec:          Plain{},
	}
	if opts.Color {
		f.dec = NewColors()
	}
	for _, opt := range fopts {
		opt(&f)
	}
	if !opts.Hyperlink {
		f.link = nil
	}
	return &f
}

// Format consumes records and writes one line per record, or one line per
// file in list mode.
func (f *Formatter) Format(w io.Writer, records iter.Seq[MatchRecord]) (Summary, error) {
	var sum Summary
	var seq iter.Seq[MatchRecord] = func(yield func(MatchRecord) bool) {
		for rec := range records {
			sum.Records++
			if !yield(rec) {
				return
			}
		}
	}
	if f.opts.List {
		seq = Distinct(seq)
	}
	for rec := range seq {
		if _, err := io.WriteString(w, f.Line(rec)); err != nil {
			return sum, fmt.Errorf("failed to write output: %w", err)
		}
		sum.Lines++
	}
	return sum, nil
}

// Line renders a single record, terminator included.
func (f *Formatter) Line(rec MatchRecord) string {
	id := f.identifier(rec)
	if f.opts.List {
		if f.opts.Null {
			return id + "\x00"
		}
		return id + "\n"
	}
	sep := f.dec.Decorate(":", RoleSeparator)
	if !f.opts.NoLines {
		sep += f.dec.Decorate(strconv.Itoa(rec.Lineno), RoleLineno) + f.dec.Decorate(":", RoleSeparator)
	}
	return id + sep + RenderSnippet(rec.Snippet, f.dec) + "\n"
}

func (f *Formatter) identifier(rec MatchRecord) string {
	var id string
	if f.multiProject {
		id = f.dec.Decorate(rec.Project, RoleProject) + f.dec.Decorate(":", RoleSeparator)
	}
	id += f.dec.Decorate(rec.Path, RolePath)
	if f.link != nil {
		if target := f.link(rec); target != "" {
			id = Hyperlink(target, id)
		}
	}
	return id
}

// RenderSnippet turns snippet markup into text: tags are dropped, entities
// decoded, and text inside <b> is decorated as a match.
func RenderSnippet(markup string, dec Decorator) string {
	var (
		b     strings.Builder
		depth int
	)
	z := html.NewTokenizer(strings.NewReader(markup))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			text := string(z.Text())
			if depth > 0 {
				text = dec.Decorate(text, RoleMatch)
			}
			b.WriteString(text)
		case html.StartTagToken:
			if name, _ := z.TagName(); string(name) == "b" {
				depth++
			}
		case html.EndTagToken:
			if name, _ := z.TagName(); string(name) == "b" && depth > 0 {
				depth--
			}
		}
	}
}

// Deduper admits a key unless it equals the last admitted one.
type Deduper struct {
	last    string
	started bool
}

func (d *Deduper) Admit(key string) bool {
	if d.started && key == d.last {
		return false
	}
	d.last, d.started = key, true
	return true
}

// Distinct drops records whose file is the same as the previous record's.
// Non-adjacent repeats are kept.
func Distinct(records iter.Seq[MatchRecord]) iter.Seq[MatchRecord] {
	return func(yield func(MatchRecord) bool) {
		var d Deduper
		for rec := range records {
			if !d.Admit(rec.DedupKey()) {
				continue
			}
			if !yield(rec) {
				return
			}
		}
	}
}
