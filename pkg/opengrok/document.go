package opengrok

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var ErrEmptyDocument = errors.New("empty document")

// Document is a parsed results page.
type Document struct {
	doc *goquery.Document
}

type parseOptions struct {
	lenient bool
}

type ParseOpt func(o *parseOptions)

// Lenient makes Parse discard parse errors and return an empty document
// instead.
func Lenient() ParseOpt {
	return func(o *parseOptions) {
		o.lenient = true
	}
}

// Parse parses a results page. Malformed markup is always tolerated by the
// HTML5 parsing algorithm; only an empty body or a reader failure is an
// error, and in lenient mode not even that.
func Parse(data []byte, opts ...ParseOpt) (*Document, error) {
	var o parseOptions
	for _, opt := range opts {
		opt(&o)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		if o.lenient {
			return emptyDocument(), nil
		}
		return nil, ErrEmptyDocument
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		if o.lenient {
			return emptyDocument(), nil
		}
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return &Document{doc: doc}, nil
}

func emptyDocument() *Document {
	return &Document{doc: goquery.NewDocumentFromNode(&html.Node{Type: html.DocumentNode})}
}
