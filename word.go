package kbbiwords

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Default length bounds (inclusive) for words kept in the output document.
const (
	DefaultMinLen = 4
	DefaultMaxLen = 6
)

// WordList is an ordered collection of accepted words. Order mirrors first
// appearance in the source text; duplicates are preserved.
type WordList []string

// Document is the output document: a single-key mapping from "KBBI" to the
// word collection.
type Document struct {
	KBBI WordList `json:"KBBI"`
}

// Validate returns an error if the document contains invalid fields.
// An empty (but non-nil) word list is valid and serializes to [].
func (d *Document) Validate() error {
	if d.KBBI == nil {
		return Errorf(EINVALID, "document word list required")
	}
	return nil
}

// CandidateWords extracts candidate words from raw text. Each line is
// trimmed of surrounding whitespace and lower-cased; lines that are empty
// or contain any non-letter character are discarded. The letter test is
// Unicode-wide, not ASCII-only, so accented and script-specific letters
// are accepted.
func CandidateWords(text string) WordList {
	words := WordList{}
	for _, line := range strings.Split(text, "\n") {
		w := strings.ToLower(strings.TrimSpace(line))
		if w == "" || !isAlphabetic(w) {
			continue
		}
		words = append(words, w)
	}
	return words
}

// BuildDocument builds the output document from candidate words, keeping
// only words whose length in runes is within [minLen, maxLen] inclusive.
// Order and duplicates are preserved.
func BuildDocument(words WordList, minLen, maxLen int) *Document {
	doc := &Document{KBBI: WordList{}}
	for _, w := range words {
		if n := utf8.RuneCountInString(w); n >= minLen && n <= maxLen {
			doc.KBBI = append(doc.KBBI, w)
		}
	}
	return doc
}

func isAlphabetic(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// Fetcher retrieves the raw word-list text from a URL.
type Fetcher interface {
	// Fetch issues a GET request and returns the response body as text.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (text string, err error)

	// Close releases client resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// DocumentWriter persists a document to storage.
type DocumentWriter interface {
	WriteDocument(ctx context.Context, doc *Document, path string) error
}
