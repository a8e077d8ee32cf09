// Package theme implements the track matching engine: loading a corpus
// of exported playlist tracks, expanding theme keywords through synonym
// maps, scanning track fields for full-word and substring occurrences
// and ranking the corpus by weighted match score.
package theme

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Match records one term found in a single text field.
type Match struct {
	Term     string
	FullWord bool
}

// FindMatches scans text for every term of the set, case-insensitively.
// A term yields at most one match: full-word (bounded by the text edges
// or non-alphanumeric runes on both sides) when any of its occurrences
// is, substring otherwise. Terms are expected lowercase already, the
// way Expand produces them.
func FindMatches(text string, terms TermSet) []Match {
	if text == "" || len(terms) == 0 {
		return nil
	}

	lowered := strings.ToLower(text)
	var matches []Match
	for term := range terms {
		if term == "" || !strings.Contains(lowered, term) {
			continue
		}
		matches = append(matches, Match{Term: term, FullWord: fullWord(lowered, term)})
	}
	return matches
}

// fullWord reports whether any occurrence of term in text has no letter
// or digit adjacent on either side.
func fullWord(text, term string) bool {
	for from := 0; ; {
		at := strings.Index(text[from:], term)
		if at < 0 {
			return false
		}
		at += from
		if boundaryBefore(text, at) && boundaryAfter(text, at+len(term)) {
			return true
		}
		from = at + 1
	}
}

func boundaryBefore(text string, at int) bool {
	if at == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:at])
	return !wordRune(r)
}

func boundaryAfter(text string, at int) bool {
	if at >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[at:])
	return !wordRune(r)
}

func wordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
