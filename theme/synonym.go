package theme

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// TermSet is the deduplicated lowercase vocabulary of one theme query.
type TermSet map[string]struct{}

// NewTermSet builds a set from the given terms, lowercasing each.
func NewTermSet(terms ...string) TermSet {
	set := make(TermSet, len(terms))
	for _, term := range terms {
		set[strings.ToLower(term)] = struct{}{}
	}
	return set
}

// Sorted returns the set's terms in lexical order.
func (set TermSet) Sorted() []string {
	terms := make([]string, 0, len(set))
	for term := range set {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}

// SynonymMap maps a lowercase keyword to its lowercase synonyms.
type SynonymMap map[string][]string

// Keywords derives the base keyword list from a theme name: the name
// split on hyphen, underscore and whitespace runs, plus the whole name
// as a final phrase keyword, all lowercased.
func Keywords(theme string) []string {
	lowered := strings.ToLower(theme)
	keywords := strings.FieldsFunc(lowered, func(r rune) bool {
		return r == '-' || r == '_' || unicode.IsSpace(r)
	})
	return append(keywords, lowered)
}

// Expand returns the one-hop closure of keywords under the synonym map:
// every keyword lowercased, plus the synonyms of those that carry an
// entry. Synonyms of synonyms are never followed, so cyclic maps cannot
// recurse and chained entries stay one hop wide. A nil map expands to
// the keywords alone.
func Expand(keywords []string, synonyms SynonymMap) TermSet {
	expanded := make(TermSet, len(keywords))
	for _, keyword := range keywords {
		lowered := strings.ToLower(keyword)
		expanded[lowered] = struct{}{}
		for _, synonym := range synonyms[lowered] {
			expanded[strings.ToLower(synonym)] = struct{}{}
		}
	}
	return expanded
}

// LoadSynonymMap reads a keyword-to-synonyms JSON object. Keys and
// values are lowercased; a key whose value is not an array of strings
// degrades to an empty synonym list rather than failing the load.
func LoadSynonymMap(path string) (SynonymMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SynonymMap{}, err
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return SynonymMap{}, fmt.Errorf("cannot parse synonym map %s: %w", path, err)
	}

	synonyms := make(SynonymMap, len(raw))
	for keyword, value := range raw {
		entries, _ := value.([]interface{})
		list := make([]string, 0, len(entries))
		for _, entry := range entries {
			if synonym, ok := entry.(string); ok {
				list = append(list, strings.ToLower(synonym))
			}
		}
		synonyms[strings.ToLower(keyword)] = list
	}
	return synonyms, nil
}
