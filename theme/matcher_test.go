package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func matchIndex(matches []Match) map[string]bool {
	index := make(map[string]bool, len(matches))
	for _, match := range matches {
		index[match.Term] = match.FullWord
	}
	return index
}

func TestFindMatches(t *testing.T) {
	matches := matchIndex(FindMatches("Lock the Door", NewTermSet("lock", "door", "key")))
	assert.Equal(t, map[string]bool{"lock": true, "door": true}, matches)
}

func TestFindMatchesSubstring(t *testing.T) {
	matches := FindMatches("Sherlock Holmes", NewTermSet("lock"))
	require.Len(t, matches, 1)
	assert.Equal(t, "lock", matches[0].Term)
	assert.False(t, matches[0].FullWord)
}

func TestFindMatchesBoundaries(t *testing.T) {
	for text, full := range map[string]bool{
		"lock":             true,
		"the lock is here": true,
		"lock & key":       true,
		"(lock)":           true,
		"dead-lock":        true,
		"lock2":            false,
		"unlocked":         false,
		"sherlock-lock":    true, // second occurrence is bounded
	} {
		matches := FindMatches(text, NewTermSet("lock"))
		require.Len(t, matches, 1, text)
		assert.Equal(t, full, matches[0].FullWord, text)
	}
}

func TestFindMatchesCaseInsensitive(t *testing.T) {
	matches := FindMatches("LOCKDOWN", NewTermSet("Lock"))
	require.Len(t, matches, 1)
	assert.False(t, matches[0].FullWord)
}

func TestFindMatchesUnicodeBoundary(t *testing.T) {
	// a letter is a letter in any script: no boundary after "über"
	matches := FindMatches("übermensch", NewTermSet("mensch"))
	require.Len(t, matches, 1)
	assert.False(t, matches[0].FullWord)

	matches = FindMatches("naïve—dream", NewTermSet("dream"))
	require.Len(t, matches, 1)
	assert.True(t, matches[0].FullWord)
}

func TestFindMatchesEmpty(t *testing.T) {
	assert.Nil(t, FindMatches("", NewTermSet("lock")))
	assert.Nil(t, FindMatches("Lock the Door", TermSet{}))
	assert.Nil(t, FindMatches("Lock the Door", NewTermSet("")))
}
