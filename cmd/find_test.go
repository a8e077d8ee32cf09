package cmd

import (
	"testing"

	"github.com/mlanaro/spotitheme/theme"
	"github.com/stretchr/testify/assert"
)

func TestMatchSummary(t *testing.T) {
	summary := matchSummary(theme.MatchDetails{
		Score:   11,
		Matches: []string{"key", "lock", "winter"},
		Locations: map[string][]string{
			theme.FieldName:  {"lock"},
			theme.FieldAlbum: {"key", "winter"},
		},
		FullWordMatches: []string{"lock", "winter"},
	})
	assert.Equal(t, "name(lock*) album(key, winter*)", summary)
}

func TestMatchSummaryEmpty(t *testing.T) {
	assert.Empty(t, matchSummary(theme.MatchDetails{}))
}
