package cmd

import (
	"testing"

	"github.com/mlanaro/spotitheme/entity"
	"github.com/mlanaro/spotitheme/theme"
	"github.com/stretchr/testify/assert"
)

func TestSortEntries(t *testing.T) {
	entries := []theme.YearEntry{
		{Track: &entity.Track{Name: "b side", Artist: "Zeta", Album: "1st"}},
		{Track: &entity.Track{Name: "Anthem", Artist: "yankee", Album: "2nd"}},
	}

	sortEntries(entries, "name")
	assert.Equal(t, "Anthem", entries[0].Track.Name)
	sortEntries(entries, "artist")
	assert.Equal(t, "yankee", entries[0].Track.Artist)
	sortEntries(entries, "album")
	assert.Equal(t, "1st", entries[0].Track.Album)
}

func TestFormatEntry(t *testing.T) {
	entry := theme.YearEntry{
		Track:     &entity.Track{Name: "Song", Artist: "Band"},
		Playlists: []string{"chill", "road-trip"},
	}
	assert.Equal(t, "Song - Band [chill, road-trip]", formatEntry(entry))
	assert.Equal(t, "Song - Band", formatEntry(theme.YearEntry{Track: entry.Track}))
}
