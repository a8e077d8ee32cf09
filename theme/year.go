package theme

import (
	"sort"
	"strings"

	"github.com/mlanaro/spotitheme/entity"
)

// YearEntry is one deduplicated track identity with every playlist tag
// it was found under.
type YearEntry struct {
	Track     *entity.Track
	Playlists []string
}

// FilterByYear returns the corpus tracks released in the given year.
// Tracks without a release year never match.
func FilterByYear(tracks []*entity.Track, year int) []*entity.Track {
	var filtered []*entity.Track
	for _, track := range tracks {
		if track.ReleaseYear != nil && *track.ReleaseYear == year {
			filtered = append(filtered, track)
		}
	}
	return filtered
}

// Dedupe collapses tracks sharing the same case-folded name and artist
// into a single entry, merging their playlist tags sorted and unique.
// Entries keep the first occurrence's order.
func Dedupe(tracks []*entity.Track) []YearEntry {
	type identity struct {
		name, artist string
	}

	var (
		order   []identity
		entries = make(map[identity]*YearEntry)
	)
	for _, track := range tracks {
		key := identity{
			name:   strings.ToLower(strings.TrimSpace(track.Name)),
			artist: strings.ToLower(strings.TrimSpace(track.Artist)),
		}
		entry, ok := entries[key]
		if !ok {
			entry = &YearEntry{Track: track}
			entries[key] = entry
			order = append(order, key)
		}
		if track.Playlist != "" && !contains(entry.Playlists, track.Playlist) {
			entry.Playlists = append(entry.Playlists, track.Playlist)
		}
	}

	deduped := make([]YearEntry, 0, len(order))
	for _, key := range order {
		entry := entries[key]
		sort.Strings(entry.Playlists)
		deduped = append(deduped, *entry)
	}
	return deduped
}

func contains(list []string, value string) bool {
	for _, entry := range list {
		if entry == value {
			return true
		}
	}
	return false
}
