package theme

import (
	"sort"

	"github.com/mlanaro/spotitheme/entity"
)

// Field labels used by Weights and MatchDetails.Locations.
const (
	FieldName   = "name"
	FieldArtist = "artist"
	FieldAlbum  = "album"
)

// A full-word occurrence is worth twice a plain substring one,
// before the field weight multiplies in.
const (
	fullWordPoints  = 2
	substringPoints = 1
)

// Weights holds the per-field score multipliers.
type Weights struct {
	Name   int
	Artist int
	Album  int
}

// DefaultWeights ranks the track name above the artist above the album.
func DefaultWeights() Weights {
	return Weights{Name: 3, Artist: 2, Album: 1}
}

// MatchDetails is the evidence behind one track's score.
type MatchDetails struct {
	Score           int
	Matches         []string            // every matched term, sorted
	Locations       map[string][]string // field label to matched terms, fields without matches omitted
	FullWordMatches []string            // terms with at least one full-word occurrence, sorted
}

// Score runs the matcher over the track's name, artist and album and
// accumulates the weighted points of every term occurrence. The returned
// details carry deterministically ordered collections regardless of term
// iteration order.
func Score(track *entity.Track, terms TermSet, weights Weights) (int, MatchDetails) {
	var (
		total     int
		matched   = TermSet{}
		fullWords = TermSet{}
		locations = make(map[string][]string)
	)

	fields := []struct {
		label  string
		text   string
		weight int
	}{
		{FieldName, track.Name, weights.Name},
		{FieldArtist, track.Artist, weights.Artist},
		{FieldAlbum, track.Album, weights.Album},
	}
	for _, field := range fields {
		for _, match := range FindMatches(field.text, terms) {
			matched[match.Term] = struct{}{}
			locations[field.label] = append(locations[field.label], match.Term)
			if match.FullWord {
				fullWords[match.Term] = struct{}{}
				total += fullWordPoints * field.weight
			} else {
				total += substringPoints * field.weight
			}
		}
	}
	for _, list := range locations {
		sort.Strings(list)
	}

	return total, MatchDetails{
		Score:           total,
		Matches:         matched.Sorted(),
		Locations:       locations,
		FullWordMatches: fullWords.Sorted(),
	}
}
