package theme

import (
	"fmt"
	"testing"

	"github.com/mlanaro/spotitheme/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRank(t *testing.T) {
	tracks := []*entity.Track{
		{Name: "Nothing Here", Artist: "X", Album: "Y"},
		{Name: "Winterlude", Artist: "X", Album: "Y"},
		{Name: "Cold Snap", Artist: "Winter Band", Album: "Y"},
		{Name: "Acoustic Winter", Artist: "X", Album: "Y"},
	}

	results := Rank(tracks, []string{"winter"}, nil, 1)
	require.Len(t, results, 3)
	assert.Equal(t, "Acoustic Winter", results[0].Track.Name) // full-word name, 6
	assert.Equal(t, "Cold Snap", results[1].Track.Name)       // full-word artist, 4
	assert.Equal(t, "Winterlude", results[2].Track.Name)      // substring name, 3
}

func TestRankMinScore(t *testing.T) {
	tracks := []*entity.Track{
		{Name: "Acoustic Winter"},
		{Name: "Winterlude"},
	}
	results := Rank(tracks, []string{"winter"}, nil, 6)
	require.Len(t, results, 1)
	assert.Equal(t, "Acoustic Winter", results[0].Track.Name)
}

func TestRankNameTieBreak(t *testing.T) {
	tracks := []*entity.Track{
		{Name: "zebra winter"},
		{Name: "Alpha Winter"},
	}
	results := Rank(tracks, []string{"winter"}, nil, 1)
	require.Len(t, results, 2)
	assert.Equal(t, "Alpha Winter", results[0].Track.Name)
	assert.Equal(t, "zebra winter", results[1].Track.Name)
}

func TestRankPositionTieBreak(t *testing.T) {
	first := &entity.Track{Name: "Winter", Playlist: "a"}
	second := &entity.Track{Name: "Winter", Playlist: "b"}

	results := Rank([]*entity.Track{first, second}, []string{"winter"}, nil, 1)
	require.Len(t, results, 2)
	assert.Same(t, first, results[0].Track)
	assert.Same(t, second, results[1].Track)
}

func TestRankThroughSynonyms(t *testing.T) {
	tracks := []*entity.Track{
		{Name: "Snowfall", Artist: "X", Album: "Y"},
	}
	assert.Empty(t, Rank(tracks, []string{"winter"}, nil, 1))

	results := Rank(tracks, []string{"winter"}, SynonymMap{"winter": {"snow"}}, 1)
	require.Len(t, results, 1)
	assert.Equal(t, []string{"snow"}, results[0].Details.Matches)
}

func TestRankDeterministic(t *testing.T) {
	var tracks []*entity.Track
	for i := 0; i < 500; i++ {
		tracks = append(tracks, &entity.Track{
			Name:   fmt.Sprintf("Winter Track %03d", i%100),
			Artist: "Snow Patrol",
			Album:  "Ice Records",
		})
	}
	synonyms := SynonymMap{"winter": {"snow", "ice"}}

	first := Rank(tracks, []string{"winter"}, synonyms, 0)
	second := Rank(tracks, []string{"winter"}, synonyms, 0)
	require.Len(t, first, len(tracks))
	assert.Equal(t, first, second)
}

func TestRankEmptyCorpus(t *testing.T) {
	assert.Empty(t, Rank(nil, []string{"winter"}, nil, 0))
}
