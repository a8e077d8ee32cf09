package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mlanaro/spotitheme/entity"
	"github.com/mlanaro/spotitheme/entity/playlist"
	"github.com/mlanaro/spotitheme/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPlaylist(name string, tracks ...*entity.Track) *playlist.Playlist {
	return &playlist.Playlist{ID: "id", Name: name, Tracks: tracks}
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "Road-Trip.json", Filename("Road Trip"))
	assert.Equal(t, "ACDC-only.json", Filename(`AC/DC: only?`))
	assert.Equal(t, "playlist.json", Filename(`<>|`))
}

func TestPlaylist(t *testing.T) {
	dir := t.TempDir()
	path, err := Playlist(testPlaylist("Road Trip",
		&entity.Track{Name: "Highway Song", Artist: "The Band", Album: "Out There"},
	), dir, false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Road-Trip.json"), path)
	assert.True(t, Exists(dir, "Road Trip"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var tracks []*entity.Track
	require.NoError(t, json.Unmarshal(data, &tracks))
	require.Len(t, tracks, 1)
	assert.Equal(t, "Highway Song", tracks[0].Name)
	assert.Nil(t, tracks[0].ReleaseYear)
}

func TestPlaylistEmpty(t *testing.T) {
	dir := t.TempDir()
	path, err := Playlist(testPlaylist("Empty"), dir, false)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func TestPlaylistExisting(t *testing.T) {
	dir := t.TempDir()
	_, err := Playlist(testPlaylist("Road Trip"), dir, false)
	require.NoError(t, err)

	_, err = Playlist(testPlaylist("Road Trip"), dir, false)
	assert.ErrorIs(t, err, ErrExists)
}

func TestPlaylistCollisions(t *testing.T) {
	dir := t.TempDir()
	_, err := Playlist(testPlaylist("Road Trip"), dir, true)
	require.NoError(t, err)

	path, err := Playlist(testPlaylist("Road Trip"), dir, true)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Road-Trip_1.json"), path)

	path, err = Playlist(testPlaylist("Road Trip"), dir, true)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Road-Trip_2.json"), path)
}

func TestResults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results", "winter.json")
	require.NoError(t, Results([]theme.RankedResult{
		{
			Track: &entity.Track{Name: "Acoustic Winter", Artist: "X", Album: "Y", Playlist: "chill"},
			Details: theme.MatchDetails{
				Score:           6,
				Matches:         []string{"winter"},
				Locations:       map[string][]string{"name": {"winter"}},
				FullWordMatches: []string{"winter"},
			},
		},
	}, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var records []map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &records))
	require.Len(t, records, 1)
	assert.Equal(t, float64(6), records[0]["score"])
	assert.Equal(t, []interface{}{"winter"}, records[0]["matched_keywords"])
	track, ok := records[0]["track"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Acoustic Winter", track["name"])
	assert.Equal(t, "chill", track["playlist"])
}

func TestResultsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "none.json")
	require.NoError(t, Results(nil, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}
