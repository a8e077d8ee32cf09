package entity

import "fmt"

const (
	UnknownTrack  = "Unknown Track"
	UnknownArtist = "Unknown Artist"
	UnknownAlbum  = "Unknown Album"
)

// Track is the playlist-track record the tool works with: the fields
// written to and loaded from playlist JSON files. Artist may hold several
// names joined with ", ". ReleaseYear is nil when the upstream record
// carries no usable release date. Playlist tags the playlist file the
// track was loaded from; it is injected by the corpus loader and is not
// part of the upstream record.
type Track struct {
	Name        string `json:"name"`
	Artist      string `json:"artist"`
	Album       string `json:"album"`
	ReleaseYear *int   `json:"release_year"`
	Playlist    string `json:"playlist,omitempty"`
}

// Label renders the track as "Name - Artist" for console output.
func (track *Track) Label() string {
	return fmt.Sprintf("%s - %s", track.Name, track.Artist)
}

// Year returns the release year and whether the track has one.
func (track *Track) Year() (int, bool) {
	if track.ReleaseYear == nil {
		return 0, false
	}
	return *track.ReleaseYear, true
}
