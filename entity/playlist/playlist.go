package playlist

import "github.com/mlanaro/spotitheme/entity"

// Playlist couples Spotify playlist metadata with its extracted tracks.
// Tracks is nil until the playlist's items have been fetched.
type Playlist struct {
	ID         string
	Name       string
	Owner      string
	Public     bool
	TrackTotal int
	Tracks     []*entity.Track
}

// Visibility renders the public flag for console output.
func (playlist *Playlist) Visibility() string {
	if playlist.Public {
		return "public"
	}
	return "private"
}
