package spotify

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/mlanaro/spotitheme/entity"
	"github.com/mlanaro/spotitheme/entity/playlist"
	api "github.com/zmb3/spotify/v2"
)

const pageSize = 50

// Playlists returns every playlist of the current user, following
// pagination. The returned playlists carry metadata only.
func (client *Client) Playlists(ctx context.Context) ([]*playlist.Playlist, error) {
	page, err := client.CurrentUsersPlaylists(ctx, api.Limit(pageSize))
	if err != nil {
		return nil, err
	}

	var playlists []*playlist.Playlist
	for {
		for at := range page.Playlists {
			playlists = append(playlists, translatePlaylist(&page.Playlists[at]))
		}
		if err := client.NextPage(ctx, page); err != nil {
			if errors.Is(err, api.ErrNoMorePages) {
				return playlists, nil
			}
			return nil, err
		}
	}
}

// PlaylistByName resolves a playlist by case-insensitive name among the
// current user's playlists. The error of an unresolved name carries the
// closest names by edit distance.
func (client *Client) PlaylistByName(ctx context.Context, name string) (*playlist.Playlist, error) {
	playlists, err := client.Playlists(ctx)
	if err != nil {
		return nil, err
	}
	for _, entry := range playlists {
		if strings.EqualFold(entry.Name, name) {
			return entry, nil
		}
	}
	return nil, fmt.Errorf("no playlist named %q%s", name, suggestions(name, playlists))
}

// PlaylistByID fetches a playlist's metadata along with all of its
// tracks. Extracted tracks are also fanned out to the given channels as
// they arrive.
func (client *Client) PlaylistByID(ctx context.Context, id string, channels ...chan<- *entity.Track) (*playlist.Playlist, error) {
	full, err := client.GetPlaylist(ctx, api.ID(id))
	if err != nil {
		return nil, err
	}
	result := translatePlaylist(&full.SimplePlaylist)
	// the item page shadows the simple playlist's track counter
	result.TrackTotal = full.Tracks.Total
	if result.Tracks, err = client.Tracks(ctx, id, channels...); err != nil {
		return nil, err
	}
	return result, nil
}

// Tracks fetches every track of a playlist, following pagination.
// Entries deleted upstream and podcast episodes are dropped.
func (client *Client) Tracks(ctx context.Context, id string, channels ...chan<- *entity.Track) ([]*entity.Track, error) {
	page, err := client.GetPlaylistItems(ctx, api.ID(id), api.Limit(pageSize))
	if err != nil {
		return nil, err
	}

	var tracks []*entity.Track
	for {
		for at := range page.Items {
			track := extractTrack(&page.Items[at])
			if track == nil {
				continue
			}
			tracks = append(tracks, track)
			for _, channel := range channels {
				channel <- track
			}
		}
		if err := client.NextPage(ctx, page); err != nil {
			if errors.Is(err, api.ErrNoMorePages) {
				return tracks, nil
			}
			return nil, err
		}
	}
}

// Account returns the authenticated user's profile.
func (client *Client) Account(ctx context.Context) (*api.PrivateUser, error) {
	return client.CurrentUser(ctx)
}

// PlaylistTotal returns how many playlists the current user has,
// without walking them.
func (client *Client) PlaylistTotal(ctx context.Context) (int, error) {
	page, err := client.CurrentUsersPlaylists(ctx, api.Limit(1))
	if err != nil {
		return 0, err
	}
	return page.Total, nil
}

func translatePlaylist(source *api.SimplePlaylist) *playlist.Playlist {
	return &playlist.Playlist{
		ID:         source.ID.String(),
		Name:       source.Name,
		Owner:      source.Owner.DisplayName,
		Public:     source.IsPublic,
		TrackTotal: int(source.Tracks.Total),
	}
}

// extractTrack flattens a playlist item into a track record. Items
// whose track is gone or is a podcast episode yield nil.
func extractTrack(item *api.PlaylistItem) *entity.Track {
	full := item.Track.Track
	if full == nil {
		return nil
	}

	track := &entity.Track{
		Name:        full.Name,
		Artist:      joinArtists(full.Artists),
		Album:       full.Album.Name,
		ReleaseYear: releaseYear(full.Album.ReleaseDate),
	}
	if track.Name == "" {
		track.Name = entity.UnknownTrack
	}
	if track.Album == "" {
		track.Album = entity.UnknownAlbum
	}
	return track
}

func joinArtists(artists []api.SimpleArtist) string {
	if len(artists) == 0 {
		return entity.UnknownArtist
	}
	names := make([]string, 0, len(artists))
	for _, artist := range artists {
		name := artist.Name
		if name == "" {
			name = "Unknown"
		}
		names = append(names, name)
	}
	return strings.Join(names, ", ")
}

// releaseYear parses the leading four-digit year of a release date,
// whatever its precision ("2023", "2023-05", "2023-05-15").
func releaseYear(date string) *int {
	if len(date) < 4 {
		return nil
	}
	for _, r := range date[:4] {
		if r < '0' || r > '9' {
			return nil
		}
	}
	year, _ := strconv.Atoi(date[:4])
	return &year
}

// suggestions renders the playlist names closest to the requested one.
func suggestions(name string, playlists []*playlist.Playlist) string {
	if len(playlists) == 0 {
		return ""
	}

	lowered := strings.ToLower(name)
	sort.SliceStable(playlists, func(i, j int) bool {
		return levenshtein.ComputeDistance(lowered, strings.ToLower(playlists[i].Name)) <
			levenshtein.ComputeDistance(lowered, strings.ToLower(playlists[j].Name))
	})

	closest := make([]string, 0, 3)
	for _, entry := range playlists {
		if len(closest) == 3 {
			break
		}
		closest = append(closest, entry.Name)
	}
	return ", did you mean: " + strings.Join(closest, ", ")
}
