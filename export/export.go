// Package export writes playlists and theme search results to the flat
// JSON files the matching engine loads back as its corpus.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/mlanaro/spotitheme/entity"
	"github.com/mlanaro/spotitheme/entity/playlist"
	"github.com/mlanaro/spotitheme/theme"
	"github.com/mlanaro/spotitheme/util"
)

// ErrExists reports that a playlist already has an export file.
var ErrExists = errors.New("export file already exists")

const fileExtension = ".json"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Filename returns the sanitized file name (with extension) a playlist
// of the given name exports to.
func Filename(name string) string {
	sanitized := util.LegalizeFilename(name)
	if sanitized == "" {
		sanitized = "playlist"
	}
	return sanitized + fileExtension
}

// Path returns the file a playlist of the given name exports to.
func Path(dir, name string) string {
	return filepath.Join(dir, Filename(name))
}

// Exists reports whether the playlist already has an export file.
func Exists(dir, name string) bool {
	_, err := os.Stat(Path(dir, name))
	return err == nil
}

// Playlist writes the playlist's tracks as an indented JSON array under
// dir, creating the directory as needed, and returns the written path.
// An existing file is never overwritten: without force it is reported
// via ErrExists, with force a numbered "_1", "_2", ... suffix dodges the
// collision.
func Playlist(entry *playlist.Playlist, dir string, force bool) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	path := Path(dir, entry.Name)
	if _, err := os.Stat(path); err == nil {
		if !force {
			return "", fmt.Errorf("%s: %w", path, ErrExists)
		}
		path = collisionPath(dir, entry.Name)
	}

	tracks := entry.Tracks
	if tracks == nil {
		tracks = []*entity.Track{}
	}
	if err := writeJSON(path, tracks); err != nil {
		return "", err
	}
	return path, nil
}

// Results writes ranked theme matches to path, each record carrying the
// track and the evidence that scored it.
func Results(results []theme.RankedResult, path string) error {
	records := make([]resultRecord, 0, len(results))
	for _, result := range results {
		records = append(records, resultRecord{
			Track:           result.Track,
			Score:           result.Details.Score,
			MatchedKeywords: result.Details.Matches,
			MatchLocations:  result.Details.Locations,
			FullWordMatches: result.Details.FullWordMatches,
		})
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return writeJSON(path, records)
}

type resultRecord struct {
	Track           *entity.Track       `json:"track"`
	Score           int                 `json:"score"`
	MatchedKeywords []string            `json:"matched_keywords"`
	MatchLocations  map[string][]string `json:"match_locations"`
	FullWordMatches []string            `json:"full_word_matches"`
}

func collisionPath(dir, name string) string {
	stem := strings.TrimSuffix(Filename(name), fileExtension)
	for counter := 1; ; counter++ {
		path := filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, counter, fileExtension))
		if _, err := os.Stat(path); err != nil {
			return path
		}
	}
}

func writeJSON(path string, value interface{}) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(value)
}
