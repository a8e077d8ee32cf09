package theme

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/mlanaro/spotitheme/entity"
	"github.com/mlanaro/spotitheme/util"
)

var (
	errNotTrackList = errors.New("top-level value is not a track list")
	errNullTrack    = errors.New("null track entry")
)

// SkippedFile records a playlist file the loader could not use and why.
type SkippedFile struct {
	Name   string
	Reason error
}

// LoadReport summarizes one corpus load.
type LoadReport struct {
	Files   int
	Loaded  int
	Skipped []SkippedFile
}

// LoadCorpus flattens every .json file directly inside dir into a single
// track corpus, tagging each track with the playlist it came from (the
// file name without extension). A file that cannot be read or decoded as
// a track list is skipped and reported without failing the whole load; a
// missing or unreadable directory yields an empty corpus.
func LoadCorpus(dir string) ([]*entity.Track, LoadReport) {
	var (
		corpus []*entity.Track
		report LoadReport
	)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return corpus, report
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		report.Files++

		tracks, err := loadPlaylistFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			report.Skipped = append(report.Skipped, SkippedFile{Name: entry.Name(), Reason: err})
			continue
		}

		tag := util.FileBaseStem(entry.Name())
		for _, track := range tracks {
			track.Playlist = tag
		}
		corpus = append(corpus, tracks...)
		report.Loaded++
	}
	return corpus, report
}

func loadPlaylistFile(path string) ([]*entity.Track, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var tracks []*entity.Track
	if err := json.Unmarshal(data, &tracks); err != nil {
		return nil, err
	}
	// a JSON null decodes into a nil slice without error
	if tracks == nil {
		return nil, errNotTrackList
	}
	for _, track := range tracks {
		if track == nil {
			return nil, errNullTrack
		}
	}
	return tracks, nil
}
