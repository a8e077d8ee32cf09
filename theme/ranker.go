package theme

import (
	"context"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/arunsworld/nursery"
	"github.com/mlanaro/spotitheme/entity"
	"github.com/mlanaro/spotitheme/util"
)

// RankedResult pairs a track with the evidence that scored it.
type RankedResult struct {
	Track   *entity.Track
	Details MatchDetails
}

// Rank scores every corpus track against the keywords expanded through
// the synonym map and returns those scoring at least minScore, ordered
// by descending score, then case-insensitive name, then corpus position.
// Scoring fans out over a worker per available CPU; the result order
// does not depend on scheduling.
func Rank(tracks []*entity.Track, keywords []string, synonyms SynonymMap, minScore int) []RankedResult {
	type position struct {
		RankedResult
		at int
	}

	var (
		terms   = Expand(keywords, synonyms)
		weights = DefaultWeights()
		feed    = make(chan int, len(tracks))
		mutex   sync.Mutex
		scored  []position
	)

	for at := range tracks {
		feed <- at
	}
	close(feed)

	util.ErrSuppress(nursery.RunMultipleCopiesConcurrently(runtime.GOMAXPROCS(0),
		func(_ context.Context, _ chan error) {
			for at := range feed {
				track := tracks[at]
				score, details := Score(track, terms, weights)
				if score < minScore {
					continue
				}
				mutex.Lock()
				scored = append(scored, position{RankedResult{Track: track, Details: details}, at})
				mutex.Unlock()
			}
		}))

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Details.Score != scored[j].Details.Score {
			return scored[i].Details.Score > scored[j].Details.Score
		}
		left, right := strings.ToLower(scored[i].Track.Name), strings.ToLower(scored[j].Track.Name)
		if left != right {
			return left < right
		}
		return scored[i].at < scored[j].at
	})

	results := make([]RankedResult, len(scored))
	for at, result := range scored {
		results[at] = result.RankedResult
	}
	return results
}
