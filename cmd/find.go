package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/gosimple/slug"
	"github.com/mlanaro/spotitheme/config"
	"github.com/mlanaro/spotitheme/export"
	"github.com/mlanaro/spotitheme/theme"
	"github.com/mlanaro/spotitheme/util"
	"github.com/spf13/cobra"
)

func init() {
	cmdRoot.AddCommand(cmdFind())
}

func cmdFind() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "find <theme>",
		Short:        "Find tracks matching a theme across exported playlists",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := config.Load()
			if err != nil {
				return err
			}

			var (
				themeName   = args[0]
				dataDir     = util.ErrWrap("")(cmd.Flags().GetString("data"))
				synonymPath = util.ErrWrap("")(cmd.Flags().GetString("synonyms"))
				minScore    = util.ErrWrap(1)(cmd.Flags().GetInt("min-score"))
				resultsPath = util.ErrWrap("")(cmd.Flags().GetString("export"))
				verbose     = util.ErrWrap(false)(cmd.Flags().GetBool("verbose"))
			)
			if dataDir == "" {
				dataDir = conf.Paths.Data
			}
			if synonymPath == "" {
				synonymPath = filepath.Join(conf.Paths.Themes, slug.Make(themeName)+".json")
			}

			keywords := theme.Keywords(themeName)
			synonyms, err := theme.LoadSynonymMap(synonymPath)
			if err != nil {
				if !errors.Is(err, fs.ErrNotExist) {
					tui.AnchorPrintf("unusable synonym map: %s", err)
				}
				synonyms = nil
			}

			tui.Printf("theme: %s", themeName)
			tui.Printf("keywords: %s", strings.Join(keywords, ", "))
			if len(synonyms) > 0 {
				tui.Printf("expanded: %s", strings.Join(theme.Expand(keywords, synonyms).Sorted(), ", "))
			}

			corpus, report := theme.LoadCorpus(dataDir)
			for _, skipped := range report.Skipped {
				tui.AnchorPrintf("skipping %s: %s", skipped.Name, skipped.Reason)
			}
			if len(corpus) == 0 {
				return fmt.Errorf("no tracks under %s, run the export command first", dataDir)
			}
			tui.Printf("%d tracks from %d playlist files", len(corpus), report.Loaded)

			results := theme.Rank(corpus, keywords, synonyms, minScore)
			playlists := map[string]struct{}{}
			for _, result := range results {
				playlists[result.Track.Playlist] = struct{}{}
			}
			tui.Printf("%d tracks matched across %d playlists", len(results), len(playlists))

			if resultsPath != "" {
				if err := export.Results(results, resultsPath); err != nil {
					return err
				}
				tui.Printf("results written to %s", resultsPath)
				return nil
			}

			printResults(results, verbose)
			return nil
		},
	}
	cmd.Flags().StringP("data", "d", "", "Directory of exported playlist files")
	cmd.Flags().StringP("synonyms", "s", "", "Synonym map file (defaults to <themes>/<theme>.json)")
	cmd.Flags().Int("min-score", 1, "Minimum score for a track to show up")
	cmd.Flags().StringP("export", "e", "", "Write results to a JSON file instead of printing them")
	cmd.Flags().BoolP("verbose", "v", false, "Show per-field match evidence")
	return cmd
}

func printResults(results []theme.RankedResult, verbose bool) {
	if len(results) == 0 {
		fmt.Println("no matching tracks")
		return
	}

	color.New(color.Bold).Printf("%-6s %-50s %-40s %-30s\n", "Score", "Track", "Artist", "Playlist")
	fmt.Println(strings.Repeat("-", 128))
	for _, result := range results {
		fmt.Printf("%-6d %-50s %-40s %-30s\n",
			result.Details.Score,
			util.Truncate(result.Track.Name, 49),
			util.Truncate(result.Track.Artist, 39),
			util.Truncate(result.Track.Playlist, 29),
		)
		if verbose {
			fmt.Printf("       matches: %s\n", matchSummary(result.Details))
		}
	}
}

// matchSummary renders the per-field match evidence, starring the terms
// that scored as full words.
func matchSummary(details theme.MatchDetails) string {
	fullWords := theme.NewTermSet(details.FullWordMatches...)
	var parts []string
	for _, field := range []string{theme.FieldName, theme.FieldArtist, theme.FieldAlbum} {
		terms, ok := details.Locations[field]
		if !ok {
			continue
		}
		starred := make([]string, 0, len(terms))
		for _, term := range terms {
			if _, full := fullWords[term]; full {
				term += "*"
			}
			starred = append(starred, term)
		}
		parts = append(parts, fmt.Sprintf("%s(%s)", field, strings.Join(starred, ", ")))
	}
	return strings.Join(parts, " ")
}
