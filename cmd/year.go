package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mlanaro/spotitheme/config"
	"github.com/mlanaro/spotitheme/theme"
	"github.com/mlanaro/spotitheme/util"
	"github.com/spf13/cobra"
)

func init() {
	cmdRoot.AddCommand(cmdYear())
}

func cmdYear() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "year <year>",
		Short:        "List exported tracks released in a given year",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid year %q", args[0])
			}

			conf, err := config.Load()
			if err != nil {
				return err
			}
			var (
				dataDir = util.ErrWrap("")(cmd.Flags().GetString("data"))
				sortKey = util.ErrWrap("name")(cmd.Flags().GetString("sort"))
				grouped = util.ErrWrap(false)(cmd.Flags().GetBool("by-playlist"))
			)
			if dataDir == "" {
				dataDir = conf.Paths.Data
			}

			corpus, report := theme.LoadCorpus(dataDir)
			for _, skipped := range report.Skipped {
				tui.AnchorPrintf("skipping %s: %s", skipped.Name, skipped.Reason)
			}
			if len(corpus) == 0 {
				return fmt.Errorf("no tracks under %s, run the export command first", dataDir)
			}

			filtered := theme.FilterByYear(corpus, year)
			if len(filtered) == 0 {
				tui.Printf("no tracks released in %d", year)
				return nil
			}

			entries := theme.Dedupe(filtered)
			sortEntries(entries, sortKey)
			tui.Printf("%d tracks released in %d, %d duplicates merged", len(entries), year, len(filtered)-len(entries))

			if grouped {
				printEntriesByPlaylist(entries)
				return nil
			}
			for at, entry := range entries {
				fmt.Printf("%d. %s\n", at+1, formatEntry(entry))
			}
			return nil
		},
	}
	cmd.Flags().StringP("data", "d", "", "Directory of exported playlist files")
	cmd.Flags().String("sort", "name", "Sort order: name, artist or album")
	cmd.Flags().Bool("by-playlist", false, "Group the listing by playlist")
	return cmd
}

func sortEntries(entries []theme.YearEntry, key string) {
	field := func(entry theme.YearEntry) string {
		switch key {
		case "artist":
			return entry.Track.Artist
		case "album":
			return entry.Track.Album
		default:
			return entry.Track.Name
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return strings.ToLower(field(entries[i])) < strings.ToLower(field(entries[j]))
	})
}

func formatEntry(entry theme.YearEntry) string {
	line := entry.Track.Label()
	if len(entry.Playlists) > 0 {
		line += fmt.Sprintf(" [%s]", strings.Join(entry.Playlists, ", "))
	}
	return line
}

func printEntriesByPlaylist(entries []theme.YearEntry) {
	var (
		names  []string
		groups = make(map[string][]theme.YearEntry)
	)
	for _, entry := range entries {
		for _, name := range entry.Playlists {
			if _, ok := groups[name]; !ok {
				names = append(names, name)
			}
			groups[name] = append(groups[name], entry)
		}
	}
	sort.Strings(names)

	for _, name := range names {
		color.New(color.Bold).Printf("%s\n", name)
		for _, entry := range groups[name] {
			fmt.Printf("  %s\n", entry.Track.Label())
		}
		fmt.Println()
	}
}
