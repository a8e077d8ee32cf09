package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/arunsworld/nursery"
	"github.com/mlanaro/spotitheme/config"
	"github.com/mlanaro/spotitheme/entity/playlist"
	"github.com/mlanaro/spotitheme/export"
	"github.com/mlanaro/spotitheme/util"
	"github.com/spf13/cobra"
)

func init() {
	cmdRoot.AddCommand(cmdExport())
}

func cmdExport() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "export",
		Short:        "Export the account's playlists to JSON files",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := config.Load()
			if err != nil {
				return err
			}

			var (
				output = util.ErrWrap("")(cmd.Flags().GetString("output"))
				limit  = util.ErrWrap(0)(cmd.Flags().GetInt("limit"))
				force  = util.ErrWrap(false)(cmd.Flags().GetBool("force"))
			)
			if output == "" {
				output = conf.Paths.Data
			}

			if err := authenticate(); err != nil {
				return err
			}

			playlists, err := spotifyClient.Playlists(cmd.Context())
			if err != nil {
				return err
			}
			if limit > 0 && len(playlists) > limit {
				playlists = playlists[:limit]
			}
			tui.Printf("%d playlists to export", len(playlists))

			var (
				queue             = make(chan *playlist.Playlist, 10)
				exported, skipped int
			)
			if err := nursery.RunConcurrently(
				routineFetch(cmd.Context(), playlists, output, force, &skipped, queue),
				routineWrite(output, force, &exported, queue),
			); err != nil {
				return err
			}

			tui.Printf("%d playlists exported to %s, %d skipped", exported, output, skipped)
			return nil
		},
	}
	cmd.Flags().StringP("output", "o", "", "Output directory for playlist files")
	cmd.Flags().IntP("limit", "l", 0, "Number of playlists to export (unlimited if 0)")
	cmd.Flags().BoolP("force", "f", false, "Export playlists already on disk to numbered copies")
	return cmd
}

// fetcher pulls each playlist's tracks from Spotify and hands the
// filled playlist over to the writer
func routineFetch(ctx context.Context, playlists []*playlist.Playlist, output string, force bool, skipped *int, queue chan *playlist.Playlist) func(context.Context, chan error) {
	return func(_ context.Context, ch chan error) {
		// remember to stop the writer
		defer close(queue)

		for _, entry := range playlists {
			if !force && export.Exists(output, entry.Name) {
				tui.Printf("skip %s, already exported", entry.Name)
				*skipped++
				continue
			}

			tui.Lot("fetch").Printf("%s", entry.Name)
			tracks, err := spotifyClient.Tracks(ctx, entry.ID)
			if err != nil {
				ch <- err
				return
			}
			entry.Tracks = tracks
			queue <- entry
		}
		tui.Lot("fetch").Close()
	}
}

// writer drains fetched playlists to their JSON files
func routineWrite(output string, force bool, exported *int, queue chan *playlist.Playlist) func(context.Context, chan error) {
	return func(_ context.Context, ch chan error) {
		var failure error
		for entry := range queue {
			if failure != nil {
				continue
			}
			path, err := export.Playlist(entry, output, force)
			if err != nil {
				failure = err
				continue
			}
			tui.Lot("write").Printf("%s, %d tracks", filepath.Base(path), len(entry.Tracks))
			*exported++
		}
		tui.Lot("write").Close(fmt.Sprintf("%d playlists", *exported))
		if failure != nil {
			ch <- failure
		}
	}
}
