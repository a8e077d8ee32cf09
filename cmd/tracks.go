package cmd

import (
	"fmt"
	"unicode"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func init() {
	cmdRoot.AddCommand(cmdTracks())
}

func cmdTracks() *cobra.Command {
	return &cobra.Command{
		Use:          "tracks <playlist>",
		Short:        "List a playlist's tracks, by name or ID",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := authenticate(); err != nil {
				return err
			}

			id := args[0]
			if !looksLikeID(id) {
				meta, err := spotifyClient.PlaylistByName(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				id = meta.ID
			}
			entry, err := spotifyClient.PlaylistByID(cmd.Context(), id)
			if err != nil {
				return err
			}

			color.New(color.Bold).Printf("%s\n", entry.Name)
			fmt.Printf("id: %s, owner: %s, %d tracks\n\n", entry.ID, entry.Owner, len(entry.Tracks))
			for at, track := range entry.Tracks {
				line := fmt.Sprintf("%d. %s", at+1, track.Label())
				if year, ok := track.Year(); ok {
					line += fmt.Sprintf(" (%d)", year)
				}
				fmt.Println(line)
			}
			return nil
		},
	}
}

// looksLikeID tells a 22-character base62 Spotify ID apart from a
// playlist name.
func looksLikeID(value string) bool {
	if len(value) != 22 {
		return false
	}
	for _, r := range value {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '_' {
			return false
		}
	}
	return true
}
