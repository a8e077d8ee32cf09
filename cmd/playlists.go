package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func init() {
	cmdRoot.AddCommand(cmdPlaylists())
}

func cmdPlaylists() *cobra.Command {
	return &cobra.Command{
		Use:          "playlists",
		Short:        "List the account's playlists",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := authenticate(); err != nil {
				return err
			}

			playlists, err := spotifyClient.Playlists(cmd.Context())
			if err != nil {
				return err
			}
			if len(playlists) == 0 {
				fmt.Println("no playlists found")
				return nil
			}

			for at, entry := range playlists {
				color.New(color.Bold).Printf("%d. %s\n", at+1, entry.Name)
				fmt.Printf("   id: %s\n", entry.ID)
				fmt.Printf("   owner: %s\n", entry.Owner)
				fmt.Printf("   tracks: %d\n", entry.TrackTotal)
				fmt.Printf("   visibility: %s\n\n", entry.Visibility())
			}
			fmt.Printf("%d playlists\n", len(playlists))
			return nil
		},
	}
}
