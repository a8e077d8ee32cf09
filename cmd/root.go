package cmd

import (
	"fmt"
	"os"

	"github.com/mlanaro/spotitheme/spotify"
	"github.com/mlanaro/spotitheme/util/anchor"
	"github.com/spf13/cobra"
)

var (
	spotifyClient *spotify.Client
	cmdRoot       = &cobra.Command{
		Use:   "spotitheme",
		Short: "Find theme-matching tracks across exported Spotify playlists",
	}
	tui = anchor.New(anchor.Cyan)
)

func Execute() {
	if err := cmdRoot.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// authenticate fills the shared Spotify client, walking the OAuth flow
// at most once per run.
func authenticate() error {
	if spotifyClient != nil {
		return nil
	}

	tui.Lot("auth").Printf("authenticating")
	client, err := spotify.Authenticate(spotify.BrowserProcessor)
	if err != nil {
		return err
	}
	spotifyClient = client
	tui.Lot("auth").Close()
	return nil
}
