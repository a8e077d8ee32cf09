package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/fatih/color"
	"github.com/mlanaro/spotitheme/spotify"
	"github.com/mlanaro/spotitheme/util"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func init() {
	cmdRoot.AddCommand(cmdAuth())
}

func cmdAuth() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "auth",
		Short:        "Authenticate against Spotify and show account details",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PreRun: func(cmd *cobra.Command, _ []string) {
			if headless() {
				cmd.LocalFlags().VisitAll(func(f *pflag.Flag) {
					if f.Name == "print-url" {
						util.ErrSuppress(f.Value.Set("true"))
					}
				})
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			processor := spotify.BrowserProcessor
			if util.ErrWrap(false)(cmd.Flags().GetBool("print-url")) {
				processor = spotify.PrintProcessor
			}

			client, err := spotify.Authenticate(processor)
			if err != nil {
				return err
			}
			spotifyClient = client

			account, err := spotifyClient.Account(cmd.Context())
			if err != nil {
				return err
			}
			total, err := spotifyClient.PlaylistTotal(cmd.Context())
			if err != nil {
				return err
			}

			color.New(color.Bold).Printf("%s\n", account.DisplayName)
			fmt.Printf("id: %s\n", account.ID)
			if account.Email != "" {
				fmt.Printf("email: %s\n", account.Email)
			}
			if account.Country != "" {
				fmt.Printf("country: %s\n", account.Country)
			}
			fmt.Printf("followers: %d\n", account.Followers.Count)
			fmt.Printf("playlists: %d\n", total)
			return nil
		},
	}
	cmd.Flags().Bool("print-url", false, "Print the authorization URL instead of opening a browser (auto-enabled on headless sessions)")
	return cmd
}

// headless reports whether no graphical session is around
// to field a browser window.
func headless() bool {
	if os.Getenv("SSH_CONNECTION") != "" {
		return true
	}
	return runtime.GOOS == "linux" &&
		os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == ""
}
