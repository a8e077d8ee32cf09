// Package spotify wraps the Spotify Web API behind the handful of
// operations the tool needs: the OAuth authorization-code flow with a
// persistent token cache, playlist listing and track extraction.
package spotify

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sync"

	"github.com/adrg/xdg"
	jsoniter "github.com/json-iterator/go"
	"github.com/mlanaro/spotitheme/config"
	"github.com/mlanaro/spotitheme/util"
	browser "github.com/mlanaro/spotitheme/util/cmd"
	"github.com/thanhpk/randstr"
	api "github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2"
)

const tokenBasename = "spotitheme/token.json"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client wraps the Spotify Web API client.
type Client struct {
	*api.Client
}

// URLProcessor consumes the authorization URL of an OAuth flow.
type URLProcessor func(url string) error

// BrowserProcessor hands the authorization URL to the system browser.
var BrowserProcessor URLProcessor = browser.Open

// PrintProcessor prints the authorization URL for manual opening.
var PrintProcessor URLProcessor = func(url string) error {
	fmt.Println("open to authorize:", url)
	return nil
}

// Authenticate returns an authenticated client, reusing the cached
// token when one exists and walking the authorization-code flow through
// the given processor otherwise. Rotated tokens get persisted back to
// the cache, so the interactive flow runs once per revocation.
func Authenticate(processor URLProcessor) (*Client, error) {
	conf, err := config.Load()
	if err != nil {
		return nil, err
	}
	return authenticate(conf.Spotify, processor)
}

func authenticate(creds config.Spotify, processor URLProcessor) (*Client, error) {
	if creds.ID == "" || creds.Secret == "" {
		return nil, errors.New("spotify credentials not set (SPOTIFY_ID, SPOTIFY_SECRET or the config file)")
	}

	path, err := xdg.CacheFile(tokenBasename)
	if err != nil {
		return nil, err
	}

	authenticator := spotifyauth.New(
		spotifyauth.WithClientID(creds.ID),
		spotifyauth.WithClientSecret(creds.Secret),
		spotifyauth.WithRedirectURL(creds.RedirectURL),
		spotifyauth.WithScopes(
			spotifyauth.ScopePlaylistReadPrivate,
			spotifyauth.ScopePlaylistReadCollaborative,
		),
	)

	token, err := loadToken(path)
	if err != nil {
		if token, err = newToken(authenticator, creds.RedirectURL, processor); err != nil {
			return nil, err
		}
		util.ErrSuppress(saveToken(path, token))
	}

	source := (&oauth2.Config{
		ClientID:     creds.ID,
		ClientSecret: creds.Secret,
		RedirectURL:  creds.RedirectURL,
		Endpoint: oauth2.Endpoint{
			AuthURL:  spotifyauth.AuthURL,
			TokenURL: spotifyauth.TokenURL,
		},
	}).TokenSource(context.Background(), token)

	httpClient := oauth2.NewClient(context.Background(), &cachingSource{
		path:   path,
		source: source,
		last:   token.AccessToken,
	})
	return &Client{api.New(httpClient, api.WithRetry(true))}, nil
}

// newToken walks the authorization-code flow: a one-shot callback
// server on the redirect URL collects the code Spotify redirects to and
// trades it for a token.
func newToken(authenticator *spotifyauth.Authenticator, redirectURL string, processor URLProcessor) (*oauth2.Token, error) {
	callback, err := url.Parse(redirectURL)
	if err != nil {
		return nil, err
	}
	route := callback.Path
	if route == "" {
		route = "/"
	}

	var (
		state    = randstr.Hex(16)
		tokens   = make(chan *oauth2.Token, 1)
		failures = make(chan error, 1)
	)
	mux := http.NewServeMux()
	mux.HandleFunc(route, func(writer http.ResponseWriter, request *http.Request) {
		token, err := authenticator.Token(request.Context(), state, request)
		if err != nil {
			http.Error(writer, "authorization failed", http.StatusForbidden)
			failures <- err
			return
		}
		fmt.Fprintln(writer, "authorization complete, get back to the console")
		tokens <- token
	})

	listener, err := net.Listen("tcp", callback.Host)
	if err != nil {
		return nil, err
	}
	server := &http.Server{Handler: mux}
	defer server.Close()
	go func() {
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			failures <- err
		}
	}()

	if err := processor(authenticator.AuthURL(state)); err != nil {
		return nil, err
	}

	select {
	case token := <-tokens:
		return token, nil
	case err := <-failures:
		return nil, err
	}
}

func loadToken(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	token := new(oauth2.Token)
	if err := json.Unmarshal(data, token); err != nil {
		return nil, err
	}
	if token.RefreshToken == "" {
		return nil, errors.New("cached token misses a refresh token")
	}
	return token, nil
}

func saveToken(path string, token *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	data, err := json.Marshal(token)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// cachingSource persists rotated tokens so the next run skips the
// interactive flow even once the cached access token expired.
type cachingSource struct {
	mu     sync.Mutex
	path   string
	source oauth2.TokenSource
	last   string
}

func (source *cachingSource) Token() (*oauth2.Token, error) {
	source.mu.Lock()
	defer source.mu.Unlock()

	token, err := source.source.Token()
	if err != nil {
		return nil, err
	}
	if token.AccessToken != source.last {
		source.last = token.AccessToken
		util.ErrSuppress(saveToken(source.path, token))
	}
	return token, nil
}
