package spotify

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/agiledragon/gomonkey/v2"
	"github.com/mlanaro/spotitheme/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func testToken() *oauth2.Token {
	return &oauth2.Token{
		AccessToken:  "access",
		TokenType:    "Bearer",
		RefreshToken: "refresh",
		Expiry:       time.Now().Add(time.Hour).Round(time.Second),
	}
}

func TestTokenRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache", "token.json")
	require.NoError(t, saveToken(path, testToken()))

	token, err := loadToken(path)
	require.NoError(t, err)
	assert.Equal(t, "access", token.AccessToken)
	assert.Equal(t, "refresh", token.RefreshToken)
	assert.True(t, token.Valid())
}

func TestLoadTokenMissingRefresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"access_token": "access"}`), 0o600))

	_, err := loadToken(path)
	assert.Error(t, err)
}

func TestLoadTokenMissingFile(t *testing.T) {
	_, err := loadToken(filepath.Join(t.TempDir(), "token.json"))
	assert.Error(t, err)
}

func TestCachingSource(t *testing.T) {
	var (
		path    = filepath.Join(t.TempDir(), "token.json")
		rotated = testToken()
	)
	rotated.AccessToken = "rotated"

	source := &cachingSource{
		path:   path,
		source: oauth2.StaticTokenSource(rotated),
		last:   "access",
	}
	token, err := source.Token()
	require.NoError(t, err)
	assert.Equal(t, "rotated", token.AccessToken)

	persisted, err := loadToken(path)
	require.NoError(t, err)
	assert.Equal(t, "rotated", persisted.AccessToken)
}

func TestAuthenticateCachedToken(t *testing.T) {
	dir := t.TempDir()
	patches := gomonkey.ApplyFunc(xdg.CacheFile, func(relative string) (string, error) {
		return filepath.Join(dir, relative), nil
	})
	defer patches.Reset()

	require.NoError(t, saveToken(filepath.Join(dir, tokenBasename), testToken()))

	client, err := authenticate(config.Spotify{
		ID:          "client-id",
		Secret:      "client-secret",
		RedirectURL: "http://127.0.0.1:8080/callback",
	}, func(string) error {
		t.Fatal("interactive flow must not run with a cached token")
		return nil
	})
	require.NoError(t, err)
	assert.NotNil(t, client.Client)
}

func TestAuthenticateWithoutCredentials(t *testing.T) {
	_, err := authenticate(config.Spotify{}, nil)
	assert.ErrorContains(t, err, "credentials")
}
