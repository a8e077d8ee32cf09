// Package config loads the tool's optional YAML configuration and
// resolves the default data directories. Resolution order for every
// field: environment variable, config file, built-in default.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const appName = "spotitheme"

type Config struct {
	Spotify Spotify `yaml:"spotify"`
	Paths   Paths   `yaml:"paths"`
}

// Spotify holds the application credentials of the Spotify Web API.
type Spotify struct {
	ID          string `yaml:"id"`
	Secret      string `yaml:"secret"`
	RedirectURL string `yaml:"redirectUrl"`
}

// Paths holds the directories playlist exports and theme synonym
// files live in.
type Paths struct {
	Data   string `yaml:"data"`
	Themes string `yaml:"themes"`
}

// Path returns the config file location, whether it exists or not.
func Path() string {
	return filepath.Join(xdg.ConfigHome, appName, appName+".yaml")
}

// Load reads the config file at the default location. A missing file is
// not an error: defaults and environment overrides still apply.
func Load() (*Config, error) {
	return LoadFile(Path())
}

func LoadFile(path string) (*Config, error) {
	config := new(Config)
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("cannot parse %s: %w", path, err)
		}
	}
	config.applyEnv()
	config.applyDefaults()
	return config, nil
}

func (config *Config) applyEnv() {
	overrideEnv(&config.Spotify.ID, "SPOTIFY_ID")
	overrideEnv(&config.Spotify.Secret, "SPOTIFY_SECRET")
	overrideEnv(&config.Spotify.RedirectURL, "SPOTIFY_REDIRECT_URL")
	overrideEnv(&config.Paths.Data, "SPOTITHEME_DATA")
	overrideEnv(&config.Paths.Themes, "SPOTITHEME_THEMES")
}

func (config *Config) applyDefaults() {
	if config.Spotify.RedirectURL == "" {
		config.Spotify.RedirectURL = "http://127.0.0.1:8080/callback"
	}
	if config.Paths.Data == "" {
		config.Paths.Data = filepath.Join(xdg.DataHome, appName, "playlists")
	}
	if config.Paths.Themes == "" {
		config.Paths.Themes = filepath.Join(xdg.ConfigHome, appName, "themes")
	}
}

func overrideEnv(value *string, key string) {
	if env := os.Getenv(key); env != "" {
		*value = env
	}
}
