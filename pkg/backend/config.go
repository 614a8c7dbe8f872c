// Package backend wraps the hosted collaborators MindScribe delegates to:
// the auth provider (sessions, sign-in/up/out) and the entry table API.
package backend

import (
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config carries collaborator endpoints and credentials. Values come from a
// .mindscribe config file or MINDSCRIBE_* environment variables.
type Config struct {
	BackendURL string // base URL of the auth + table API
	AnonKey    string // public API key sent with every request
	APIKey     string // generative model credential
	Model      string
	CachePath  string // local session cache location
}

func LoadConfig() (*Config, error) {
	viper.SetDefault("backend_url", "http://localhost:54321")
	viper.SetDefault("model", "gemini-2.5-flash")
	viper.SetDefault("cache_path", "~/.mindscribe.db")
	viper.SetConfigName(".mindscribe") // .yaml is implicit
	viper.SetEnvPrefix("MINDSCRIBE")
	viper.AutomaticEnv()

	if override := os.Getenv("MINDSCRIBE_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("backend: error reading config file: %v", err)
			return nil, err
		}
	}

	cachePath, err := homedir.Expand(viper.GetString("cache_path"))
	if err != nil {
		return nil, err
	}

	apiKey := viper.GetString("api_key")
	if apiKey == "" {
		// the hosted model credential is conventionally provided bare
		apiKey = os.Getenv("API_KEY")
	}

	return &Config{
		BackendURL: viper.GetString("backend_url"),
		AnonKey:    viper.GetString("anon_key"),
		APIKey:     apiKey,
		Model:      viper.GetString("model"),
		CachePath:  cachePath,
	}, nil
}
