// Package config contains the apitour configuration file.
package config

import (
	"encoding/json"
	"net/url"
	"os"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/tailscale/hujson"
)

const (
	// ConfigVersion is the current version of the config file.
	ConfigVersion = 1

	// DefaultTimeoutSeconds is the default bound on every request.
	DefaultTimeoutSeconds = 10

	// DefaultOMDbAPIKey is the public demo key of the OMDb API.
	DefaultOMDbAPIKey = "9b1a9ef3"

	// OMDbAPIKeyEnv is the environment variable overriding the OMDb key.
	OMDbAPIKeyEnv = "APITOUR_OMDB_API_KEY"
)

// ReadConfig reads the configuration from the path
func ReadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	c, err := ParseConfig(b)
	if err != nil {
		return nil, errors.Wrap(err, "parsing config")
	}
	c.path = path
	return c, nil
}

// ParseConfig returns config from JSON bytes. Comments and trailing
// commas are accepted.
func ParseConfig(b []byte) (*Config, error) {
	var c Config

	std, err := hujson.Standardize(b)
	if err != nil {
		return nil, errors.Wrap(err, "parsing json")
	}
	if err := json.Unmarshal(std, &c); err != nil {
		return nil, errors.Wrap(err, "parsing json")
	}

	if err := c.Default(); err != nil {
		return nil, errors.Wrap(err, "defaulting")
	}

	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, "validating")
	}

	return &c, nil
}

// Network contains the HTTP settings.
type Network struct {
	TimeoutSeconds int64  `json:"timeout_seconds"`
	UserAgent      string `json:"user_agent"`
}

// Endpoints contains OPTIONAL overrides for the API base URLs. An
// empty value selects the public endpoint.
type Endpoints struct {
	Geocoding   string `json:"geocoding"`
	AirQuality  string `json:"air_quality"`
	Weather     string `json:"weather"`
	Tickers     string `json:"tickers"`
	Movies      string `json:"movies"`
	Placeholder string `json:"placeholder"`
}

// Movies contains the OMDb settings.
type Movies struct {
	APIKey string `json:"omdb_api_key"`
}

// Snapshots contains the snapshot settings.
type Snapshots struct {
	Enabled bool   `json:"enabled"`
	Dir     string `json:"dir"`
}

// Config is the apitour configuration.
type Config struct {
	// Private settings
	Comment string `json:"_"`
	Version int64  `json:"_version"`

	Network   Network   `json:"network"`
	Endpoints Endpoints `json:"endpoints"`
	Movies    Movies    `json:"movies"`
	Snapshots Snapshots `json:"snapshots"`

	mutex sync.Mutex
	path  string
}

// Path returns the path the config was read from.
func (c *Config) Path() string {
	return c.path
}

// Write the config file in json to the path
func (c *Config) Write() error {
	c.Lock()
	defer c.Unlock()
	if c.path == "" {
		return errors.New("config file path is empty")
	}
	configJSON, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshalling config JSON")
	}
	if err := os.WriteFile(c.path, configJSON, 0644); err != nil {
		return errors.Wrap(err, "writing config JSON")
	}
	return nil
}

// Lock acquires the write mutex
func (c *Config) Lock() {
	c.mutex.Lock()
}

// Unlock releases the write mutex
func (c *Config) Unlock() {
	c.mutex.Unlock()
}

// Default config settings
func (c *Config) Default() error {
	if c.Version == 0 {
		c.Version = ConfigVersion
	}
	if c.Network.TimeoutSeconds == 0 {
		c.Network.TimeoutSeconds = DefaultTimeoutSeconds
	}
	if c.Movies.APIKey == "" {
		c.Movies.APIKey = DefaultOMDbAPIKey
	}
	return nil
}

// Validate the config file
func (c *Config) Validate() error {
	if c.Version > ConfigVersion {
		return errors.Errorf("unsupported config version %d", c.Version)
	}
	if c.Network.TimeoutSeconds < 0 || c.Network.TimeoutSeconds > 300 {
		return errors.Errorf("timeout_seconds out of range: %d", c.Network.TimeoutSeconds)
	}
	for _, value := range []string{
		c.Endpoints.Geocoding,
		c.Endpoints.AirQuality,
		c.Endpoints.Weather,
		c.Endpoints.Tickers,
		c.Endpoints.Movies,
		c.Endpoints.Placeholder,
	} {
		if value == "" {
			continue
		}
		URL, err := url.Parse(value)
		if err != nil || !URL.IsAbs() {
			return errors.Errorf("invalid endpoint URL: %q", value)
		}
	}
	return nil
}

// Timeout returns the request timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Network.TimeoutSeconds) * time.Second
}

// OMDbAPIKey returns the OMDb key, preferring the environment.
func (c *Config) OMDbAPIKey() string {
	return c.omdbAPIKey(os.Getenv)
}

func (c *Config) omdbAPIKey(getenv func(string) string) string {
	if value := getenv(OMDbAPIKeyEnv); value != "" {
		return value
	}
	return c.Movies.APIKey
}
