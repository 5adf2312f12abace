package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config carries the endpoints and credentials for the external feeds.
// Values come from an optional YAML file, with environment variables
// taking precedence. A .env file in the working directory is honoured for
// the Google Maps API key.
type Config struct {
	Feed   FeedConfig   `yaml:"feed"`
	Maps   MapsConfig   `yaml:"maps"`
	Server ServerConfig `yaml:"server"`
}

type FeedConfig struct {
	Endpoint string   `yaml:"endpoint"`
	Agency   string   `yaml:"agency"`
	Timeout  Duration `yaml:"timeout"`
}

type MapsConfig struct {
	Endpoint string   `yaml:"endpoint"`
	APIKey   string   `yaml:"api_key"`
	Timeout  Duration `yaml:"timeout"`
}

// Duration lets timeouts be written as "15s" in the config file.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", value.Value, err)
	}

	*d = Duration(parsed)

	return nil
}

type ServerConfig struct {
	Listen string `yaml:"listen"`
}

func Defaults() Config {
	return Config{
		Feed: FeedConfig{
			Endpoint: "https://webservices.nextbus.com/service/publicXMLFeed",
			Agency:   "ttc",
			Timeout:  Duration(15 * time.Second),
		},
		Maps: MapsConfig{
			Endpoint: "https://maps.googleapis.com/maps/api/distancematrix/xml",
			Timeout:  Duration(15 * time.Second),
		},
		Server: ServerConfig{
			Listen: ":8080",
		},
	}
}

// Load reads the config file at path on top of the defaults. An empty
// path falls back to TTC_TRACKER_CONFIG, and to just the defaults when
// that is unset too.
func Load(path string) (*Config, error) {
	godotenv.Load()

	cfg := Defaults()

	if path == "" {
		path = os.Getenv("TTC_TRACKER_CONFIG")
	}

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open config file: %w", err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	cfg.applyEnvironment()

	return &cfg, nil
}

func (cfg *Config) applyEnvironment() {
	if endpoint := os.Getenv("TTC_TRACKER_FEED_ENDPOINT"); endpoint != "" {
		cfg.Feed.Endpoint = endpoint
	}
	if agency := os.Getenv("TTC_TRACKER_FEED_AGENCY"); agency != "" {
		cfg.Feed.Agency = agency
	}
	if endpoint := os.Getenv("TTC_TRACKER_MAPS_ENDPOINT"); endpoint != "" {
		cfg.Maps.Endpoint = endpoint
	}
	if key := os.Getenv("GOOGLE_MAPS_API_KEY"); key != "" {
		cfg.Maps.APIKey = key
	}
	if listen := os.Getenv("TTC_TRACKER_LISTEN"); listen != "" {
		cfg.Server.Listen = listen
	}
}
