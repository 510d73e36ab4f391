package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv = "INTELFEED_CONFIG"
	addrEnv       = "INTELFEED_ADDR"
	logLevelEnv   = "INTELFEED_LOG_LEVEL"
	userAgentEnv  = "INTELFEED_USER_AGENT"
)

// Config holds high-level settings required across the application.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Fetch   FetchConfig   `yaml:"fetch"`
	Sources SourcesConfig `yaml:"sources"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig describes the HTTP boundary.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// FetchConfig bounds every outbound request.
type FetchConfig struct {
	TimeoutSeconds    int     `yaml:"timeoutSeconds"`
	UserAgent         string  `yaml:"userAgent"`
	RequestsPerSecond float64 `yaml:"requestsPerSecond"`
}

// SourcesConfig lists the upstream pages and feeds each pipeline consumes.
type SourcesConfig struct {
	NIS2PageURL   string `yaml:"nis2PageUrl"`
	ThreatFeedURL string `yaml:"threatFeedUrl"`
	FeedIndexURL  string `yaml:"feedIndexUrl"`
	CVEFeedURL    string `yaml:"cveFeedUrl"`
	EPSSPageURL   string `yaml:"epssPageUrl"`
}

// LoggingConfig selects the console log level.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads YAML configuration (if present) and applies environment
// overrides. An empty path falls back to the INTELFEED_CONFIG variable.
func Load(path string) Config {
	cfg := defaultConfig()

	if path == "" {
		path = os.Getenv(configPathEnv)
	}
	if path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(addrEnv); v != "" {
		c.Server.Addr = v
	}

	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}

	if v := os.Getenv(userAgentEnv); v != "" {
		c.Fetch.UserAgent = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Server.Addr != "" {
		base.Server.Addr = override.Server.Addr
	}

	if override.Fetch.TimeoutSeconds > 0 {
		base.Fetch.TimeoutSeconds = override.Fetch.TimeoutSeconds
	}
	if override.Fetch.UserAgent != "" {
		base.Fetch.UserAgent = override.Fetch.UserAgent
	}
	if override.Fetch.RequestsPerSecond > 0 {
		base.Fetch.RequestsPerSecond = override.Fetch.RequestsPerSecond
	}

	if override.Sources.NIS2PageURL != "" {
		base.Sources.NIS2PageURL = override.Sources.NIS2PageURL
	}
	if override.Sources.ThreatFeedURL != "" {
		base.Sources.ThreatFeedURL = override.Sources.ThreatFeedURL
	}
	if override.Sources.FeedIndexURL != "" {
		base.Sources.FeedIndexURL = override.Sources.FeedIndexURL
	}
	if override.Sources.CVEFeedURL != "" {
		base.Sources.CVEFeedURL = override.Sources.CVEFeedURL
	}
	if override.Sources.EPSSPageURL != "" {
		base.Sources.EPSSPageURL = override.Sources.EPSSPageURL
	}

	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Server: ServerConfig{Addr: ":8080"},
		Fetch: FetchConfig{
			TimeoutSeconds: 10,
			UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
				"(KHTML, like Gecko) Chrome/124.0 Safari/537.36",
			RequestsPerSecond: 4,
		},
		Sources: SourcesConfig{
			NIS2PageURL:   "https://www.acn.gov.it/portale/nis",
			ThreatFeedURL: "https://www.csirt.gov.it/feed/rss",
			FeedIndexURL:  "https://www.acn.gov.it/portale/feed",
			CVEFeedURL:    "https://cvefeed.io/rssfeed/severity/high.xml",
			EPSSPageURL:   "https://cvefeed.io/epss",
		},
		Logging: LoggingConfig{Level: "info"},
	}
}
