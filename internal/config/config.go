// Package config resolves the client configuration from a .env file, an optional YAML file
// and IPSS_* environment variables, in that order of increasing precedence. Command-line
// flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/soaringjerry/ipss-selfcheck/internal/utils"
)

const (
	DefaultBasePath = "/ipss-self-check/"
	DefaultSiteURL  = "http://localhost:5173"
)

var (
	ErrEndpointRequired = errors.New("endpoint URL required (use --endpoint or IPSS_ENDPOINT)")
	ErrEndpointInvalid  = errors.New("endpoint must be an absolute http(s) URL")
)

// Config is the resolved client configuration.
type Config struct {
	Endpoint    string `yaml:"endpoint"`
	BasePath    string `yaml:"base_path"`
	SiteURL     string `yaml:"site_url"`
	PageURL     string `yaml:"page_url"`
	Locale      string `yaml:"locale"`
	JournalPath string `yaml:"journal_path"`
	LogLevel    string `yaml:"log_level"`
	LogFile     string `yaml:"log_file"`
}

// Load reads .env (if present), the YAML file at path (if non-empty) and the environment.
// It does not validate; call Validate once flags are applied.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	cfg := &Config{}
	if path == "" {
		path = utils.SafeEnv("IPSS_CONFIG", "")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	cfg.applyEnvOverrides()
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	c.Endpoint = utils.SafeEnv("IPSS_ENDPOINT", c.Endpoint)
	c.BasePath = utils.SafeEnv("IPSS_BASE_PATH", c.BasePath)
	c.SiteURL = utils.SafeEnv("IPSS_SITE_URL", c.SiteURL)
	c.PageURL = utils.SafeEnv("IPSS_PAGE_URL", c.PageURL)
	c.JournalPath = utils.SafeEnv("IPSS_JOURNAL", c.JournalPath)
	c.LogLevel = utils.SafeEnv("IPSS_LOG_LEVEL", c.LogLevel)
	c.LogFile = utils.SafeEnv("IPSS_LOG_FILE", c.LogFile)
	c.Locale = utils.DetermineLocale(
		utils.FirstEnv("IPSS_LOCALE"),
		strings.Join(nonEmpty(c.Locale, utils.FirstEnv("LC_ALL", "LC_MESSAGES", "LANG")), ","),
		utils.SupportedLocales, "en")
}

func (c *Config) applyDefaults() {
	if c.BasePath == "" {
		c.BasePath = DefaultBasePath
	}
	if c.SiteURL == "" {
		c.SiteURL = DefaultSiteURL
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// ResolvedPageURL returns PageURL, or SiteURL joined with BasePath when PageURL is unset.
func (c *Config) ResolvedPageURL() string {
	if c.PageURL != "" {
		return c.PageURL
	}
	return strings.TrimRight(c.SiteURL, "/") + "/" + strings.TrimLeft(c.BasePath, "/")
}

// Validate checks the fields a submission needs.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Endpoint) == "" {
		return ErrEndpointRequired
	}
	u, err := url.Parse(c.Endpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrEndpointInvalid, c.Endpoint)
	}
	return nil
}

func nonEmpty(vals ...string) []string {
	out := vals[:0:0]
	for _, v := range vals {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
