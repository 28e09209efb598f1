// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Defaults applied by MergeWithDefaults when neither file nor flags set a value.
const (
	DefaultPort     = 8080
	DefaultCacheTTL = 15 * time.Minute
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Inputs
	Resume         string   `json:"resume,omitempty"`          // Path to resume JSON (or document for parse-resume)
	Job            string   `json:"job,omitempty"`             // Path to job posting text file
	JobURL         string   `json:"job_url,omitempty"`         // URL to fetch job posting from
	RequiredSkills []string `json:"required_skills,omitempty"` // Explicit required skills for lexical matching

	// Generator
	APIKey string `json:"api_key,omitempty"` // Gemini API key

	// Server
	Port     int    `json:"port,omitempty"`      // HTTP listen port
	RedisURL string `json:"redis_url,omitempty"` // Redis URL or host:port for the L2 cache
	CacheTTL string `json:"cache_ttl,omitempty"` // Result cache TTL as a Go duration ("15m")

	// Behavior
	Verbose     bool `json:"verbose,omitempty"`      // Print detailed debug information
	CurrentYear int  `json:"current_year,omitempty"` // Year used for tenure arithmetic; 0 uses the clock
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}

	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.CurrentYear < 0 {
		return fmt.Errorf("config error: 'current_year' must be non-negative")
	}
	if c.CacheTTL != "" {
		ttl, err := time.ParseDuration(c.CacheTTL)
		if err != nil {
			return fmt.Errorf("config error: invalid 'cache_ttl': %w", err)
		}
		if ttl < 0 {
			return fmt.Errorf("config error: 'cache_ttl' must be non-negative")
		}
	}

	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}
	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if len(result.RequiredSkills) == 0 {
		result.RequiredSkills = defaults.RequiredSkills
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.RedisURL == "" {
		result.RedisURL = defaults.RedisURL
	}
	if result.CacheTTL == "" {
		result.CacheTTL = defaults.CacheTTL
	}

	if result.Port == 0 {
		if defaults.Port > 0 {
			result.Port = defaults.Port
		} else {
			result.Port = DefaultPort
		}
	}
	if result.CurrentYear == 0 {
		result.CurrentYear = defaults.CurrentYear
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// ApplyEnv fills unset secrets and endpoints from the environment:
// GEMINI_API_KEY, REDIS_URL (or REDIS_ADDR), PORT and CACHE_TTL.
func (c *Config) ApplyEnv() error {
	if c.APIKey == "" {
		c.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.RedisURL == "" {
		c.RedisURL = os.Getenv("REDIS_URL")
	}
	if c.RedisURL == "" {
		c.RedisURL = os.Getenv("REDIS_ADDR")
	}
	if c.CacheTTL == "" {
		c.CacheTTL = os.Getenv("CACHE_TTL")
	}
	if c.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return fmt.Errorf("invalid PORT: %v", err)
			}
			c.Port = port
		}
	}
	return nil
}

// TTL returns the parsed cache TTL, or DefaultCacheTTL when unset or invalid.
func (c *Config) TTL() time.Duration {
	if c.CacheTTL == "" {
		return DefaultCacheTTL
	}
	ttl, err := time.ParseDuration(c.CacheTTL)
	if err != nil || ttl <= 0 {
		return DefaultCacheTTL
	}
	return ttl
}
