// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config represents the CLI configuration. All fields are optional; missing
// values use defaults or come from environment variables.
type Config struct {
	// Paths
	CatalogDir string `json:"catalog_dir,omitempty"` // Directory holding catalog JSON files
	SchemaDir  string `json:"schema_dir,omitempty"`  // Directory holding catalog JSON schemas

	// External services
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL catalog store URL

	// Behavior
	TopSectors       int  `json:"top_sectors,omitempty"`         // Sector top-K (default 2)
	InterCallDelayMS int  `json:"inter_call_delay_ms,omitempty"` // Pause between batch AI calls
	Verbose          bool `json:"verbose,omitempty"`             // Print detailed summaries
}

// Environment variable names recognized by FromEnv.
const (
	envAPIKey      = "GEMINI_API_KEY"
	envDatabaseURL = "DATABASE_URL"
	envCatalogDir  = "CATALOG_DIR"
	envSchemaDir   = "SCHEMA_DIR"
	envDelayMS     = "AI_CALL_DELAY_MS"
)

// Load reads configuration from a JSON file.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

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

// FromEnv fills unset fields from environment variables. File values win over
// the environment so a checked-in config stays authoritative.
func (c *Config) FromEnv() {
	if c.APIKey == "" {
		c.APIKey = os.Getenv(envAPIKey)
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv(envDatabaseURL)
	}
	if c.CatalogDir == "" {
		c.CatalogDir = os.Getenv(envCatalogDir)
	}
	if c.SchemaDir == "" {
		c.SchemaDir = os.Getenv(envSchemaDir)
	}
	if c.InterCallDelayMS == 0 {
		if raw := os.Getenv(envDelayMS); raw != "" {
			if value, err := strconv.Atoi(raw); err == nil {
				c.InterCallDelayMS = value
			}
		}
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.TopSectors < 0 {
		return fmt.Errorf("config error: 'top_sectors' must be non-negative")
	}
	if c.InterCallDelayMS < 0 {
		return fmt.Errorf("config error: 'inter_call_delay_ms' must be non-negative")
	}
	if c.CatalogDir != "" && c.DatabaseURL != "" {
		return fmt.Errorf("config error: 'catalog_dir' and 'database_url' are mutually exclusive")
	}
	return nil
}
