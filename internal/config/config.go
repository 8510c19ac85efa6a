package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ToolsConfig names the external commands the operations shell out to.
type ToolsConfig struct {
	// Archiver creates tarballs: <archiver> -cf <archive> -- <paths...>
	Archiver string `yaml:"archiver"`

	// Checksum prints a digest line for one file: <checksum> <path>
	Checksum string `yaml:"checksum"`

	// Lister prints the long directory listing shown at the end of the wizard
	Lister string `yaml:"lister"`
}

// Config represents the dataset tool settings
type Config struct {
	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// LogDir enables a per-run log file in this directory (empty = console only)
	LogDir string `yaml:"log_dir"`

	// Strict makes a run fail when any selected dataset is missing files or fails
	Strict bool `yaml:"strict"`

	// WorkdirPrefix prefixes the dated working directory created by the wizard
	WorkdirPrefix string `yaml:"workdir_prefix"`

	// Tools holds the external command names
	Tools ToolsConfig `yaml:"tools"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		LogLevel:      "info",
		LogDir:        "",
		Strict:        false,
		WorkdirPrefix: "bh",
		Tools: ToolsConfig{
			Archiver: "tar",
			Checksum: "md5sum",
			Lister:   "ls",
		},
	}
}

// LoadConfig loads settings from the specified file path.
// If the file doesn't exist, returns default configuration without error.
// If the file exists but is malformed, returns an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	// Keys absent from the file keep their default values
	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", err)
	}

	if fileCfg.LogLevel != "" {
		cfg.LogLevel = strings.ToLower(fileCfg.LogLevel)
	}
	if fileCfg.LogDir != "" {
		cfg.LogDir = fileCfg.LogDir
	}
	if fileCfg.Strict {
		cfg.Strict = true
	}
	if fileCfg.WorkdirPrefix != "" {
		cfg.WorkdirPrefix = fileCfg.WorkdirPrefix
	}
	if fileCfg.Tools.Archiver != "" {
		cfg.Tools.Archiver = fileCfg.Tools.Archiver
	}
	if fileCfg.Tools.Checksum != "" {
		cfg.Tools.Checksum = fileCfg.Tools.Checksum
	}
	if fileCfg.Tools.Lister != "" {
		cfg.Tools.Lister = fileCfg.Tools.Lister
	}

	return cfg, nil
}

// MergeWithFlags merges CLI flags into the configuration.
// Non-nil flag values override configuration values.
func (c *Config) MergeWithFlags(logLevel *string, logDir *string, strict *bool) {
	if logLevel != nil {
		c.LogLevel = strings.ToLower(*logLevel)
	}
	if logDir != nil {
		c.LogDir = *logDir
	}
	if strict != nil {
		c.Strict = *strict
	}
}

// Validate validates the configuration values
func (c *Config) Validate() error {
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	if strings.TrimSpace(c.WorkdirPrefix) == "" {
		return fmt.Errorf("workdir_prefix cannot be empty")
	}
	if strings.ContainsAny(c.WorkdirPrefix, `/\`) {
		return fmt.Errorf("workdir_prefix %q must not contain path separators", c.WorkdirPrefix)
	}

	if strings.TrimSpace(c.Tools.Archiver) == "" {
		return fmt.Errorf("tools.archiver cannot be empty")
	}
	if strings.TrimSpace(c.Tools.Checksum) == "" {
		return fmt.Errorf("tools.checksum cannot be empty")
	}
	if strings.TrimSpace(c.Tools.Lister) == "" {
		return fmt.Errorf("tools.lister cannot be empty")
	}

	return nil
}
