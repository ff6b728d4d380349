// Package config provides configuration loading for Netscapy.
// It supports a layered configuration approach with priority:
// CLI flags > environment variables (NETSCAPY_*) > config file (~/.netscapy.yaml).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ScanProfile defines a named set of tools to run together.
type ScanProfile struct {
	Name  string   `mapstructure:"name" yaml:"name"`
	Tools []string `mapstructure:"tools" yaml:"tools"`
}

// Config holds all Netscapy configuration options.
type Config struct {
	OutputDir    string            `mapstructure:"output_dir" yaml:"output_dir"`
	OutputFormat string            `mapstructure:"output_format" yaml:"output_format"`
	Workers      int               `mapstructure:"workers" yaml:"workers"`
	Timeout      time.Duration     `mapstructure:"timeout" yaml:"timeout"`
	DefaultTools []string          `mapstructure:"default_tools" yaml:"default_tools"`
	ToolArgs     map[string]string `mapstructure:"tool_args" yaml:"tool_args"`
	LogLevel     string            `mapstructure:"log_level" yaml:"log_level"`
	LogFile      string            `mapstructure:"log_file" yaml:"log_file"`
	ScanProfiles []ScanProfile     `mapstructure:"scan_profiles" yaml:"scan_profiles"`
}

// Defaults returns a Config populated with default values.
func Defaults() Config {
	return Config{
		OutputDir:    "output/reports",
		OutputFormat: "table",
		Workers:      3,
		Timeout:      10 * time.Minute,
		DefaultTools: []string{"nmap"},
		LogLevel:     "info",
	}
}

// Load reads configuration from ~/.netscapy.yaml and environment variables.
// It does NOT apply CLI flag overrides; call ApplyFlags for that.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(".netscapy")
	v.SetConfigType("yaml")

	home, err := os.UserHomeDir()
	if err == nil {
		v.AddConfigPath(home)
	}

	v.SetEnvPrefix("NETSCAPY")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := Defaults()
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)

	v.SetEnvPrefix("NETSCAPY")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Defaults()
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// ApplyFlags overrides config values with any CLI flags that were explicitly set.
func ApplyFlags(cfg *Config, cmd *cobra.Command) {
	flags := cmd.Flags()

	if flags.Changed("format") {
		val, _ := flags.GetString("format")
		cfg.OutputFormat = val
	}
	if flags.Changed("output") {
		val, _ := flags.GetString("output")
		cfg.OutputDir = val
	}
	if flags.Changed("workers") {
		val, _ := flags.GetInt("workers")
		cfg.Workers = val
	}
	if flags.Changed("timeout") {
		val, _ := flags.GetDuration("timeout")
		cfg.Timeout = val
	}
	if flags.Changed("log-level") {
		val, _ := flags.GetString("log-level")
		cfg.LogLevel = val
	}
	if flags.Changed("log-file") {
		val, _ := flags.GetString("log-file")
		cfg.LogFile = val
	}
}

// GetProfile returns the scan profile with the given name, or nil if not found.
func (c *Config) GetProfile(name string) *ScanProfile {
	for i := range c.ScanProfiles {
		if c.ScanProfiles[i].Name == name {
			return &c.ScanProfiles[i]
		}
	}
	return nil
}

// ConfigFilePath returns the default config file path (~/.netscapy.yaml).
func ConfigFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".netscapy.yaml"
	}
	return filepath.Join(home, ".netscapy.yaml")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("output_dir", "output/reports")
	v.SetDefault("output_format", "table")
	v.SetDefault("workers", 3)
	v.SetDefault("timeout", 10*time.Minute)
	v.SetDefault("default_tools", []string{"nmap"})
	v.SetDefault("log_level", "info")
}
