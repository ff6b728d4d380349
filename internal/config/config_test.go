package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	assert.Equal(t, "output/reports", cfg.OutputDir)
	assert.Equal(t, "table", cfg.OutputFormat)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, 10*time.Minute, cfg.Timeout)
	assert.Equal(t, []string{"nmap"}, cfg.DefaultTools)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.ScanProfiles)
}

func TestLoad_NoConfigFile(t *testing.T) {
	// Ensure no env vars interfere.
	for _, key := range []string{"NETSCAPY_OUTPUT_DIR", "NETSCAPY_OUTPUT_FORMAT", "NETSCAPY_WORKERS", "NETSCAPY_TIMEOUT", "NETSCAPY_DEFAULT_TOOLS", "NETSCAPY_LOG_LEVEL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "output/reports", cfg.OutputDir)
	assert.Equal(t, "table", cfg.OutputFormat)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, 10*time.Minute, cfg.Timeout)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, ".netscapy.yaml")

	content := `output_dir: "/tmp/reports"
output_format: "json"
workers: 5
timeout: 2m
default_tools:
  - nmap
  - nikto
tool_args:
  nmap: "-sV -p 1-1000"
  nikto: "-Tuning 1"
log_level: debug
scan_profiles:
  - name: quick
    tools:
      - nmap
  - name: web
    tools:
      - nikto
      - whatweb
`
	err := os.WriteFile(cfgFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadFromFile(cfgFile)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/reports", cfg.OutputDir)
	assert.Equal(t, "json", cfg.OutputFormat)
	assert.Equal(t, 5, cfg.Workers)
	assert.Equal(t, 2*time.Minute, cfg.Timeout)
	assert.Equal(t, []string{"nmap", "nikto"}, cfg.DefaultTools)
	assert.Equal(t, "-sV -p 1-1000", cfg.ToolArgs["nmap"])
	assert.Equal(t, "-Tuning 1", cfg.ToolArgs["nikto"])
	assert.Equal(t, "debug", cfg.LogLevel)

	require.Len(t, cfg.ScanProfiles, 2)
	assert.Equal(t, "quick", cfg.ScanProfiles[0].Name)
	assert.Equal(t, []string{"nmap"}, cfg.ScanProfiles[0].Tools)
	assert.Equal(t, "web", cfg.ScanProfiles[1].Name)
	assert.Equal(t, []string{"nikto", "whatweb"}, cfg.ScanProfiles[1].Tools)
}

func TestLoadFromFile_NotFound(t *testing.T) {
	_, err := LoadFromFile("/nonexistent/.netscapy.yaml")
	assert.Error(t, err)
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, ".netscapy.yaml")

	err := os.WriteFile(cfgFile, []byte("{{invalid yaml"), 0644)
	require.NoError(t, err)

	_, err = LoadFromFile(cfgFile)
	assert.Error(t, err)
}

func TestLoad_EnvVarOverrides(t *testing.T) {
	t.Setenv("NETSCAPY_WORKERS", "5")
	t.Setenv("NETSCAPY_OUTPUT_FORMAT", "json")
	t.Setenv("NETSCAPY_TIMEOUT", "30s")
	t.Setenv("NETSCAPY_DEFAULT_TOOLS", "nmap,whatweb")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Workers)
	assert.Equal(t, "json", cfg.OutputFormat)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, []string{"nmap", "whatweb"}, cfg.DefaultTools)
}

func TestApplyFlags(t *testing.T) {
	cfg := Defaults()

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("format", "table", "")
	cmd.Flags().String("output", "output/reports", "")
	cmd.Flags().Int("workers", 3, "")
	cmd.Flags().Duration("timeout", 10*time.Minute, "")
	cmd.Flags().String("log-level", "info", "")
	cmd.Flags().String("log-file", "", "")

	// Simulate setting flags via command line.
	err := cmd.Flags().Set("format", "json")
	require.NoError(t, err)
	err = cmd.Flags().Set("workers", "7")
	require.NoError(t, err)

	ApplyFlags(&cfg, cmd)

	assert.Equal(t, "json", cfg.OutputFormat)
	assert.Equal(t, 7, cfg.Workers)
	assert.Equal(t, "output/reports", cfg.OutputDir) // Not changed, flag wasn't set.
	assert.Equal(t, 10*time.Minute, cfg.Timeout)     // Not changed, flag wasn't set.
}

func TestApplyFlags_NoOverrideWhenUnchanged(t *testing.T) {
	cfg := Config{
		OutputDir:    "/data/reports",
		OutputFormat: "json",
		Workers:      8,
		Timeout:      15 * time.Minute,
		LogLevel:     "debug",
	}

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("format", "table", "")
	cmd.Flags().String("output", "output/reports", "")
	cmd.Flags().Int("workers", 3, "")
	cmd.Flags().Duration("timeout", 10*time.Minute, "")
	cmd.Flags().String("log-level", "info", "")
	cmd.Flags().String("log-file", "", "")

	// No flags set on the command line, so nothing should override.
	ApplyFlags(&cfg, cmd)

	assert.Equal(t, "/data/reports", cfg.OutputDir)
	assert.Equal(t, "json", cfg.OutputFormat)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, 15*time.Minute, cfg.Timeout)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestGetProfile(t *testing.T) {
	cfg := &Config{
		ScanProfiles: []ScanProfile{
			{Name: "quick", Tools: []string{"nmap"}},
			{Name: "full", Tools: []string{"nmap", "nikto", "whatweb"}},
		},
	}

	t.Run("found", func(t *testing.T) {
		p := cfg.GetProfile("full")
		require.NotNil(t, p)
		assert.Equal(t, "full", p.Name)
		assert.Equal(t, []string{"nmap", "nikto", "whatweb"}, p.Tools)
	})

	t.Run("not found", func(t *testing.T) {
		p := cfg.GetProfile("nonexistent")
		assert.Nil(t, p)
	})
}

func TestConfigFilePath(t *testing.T) {
	path := ConfigFilePath()
	assert.Contains(t, path, ".netscapy.yaml")
}

func TestLoadFromFile_PartialConfig(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, ".netscapy.yaml")

	content := `workers: 6
`
	err := os.WriteFile(cfgFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadFromFile(cfgFile)
	require.NoError(t, err)

	// Explicitly set values.
	assert.Equal(t, 6, cfg.Workers)
	// Defaults for unset values.
	assert.Equal(t, "table", cfg.OutputFormat)
	assert.Equal(t, 10*time.Minute, cfg.Timeout)
}
