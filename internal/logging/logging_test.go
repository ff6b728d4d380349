package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_InvalidLevel(t *testing.T) {
	err := Setup("shouting", "")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestSetup_SetsLevel(t *testing.T) {
	defer Setup("info", "")

	require.NoError(t, Setup("debug", ""))
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
}

func TestSetup_LogFile(t *testing.T) {
	defer Setup("info", "")

	path := filepath.Join(t.TempDir(), "netscapy.log")
	require.NoError(t, Setup("info", path))

	logrus.Info("hello from the test")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from the test")
}

func TestSetup_BadLogFile(t *testing.T) {
	err := Setup("info", filepath.Join(t.TempDir(), "missing", "netscapy.log"))
	assert.Error(t, err)
}
