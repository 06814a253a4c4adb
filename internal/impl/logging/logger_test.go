package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_WritesToFile(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "chatkeeper.log")

	logger, err := NewLogger("info", fileName)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("visible")
	_ = logger.Sync()

	data, err := os.ReadFile(fileName)
	require.NoError(t, err)
	assert.Contains(t, string(data), "visible")
	assert.NotContains(t, string(data), "hidden")
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	logger, err := NewLogger("loud", "")

	assert.Error(t, err)
	assert.Nil(t, logger)
}
