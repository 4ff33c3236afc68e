package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokermind/internal/config"
)

func TestNew(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Log.Level = "debug"
	cfg.Log.Format = "json"

	var buf bytes.Buffer
	logger, err := New(cfg, &buf)
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())

	logger.WithField("hand", "141,131").Debug("evaluated")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "evaluated", entry["msg"])
	assert.Equal(t, "141,131", entry["hand"])
}

func TestNew_text(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(config.DefaultConfig(), &buf)
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())

	logger.Info("listening")
	assert.Contains(t, buf.String(), `msg=listening`)
	assert.NotContains(t, buf.String(), "\x1b[", "no colours when not a terminal")
}

func TestNew_errors(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Log.Level = "loud"
	_, err := New(cfg, &bytes.Buffer{})
	assert.Error(t, err)

	cfg = config.DefaultConfig()
	cfg.Log.Format = "xml"
	_, err = New(cfg, &bytes.Buffer{})
	assert.EqualError(t, err, `unknown log format "xml"`)
}
