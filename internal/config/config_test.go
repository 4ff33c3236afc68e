package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokermind/internal/util"
)

func TestInstance(t *testing.T) {
	clear1 := util.SetEnv(FileEnv, "testdata/config.yaml")
	defer clear1()
	clear2 := util.SetEnv("POKERMIND_BATCH_WORKERS", "2")
	defer clear2()

	config = Config{}

	a := assert.New(t)
	cfg := Instance()
	a.Equal("debug", cfg.Log.Level)
	a.Equal("json", cfg.Log.Format)
	a.Equal("127.0.0.1:8080", cfg.HTTP.Addr)
	a.Equal(2*time.Second, cfg.HTTP.ReadTimeout)
	a.Equal(10*time.Second, cfg.HTTP.WriteTimeout, "default is kept when the file omits it")
	a.Equal([]string{"http://localhost:8000", "http://127.0.0.1:8000"}, cfg.HTTP.CORSOrigins)
	a.Equal(2, cfg.Batch.Workers)
	a.Equal(50, cfg.Batch.MaxHands)
	a.Equal(1000, cfg.Sessions.Limit)

	// ensure that it's only loaded once
	_ = os.Setenv("POKERMIND_BATCH_WORKERS", "3")
	// ensure we aren't using a pointer
	cfg.Batch.Workers = 99
	cfg = Instance()
	a.Equal(2, cfg.Batch.Workers)
}

func TestLoad_defaults(t *testing.T) {
	clear1 := util.SetEnv("POKERMIND_HTTP_ACCESS_LOGS", "false")
	defer clear1()

	// config.yaml does not exist in the package directory
	require.NoError(t, Load())
	cfg := Instance()

	want := DefaultConfig()
	want.HTTP.AccessLogs = false
	want.loaded = true
	assert.Equal(t, want, cfg)
}

func TestLoad_errors(t *testing.T) {
	clear1 := util.SetEnv(FileEnv, "testdata/missing.yaml")
	assert.Error(t, Load())
	clear1()

	clear2 := util.SetEnv(FileEnv, "testdata/invalid.yaml")
	assert.Error(t, Load())
	clear2()

	clear3 := util.SetEnv("POKERMIND_BATCH_WORKERS", "many")
	assert.Error(t, Load())
	clear3()
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, ":5000", cfg.HTTP.Addr)
	assert.True(t, cfg.HTTP.AccessLogs)
	assert.Equal(t, 1000, cfg.Batch.MaxHands)
	assert.False(t, cfg.loaded)
}
