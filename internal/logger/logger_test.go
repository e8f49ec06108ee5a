package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"companyapi/internal/config"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, ParseLevel("warn"))
	assert.Equal(t, zapcore.ErrorLevel, ParseLevel("ERROR"))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel("verbose"))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel(""))
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := newWithWriter(config.LogConfig{Level: "info", Format: "json"}, &buf)

	log.Debug("hidden")
	log.Info("company created", zap.Int64("company_id", 7))
	require.NoError(t, log.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "company created", entry["msg"])
	assert.Equal(t, float64(7), entry["company_id"])
	assert.NotEmpty(t, entry["ts"])
}

func TestNewWithWriter_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	var buf bytes.Buffer
	log := newWithWriter(config.LogConfig{Level: "info", File: path, MaxSizeMB: 1}, &buf)

	log.Info("to both sinks")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to both sinks")
	assert.Contains(t, buf.String(), "to both sinks")
}
