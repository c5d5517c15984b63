package infrastructure

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_Level(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, newLogger(&bytes.Buffer{}, "debug", "text").GetLevel())
	assert.Equal(t, logrus.WarnLevel, newLogger(&bytes.Buffer{}, "warn", "text").GetLevel())
	assert.Equal(t, logrus.InfoLevel, newLogger(&bytes.Buffer{}, "loud", "text").GetLevel())
	assert.Equal(t, logrus.InfoLevel, newLogger(&bytes.Buffer{}, "", "text").GetLevel())
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, "info", "json")

	log.WithField("post_id", "p1").Info("post created")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "post created", entry["msg"])
	assert.Equal(t, "p1", entry["post_id"])
	assert.Equal(t, "info", entry["level"])
}

func TestNewLogger_TextFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, "warn", "text")

	log.Info("hidden")
	log.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
