package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, "warn")
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, logger.Level)

	logger.Info("seed.Generate.Start")
	assert.Empty(t, buf.String(), "info is below warn")

	logger.WithField("code", "800000").Warn("accounts.Validate")
	assert.Contains(t, buf.String(), "loglevel=warning")
	assert.Contains(t, buf.String(), "code=800000")
}

func TestNewLogger_BadLevel(t *testing.T) {
	_, err := newLogger(&bytes.Buffer{}, "loud")
	require.Error(t, err)
}

func TestSetupLogging(t *testing.T) {
	logger, err := SetupLogging("debug")
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, logger.Level)
}
