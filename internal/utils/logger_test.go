//nolint:revive // utils is a common pattern for internal utilities
package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerDefaultThreshold(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewRFC5424Logger("diskusage", &buf, false)
	require.NoError(t, err)

	logger.LogInfo("scan started", nil)
	logger.LogDebug("details", nil)
	assert.Empty(t, buf.String(), "info and debug are suppressed without verbose")

	logger.LogWarn("mount skipped", map[string]string{"mount": "/Volumes/Flaky"})
	out := buf.String()
	assert.Contains(t, out, "<12>1") // user.warning = 8 + 4
	assert.Contains(t, out, "diskusage")
	assert.Contains(t, out, "mount skipped")
	assert.Contains(t, out, `mount="/Volumes/Flaky"`)
}

func TestLoggerVerbose(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewRFC5424Logger("diskusage", &buf, true)
	require.NoError(t, err)

	logger.LogInfo("scan started", map[string]string{"run_id": "abc"})
	logger.LogDebug("parsed mounts", nil)
	logger.LogError("listing failed", nil)

	out := buf.String()
	assert.Contains(t, out, "<14>1") // user.info
	assert.Contains(t, out, "<15>1") // user.debug
	assert.Contains(t, out, "<11>1") // user.error
	assert.Contains(t, out, "[meta@1")
	assert.Contains(t, out, `run_id="abc"`)
}

func TestGenerateRunID(t *testing.T) {
	a := GenerateRunID()
	b := GenerateRunID()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}
