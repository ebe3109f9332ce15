package logging

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/segmentio/encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sosocrosswalk/soso/pkg/soso"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var events []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var event map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &event), line)
		events = append(events, event)
	}
	return events
}

func TestJSONLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(JSONConfig{Level: "info", Output: &buf})

	logger.Verbose("hidden %d", 1)
	logger.Info("converted %s", "PT1M.xml")
	logger.Error("failed")

	events := decodeLines(t, &buf)
	require.Len(t, events, 2)

	assert.Equal(t, "info", events[0]["level"])
	assert.Equal(t, "converted PT1M.xml", events[0]["message"])
	assert.Equal(t, "soso", events[0]["service"])
	assert.Contains(t, events[0], "time")

	assert.Equal(t, "error", events[1]["level"])
	assert.Equal(t, "failed", events[1]["message"])
}

func TestJSONLogger_VerboseForcesDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(JSONConfig{Level: "error", Verbose: true, Output: &buf})

	logger.Verbose("resolving %s", "spase://SMWG/Person/Adam.Szabo")

	events := decodeLines(t, &buf)
	require.Len(t, events, 1)
	assert.Equal(t, "debug", events[0]["level"])
}

func TestJSONLogger_ErrorLevelFiltersInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(JSONConfig{Level: "error", Output: &buf})

	logger.Info("skipped")

	assert.Empty(t, buf.String())
}

func TestJSONLogger_Record(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(JSONConfig{Output: &buf})

	logger.Record(soso.RecordResult{
		Path:     "./NASA/Wind.xml",
		Status:   soso.StatusConverted,
		Output:   "out/1.json",
		Duration: 5 * time.Millisecond,
	})
	logger.Record(soso.RecordResult{
		Path:   "./bad.xml",
		Status: soso.StatusFailed,
		Error:  "malformed record",
	})

	events := decodeLines(t, &buf)
	require.Len(t, events, 2)

	assert.Equal(t, "info", events[0]["level"])
	assert.Equal(t, "converted", events[0]["status"])
	assert.Equal(t, "out/1.json", events[0]["output"])
	assert.Equal(t, "batch", events[0]["component"])

	assert.Equal(t, "error", events[1]["level"])
	assert.Equal(t, "malformed record", events[1]["error"])
	assert.NotContains(t, events[1], "output")
}

func TestJSONLogger_ImplementsRecordLogger(t *testing.T) {
	var _ RecordLogger = NewJSONLogger(JSONConfig{})
	var _ soso.Logger = NewJSONLogger(JSONConfig{})
}
