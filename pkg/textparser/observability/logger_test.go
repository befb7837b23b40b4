package observability

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJSONLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	h := slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h), buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		out = append(out, rec)
	}
	return out
}

func TestLogHelpers(t *testing.T) {
	logger, buf := newJSONLogger()

	LogScanStart(logger, "*(…)*", 12, true)
	LogScanComplete(logger, 2, 500*time.Microsecond)
	LogScanError(logger, "syntax", errors.New("nested start marker"))
	task := EnrichLogger(logger, "task-1")
	LogTaskDispatched(task)
	LogTaskFinished(task, 1500*time.Microsecond, true)

	recs := decodeLines(t, buf)
	require.Len(t, recs, 5)

	assert.Equal(t, "scan starting", recs[0]["msg"])
	assert.Equal(t, float64(12), recs[0]["text_len"])
	assert.Equal(t, true, recs[0]["strict"])

	assert.Equal(t, "scan completed", recs[1]["msg"])
	assert.Equal(t, float64(2), recs[1]["placeholders"])
	assert.Equal(t, 0.5, recs[1]["duration_ms"])

	assert.Equal(t, "ERROR", recs[2]["level"])
	assert.Equal(t, "syntax", recs[2]["kind"])

	assert.Equal(t, "scan task dispatched", recs[3]["msg"])
	assert.Equal(t, "task-1", recs[3]["task_id"])
	assert.Equal(t, "task-1", recs[4]["task_id"])
	assert.Equal(t, 1.5, recs[4]["duration_ms"])
	assert.Equal(t, true, recs[4]["ok"])
}

func TestEnrichLogger(t *testing.T) {
	logger, buf := newJSONLogger()

	EnrichLogger(logger, "task-9").Info("hello")

	recs := decodeLines(t, buf)
	require.Len(t, recs, 1)
	assert.Equal(t, "task-9", recs[0]["task_id"])
}

func TestLogHelpers_NilLogger(t *testing.T) {
	assert.Nil(t, EnrichLogger(nil, "x"))
	assert.NotPanics(t, func() {
		LogScanStart(nil, "", 0, false)
		LogScanComplete(nil, 0, 0)
		LogScanError(nil, "", errors.New("x"))
		LogTaskDispatched(nil)
		LogTaskFinished(nil, 0, false)
	})
}

func TestTimedOperation(t *testing.T) {
	elapsed := TimedOperation()
	time.Sleep(2 * time.Millisecond)
	assert.GreaterOrEqual(t, elapsed(), 2*time.Millisecond)
}
