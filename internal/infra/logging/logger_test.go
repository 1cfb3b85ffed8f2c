package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	context_ "github.com/mkrupp/hirepulse-client/internal/infra/context"
	"github.com/mkrupp/hirepulse-client/internal/infra/logging"
)

//nolint:paralleltest
func TestGetLogger_JSON(t *testing.T) {
	var buf bytes.Buffer

	logging.Configure(context.Background(), logging.LoggerConfig{
		Level:        "info",
		Filter:       "svc.atssvc:debug,infra.transport:error",
		JSON:         true,
		OutputHandle: &buf,
	}, "hirepulse")

	t.Cleanup(func() {
		logging.Configure(context.Background(), logging.LoggerConfig{Output: "discard"}, "")
	})

	ctx := context_.WithRequestID(context.Background(), "req-42")

	logging.GetLogger("svc.atssvc.jobs_api").DebugContext(ctx, "visible debug")
	logging.GetLogger("svc.sessionsvc").DebugContext(ctx, "hidden debug")
	logging.GetLogger("infra.transport.http").WarnContext(ctx, "hidden warn")
	logging.GetLogger("svc.sessionsvc").InfoContext(ctx, "visible info")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))

	assert.Equal(t, "visible debug", first["msg"])
	assert.Equal(t, "hirepulse", first["app"])
	assert.Equal(t, "svc.atssvc.jobs_api", first["logger"])
	assert.Equal(t, map[string]any{"id": "req-42"}, first["request"])

	assert.Contains(t, lines[1], "visible info")
}

//nolint:paralleltest
func TestGetLogger_Console(t *testing.T) {
	var buf bytes.Buffer

	logging.Configure(context.Background(), logging.LoggerConfig{
		Level:        "debug",
		OutputHandle: &buf,
	}, "")

	t.Cleanup(func() {
		logging.Configure(context.Background(), logging.LoggerConfig{Output: "discard"}, "")
	})

	logging.GetLogger("repo.token").With(logging.Group("db", "path", "/tmp/x.db")).Info("token stored")

	out := buf.String()
	assert.Contains(t, out, "repo.token")
	assert.Contains(t, out, "token stored")
	assert.Contains(t, out, "db.path=")
	assert.NotContains(t, out, "logger=")
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, logging.LevelDebug, logging.ParseLevel("debug", logging.LevelInfo))
	assert.Equal(t, logging.LevelWarn, logging.ParseLevel(" WARN ", logging.LevelInfo))
	assert.Equal(t, logging.LevelInfo, logging.ParseLevel("loud", logging.LevelInfo))
}
