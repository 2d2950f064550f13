package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/todostack/internal/adapters/logger"
)

func TestPrettyHandler_Handle_Levels(t *testing.T) {
	tests := []struct {
		name       string
		level      slog.Level
		msg        string
		goldenName string
	}{
		{
			name:       "info level",
			level:      slog.LevelInfo,
			msg:        "running step build",
			goldenName: "handler_info",
		},
		{
			name:       "warn level",
			level:      slog.LevelWarn,
			msg:        "could not run docker",
			goldenName: "handler_warn",
		},
		{
			name:       "error level",
			level:      slog.LevelError,
			msg:        "deploy failed",
			goldenName: "handler_error",
		},
		{
			name:       "debug level filtered",
			level:      slog.LevelDebug,
			msg:        "debug message",
			goldenName: "handler_debug_filtered",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")

			buf := &bytes.Buffer{}
			handler := logger.NewPrettyHandler(buf, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			})
			lg := slog.New(handler)

			lg.Log(t.Context(), tt.level, tt.msg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestPrettyHandler_Attrs(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := slog.New(logger.NewPrettyHandler(buf, nil)).
		With("step", "build").
		WithGroup("result")

	lg.Info("step finished", "exit_code", 0)

	assert.Equal(t, "step finished result.step=build result.exit_code=0\n", buf.String())
}

func TestPrettyHandler_RedactsSecrets(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := slog.New(logger.NewPrettyHandler(buf, nil))

	lg.Warn("db settings overridden", "db.user", "root", "MYSQL_PASSWORD", "P@ssw0rd", "root_password", "x")

	assert.Equal(t, "! db settings overridden db.user=root MYSQL_PASSWORD=*** root_password=***\n", buf.String())
}

func TestPrettyHandler_QuotesValues(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := slog.New(logger.NewPrettyHandler(buf, nil))

	lg.Info("step finished", "command", "docker build -t todoapp_image .", "env", "MYSQL_HOST=mysqldb", "stderr", "")

	assert.Equal(t,
		`step finished command="docker build -t todoapp_image ." env="MYSQL_HOST=mysqldb" stderr=""`+"\n",
		buf.String())
}

func TestPrettyHandler_NestedGroups(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := slog.New(logger.NewPrettyHandler(buf, nil)).
		WithGroup("deploy").
		WithGroup("").
		WithGroup("run")

	lg.Error("step failed", "exit_code", 125)

	assert.Equal(t, "✗ step failed deploy.run.exit_code=125\n", buf.String())
}
