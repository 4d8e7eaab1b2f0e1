package logger

import (
	"bytes"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"

	"github.com/scan-io-git/ssd-reporter/internal/config"
)

func TestDetermineLogLevel(t *testing.T) {
	tests := []struct {
		name  string
		env   string
		level string
		want  hclog.Level
	}{
		{name: "default", want: hclog.Info},
		{name: "config level", level: "debug", want: hclog.Debug},
		{name: "env wins over config", env: "error", level: "debug", want: hclog.Error},
		{name: "unknown falls back to info", level: "verbose", want: hclog.Info},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(LogLevelEnv, tt.env)
			cfg := &config.Config{Logger: config.Logger{Level: tt.level}}
			assert.Equal(t, tt.want, determineLogLevel(cfg))
		})
	}
}

func TestNewLoggerWritesNamedLines(t *testing.T) {
	t.Setenv(LogLevelEnv, "")
	var buf bytes.Buffer

	l := newLogger(nil, "pr-comment", &buf)
	l.Info("created new PR comment", "id", 7)

	assert.Contains(t, buf.String(), "[INFO]  pr-comment: created new PR comment: id=7")
}
