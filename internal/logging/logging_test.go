package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/csvpeek/internal/logging"
)

func TestGetLevel(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    logrus.Level
		wantErr require.ErrorAssertionFunc
	}{
		"empty":   {input: "", want: logrus.ErrorLevel, wantErr: require.NoError},
		"debug":   {input: "debug", want: logrus.DebugLevel, wantErr: require.NoError},
		"upper":   {input: "INFO", want: logrus.InfoLevel, wantErr: require.NoError},
		"warn":    {input: "warn", want: logrus.WarnLevel, wantErr: require.NoError},
		"error":   {input: "error", want: logrus.ErrorLevel, wantErr: require.NoError},
		"unknown": {input: "loud", want: logrus.ErrorLevel, wantErr: require.Error},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := logging.GetLevel(tt.input)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetFormatter(t *testing.T) {
	t.Parallel()
	f, err := logging.GetFormatter("text")
	require.NoError(t, err)
	assert.IsType(t, &logrus.TextFormatter{}, f)

	f, err = logging.GetFormatter("json-pretty")
	require.NoError(t, err)
	assert.True(t, f.(*logrus.JSONFormatter).PrettyPrint)

	_, err = logging.GetFormatter("xml")
	assert.Error(t, err)
}

func TestNewJSON(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	l, err := logging.New(&buf, "debug", "json")
	require.NoError(t, err)

	l.WithField("rows", 3).Debug("selected")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "selected", entry["msg"])
	assert.Equal(t, "debug", entry["level"])
	assert.EqualValues(t, 3, entry["rows"])
}

func TestNewFiltersBelowLevel(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	l, err := logging.New(&buf, "", "text")
	require.NoError(t, err)

	l.Info("hidden")
	assert.Empty(t, buf.String())

	l.Error("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewInvalid(t *testing.T) {
	t.Parallel()
	_, err := logging.New(&bytes.Buffer{}, "nope", "text")
	assert.Error(t, err)
	_, err = logging.New(&bytes.Buffer{}, "info", "nope")
	assert.Error(t, err)
}
