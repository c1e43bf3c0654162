package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestLogLevelToString(t *testing.T) {
	require.Equal(t, "TRACE", LogLevelToString(TraceLevel))
	require.Equal(t, "DEBUG", LogLevelToString(DebugLevel))
	require.Equal(t, "WARN", LogLevelToString(WarnLevel))
	require.Equal(t, "FATAL", LogLevelToString(FatalLevel))
	require.Equal(t, "TRACE", LogLevelToString(42))
}

func TestToZerolog(t *testing.T) {
	require.Equal(t, zerolog.InfoLevel, ToZerolog(InfoLevel))
	require.Equal(t, zerolog.ErrorLevel, ToZerolog(ErrorLevel))
	require.Equal(t, zerolog.TraceLevel, ToZerolog(-1))
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, WarnLevel)
	logger.Debug().Msg("hidden")
	require.Equal(t, 0, buf.Len())
	logger.Warn().Str("column", "ID").Msg("shown")
	require.Contains(t, buf.String(), `"column":"ID"`)
	require.Contains(t, buf.String(), `"message":"shown"`)
}
