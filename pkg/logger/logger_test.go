package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	log, err := New("warn")
	require.NoError(t, err)
	require.False(t, log.Desugar().Core().Enabled(zapcore.InfoLevel))
	require.True(t, log.Desugar().Core().Enabled(zapcore.WarnLevel))

	_, err = New("chatty")
	require.Error(t, err)
}
