package logger

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WARNING)
	l.out = log.New(&buf, "", 0)

	l.Debugf("dropped frame from user %s", "alice")
	l.Infof("user %s connected", "alice")
	l.Warnf("redis is unreachable")
	l.Errorf("cannot persist notification")

	out := buf.String()
	require.NotContains(t, out, "dropped frame")
	require.NotContains(t, out, "connected")
	require.Contains(t, out, "WARN redis is unreachable")
	require.Contains(t, out, "ERROR cannot persist notification")
}

func TestLoggerSilence(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(SILENCE)
	l.out = log.New(&buf, "", 0)

	l.Errorf("cannot persist notification")
	require.Empty(t, buf.String())
}
