package log

import (
	"bytes"
	"log/syslog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captured(level syslog.Priority) (*bytes.Buffer, func()) {
	var out bytes.Buffer
	prev := dflt
	SetDefault(New(level).AddWriter(&out))
	return &out, func() { dflt = prev }
}

func TestParseLevel(t *testing.T) {
	prio, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, syslog.LOG_DEBUG, prio)
	prio, err = ParseLevel("TRACE")
	require.NoError(t, err)
	assert.Equal(t, LOG_TRACE, prio)
	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestLevelFilter(t *testing.T) {
	out, restore := captured(syslog.LOG_WARNING)
	defer restore()

	Info("hidden %d", 1)
	Warn("shown %d", 2)
	Error("shown %d", 3)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "WARNING")
	assert.Contains(t, lines[0], "shown 2")
	assert.Contains(t, lines[1], "shown 3")
}

func TestNoopWithoutLogger(t *testing.T) {
	prev := dflt
	dflt = nil
	defer func() { dflt = prev }()
	assert.NotPanics(t, func() { Info("nobody listens") })
}

func TestTracer(t *testing.T) {
	out, restore := captured(syslog.LOG_INFO)
	defer restore()

	tr := GetTracer("unit")
	assert.Same(t, tr, GetTracer("unit"))
	tr.Logf("off %d", 1)
	assert.Empty(t, out.String())

	enabledTracers = tracerFlags{"unit"}
	RegisterTracers()
	defer func() { tr.Enabled = false }()
	tr.Logf("on %d", 2)
	assert.Contains(t, out.String(), "[unit] on 2")
}

func TestSyslogWriter(t *testing.T) {
	out, restore := captured(syslog.LOG_INFO)
	defer restore()

	w := NewSyslogWriter(syslog.LOG_NOTICE)
	w.Write([]byte("first li"))
	assert.Empty(t, out.String())
	w.Write([]byte("ne\nsecond\n"))
	assert.Contains(t, out.String(), "first line")
	assert.Contains(t, out.String(), "second")
	assert.Equal(t, 2, strings.Count(out.String(), "NOTICE"))
}
