package app

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogrusLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogrusLogger(&buf)

	l.Infof("render", "plotted %d points", 12)
	l.Errorf("encode", "create %s: denied", "x.png")

	out := buf.String()
	assert.Contains(t, out, "level=info")
	assert.Contains(t, out, `msg="plotted 12 points"`)
	assert.Contains(t, out, "component=render")
	assert.Contains(t, out, "level=error")
	assert.Contains(t, out, "component=encode")
}

func TestNoopLoggerSatisfiesLogger(t *testing.T) {
	var l Logger = NoopLogger{}
	l.Infof("app", "ignored %d", 1)
	l.Errorf("app", "ignored %d", 2)
}
