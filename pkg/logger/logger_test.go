package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewWritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Level: "info", Output: &buf, NoColor: true})
	require.NoError(t, err)

	log.Debug("скрыто")
	log.Info("[inc] готово", zap.Int("triangles", 4))
	require.NoError(t, log.Sync())

	out := buf.String()
	assert.NotContains(t, out, "скрыто")
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "[inc] готово")
	assert.Contains(t, out, `"triangles": 4`)
	assert.NotContains(t, out, "\033[")
	assert.Empty(t, log.HTML())
}

func TestNewBadLevel(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `parse log level "loud"`)
}

func TestCapture(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Level: "debug", Output: &buf, Capture: true})
	require.NoError(t, err)

	log.Debug("[dc] слияние")
	log.Warn("<b>")

	html := log.HTML()
	assert.Contains(t, html, "<pre>")
	assert.Contains(t, html, "[dc] слияние")
	assert.Contains(t, html, "&lt;b&gt;")
	assert.Contains(t, html, `color: cyan;`)
	assert.Contains(t, html, `color: yellow;`)
	assert.NotContains(t, html, "\033[")
	assert.Contains(t, buf.String(), "[dc] слияние")

	log.ClearLogs()
	assert.NotContains(t, log.HTML(), "слияние")
}

func TestNewCapture(t *testing.T) {
	log := NewCapture()
	log.Error("[run] Неизвестный алгоритм")
	assert.Contains(t, log.HTML(), "Неизвестный алгоритм")
	assert.Contains(t, log.HTML(), "color: red;")
}

func TestNop(t *testing.T) {
	log := NewNop()
	log.Info("ничего")
	assert.Empty(t, log.HTML())
	assert.NotNil(t, log.Core())
	log.ClearLogs()
}

func TestAnsiToHTML(t *testing.T) {
	in := "\033[32mINFO\033[0m a < b & c"
	assert.Equal(t, `<pre><span style="color: green;">INFO</span> a &lt; b &amp; c</pre>`, ansiToHTML(in))
}
