package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriter_PlainLabels(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf) // bytes.Buffer is not a TTY, so no color

	w.Success("indexed")
	w.Warning("reranker disabled")
	w.Errorf("failed after %d attempts", 3)

	out := buf.String()
	assert.Contains(t, out, "ok: indexed")
	assert.Contains(t, out, "warn: reranker disabled")
	assert.Contains(t, out, "error: failed after 3 attempts")
	assert.NotContains(t, out, "\033[")
}

func TestWriter_Context(t *testing.T) {
	var buf bytes.Buffer
	w := NewPlain(&buf)

	w.Context("línea uno\nlínea dos")

	out := buf.String()
	assert.Contains(t, out, "  | línea uno\n")
	assert.Contains(t, out, "  | línea dos\n")
}

func TestWriter_Printf(t *testing.T) {
	var buf bytes.Buffer
	w := NewPlain(&buf)

	w.Printf("%d results\n", 5)
	assert.Equal(t, "5 results\n", buf.String())
}
