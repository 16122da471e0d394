package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterruptHandler(t *testing.T) {
	var buf bytes.Buffer
	h := NewInterruptHandler(&buf)

	ctx := h.HandleInterrupts(context.Background(), false)
	require.NotNil(t, ctx)
	assert.False(t, h.WasInterrupted())
	assert.NoError(t, ctx.Err())
}

func TestInterruptHandlerDefaultsWriter(t *testing.T) {
	h := NewInterruptHandler(nil)
	assert.NotNil(t, h.writer)
}

func TestInterruptMessageBatch(t *testing.T) {
	var buf bytes.Buffer
	h := &InterruptHandler{writer: &buf, batchRuns: true}
	h.showInterruptMessage()

	out := buf.String()
	assert.Contains(t, out, "Analysis interrupted")
	assert.Contains(t, out, "austrich reports list")
}
