package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/austrich-ai/austrich/internal/common"
	"github.com/austrich-ai/austrich/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chunkReader yields its chunks one Read at a time, simulating arbitrary
// network chunk boundaries.
type chunkReader struct {
	chunks []string
	pos    int
}

func (r *chunkReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.chunks) {
		return 0, io.EOF
	}
	n := copy(p, r.chunks[r.pos])
	r.pos++
	return n, nil
}

func TestDecodeProgressStream_SplitAcrossChunks(t *testing.T) {
	r := &chunkReader{chunks: []string{
		"data: {\"status\":\"comp",
		"lete\",\"report_id\":\"42\"}\n",
	}}

	result, err := decodeProgressStream(r, nil)
	require.NoError(t, err)
	assert.Equal(t, "42", result.ReportID)
}

func TestDecodeProgressStream_ProcessingMessagesForwarded(t *testing.T) {
	r := &chunkReader{chunks: []string{
		"data: {\"status\":\"processing\",\"message\":\"Run 1 of 3 started\"}\n",
		"data: {\"status\":\"processing\",\"message\":\"Run 2 of 3 started\"}\n",
		"data: {\"status\":\"complete\",\"report_id\":\"abc\"}\n",
	}}

	var messages []string
	result, err := decodeProgressStream(r, func(msg string) {
		messages = append(messages, msg)
	})

	require.NoError(t, err)
	assert.Equal(t, "abc", result.ReportID)
	assert.Equal(t, []string{"Run 1 of 3 started", "Run 2 of 3 started"}, messages)
}

func TestDecodeProgressStream_ErrorEventRejects(t *testing.T) {
	r := &chunkReader{chunks: []string{
		"data: {\"status\":\"error\",\"message\":\"model quota exceeded\"}\n",
	}}

	_, err := decodeProgressStream(r, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrAnalysisFailed))
	assert.Contains(t, err.Error(), "model quota exceeded")
}

func TestDecodeProgressStream_EOFWithoutComplete(t *testing.T) {
	r := &chunkReader{chunks: []string{
		"data: {\"status\":\"processing\",\"message\":\"working\"}\n",
	}}

	result, err := decodeProgressStream(r, nil)
	assert.True(t, errors.Is(err, common.ErrNoResult))
	assert.Empty(t, result.ReportID)
}

func TestDecodeProgressStream_SkipsNoise(t *testing.T) {
	r := &chunkReader{chunks: []string{
		"\n",
		": keepalive\n",
		"data: not json\n",
		"data: {\"status\":\"complete\",\"report_id\":\"ok\"}\n",
	}}

	result, err := decodeProgressStream(r, nil)
	require.NoError(t, err)
	assert.Equal(t, "ok", result.ReportID)
}

func TestAnalyzeFromStorage_StreamsOverHTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/osce/analyze-from-storage", r.URL.Path)

		w.Header().Set("Content-Type", "text/event-stream")
		flusher, ok := w.(http.Flusher)
		require.True(t, ok)

		// Deliberately split an event across two writes.
		_, _ = io.WriteString(w, "data: {\"status\":\"processing\",\"message\":\"Run 1 of 2\"}\ndata: {\"status\":\"comp")
		flusher.Flush()
		_, _ = io.WriteString(w, "lete\",\"report_id\":\"r-7\"}\n")
		flusher.Flush()
	}))
	defer server.Close()

	client, err := NewClient(Config{BaseURL: server.URL})
	require.NoError(t, err)

	var messages []string
	result, err := client.AnalyzeFromStorage(context.Background(), service.StorageAnalyzeRequest{
		Key:      "station3.txt",
		RunCount: 2,
	}, func(msg string) {
		messages = append(messages, msg)
	})

	require.NoError(t, err)
	assert.Equal(t, "r-7", result.ReportID)
	assert.Equal(t, []string{"Run 1 of 2"}, messages)
}

func TestAnalyzeFromStorage_HTTPErrorBecomesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"detail": "unknown storage key"}`)
	}))
	defer server.Close()

	client, err := NewClient(Config{BaseURL: server.URL})
	require.NoError(t, err)

	_, err = client.AnalyzeFromStorage(context.Background(), service.StorageAnalyzeRequest{Key: "nope", RunCount: 1}, nil)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "unknown storage key", apiErr.Detail)
}
