package api

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/austrich-ai/austrich/internal/common"
	"github.com/austrich-ai/austrich/internal/service"
)

// Stream event status discriminators.
const (
	eventProcessing = "processing"
	eventComplete   = "complete"
	eventError      = "error"
)

// progressEvent is one decoded line of the backend's streamed progress
// protocol: a "data: " prefixed JSON object per line.
type progressEvent struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	ReportID string `json:"report_id"`
}

// AnalyzeFromStorage submits an already-uploaded object for analysis and
// follows the streamed progress events until a terminal one arrives.
// Processing messages are forwarded to progress; complete resolves with the
// final report id; error rejects with the server's message. A stream that
// ends without a complete event fails with common.ErrNoResult.
func (c *Client) AnalyzeFromStorage(ctx context.Context, req service.StorageAnalyzeRequest, progress service.ProgressFunc) (service.AnalyzeResult, error) {
	body := map[string]any{
		"key":         req.Key,
		"model_id":    req.ModelID,
		"prompt_id":   req.PromptID,
		"batch_count": req.RunCount,
	}
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return service.AnalyzeResult{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/osce/analyze-from-storage", strings.NewReader(string(jsonBody)))
	if err != nil {
		return service.AnalyzeResult{}, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "text/event-stream")

	// The default client timeout would cut long streams short.
	streamClient := &http.Client{Transport: c.httpClient.Transport}
	resp, err := streamClient.Do(httpReq)
	if err != nil {
		return service.AnalyzeResult{}, fmt.Errorf("%w: %v", common.ErrBackendUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			respBody = nil
		}
		return service.AnalyzeResult{}, newAPIError(resp.StatusCode, respBody)
	}

	return decodeProgressStream(resp.Body, progress)
}

// decodeProgressStream consumes "data: {json}" lines from r. Lines arrive
// split across arbitrary chunk boundaries; the line scanner reassembles them,
// so each payload is parsed independently of how the network delivered it.
func decodeProgressStream(r io.Reader, progress service.ProgressFunc) (service.AnalyzeResult, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		payload, ok := strings.CutPrefix(line, "data:")
		if !ok {
			continue
		}

		var event progressEvent
		if err := json.Unmarshal([]byte(strings.TrimSpace(payload)), &event); err != nil {
			slog.Debug("skipping malformed stream event", "line", line, "error", err)
			continue
		}

		switch event.Status {
		case eventProcessing:
			if progress != nil && event.Message != "" {
				progress(event.Message)
			}
		case eventComplete:
			return service.AnalyzeResult{ReportID: event.ReportID, Message: event.Message}, nil
		case eventError:
			message := event.Message
			if message == "" {
				message = "analysis failed"
			}
			return service.AnalyzeResult{}, fmt.Errorf("%w: %s", common.ErrAnalysisFailed, message)
		default:
			slog.Debug("ignoring unknown stream event status", "status", event.Status)
		}
	}

	if err := scanner.Err(); err != nil {
		return service.AnalyzeResult{}, fmt.Errorf("stream read failed: %w", err)
	}

	// The server closed the stream without a terminal event.
	return service.AnalyzeResult{}, common.ErrNoResult
}
