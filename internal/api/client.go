// Package api implements the HTTP client for the grading backend. All
// endpoints are fixed contracts owned by the backend; this package only
// normalizes transport, error shapes, and the streamed progress protocol.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/austrich-ai/austrich/internal/common"
	"github.com/austrich-ai/austrich/internal/model"
	"github.com/austrich-ai/austrich/internal/service"
)

// Config holds the backend client configuration.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client talks to the grading backend over HTTP.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a backend client. Submission calls can be slow on the
// server side, so the timeout applies per request, not per stream read.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("backend base URL is required")
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 120 * time.Second
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}, nil
}

// analyzeResponse is the backend's acknowledgment for submission endpoints.
type analyzeResponse struct {
	Success  bool   `json:"success"`
	ReportID string `json:"report_id"`
	Message  string `json:"message"`
}

// AnalyzeTranscript submits a transcript for analysis, either as an uploaded
// file or as raw text.
func (c *Client) AnalyzeTranscript(ctx context.Context, req service.AnalyzeTranscriptRequest) (service.AnalyzeResult, error) {
	if req.FilePath == "" && req.Text == "" {
		return service.AnalyzeResult{}, fmt.Errorf("%w: transcript submission requires a file or raw text", common.ErrNoInput)
	}

	var resp analyzeResponse
	var err error
	if req.FilePath != "" {
		fields := map[string]string{
			"model_id":  req.ModelID,
			"prompt_id": req.PromptID,
		}
		err = c.postMultipart(ctx, "/osce/analyze-transcript", "file", req.FilePath, fields, &resp)
	} else {
		body := map[string]string{
			"transcript": req.Text,
			"model_id":   req.ModelID,
			"prompt_id":  req.PromptID,
		}
		err = c.postJSON(ctx, "/osce/analyze-transcript", body, &resp)
	}
	if err != nil {
		return service.AnalyzeResult{}, err
	}

	return service.AnalyzeResult{ReportID: resp.ReportID, Message: resp.Message}, nil
}

// AnalyzeVideo submits a video recording for analysis.
func (c *Client) AnalyzeVideo(ctx context.Context, req service.AnalyzeVideoRequest) (service.AnalyzeResult, error) {
	if req.FilePath == "" {
		return service.AnalyzeResult{}, fmt.Errorf("%w: video submission requires a file", common.ErrNoInput)
	}

	fields := map[string]string{
		"model_id":  req.ModelID,
		"prompt_id": req.PromptID,
	}
	if req.Timestamp != nil {
		fields["timestamp"] = strconv.FormatFloat(*req.Timestamp, 'f', -1, 64)
	}

	var resp analyzeResponse
	if err := c.postMultipart(ctx, "/osce/analyze-video", "video", req.FilePath, fields, &resp); err != nil {
		return service.AnalyzeResult{}, err
	}

	return service.AnalyzeResult{ReportID: resp.ReportID, Message: resp.Message}, nil
}

// GetReport fetches a full report record by id.
func (c *Client) GetReport(ctx context.Context, id string) (*model.Report, error) {
	var report model.Report
	if err := c.getJSON(ctx, "/reports/"+url.PathEscape(id), &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// ListReports fetches the backend's report listing, newest first.
func (c *Client) ListReports(ctx context.Context) ([]model.ReportSummary, error) {
	var resp struct {
		Reports []model.ReportSummary `json:"reports"`
	}
	if err := c.getJSON(ctx, "/reports", &resp); err != nil {
		return nil, err
	}
	return resp.Reports, nil
}

// ListInputObjects lists the uploaded source files awaiting analysis.
func (c *Client) ListInputObjects(ctx context.Context) ([]model.StorageObject, error) {
	return c.listObjects(ctx, "/storage/inputs")
}

// ListOutputObjects lists the generated report objects.
func (c *Client) ListOutputObjects(ctx context.Context) ([]model.StorageObject, error) {
	return c.listObjects(ctx, "/storage/outputs")
}

func (c *Client) listObjects(ctx context.Context, path string) ([]model.StorageObject, error) {
	var resp struct {
		Files []model.StorageObject `json:"files"`
	}
	if err := c.getJSON(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Files, nil
}

// DeleteObject removes an object from the named bucket.
func (c *Client) DeleteObject(ctx context.Context, bucket, key string) error {
	path := fmt.Sprintf("/storage/%s/%s", url.PathEscape(bucket), url.PathEscape(key))
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrBackendUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp.StatusCode, body)
	}
	return nil
}

// DownloadPDF fetches the rendered document export for a report.
func (c *Client) DownloadPDF(ctx context.Context, id string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/reports/"+url.PathEscape(id)+"/pdf", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrBackendUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, newAPIError(resp.StatusCode, body)
	}
	return body, nil
}

// getJSON issues a GET and decodes a JSON response into out.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	return c.do(req, out)
}

// postJSON issues a POST with a JSON body and decodes the response into out.
func (c *Client) postJSON(ctx context.Context, path string, body any, out any) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

// postMultipart uploads a file with accompanying form fields.
func (c *Client) postMultipart(ctx context.Context, path, fileField, filePath string, fields map[string]string, out any) error {
	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", filePath, err)
	}
	defer func() { _ = file.Close() }()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile(fileField, filepath.Base(filePath))
	if err != nil {
		return fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("failed to copy file contents: %w", err)
	}

	for key, value := range fields {
		if value == "" {
			continue
		}
		if err := writer.WriteField(key, value); err != nil {
			return fmt.Errorf("failed to write field %s: %w", key, err)
		}
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrBackendUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp.StatusCode, body)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}
