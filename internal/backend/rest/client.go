// Package rest implements the service.Service interface against a JSON
// collection endpoint such as /api/todo/.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"taskboard/internal/service"
)

// RequestIDHeader carries the per-call id that also appears in the log.
const RequestIDHeader = "X-Request-ID"

// maxErrorBody caps how much of a failed response body is kept for the log.
const maxErrorBody = 512

// Client implements service.Service over HTTP.
type Client struct {
	base   *url.URL
	http   *http.Client
	logger *log.Logger
}

// New creates a client for the collection at baseURL. A trailing slash is
// added if missing so that item paths compose as base+id+"/".
// No timeout is set on the default HTTP client.
func New(baseURL string, logger *log.Logger) (*Client, error) {
	return NewWithHTTPClient(baseURL, &http.Client{}, logger)
}

// NewWithHTTPClient creates a client with a custom HTTP client (for testing).
func NewWithHTTPClient(baseURL string, httpClient *http.Client, logger *log.Logger) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("invalid api url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid api url %q: scheme must be http or https", baseURL)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Client{base: u, http: httpClient, logger: logger}, nil
}

// BaseURL returns the normalized collection address.
func (c *Client) BaseURL() string {
	return c.base.String()
}

// ListTasks fetches the whole collection.
func (c *Client) ListTasks(ctx context.Context) ([]service.Task, error) {
	var tasks []service.Task
	if err := c.do(ctx, http.MethodGet, c.base.String(), nil, &tasks); err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []service.Task{}
	}
	return tasks, nil
}

// CreateTask posts a new task and returns the server's record.
func (c *Client) CreateTask(ctx context.Context, task service.NewTask) (service.Task, error) {
	var created service.Task
	if err := c.do(ctx, http.MethodPost, c.base.String(), task, &created); err != nil {
		return service.Task{}, err
	}
	return created, nil
}

// DeleteTask deletes base+id+"/". The response body is ignored.
func (c *Client) DeleteTask(ctx context.Context, id service.ID) error {
	return c.do(ctx, http.MethodDelete, c.itemURL(id), nil, nil)
}

// UpdateTask patches base+id+"/" with only the fields set in patch.
func (c *Client) UpdateTask(ctx context.Context, id service.ID, patch service.Patch) error {
	return c.do(ctx, http.MethodPatch, c.itemURL(id), patch, nil)
}

func (c *Client) itemURL(id service.ID) string {
	return c.base.JoinPath(url.PathEscape(string(id))).String() + "/"
}

func (c *Client) do(ctx context.Context, method, target string, body, out any) error {
	reqID := uuid.NewString()

	var rdr io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s body: %w", method, err)
		}
		rdr = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, rdr)
	if err != nil {
		return &RequestError{Method: method, URL: target, RequestID: reqID, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, reqID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("request", "method", method, "url", target, "request_id", reqID)

	resp, err := c.http.Do(req)
	if err != nil {
		return &RequestError{Method: method, URL: target, RequestID: reqID, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &RequestError{
			Method:     method,
			URL:        target,
			RequestID:  reqID,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(snippet)),
		}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &RequestError{
			Method:     method,
			URL:        target,
			RequestID:  reqID,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("decode response: %w", err),
		}
	}
	return nil
}

var _ service.Service = (*Client)(nil)
