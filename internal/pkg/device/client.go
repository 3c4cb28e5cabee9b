package device

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/biotrack-id/attendance-backend-go/internal/config"
	"github.com/biotrack-id/attendance-backend-go/internal/domain/punch"
	"github.com/biotrack-id/attendance-backend-go/internal/pkg/validator"
)

// ErrNotConfigured is returned when no reader base URL is set.
var ErrNotConfigured = errors.New("no fingerprint reader configured")

// Client talks to the fingerprint reader's HTTP endpoint. All calls are
// bounded by the configured timeout; the reader is a best-effort source
// and callers degrade to store-only data on any failure.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg config.DeviceConfig) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Connect probes the configured reader and returns its base URL on success.
func (c *Client) Connect(ctx context.Context) (string, error) {
	if c.baseURL == "" {
		return "", ErrNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/ping", nil)
	if err != nil {
		return "", fmt.Errorf("build ping request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("reader unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("reader ping returned status %d", resp.StatusCode)
	}

	return c.baseURL, nil
}

// punchPayload is the reader's record shape on the wire.
type punchPayload struct {
	EmployeeID string `json:"emp_id"`
	FingerID   int    `json:"finger_id"`
	Date       string `json:"date"`
	Time       string `json:"time"`
}

// FetchPunchEvents retrieves the reader's buffered punch records. Records
// with malformed date or time strings are dropped here, at the ingestion
// boundary, so lexical ordering downstream stays chronological.
func (c *Client) FetchPunchEvents(ctx context.Context) ([]punch.PunchEvent, error) {
	if c.baseURL == "" {
		return nil, ErrNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/attendance", nil)
	if err != nil {
		return nil, fmt.Errorf("build attendance request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch punch events: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("reader returned status %d", resp.StatusCode)
	}

	var payload []punchPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode punch events: %w", err)
	}

	events := make([]punch.PunchEvent, 0, len(payload))
	for _, p := range payload {
		if validator.IsEmpty(p.EmployeeID) {
			continue
		}
		if _, ok := validator.IsValidDateString(p.Date); !ok {
			continue
		}
		if !validator.IsValidTimeString(p.Time) {
			continue
		}
		events = append(events, punch.PunchEvent{
			EmployeeID: p.EmployeeID,
			FingerID:   p.FingerID,
			Date:       p.Date,
			Time:       p.Time,
			Synced:     true,
		})
	}

	return events, nil
}
