// Package msg91 implements the SMS provider port on top of the MSG91
// Flow API. A flow template referenced by id is rendered server-side;
// the message text travels as the template's first variable.
package msg91

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://api.msg91.com/api/v5/flow/"
	defaultTimeout = 10 * time.Second

	// messageVarLimit caps the text forwarded as the flow variable.
	messageVarLimit = 50
)

// Config carries the MSG91 credentials and endpoint settings.
type Config struct {
	AuthKey    string
	TemplateID string
	SenderID   string

	// BaseURL overrides the MSG91 endpoint, mainly for tests.
	BaseURL string

	// Timeout bounds each outbound call. Zero means the default.
	Timeout time.Duration
}

// Client sends SMS messages through the MSG91 Flow API.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient creates an MSG91 SMS client. A client with no auth key is
// valid but reports itself unconfigured and refuses to send.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// IsConfigured reports whether an auth key is present.
func (c *Client) IsConfigured() bool {
	return c.cfg.AuthKey != ""
}

type flowRequest struct {
	FlowID  string `json:"flow_id"`
	Sender  string `json:"sender"`
	Mobiles string `json:"mobiles"`
	Var1    string `json:"VAR1"`
}

// Send delivers the message to the given phone number. The number is sent
// without its leading plus, as MSG91 expects bare digits.
func (c *Client) Send(ctx context.Context, phone, message string) error {
	if !c.IsConfigured() {
		return fmt.Errorf("msg91: auth key not configured")
	}

	payload := flowRequest{
		FlowID:  c.cfg.TemplateID,
		Sender:  c.cfg.SenderID,
		Mobiles: strings.TrimPrefix(phone, "+"),
		Var1:    truncate(message, messageVarLimit),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("msg91: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("msg91: build request: %w", err)
	}
	req.Header.Set("authkey", c.cfg.AuthKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("msg91: send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("msg91: unexpected status %d: %s", resp.StatusCode, string(detail))
	}

	return nil
}

// truncate cuts the message at the given rune count.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
