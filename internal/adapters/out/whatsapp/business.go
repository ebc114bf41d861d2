// Package whatsapp implements the chat provider port. Three providers are
// available: the Meta WhatsApp Business API, the GreenAPI gateway, and a
// local provider that only logs. The dispatcher chains them in that order
// so a failing upstream never leaves the channel silent.
package whatsapp

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
	defaultBusinessBaseURL = "https://graph.facebook.com/v22.0"
	defaultTimeout         = 10 * time.Second
)

// BusinessConfig carries the Meta WhatsApp Business API credentials.
type BusinessConfig struct {
	Token   string
	PhoneID string

	// BaseURL overrides the Graph API endpoint, mainly for tests.
	BaseURL string

	// Timeout bounds each outbound call. Zero means the default.
	Timeout time.Duration
}

// BusinessClient sends WhatsApp messages through the Meta Business API.
type BusinessClient struct {
	cfg        BusinessConfig
	httpClient *http.Client
}

// NewBusinessClient creates a WhatsApp Business API client.
func NewBusinessClient(cfg BusinessConfig) *BusinessClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBusinessBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	return &BusinessClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// Name identifies the provider in dispatch outcomes and logs.
func (c *BusinessClient) Name() string {
	return "business_api"
}

// IsConfigured reports whether both the access token and the phone
// number id are present.
func (c *BusinessClient) IsConfigured() bool {
	return c.cfg.Token != "" && c.cfg.PhoneID != ""
}

type businessRequest struct {
	MessagingProduct string       `json:"messaging_product"`
	To               string       `json:"to"`
	Type             string       `json:"type"`
	Text             businessText `json:"text"`
}

type businessText struct {
	Body string `json:"body"`
}

// Send delivers a plain text message to the given phone number.
func (c *BusinessClient) Send(ctx context.Context, phone, message string) error {
	if !c.IsConfigured() {
		return fmt.Errorf("whatsapp business: credentials not configured")
	}

	payload := businessRequest{
		MessagingProduct: "whatsapp",
		To:               strings.TrimPrefix(phone, "+"),
		Type:             "text",
		Text:             businessText{Body: message},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("whatsapp business: marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s/messages", c.cfg.BaseURL, c.cfg.PhoneID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("whatsapp business: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("whatsapp business: send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("whatsapp business: unexpected status %d: %s", resp.StatusCode, string(detail))
	}

	return nil
}
