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

// GreenAPIConfig carries the GreenAPI gateway credentials.
type GreenAPIConfig struct {
	InstanceID string
	Token      string

	// BaseURL overrides the gateway endpoint, mainly for tests. When
	// empty the instance subdomain endpoint is used.
	BaseURL string

	// Timeout bounds each outbound call. Zero means the default.
	Timeout time.Duration
}

// GreenAPIClient sends WhatsApp messages through the GreenAPI gateway.
type GreenAPIClient struct {
	cfg        GreenAPIConfig
	httpClient *http.Client
}

// NewGreenAPIClient creates a GreenAPI WhatsApp client.
func NewGreenAPIClient(cfg GreenAPIConfig) *GreenAPIClient {
	if cfg.BaseURL == "" && cfg.InstanceID != "" {
		cfg.BaseURL = fmt.Sprintf("https://%s.api.greenapi.com", cfg.InstanceID)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	return &GreenAPIClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// Name identifies the provider in dispatch outcomes and logs.
func (c *GreenAPIClient) Name() string {
	return "greenapi"
}

// IsConfigured reports whether both the instance id and the token are present.
func (c *GreenAPIClient) IsConfigured() bool {
	return c.cfg.InstanceID != "" && c.cfg.Token != ""
}

type greenAPIRequest struct {
	IDInstance       string `json:"idInstance"`
	APITokenInstance string `json:"apiTokenInstance"`
	ChatID           string `json:"chatId"`
	Message          string `json:"message"`
}

type greenAPIResponse struct {
	IDMessage string `json:"idMessage"`
}

// Send delivers a plain text message to the given phone number. The
// gateway reports acceptance through an idMessage field; a 200 response
// without one still counts as failure.
func (c *GreenAPIClient) Send(ctx context.Context, phone, message string) error {
	if !c.IsConfigured() {
		return fmt.Errorf("greenapi: credentials not configured")
	}

	payload := greenAPIRequest{
		IDInstance:       c.cfg.InstanceID,
		APITokenInstance: c.cfg.Token,
		ChatID:           strings.TrimPrefix(phone, "+") + "@c.us",
		Message:          message,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("greenapi: marshal request: %w", err)
	}

	url := c.cfg.BaseURL + "/waSendText"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("greenapi: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("greenapi: send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("greenapi: unexpected status %d: %s", resp.StatusCode, string(detail))
	}

	var parsed greenAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return fmt.Errorf("greenapi: decode response: %w", err)
	}
	if parsed.IDMessage == "" {
		return fmt.Errorf("greenapi: message not accepted")
	}

	return nil
}
