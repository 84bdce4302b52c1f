// Package push sends notifications through an Expo-compatible push gateway.
package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"sitlink/internal/pkg/config"
	"sitlink/internal/pkg/errs"
)

type Message struct {
	To    string            `json:"to"`
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
	Sound string            `json:"sound,omitempty"`
}

type Client struct {
	gatewayURL string
	httpClient *http.Client
}

func NewClient(cfg config.PushConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		gatewayURL: cfg.GatewayURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Send delivers one push message. A non-2xx gateway response is an error so
// the dispatch worker retries with backoff.
func (c *Client) Send(ctx context.Context, msg Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return errs.Wrap(err, "push: marshal message")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.gatewayURL, bytes.NewReader(body))
	if err != nil {
		return errs.Wrap(err, "push: build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.Wrap(err, "push: send")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errs.New(fmt.Sprintf("push: gateway returned %d: %s", resp.StatusCode, snippet))
	}
	return nil
}
