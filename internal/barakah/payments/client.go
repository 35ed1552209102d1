// Package payments talks to the external payment collaborator. It creates
// hosted checkout sessions and verifies the signed completion notifications
// the collaborator delivers out of band.
package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Config for the checkout client. BaseURL and keys come from the
// environment; see app.Config.
type Config struct {
	BaseURL       string
	SecretKey     string
	WebhookSecret string
	SuccessURL    string
	CancelURL     string
	Timeout       time.Duration
}

// CheckoutRequest describes one charge to collect.
type CheckoutRequest struct {
	Amount      int64 // smallest currency unit
	Currency    string
	Description string
	Metadata    map[string]string
}

// CheckoutSession is the opaque handle the collaborator returns. URL is
// where the donor's browser goes to pay.
type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// Client is a thin HTTP client for the collaborator's checkout API. It does
// not retry; failures surface to the caller and are scoped to one request.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// CreateCheckout opens a hosted checkout session for the given charge.
func (c *Client) CreateCheckout(ctx context.Context, req CheckoutRequest) (CheckoutSession, error) {
	if req.Amount <= 0 {
		return CheckoutSession{}, fmt.Errorf("payments: non-positive amount %d", req.Amount)
	}

	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("success_url", c.cfg.SuccessURL)
	form.Set("cancel_url", c.cfg.CancelURL)
	form.Set("line_items[0][price_data][currency]", req.Currency)
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(req.Amount, 10))
	form.Set("line_items[0][price_data][product_data][name]", req.Description)
	form.Set("line_items[0][quantity]", "1")
	for k, v := range req.Metadata {
		form.Set("metadata["+k+"]", v)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.BaseURL+"/v1/checkout/sessions", strings.NewReader(form.Encode()))
	if err != nil {
		return CheckoutSession{}, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.cfg.SecretKey)
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return CheckoutSession{}, fmt.Errorf("payments: checkout request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return CheckoutSession{}, fmt.Errorf("payments: reading checkout response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return CheckoutSession{}, fmt.Errorf("payments: checkout returned status %d", resp.StatusCode)
	}

	var session CheckoutSession
	if err := json.Unmarshal(body, &session); err != nil {
		return CheckoutSession{}, fmt.Errorf("payments: decoding checkout response: %w", err)
	}
	if session.ID == "" || session.URL == "" {
		return CheckoutSession{}, fmt.Errorf("payments: checkout response missing id or url")
	}
	return session, nil
}

// WebhookSecret exposes the shared secret for notification verification.
func (c *Client) WebhookSecret() string { return c.cfg.WebhookSecret }
