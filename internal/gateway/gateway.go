// Package gateway talks to the Mastercard-hosted checkout gateway over its
// REST API. All calls carry a bounded timeout and basic-auth merchant
// credentials supplied through configuration.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"event-booking/pkg/utils"

	"go.uber.org/zap"
)

// CheckoutSession is the externally issued checkout context the client
// browser uses to complete payment.
type CheckoutSession struct {
	SessionID           string `json:"sessionId"`
	SessionKey          string `json:"sessionKey"`
	AuthenticationLimit int    `json:"authenticationLimit"`
}

// Client is the narrow surface the payment service depends on.
type Client interface {
	// CreateCheckoutSession opens a new hosted checkout session and returns
	// the parsed session together with the raw response body for audit.
	CreateCheckoutSession(ctx context.Context) (*CheckoutSession, []byte, error)

	// GetOrderStatus queries the gateway for the current state of an order.
	// Read-only; used for manual reconciliation.
	GetOrderStatus(ctx context.Context, transactionID string) ([]byte, error)
}

// StatusError carries a non-success gateway response. The raw body is kept
// for operator diagnosis and is never parsed as trusted structured data.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("gateway returned status %d: %s", e.StatusCode, e.Body)
}

type client struct {
	config utils.GatewayConfig
	http   *http.Client
	log    *zap.Logger
}

func NewClient(config utils.GatewayConfig, log *zap.Logger) Client {
	return &client{
		config: config,
		http:   &http.Client{Timeout: config.Timeout},
		log:    log.With(zap.String("client", "gateway")),
	}
}

func (c *client) CreateCheckoutSession(ctx context.Context) (*CheckoutSession, []byte, error) {
	requestURL := fmt.Sprintf("%s/version/%s/merchant/%s/session",
		c.config.BaseURL, c.config.APIVersion, c.config.MerchantID)

	payload, err := json.Marshal(map[string]string{
		"apiOperation": "CREATE_CHECKOUT_SESSION",
	})
	if err != nil {
		return nil, nil, fmt.Errorf("marshal session payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestURL, bytes.NewReader(payload))
	if err != nil {
		return nil, nil, fmt.Errorf("build session request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.config.OperatorID, c.config.Password)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("Gateway session request failed", zap.Error(err))
		return nil, nil, fmt.Errorf("create checkout session: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("read session response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		c.log.Warn("Gateway rejected session request",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", body),
		)
		return nil, nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var parsed struct {
		Session struct {
			ID                  string `json:"id"`
			AES256Key           string `json:"aes256Key"`
			AuthenticationLimit int    `json:"authenticationLimit"`
		} `json:"session"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, nil, fmt.Errorf("decode session response: %w", err)
	}

	session := &CheckoutSession{
		SessionID:           parsed.Session.ID,
		SessionKey:          parsed.Session.AES256Key,
		AuthenticationLimit: parsed.Session.AuthenticationLimit,
	}

	c.log.Info("Checkout session created", zap.String("session_id", session.SessionID))
	return session, body, nil
}

func (c *client) GetOrderStatus(ctx context.Context, transactionID string) ([]byte, error) {
	requestURL := fmt.Sprintf("%s/version/%s/merchant/%s/order/%s",
		c.config.BaseURL, c.config.APIVersion, c.config.MerchantID, transactionID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build order status request: %w", err)
	}
	req.SetBasicAuth(c.config.OperatorID, c.config.Password)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("Gateway order status request failed",
			zap.Error(err),
			zap.String("transaction_id", transactionID),
		)
		return nil, fmt.Errorf("get order status for %s: %w", transactionID, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read order status response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}
