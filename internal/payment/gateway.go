// Package payment 支付网关客户端
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrCheckoutFailed 创建支付会话失败
var ErrCheckoutFailed = errors.New("payment checkout failed")

// CheckoutRequest 支付会话请求
type CheckoutRequest struct {
	UserID       int64   `json:"user_id"`
	Email        string  `json:"email"`
	Amount       float64 `json:"amount"`
	DurationDays int     `json:"duration_days"`
	SuccessURL   string  `json:"success_url"`
	CancelURL    string  `json:"cancel_url"`
}

// CheckoutSession 支付会话，CheckoutURL供前端跳转
type CheckoutSession struct {
	SessionID   string `json:"session_id"`
	CheckoutURL string `json:"checkout_url"`
}

// Gateway 支付网关接口
type Gateway interface {
	CreateCheckoutSession(ctx context.Context, req *CheckoutRequest) (*CheckoutSession, error)
}

// Config 支付网关配置
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client 基于HTTP的支付网关客户端
type Client struct {
	cfg        *Config
	httpClient *http.Client
}

// NewClient 创建支付网关客户端
func NewClient(cfg *Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// CreateCheckoutSession 调用支付服务商创建结账会话
func (c *Client) CreateCheckoutSession(ctx context.Context, req *CheckoutRequest) (*CheckoutSession, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal checkout request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.BaseURL+"/v1/checkout/sessions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build checkout request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCheckoutFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("%w: provider returned %d", ErrCheckoutFailed, resp.StatusCode)
	}

	var session CheckoutSession
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, fmt.Errorf("decode checkout response: %w", err)
	}
	return &session, nil
}
