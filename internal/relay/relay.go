package relay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bgcollection/storefront/internal/config"
	"github.com/bgcollection/storefront/internal/logger"

	"github.com/sony/gobreaker/v2"
)

var (
	ErrRelayNotConfigured = errors.New("form relay access key is not configured")
	ErrRequestFailed      = errors.New("form relay request failed")
	ErrRelayRejected      = errors.New("form relay rejected submission")
	ErrRelayUnavailable   = errors.New("form relay temporarily unavailable")
)

const (
	defaultTimeout      = 15 * time.Second
	defaultBreakerTrips = 5
	defaultBreakerOpen  = 30 * time.Second
	maxResponseBytes    = 64 << 10
)

// Submission 一次表单转发内容
type Submission struct {
	Subject  string
	FromName string
	Email    string
	ReplyTo  string
	Message  string
}

// Client 表单转发客户端（Web3Forms 兼容）
type Client struct {
	endpoint   string
	accessKey  string
	recipient  string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[struct{}]
}

type submitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewClient 根据配置创建客户端
func NewClient(cfg config.RelayConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	trips := cfg.BreakerFailures
	if trips <= 0 {
		trips = defaultBreakerTrips
	}
	openFor := time.Duration(cfg.BreakerOpenSeconds) * time.Second
	if openFor <= 0 {
		openFor = defaultBreakerOpen
	}

	breaker := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        "form_relay",
		MaxRequests: 1,
		Timeout:     openFor,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(trips)
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warnw("relay_breaker_state_changed", "breaker", name, "from", from.String(), "to", to.String())
		},
	})

	return &Client{
		endpoint:   strings.TrimSpace(cfg.Endpoint),
		accessKey:  strings.TrimSpace(cfg.AccessKey),
		recipient:  strings.TrimSpace(cfg.Recipient),
		httpClient: &http.Client{Timeout: timeout},
		breaker:    breaker,
	}
}

// Configured 是否已配置访问密钥
func (c *Client) Configured() bool {
	return c != nil && c.accessKey != "" && c.endpoint != ""
}

// Submit 提交表单，仅以响应中的 success 字段判断结果，不做重试
func (c *Client) Submit(ctx context.Context, submission Submission) error {
	if !c.Configured() {
		return ErrRelayNotConfigured
	}
	_, err := c.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, c.post(ctx, submission)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %v", ErrRelayUnavailable, err)
	}
	return err
}

func (c *Client) post(ctx context.Context, submission Submission) error {
	form := url.Values{}
	form.Set("access_key", c.accessKey)
	form.Set("subject", submission.Subject)
	form.Set("from_name", submission.FromName)
	form.Set("message", submission.Message)
	if submission.Email != "" {
		form.Set("email", submission.Email)
	}
	if submission.ReplyTo != "" {
		form.Set("replyto", submission.ReplyTo)
	}
	if c.recipient != "" {
		form.Set("to", c.recipient)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: http status %d", ErrRequestFailed, resp.StatusCode)
	}

	var parsed submitResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return fmt.Errorf("%w: invalid response: %v", ErrRelayRejected, err)
	}
	if !parsed.Success {
		return fmt.Errorf("%w: %s", ErrRelayRejected, parsed.Message)
	}
	return nil
}
