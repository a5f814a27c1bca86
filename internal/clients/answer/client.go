package answer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/msc-superfriend/refgateway/internal/domain"
	"github.com/msc-superfriend/refgateway/internal/platform/apierr"
	"github.com/msc-superfriend/refgateway/internal/platform/logger"
)

// Client talks to the external question-answering service.
type Client interface {
	Ask(ctx context.Context, question string) (*domain.AskAnswer, error)
}

type Config struct {
	BaseURL string
	Timeout time.Duration
}

type client struct {
	log        *logger.Logger
	baseURL    string
	httpClient *http.Client
}

func New(log *logger.Logger, cfg Config) (Client, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, fmt.Errorf("missing answer service base URL")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 25 * time.Second
	}
	return &client{
		log:        log.With("client", "answer"),
		baseURL:    base,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

type askRequest struct {
	Question string `json:"question"`
}

func (c *client) Ask(ctx context.Context, question string) (*domain.AskAnswer, error) {
	body, err := json.Marshal(askRequest{Question: question})
	if err != nil {
		return nil, apierr.New(http.StatusInternalServerError, "internal_error", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/ask", bytes.NewReader(body))
	if err != nil {
		return nil, apierr.New(http.StatusInternalServerError, "internal_error", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("answer service unreachable", "error", err)
		return nil, apierr.New(http.StatusBadGateway, "answer_service_unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		err := fmt.Errorf("answer service returned %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
		c.log.Warn("answer service error", "status", resp.StatusCode)
		return nil, apierr.New(http.StatusBadGateway, upstreamCode(resp.StatusCode), err)
	}

	var out domain.AskAnswer
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, apierr.New(http.StatusBadGateway, "answer_service_bad_response", err)
	}
	return &out, nil
}

// upstreamCode maps the upstream status class to a stable error code so
// callers can distinguish a misdeployed endpoint from throttling.
func upstreamCode(status int) string {
	switch {
	case status == http.StatusNotFound:
		return "answer_endpoint_misconfigured"
	case status == http.StatusTooManyRequests:
		return "answer_service_rate_limited"
	case status >= 500:
		return "answer_service_error"
	default:
		return "answer_service_rejected"
	}
}
