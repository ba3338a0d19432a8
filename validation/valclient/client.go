package valclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/skilldev/backend/metrics"
	"github.com/skilldev/backend/validation"
)

// Client asks a remote validation service for verdicts. Every call is bound
// by the configured timeout on top of the caller's context.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		timeout:    timeout,
	}
}

type response struct {
	Status  string            `json:"status"`
	Data    validation.Result `json:"data"`
	ErrCode string            `json:"code"`
	ErrMsg  string            `json:"message"`
}

func (c *Client) Validate(ctx context.Context, req validation.Request) (validation.Result, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	body, err := json.Marshal(req)
	if err != nil {
		return validation.Result{}, fmt.Errorf("failed to marshal %s request: %w", req.Kind(), err)
	}

	url := fmt.Sprintf("%s/validate/%s", c.baseURL, req.Kind())
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return validation.Result{}, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return validation.Result{}, fmt.Errorf("failed to call validation service: %w", err)
	}
	defer httpResp.Body.Close()

	var resp response
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return validation.Result{}, fmt.Errorf("failed to decode validation response (status %d): %w",
			httpResp.StatusCode, err)
	}
	if httpResp.StatusCode != http.StatusOK || resp.Status != "success" {
		return validation.Result{}, fmt.Errorf("validation service error (status %d, code %q): %s",
			httpResp.StatusCode, resp.ErrCode, resp.ErrMsg)
	}

	res := resp.Data
	if res.Errors == nil {
		res.Errors = []string{}
	}
	// a verdict must carry errors exactly when it is negative
	if res.Valid != (len(res.Errors) == 0) {
		return validation.Result{}, fmt.Errorf("inconsistent validation result: valid=%t with %d errors",
			res.Valid, len(res.Errors))
	}
	metrics.RecordValidation(string(req.Kind()), res.Valid)
	return res, nil
}
