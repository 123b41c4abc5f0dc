package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/reservo"
	"golang.org/x/net/publicsuffix"
	"golang.org/x/time/rate"
)

// DefaultClientTimeout is the default timeout for API requests.
const DefaultClientTimeout = 15 * time.Second

// Client is a client for the remote reservation API. Sessions are tracked
// with a cookie jar, so a Client that logged in stays authenticated for all
// services built on it.
type Client struct {
	baseURL *url.URL
	client  *http.Client
	limiter *rate.Limiter
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets the underlying HTTP client. Its cookie jar is
// replaced when nil.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(cl *Client) {
		cl.client = c
	}
}

// WithRateLimit limits outgoing requests to rps per second with the given burst.
func WithRateLimit(rps float64, burst int) ClientOption {
	return func(cl *Client) {
		cl.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// NewClient creates a Client for the API rooted at baseURL.
func NewClient(baseURL string, opts ...ClientOption) (*Client, error) {
	u, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, reservo.Errorf(reservo.EINVALID, "invalid API URL %q", baseURL)
	}

	c := &Client{baseURL: u}
	for _, opt := range opts {
		opt(c)
	}
	if c.client == nil {
		c.client = &http.Client{Timeout: DefaultClientTimeout}
	}
	if c.client.Jar == nil {
		jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
		if err != nil {
			return nil, fmt.Errorf("failed to create cookie jar: %w", err)
		}
		c.client.Jar = jar
	}
	return c, nil
}

// errorResponse is the error body returned by the API.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// do sends a JSON request and decodes the JSON response into out.
// A nil out discards the response body.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	u := *c.baseURL
	u.Path = c.baseURL.Path + path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return parseErrorResponse(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}
	return nil
}

// parseErrorResponse converts an API error response into an application error.
func parseErrorResponse(resp *http.Response) error {
	msg := http.StatusText(resp.StatusCode)

	var e errorResponse
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if json.Unmarshal(b, &e) == nil {
		switch {
		case e.Error != "":
			msg = e.Error
		case e.Message != "":
			msg = e.Message
		}
	}

	return reservo.Errorf(ErrorCodeForStatus(resp.StatusCode), "%s", msg)
}

// ErrorCodeForStatus maps an HTTP status code to an application error code.
func ErrorCodeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return reservo.EINVALID
	case http.StatusUnauthorized, http.StatusForbidden:
		return reservo.EUNAUTHORIZED
	case http.StatusNotFound:
		return reservo.ENOTFOUND
	case http.StatusConflict:
		return reservo.ECONFLICT
	}
	return reservo.EINTERNAL
}

// decodeEnvelope decodes raw into out, unwrapping {"<key>": ...} when the
// API wraps its payload.
func decodeEnvelope(raw json.RawMessage, key string, out any) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var env map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &env); err == nil {
			if inner, ok := env[key]; ok {
				return json.Unmarshal(inner, out)
			}
			if inner, ok := env["data"]; ok {
				return json.Unmarshal(inner, out)
			}
		}
	}
	return json.Unmarshal(trimmed, out)
}
