// Package remote forwards data access to the upstream dashboard API (live mode).
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core"
)

// ErrUnreachable is returned when the upstream API cannot be reached.
var ErrUnreachable = errors.New("Unable to connect to the API server. Please check your network connection or contact support if the issue persists.")

// APIError is a non-2xx answer from the upstream API.
type APIError struct {
	Status  int
	Message string
}

func (err *APIError) Error() string {
	return err.Message
}

// IsUpstreamError reports whether err comes from talking to the upstream API.
func IsUpstreamError(err error) bool {
	cause := errors.Cause(err)
	_, ok := cause.(*APIError)
	return ok || cause == ErrUnreachable
}

type Client struct {
	baseURL string
	token   string
	http    *http.Client
	log     core.Logger
}

func NewClient(conf core.APIConfig, logger core.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(conf.BaseURL, "/"),
		token:   conf.Token,
		http:    &http.Client{Timeout: conf.Timeout},
		log:     logger,
	}
}

func (c *Client) get(ctx context.Context, endpoint string, out interface{}, notFound error) error {
	return c.do(ctx, http.MethodGet, endpoint, nil, out, notFound)
}

func (c *Client) post(ctx context.Context, endpoint string, in, out interface{}) error {
	return c.do(ctx, http.MethodPost, endpoint, in, out, nil)
}

// do sends the request and decodes the JSON answer into out.
// A 404 is reported as notFound when it is set.
func (c *Client) do(ctx context.Context, method, endpoint string, in, out interface{}, notFound error) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return errors.Wrap(err, "encoding request body")
		}
		body = bytes.NewReader(data)
	}

	target := c.baseURL + endpoint
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return errors.Wrap(err, "building request")
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	c.log.Debug(fmt.Sprintf("API Request: %s %s", method, target))
	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		c.log.Error("API Connection Error: the API server is unreachable", err)
		return ErrUnreachable
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if resp.StatusCode == http.StatusNotFound && notFound != nil {
			return notFound
		}
		return c.apiError(resp)
	}

	if out == nil {
		return nil
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "decoding %s %s", method, endpoint)
	}
	return nil
}

// apiError uses the body's "message" when there is one.
func (c *Client) apiError(resp *http.Response) error {
	apiErr := &APIError{
		Status:  resp.StatusCode,
		Message: fmt.Sprintf("API request failed with status %d", resp.StatusCode),
	}
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Message != "" {
		apiErr.Message = payload.Message
	}
	c.log.Error("API request error", apiErr, map[string]interface{}{"status": resp.StatusCode})
	return apiErr
}

func withQuery(endpoint string, q url.Values) string {
	if len(q) == 0 {
		return endpoint
	}
	return endpoint + "?" + q.Encode()
}
