package integrations

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	apperrors "github.com/metaboclass/metaboclass/pkg/errors"
	"github.com/metaboclass/metaboclass/pkg/observability"
)

// Client provides shared HTTP functionality for the database API clients.
// It issues one synchronous request at a time with a per-call deadline and
// classifies failures into coded errors.
type Client struct {
	http    *http.Client
	headers map[string]string
}

// NewClient creates a Client with the given default headers.
// Headers are applied to all requests made through this client.
// Pass nil for headers if no default headers are needed.
func NewClient(headers map[string]string) *Client {
	return &Client{
		http:    &http.Client{},
		headers: headers,
	}
}

// GetJSON performs an HTTP GET bounded by timeout and JSON-decodes the
// response body into v. Decode failures are reported as PARSE_ERROR.
func (c *Client) GetJSON(ctx context.Context, url string, timeout time.Duration, v any) error {
	body, err := c.doRequest(ctx, url, timeout)
	if err != nil {
		return err
	}
	defer body.Close()
	if err := json.NewDecoder(body).Decode(v); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeParse, err, "decode json from %s", url)
	}
	return nil
}

// GetText performs an HTTP GET bounded by timeout and returns the response
// body as a string. Useful for the line-oriented flat-text endpoints.
func (c *Client) GetText(ctx context.Context, url string, timeout time.Duration) (string, error) {
	body, err := c.doRequest(ctx, url, timeout)
	if err != nil {
		return "", err
	}
	defer body.Close()
	data, err := io.ReadAll(body)
	if err != nil {
		return "", classifyTransportErr(err, url)
	}
	return string(data), nil
}

func (c *Client) doRequest(ctx context.Context, rawURL string, timeout time.Duration) (io.ReadCloser, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		// The cancel func must outlive the body read; tie it to body close.
		body, err := c.send(ctx, rawURL)
		if err != nil {
			cancel()
			return nil, err
		}
		return &cancelReadCloser{ReadCloser: body, cancel: cancel}, nil
	}
	return c.send(ctx, rawURL)
}

func (c *Client) send(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "build request for %s", rawURL)
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	host, path := hostPath(req.URL)
	observability.HTTP().OnRequest(ctx, http.MethodGet, host, path)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		cerr := classifyTransportErr(err, rawURL)
		observability.HTTP().OnError(ctx, http.MethodGet, host, path, cerr)
		return nil, cerr
	}
	observability.HTTP().OnResponse(ctx, http.MethodGet, host, path, resp.StatusCode, time.Since(start))

	if err := checkStatus(resp.StatusCode, rawURL); err != nil {
		resp.Body.Close()
		return nil, err
	}
	return resp.Body, nil
}

func checkStatus(code int, url string) error {
	if code >= 200 && code < 300 {
		return nil
	}
	return apperrors.New(apperrors.ErrCodeNetwork, "unexpected status %d from %s", code, url)
}

func classifyTransportErr(err error, url string) error {
	if isTimeout(err) {
		return apperrors.Wrap(apperrors.ErrCodeTimeout, err, "request to %s exceeded deadline", url)
	}
	return apperrors.Wrap(apperrors.ErrCodeNetwork, err, "request to %s failed", url)
}

func hostPath(u *url.URL) (string, string) {
	if u == nil {
		return "", ""
	}
	return u.Host, u.Path
}

// cancelReadCloser releases the per-request context when the body is closed.
type cancelReadCloser struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c *cancelReadCloser) Close() error {
	err := c.ReadCloser.Close()
	c.cancel()
	return err
}
