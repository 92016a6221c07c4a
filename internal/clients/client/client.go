package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/aleotools/aleo-tvl-adapter/internal/observability/metrics"
)

// HttpClient is implemented by service clients that delegate raw request
// handling to SendRequest.
type HttpClient interface {
	GetBaseURL() string
	GetDefaultRequestTimeout() time.Duration
	GetHttpClient() *http.Client
}

// HttpClientOptions carries per-request settings. TemplatePath is the path
// without interpolated values and is used as the metrics label so that e.g.
// every block height does not mint a new label value.
type HttpClientOptions struct {
	Path         string
	TemplatePath string
	Headers      map[string]string
	Timeout      time.Duration
}

// SendRequest performs a JSON round trip against the client's base URL and
// decodes the response body into O. A non-2xx status is an error carrying
// the status code and (truncated) body.
func SendRequest[I, O any](
	ctx context.Context, client HttpClient, method string, opts *HttpClientOptions, input *I,
) (*O, error) {
	timeout := client.GetDefaultRequestTimeout()
	if opts.Timeout > 0 {
		timeout = opts.Timeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	url := client.GetBaseURL() + opts.Path

	var body io.Reader
	if input != nil {
		encoded, err := json.Marshal(input)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", url, err)
	}
	req.Header.Set("Accept", "application/json")
	if input != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := client.GetHttpClient().Do(req)
	duration := time.Since(start)
	if err != nil {
		metrics.RecordClientRequestDuration(client.GetBaseURL(), method, opts.TemplatePath, 0, duration)
		return nil, fmt.Errorf("request to %s failed: %w", url, err)
	}
	defer resp.Body.Close()

	metrics.RecordClientRequestDuration(client.GetBaseURL(), method, opts.TemplatePath, resp.StatusCode, duration)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		if resp.StatusCode == http.StatusTooManyRequests {
			return nil, fmt.Errorf("rate limit exceeded when calling %s", url)
		}
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("unexpected status %d from %s: %s", resp.StatusCode, url, snippet)
	}

	var output O
	if err := json.NewDecoder(resp.Body).Decode(&output); err != nil {
		return nil, fmt.Errorf("failed to decode response from %s: %w", url, err)
	}

	return &output, nil
}
