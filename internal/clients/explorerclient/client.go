package explorerclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"

	"github.com/aleotools/aleo-tvl-adapter/internal/clients/client"
	"github.com/aleotools/aleo-tvl-adapter/internal/config"
	"github.com/aleotools/aleo-tvl-adapter/internal/types"
)

// Endpoint candidates for the committee, probed in order; explorers differ
// on whether the "latest/" prefix form is served.
var committeeEndpoints = []string{"/latest/committee", "/committee"}

const (
	latestHeightEndpoint   = "/latest/height"
	bondedEndpointTemplate = "/block/{height}/history/bonded"
)

type Client struct {
	httpClient *http.Client
	cfg        *config.ExplorerConfig
}

func NewClient(cfg *config.ExplorerConfig) *Client {
	if cfg == nil {
		return nil
	}

	return &Client{
		httpClient: &http.Client{},
		cfg:        cfg,
	}
}

func (c *Client) GetBaseURL() string {
	return strings.TrimSuffix(c.cfg.APIRoot, "/") + "/" + c.cfg.Network
}

func (c *Client) GetDefaultRequestTimeout() time.Duration {
	return c.cfg.Timeout
}

func (c *Client) GetHttpClient() *http.Client {
	return c.httpClient
}

// GetCommittee probes the committee endpoint candidates in order and returns
// the first response that normalizes to at least one entry. A candidate's
// transport failure is swallowed so the next form can be tried; only when
// every candidate is exhausted does the call fail, with
// types.CommitteeUnavailableError.
func (c *Client) GetCommittee(ctx context.Context) (types.Committee, error) {
	for _, endpoint := range committeeEndpoints {
		raw, err := c.fetchRaw(ctx, endpoint, endpoint)
		if err != nil {
			log.Ctx(ctx).Debug().
				Err(err).
				Str("endpoint", endpoint).
				Msg("committee endpoint candidate failed, trying next")
			continue
		}

		committee := types.ParseCommittee(raw)
		if len(committee) > 0 {
			return committee, nil
		}
		log.Ctx(ctx).Debug().
			Str("endpoint", endpoint).
			Msg("committee endpoint candidate returned no usable rows, trying next")
	}

	return nil, &types.CommitteeUnavailableError{
		Message: fmt.Sprintf("no committee data available from %s", c.GetBaseURL()),
	}
}

// LatestHeight accepts a bare number, a quoted numeric string, or an object
// carrying a height field. Unlike GetCommittee there is no candidate
// probing: a failure here aborts the whole computation.
func (c *Client) LatestHeight(ctx context.Context) (uint64, error) {
	raw, err := c.fetchRaw(ctx, latestHeightEndpoint, latestHeightEndpoint)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch latest height: %w", err)
	}

	height, err := parseHeight(raw)
	if err != nil {
		return 0, fmt.Errorf("failed to parse latest height response: %w", err)
	}
	return height, nil
}

// BondedAtHeight returns every bonded row the explorer reports at the given
// height, amounts left raw. Both the pair-array form and the
// address-to-amount object form are accepted.
func (c *Client) BondedAtHeight(ctx context.Context, height uint64) ([]types.BondedRow, error) {
	endpoint := fmt.Sprintf("/block/%d/history/bonded", height)
	raw, err := c.fetchRaw(ctx, endpoint, bondedEndpointTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bonded rows at height %d: %w", height, err)
	}

	rows, err := parseBondedRows(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bonded rows at height %d: %w", height, err)
	}
	return rows, nil
}

func (c *Client) fetchRaw(ctx context.Context, path, templatePath string) (json.RawMessage, error) {
	type empty struct{}

	call := func() (*json.RawMessage, error) {
		opts := &client.HttpClientOptions{
			Path:         path,
			TemplatePath: templatePath,
		}
		return client.SendRequest[empty, json.RawMessage](ctx, c, http.MethodGet, opts, nil)
	}

	raw, err := clientCallWithRetry(ctx, call, c.cfg)
	if err != nil {
		return nil, err
	}
	return *raw, nil
}

func parseHeight(raw json.RawMessage) (uint64, error) {
	var v any
	dec := json.NewDecoder(strings.NewReader(string(raw)))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return 0, err
	}
	return heightValue(v)
}

func heightValue(v any) (uint64, error) {
	switch t := v.(type) {
	case json.Number:
		return strconv.ParseUint(t.String(), 10, 64)
	case string:
		return strconv.ParseUint(strings.TrimSpace(t), 10, 64)
	case map[string]any:
		h, ok := t["height"]
		if !ok {
			return 0, fmt.Errorf("height field missing in object response")
		}
		return heightValue(h)
	default:
		return 0, fmt.Errorf("unsupported height response shape %T", v)
	}
}

func parseBondedRows(raw json.RawMessage) ([]types.BondedRow, error) {
	// Pair-array form: [[address, amount], ...]
	var pairs [][]json.RawMessage
	if err := json.Unmarshal(raw, &pairs); err == nil {
		rows := make([]types.BondedRow, 0, len(pairs))
		for _, pair := range pairs {
			if len(pair) < 2 {
				continue
			}
			var addr string
			if err := json.Unmarshal(pair[0], &addr); err != nil || addr == "" {
				continue
			}
			rows = append(rows, types.BondedRow{Address: addr, Amount: pair[1]})
		}
		return rows, nil
	}

	// Object form: {address: amount, ...}
	var byAddress map[string]json.RawMessage
	if err := json.Unmarshal(raw, &byAddress); err != nil {
		return nil, fmt.Errorf("unrecognized bonded response shape")
	}
	rows := make([]types.BondedRow, 0, len(byAddress))
	for addr, amount := range byAddress {
		if addr == "" {
			continue
		}
		rows = append(rows, types.BondedRow{Address: addr, Amount: amount})
	}
	return rows, nil
}

func clientCallWithRetry[T any](
	ctx context.Context,
	call retry.RetryableFuncWithData[*T],
	cfg *config.ExplorerConfig,
) (*T, error) {
	result, err := retry.DoWithData(call,
		retry.Context(ctx),
		retry.Attempts(cfg.MaxRetryTimes),
		retry.Delay(cfg.RetryInterval),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Ctx(ctx).Debug().
				Uint("attempt", n+1).
				Uint("max_attempts", cfg.MaxRetryTimes).
				Err(err).
				Msg("explorer request failed, retrying with exponential backoff")
		}))
	if err != nil {
		return nil, err
	}
	return result, nil
}
