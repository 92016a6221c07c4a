package aleotvl

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureSink struct {
	amount sdkmath.Int
}

func (s *captureSink) AddCGToken(symbol string, amount sdkmath.Int) {
	s.amount = amount
}

func TestTotalStaked_EndToEnd(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/mainnet/latest/committee", r.URL.Path)
		w.Write([]byte(`{"committee": [
			{"address": "aleo1aaa", "stake": "microcredits: 1000000"},
			{"address": "aleo1bbb", "stake": "2000000u64"}
		]}`))
	}))
	defer server.Close()

	t.Setenv("ALEO_TVL_EXPLORER_API_ROOT", server.URL)
	t.Setenv("ALEO_TVL_EXPLORER_RETRY_INTERVAL", "10ms")

	total, err := TotalStaked(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3_000_000), total.Int64())
}

func TestReportTVL_EndToEnd_FallbackPath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/mainnet/latest/committee":
			w.Write([]byte(`["aleo1aaa", "aleo1bbb"]`))
		case "/mainnet/latest/height":
			w.Write([]byte(`{"height": 77}`))
		case "/mainnet/block/77/history/bonded":
			w.Write([]byte(`[
				["aleo1aaa", "microcredits: 100"],
				["aleo1bbb", "200u64"],
				["aleo1outsider", 12345]
			]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	t.Setenv("ALEO_TVL_EXPLORER_API_ROOT", server.URL)
	t.Setenv("ALEO_TVL_EXPLORER_RETRY_INTERVAL", "10ms")

	sink := &captureSink{}
	require.NoError(t, ReportTVL(context.Background(), sink))
	assert.Equal(t, int64(300), sink.amount.Int64())
}

func TestMethodologyIsDocumented(t *testing.T) {
	assert.NotEmpty(t, Methodology)
	assert.Contains(t, Methodology, "committee")
}
