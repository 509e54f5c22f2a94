package chainclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/bpmon-network/bpmon/common/errs"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNameHash(t *testing.T) {
	testCases := []struct {
		name     string
		expected string
	}{
		{name: "", expected: "0x90186095efbf55320d4b6b5eeea339da"},
		{name: "abc", expected: "0x6cc2507871253eba6a810647363e99a9"},
		{name: "fiomembers", expected: "0xf423f8dca1d884a73034cc921927f85f"},
		{name: "proxy@fiomembers", expected: "0xd701de065666ea413326fd3d95e567ef"},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%q", tc.name), func(t *testing.T) {
			assert.Equal(t, tc.expected, NameHash(tc.name))
		})
	}
}

type tableServer struct {
	mu       sync.Mutex
	requests []getTableRowsRequest
	handler  func(req getTableRowsRequest) (int, any)
}

func (s *tableServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != getTableRowsPath {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	var req getTableRowsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.mu.Unlock()

	status, body := s.handler(req)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func newTestClient(t *testing.T, handler func(req getTableRowsRequest) (int, any)) (*Client, *tableServer) {
	t.Helper()
	ts := &tableServer{handler: handler}
	srv := httptest.NewServer(ts)
	t.Cleanup(srv.Close)

	client, err := New(srv.URL, Config{Timeout: 5 * time.Second, PageSize: 2})
	require.NoError(t, err)
	return client, ts
}

func voterRows(ids ...uint64) []map[string]any {
	rows := make([]map[string]any, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, map[string]any{
			"id":               id,
			"fioaddress":       "",
			"owner":            fmt.Sprintf("voter%d", id),
			"proxy":            "",
			"producers":        []string{"bp1"},
			"last_vote_weight": "1000000000.00000000000000000",
			"is_proxy":         0,
		})
	}
	return rows
}

func TestGetVoters(t *testing.T) {
	t.Run("paginates until more is false", func(t *testing.T) {
		client, ts := newTestClient(t, func(req getTableRowsRequest) (int, any) {
			switch req.LowerBound {
			case "0":
				return http.StatusOK, map[string]any{"rows": voterRows(0, 1), "more": true}
			case "2":
				return http.StatusOK, map[string]any{"rows": voterRows(2, 5), "more": true}
			case "6":
				return http.StatusOK, map[string]any{"rows": voterRows(6), "more": false}
			}
			return http.StatusBadRequest, map[string]any{}
		})

		voters, err := client.GetVoters(context.Background())
		require.NoError(t, err)
		require.Len(t, voters, 5)
		assert.Equal(t, []uint64{0, 1, 2, 5, 6}, []uint64{voters[0].ID, voters[1].ID, voters[2].ID, voters[3].ID, voters[4].ID})
		assert.Equal(t, "voter5", voters[3].Owner)

		require.Len(t, ts.requests, 3)
		for _, req := range ts.requests {
			assert.Equal(t, "eosio", req.Code)
			assert.Equal(t, "voters", req.Table)
			assert.Equal(t, "2", req.Limit)
			assert.True(t, req.JSON)
		}
	})

	t.Run("maps proxy fields", func(t *testing.T) {
		client, _ := newTestClient(t, func(getTableRowsRequest) (int, any) {
			return http.StatusOK, map[string]any{"rows": []map[string]any{{
				"id":               7,
				"fioaddress":       "proxy@fiomembers",
				"owner":            "proxyowner",
				"proxy":            " ",
				"producers":        []string{"bp1", "bp2"},
				"last_vote_weight": "5000000000.00000000000000000",
				"is_proxy":         1,
			}}, "more": false}
		})

		voters, err := client.GetVoters(context.Background())
		require.NoError(t, err)
		require.Len(t, voters, 1)
		assert.True(t, voters[0].IsProxy)
		assert.Empty(t, voters[0].Proxy)
		assert.Equal(t, "proxy@fiomembers", voters[0].FIOAddress)
		assert.Equal(t, []string{"bp1", "bp2"}, voters[0].Producers)
	})

	t.Run("page failure fails the snapshot", func(t *testing.T) {
		client, _ := newTestClient(t, func(req getTableRowsRequest) (int, any) {
			if req.LowerBound == "0" {
				return http.StatusOK, map[string]any{"rows": voterRows(0, 1), "more": true}
			}
			return http.StatusInternalServerError, map[string]any{"error": "busy"}
		})

		voters, err := client.GetVoters(context.Background())
		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ProtocolMismatch))
		assert.Nil(t, voters)
	})

	t.Run("missing rows", func(t *testing.T) {
		client, _ := newTestClient(t, func(getTableRowsRequest) (int, any) {
			return http.StatusOK, map[string]any{"more": false}
		})

		_, err := client.GetVoters(context.Background())
		require.Error(t, err)
	})
}

func TestValidateHandle(t *testing.T) {
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	handleKey := NameHash("proxy@fiomembers")
	domainKey := NameHash("fiomembers")

	registry := func(handleExists bool, expiration time.Time) func(req getTableRowsRequest) (int, any) {
		return func(req getTableRowsRequest) (int, any) {
			switch {
			case req.Table == "fionames" && req.LowerBound == handleKey && req.IndexPosition == 5 && req.KeyType == "i128":
				if !handleExists {
					return http.StatusOK, map[string]any{"rows": []any{}, "more": false}
				}
				return http.StatusOK, map[string]any{"rows": []any{map[string]any{"name": "proxy@fiomembers"}}, "more": false}
			case req.Table == "domains" && req.LowerBound == domainKey && req.IndexPosition == 4 && req.KeyType == "i128":
				return http.StatusOK, map[string]any{"rows": []any{map[string]any{"name": "fiomembers", "expiration": expiration.Unix()}}, "more": false}
			}
			return http.StatusBadRequest, map[string]any{}
		}
	}

	testCases := []struct {
		name     string
		handle   string
		handler  func(req getTableRowsRequest) (int, any)
		expected bool
		skipped  bool
	}{
		{
			name:     "registered handle with live domain",
			handle:   "proxy@fiomembers",
			handler:  registry(true, now.Add(24*time.Hour)),
			expected: true,
		},
		{
			name:     "expired domain",
			handle:   "proxy@fiomembers",
			handler:  registry(true, now.Add(-time.Hour)),
			expected: false,
		},
		{
			name:     "unknown handle",
			handle:   "proxy@fiomembers",
			handler:  registry(false, now.Add(24*time.Hour)),
			expected: false,
		},
		{
			name:     "malformed handle",
			handle:   "proxy",
			handler:  registry(true, now.Add(24*time.Hour)),
			expected: false,
		},
		{
			name:   "registry error",
			handle: "proxy@fiomembers",
			handler: func(getTableRowsRequest) (int, any) {
				return http.StatusInternalServerError, map[string]any{}
			},
			expected: false,
			skipped:  true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client, _ := newTestClient(t, tc.handler)
			client.now = func() time.Time { return now }

			ok, err := client.ValidateHandle(context.Background(), tc.handle)
			assert.Equal(t, tc.expected, ok)
			if tc.skipped {
				require.Error(t, err)
				assert.True(t, errors.Is(err, errs.ValidationSkipped))
				return
			}
			require.NoError(t, err)
		})
	}
}
