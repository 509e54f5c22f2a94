package decimals

import (
	"encoding/json"
	"testing"

	"github.com/bpmon-network/bpmon/common/errs"
	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVoteWeight(t *testing.T) {
	testcases := []struct {
		raw      string
		expected string
	}{
		{"123000000000.0000", "123"},
		{"123000000000", "123"},
		{"0.00000000000000000", "0"},
		{"1", "0.000000001"},
		{"1500000000.5000", "1.5000000005"},
		{"98765432109876543210.00000000000000000", "98765432109.87654321"},
	}
	for _, tc := range testcases {
		t.Run(tc.raw, func(t *testing.T) {
			actual, err := VoteWeight(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual.String())
		})
	}

	t.Run("equal_to_float", func(t *testing.T) {
		actual, err := VoteWeight("123000000000.0000")
		require.NoError(t, err)
		assert.True(t, actual.Equal(decimal.NewFromFloat(123.0)))
	})

	t.Run("invalid", func(t *testing.T) {
		for _, raw := range []string{"", "  ", "abc", "12e"} {
			_, err := VoteWeight(raw)
			assert.True(t, errors.Is(err, errs.InvalidArgument), "raw %q", raw)
		}
	})
}

func TestMarshalJSONWithoutQuotes(t *testing.T) {
	data, err := json.Marshal(struct {
		Weight decimal.Decimal `json:"weight"`
	}{MustFromString("123.50")})
	require.NoError(t, err)
	assert.Equal(t, `{"weight":123.5}`, string(data))
}
