package decimals

import (
	"strings"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/bpmon-network/bpmon/common/errs"
	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
)

const (
	DefaultDivPrecision = 36

	// VoteWeightDecimals is the fixed-point scale of on-chain vote weights.
	VoteWeightDecimals = 9
)

func init() {
	decimal.DivisionPrecision = DefaultDivPrecision

	// weights are stored as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
}

// MustFromString convert string to decimal.Decimal. Panic if error
// string must be a valid number, not NaN, Inf or empty string.
func MustFromString(s string) decimal.Decimal {
	return utils.Must(decimal.NewFromString(s))
}

// FromFixedPoint converts a fixed-point integer string scaled by 10^decimals into its
// decimal value. Fractional digits in the input are kept, e.g. "123000000000.0000" with 9
// decimals is 123.
func FromFixedPoint(s string, decimals uint16) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, errors.Wrap(errs.InvalidArgument, "empty fixed-point value")
	}
	value, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, errors.Wrapf(errs.InvalidArgument, "invalid fixed-point value %q", s)
	}
	return value.Shift(-int32(decimals)), nil
}

// VoteWeight normalizes a raw vote weight.
func VoteWeight(raw string) (decimal.Decimal, error) {
	return FromFixedPoint(raw, VoteWeightDecimals)
}
