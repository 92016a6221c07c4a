package types

import (
	"encoding/json"
	"math/big"
	"regexp"
	"strings"

	sdkmath "cosmossdk.io/math"
)

var digitRun = regexp.MustCompile(`[0-9]+`)

// ParseAmount converts a raw stake value of unknown shape into an exact
// amount of microcredits. Explorer responses encode amounts inconsistently:
// bare numbers, decimal strings, labeled strings ("microcredits: 123") and
// suffixed literals ("123u64") all occur in the wild.
//
// Malformed input never fails the computation; anything unparsable
// contributes zero. Non-integral numeric input truncates toward zero, and
// negative input clamps to zero.
func ParseAmount(raw any) sdkmath.Int {
	switch v := raw.(type) {
	case nil:
		return sdkmath.ZeroInt()
	case json.Number:
		return parseNumber(v.String())
	case string:
		return parseDigitRun(v)
	case float64:
		// Only reachable when the caller decoded without UseNumber.
		i, _ := big.NewFloat(v).Int(nil)
		return clampNonNegative(sdkmath.NewIntFromBigInt(i))
	case int:
		return clampNonNegative(sdkmath.NewInt(int64(v)))
	case int64:
		return clampNonNegative(sdkmath.NewInt(v))
	case uint64:
		return sdkmath.NewIntFromUint64(v)
	case sdkmath.Int:
		return clampNonNegative(v)
	default:
		return sdkmath.ZeroInt()
	}
}

// ParseRawAmount decodes a JSON fragment and parses it as an amount.
// Strings nested one level deep keep their exactness because the decoder
// is configured to surface numbers as json.Number.
func ParseRawAmount(raw json.RawMessage) sdkmath.Int {
	if len(raw) == 0 {
		return sdkmath.ZeroInt()
	}

	var v any
	dec := json.NewDecoder(strings.NewReader(string(raw)))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return sdkmath.ZeroInt()
	}
	return ParseAmount(v)
}

func parseNumber(s string) sdkmath.Int {
	if i, ok := new(big.Int).SetString(s, 10); ok {
		return clampNonNegative(sdkmath.NewIntFromBigInt(i))
	}

	// Fractional or exponent-form number. Truncate toward zero.
	f, ok := new(big.Float).SetString(s)
	if !ok {
		return sdkmath.ZeroInt()
	}
	i, _ := f.Int(nil)
	return clampNonNegative(sdkmath.NewIntFromBigInt(i))
}

// parseDigitRun extracts the first contiguous run of decimal digits. A
// decimal point therefore splits the value and only the integer part before
// it is captured ("12.5" parses as 12); bonded amounts are integral
// microcredits by convention so this does not lose data in practice.
func parseDigitRun(s string) sdkmath.Int {
	digits := digitRun.FindString(s)
	if digits == "" {
		return sdkmath.ZeroInt()
	}
	i, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return sdkmath.ZeroInt()
	}
	return sdkmath.NewIntFromBigInt(i)
}

func clampNonNegative(i sdkmath.Int) sdkmath.Int {
	if i.IsNegative() {
		return sdkmath.ZeroInt()
	}
	return i
}
