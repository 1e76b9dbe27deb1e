package types

import (
	"github.com/pkg/errors"
)

// numericShifts[i] == 10^i, precomputed up to the largest scale a 64-bit
// fixed-point value can carry. Mirrors Types.hpp's numericShifts table.
var numericShifts = [19]int64{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000,
	1000000000, 10000000000, 100000000000, 1000000000000, 10000000000000,
	100000000000000, 1000000000000000, 10000000000000000,
	100000000000000000, 1000000000000000000,
}

// Numeric is a signed 64-bit fixed-point decimal: Raw stores the
// mathematical value multiplied by 10^Scale. Unlike the reference
// engine's Numeric<len,precision> template, Scale is a runtime field —
// Go has no const-value generics — but the same invariant holds:
// Raw == value * 10^Scale.
type Numeric struct {
	Raw   int64
	Scale uint8
}

// Hash mixes the raw stored value through the shared xorshift hash.
// Two Numerics with equal Raw but different Scale are different values
// and hash differently only insofar as their Raw bits differ — Scale
// itself is metadata, not part of the hashed bit pattern, matching the
// reference engine hashing only the underlying int64 storage.
func (v Numeric) Hash() uint64 {
	return MixHash64(uint64(v.Raw))
}

// NumericFromInteger constructs a Numeric of the given scale from a
// whole-number Integer, scaling by 10^scale.
func NumericFromInteger(v Integer, scale uint8) Numeric {
	return Numeric{Raw: int64(v) * pow10(scale), Scale: scale}
}

// Mul multiplies two Numerics; the result scale is the sum of the
// operand scales.
func (v Numeric) Mul(o Numeric) Numeric {
	return Numeric{Raw: v.Raw * o.Raw, Scale: v.Scale + o.Scale}
}

// Div divides v by o; division by Numeric<_,p> premultiplies the
// dividend by 10^p so the quotient keeps v's original scale.
func (v Numeric) Div(o Numeric) Numeric {
	return Numeric{Raw: (v.Raw * pow10(o.Scale)) / o.Raw, Scale: v.Scale}
}

// Add requires equal scales; the engine never adds Numerics of differing
// scale without an explicit rescale step upstream.
func (v Numeric) Add(o Numeric) Numeric {
	return Numeric{Raw: v.Raw + o.Raw, Scale: v.Scale}
}

func pow10(scale uint8) int64 {
	if int(scale) < len(numericShifts) {
		return numericShifts[scale]
	}
	r := int64(1)
	for i := uint8(0); i < scale; i++ {
		r *= 10
	}
	return r
}

// ParseNumeric parses an optionally signed decimal literal into a
// Numeric of the given scale, following Types.hpp's Numeric::castString:
// an optional sign, an integer part, an optional '.' fraction. Missing
// fractional digits are zero-padded up to scale; fractional digits in
// excess of scale are a ParseError (the reference engine truncates
// silently in release builds but asserts in debug — this port always
// treats excess fractional digits as an error).
func ParseNumeric(s string, scale uint8) (Numeric, error) {
	s = trimSpace(s)
	if s == "" {
		return Numeric{}, errors.New("parse numeric: empty literal")
	}
	neg := false
	i := 0
	switch s[0] {
	case '-':
		neg = true
		i++
	case '+':
		i++
	}
	start := i
	var whole int64
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		whole = whole*10 + int64(s[i]-'0')
		i++
	}
	if i == start && (i >= len(s) || s[i] != '.') {
		return Numeric{}, errors.Errorf("parse numeric: %q has no digits", s)
	}
	raw := whole * pow10(scale)
	if i < len(s) && s[i] == '.' {
		i++
		fracDigits := 0
		frac := int64(0)
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			if fracDigits >= int(scale) {
				return Numeric{}, errors.Errorf(
					"parse numeric: %q has more than %d fractional digits", s, scale)
			}
			frac = frac*10 + int64(s[i]-'0')
			fracDigits++
			i++
		}
		if i != len(s) {
			return Numeric{}, errors.Errorf("parse numeric: %q has trailing garbage", s)
		}
		raw += frac * pow10(scale-uint8(fracDigits))
	} else if i != len(s) {
		return Numeric{}, errors.Errorf("parse numeric: %q has trailing garbage", s)
	}
	if neg {
		raw = -raw
	}
	return Numeric{Raw: raw, Scale: scale}, nil
}
