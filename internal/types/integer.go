package types

import (
	"github.com/pkg/errors"
)

// Integer is the engine's signed 32-bit scalar type.
type Integer int32

// Hash mixes the integer's bit pattern through the shared xorshift hash.
func (v Integer) Hash() uint64 {
	return MixHash32(uint32(v))
}

// ParseInteger parses an optionally signed run of decimal digits.
// Matches Types.hpp's Integer::castString: leading/trailing spaces are
// trimmed, an optional leading '-' or '+' is consumed, and the remainder
// must be all digits.
func ParseInteger(s string) (Integer, error) {
	s = trimSpace(s)
	if s == "" {
		return 0, errors.New("parse integer: empty literal")
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
	if i == len(s) {
		return 0, errors.Errorf("parse integer: %q has no digits", s)
	}
	var v int64
	for ; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, errors.Errorf("parse integer: %q has non-digit %q", s, c)
		}
		v = v*10 + int64(c-'0')
	}
	if neg {
		v = -v
	}
	return Integer(v), nil
}

func trimSpace(s string) string {
	start, end := 0, len(s)
	for start < end && s[start] == ' ' {
		start++
	}
	for end > start && s[end-1] == ' ' {
		end--
	}
	return s[start:end]
}
