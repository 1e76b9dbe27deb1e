package types

import (
	"github.com/pkg/errors"
)

// Date is a signed 32-bit day count since the Unix epoch. Ordering is
// plain integer ordering, so comparisons never need to decompose the
// value into year/month/day.
type Date int32

// Hash mixes the date's bit pattern through the shared xorshift hash.
func (v Date) Hash() uint64 {
	return MixHash32(uint32(v))
}

const daysFromCivilEpochOffset = 719468 // days from 0000-03-01 to 1970-01-01

// ParseDate parses a strict "YYYY-MM-DD" literal into days-since-epoch,
// using Howard Hinnant's days_from_civil algorithm (proleptic Gregorian,
// branch-free, matches the reference engine's Date::castString semantics).
func ParseDate(s string) (Date, error) {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return 0, errors.Errorf("parse date: %q is not YYYY-MM-DD", s)
	}
	year, err := digits(s[0:4])
	if err != nil {
		return 0, errors.Wrapf(err, "parse date: %q year", s)
	}
	month, err := digits(s[5:7])
	if err != nil {
		return 0, errors.Wrapf(err, "parse date: %q month", s)
	}
	day, err := digits(s[8:10])
	if err != nil {
		return 0, errors.Wrapf(err, "parse date: %q day", s)
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return 0, errors.Errorf("parse date: %q out of range", s)
	}
	return Date(daysFromCivil(year, month, day)), nil
}

func digits(s string) (int, error) {
	v := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, errors.Errorf("non-digit %q", c)
		}
		v = v*10 + int(c-'0')
	}
	return v, nil
}

// daysFromCivil converts a proleptic Gregorian calendar date to a day
// count relative to 1970-01-01.
func daysFromCivil(y, m, d int) int64 {
	yy := int64(y)
	if m <= 2 {
		yy--
	}
	era := yy
	if yy < 0 {
		era = yy - 399
	}
	era /= 400
	yoe := yy - era*400
	var mp int64
	if int64(m) > 2 {
		mp = int64(m) - 3
	} else {
		mp = int64(m) + 9
	}
	doy := (153*mp+2)/5 + int64(d) - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - daysFromCivilEpochOffset
}
