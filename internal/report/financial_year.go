package report

import (
	"fmt"
	"strings"
)

// AllSentinel is the "no selection" value sent by the dashboard filter dropdowns.
const AllSentinel = "All"

// FinancialYear maps a year value to the stored "YYYY-YY" label. Values that
// already contain a hyphen are returned untouched. A bare year Y becomes
// "Y-(Y+1)%100", so 2099 maps to "2099-00". ok is false when no year can be read.
func FinancialYear(v string) (label string, ok bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", false
	}
	if strings.Contains(v, "-") {
		return v, true
	}
	y, ok := leadingInt(v)
	if !ok {
		return "", false
	}
	return FinancialYearFromInt(y), true
}

func FinancialYearFromInt(y int) string {
	next := (y + 1) % 100
	if next < 0 {
		next = -next
	}
	return fmt.Sprintf("%d-%02d", y, next)
}

// leadingInt reads an optionally signed run of leading digits, ignoring the rest
// ("2024abc" reads as 2024).
func leadingInt(v string) (int, bool) {
	v = strings.TrimSpace(v)
	sign := 1
	switch {
	case strings.HasPrefix(v, "-"):
		sign = -1
		v = v[1:]
	case strings.HasPrefix(v, "+"):
		v = v[1:]
	}

	n, digits := 0, 0
	for _, r := range v {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
		digits++
		if digits > 9 {
			return 0, false
		}
	}
	if digits == 0 {
		return 0, false
	}
	return sign * n, true
}
