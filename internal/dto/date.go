package dto

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
)

const dateLayout = "2006-01-02"

// ParseDate accepts "YYYY-MM-DD" or an RFC 3339 timestamp, keeping only the day.
// An empty value parses to nil.
func ParseDate(v string) (*datatypes.Date, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	if len(v) > len(dateLayout) {
		v = v[:len(dateLayout)]
	}
	t, err := time.ParseInLocation(dateLayout, v, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", v)
	}
	d := datatypes.Date(t)
	return &d, nil
}
