package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// timeLayouts are the accepted wire formats for dates, most specific first.
// The admin client sends bare dates for pubdate filters, other producers
// send full timestamps.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Time is the wire time type. It marshals as RFC 3339 and accepts several
// layouts on input so bare dates from filter forms parse cleanly.
type Time struct {
	time.Time
}

// Now returns the current time as a model.Time.
func Now() Time {
	return Time{Time: time.Now().UTC()}
}

// NewTime wraps a time.Time.
func NewTime(t time.Time) Time {
	return Time{Time: t}
}

// ParseTime parses s using the accepted wire layouts.
func ParseTime(s string) (Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Time{Time: t}, nil
		}
	}
	return Time{}, fmt.Errorf("unrecognized time format %q", s)
}

// MarshalJSON implements json.Marshaler.
func (t Time) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.UTC().Format(time.RFC3339) + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Time) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*t = Time{}
		return nil
	}
	parsed, err := ParseTime(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value implements driver.Valuer for database storage.
func (t Time) Value() (driver.Value, error) {
	return t.Time, nil
}

// Scan implements sql.Scanner.
func (t *Time) Scan(v interface{}) error {
	switch value := v.(type) {
	case time.Time:
		*t = Time{Time: value}
		return nil
	case []byte:
		return t.scanString(string(value))
	case string:
		return t.scanString(value)
	case nil:
		*t = Time{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into model.Time", v)
	}
}

func (t *Time) scanString(s string) error {
	parsed, err := ParseTime(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
