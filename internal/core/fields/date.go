package fields

import (
	"strings"
	"time"
)

var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseDate converts a raw scraped value to a UTC timestamp.
// Accepts time.Time, YYYY-MM-DD, MM/DD/YYYY and ISO-8601 strings, and Mongo
// extended JSON {"$date": ...}. Date-only values resolve to midnight UTC.
func ParseDate(v interface{}) (time.Time, bool) {
	switch val := v.(type) {
	case time.Time:
		if val.IsZero() {
			return time.Time{}, false
		}
		return val.UTC(), true
	case string:
		return parseDateString(val)
	case map[string]interface{}:
		if inner, ok := val["$date"]; ok {
			return ParseDate(inner)
		}
	}
	return time.Time{}, false
}

func parseDateString(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
