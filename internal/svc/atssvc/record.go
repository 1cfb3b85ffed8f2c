package atssvc

import (
	"math"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/cast"

	"github.com/mkrupp/hirepulse-client/internal/domain"
)

// Coercion helpers for decoded JSON. A missing key and an explicit null are
// treated alike.

// first returns the first non-nil value stored under keys.
func first(r domain.Record, keys ...string) any {
	for _, key := range keys {
		if v, ok := r[key]; ok && v != nil {
			return v
		}
	}

	return nil
}

// firstTruthy returns the first truthy value stored under keys, or nil.
func firstTruthy(r domain.Record, keys ...string) any {
	for _, key := range keys {
		if v := r[key]; truthy(v) {
			return v
		}
	}

	return nil
}

// truthy follows JavaScript truthiness for decoded JSON values.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0 && !math.IsNaN(t)
	case int:
		return t != 0
	case int64:
		return t != 0
	default:
		return true
	}
}

// str converts v to a string; nil becomes "".
func str(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		if t {
			return "true"
		}

		return "false"
	default:
		return cast.ToString(t)
	}
}

// strOr converts the first non-nil value under keys, falling back to def.
func strOr(r domain.Record, def string, keys ...string) string {
	if v := first(r, keys...); v != nil {
		return str(v)
	}

	return def
}

// num converts v to a number; nil, unparseable strings and non-scalars are 0.
func num(v any) float64 {
	switch t := v.(type) {
	case nil:
		return 0
	case bool:
		if t {
			return 1
		}

		return 0
	case string:
		f, err := cast.ToFloat64E(strings.TrimSpace(t))
		if err != nil {
			return 0
		}

		return f
	default:
		f, err := cast.ToFloat64E(t)
		if err != nil || math.IsNaN(f) {
			return 0
		}

		return f
	}
}

// strs returns v's elements as strings when v is an array and an empty
// slice otherwise.
func strs(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, str(item))
	}

	return out
}

// record returns v as an object, or nil when v is not one.
func record(v any) domain.Record {
	r, _ := v.(map[string]any)

	return r
}

// records returns the objects of the array v. Non-object elements become
// empty records so that every element yields a normalized entry.
func records(v any) []domain.Record {
	items, _ := v.([]any)

	out := make([]domain.Record, 0, len(items))
	for _, item := range items {
		out = append(out, record(item))
	}

	return out
}

// at returns the element i of the array v, or nil.
func at(v any, i int) any {
	items, ok := v.([]any)
	if !ok || i < 0 || i >= len(items) {
		return nil
	}

	return items[i]
}

// converter holds the presentation settings used while normalizing.
type converter struct {
	dateLayout    string
	avatarBaseURL string
}

//nolint:gochecknoglobals
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// date formats a date value for display. Falsy values yield "" and values
// that cannot be parsed are passed through unchanged. Numbers are unix
// milliseconds.
func (c converter) date(v any) string {
	if !truthy(v) {
		return ""
	}

	switch t := v.(type) {
	case float64:
		return time.UnixMilli(int64(t)).UTC().Format(c.dateLayout)
	case string:
		s := strings.TrimSpace(t)
		for _, layout := range dateLayouts {
			if parsed, err := time.Parse(layout, s); err == nil {
				return parsed.Format(c.dateLayout)
			}
		}

		return t
	default:
		return str(v)
	}
}

// avatar returns the placeholder avatar URL for one user key.
func (c converter) avatar(key string) string {
	return c.avatarBaseURL + "?u=" + strings.ReplaceAll(url.QueryEscape(key), "+", "%20")
}
