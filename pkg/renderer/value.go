package renderer

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

const (
	dateLayout     = "2006-01-02"
	monthLayout    = "2006-01"
	timeLayout     = "15:04"
	datetimeLayout = "2006-01-02T15:04"
)

// datetimeLayouts are tried in order before falling back to cast.
var datetimeLayouts = []string{
	datetimeLayout,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// stringValue renders a bound value as plain text. Decimals use fixed-point
// notation.
func stringValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case decimal.Decimal:
		return v.String()
	case *decimal.Decimal:
		if v == nil {
			return ""
		}
		return v.String()
	case decimal.NullDecimal:
		if !v.Valid {
			return ""
		}
		return v.Decimal.String()
	case time.Time:
		return v.Format(time.RFC3339)
	}
	if out, err := cast.ToStringE(value); err == nil {
		return out
	}
	return fmt.Sprint(value)
}

// temporalValue formats value with layout. Strings are assumed to be
// formatted already.
func temporalValue(value any, layout string) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case time.Time:
		if v.IsZero() {
			return ""
		}
		return v.Format(layout)
	case *time.Time:
		if v == nil || v.IsZero() {
			return ""
		}
		return v.Format(layout)
	}
	if t, err := cast.ToTimeE(value); err == nil {
		return t.Format(layout)
	}
	return stringValue(value)
}

// parseDatetime turns a bound value into a time. hasTime is false for
// date-only strings so callers can apply default clock values.
func parseDatetime(value any) (t time.Time, hasTime bool, ok bool, err error) {
	switch v := value.(type) {
	case nil:
		return time.Time{}, false, false, nil
	case time.Time:
		if v.IsZero() {
			return time.Time{}, false, false, nil
		}
		return v, true, true, nil
	case *time.Time:
		if v == nil || v.IsZero() {
			return time.Time{}, false, false, nil
		}
		return *v, true, true, nil
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return time.Time{}, false, false, nil
		}
		if parsed, perr := time.Parse(dateLayout, trimmed); perr == nil {
			return parsed, false, true, nil
		}
		for _, layout := range datetimeLayouts {
			if parsed, perr := time.Parse(layout, trimmed); perr == nil {
				return parsed, true, true, nil
			}
		}
		parsed, cerr := cast.ToTimeE(trimmed)
		if cerr != nil {
			return time.Time{}, false, false, fmt.Errorf("%w: cannot parse %q as a date time", ErrInvalidValue, trimmed)
		}
		return parsed, true, true, nil
	}
	parsed, cerr := cast.ToTimeE(value)
	if cerr != nil {
		return time.Time{}, false, false, fmt.Errorf("%w: cannot use %T as a date time", ErrInvalidValue, value)
	}
	return parsed, true, true, nil
}

// stringSlice normalises a multi-valued binding. Strings are split on commas.
func stringSlice(value any) []string {
	switch v := value.(type) {
	case nil:
		return nil
	case string:
		if strings.TrimSpace(v) == "" {
			return nil
		}
		parts := strings.Split(v, ",")
		out := make([]string, 0, len(parts))
		for _, part := range parts {
			out = append(out, strings.TrimSpace(part))
		}
		return out
	case []string:
		return v
	}
	out, err := cast.ToStringSliceE(value)
	if err != nil {
		return []string{stringValue(value)}
	}
	return out
}
