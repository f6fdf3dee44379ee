package render

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/goliatone/go-layout/pkg/model"
)

// envelopes are keys validators wrap around the posted form values.
var envelopes = map[string]bool{"body": true, "data": true, "payload": true, "request": true}

// MapErrorPayload turns a validation payload into page FormErrors. Keys may
// be posted input names ("customer[email]"), JSON pointers ("/body/email") or
// dotted paths ("data.email"); extended_columns entries land on their
// extcol_ field. Messages whose key names no field of the page are kept
// under model.BaseErrorKey.
func MapErrorPayload(pageName string, fieldNames []string, payload map[string][]string) map[string][]string {
	if len(payload) == 0 {
		return nil
	}
	known := make(map[string]bool, len(fieldNames))
	for _, name := range fieldNames {
		known[name] = true
	}

	out := make(map[string][]string)
	for _, key := range slices.Sorted(maps.Keys(payload)) {
		field := errorField(key, pageName, known)
		if messages := MergeMessages(out[field], payload[key]...); len(messages) > 0 {
			out[field] = messages
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// MergeMessages appends more to existing, trimming messages and dropping
// blanks and repeats.
func MergeMessages(existing []string, more ...string) []string {
	var out []string
	for _, message := range slices.Concat(existing, more) {
		message = strings.TrimSpace(message)
		if message != "" && !slices.Contains(out, message) {
			out = append(out, message)
		}
	}
	return out
}

func errorField(key, pageName string, known map[string]bool) string {
	segments := strings.FieldsFunc(key, func(r rune) bool {
		return r == '/' || r == '.' || r == '[' || r == ']' || r == '#' || r == '$'
	})
	for len(segments) > 0 && (envelopes[segments[0]] || segments[0] == pageName) {
		segments = segments[1:]
	}

	for i, segment := range segments {
		if _, err := strconv.Atoi(segment); err == nil {
			continue
		}
		if segment == model.ExtendedColumnsKey && i+1 < len(segments) {
			if name := model.ExtendedColumnPrefix + segments[i+1]; known[name] {
				return name
			}
		}
		if known[segment] {
			return segment
		}
	}
	return model.BaseErrorKey
}
