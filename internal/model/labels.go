package model

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// PresentFieldAsLabel converts a field name into caption text: a trailing
// "_id" is dropped, words are split on underscores and capitalised.
//
//	customer_id -> "Customer"
//	first_name  -> "First Name"
func PresentFieldAsLabel(name string) string {
	name = strings.TrimSuffix(name, "_id")
	if name == "" {
		return ""
	}

	words := strings.Split(name, "_")
	segments := make([]string, 0, len(words))
	for _, word := range words {
		if word == "" {
			continue
		}
		segments = append(segments, capitalize(word))
	}
	return strings.Join(segments, " ")
}

func capitalize(word string) string {
	lower := strings.ToLower(word)
	first, size := utf8.DecodeRuneInString(lower)
	return string(unicode.ToUpper(first)) + lower[size:]
}
