package renderer

import "strings"

// PatternPreset is a named validation pattern with its explanation.
type PatternPreset struct {
	Regex string
	Title string
}

// PatternPresets are the named patterns a FieldConfig.Pattern may refer to.
var PatternPresets = map[string]PatternPreset{
	"no_spaces": {
		Regex: `[^\s]+`,
		Title: "no spaces allowed",
	},
	"valid_filename": {
		Regex: `[^\s\/\\*?:&"<>\|]+`,
		Title: "no spaces, asterisks, question marks, greater-than or less-than signs, colons, pipes, quotes, ampersands or slashes allowed",
	},
	"lowercase_underscore": {
		Regex: `[a-z_]*`,
		Title: "only alphabetic characters and underscore (_) allowed",
	},
	"alphanumeric": {
		Regex: `[a-zA-Z0-9]*`,
		Title: "only alphanumeric characters allowed (a-z and 0-9)",
	},
	"ipv4_address": {
		Regex: `(?:(25[0-5]|2[0-4][0-9]|1[0-9][0-9]|[1-9][0-9]|[0-9])(\.(?!$)|$)){4}`,
		Title: "must be a valid IP v4 address",
	},
}

// stripAnchors removes a leading ^ and trailing $; HTML pattern attributes
// are anchored implicitly.
func stripAnchors(expr string) string {
	expr = strings.TrimPrefix(expr, "^")
	if strings.HasSuffix(expr, "$") && !strings.HasSuffix(expr, `\$`) {
		expr = strings.TrimSuffix(expr, "$")
	}
	return expr
}
