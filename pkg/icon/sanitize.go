package icon

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	bodyPolicyOnce sync.Once
	bodyPolicy     *bluemonday.Policy
)

// sanitizeBody strips everything but SVG shape elements from raw.
func sanitizeBody(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(bodySanitizer().Sanitize(trimmed))
}

func bodySanitizer() *bluemonday.Policy {
	bodyPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		shapes := []string{"path", "circle", "rect", "line", "polyline", "polygon", "ellipse"}
		policy.AllowElements(append([]string{"g", "title"}, shapes...)...)

		for _, el := range shapes {
			policy.AllowAttrs(
				"d", "cx", "cy", "r", "x", "y", "x1", "y1", "x2", "y2",
				"points", "rx", "ry", "fill", "stroke", "stroke-width",
				"stroke-linecap", "stroke-linejoin", "fill-rule", "class",
			).OnElements(el)
		}
		policy.AllowAttrs("fill", "class").OnElements("g")

		bodyPolicy = policy
	})
	return bodyPolicy
}
