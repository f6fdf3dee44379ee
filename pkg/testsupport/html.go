package testsupport

import (
	"bytes"
	"io"
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var (
	betweenTags = regexp.MustCompile(`>\s+<`)
	whitespace  = regexp.MustCompile(`\s+`)
)

// ScrubHTML removes whitespace between tags and collapses remaining runs to
// a single space, so markup compares independently of line layout.
func ScrubHTML(markup string) string {
	markup = betweenTags.ReplaceAllString(markup, "><")
	markup = whitespace.ReplaceAllString(markup, " ")
	return strings.TrimSpace(markup)
}

// AssertHTML fails t with a cmp diff when want and got differ after
// ScrubHTML.
func AssertHTML(t testing.TB, want, got string) {
	t.Helper()

	if diff := cmp.Diff(ScrubHTML(want), ScrubHTML(got)); diff != "" {
		t.Fatalf("markup mismatch (-want +got):\n%s", diff)
	}
}

// AssertContains fails t when out lacks any of wants.
func AssertContains(t testing.TB, out string, wants ...string) {
	t.Helper()

	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

// AssertNotContains fails t when out holds any of unwanted.
func AssertNotContains(t testing.TB, out string, unwanted ...string) {
	t.Helper()

	for _, s := range unwanted {
		if strings.Contains(out, s) {
			t.Fatalf("did not expect %q in output:\n%s", s, out)
		}
	}
}

// CaptureTemplateOutput executes a render function that writes to an
// io.Writer, returning both the string result and the writer contents.
func CaptureTemplateOutput(t testing.TB, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	return out, buf.String()
}
