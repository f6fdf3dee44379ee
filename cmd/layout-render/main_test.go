package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-layout/pkg/pagedef"
	"github.com/goliatone/go-layout/pkg/prompt"
	"github.com/goliatone/go-layout/pkg/testsupport"
)

// scriptedDriver answers choices in order and fails everything else.
type scriptedDriver struct {
	selects []int
}

func (d *scriptedDriver) Ask(context.Context, prompt.Question) (string, error) {
	return "", errors.New("unexpected question")
}

func (d *scriptedDriver) Confirm(context.Context, string, string, bool) (bool, error) {
	return false, errors.New("unexpected confirm prompt")
}

func (d *scriptedDriver) Choose(context.Context, prompt.Choice) ([]int, error) {
	if len(d.selects) == 0 {
		return nil, errors.New("no choice scripted")
	}
	idx := d.selects[0]
	d.selects = d.selects[1:]
	return []int{idx}, nil
}

func TestRunFragmentWithData(t *testing.T) {
	dir := t.TempDir()
	dataPath := filepath.Join(dir, "data.yaml")
	data := "form_object:\n  name: Acme\nerrors:\n  \"customer[email]\": [is invalid]\n"
	if err := os.WriteFile(dataPath, []byte(data), 0o600); err != nil {
		t.Fatalf("write data: %v", err)
	}

	var out bytes.Buffer
	err := run(context.Background(), []string{"-page", "customer_edit", "-data", dataPath, "-csrf", "tok"}, &out, &scriptedDriver{})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	testsupport.AssertContains(t, out.String(), `value="Acme"`, `is invalid`, `name="_csrf" value="tok"`)
}

func TestRunPicksPageAndWritesDocument(t *testing.T) {
	output := filepath.Join(t.TempDir(), "help.html")
	driver := &scriptedDriver{selects: []int{1}}

	err := run(context.Background(), []string{"-format", "document", "-output", output}, &bytes.Buffer{}, driver)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	raw, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	testsupport.AssertContains(t, string(raw), "<title>Help</title>")
}

func TestRunErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{name: "unknown page", args: []string{"-page", "nope"}, want: "available: customer_edit, help"},
		{name: "unknown format", args: []string{"-page", "help", "-format", "pdf"}, want: "available: document, fragment"},
		{name: "missing data file", args: []string{"-page", "help", "-data", "/does/not/exist.yaml"}, want: "read data"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := run(context.Background(), tc.args, &bytes.Buffer{}, &scriptedDriver{})
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}

	err := run(context.Background(), []string{"-page", "nope"}, &bytes.Buffer{}, &scriptedDriver{})
	if !errors.Is(err, pagedef.ErrUnknownPage) {
		t.Fatalf("expected ErrUnknownPage, got %v", err)
	}
}
