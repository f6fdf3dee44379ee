package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"strings"

	"github.com/mudler/xlog"
	"gopkg.in/yaml.v3"

	golayout "github.com/goliatone/go-layout"
	"github.com/goliatone/go-layout/pkg/layout"
	"github.com/goliatone/go-layout/pkg/pagedef"
	"github.com/goliatone/go-layout/pkg/prompt"
	"github.com/goliatone/go-layout/pkg/render"
)

type options struct {
	source      string
	page        string
	data        string
	csrf        string
	output      string
	format      string
	title       string
	stylesheets string
	interactive bool
}

// dataFile is the shape of the -data file.
type dataFile struct {
	FormObject map[string]any      `yaml:"form_object"`
	FormValues map[string]any      `yaml:"form_values"`
	FormErrors map[string][]string `yaml:"form_errors"`
	Errors     map[string][]string `yaml:"errors"`
	Extras     map[string]any      `yaml:"extras"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, prompt.NewSurveyDriver()); err != nil {
		if errors.Is(err, prompt.ErrAborted) {
			os.Exit(130)
		}
		xlog.Error("render failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer, driver prompt.Driver) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	store, err := pagedef.LoadFS(sourceFS(opts.source))
	if err != nil {
		return err
	}
	if store.Empty() {
		return fmt.Errorf("no page definitions found in %q", opts.source)
	}

	pageID := opts.page
	if pageID == "" {
		if pageID, err = prompt.PickPage(ctx, driver, store.IDs()); err != nil {
			return err
		}
	}
	def, ok := store.Page(pageID)
	if !ok {
		return fmt.Errorf("%w %q (available: %s)", pagedef.ErrUnknownPage, pageID, strings.Join(store.IDs(), ", "))
	}

	data, err := loadData(opts.data)
	if err != nil {
		return err
	}
	if opts.interactive {
		current := mergeValues(data.FormObject, data.FormValues)
		if data.FormValues, err = prompt.CollectValues(ctx, driver, def, current); err != nil {
			return err
		}
	}

	page, err := def.Build(data)
	if err != nil {
		return err
	}

	registry, err := golayout.NewRegistry()
	if err != nil {
		return err
	}
	renderer, err := registry.Get(opts.format)
	if err != nil {
		return err
	}

	title := opts.title
	if title == "" {
		title = def.Title
	}
	renderOpts := render.RenderOptions{
		Title:       title,
		Stylesheets: splitList(opts.stylesheets),
	}
	if opts.csrf != "" {
		renderOpts.CSRFTag = layout.CSRFTag("_csrf", opts.csrf)
	}

	out, err := renderer.Render(ctx, page, renderOpts)
	if err != nil {
		return err
	}

	if opts.output == "" {
		_, err = fmt.Fprintln(stdout, string(out))
		return err
	}
	if err := os.WriteFile(opts.output, out, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	xlog.Info("page written", "page", pageID, "format", renderer.Name(), "output", opts.output, "bytes", len(out))
	return nil
}

func parseFlags(args []string) (options, error) {
	var opts options
	flags := flag.NewFlagSet("layout-render", flag.ContinueOnError)
	flags.StringVar(&opts.source, "source", "", "directory of page definitions (bundled samples if empty)")
	flags.StringVar(&opts.page, "page", "", "page id to render (prompted for if empty)")
	flags.StringVar(&opts.data, "data", "", "YAML or JSON file with form_object, form_values, form_errors, errors and extras")
	flags.StringVar(&opts.csrf, "csrf", "", "CSRF token handed to every form")
	flags.StringVar(&opts.output, "output", "", "output file (stdout if empty)")
	flags.StringVar(&opts.format, "format", render.FragmentName, "output renderer: fragment or document")
	flags.StringVar(&opts.title, "title", "", "document title (defaults to the page title)")
	flags.StringVar(&opts.stylesheets, "stylesheets", "", "comma separated stylesheet URLs for document output")
	flags.BoolVar(&opts.interactive, "prompt", false, "prompt for field values before rendering")
	if err := flags.Parse(args); err != nil {
		return options{}, err
	}
	return opts, nil
}

func sourceFS(dir string) fs.FS {
	if strings.TrimSpace(dir) == "" {
		return golayout.SamplePages()
	}
	return os.DirFS(dir)
}

func loadData(path string) (pagedef.Data, error) {
	if strings.TrimSpace(path) == "" {
		return pagedef.Data{}, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return pagedef.Data{}, fmt.Errorf("read data: %w", err)
	}
	var file dataFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return pagedef.Data{}, fmt.Errorf("parse data %s: %w", path, err)
	}
	return pagedef.Data{
		FormObject:   file.FormObject,
		FormValues:   file.FormValues,
		FormErrors:   file.FormErrors,
		ErrorPayload: file.Errors,
		Extras:       file.Extras,
	}, nil
}

func mergeValues(layers ...map[string]any) map[string]any {
	out := make(map[string]any)
	for _, layer := range layers {
		for key, value := range layer {
			out[key] = value
		}
	}
	return out
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
