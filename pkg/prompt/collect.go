package prompt

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/cast"

	"github.com/goliatone/go-layout/pkg/model"
	"github.com/goliatone/go-layout/pkg/pagedef"
	"github.com/goliatone/go-layout/pkg/renderer"
)

const noneOption = "(none)"

// PickPage asks the user to choose one of ids.
func PickPage(ctx context.Context, driver Driver, ids []string) (string, error) {
	if len(ids) == 0 {
		return "", errors.New("prompt: no pages to choose from")
	}
	picked, err := driver.Choose(ctx, Choice{
		Message:  "Page to render:",
		Options:  ids,
		PageSize: 15,
	})
	if err != nil {
		return "", err
	}
	if len(picked) != 1 || picked[0] < 0 || picked[0] >= len(ids) {
		return "", fmt.Errorf("prompt: invalid page selection %v", picked)
	}
	return ids[picked[0]], nil
}

// CollectValues prompts for every user-editable field of def and returns
// the answers keyed by field name, ready for pagedef.Data.FormValues.
// current seeds the defaults. Hidden, label, list and read-only fields are
// skipped.
func CollectValues(ctx context.Context, driver Driver, def pagedef.PageDef, current map[string]any) (map[string]any, error) {
	values := make(map[string]any)
	for _, name := range def.FieldNames() {
		cfg, _ := def.FieldConfig(name)
		if skipField(cfg) {
			continue
		}
		value, err := askField(ctx, driver, name, cfg, current[name])
		if err != nil {
			return nil, fmt.Errorf("prompt: field %q: %w", name, err)
		}
		values[name] = value
	}
	return values, nil
}

func skipField(cfg model.FieldConfig) bool {
	if cfg.Readonly || cfg.Disabled || cfg.Invisible {
		return true
	}
	switch cfg.Renderer {
	case model.FieldTypeHidden, model.FieldTypeLabel, model.FieldTypeList:
		return true
	}
	return false
}

func askField(ctx context.Context, driver Driver, name string, cfg model.FieldConfig, current any) (any, error) {
	message := cfg.Caption
	if message == "" {
		message = model.PresentFieldAsLabel(name)
	}
	message += ":"

	switch cfg.Renderer {
	case model.FieldTypeCheckbox:
		return driver.Confirm(ctx, message, cfg.Hint, cast.ToBool(current))
	case model.FieldTypeSelect:
		return askSelect(ctx, driver, message, cfg, cast.ToString(current))
	case model.FieldTypeMulti:
		return askMulti(ctx, driver, message, cfg, cast.ToStringSlice(current))
	}

	return driver.Ask(ctx, Question{
		Message:  message,
		Help:     cfg.Hint,
		Default:  cast.ToString(current),
		Secret:   cfg.Subtype == model.FieldTypePassword || cfg.Renderer == model.FieldTypePassword,
		Multi:    cfg.Renderer == model.FieldTypeTextarea,
		Validate: fieldValidator(cfg),
	})
}

func askSelect(ctx context.Context, driver Driver, message string, cfg model.FieldConfig, current string) (string, error) {
	options := make([]string, 0, len(cfg.Options)+1)
	values := make([]string, 0, len(cfg.Options)+1)
	if cfg.Prompt != "" || !cfg.Required {
		options = append(options, noneOption)
		values = append(values, "")
	}
	defaultIdx := 0
	for _, opt := range cfg.Options {
		if opt.Value == current {
			defaultIdx = len(options)
		}
		options = append(options, opt.Text())
		values = append(values, opt.Value)
	}

	picked, err := driver.Choose(ctx, Choice{
		Message:  message,
		Help:     cfg.Hint,
		Options:  options,
		Selected: []int{defaultIdx},
	})
	if err != nil {
		return "", err
	}
	if len(picked) != 1 || picked[0] < 0 || picked[0] >= len(values) {
		return "", fmt.Errorf("invalid selection %v", picked)
	}
	return values[picked[0]], nil
}

func askMulti(ctx context.Context, driver Driver, message string, cfg model.FieldConfig, current []string) ([]string, error) {
	options := make([]string, len(cfg.Options))
	var defaults []int
	for i, opt := range cfg.Options {
		options[i] = opt.Text()
		for _, v := range current {
			if v == opt.Value {
				defaults = append(defaults, i)
				break
			}
		}
	}

	indices, err := driver.Choose(ctx, Choice{
		Message:  message,
		Help:     cfg.Hint,
		Options:  options,
		Selected: defaults,
		Multiple: true,
	})
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(indices))
	for _, idx := range indices {
		if idx >= 0 && idx < len(cfg.Options) {
			out = append(out, cfg.Options[idx].Value)
		}
	}
	return out, nil
}

// fieldValidator enforces required and pattern constraints. Patterns Go's
// regexp engine cannot compile are left to the browser.
func fieldValidator(cfg model.FieldConfig) func(string) error {
	var pattern *regexp.Regexp
	switch {
	case cfg.PatternRegexp != nil:
		pattern = cfg.PatternRegexp
	case cfg.Pattern != "":
		expr := cfg.Pattern
		if preset, ok := renderer.PatternPresets[expr]; ok {
			expr = preset.Regex
		}
		pattern, _ = regexp.Compile("^(?:" + strings.TrimSuffix(strings.TrimPrefix(expr, "^"), "$") + ")$")
	}
	if !cfg.Required && pattern == nil {
		return nil
	}

	return func(answer string) error {
		if strings.TrimSpace(answer) == "" {
			if cfg.Required {
				return errors.New("a value is required")
			}
			return nil
		}
		if pattern != nil && !pattern.MatchString(answer) {
			if cfg.PatternMsg != "" {
				return errors.New(cfg.PatternMsg)
			}
			return fmt.Errorf("value does not match %s", pattern.String())
		}
		return nil
	}
}
