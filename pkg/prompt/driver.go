package prompt

import (
	"context"
	"errors"
	"slices"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// Question asks for the text value of a field.
type Question struct {
	Message  string
	Help     string
	Default  string
	Secret   bool // password fields; Default is ignored
	Multi    bool // textarea fields
	Validate func(string) error
}

// Choice asks for one option, or several when Multiple is set. Selected
// holds the preselected indices into Options.
type Choice struct {
	Message  string
	Help     string
	Options  []string
	Selected []int
	Multiple bool
	PageSize int
}

// Driver asks the questions CollectValues and PickPage need. Tests script it;
// SurveyDriver puts it on a terminal.
type Driver interface {
	Ask(ctx context.Context, q Question) (string, error)
	Confirm(ctx context.Context, message, help string, def bool) (bool, error)
	Choose(ctx context.Context, c Choice) ([]int, error)
}

// SurveyDriver prompts on the terminal with survey.
type SurveyDriver struct {
	// PageSize applies to choices that do not set their own.
	PageSize int
}

var _ Driver = (*SurveyDriver)(nil)

func NewSurveyDriver() *SurveyDriver {
	return &SurveyDriver{PageSize: 10}
}

func (d *SurveyDriver) Ask(ctx context.Context, q Question) (string, error) {
	var p survey.Prompt
	switch {
	case q.Secret:
		p = &survey.Password{Message: q.Message, Help: q.Help}
	case q.Multi:
		p = &survey.Multiline{Message: q.Message, Help: q.Help, Default: q.Default}
	default:
		p = &survey.Input{Message: q.Message, Help: q.Help, Default: q.Default}
	}

	var opts []survey.AskOpt
	if q.Validate != nil {
		opts = append(opts, survey.WithValidator(func(ans any) error {
			s, _ := ans.(string)
			return q.Validate(s)
		}))
	}
	var answer string
	err := ask(ctx, p, &answer, opts...)
	return answer, err
}

func (d *SurveyDriver) Confirm(ctx context.Context, message, help string, def bool) (bool, error) {
	var answer bool
	err := ask(ctx, &survey.Confirm{Message: message, Help: help, Default: def}, &answer)
	return answer, err
}

func (d *SurveyDriver) Choose(ctx context.Context, c Choice) ([]int, error) {
	pageSize := c.PageSize
	if pageSize <= 0 {
		pageSize = d.PageSize
	}
	var selected []string
	for _, idx := range c.Selected {
		if idx >= 0 && idx < len(c.Options) {
			selected = append(selected, c.Options[idx])
		}
	}

	if c.Multiple {
		var answers []string
		p := &survey.MultiSelect{Message: c.Message, Help: c.Help, Options: c.Options, PageSize: pageSize}
		if len(selected) > 0 {
			p.Default = selected
		}
		if err := ask(ctx, p, &answers); err != nil {
			return nil, err
		}
		var out []int
		for i, option := range c.Options {
			if slices.Contains(answers, option) {
				out = append(out, i)
			}
		}
		return out, nil
	}

	var answer string
	p := &survey.Select{Message: c.Message, Help: c.Help, Options: c.Options, PageSize: pageSize}
	if len(selected) > 0 {
		p.Default = selected[0]
	}
	if err := ask(ctx, p, &answer); err != nil {
		return nil, err
	}
	return []int{slices.Index(c.Options, answer)}, nil
}

// ask runs one survey prompt, reporting Ctrl+C as ErrAborted.
func ask(ctx context.Context, p survey.Prompt, answer any, opts ...survey.AskOpt) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := survey.AskOne(p, answer, opts...)
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}
