package lookup

import (
	"sort"
	"strings"

	"github.com/goliatone/go-layout/pkg/model"
)

// Search returns the options whose label or value contains query, case
// insensitively. Options whose label starts with query rank first; ties keep
// the source order.
func Search(options []model.SelectOption, query string, limit int, opts Options) []model.SelectOption {
	limit = clampLimit(limit, opts)
	if limit == 0 {
		return nil
	}

	query = strings.TrimSpace(query)
	if query == "" {
		if opts.EmptySearchMode != EmptySearchTop {
			return nil
		}
		if len(options) > limit {
			options = options[:limit]
		}
		return append([]model.SelectOption{}, options...)
	}

	q := strings.ToLower(query)
	matches := make([]matched, 0, 32)
	for _, opt := range options {
		label := strings.ToLower(opt.Text())
		if !strings.Contains(label, q) && !strings.Contains(strings.ToLower(opt.Value), q) {
			continue
		}
		matches = append(matches, matched{option: opt, isPrefix: strings.HasPrefix(label, q)})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].isPrefix && !matches[j].isPrefix
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]model.SelectOption, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.option)
	}
	return out
}

type matched struct {
	option   model.SelectOption
	isPrefix bool
}
