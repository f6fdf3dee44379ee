package expr

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/goliatone/go-layout/pkg/visibility"
	"github.com/spf13/cast"
)

// Evaluator runs the invisible_when and hidden_when rules of page
// definitions. A rule is built from field names, optionally negated with `!`
// or compared with `==` / `!=` against a quoted string, a bare word or
// true/false, and joined with `&&`, `||` and parentheses:
//
//	!active
//	extras.hide_network
//	status == "closed" || extcol_region != EU
//
// Names resolve through visibility.Context.Value. Rules are compiled once per
// Evaluator.
type Evaluator struct {
	compiled sync.Map // rule -> predicate
}

var _ visibility.Evaluator = (*Evaluator)(nil)

func New() *Evaluator { return &Evaluator{} }

// Eval reports whether rule holds. An empty rule holds.
func (e *Evaluator) Eval(_ string, rule string, ctx visibility.Context) (bool, error) {
	rule = strings.TrimSpace(rule)
	if rule == "" {
		return true, nil
	}
	if cached, ok := e.compiled.Load(rule); ok {
		return cached.(predicate)(ctx), nil
	}
	pred, err := compile(rule)
	if err != nil {
		return false, err
	}
	e.compiled.Store(rule, pred)
	return pred(ctx), nil
}

type predicate func(visibility.Context) bool

type tokenKind int

const (
	tokEnd tokenKind = iota
	tokName
	tokString
	tokNot
	tokEq
	tokNeq
	tokAnd
	tokOr
	tokOpen
	tokClose
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

var operators = []struct {
	text string
	kind tokenKind
}{
	{"==", tokEq},
	{"!=", tokNeq},
	{"&&", tokAnd},
	{"||", tokOr},
	{"!", tokNot},
	{"(", tokOpen},
	{")", tokClose},
}

func scan(rule string) ([]token, error) {
	var tokens []token
scanning:
	for i := 0; i < len(rule); {
		c := rule[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
			continue
		case c == '"' || c == '\'':
			end := strings.IndexByte(rule[i+1:], c)
			if end < 0 {
				return nil, fmt.Errorf("visibility/expr: unterminated string at %d", i)
			}
			tokens = append(tokens, token{kind: tokString, text: rule[i+1 : i+1+end], pos: i})
			i += end + 2
			continue
		case isNameByte(c):
			start := i
			for i < len(rule) && isNameByte(rule[i]) {
				i++
			}
			tokens = append(tokens, token{kind: tokName, text: rule[start:i], pos: start})
			continue
		}
		for _, op := range operators {
			if strings.HasPrefix(rule[i:], op.text) {
				tokens = append(tokens, token{kind: op.kind, text: op.text, pos: i})
				i += len(op.text)
				continue scanning
			}
		}
		return nil, fmt.Errorf("visibility/expr: unexpected %q at %d", c, i)
	}
	return append(tokens, token{kind: tokEnd, pos: len(rule)}), nil
}

func isNameByte(c byte) bool {
	return c == '_' || c == '.' || c == '-' ||
		(c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

type parser struct {
	tokens []token
	pos    int
}

func compile(rule string) (predicate, error) {
	tokens, err := scan(rule)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens}
	pred, err := p.or()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.kind != tokEnd {
		return nil, fmt.Errorf("visibility/expr: unexpected %q at %d", t.text, t.pos)
	}
	return pred, nil
}

func (p *parser) peek() token { return p.tokens[p.pos] }

func (p *parser) next() token {
	t := p.tokens[p.pos]
	if t.kind != tokEnd {
		p.pos++
	}
	return t
}

func (p *parser) or() (predicate, error) {
	left, err := p.and()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokOr {
		p.next()
		right, err := p.and()
		if err != nil {
			return nil, err
		}
		l := left
		left = func(ctx visibility.Context) bool { return l(ctx) || right(ctx) }
	}
	return left, nil
}

func (p *parser) and() (predicate, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokAnd {
		p.next()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		l := left
		left = func(ctx visibility.Context) bool { return l(ctx) && right(ctx) }
	}
	return left, nil
}

func (p *parser) term() (predicate, error) {
	t := p.next()
	switch t.kind {
	case tokNot:
		inner, err := p.term()
		if err != nil {
			return nil, err
		}
		return func(ctx visibility.Context) bool { return !inner(ctx) }, nil
	case tokOpen:
		inner, err := p.or()
		if err != nil {
			return nil, err
		}
		if p.next().kind != tokClose {
			return nil, fmt.Errorf("visibility/expr: missing ')' for '(' at %d", t.pos)
		}
		return inner, nil
	case tokName:
		return p.comparison(t.text)
	case tokEnd:
		return nil, errors.New("visibility/expr: rule ends early")
	default:
		return nil, fmt.Errorf("visibility/expr: expected a field name at %d, got %q", t.pos, t.text)
	}
}

func (p *parser) comparison(name string) (predicate, error) {
	op := p.peek().kind
	if op != tokEq && op != tokNeq {
		return func(ctx visibility.Context) bool { return truthy(ctx.Value(name)) }, nil
	}
	p.next()
	operand := p.next()
	if operand.kind != tokName && operand.kind != tokString {
		return nil, fmt.Errorf("visibility/expr: %s needs a value to compare at %d", name, operand.pos)
	}
	match := matcher(operand)
	if op == tokNeq {
		return func(ctx visibility.Context) bool { return !match(ctx.Value(name)) }, nil
	}
	return func(ctx visibility.Context) bool { return match(ctx.Value(name)) }, nil
}

// matcher compares a bound value with an operand. Bare true and false compare
// as booleans, everything else as trimmed text.
func matcher(operand token) func(any) bool {
	if operand.kind == tokName {
		switch word := strings.ToLower(operand.text); word {
		case "true", "false":
			want := word == "true"
			return func(value any) bool { return truthy(value) == want }
		}
	}
	want := operand.text
	return func(value any) bool { return text(value) == want }
}

// truthy treats bool-like form strings ("1", "f", "false") as booleans and any
// other non-empty value as true.
func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		v = strings.TrimSpace(v)
		if b, err := cast.ToBoolE(v); err == nil {
			return b
		}
		return v != ""
	case []any:
		return len(v) > 0
	case []string:
		return len(v) > 0
	case map[string]any:
		return len(v) > 0
	}
	if b, err := cast.ToBoolE(value); err == nil {
		return b
	}
	return true
}

func text(value any) string {
	if value == nil {
		return ""
	}
	out, err := cast.ToStringE(value)
	if err != nil {
		out = fmt.Sprint(value)
	}
	return strings.TrimSpace(out)
}
