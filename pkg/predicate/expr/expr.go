package expr

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/predicate/pkg/predicate"
)

// Combinator keys accepted in a mapping node.
const (
	KeyEvery   = "every"
	KeyAny     = "any"
	KeyEither  = "either"
	KeyNot     = "not"
	KeyHasText = "hasText"
)

// Option configures Parse.
type Option func(*parser)

// WithLogger wraps every node of the parsed expression in predicate.Traced.
func WithLogger(log *slog.Logger) Option {
	return func(p *parser) {
		p.log = log
	}
}

type parser struct {
	log *slog.Logger
}

// Parse builds a predicate from a YAML (or JSON) expression.
//
//	every:
//	  - isString
//	  - either: [isColor, {hasText: transparent}]
func Parse(data []byte, opts ...Option) (predicate.Predicate[any], error) {
	p := &parser{}
	for _, opt := range opts {
		opt(p)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrInvalidExpression, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, ErrEmptyExpression
	}
	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && root.ShortTag() == "!!null" {
		return nil, ErrEmptyExpression
	}
	return p.build(root)
}

// ParseFile reads and parses the expression stored at path.
func ParseFile(path string, opts ...Option) (predicate.Predicate[any], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrReadExpression, err)
	}
	return Parse(data, opts...)
}

// MustParse is like Parse but panics on error.
func MustParse(src string, opts ...Option) predicate.Predicate[any] {
	p, err := Parse([]byte(src), opts...)
	if err != nil {
		panic(fmt.Sprintf("expr: %v", err))
	}
	return p
}

func (p *parser) build(n *yaml.Node) (predicate.Predicate[any], error) {
	switch n.Kind {
	case yaml.AliasNode:
		return p.build(n.Alias)
	case yaml.ScalarNode:
		return p.buildNamed(n)
	case yaml.MappingNode:
		return p.buildCombinator(n)
	default:
		return nil, errors.Join(ErrInvalidExpression,
			fmt.Errorf("line %d: expected a predicate name or a single-key mapping", n.Line))
	}
}

func (p *parser) buildNamed(n *yaml.Node) (predicate.Predicate[any], error) {
	if n.ShortTag() != "!!str" {
		return nil, errors.Join(ErrInvalidExpression,
			fmt.Errorf("line %d: predicate name must be a string, got %q", n.Line, n.Value))
	}
	fn, ok := predicate.Lookup(n.Value)
	if !ok {
		return nil, errors.Join(ErrUnknownPredicate, fmt.Errorf("line %d: %q", n.Line, n.Value))
	}
	return p.trace(n.Value, fn), nil
}

func (p *parser) buildCombinator(n *yaml.Node) (predicate.Predicate[any], error) {
	if len(n.Content) != 2 {
		return nil, errors.Join(ErrInvalidExpression,
			fmt.Errorf("line %d: combinator mapping must have exactly one key", n.Line))
	}
	key, val := n.Content[0], n.Content[1]

	switch key.Value {
	case KeyEvery, KeyAny:
		operands, err := p.buildList(key.Value, val)
		if err != nil {
			return nil, err
		}
		if key.Value == KeyEvery {
			return p.trace(KeyEvery, predicate.Every(operands...)), nil
		}
		return p.trace(KeyAny, predicate.Any(operands...)), nil

	case KeyEither:
		operands, err := p.buildList(key.Value, val)
		if err != nil {
			return nil, err
		}
		if len(operands) != 2 {
			return nil, errors.Join(ErrInvalidArity,
				fmt.Errorf("line %d: %s takes 2 operands, got %d", key.Line, KeyEither, len(operands)))
		}
		return p.trace(KeyEither, predicate.Either(operands[0], operands[1])), nil

	case KeyNot:
		operand, err := p.build(val)
		if err != nil {
			return nil, err
		}
		return p.trace(KeyNot, predicate.Not(operand)), nil

	case KeyHasText:
		if val.Kind != yaml.ScalarNode {
			return nil, errors.Join(ErrInvalidExpression,
				fmt.Errorf("line %d: %s expects a scalar value", val.Line, KeyHasText))
		}
		var text any
		if err := val.Decode(&text); err != nil {
			return nil, errors.Join(ErrInvalidExpression, err)
		}
		if n, ok := asNumber(text); ok {
			return p.trace(KeyHasText, hasNumber(n)), nil
		}
		return p.trace(KeyHasText, predicate.HasText(text)), nil

	default:
		return nil, errors.Join(ErrUnknownCombinator, fmt.Errorf("line %d: %q", key.Line, key.Value))
	}
}

func (p *parser) buildList(name string, n *yaml.Node) ([]predicate.Predicate[any], error) {
	if n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	if n.Kind != yaml.SequenceNode {
		return nil, errors.Join(ErrInvalidExpression,
			fmt.Errorf("line %d: %s expects a list of expressions", n.Line, name))
	}
	operands := make([]predicate.Predicate[any], 0, len(n.Content))
	for _, child := range n.Content {
		op, err := p.build(child)
		if err != nil {
			return nil, err
		}
		operands = append(operands, op)
	}
	return operands, nil
}

func (p *parser) trace(name string, fn predicate.Predicate[any]) predicate.Predicate[any] {
	if p.log == nil {
		return fn
	}
	return predicate.Traced(p.log, name, fn)
}
