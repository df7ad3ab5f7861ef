package expr

import "errors"

var (
	ErrEmptyExpression   = errors.New("expression is empty")
	ErrInvalidExpression = errors.New("invalid expression")
	ErrUnknownPredicate  = errors.New("unknown predicate")
	ErrUnknownCombinator = errors.New("unknown combinator")
	ErrInvalidArity      = errors.New("wrong number of operands")
	ErrReadExpression    = errors.New("failed to read expression")
)
