// Package expr builds predicates from declarative YAML or JSON expressions.
//
// An expression is either the name of a primitive predicate registered in
// package predicate, or a mapping with exactly one combinator key:
//
//	isString                         # primitive predicate
//	{every: [isString, hasLength]}   # all operands must hold
//	{any: [isNull, isColor]}         # at least one operand holds
//	{either: [isNull, isColor]}      # exactly two operands
//	{not: isEmptyString}             # negation
//	{hasText: none}                  # equality with a scalar
//
// Errors wrap one of the package sentinels (ErrUnknownPredicate,
// ErrInvalidArity, ...) and carry the offending line number.
package expr
