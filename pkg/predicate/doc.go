// Package predicate provides small, generic predicate combinators together
// with a set of primitive type and attribute checks for dynamically typed
// values.
//
// A Predicate is any func(T) bool. Combinators take predicates and return a
// new predicate, so they nest freely:
//
//	isLabel := predicate.Every(
//	    predicate.IsString,
//	    predicate.Either(predicate.IsColor, predicate.HasText[any]("none")),
//	)
//	isLabel("#ff8800") // true
//	isLabel("red")     // false
//
// # Combinators
//
//   - Every – logical AND, true for an empty list, stops at the first false
//   - Any   – logical OR, false for an empty list, stops at the first true
//   - Either – two-argument Any
//   - Not   – negation
//
// # Primitive predicates
//
// The type checks (IsArray, IsBoolean, IsInteger, IsNull, IsObject, IsString)
// and attribute checks (HasLength, IsColor, IsEmptyString, IsPositive)
// classify values by their reflect.Kind, so named types such as
// `type Name string` behave like their underlying kind. They never panic:
// a value that has no length, is not numeric, and so on simply reports false.
//
// IsObject treats non-nil maps, structs and non-nil pointers to them as
// objects. Slices, arrays and nil are not objects. IsNull reports nil
// pointers, maps, channels, funcs and interfaces, but not nil slices.
//
// Primitive predicates are also available by name through Lookup and Names,
// which is what the expr subpackage uses to build predicates from YAML.
//
// # Tracing
//
// Traced decorates a predicate with debug-level structured logging of each
// evaluation result.
//
// All predicates are stateless and safe for concurrent use.
package predicate
