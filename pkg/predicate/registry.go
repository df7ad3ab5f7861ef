package predicate

import (
	"maps"
	"slices"
)

var registry = map[string]Predicate[any]{
	"isArray":       IsArray,
	"isBoolean":     IsBoolean,
	"isInteger":     IsInteger,
	"isNull":        IsNull,
	"isObject":      IsObject,
	"isString":      IsString,
	"hasLength":     HasLength,
	"isColor":       IsColor,
	"isEmptyString": IsEmptyString,
	"isPositive":    IsPositive,
}

// Lookup returns the primitive predicate registered under name, e.g. "isColor".
func Lookup(name string) (Predicate[any], bool) {
	p, ok := registry[name]
	return p, ok
}

// Names returns the registered predicate names in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(registry))
}
