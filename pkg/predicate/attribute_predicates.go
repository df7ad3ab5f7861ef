package predicate

import (
	"reflect"
	"regexp"
)

var colorRegex = regexp.MustCompile(`(?i)^#[0-9A-F]{6}$`)

// HasLength reports whether v is a string, slice, array, map or channel with
// at least one element. Values without a length are reported as false.
func HasLength(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return rv.Len() > 0
	default:
		return false
	}
}

// HasText returns a predicate matching values equal to text.
// Values that hold maps, slices or funcs behind an interface never match,
// even when compared with themselves.
func HasText[T comparable](text T) Predicate[T] {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Interface, reflect.Struct, reflect.Array:
	default:
		return func(v T) bool {
			return v == text
		}
	}
	if !isComparable(text) {
		return func(T) bool { return false }
	}
	return func(v T) bool {
		return isComparable(v) && v == text
	}
}

// isComparable reports whether the dynamic value of v can be used with ==
// without panicking.
func isComparable(v any) bool {
	if v == nil {
		return true
	}
	return reflect.ValueOf(v).Comparable()
}

// IsColor reports whether v is a #RRGGBB hex color, in any letter case.
func IsColor(v any) bool {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.String {
		return false
	}
	return colorRegex.MatchString(rv.String())
}

func IsEmptyString(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.String && rv.Len() == 0
}

// IsPositive reports whether v is a number strictly greater than zero.
// Non-numeric values are never positive.
func IsPositive(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() > 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() > 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() > 0
	default:
		return false
	}
}

// Positive is the statically typed form of IsPositive.
func Positive[T Numeric](v T) bool {
	var zero T
	return v > zero
}
