package expr

import (
	"reflect"

	"github.com/dmitrymomot/predicate/pkg/predicate"
)

// hasNumber matches numeric values equal to n whatever their Go type, so
// `hasText: 42` matches a document decoded as int 42 as well as float 42.0.
func hasNumber(n float64) predicate.Predicate[any] {
	return func(v any) bool {
		f, ok := asNumber(v)
		return ok && f == n
	}
}

func asNumber(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}
