package predicate

import (
	"math"
	"reflect"
)

// IsArray reports whether v is a slice or an array. A typed nil slice is
// still an array.
func IsArray(v any) bool {
	switch kindOf(v) {
	case reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}

func IsBoolean(v any) bool {
	return kindOf(v) == reflect.Bool
}

// IsInteger reports whether v is an integer, or a finite float without a
// fractional part.
func IsInteger(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return !math.IsInf(f, 0) && !math.IsNaN(f) && f == math.Trunc(f)
	default:
		return false
	}
}

// IsNull reports whether v is nil or a nil pointer, interface, map, chan or
// func. Nil slices are not null.
func IsNull(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// IsObject reports whether v is a non-nil map, a struct, or a non-nil
// pointer to either. Arrays and slices are not objects.
func IsObject(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Struct:
		return true
	case reflect.Map:
		return !rv.IsNil()
	case reflect.Pointer:
		if rv.IsNil() {
			return false
		}
		switch rv.Elem().Kind() {
		case reflect.Struct:
			return true
		case reflect.Map:
			return !rv.Elem().IsNil()
		}
	}
	return false
}

func IsString(v any) bool {
	return kindOf(v) == reflect.String
}

// kindOf returns reflect.Invalid for untyped nil.
func kindOf(v any) reflect.Kind {
	return reflect.ValueOf(v).Kind()
}
