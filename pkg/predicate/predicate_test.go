package predicate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/predicate/pkg/predicate"
)

func alwaysTrue(any) bool  { return true }
func alwaysFalse(any) bool { return false }

// counting wraps p and counts its invocations.
func counting(p predicate.Predicate[any], n *int) predicate.Predicate[any] {
	return func(v any) bool {
		*n++
		return p(v)
	}
}

func TestEvery(t *testing.T) {
	t.Parallel()

	t.Run("empty list is always true", func(t *testing.T) {
		p := predicate.Every[any]()
		assert.True(t, p(nil))
		assert.True(t, p(0))
		assert.True(t, p("anything"))
	})

	t.Run("matches logical and", func(t *testing.T) {
		preds := []predicate.Predicate[any]{alwaysTrue, alwaysFalse}
		for _, p1 := range preds {
			for _, p2 := range preds {
				for _, v := range []any{nil, 1, "x"} {
					assert.Equal(t, p1(v) && p2(v), predicate.Every(p1, p2)(v))
				}
			}
		}
	})

	t.Run("combines primitive predicates", func(t *testing.T) {
		p := predicate.Every(predicate.IsString, predicate.HasLength)
		assert.True(t, p("abc"))
		assert.False(t, p(""))
		assert.False(t, p([]int{1}))
	})

	t.Run("stops at first false", func(t *testing.T) {
		var first, second int
		p := predicate.Every(counting(alwaysFalse, &first), counting(alwaysTrue, &second))
		assert.False(t, p(1))
		assert.Equal(t, 1, first)
		assert.Equal(t, 0, second)
	})

	t.Run("works with typed predicates", func(t *testing.T) {
		even := func(n int) bool { return n%2 == 0 }
		p := predicate.Every(predicate.Positive[int], even)
		assert.True(t, p(4))
		assert.False(t, p(3))
		assert.False(t, p(-2))
	})
}

func TestAny(t *testing.T) {
	t.Parallel()

	t.Run("empty list is always false", func(t *testing.T) {
		p := predicate.Any[any]()
		assert.False(t, p(nil))
		assert.False(t, p(1))
		assert.False(t, p("anything"))
	})

	t.Run("matches logical or", func(t *testing.T) {
		preds := []predicate.Predicate[any]{alwaysTrue, alwaysFalse}
		for _, p1 := range preds {
			for _, p2 := range preds {
				for _, v := range []any{nil, 1, "x"} {
					assert.Equal(t, p1(v) || p2(v), predicate.Any(p1, p2)(v))
				}
			}
		}
	})

	t.Run("stops at first true", func(t *testing.T) {
		var first, second int
		p := predicate.Any(counting(alwaysTrue, &first), counting(alwaysFalse, &second))
		assert.True(t, p(1))
		assert.Equal(t, 1, first)
		assert.Equal(t, 0, second)
	})

	t.Run("combines primitive predicates", func(t *testing.T) {
		p := predicate.Any(predicate.IsNull, predicate.IsColor)
		assert.True(t, p(nil))
		assert.True(t, p("#a0b1c2"))
		assert.False(t, p("blue"))
	})
}

func TestEither(t *testing.T) {
	t.Parallel()

	t.Run("equivalent to any of two", func(t *testing.T) {
		preds := []predicate.Predicate[any]{alwaysTrue, alwaysFalse, predicate.IsString, predicate.IsPositive}
		values := []any{nil, -1, 0, 2, "", "s", []any{}}
		for _, p1 := range preds {
			for _, p2 := range preds {
				for _, v := range values {
					assert.Equal(t, predicate.Any(p1, p2)(v), predicate.Either(p1, p2)(v))
				}
			}
		}
	})

	t.Run("evaluates left to right", func(t *testing.T) {
		var first, second int
		p := predicate.Either(counting(alwaysTrue, &first), counting(alwaysTrue, &second))
		assert.True(t, p("x"))
		assert.Equal(t, 1, first)
		assert.Equal(t, 0, second)
	})
}

func TestNot(t *testing.T) {
	t.Parallel()

	p := predicate.Not(predicate.IsEmptyString)
	assert.True(t, p("x"))
	assert.False(t, p(""))
	assert.True(t, predicate.Not(predicate.Any[any]())(42))
}

func TestNesting(t *testing.T) {
	t.Parallel()

	isLabel := predicate.Every(
		predicate.IsString,
		predicate.Either(predicate.IsColor, predicate.HasText[any]("none")),
	)
	assert.True(t, isLabel("#ff8800"))
	assert.True(t, isLabel("none"))
	assert.False(t, isLabel("red"))
	assert.False(t, isLabel(0xff8800))
}

func TestNilPredicatePanicsOnCall(t *testing.T) {
	t.Parallel()

	p := predicate.Every[any](nil)
	assert.Panics(t, func() { p(1) })
}
