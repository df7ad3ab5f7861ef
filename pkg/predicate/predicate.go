package predicate

// Predicate reports whether a value satisfies a condition.
type Predicate[T any] func(T) bool

// Every returns a predicate that is true only when all predicates are true.
// Evaluation stops at the first false result. With no predicates the result
// is always true.
func Every[T any](predicates ...Predicate[T]) Predicate[T] {
	return func(v T) bool {
		for _, p := range predicates {
			if !p(v) {
				return false
			}
		}
		return true
	}
}

// Any returns a predicate that is true when at least one predicate is true.
// Evaluation stops at the first true result. With no predicates the result
// is always false.
func Any[T any](predicates ...Predicate[T]) Predicate[T] {
	return func(v T) bool {
		for _, p := range predicates {
			if p(v) {
				return true
			}
		}
		return false
	}
}

// Either is the two-argument form of Any.
func Either[T any](first, second Predicate[T]) Predicate[T] {
	return func(v T) bool {
		return first(v) || second(v)
	}
}

// Not negates p.
func Not[T any](p Predicate[T]) Predicate[T] {
	return func(v T) bool {
		return !p(v)
	}
}
