package eventually

import (
	"fmt"
	"strings"

	"github.com/stretchr/testify/assert"
)

// Matcher tests a polled value and describes what it expects. Matches may
// be called any number of times and must not have side effects.
type Matcher[T any] interface {
	Matches(actual T) bool
	String() string
}

type predicate[T any] struct {
	description string
	fn          func(T) bool
}

func (p predicate[T]) Matches(actual T) bool { return p.fn(actual) }
func (p predicate[T]) String() string        { return p.description }

// Satisfies matches values for which fn returns true.
func Satisfies[T any](description string, fn func(T) bool) Matcher[T] {
	return predicate[T]{description: description, fn: fn}
}

// Equal matches values equal to expected, compared as in assert.Equal.
func Equal[T any](expected T) Matcher[T] {
	return predicate[T]{
		description: fmt.Sprintf("equal to %#v", expected),
		fn: func(actual T) bool {
			return assert.ObjectsAreEqual(expected, actual)
		},
	}
}

// EqualValues is Equal with type conversion, as in assert.EqualValues.
func EqualValues[T any](expected interface{}) Matcher[T] {
	return predicate[T]{
		description: fmt.Sprintf("equal in value to %#v", expected),
		fn: func(actual T) bool {
			return assert.ObjectsAreEqualValues(expected, actual)
		},
	}
}

func NilError() Matcher[error] {
	return predicate[error]{
		description: "no error",
		fn:          func(err error) bool { return err == nil },
	}
}

func Not[T any](m Matcher[T]) Matcher[T] {
	return predicate[T]{
		description: "not " + m.String(),
		fn:          func(actual T) bool { return !m.Matches(actual) },
	}
}

// AllOf matches when every matcher does. With no matchers it always matches.
func AllOf[T any](matchers ...Matcher[T]) Matcher[T] {
	return predicate[T]{
		description: join(" and ", matchers),
		fn: func(actual T) bool {
			for _, m := range matchers {
				if !m.Matches(actual) {
					return false
				}
			}
			return true
		},
	}
}

// AnyOf matches when at least one matcher does. With no matchers it never
// matches.
func AnyOf[T any](matchers ...Matcher[T]) Matcher[T] {
	return predicate[T]{
		description: join(" or ", matchers),
		fn: func(actual T) bool {
			for _, m := range matchers {
				if m.Matches(actual) {
					return true
				}
			}
			return false
		},
	}
}

func join[T any](sep string, matchers []Matcher[T]) string {
	descriptions := make([]string, 0, len(matchers))
	for _, m := range matchers {
		descriptions = append(descriptions, "("+m.String()+")")
	}
	return strings.Join(descriptions, sep)
}
