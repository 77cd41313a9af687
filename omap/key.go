package omap

import (
	"cmp"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind is the discriminant of a Key.
type Kind uint8

// Key kinds. KindNone is the kind of the zero Key and of an empty map.
const (
	KindNone Kind = iota
	KindString
	KindInt
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	}
	return "none"
}

// FloatEpsilon is the absolute difference below which two float keys are
// considered equal.
const FloatEpsilon = 1e-6

// Key is a map key: a string, an integer or a float, tagged with its Kind.
//
// Keys are small values and are passed by value. Use StringKey, IntKey and
// FloatKey to create them; the zero Key has KindNone and is not a valid map
// key.
type Key struct {
	kind Kind
	s    string
	i    int
	f    float64
}

// StringKey creates a key of kind KindString.
func StringKey(s string) Key {
	return Key{kind: KindString, s: s}
}

// IntKey creates a key of kind KindInt.
func IntKey(i int) Key {
	return Key{kind: KindInt, i: i}
}

// FloatKey creates a key of kind KindFloat.
func FloatKey(f float64) Key {
	return Key{kind: KindFloat, f: f}
}

// Kind returns the discriminant of k.
func (k Key) Kind() Kind {
	return k.kind
}

// Str returns the string payload of a KindString key and "" otherwise.
func (k Key) Str() string {
	return k.s
}

// Int returns the integer payload of a KindInt key and 0 otherwise.
func (k Key) Int() int {
	return k.i
}

// Float returns the float payload of a KindFloat key and 0 otherwise.
func (k Key) Float() float64 {
	return k.f
}

// Validate checks that k can take part in ordering. String keys must not
// contain NUL bytes, float keys must not be NaN.
func (k Key) Validate() error {
	switch k.kind {
	case KindString:
		if strings.IndexByte(k.s, 0) >= 0 {
			return fmt.Errorf("%w: string key %q contains NUL", ErrInvalidKey, k.s)
		}
	case KindInt:
	case KindFloat:
		if math.IsNaN(k.f) {
			return fmt.Errorf("%w: float key is NaN", ErrInvalidKey)
		}
	default:
		return fmt.Errorf("%w: key has no kind", ErrInvalidKey)
	}
	return nil
}

func (k Key) String() string {
	switch k.kind {
	case KindString:
		return k.s
	case KindInt:
		return strconv.Itoa(k.i)
	case KindFloat:
		return strconv.FormatFloat(k.f, 'g', -1, 64)
	}
	return "<none>"
}

// Compare orders two keys of the same kind and returns a negative number,
// zero, or a positive number if a is less than, equal to, or greater than b.
//
// Strings compare byte-wise, integers numerically, and floats numerically
// with two floats being equal if they differ by less than FloatEpsilon.
// Keys of different kinds are not ordered: Compare returns ErrKindMismatch.
func Compare(a, b Key) (int, error) {
	if a.kind != b.kind {
		return 0, fmt.Errorf("%w: %s vs %s", ErrKindMismatch, a.kind, b.kind)
	}
	return compareSameKind(a, b), nil
}

// compareSameKind is the comparison used on the hot path of the tree, where
// kinds have already been checked.
func compareSameKind(a, b Key) int {
	switch a.kind {
	case KindString:
		return strings.Compare(a.s, b.s)
	case KindInt:
		return cmp.Compare(a.i, b.i)
	case KindFloat:
		if math.Abs(a.f-b.f) < FloatEpsilon {
			return 0
		} else if a.f < b.f {
			return -1
		}
		return 1
	}
	return 0
}
