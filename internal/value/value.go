// Package value defines the format-agnostic data model for configuration
// documents: a recursive sum type over null, booleans, numbers, strings,
// arrays, and insertion-ordered objects. Codecs for the supported source
// formats live alongside it; everything downstream (the resolver, the
// output renderers) operates on this model only.
package value

import "encoding/json"

const (
	KindNull   = Kind("null")
	KindBool   = Kind("bool")
	KindNumber = Kind("number")
	KindString = Kind("string")
	KindArray  = Kind("array")
	KindObject = Kind("object")
)

// Kind identifies which variant of the sum type a Value is.
type Kind string

// Value is one parsed configuration datum. Implementations are immutable
// once produced by a codec; transformations build new Values rather than
// mutating in place.
type Value interface {
	// Kind reports the variant of this value.
	Kind() Kind
	// Native converts the value to its closest plain-Go representation.
	// Object key order is lost in the conversion; use the Object accessors
	// where order matters.
	Native() any
}

// Null is the explicit null value. It is distinct from an absent value,
// which is represented as a nil Value interface.
type Null struct{}

func (Null) Kind() Kind  { return KindNull }
func (Null) Native() any { return nil }

// Bool is a boolean value.
type Bool bool

func (Bool) Kind() Kind    { return KindBool }
func (b Bool) Native() any { return bool(b) }

// Number holds the source literal of a numeric value. Keeping the literal
// instead of a float64 means resolution never reformats "1e3" or loses
// precision on 64-bit integers.
type Number string

func (Number) Kind() Kind    { return KindNumber }
func (n Number) Native() any { return json.Number(n) }

// String is a string value.
type String string

func (String) Kind() Kind    { return KindString }
func (s String) Native() any { return string(s) }

// Array is an ordered sequence of values.
type Array []Value

func (Array) Kind() Kind { return KindArray }

func (a Array) Native() any {
	out := make([]any, len(a))
	for i, v := range a {
		out[i] = v.Native()
	}
	return out
}

// Object is a mapping from string keys to values that preserves key
// insertion order.
type Object struct {
	keys    []string
	entries map[string]Value
}

// NewObject returns an empty object.
func NewObject() *Object {
	return &Object{entries: make(map[string]Value)}
}

func (*Object) Kind() Kind { return KindObject }

func (o *Object) Native() any {
	out := make(map[string]any, len(o.keys))
	for k, v := range o.entries {
		out[k] = v.Native()
	}
	return out
}

// Set binds key to v. A new key is appended to the iteration order; an
// existing key keeps its original position.
func (o *Object) Set(key string, v Value) {
	if _, exists := o.entries[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.entries[key] = v
}

// Get returns the value bound to key, if any.
func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.entries[key]
	return v, ok
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.entries[key]
	return ok
}

// Len returns the number of keys.
func (o *Object) Len() int { return len(o.keys) }

// Keys returns the keys in insertion order. The returned slice is a copy.
func (o *Object) Keys() []string {
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// Equal reports deep equality of two values. Objects compare equal only
// when their key order matches as well as their contents; nil (absent)
// compares equal only to nil.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case Array:
		bv := b.(Array)
		if len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case *Object:
		bv := b.(*Object)
		if len(av.keys) != len(bv.keys) {
			return false
		}
		for i, k := range av.keys {
			if bv.keys[i] != k {
				return false
			}
			if !Equal(av.entries[k], bv.entries[k]) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}
