// Package fuzzy implements an incremental ordered-subsequence filter.
//
// A Filter is seeded with candidates, each a key (a sequence of atoms) and
// an opaque value. Every Advance consumes one atom: a candidate survives if
// the atom occurs in its key after the position matched by the previous
// atom. Candidates that fail are dropped for the rest of the session, so the
// live set only ever shrinks. Results keep the original input order.
package fuzzy

import (
	"slices"
	"strings"
)

// Candidate seeds one filter element.
type Candidate[K comparable, V any] struct {
	Key   []K
	Value V
}

type element[K comparable, V any] struct {
	key    []K
	cursor int
	value  V
}

// next moves the cursor to the following occurrence of atom.
func (e *element[K, V]) next(atom K) bool {
	for i := e.cursor + 1; i < len(e.key); i++ {
		if e.key[i] == atom {
			e.cursor = i
			return true
		}
	}
	e.cursor = len(e.key)
	return false
}

// Filter is one filter session. It is not safe for concurrent use.
type Filter[K comparable, V any] struct {
	elems []element[K, V]
}

// New starts a session over candidates. Keys are copied.
func New[K comparable, V any](candidates []Candidate[K, V]) *Filter[K, V] {
	elems := make([]element[K, V], 0, len(candidates))
	for _, c := range candidates {
		elems = append(elems, element[K, V]{
			key:    slices.Clone(c.Key),
			cursor: -1,
			value:  c.Value,
		})
	}
	return &Filter[K, V]{elems: elems}
}

// Advance consumes atom and returns the values still live.
func (f *Filter[K, V]) Advance(atom K) []V {
	live := f.elems[:0]
	for _, e := range f.elems {
		if e.next(atom) {
			live = append(live, e)
		}
	}
	clear(f.elems[len(live):])
	f.elems = live
	return f.Remaining()
}

// Remaining returns the live values in input order.
func (f *Filter[K, V]) Remaining() []V {
	out := make([]V, len(f.elems))
	for i, e := range f.elems {
		out[i] = e.value
	}
	return out
}

// Len reports the number of live elements.
func (f *Filter[K, V]) Len() int {
	return len(f.elems)
}

// ValueOf returns the value of the first live element whose key equals key.
func (f *Filter[K, V]) ValueOf(key []K) (V, bool) {
	for _, e := range f.elems {
		if slices.Equal(e.key, key) {
			return e.value, true
		}
	}
	var zero V
	return zero, false
}

// UpdateValueOf replaces the value of the first live element whose key
// equals key. Filter progress is kept.
func (f *Filter[K, V]) UpdateValueOf(key []K, value V) bool {
	for i := range f.elems {
		if slices.Equal(f.elems[i].key, key) {
			f.elems[i].value = value
			return true
		}
	}
	return false
}

// UpdateWhere rewrites the value of the first live element accepted by
// match. Use it when keys are not unique.
func (f *Filter[K, V]) UpdateWhere(match func(V) bool, update func(V) V) bool {
	for i := range f.elems {
		if match(f.elems[i].value) {
			f.elems[i].value = update(f.elems[i].value)
			return true
		}
	}
	return false
}

// RuneKey builds the lowercased rune key used for name matching.
func RuneKey(s string) []rune {
	return []rune(strings.ToLower(s))
}
