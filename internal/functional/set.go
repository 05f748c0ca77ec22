// Package functional provides immutable collection types.
//
// All mutating operations return a new collection; the receiver is never
// altered, so prior values stay valid indefinitely and can be shared
// freely without copying or locking.
package functional

// Set is an immutable, duplicate-free collection of comparable elements.
//
// The zero value is an empty set ready for use. Add and Delete return new
// sets built by copy-on-write; the receiver is unaffected.
type Set[T comparable] struct {
	members map[T]struct{}
}

// NewSet returns a set containing the given elements.
func NewSet[T comparable](elems ...T) Set[T] {
	m := make(map[T]struct{}, len(elems))
	for _, e := range elems {
		m[e] = struct{}{}
	}
	return Set[T]{members: m}
}

// Has reports whether x is a member of the set.
func (s Set[T]) Has(x T) bool {
	_, ok := s.members[x]
	return ok
}

// Len returns the number of elements in the set.
func (s Set[T]) Len() int { return len(s.members) }

// Add returns a set that contains x in addition to the receiver's
// elements. If x is already present the receiver is returned as-is.
func (s Set[T]) Add(x T) Set[T] {
	if s.Has(x) {
		return s
	}
	m := make(map[T]struct{}, len(s.members)+1)
	for e := range s.members {
		m[e] = struct{}{}
	}
	m[x] = struct{}{}
	return Set[T]{members: m}
}

// Delete returns a set with x removed. If x is absent the receiver is
// returned as-is.
func (s Set[T]) Delete(x T) Set[T] {
	if !s.Has(x) {
		return s
	}
	m := make(map[T]struct{}, len(s.members)-1)
	for e := range s.members {
		if e != x {
			m[e] = struct{}{}
		}
	}
	return Set[T]{members: m}
}

// Values returns the elements in unspecified order.
func (s Set[T]) Values() []T {
	out := make([]T, 0, len(s.members))
	for e := range s.members {
		out = append(out, e)
	}
	return out
}

// Iter applies f to each element until f returns false or the set is
// exhausted. Iteration order is unspecified.
func (s Set[T]) Iter(f func(x T) bool) {
	for e := range s.members {
		if !f(e) {
			return
		}
	}
}
