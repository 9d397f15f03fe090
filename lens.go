// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package uniflow

// Lens is a bidirectional accessor pair identifying how a child value of
// type C sits inside a parent state of type S.
//
// A lens used for scoping must satisfy the lens laws:
//
//	l.Get(l.Set(s, c)) == c
//	l.Set(s, l.Get(s)) == s
//
// Violating either law breaks parent/child synchronization: the slice a
// child writes back would not be the slice it reads.
type Lens[S, C any] struct {
	get func(S) C
	set func(S, C) S
}

// NewLens creates a lens from a get and a set function.
// Both must be pure; Set returns a new parent value rather than mutating.
func NewLens[S, C any](get func(S) C, set func(S, C) S) Lens[S, C] {
	return Lens[S, C]{get: get, set: set}
}

// Get extracts the focused child value from the parent.
func (l Lens[S, C]) Get(s S) C { return l.get(s) }

// Set returns the parent with the focused child value replaced.
func (l Lens[S, C]) Set(s S, c C) S { return l.set(s, c) }

// Modify applies f to the focused value and writes the result back.
func (l Lens[S, C]) Modify(s S, f func(C) C) S {
	return l.set(s, f(l.get(s)))
}

// ComposeLens focuses deeper: the result reads and writes B through the
// intermediate A. Composition preserves the lens laws when both operands
// satisfy them.
func ComposeLens[S, A, B any](outer Lens[S, A], inner Lens[A, B]) Lens[S, B] {
	return Lens[S, B]{
		get: func(s S) B { return inner.get(outer.get(s)) },
		set: func(s S, b B) S {
			return outer.set(s, inner.set(outer.get(s), b))
		},
	}
}

// IdentityLens focuses on the whole state.
func IdentityLens[S any]() Lens[S, S] {
	return Lens[S, S]{
		get: func(s S) S { return s },
		set: func(_ S, s S) S { return s },
	}
}
