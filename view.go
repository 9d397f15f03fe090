// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package uniflow

// Never is the uninhabited action type. It is an interface with an
// unexported method that nothing implements, so no non-nil Never value can
// be constructed; a store whose action type is Never cannot be sent to in
// any correct program. This is how the read-only projection forbids
// mutation statically rather than guarding at runtime.
type Never interface {
	never()
}

// neverReducer is the reducer of a read-only projection's inner store.
// No Never value exists, so no dispatch can ever reach it.
func neverReducer[S any](*S, Never) Effect[Never] {
	panic("uniflow: dispatch on a read-only projection")
}

// View is a read-only projection of a state value: it exposes the state and
// the ability to scope mutable children out of it, and nothing else. There
// is no action-accepting entry point; the only mutation path into a view's
// state is upward propagation from a child created by ScopeView.
type View[S any] struct {
	store *Store[S, Never]
}

// NewView creates a read-only projection owning initial.
func NewView[S any](initial S, opts ...Option) *View[S] {
	return &View[S]{store: New(initial, neverReducer[S], opts...)}
}

// State returns the most recently published state. Safe from any goroutine.
func (v *View[S]) State() S { return v.store.State() }

// Subscribe registers fn to be called after every mutation propagated up
// from a scoped child. Returns a cancel function.
func (v *View[S]) Subscribe(fn func(S)) (cancel func()) {
	return v.store.Subscribe(fn)
}

// ScopeView creates a mutable child store focused on a slice of the
// projection's state, exactly as Scope does on a store. Changes the child
// makes are written back and published to the view's subscribers.
func ScopeView[L, LA, S any](v *View[S], lens Lens[S, L], reducer Reducer[L, LA]) *Store[L, LA] {
	return Scope(v.store, lens, reducer)
}
