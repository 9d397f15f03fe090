// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package uniflow

// Reducer is a pure mapping from (current state, incoming action) to
// (updated state, optional effect).
//
// A reducer mutates the state in place through the pointer and returns the
// effect describing any asynchronous consequence of the transition. It must
// not block and must not start asynchronous work itself; running the
// returned effect is solely the store's responsibility.
type Reducer[S, A any] func(state *S, action A) Effect[A]

// Combine composes two reducers over the same state and action types.
//
// The combined reducer applies both operands to the same incoming action,
// sequentially: first runs against the current state, then second runs
// against the state as first left it. Their effects are merged: if only one
// is present it passes through unchanged; if both are present the merged
// effect starts both concurrently, awaits both, and yields first's action
// when it produced one, otherwise second's (see mergeEffects).
//
// State mutation order is associative: Combine(Combine(a, b), c) and
// Combine(a, Combine(b, c)) apply a, b, c in the same order. The grouping of
// merged effects differs between the two, so merged-effect nesting is not
// associative; this asymmetry is part of the contract.
func Combine[S, A any](first, second Reducer[S, A]) Reducer[S, A] {
	return func(state *S, action A) Effect[A] {
		fe := first(state, action)
		se := second(state, action)
		return mergeEffects(fe, se)
	}
}

// CombineAll folds any number of reducers with Combine, left to right.
// CombineAll() is the identity reducer: it leaves state untouched and
// yields no effect.
func CombineAll[S, A any](reducers ...Reducer[S, A]) Reducer[S, A] {
	if len(reducers) == 0 {
		return func(*S, A) Effect[A] { return Effect[A]{} }
	}
	combined := reducers[0]
	for _, r := range reducers[1:] {
		combined = Combine(combined, r)
	}
	return combined
}
