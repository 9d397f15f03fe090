// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package uniflow

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Effect is a deferred asynchronous computation that yields zero or one
// follow-up action of type A.
//
// Effects are inert values: constructing, mapping, or merging an effect
// performs no work. A store runs an effect exactly once after the dispatch
// that produced it, on its own goroutine; if the work yields an action, the
// store dispatches it through the tree's run loop.
//
// The zero value is the absent effect and is what a reducer returns when a
// transition has no asynchronous consequence.
type Effect[A any] struct {
	work func(ctx context.Context) (A, bool)
}

// Run constructs an effect from an asynchronous computation.
// The computation returns (action, true) to yield a follow-up action,
// or (zero, false) to yield nothing. The context is the base context of
// the store tree that eventually runs the effect.
func Run[A any](work func(ctx context.Context) (A, bool)) Effect[A] {
	return Effect[A]{work: work}
}

// None returns the absent effect. Equivalent to the zero value; provided
// for call sites where an explicit name reads better than Effect[A]{}.
func None[A any]() Effect[A] {
	return Effect[A]{}
}

// absent reports whether the effect carries no work.
func (e Effect[A]) absent() bool { return e.work == nil }

// MapEffect adapts the action an effect yields without re-running its work.
// The returned effect runs the original computation once and, if it yields
// an action, applies f to it. Mapping the absent effect is absent.
//
// This is how a scoped component's effect is lifted to a parent's action
// type: the underlying work is shared, only the yielded value is rewrapped.
func MapEffect[A, B any](e Effect[A], f func(A) B) Effect[B] {
	if e.absent() {
		return Effect[B]{}
	}
	return Effect[B]{work: func(ctx context.Context) (B, bool) {
		a, ok := e.work(ctx)
		if !ok {
			var zero B
			return zero, false
		}
		return f(a), true
	}}
}

// mergeEffects joins the effects of two combined reducers.
//
// Both computations start concurrently and both are run to completion.
// The merged effect then resolves left-biased: first's action if it yielded
// one, otherwise second's. The left bias is deliberate and independent of
// which computation finishes first; completion order never decides the
// winner.
func mergeEffects[A any](first, second Effect[A]) Effect[A] {
	if first.absent() {
		return second
	}
	if second.absent() {
		return first
	}
	return Effect[A]{work: func(ctx context.Context) (A, bool) {
		var (
			fa, sa A
			fok    bool
			sok    bool
		)
		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			fa, fok = first.work(ctx)
			return nil
		})
		g.Go(func() error {
			sa, sok = second.work(ctx)
			return nil
		})
		_ = g.Wait()
		if fok {
			return fa, true
		}
		return sa, sok
	}}
}
