// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package uniflow provides a unidirectional state-management engine for
// reactive user interfaces.
//
// A [Store] owns one value-typed state and one [Reducer]; state changes only
// through declared actions dispatched with [Store.Send]. Side effects are
// modeled as [Effect] values — deferred asynchronous computations yielding
// zero or one follow-up action — which the store runs after the synchronous
// portion of a dispatch completes. Scoped child stores focus on a slice of a
// parent's state through a [Lens] and write every change back upward.
//
// # Design Philosophy
//
// uniflow provides:
//   - Value semantics throughout: state is replaced, never aliased
//   - A single serialized owner context per store tree, with effects as the
//     only concurrency escape hatch
//   - First-class composition: reducers combine, effects map, lenses compose
//
// # Core Types
//
//   - [Reducer]: pure mapping (state, action) → (mutated state, optional effect)
//   - [Effect]: inert deferred work yielding zero-or-one follow-up action
//   - [Lens]: get/set pair embedding a child state inside a parent state
//   - [Store]: the dispatch engine owning state, reducer, and upward link
//   - [View]: read-only projection whose action type is uninhabited
//
// # Dispatch
//
// [Store.Send] dispatches one or more actions in order. For each action,
// synchronously on the tree's run loop: the reducer mutates state in place,
// subscribers are notified of the new value, and — on a scoped store — the
// updated slice is written back into the parent through the lens, along the
// parent's own notification path, without invoking the parent's reducer.
// Only then is the action's effect scheduled. When an effect completes with
// an action, the completion re-enters through the run loop as a fresh
// dispatch rather than recursing on the effect's goroutine.
//
// # Composition
//
// [Combine] runs both reducers against the same action, sequentially over
// the same state. Their effects merge concurrently with a deterministic
// left-biased pick: both computations run to completion, and the first
// operand's action wins whenever it yielded one, regardless of which
// computation finished first. State order is associative under regrouping;
// merged-effect nesting is not, which is a documented asymmetry of the
// algebra.
//
// # Scoping
//
// [Scope] creates a child store from a lens satisfying the lens laws:
//
//	l.Get(l.Set(s, c)) == c
//	l.Set(s, l.Get(s)) == s
//
// The child takes a copy of the slice as its initial state, shares the
// tree's run loop, and holds a [ParentLink] — a type-erased handle exposing
// exactly two capabilities, accept-state-update and forward-action, built
// from closures captured at scope time. Payloads that do not match the
// captured types are dropped, logged, and reported with a false return;
// correct usage never takes that path.
//
// # Concurrency Model
//
// All state transitions in a tree are serialized on one run loop; callers
// treat Send, Update, Scope, and Subscribe as owner-context operations,
// while [Store.State] reads the last published snapshot and is safe from
// any goroutine. Effects run on their own goroutines with no ordering
// guarantee among themselves; their follow-up actions are dispatched in
// completion order. An effect whose store has been released completes into
// a no-op: the completion path holds the store weakly and has no other way
// back into the tree.
//
// # Example
//
//	type Counter struct{ Count int }
//
//	reducer := func(s *Counter, a string) uniflow.Effect[string] {
//		switch a {
//		case "inc":
//			s.Count++
//		case "dec":
//			s.Count--
//		}
//		return uniflow.None[string]()
//	}
//
//	store := uniflow.New(Counter{}, reducer)
//	cancel := store.Subscribe(func(s Counter) { fmt.Println(s.Count) })
//	defer cancel()
//	store.Send("inc", "inc", "dec") // prints 1, 2, 1
package uniflow
