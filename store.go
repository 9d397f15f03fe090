// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package uniflow

import (
	"context"
	"log/slog"
	"sync/atomic"
	"weak"

	"github.com/google/uuid"
)

// Store owns exactly one state value and one reducer, and drives the
// dispatch loop: reduce, publish, propagate upward, run the effect.
//
// A store tree is a rooted forest. Scoped children share the root's run
// loop, so every transition anywhere in the tree is serialized onto one
// logical owner context; no two reducer invocations in a tree overlap.
// Cycles are unconstructible: a child only ever comes into existence
// through Scope or ScopeView on an existing store.
//
// Send, Update, Scope, Subscribe and the ParentLink capabilities are
// owner-context operations: callers on other goroutines must marshal onto
// the owning context themselves. Effect completions are the one exception —
// the store marshals those in itself. State is safe from any goroutine: it
// reads an atomically maintained snapshot of the last published state.
type Store[S, A any] struct {
	loop    *loop
	ctx     context.Context
	logger  *slog.Logger
	state   S
	snap    atomic.Pointer[S]
	reducer Reducer[S, A]
	parent  *ParentLink
	subs    []subscriber[S]
}

type subscriber[S any] struct {
	id     uuid.UUID
	notify func(S)
}

// config carries tree-wide settings; children inherit the root's.
type config struct {
	logger *slog.Logger
	ctx    context.Context
}

// Option configures a store tree at construction.
type Option func(*config)

// WithLogger sets the logger used for erased-boundary drop diagnostics.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithContext sets the base context passed to effect work.
// Defaults to context.Background().
func WithContext(ctx context.Context) Option {
	return func(c *config) { c.ctx = ctx }
}

// New creates a root store with an initial state and a reducer.
func New[S, A any](initial S, reducer Reducer[S, A], opts ...Option) *Store[S, A] {
	cfg := config{logger: slog.Default(), ctx: context.Background()}
	for _, opt := range opts {
		opt(&cfg)
	}
	s := &Store[S, A]{
		loop:    &loop{},
		ctx:     cfg.ctx,
		logger:  cfg.logger,
		state:   initial,
		reducer: reducer,
	}
	s.snapshot()
	return s
}

// Send dispatches actions in order. Each action is dispatched fully — state
// reduced, the new state published to subscribers, and the updated slice
// propagated through the parent link — before the next action is touched.
// Effects scheduled by earlier actions run asynchronously and do not block
// later actions.
//
// Called with the loop idle (the normal owner-context case), all synchronous
// work completes before Send returns. Called reentrantly from a subscriber
// or while an effect completion is draining, the actions are enqueued behind
// the task in flight and Send returns immediately.
func (s *Store[S, A]) Send(actions ...A) {
	if len(actions) == 0 {
		return
	}
	s.loop.do(func() {
		for _, a := range actions {
			s.dispatch(a)
		}
	})
}

// dispatch runs one reduce/publish/propagate/effect cycle.
// Must run on the tree's loop.
func (s *Store[S, A]) dispatch(action A) {
	effect := s.reducer(&s.state, action)
	s.publish()
	s.propagate()
	if !effect.absent() {
		s.runEffect(effect)
	}
}

// snapshot records a copy of the current state for lock-free State reads.
// The copy, not the live state, is what escapes: the reducer keeps mutating
// s.state in place afterwards.
func (s *Store[S, A]) snapshot() {
	state := s.state
	s.snap.Store(&state)
}

// publish pushes the current state to every subscriber, in subscription
// order, synchronously. Must run on the tree's loop.
//
// Cancellations replace the subscriber slice rather than shifting it
// (see Subscribe), so the slice header captured by the range here stays
// valid even when a callback cancels mid-publication.
func (s *Store[S, A]) publish() {
	s.snapshot()
	for _, sub := range s.subs {
		sub.notify(s.state)
	}
}

// propagate writes the current state into the parent through the erased
// link. A raw slice write, never an action dispatch: the parent's reducer
// is not involved. Must run on the tree's loop.
func (s *Store[S, A]) propagate() {
	if s.parent != nil {
		s.parent.apply(s.state)
	}
}

// writeSlice applies a pure state rewrite bypassing the reducer, then
// publishes and propagates exactly as a dispatch would. Must run on the
// tree's loop.
func (s *Store[S, A]) writeSlice(rewrite func(S) S) {
	s.state = rewrite(s.state)
	s.publish()
	s.propagate()
}

// runEffect starts the effect on its own goroutine and, if it yields an
// action, marshals a follow-up dispatch onto the tree's loop.
//
// The goroutine holds the store only weakly: releasing every strong
// reference to a store while its effects are in flight turns their
// completions into no-ops rather than resurrecting the store.
func (s *Store[S, A]) runEffect(effect Effect[A]) {
	wp := weak.Make(s)
	l := s.loop
	ctx := s.ctx
	go func() {
		action, ok := effect.work(ctx)
		if !ok {
			return
		}
		l.do(func() {
			if store := wp.Value(); store != nil {
				store.dispatch(action)
			}
		})
	}()
}

// State returns the most recently published state. Safe to call from any
// goroutine, including from inside subscriber callbacks; a mutation in
// flight on the run loop is not visible until it publishes.
func (s *Store[S, A]) State() S { return *s.snap.Load() }

// Parent returns the type-erased upward link, or nil on a root store.
func (s *Store[S, A]) Parent() *ParentLink { return s.parent }

// Subscribe registers fn to be called with the new state after every
// mutation, whether it came from a dispatch, an Update, or a child's
// upward propagation. Returns a cancel function removing the subscription.
//
// Cancel may be called from inside a subscriber callback; a cancellation
// during a publication takes effect from the next one.
func (s *Store[S, A]) Subscribe(fn func(S)) (cancel func()) {
	id := uuid.New()
	s.subs = append(s.subs, subscriber[S]{id: id, notify: fn})
	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				// Copy-on-write: an in-place shift would corrupt a
				// publication ranging over the same backing array.
				next := make([]subscriber[S], 0, len(s.subs)-1)
				next = append(next, s.subs[:i]...)
				next = append(next, s.subs[i+1:]...)
				s.subs = next
				return
			}
		}
	}
}

// Update writes value at lens into s's state directly, bypassing the
// reducer, then publishes and propagates like any other mutation. The write
// is serialized on the tree's loop, so it cannot interleave with an
// in-flight dispatch.
func Update[V, S, A any](s *Store[S, A], lens Lens[S, V], value V) {
	s.loop.do(func() {
		s.writeSlice(func(state S) S { return lens.Set(state, value) })
	})
}

// Scope creates a child store focused on the slice lens addresses.
//
// The child captures a copy of the slice as its initial state and registers
// a type-erased upward link; from then on, every change to the child's
// state is immediately written back into the parent through the lens and
// published along the parent's own notification path, without invoking the
// parent's reducer. Between child mutations the two copies may transiently
// diverge if the parent's slice is rewritten by other means; the next child
// mutation overwrites it.
func Scope[L, LA, S, A any](s *Store[S, A], lens Lens[S, L], reducer Reducer[L, LA]) *Store[L, LA] {
	child := &Store[L, LA]{
		loop:    s.loop,
		ctx:     s.ctx,
		logger:  s.logger,
		state:   lens.Get(s.state),
		reducer: reducer,
		parent:  newParentLink(s, lens),
	}
	child.snapshot()
	return child
}
