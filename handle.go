// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package uniflow

import (
	"log/slog"

	"github.com/google/uuid"
)

// ParentLink is the type-erased upward handle a scoped store holds on its
// parent. It narrows the parent to exactly two capabilities — accept a state
// update for one lens identity, and forward an action — hiding the parent's
// concrete state and action types from the child's interface.
//
// The capabilities are closures captured when the link is constructed by
// Scope, so each link is monomorphic over the lens it was built with; there
// is no reflective dispatch. The any-typed boundary exists only because the
// child cannot name the parent's types. A payload that does not match the
// captured types is silently dropped: the operation returns false, logs a
// warning, and leaves the parent untouched. In correct usage the drop path
// never executes; any occurrence is a programming-error signal.
type ParentLink struct {
	id      uuid.UUID
	apply   func(value any) bool
	forward func(action any) bool
}

// LensID identifies the lens this link propagates through.
func (l *ParentLink) LensID() uuid.UUID { return l.id }

// ApplyState writes value into the parent's state through the link's lens,
// bypassing the parent's reducer, and publishes the result through the
// parent's own notification path (and onward up the tree). Reports whether
// the value matched the child state type the link was built for.
func (l *ParentLink) ApplyState(value any) bool { return l.apply(value) }

// ForwardAction dispatches action on the parent store.
// Reports whether the action matched the parent's action type.
func (l *ParentLink) ForwardAction(action any) bool { return l.forward(action) }

// newParentLink builds the erased handle from a parent store and a lens.
// Type checks happen here, against the concrete types the closures close
// over, not by runtime inspection at dispatch time.
func newParentLink[C, S, A any](parent *Store[S, A], lens Lens[S, C]) *ParentLink {
	id := uuid.New()
	return &ParentLink{
		id: id,
		apply: func(value any) bool {
			c, ok := value.(C)
			if !ok {
				parent.logger.Warn("uniflow: dropped state update at erased boundary",
					slog.String("lens", id.String()))
				return false
			}
			parent.writeSlice(func(s S) S { return lens.Set(s, c) })
			return true
		},
		forward: func(action any) bool {
			a, ok := action.(A)
			if !ok {
				parent.logger.Warn("uniflow: dropped action at erased boundary",
					slog.String("lens", id.String()))
				return false
			}
			parent.Send(a)
			return true
		},
	}
}
