// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package uniflow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/uniflow"
)

func TestViewState(t *testing.T) {
	v := uniflow.NewView(counter{Count: 3, Name: "x"})
	assert.Equal(t, counter{Count: 3, Name: "x"}, v.State())
}

func TestViewScopedChildMutates(t *testing.T) {
	v := uniflow.NewView(counter{Name: "x"})

	var published []counter
	cancel := v.Subscribe(func(s counter) { published = append(published, s) })
	defer cancel()

	child := uniflow.ScopeView(v, countLens(), intReducer)
	child.Send("inc", "inc")

	// The child is the only mutation path into the view's state.
	assert.Equal(t, counter{Count: 2, Name: "x"}, v.State())
	require.Len(t, published, 2)
	assert.Equal(t, 1, published[0].Count)
	assert.Equal(t, 2, published[1].Count)
}

func TestViewSubscribeCancel(t *testing.T) {
	v := uniflow.NewView(counter{})
	child := uniflow.ScopeView(v, countLens(), intReducer)

	seen := 0
	cancel := v.Subscribe(func(counter) { seen++ })

	child.Send("inc")
	cancel()
	child.Send("inc")

	assert.Equal(t, 1, seen)
	assert.Equal(t, 2, v.State().Count)
}

func TestViewGrandchildPropagates(t *testing.T) {
	type app struct {
		Tally counter
	}
	tallyLens := uniflow.NewLens(
		func(a app) counter { return a.Tally },
		func(a app, c counter) app { a.Tally = c; return a },
	)

	v := uniflow.NewView(app{Tally: counter{Name: "x"}})
	mid := uniflow.ScopeView(v, tallyLens, counterReducer)
	leaf := uniflow.Scope(mid, countLens(), intReducer)

	leaf.Send("inc")

	assert.Equal(t, app{Tally: counter{Count: 1, Name: "x"}}, v.State())
}
