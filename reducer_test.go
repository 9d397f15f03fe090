// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package uniflow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"code.hybscloud.com/uniflow"
)

// appendReducer records its tag on every action it sees.
func appendReducer(tag string) uniflow.Reducer[[]string, string] {
	return func(s *[]string, _ string) uniflow.Effect[string] {
		*s = append(*s, tag)
		return uniflow.None[string]()
	}
}

func TestCombineRunsBothInOrder(t *testing.T) {
	r := uniflow.Combine(appendReducer("first"), appendReducer("second"))

	var s []string
	_ = r(&s, "go")
	assert.Equal(t, []string{"first", "second"}, s)
}

func TestCombineBothObserveSameAction(t *testing.T) {
	record := func(s *[]string, a string) uniflow.Effect[string] {
		*s = append(*s, a)
		return uniflow.None[string]()
	}
	r := uniflow.Combine(record, record)

	var s []string
	_ = r(&s, "tap")
	assert.Equal(t, []string{"tap", "tap"}, s)
}

func TestCombineSecondSeesFirstMutation(t *testing.T) {
	double := func(s *int, _ string) uniflow.Effect[string] {
		*s *= 2
		return uniflow.None[string]()
	}
	addOne := func(s *int, _ string) uniflow.Effect[string] {
		*s++
		return uniflow.None[string]()
	}

	s := 3
	_ = uniflow.Combine(double, addOne)(&s, "go")
	// (3 * 2) + 1, not (3 + 1) * 2.
	assert.Equal(t, 7, s)
}

func TestCombineStateOrderAssociative(t *testing.T) {
	a, b, c := appendReducer("a"), appendReducer("b"), appendReducer("c")

	var left, right []string
	_ = uniflow.Combine(uniflow.Combine(a, b), c)(&left, "go")
	_ = uniflow.Combine(a, uniflow.Combine(b, c))(&right, "go")
	assert.Equal(t, left, right)
}

func TestCombineAllEmptyIsIdentity(t *testing.T) {
	r := uniflow.CombineAll[[]string, string]()

	s := []string{"untouched"}
	_ = r(&s, "anything")
	assert.Equal(t, []string{"untouched"}, s)
}

func TestCombineAllFoldsLeftToRight(t *testing.T) {
	r := uniflow.CombineAll(appendReducer("a"), appendReducer("b"), appendReducer("c"))

	var s []string
	_ = r(&s, "go")
	assert.Equal(t, []string{"a", "b", "c"}, s)
}
