// Copyright 2025 StreamNative, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package collection

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newABC() *Container[string, int] {
	return NewFrom(
		Entry[string, int]{Key: "a", Value: 1},
		Entry[string, int]{Key: "b", Value: 2},
		Entry[string, int]{Key: "c", Value: 3},
	)
}

func TestEach(t *testing.T) {
	c := newABC()

	var keys []string
	var values []int
	ret := c.Each(func(v int, k string) {
		keys = append(keys, k)
		values = append(values, v)
	})

	assert.Same(t, c, ret)
	assert.Equal(t, []string{"a", "b", "c"}, keys)
	assert.Equal(t, []int{1, 2, 3}, values)
	assert.Equal(t, 3, c.Size())
}

func TestFind(t *testing.T) {
	c := newABC()

	v, found := c.Find(func(v int, _ string) bool { return v > 1 })
	assert.True(t, found)
	assert.Equal(t, 2, v)

	v, found = c.Find(func(v int, _ string) bool { return v > 5 })
	assert.False(t, found)
	assert.Equal(t, 0, v)
}

func TestFindKey(t *testing.T) {
	c := newABC()

	k, found := c.FindKey(func(v int, _ string) bool { return v > 1 })
	assert.True(t, found)
	assert.Equal(t, "b", k)

	_, found = c.FindKey(func(v int, _ string) bool { return v > 5 })
	assert.False(t, found)
}

func TestFilter(t *testing.T) {
	c := newABC()

	out := c.Filter(func(v int, _ string) bool { return v > 1 })
	assert.Equal(t, []string{"b", "c"}, out.Keys())
	assert.Equal(t, []int{2, 3}, out.Values())

	// the receiver is untouched
	assert.Equal(t, 3, c.Size())

	empty := c.Filter(func(v int, _ string) bool { return v > 5 })
	assert.True(t, empty.IsEmpty())
}

func TestMap(t *testing.T) {
	c := newABC()

	out := c.Map(func(v int, _ string) int { return v * 10 })
	assert.Equal(t, c.Size(), out.Size())
	assert.Equal(t, c.Keys(), out.Keys())
	assert.Equal(t, []int{10, 20, 30}, out.Values())

	assert.Equal(t, []int{1, 2, 3}, c.Values())
}

func TestMapValues(t *testing.T) {
	c := newABC()

	out := MapValues(c, func(v int, k string) string {
		return k + strconv.Itoa(v)
	})
	assert.Equal(t, c.Keys(), out.Keys())
	assert.Equal(t, []string{"a1", "b2", "c3"}, out.Values())
}

func TestEverySome(t *testing.T) {
	c := newABC()

	assert.True(t, c.Every(func(v int, _ string) bool { return v > 0 }))
	assert.False(t, c.Every(func(v int, _ string) bool { return v > 1 }))
	assert.True(t, c.Some(func(v int, _ string) bool { return v > 2 }))
	assert.False(t, c.Some(func(v int, _ string) bool { return v > 3 }))

	empty := New[string, int]()
	assert.True(t, empty.Every(func(int, string) bool { return false }))
	assert.False(t, empty.Some(func(int, string) bool { return true }))
}

func TestHasAllHasAny(t *testing.T) {
	c := newABC()

	assert.True(t, c.HasAll("a", "c"))
	assert.False(t, c.HasAll("a", "z"))
	assert.True(t, c.HasAll())

	assert.True(t, c.HasAny("z", "b"))
	assert.False(t, c.HasAny("x", "y"))
	assert.False(t, c.HasAny())
}

func TestFirstLast(t *testing.T) {
	empty := New[string, int]()
	_, found := empty.First()
	assert.False(t, found)
	_, found = empty.Last()
	assert.False(t, found)

	c := newABC()
	v, found := c.First()
	assert.True(t, found)
	assert.Equal(t, 1, v)

	v, found = c.Last()
	assert.True(t, found)
	assert.Equal(t, 3, v)
}

func TestFirstNLastN(t *testing.T) {
	c := newABC()
	values := c.Values()

	for _, n := range []int{0, 1, c.Size(), c.Size() + 5} {
		want := values
		if n < len(want) {
			want = want[:n]
		}
		assert.Equal(t, want, c.FirstN(n), "FirstN(%d)", n)

		want = values
		if n < len(want) {
			want = want[len(want)-n:]
		}
		assert.Equal(t, want, c.LastN(n), "LastN(%d)", n)
	}

	// trailing values keep iteration order
	assert.Equal(t, []int{2, 3}, c.LastN(2))
}

func TestAt(t *testing.T) {
	c := newABC()

	v, found := c.At(0)
	assert.True(t, found)
	assert.Equal(t, 1, v)

	v, found = c.At(-1)
	assert.True(t, found)
	assert.Equal(t, 3, v)

	v, found = c.At(-3)
	assert.True(t, found)
	assert.Equal(t, 1, v)

	_, found = c.At(3)
	assert.False(t, found)
	_, found = c.At(-4)
	assert.False(t, found)

	_, found = New[string, int]().At(0)
	assert.False(t, found)
}

func TestKeyAt(t *testing.T) {
	c := newABC()

	k, found := c.KeyAt(0)
	assert.True(t, found)
	assert.Equal(t, "a", k)

	k, found = c.KeyAt(-1)
	assert.True(t, found)
	assert.Equal(t, "c", k)

	_, found = c.KeyAt(5)
	assert.False(t, found)
}

func assertInvalidArgument(t *testing.T, fn func()) {
	t.Helper()

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok, "recovered value is not an error: %v", r)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	}()
	fn()
}

func TestNilCallbackPanics(t *testing.T) {
	c := newABC()

	assertInvalidArgument(t, func() { c.Each(nil) })
	assertInvalidArgument(t, func() { c.Find(nil) })
	assertInvalidArgument(t, func() { c.FindKey(nil) })
	assertInvalidArgument(t, func() { c.Filter(nil) })
	assertInvalidArgument(t, func() { c.Map(nil) })
	assertInvalidArgument(t, func() { MapValues[string, int, int](c, nil) })
	assertInvalidArgument(t, func() { c.Every(nil) })
	assertInvalidArgument(t, func() { c.Some(nil) })
	assertInvalidArgument(t, func() { c.FirstN(-1) })
	assertInvalidArgument(t, func() { c.LastN(-2) })

	// the container is left unmodified
	assert.Equal(t, []string{"a", "b", "c"}, c.Keys())
	assert.Equal(t, []int{1, 2, 3}, c.Values())
}
