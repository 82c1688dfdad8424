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

// Package collection provides Container, an insertion-ordered keyed container
// with an extended set of query and transform operations on top of the basic
// map surface.
//
// The container is not safe for unsynchronized concurrent use. Callers that
// share one across goroutines must provide their own mutual exclusion.
package collection

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Entry is a single key-value pair held by a Container.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Container is a mutable mapping from keys to values that preserves
// insertion order. Updating an existing key keeps its position; removing a
// key and inserting it again moves it to the end.
type Container[K comparable, V any] struct {
	m *linkedhashmap.Map
}

// New creates an empty container.
func New[K comparable, V any]() *Container[K, V] {
	return &Container[K, V]{
		m: linkedhashmap.New(),
	}
}

// NewFrom creates a container holding the given entries in order. A key that
// appears more than once keeps the position of its first occurrence and the
// value of its last.
func NewFrom[K comparable, V any](entries ...Entry[K, V]) *Container[K, V] {
	c := New[K, V]()
	for _, e := range entries {
		c.m.Put(e.Key, e.Value)
	}
	return c
}

// Put sets the value for key. When the key is already present only the value
// changes, the key keeps its position in iteration order.
func (c *Container[K, V]) Put(key K, value V) {
	c.m.Put(key, value)
}

// Get returns the value stored under key.
func (c *Container[K, V]) Get(key K) (value V, found bool) {
	v, ok := c.m.Get(key)
	if !ok {
		return *new(V), false
	}

	return c.toValue(v), true
}

// Has reports whether key is present.
func (c *Container[K, V]) Has(key K) bool {
	_, found := c.m.Get(key)
	return found
}

// Remove deletes the entry for key, if any.
func (c *Container[K, V]) Remove(key K) {
	c.m.Remove(key)
}

// Size returns the number of entries.
func (c *Container[K, V]) Size() int {
	return c.m.Size()
}

// IsEmpty reports whether the container holds no entries.
func (c *Container[K, V]) IsEmpty() bool {
	return c.m.Empty()
}

// Clear removes all entries.
func (c *Container[K, V]) Clear() {
	c.m.Clear()
}

// Keys returns all keys in iteration order. The slice is a snapshot taken at
// call time.
func (c *Container[K, V]) Keys() []K {
	keys := make([]K, 0, c.m.Size())
	c.each(func(k K, _ V) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

// Values returns all values in iteration order. The slice is a snapshot
// taken at call time.
func (c *Container[K, V]) Values() []V {
	values := make([]V, 0, c.m.Size())
	c.each(func(_ K, v V) bool {
		values = append(values, v)
		return true
	})
	return values
}

// Entries returns all entries in iteration order. The slice is a snapshot
// taken at call time.
func (c *Container[K, V]) Entries() []Entry[K, V] {
	entries := make([]Entry[K, V], 0, c.m.Size())
	c.each(func(k K, v V) bool {
		entries = append(entries, Entry[K, V]{Key: k, Value: v})
		return true
	})
	return entries
}

// Clone returns a new container with the same entries in the same order.
// Values are referenced, not deep-copied.
func (c *Container[K, V]) Clone() *Container[K, V] {
	out := New[K, V]()
	c.each(func(k K, v V) bool {
		out.m.Put(k, v)
		return true
	})
	return out
}

func (c *Container[K, V]) String() string {
	var builder strings.Builder
	builder.WriteString("{")

	first := true
	c.each(func(k K, v V) bool {
		if !first {
			builder.WriteString(", ")
		}
		builder.WriteString(fmt.Sprintf("%v: %v", k, v))
		first = false
		return true
	})
	builder.WriteString("}")
	return builder.String()
}

// each walks the entries in iteration order until f returns false.
func (c *Container[K, V]) each(f func(K, V) bool) {
	iterator := c.m.Iterator()
	for iterator.Next() {
		if !f(c.toKey(iterator.Key()), c.toValue(iterator.Value())) {
			return
		}
	}
}

func (*Container[K, V]) toKey(key any) K {
	kk, ok := key.(K)
	if !ok {
		panic(fmt.Errorf("expect key %T, got %T from linked hash map", *new(K), key))
	}

	return kk
}

func (*Container[K, V]) toValue(value any) V {
	vv, ok := value.(V)
	if !ok {
		panic(fmt.Errorf("expect value %T, got %T from linked hash map", *new(V), value))
	}

	return vv
}
