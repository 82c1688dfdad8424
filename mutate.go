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

// Sweep removes every entry for which fn returns true and returns the
// container itself. The predicate runs against a snapshot of the entries
// taken before the first removal, so removals within the same call cannot
// skip or revisit entries.
func (c *Container[K, V]) Sweep(fn func(value V, key K) bool) *Container[K, V] {
	if fn == nil {
		panic(errNilCallback("Sweep"))
	}

	for _, e := range c.Entries() {
		if fn(e.Value, e.Key) {
			c.m.Remove(e.Key)
		}
	}
	return c
}

// GetOrCreate returns the value stored under key. When the key is absent it
// invokes gen once, stores the produced value at the end of the iteration
// order and returns it.
func (c *Container[K, V]) GetOrCreate(key K, gen func(key K) V) V {
	if gen == nil {
		panic(errNilCallback("GetOrCreate"))
	}

	if v, found := c.Get(key); found {
		return v
	}

	v := gen(key)
	c.m.Put(key, v)
	return v
}

// Concat merges the entries of each given container into this one, in
// argument order, and returns the container itself. On a key collision the
// value seen last wins while the key keeps its existing position. The
// argument containers are not modified.
func (c *Container[K, V]) Concat(others ...*Container[K, V]) *Container[K, V] {
	for i, other := range others {
		if other == nil {
			panic(errNilContainer("Concat", i))
		}
	}

	for _, other := range others {
		other.each(func(k K, v V) bool {
			c.m.Put(k, v)
			return true
		})
	}
	return c
}
