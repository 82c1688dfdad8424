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

// Each invokes fn for every entry in iteration order and returns the
// container itself, so that calls can be chained.
func (c *Container[K, V]) Each(fn func(value V, key K)) *Container[K, V] {
	if fn == nil {
		panic(errNilCallback("Each"))
	}

	c.each(func(k K, v V) bool {
		fn(v, k)
		return true
	})
	return c
}

// Find returns the first value, in iteration order, for which fn returns
// true.
func (c *Container[K, V]) Find(fn func(value V, key K) bool) (V, bool) {
	if fn == nil {
		panic(errNilCallback("Find"))
	}

	var (
		match V
		ok    bool
	)
	c.each(func(k K, v V) bool {
		if fn(v, k) {
			match, ok = v, true
			return false
		}
		return true
	})
	return match, ok
}

// FindKey returns the first key, in iteration order, whose value makes fn
// return true.
func (c *Container[K, V]) FindKey(fn func(value V, key K) bool) (K, bool) {
	if fn == nil {
		panic(errNilCallback("FindKey"))
	}

	var (
		match K
		ok    bool
	)
	c.each(func(k K, v V) bool {
		if fn(v, k) {
			match, ok = k, true
			return false
		}
		return true
	})
	return match, ok
}

// Filter returns a new container holding the entries for which fn returns
// true, in their original order. The receiver is not modified.
func (c *Container[K, V]) Filter(fn func(value V, key K) bool) *Container[K, V] {
	if fn == nil {
		panic(errNilCallback("Filter"))
	}

	out := New[K, V]()
	c.each(func(k K, v V) bool {
		if fn(v, k) {
			out.m.Put(k, v)
		}
		return true
	})
	return out
}

// Map returns a new container with the same keys in the same order, each
// value replaced by the result of fn. The receiver is not modified. To map
// to a different value type use the package-level MapValues.
func (c *Container[K, V]) Map(fn func(value V, key K) V) *Container[K, V] {
	if fn == nil {
		panic(errNilCallback("Map"))
	}

	out := New[K, V]()
	c.each(func(k K, v V) bool {
		out.m.Put(k, fn(v, k))
		return true
	})
	return out
}

// MapValues returns a new container with the same keys as c in the same
// order, each value replaced by the result of fn. It exists as a function
// because a method cannot introduce the result type parameter R.
func MapValues[K comparable, V, R any](c *Container[K, V], fn func(value V, key K) R) *Container[K, R] {
	if fn == nil {
		panic(errNilCallback("MapValues"))
	}

	out := New[K, R]()
	c.each(func(k K, v V) bool {
		out.m.Put(k, fn(v, k))
		return true
	})
	return out
}

// Every reports whether fn returns true for all entries. It is vacuously
// true for an empty container.
func (c *Container[K, V]) Every(fn func(value V, key K) bool) bool {
	if fn == nil {
		panic(errNilCallback("Every"))
	}

	all := true
	c.each(func(k K, v V) bool {
		if !fn(v, k) {
			all = false
			return false
		}
		return true
	})
	return all
}

// Some reports whether fn returns true for at least one entry.
func (c *Container[K, V]) Some(fn func(value V, key K) bool) bool {
	if fn == nil {
		panic(errNilCallback("Some"))
	}

	found := false
	c.each(func(k K, v V) bool {
		if fn(v, k) {
			found = true
			return false
		}
		return true
	})
	return found
}

// HasAll reports whether every given key is present. It is true when called
// with no keys.
func (c *Container[K, V]) HasAll(keys ...K) bool {
	for _, k := range keys {
		if !c.Has(k) {
			return false
		}
	}
	return true
}

// HasAny reports whether at least one of the given keys is present. It is
// false when called with no keys.
func (c *Container[K, V]) HasAny(keys ...K) bool {
	for _, k := range keys {
		if c.Has(k) {
			return true
		}
	}
	return false
}

// First returns the value at the head of the iteration order.
func (c *Container[K, V]) First() (V, bool) {
	return c.At(0)
}

// FirstN returns up to n leading values in iteration order. The result is a
// point-in-time copy; it is shorter than n when the container holds fewer
// entries.
func (c *Container[K, V]) FirstN(n int) []V {
	if n < 0 {
		panic(errNegativeCount("FirstN", n))
	}

	values := c.Values()
	if n < len(values) {
		values = values[:n]
	}
	return values
}

// Last returns the value at the tail of the iteration order.
func (c *Container[K, V]) Last() (V, bool) {
	return c.At(-1)
}

// LastN returns up to n trailing values, still in iteration order.
func (c *Container[K, V]) LastN(n int) []V {
	if n < 0 {
		panic(errNegativeCount("LastN", n))
	}

	values := c.Values()
	if n < len(values) {
		values = values[len(values)-n:]
	}
	return values
}

// At returns the value at the given position in iteration order. A negative
// index counts from the end, so At(-1) is the last value. Out-of-range
// indices report false.
func (c *Container[K, V]) At(index int) (V, bool) {
	values := c.Values()
	i, ok := normalizeIndex(index, len(values))
	if !ok {
		return *new(V), false
	}
	return values[i], true
}

// KeyAt returns the key at the given position in iteration order, with the
// same index semantics as At.
func (c *Container[K, V]) KeyAt(index int) (K, bool) {
	keys := c.Keys()
	i, ok := normalizeIndex(index, len(keys))
	if !ok {
		return *new(K), false
	}
	return keys[i], true
}

func normalizeIndex(index, size int) (int, bool) {
	if index < 0 {
		index += size
	}
	if index < 0 || index >= size {
		return 0, false
	}
	return index, true
}
