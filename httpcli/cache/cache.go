/*
 * MIT License
 *
 * Copyright (c) 2020 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

// Package cache decorates an HTTP executor with an ETag-aware cache so that a
// 304 Not Modified response can be resolved into the previously stored body
// without another round-trip to the converter.
package cache

import (
	"sort"
	"strings"
	"sync"
	"time"

	libatm "github.com/nicolasjuhel/httpguard/atomic"
)

// HeaderFilter decides whether a header name participates in the cache key.
// Combinators let callers build a predicate out of simpler ones.
type HeaderFilter func(name string) bool

func And(filters ...HeaderFilter) HeaderFilter {
	return func(name string) bool {
		for _, f := range filters {
			if !f(name) {
				return false
			}
		}
		return true
	}
}

func Or(filters ...HeaderFilter) HeaderFilter {
	return func(name string) bool {
		for _, f := range filters {
			if f(name) {
				return true
			}
		}
		return false
	}
}

func Negate(filter HeaderFilter) HeaderFilter {
	return func(name string) bool { return !filter(name) }
}

func All() HeaderFilter {
	return func(string) bool { return true }
}

func None() HeaderFilter {
	return func(string) bool { return false }
}

func Including(names ...string) HeaderFilter {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[strings.ToLower(n)] = struct{}{}
	}
	return func(name string) bool {
		_, ok := set[strings.ToLower(name)]
		return ok
	}
}

func Excluding(names ...string) HeaderFilter {
	return Negate(Including(names...))
}

func ExcludingPrefix(prefix string) HeaderFilter {
	prefix = strings.ToLower(prefix)
	return func(name string) bool {
		return !strings.HasPrefix(strings.ToLower(name), prefix)
	}
}

func Matching(pattern func(name string) bool) HeaderFilter {
	return HeaderFilter(pattern)
}

// entry is the internal record held per cache key. insertedAt backs the
// oldest-10% eviction policy; the HttpResult fields are captured by value so
// a concurrent writer cannot mutate a reader's in-flight 304 resolution.
type entry[T any] struct {
	content    T
	etag       string
	httpStatus int
	insertedAt time.Time
}

// Entry is a read-only snapshot of a cached response returned to callers.
type Entry[T any] struct {
	Content    T
	ETag       string
	HttpStatus int
}

// ETagCache stores the last known-good body per cache key, keyed on the
// request URI plus whichever headers the configured filter selects. Reads
// capture a local copy of the matching entry so a concurrent Store cannot
// corrupt an in-flight 304 resolution (the local-reference-capture
// invariant).
type ETagCache[T any] struct {
	mu     sync.RWMutex
	items  libatm.MapTyped[string, entry[T]]
	filter HeaderFilter
}

// New builds an empty ETagCache. filter selects which request headers
// contribute to the cache key; pass All() to include every header or None()
// to key purely on URI.
func New[T any](filter HeaderFilter) *ETagCache[T] {
	if filter == nil {
		filter = None()
	}
	return &ETagCache[T]{
		items:  libatm.NewMapTyped[string, entry[T]](),
		filter: filter,
	}
}

// Key composes the cache key from the request URI and the sorted, filtered
// header names (and their values), so two requests with the same URI but
// different relevant headers never collide.
func (c *ETagCache[T]) Key(uri string, headers map[string]string) string {
	names := make([]string, 0, len(headers))
	for name := range headers {
		if c.filter(name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(uri)
	for _, name := range names {
		b.WriteByte('\x00')
		b.WriteString(strings.ToLower(name))
		b.WriteByte('=')
		b.WriteString(headers[name])
	}

	return b.String()
}

// Get returns a snapshot of the cached entry for key, if present.
func (c *ETagCache[T]) Get(key string) (Entry[T], bool) {
	v, ok := c.items.Load(key)
	if !ok {
		return Entry[T]{}, false
	}

	return Entry[T]{Content: v.content, ETag: v.etag, HttpStatus: v.httpStatus}, true
}

// Put stores or replaces the entry for key, stamping the current time for
// the eviction policy.
func (c *ETagCache[T]) Put(key string, content T, etag string, httpStatus int) {
	c.items.Store(key, entry[T]{
		content:    content,
		etag:       etag,
		httpStatus: httpStatus,
		insertedAt: time.Now(),
	})
}

// EvictOldest removes the oldest 10% of entries by insertion time (the
// count is rounded down), always evicting at least one entry when the cache
// is non-empty.
func (c *ETagCache[T]) EvictOldest() {
	c.mu.Lock()
	defer c.mu.Unlock()

	type keyed struct {
		key string
		at  time.Time
	}

	var all []keyed
	c.items.Range(func(k string, v entry[T]) bool {
		all = append(all, keyed{key: k, at: v.insertedAt})
		return true
	})

	if len(all) == 0 {
		return
	}

	sort.Slice(all, func(i, j int) bool { return all[i].at.Before(all[j].at) })

	n := len(all) / 10
	if n < 1 {
		n = 1
	}
	if n > len(all) {
		n = len(all)
	}

	for i := 0; i < n; i++ {
		c.items.Delete(all[i].key)
	}
}

// Len reports the number of entries currently cached.
func (c *ETagCache[T]) Len() int {
	n := 0
	c.items.Range(func(string, entry[T]) bool {
		n++
		return true
	})
	return n
}
