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

package httpcli

import (
	"context"
	"io"
	"net/http"

	httpcache "github.com/nicolasjuhel/httpguard/httpcli/cache"
)

// CachedExecutor decorates an Executor with an ETag cache: every GET is
// issued with If-None-Match set to the cached ETag (when one exists), and a
// 304 response is resolved locally from the entry captured at the start of
// the call, so a concurrent Put from another goroutine can never corrupt an
// in-flight resolution.
type CachedExecutor[T any] struct {
	next     *Executor[T]
	cache    *httpcache.ETagCache[T]
	maxItems int
}

// NewCachedExecutor wraps next with an ETag cache keyed by filter, evicting
// the oldest 10% of entries once the cache grows past maxItems.
func NewCachedExecutor[T any](next *Executor[T], filter httpcache.HeaderFilter, maxItems int) *CachedExecutor[T] {
	return &CachedExecutor[T]{
		next:     next,
		cache:    httpcache.New[T](filter),
		maxItems: maxItems,
	}
}

// Call issues a conditional GET when a cached entry exists for uri/header,
// resolving a 304 from the locally captured entry snapshot and otherwise
// delegating to the wrapped executor and updating the cache on success.
func (c *CachedExecutor[T]) Call(ctx context.Context, method Method, uri string, header http.Header, body io.Reader) HttpResult[T] {
	if method != MethodGet {
		return c.next.Call(ctx, method, uri, header, body)
	}

	key := c.cache.Key(uri, flattenHeader(header))

	cached, hasCached := c.cache.Get(key)

	if hasCached && cached.ETag != "" {
		if header == nil {
			header = make(http.Header)
		}
		header.Set("If-None-Match", cached.ETag)
	}

	result := c.next.Call(ctx, method, uri, header, body)

	if status, ok := result.HttpStatus(); ok && status == http.StatusNotModified {
		if hasCached {
			return Success(&cached.Content, cached.ETag, status)
		}
		return FailureWithFallback[T]("304 received with no cached entry", nil, nil, InvalidContent, "", status)
	}

	if result.IsSuccess() {
		if content, ok := result.Content(); ok {
			etag, _ := result.Etag()
			status, _ := result.HttpStatus()
			c.cache.Put(key, content, etag, status)

			if c.maxItems > 0 && c.cache.Len() > c.maxItems {
				c.cache.EvictOldest()
			}
		}
		return result
	}

	if result.IsFailure() && hasCached {
		etag, _ := result.Etag()
		status, _ := result.HttpStatus()
		if etag == "" {
			etag = cached.ETag
		}
		if status == 0 {
			status = cached.HttpStatus
		}
		category, _ := result.ErrorCategoryOf()
		return FailureWithFallback[T](result.Message(), result.Cause(), &cached.Content, category, etag, status)
	}

	return result
}

func flattenHeader(header http.Header) map[string]string {
	out := make(map[string]string, len(header))
	for k := range header {
		out[k] = header.Get(k)
	}
	return out
}
