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
	"net/http"
)

// HttpAdapter exposes one method per HTTP verb over whatever caller[T] stack
// is wired underneath (a bare Executor, or one decorated with caching and/or
// retry), so callers never construct a Method constant by hand. Bodyless
// verbs (Get, Head, Options, Delete) are methods; body-carrying verbs are
// free functions (Post, Put, Patch) rather than methods, since a method
// cannot introduce its own type parameter for the request body type R
// independently of the adapter's T.
type HttpAdapter[T any] struct {
	next caller[T]
}

// NewHttpAdapter wraps next, which may be an *Executor[T], *CachedExecutor[T]
// or *RetryingExecutor[T] — any depth of the decorator stack satisfies
// caller[T].
func NewHttpAdapter[T any](next caller[T]) *HttpAdapter[T] {
	return &HttpAdapter[T]{next: next}
}

func (a *HttpAdapter[T]) Get(ctx context.Context, uri string, header http.Header) HttpResult[T] {
	return a.next.Call(ctx, MethodGet, uri, header, nil)
}

func (a *HttpAdapter[T]) Head(ctx context.Context, uri string, header http.Header) HttpResult[T] {
	return a.next.Call(ctx, MethodHead, uri, header, nil)
}

func (a *HttpAdapter[T]) Options(ctx context.Context, uri string, header http.Header) HttpResult[T] {
	return a.next.Call(ctx, MethodOptions, uri, header, nil)
}

// Delete issues a bodyless DELETE.
func (a *HttpAdapter[T]) Delete(ctx context.Context, uri string, header http.Header) HttpResult[T] {
	return a.next.Call(ctx, MethodDelete, uri, header, nil)
}

// Post serializes body through conv and issues a POST. A nil conv sends an
// empty body. Serialization failure is reported as a ConfigurationError
// Failure without performing any network I/O.
func Post[T, R any](a *HttpAdapter[T], ctx context.Context, uri string, header http.Header, body R, conv RequestConverter[R]) HttpResult[T] {
	return send(a, ctx, MethodPost, uri, header, body, conv)
}

// Put serializes body through conv and issues a PUT. See Post.
func Put[T, R any](a *HttpAdapter[T], ctx context.Context, uri string, header http.Header, body R, conv RequestConverter[R]) HttpResult[T] {
	return send(a, ctx, MethodPut, uri, header, body, conv)
}

// Patch serializes body through conv and issues a PATCH. See Post.
func Patch[T, R any](a *HttpAdapter[T], ctx context.Context, uri string, header http.Header, body R, conv RequestConverter[R]) HttpResult[T] {
	return send(a, ctx, MethodPatch, uri, header, body, conv)
}

func send[T, R any](a *HttpAdapter[T], ctx context.Context, method Method, uri string, header http.Header, body R, conv RequestConverter[R]) HttpResult[T] {
	if conv == nil {
		return a.next.Call(ctx, method, uri, header, nil)
	}

	reader, e := conv.ToReader(body)
	if e != nil {
		return Failure[T]("request body could not be serialized", e, ConfigurationError)
	}
	if reader == nil {
		return a.next.Call(ctx, method, uri, header, nil)
	}

	if header == nil {
		header = make(http.Header)
	}
	if ct := conv.ContentType(); ct != "" && header.Get("Content-Type") == "" {
		header.Set("Content-Type", ct)
	}

	return a.next.Call(ctx, method, uri, header, reader)
}
