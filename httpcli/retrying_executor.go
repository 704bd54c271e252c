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

	libretry "github.com/nicolasjuhel/httpguard/httpcli/retry"
)

// caller is satisfied by both Executor and CachedExecutor, letting
// RetryingExecutor decorate either.
type caller[T any] interface {
	Call(ctx context.Context, method Method, uri string, header http.Header, body io.Reader) HttpResult[T]
}

// RetryingExecutor decorates a caller with exponential backoff and jitter,
// retrying only Failures whose category is retryable and, when
// cfg.IdempotentOnly is set, whose method is idempotent.
type RetryingExecutor[T any] struct {
	next caller[T]
	cfg  libretry.Config
}

// NewRetryingExecutor wraps next with the given retry configuration.
func NewRetryingExecutor[T any](next caller[T], cfg libretry.Config) *RetryingExecutor[T] {
	return &RetryingExecutor[T]{next: next, cfg: cfg}
}

// Call dispatches through the wrapped caller, retrying on a retryable
// Failure up to cfg.MaxAttempts; with cfg.IdempotentOnly set, only
// idempotent methods are retried.
func (r *RetryingExecutor[T]) Call(ctx context.Context, method Method, uri string, header http.Header, body io.Reader) HttpResult[T] {
	return libretry.Do(r.cfg, method.IsIdempotent(), func(int) HttpResult[T] {
		return r.next.Call(ctx, method, uri, header, body)
	})
}
