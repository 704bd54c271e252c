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

// ErrorCategory classifies a Failure so the retry decorator can decide
// whether another attempt is worth making.
type ErrorCategory uint8

const (
	// NetworkError covers I/O transport failures: connection refused, reset,
	// timeout, DNS failure.
	NetworkError ErrorCategory = iota
	// ServerError covers 5xx responses.
	ServerError
	// ClientError covers 4xx responses.
	ClientError
	// InvalidContent covers responses that were received but could not be
	// turned into the caller's expected type, or status families with no
	// defined handling (1xx, 3xx other than a resolvable 304, unknown).
	InvalidContent
	// ConfigurationError covers preconditions the caller violated before any
	// network I/O occurred (e.g. a body on a safe method), and TLS/URI
	// construction failures.
	ConfigurationError
)

// IsRetryable reports whether a Failure of this category is ever worth
// retrying.
func (c ErrorCategory) IsRetryable() bool {
	return c == NetworkError || c == ServerError
}

func (c ErrorCategory) String() string {
	switch c {
	case NetworkError:
		return "network_error"
	case ServerError:
		return "server_error"
	case ClientError:
		return "client_error"
	case InvalidContent:
		return "invalid_content"
	case ConfigurationError:
		return "configuration_error"
	default:
		return "unknown"
	}
}

// HttpStatusFamily groups a raw status code per RFC 7231.
type HttpStatusFamily uint8

const (
	StatusInformational HttpStatusFamily = iota
	StatusSuccess
	StatusRedirection
	StatusClientError
	StatusServerError
	StatusUnknown
)

// ClassifyStatus maps a raw HTTP status code to its family.
func ClassifyStatus(code int) HttpStatusFamily {
	switch {
	case code >= 100 && code < 200:
		return StatusInformational
	case code >= 200 && code < 300:
		return StatusSuccess
	case code >= 300 && code < 400:
		return StatusRedirection
	case code >= 400 && code < 500:
		return StatusClientError
	case code >= 500 && code < 600:
		return StatusServerError
	default:
		return StatusUnknown
	}
}

// ErrorCategory converts a status family to an ErrorCategory. Success has no
// meaningful conversion and is reported via ok=false; callers must not reach
// this path for 2xx, which the executor always turns into a Success result.
func (f HttpStatusFamily) ErrorCategory() (category ErrorCategory, ok bool) {
	switch f {
	case StatusClientError:
		return ClientError, true
	case StatusServerError:
		return ServerError, true
	case StatusInformational, StatusRedirection, StatusUnknown:
		return InvalidContent, true
	default:
		return InvalidContent, false
	}
}

// HttpResult is a sealed success/failure algebra returned by every executor,
// cache, and retry call. Exactly one of Success/Failure accessors applies;
// consumers destructure via IsSuccess/IsFailure rather than inspecting
// unexported state.
type HttpResult[T any] struct {
	ok       bool
	content  *T
	etag     string
	status   int
	hasEtag  bool
	hasStat  bool
	message  string
	cause    error
	category ErrorCategory
}

// Success builds a successful result. content may be nil for bodyless
// responses (e.g. HEAD); etag is omitted when empty.
func Success[T any](content *T, etag string, status int) HttpResult[T] {
	return HttpResult[T]{
		ok:      true,
		content: content,
		etag:    etag,
		hasEtag: etag != "",
		status:  status,
		hasStat: true,
	}
}

// Failure builds a failed result carrying no fallback content.
func Failure[T any](message string, cause error, category ErrorCategory) HttpResult[T] {
	return HttpResult[T]{
		ok:       false,
		message:  message,
		cause:    cause,
		category: category,
	}
}

// FailureWithFallback builds a failed result that still carries a fallback
// value (typically a previously cached body) plus the response status and
// cached ETag that produced it.
func FailureWithFallback[T any](message string, cause error, fallback *T, category ErrorCategory, cachedEtag string, status int) HttpResult[T] {
	r := HttpResult[T]{
		ok:       false,
		message:  message,
		cause:    cause,
		content:  fallback,
		category: category,
		etag:     cachedEtag,
		hasEtag:  cachedEtag != "",
	}

	if status != 0 {
		r.status = status
		r.hasStat = true
	}

	return r
}

func (r HttpResult[T]) IsSuccess() bool {
	return r.ok
}

func (r HttpResult[T]) IsFailure() bool {
	return !r.ok
}

// Content returns the body, present on a Success built with non-nil content
// and on any Failure carrying a fallback; otherwise it reports false.
func (r HttpResult[T]) Content() (T, bool) {
	if r.content == nil {
		var zero T
		return zero, false
	}
	return *r.content, true
}

func (r HttpResult[T]) Etag() (string, bool) {
	return r.etag, r.hasEtag
}

func (r HttpResult[T]) HttpStatus() (int, bool) {
	return r.status, r.hasStat
}

// ErrorCategoryOf returns the failure category; the second return is false
// for a Success result.
func (r HttpResult[T]) ErrorCategoryOf() (ErrorCategory, bool) {
	if r.ok {
		return 0, false
	}
	return r.category, true
}

// IsRetryable reports whether the result is a Failure whose category permits
// another attempt.
func (r HttpResult[T]) IsRetryable() bool {
	return !r.ok && r.category.IsRetryable()
}

func (r HttpResult[T]) Message() string {
	return r.message
}

func (r HttpResult[T]) Cause() error {
	return r.cause
}
