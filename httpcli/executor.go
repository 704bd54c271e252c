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
	"bytes"
	"context"
	"io"
	"net/http"
)

// Executor is the base, undecorated HTTP call: build a request, dispatch it,
// classify the response. Callers wrap it with the cache and retry decorators
// to get the full resilient pipeline.
type Executor[T any] struct {
	client    FctHttpClient
	converter ResponseConverter[T]
}

// NewExecutor builds an Executor dispatching through client (nil, or a
// factory returning nil, uses a new zero-value http.Client) and decoding
// response bodies with converter.
func NewExecutor[T any](client FctHttpClient, converter ResponseConverter[T]) *Executor[T] {
	return &Executor[T]{client: client, converter: converter}
}

// Call runs a single request/response round-trip with no retry and no
// caching. A safe method given a non-nil body (even an empty reader) fails
// fast as a ConfigurationError without performing any network I/O.
func (x *Executor[T]) Call(ctx context.Context, method Method, uri string, header http.Header, body io.Reader) HttpResult[T] {
	if method.IsSafe() && body != nil {
		return Failure[T]("safe method given a non-empty body", nil, ConfigurationError)
	}

	req := New(x.client)

	if e := req.Endpoint(uri); e != nil {
		return Failure[T]("invalid request uri", e, ConfigurationError)
	}

	req.Method(method.String())

	if header != nil {
		for k := range header {
			req.Header(k, header.Get(k))
		}
	}

	if body != nil {
		req.RequestReader(body)
	}

	rsp, err := req.Do(ctx)
	if err != nil {
		if re := req.Error(); re != nil && re.StatusCode() > 0 {
			return x.classify(re.StatusCode(), "", nil)
		}
		return Failure[T]("request transport failure", err, NetworkError)
	}

	defer func() {
		if rsp.Body != nil && !rsp.Close {
			_ = rsp.Body.Close()
		}
	}()

	buf := bytes.NewBuffer(nil)
	if rsp.Body != nil {
		if _, e := io.Copy(buf, rsp.Body); e != nil {
			return Failure[T]("failed reading response body", e, NetworkError)
		}
	}

	etag := rsp.Header.Get("ETag")

	return x.classify(rsp.StatusCode, etag, buf.Bytes())
}

// classify turns a raw status code plus body into a sealed HttpResult per
// the status-family table: 2xx decodes the body through the converter, 4xx/
// 5xx become Client/ServerError failures, everything else is InvalidContent.
func (x *Executor[T]) classify(status int, etag string, body []byte) HttpResult[T] {
	family := ClassifyStatus(status)

	if family == StatusSuccess {
		content, ok := x.converter.Convert(body)
		if !ok {
			return Failure[T]("response body could not be converted", nil, InvalidContent)
		}
		return Success(&content, etag, status)
	}

	category, _ := family.ErrorCategory()
	return FailureWithFallback[T]("unexpected response status", nil, nil, category, etag, status)
}
