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
	"encoding/json"
	"io"
)

// ResponseConverter turns a raw response body into the caller's expected
// type T. Convert returns ok=false when the body cannot be interpreted as T,
// which the executor reports as an InvalidContent Failure.
type ResponseConverter[T any] interface {
	Convert(body []byte) (content T, ok bool)
	ContentType() string
}

// RequestConverter turns the caller's request payload R into a body reader
// ready to be attached to the outgoing request.
type RequestConverter[R any] interface {
	ToReader(body R) (io.Reader, error)
	ContentType() string
}

// JSONResponseConverter decodes a JSON body into T via encoding/json.
type JSONResponseConverter[T any] struct{}

func (JSONResponseConverter[T]) Convert(body []byte) (T, bool) {
	var out T
	if len(body) == 0 {
		return out, false
	}
	if e := json.Unmarshal(body, &out); e != nil {
		var zero T
		return zero, false
	}
	return out, true
}

func (JSONResponseConverter[T]) ContentType() string {
	return "application/json"
}

// JSONRequestConverter marshals R into a JSON body reader.
type JSONRequestConverter[R any] struct{}

func (JSONRequestConverter[R]) ToReader(body R) (io.Reader, error) {
	p, e := json.Marshal(body)
	if e != nil {
		return nil, e
	}
	return bytes.NewReader(p), nil
}

func (JSONRequestConverter[R]) ContentType() string {
	return "application/json"
}

// RawResponseConverter passes the body through unchanged as a byte slice.
type RawResponseConverter struct{}

func (RawResponseConverter) Convert(body []byte) ([]byte, bool) {
	return body, true
}

func (RawResponseConverter) ContentType() string {
	return "application/octet-stream"
}
