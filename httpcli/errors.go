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
	"fmt"

	liberr "github.com/nicolasjuhel/httpguard/errors"
)

// Error codes for HTTP client operations.
// These errors are registered with the errors package for consistent error handling.
const (
	ErrorParamEmpty           liberr.CodeError = iota + liberr.MinPkgHttpCli // At least one given parameter is empty
	ErrorParamInvalid                                                        // At least one given parameter is invalid
	ErrorValidatorError                                                      // Configuration validation failed
	ErrorClientTransportHttp2                                                // HTTP/2 transport configuration error
	ErrorClientCreate                                                        // TLS-aware http.Client construction failed
	ErrorRequestCreate                                                       // http.NewRequestWithContext failed
	ErrorRequestSend                                                         // client.Do failed at the network boundary
	ErrorRequestUnsafeBody                                                   // a safe method was given a non-empty body
	ErrorResponseRead                                                        // reading the response body failed
	ErrorResponseStatus                                                      // response status is outside the accepted set
	ErrorResponseDecode                                                      // response body could not be converted by the caller's converter
	ErrorResponseUnexpected                                                  // response status family has no defined handling (e.g. bare 304 with no cached entry)
)

func init() {
	if liberr.ExistInMapMessage(ErrorParamEmpty) {
		panic(fmt.Errorf("error code collision with package httpcli"))
	}
	liberr.RegisterIdFctMessage(ErrorParamEmpty, getMessage)
}

func getMessage(code liberr.CodeError) (message string) {
	switch code {
	case ErrorParamEmpty:
		return "at least one given parameters is empty"
	case ErrorParamInvalid:
		return "at least one given parameters is invalid"
	case ErrorValidatorError:
		return "config seems to be invalid"
	case ErrorClientTransportHttp2:
		return "error while configure http2 transport for client"
	case ErrorClientCreate:
		return "error while building the tls-aware http client"
	case ErrorRequestCreate:
		return "error on creating a new http request"
	case ErrorRequestSend:
		return "error on sending a http request"
	case ErrorRequestUnsafeBody:
		return "a safe http method cannot carry a non-empty body"
	case ErrorResponseRead:
		return "error on reading the http response body"
	case ErrorResponseStatus:
		return "http response status is not in the accepted list"
	case ErrorResponseDecode:
		return "http response body could not be decoded by the registered converter"
	case ErrorResponseUnexpected:
		return "http response status family has no defined handling"
	}

	return liberr.NullMessage
}
