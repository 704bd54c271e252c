/*
 *  MIT License
 *
 *  Copyright (c) 2020 Nicolas JUHEL
 *
 *  Permission is hereby granted, free of charge, to any person obtaining a copy
 *  of this software and associated documentation files (the "Software"), to deal
 *  in the Software without restriction, including without limitation the rights
 *  to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 *  copies of the Software, and to permit persons to whom the Software is
 *  furnished to do so, subject to the following conditions:
 *
 *  The above copyright notice and this permission notice shall be included in all
 *  copies or substantial portions of the Software.
 *
 *  THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 *  IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 *  FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 *  AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 *  LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 *  OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 *  SOFTWARE.
 *
 */

package httpcli_test

import (
	"net/http"
	"net/http/httptest"
	"time"

	. "github.com/nicolasjuhel/httpguard/httpcli"
	libretry "github.com/nicolasjuhel/httpguard/httpcli/retry"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("RetryingExecutor", func() {
	var (
		ts     *httptest.Server
		misses int
	)

	AfterEach(func() {
		ts.Close()
	})

	It("retries a GET past transient 500s and succeeds", func() {
		misses = 0
		ts = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if misses < 2 {
				misses++
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"message":"hello"}`))
		}))

		base := NewExecutor[greeting](nil, JSONResponseConverter[greeting]{})
		cfg := libretry.Config{MaxAttempts: 5, InitialDelay: time.Millisecond, Multiplier: 1, MaxDelay: time.Millisecond, Jitter: 0, IdempotentOnly: true}
		retrying := NewRetryingExecutor[greeting](base, cfg)

		result := retrying.Call(ctx, MethodGet, ts.URL, nil, nil)

		Expect(result.IsSuccess()).To(BeTrue())
		Expect(misses).To(Equal(2))
	})

	It("does not retry a POST even when the failure is retryable", func() {
		calls := 0
		ts = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.WriteHeader(http.StatusInternalServerError)
		}))

		base := NewExecutor[greeting](nil, JSONResponseConverter[greeting]{})
		cfg := libretry.Config{MaxAttempts: 5, InitialDelay: time.Millisecond, Multiplier: 1, MaxDelay: time.Millisecond, Jitter: 0, IdempotentOnly: true}
		retrying := NewRetryingExecutor[greeting](base, cfg)

		result := retrying.Call(ctx, MethodPost, ts.URL, nil, nil)

		Expect(result.IsFailure()).To(BeTrue())
		Expect(calls).To(Equal(1))
	})
})
