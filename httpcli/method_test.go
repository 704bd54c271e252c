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

	. "github.com/nicolasjuhel/httpguard/httpcli"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Method", func() {
	DescribeTable("String returns the net/http constant",
		func(m Method, expect string) {
			Expect(m.String()).To(Equal(expect))
		},
		Entry("GET", MethodGet, http.MethodGet),
		Entry("POST", MethodPost, http.MethodPost),
		Entry("PUT", MethodPut, http.MethodPut),
		Entry("DELETE", MethodDelete, http.MethodDelete),
		Entry("PATCH", MethodPatch, http.MethodPatch),
		Entry("HEAD", MethodHead, http.MethodHead),
		Entry("OPTIONS", MethodOptions, http.MethodOptions),
	)

	DescribeTable("IsSafe",
		func(m Method, expect bool) {
			Expect(m.IsSafe()).To(Equal(expect))
		},
		Entry("GET is safe", MethodGet, true),
		Entry("HEAD is safe", MethodHead, true),
		Entry("OPTIONS is safe", MethodOptions, true),
		Entry("POST is not safe", MethodPost, false),
		Entry("PUT is not safe", MethodPut, false),
		Entry("DELETE is not safe", MethodDelete, false),
		Entry("PATCH is not safe", MethodPatch, false),
	)

	DescribeTable("IsIdempotent",
		func(m Method, expect bool) {
			Expect(m.IsIdempotent()).To(Equal(expect))
		},
		Entry("GET is idempotent", MethodGet, true),
		Entry("PUT is idempotent", MethodPut, true),
		Entry("DELETE is idempotent", MethodDelete, true),
		Entry("HEAD is idempotent", MethodHead, true),
		Entry("OPTIONS is idempotent", MethodOptions, true),
		Entry("POST is not idempotent", MethodPost, false),
		Entry("PATCH is not idempotent", MethodPatch, false),
	)

	It("every safe method is idempotent", func() {
		for _, m := range []Method{MethodGet, MethodPost, MethodPut, MethodDelete, MethodPatch, MethodHead, MethodOptions} {
			if m.IsSafe() {
				Expect(m.IsIdempotent()).To(BeTrue(), "method %q violates safe-implies-idempotent", m.String())
			}
		}
	})
})
