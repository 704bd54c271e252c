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

package validation_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nicolasjuhel/httpguard/validation"
)

var _ = Describe("Guard", func() {
	guard := validation.NewGuard(validation.DefaultConfig(), nil)

	It("rejects a raw path traversal attempt", func() {
		_, v := guard.ValidatePath("../../../etc/passwd")
		Expect(v).NotTo(BeNil())
		Expect(v.Kind).To(Equal(validation.PathTraversal))
	})

	It("rejects a percent-encoded path traversal attempt after decoding", func() {
		_, v := guard.ValidatePath("%2e%2e%2f%2e%2e%2fetc%2fpasswd")
		Expect(v).NotTo(BeNil())
		Expect(v.Kind).To(Equal(validation.PathTraversal))
	})

	It("rejects a NUL byte smuggled into a parameter via decoding", func() {
		_, v := guard.ValidateParameter("John%00")
		Expect(v).NotTo(BeNil())
		Expect(v.Kind).To(Equal(validation.NullByte))
	})

	It("rejects a header value carrying a CRLF injection", func() {
		_, _, v := guard.ValidateHeader("X-Custom", "value\r\nSet-Cookie: admin=true")
		Expect(v).NotTo(BeNil())
		Expect(v.Kind).To(Equal(validation.ControlCharacter))
	})

	It("accepts a well-formed path", func() {
		out, v := guard.ValidatePath("/api/v1/users/42")
		Expect(v).To(BeNil())
		Expect(out).To(Equal("/api/v1/users/42"))
	})

	It("accepts a well-formed header", func() {
		name, value, v := guard.ValidateHeader("X-Request-Id", "abc-123")
		Expect(v).To(BeNil())
		Expect(name).To(Equal("X-Request-Id"))
		Expect(value).To(Equal("abc-123"))
	})

	It("rejects a parameter matching the attack-pattern catalogue", func() {
		_, v := guard.ValidateParameter("' or '1'='1")
		Expect(v).NotTo(BeNil())
		Expect(v.Kind).To(Equal(validation.SuspiciousPattern))
	})
})
