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

package pattern_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nicolasjuhel/httpguard/validation/pattern"
)

var _ = Describe("Catalogue", func() {
	It("rejects an entry with an empty payload", func() {
		_, err := pattern.NewCatalogue(pattern.Pattern{ID: 1, Payload: "", AppliesTo: []string{"path"}})
		Expect(err).To(HaveOccurred())
	})

	It("rejects an entry with an unknown match kind", func() {
		_, err := pattern.NewCatalogue(pattern.Pattern{ID: 1, MatchKind: pattern.MatchKind(99), Payload: "x", AppliesTo: []string{"path"}})
		Expect(err).To(HaveOccurred())
	})

	It("keeps the lowest ID when two entries target the same component and payload", func() {
		c, err := pattern.NewCatalogue(
			pattern.Pattern{ID: 5, MatchKind: pattern.Literal, Payload: "../", AppliesTo: []string{"path"}},
			pattern.Pattern{ID: 2, MatchKind: pattern.Literal, Payload: "../", AppliesTo: []string{"path"}},
		)
		Expect(err).NotTo(HaveOccurred())
		Expect(c.Len()).To(Equal(1))
		p, ok := c.Match("path", "a/../b")
		Expect(ok).To(BeTrue())
		Expect(p.ID).To(Equal(2))
	})

	It("returns the lowest-ID match when more than one pattern matches", func() {
		c, err := pattern.NewCatalogue(
			pattern.Pattern{ID: 10, MatchKind: pattern.Literal, Payload: "select", AppliesTo: []string{"parameter"}},
			pattern.Pattern{ID: 20, MatchKind: pattern.CaseInsensitive, Payload: "union select", AppliesTo: []string{"parameter"}},
		)
		Expect(err).NotTo(HaveOccurred())
		p, ok := c.Match("parameter", "union select * from users")
		Expect(ok).To(BeTrue())
		Expect(p.ID).To(Equal(10))
	})

	It("does not match across unrelated components", func() {
		c, err := pattern.NewCatalogue(
			pattern.Pattern{ID: 1, MatchKind: pattern.Literal, Payload: "<script", AppliesTo: []string{"parameter"}},
		)
		Expect(err).NotTo(HaveOccurred())
		_, ok := c.Match("header_name", "<script")
		Expect(ok).To(BeFalse())
	})

	It("matches byte sequences independent of case folding", func() {
		c, err := pattern.NewCatalogue(
			pattern.Pattern{ID: 1, MatchKind: pattern.ByteSequence, Payload: "\x00\x01", AppliesTo: []string{"header_value"}},
		)
		Expect(err).NotTo(HaveOccurred())
		_, ok := c.Match("header_value", "a\x00\x01b")
		Expect(ok).To(BeTrue())
	})

	It("builds the default catalogue without error", func() {
		c := pattern.Default()
		Expect(c.Len()).To(BeNumerically(">", 0))
		_, ok := c.Match("path", "../../etc/passwd")
		Expect(ok).To(BeTrue())
	})
})
