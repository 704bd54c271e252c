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
	. "github.com/nicolasjuhel/httpguard/httpcli"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Network", func() {
	DescribeTable("String/Code round-trip",
		func(n Network, name, code string) {
			Expect(n.String()).To(Equal(name))
			Expect(n.Code()).To(Equal(code))
		},
		Entry("TCP", NetworkTCP, "TCP", "tcp"),
		Entry("UDP", NetworkUDP, "UDP", "udp"),
		Entry("Unix", NetworkUnix, "unix", "unix"),
	)

	DescribeTable("GetNetworkFromString is case-insensitive",
		func(in string, want Network) {
			Expect(GetNetworkFromString(in)).To(Equal(want))
		},
		Entry("tcp", "tcp", NetworkTCP),
		Entry("TCP", "TCP", NetworkTCP),
		Entry("udp", "udp", NetworkUDP),
		Entry("UDP", "UDP", NetworkUDP),
		Entry("unix", "unix", NetworkUnix),
		Entry("unrecognized falls back to TCP", "sctp", NetworkTCP),
	)
})
