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

// Package pattern holds the attack-pattern catalogue used by the
// validation pipeline's pattern-matching stage: a closed, ordered set of
// known-malicious fragments matched against already-decoded,
// already-normalized input.
package pattern

// MatchKind selects how a Pattern's Payload is compared against the
// candidate value.
type MatchKind uint8

const (
	// Literal requires an exact-case substring match.
	Literal MatchKind = iota
	// CaseInsensitive folds both sides before comparing.
	CaseInsensitive
	// ByteSequence matches Payload as a raw byte sequence against the
	// candidate's raw bytes, independent of any textual encoding.
	ByteSequence
)

func (k MatchKind) String() string {
	switch k {
	case Literal:
		return "literal"
	case CaseInsensitive:
		return "case_insensitive"
	case ByteSequence:
		return "byte_sequence"
	default:
		return "unknown"
	}
}

// Pattern is one entry of the attack catalogue. ID breaks ties
// deterministically when more than one pattern matches the same input:
// the lowest ID wins.
type Pattern struct {
	ID        int
	Family    string
	MatchKind MatchKind
	Payload   string
	AppliesTo []string
}
