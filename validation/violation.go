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

package validation

import "fmt"

// ViolationKind is the closed set of reasons a Stage can reject an input.
type ViolationKind uint8

const (
	PathTraversal ViolationKind = iota
	DoubleEncoding
	OverlongUtf8
	NullByte
	ControlCharacter
	LengthExceeded
	InvalidCharacter
	SuspiciousPattern
	MalformedInput
)

func (k ViolationKind) String() string {
	switch k {
	case PathTraversal:
		return "path_traversal"
	case DoubleEncoding:
		return "double_encoding"
	case OverlongUtf8:
		return "overlong_utf8"
	case NullByte:
		return "null_byte"
	case ControlCharacter:
		return "control_character"
	case LengthExceeded:
		return "length_exceeded"
	case InvalidCharacter:
		return "invalid_character"
	case SuspiciousPattern:
		return "suspicious_pattern"
	case MalformedInput:
		return "malformed_input"
	default:
		return "unknown"
	}
}

// Violation is raised by a Stage to terminate the pipeline. PatternID is
// only meaningful when Kind is SuspiciousPattern.
type Violation struct {
	Kind      ViolationKind
	StageName string
	Snippet   string
	Detail    string
	PatternID int
}

func (v Violation) Error() string {
	if v.Kind == SuspiciousPattern {
		return fmt.Sprintf("%s: %s (pattern %d): %s", v.StageName, v.Kind, v.PatternID, v.Detail)
	}
	return fmt.Sprintf("%s: %s: %s", v.StageName, v.Kind, v.Detail)
}

func newViolation(stage string, kind ViolationKind, value, detail string) Violation {
	return Violation{
		Kind:      kind,
		StageName: stage,
		Snippet:   snippet(value),
		Detail:    detail,
	}
}

// snippet bounds how much of a potentially hostile input is carried into a
// violation for logging, so a pathological input cannot blow up log volume.
func snippet(s string) string {
	const max = 64
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
