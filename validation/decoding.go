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

// DecodingStage normalizes percent-encoding and rejects encoding-based
// attacks: malformed escapes, double encoding, overlong UTF-8, standalone
// surrogate halves, and embedded NUL bytes.
type DecodingStage struct {
	cfg Config
}

func NewDecodingStage(cfg Config) *DecodingStage {
	return &DecodingStage{cfg: cfg}
}

func (s *DecodingStage) Name() string {
	return "DecodingStage"
}

func (s *DecodingStage) Validate(value *string) (*string, *Violation) {
	if value == nil {
		return nil, nil
	}

	raw := *value

	if !s.cfg.AllowPercentEncoding {
		if !containsPercent(raw) {
			return value, nil
		}
		v := newViolation(s.Name(), MalformedInput, raw, "percent-encoding is disabled")
		return nil, &v
	}

	max := s.cfg.DecodeIterationsMax
	if max < 1 {
		max = 1
	}

	prev := raw
	first, changed, malformed := decodeOnePass(prev)
	if malformed {
		v := newViolation(s.Name(), MalformedInput, raw, "malformed percent-encoding escape")
		return nil, &v
	}

	if !changed {
		return finishDecoding(s.Name(), raw, first)
	}

	prev = first

	for i := 1; i < max; i++ {
		next, changedAgain, malformedAgain := decodeOnePass(prev)
		if malformedAgain {
			v := newViolation(s.Name(), MalformedInput, raw, "malformed percent-encoding escape")
			return nil, &v
		}
		if changedAgain {
			v := newViolation(s.Name(), DoubleEncoding, raw, "input is percent-encoded more than once")
			return nil, &v
		}
		prev = next
	}

	return finishDecoding(s.Name(), raw, prev)
}

func finishDecoding(stage, raw, decoded string) (*string, *Violation) {
	if v := validateUTF8Bytes(stage, raw, []byte(decoded)); v != nil {
		return nil, v
	}
	return &decoded, nil
}

func containsPercent(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '%' {
			return true
		}
	}
	return false
}

// decodeOnePass decodes every valid %HH escape in s exactly once. changed
// reports whether any escape was found and decoded; malformed reports a
// %HH with non-hexadecimal digits, a truncated escape, or a non-standard
// %uXXXX escape (rejected unconditionally).
func decodeOnePass(s string) (decoded string, changed bool, malformed bool) {
	out := make([]byte, 0, len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '%' {
			out = append(out, c)
			continue
		}

		if i+1 < len(s) && (s[i+1] == 'u' || s[i+1] == 'U') {
			return "", false, true
		}

		if i+2 >= len(s) {
			return "", false, true
		}

		h1, ok1 := hexVal(s[i+1])
		h2, ok2 := hexVal(s[i+2])
		if !ok1 || !ok2 {
			return "", false, true
		}

		out = append(out, byte(h1<<4|h2))
		changed = true
		i += 2
	}

	return string(out), changed, false
}

func hexVal(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	default:
		return 0, false
	}
}

// validateUTF8Bytes walks b as UTF-8, rejecting embedded NUL, overlong
// encodings, standalone surrogate halves, and otherwise malformed
// sequences. The standard library's unicode/utf8 collapses all of these
// into a single RuneError and does not distinguish the attack category, so
// the decode is done by hand here.
func validateUTF8Bytes(stage, raw string, b []byte) *Violation {
	i := 0
	n := len(b)

	for i < n {
		c := b[i]

		switch {
		case c == 0x00:
			v := newViolation(stage, NullByte, raw, "embedded NUL byte")
			return &v

		case c < 0x80:
			i++

		case c&0xE0 == 0xC0:
			if i+1 >= n || b[i+1]&0xC0 != 0x80 {
				v := newViolation(stage, MalformedInput, raw, "truncated 2-byte UTF-8 sequence")
				return &v
			}
			cp := int(c&0x1F)<<6 | int(b[i+1]&0x3F)
			if cp < 0x80 {
				v := newViolation(stage, OverlongUtf8, raw, "overlong 2-byte UTF-8 encoding")
				return &v
			}
			i += 2

		case c&0xF0 == 0xE0:
			if i+2 >= n || b[i+1]&0xC0 != 0x80 || b[i+2]&0xC0 != 0x80 {
				v := newViolation(stage, MalformedInput, raw, "truncated 3-byte UTF-8 sequence")
				return &v
			}
			cp := int(c&0x0F)<<12 | int(b[i+1]&0x3F)<<6 | int(b[i+2]&0x3F)
			if cp < 0x800 {
				v := newViolation(stage, OverlongUtf8, raw, "overlong 3-byte UTF-8 encoding")
				return &v
			}
			if cp >= 0xD800 && cp <= 0xDFFF {
				v := newViolation(stage, MalformedInput, raw, "standalone UTF-16 surrogate half")
				return &v
			}
			i += 3

		case c&0xF8 == 0xF0:
			if i+3 >= n || b[i+1]&0xC0 != 0x80 || b[i+2]&0xC0 != 0x80 || b[i+3]&0xC0 != 0x80 {
				v := newViolation(stage, MalformedInput, raw, "truncated 4-byte UTF-8 sequence")
				return &v
			}
			cp := int(c&0x07)<<18 | int(b[i+1]&0x3F)<<12 | int(b[i+2]&0x3F)<<6 | int(b[i+3]&0x3F)
			if cp < 0x10000 || cp > 0x10FFFF {
				v := newViolation(stage, OverlongUtf8, raw, "overlong or out-of-range 4-byte UTF-8 encoding")
				return &v
			}
			i += 4

		default:
			v := newViolation(stage, MalformedInput, raw, "invalid UTF-8 leading byte")
			return &v
		}
	}

	return nil
}
