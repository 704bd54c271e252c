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

import "unicode/utf16"

// CharacterValidationStage rejects control characters and, once those are
// gone, enforces the configured CharacterClass. Header names are further
// restricted to a conservative token subset unless widened.
type CharacterValidationStage struct {
	cfg       Config
	component Component
}

func NewCharacterValidationStage(cfg Config, component Component) *CharacterValidationStage {
	return &CharacterValidationStage{cfg: cfg, component: component}
}

func (s *CharacterValidationStage) Name() string {
	return "CharacterValidationStage"
}

func (s *CharacterValidationStage) Validate(value *string) (*string, *Violation) {
	if value == nil {
		return nil, nil
	}

	raw := *value

	for _, r := range raw {
		if isControlRune(r) {
			v := newViolation(s.Name(), ControlCharacter, raw, "control character in input")
			return nil, &v
		}
	}

	if s.component == ComponentHeaderName {
		for _, r := range raw {
			if !isHeaderNameRune(r, s.cfg.WidenHeaderNameTokens) {
				v := newViolation(s.Name(), InvalidCharacter, raw, "character not permitted in a header name")
				return nil, &v
			}
		}
		return value, nil
	}

	for _, r := range raw {
		if !isAllowedByClass(r, s.cfg.AllowedCharacterClass) {
			v := newViolation(s.Name(), InvalidCharacter, raw, "character not permitted by the configured character class")
			return nil, &v
		}
	}

	return value, nil
}

func isControlRune(r rune) bool {
	switch {
	case r >= 0x00 && r <= 0x1F:
		return true
	case r == 0x7F:
		return true
	case r >= 0x80 && r <= 0x9F:
		return true
	default:
		return false
	}
}

// isHeaderNameRune implements the restricted [A-Za-z0-9-] subset by
// default, or the full RFC 7230 token grammar when widened.
func isHeaderNameRune(r rune, widened bool) bool {
	switch {
	case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
		return true
	}
	if !widened {
		return false
	}
	switch r {
	case '!', '#', '$', '%', '&', '\'', '*', '+', '.', '^', '_', '`', '|', '~':
		return true
	}
	return false
}

func isAllowedByClass(r rune, class CharacterClass) bool {
	switch class {
	case PrintableASCII:
		return r >= 0x20 && r <= 0x7E
	case Strict:
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return true
		case r == '-', r == '.', r == '_', r == '~':
			return true
		default:
			return false
		}
	case PrintableUTF8:
		fallthrough
	default:
		return r >= 0x20 && !isControlRune(r)
	}
}

// LengthValidationStage bounds input length in UTF-16 code units, matching
// how browsers and most HTTP intermediaries measure URL and header length.
type LengthValidationStage struct {
	cfg       Config
	component Component
}

func NewLengthValidationStage(cfg Config, component Component) *LengthValidationStage {
	return &LengthValidationStage{cfg: cfg, component: component}
}

func (s *LengthValidationStage) Name() string {
	return "LengthValidationStage"
}

func (s *LengthValidationStage) Validate(value *string) (*string, *Violation) {
	if value == nil {
		return nil, nil
	}

	raw := *value
	limit := s.limit()

	n := utf16Length(raw)
	if n > limit {
		v := newViolation(s.Name(), LengthExceeded, raw, "input exceeds the configured maximum length")
		return nil, &v
	}

	return value, nil
}

func (s *LengthValidationStage) limit() int {
	switch s.component {
	case ComponentPath:
		return s.cfg.MaxPathLength
	case ComponentParameter:
		return s.cfg.MaxParameterLength
	case ComponentHeaderName:
		return s.cfg.MaxHeaderNameLength
	case ComponentHeaderValue:
		return s.cfg.MaxHeaderValueLength
	default:
		return s.cfg.MaxParameterLength
	}
}

func utf16Length(s string) int {
	n := 0
	for _, r := range s {
		n += len(utf16.Encode([]rune{r}))
	}
	return n
}
