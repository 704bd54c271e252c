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

import "github.com/nicolasjuhel/httpguard/validation/pattern"

// PatternMatchingStage rejects input matching a known attack fragment from
// the catalogue. It runs last, after decoding, normalization, and character
// validation have already reduced the input to its canonical form.
type PatternMatchingStage struct {
	catalogue *pattern.Catalogue
	component Component
}

// NewPatternMatchingStage builds a stage bound to a catalogue and the
// component it validates. A nil catalogue falls back to the built-in
// default.
func NewPatternMatchingStage(catalogue *pattern.Catalogue, component Component) *PatternMatchingStage {
	if catalogue == nil {
		catalogue = pattern.Default()
	}
	return &PatternMatchingStage{catalogue: catalogue, component: component}
}

func (s *PatternMatchingStage) Name() string {
	return "PatternMatchingStage"
}

func (s *PatternMatchingStage) Validate(value *string) (*string, *Violation) {
	if value == nil {
		return nil, nil
	}

	raw := *value

	if p, ok := s.catalogue.Match(s.component.String(), raw); ok {
		v := Violation{
			Kind:      SuspiciousPattern,
			StageName: s.Name(),
			Snippet:   snippet(raw),
			Detail:    p.Family,
			PatternID: p.ID,
		}
		return nil, &v
	}

	return value, nil
}
