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

package pattern

import (
	"bytes"
	"sort"
	"strings"
)

// Catalogue is a closed, deduplicated, deterministically ordered set of
// Patterns indexed by the component they apply to.
type Catalogue struct {
	byComponent map[string][]Pattern
}

// NewCatalogue validates every entry, drops duplicate (applies_to, payload)
// pairs keeping the lowest ID, and indexes the remainder by component in
// ascending ID order so matching is deterministic and lowest-id-wins.
func NewCatalogue(patterns ...Pattern) (*Catalogue, error) {
	for _, p := range patterns {
		if p.Payload == "" {
			return nil, ErrorPatternEmptyPayload.ErrorParent(nil)
		}
		switch p.MatchKind {
		case Literal, CaseInsensitive, ByteSequence:
		default:
			return nil, ErrorPatternInvalidMatchKind.ErrorParent(nil)
		}
	}

	sorted := make([]Pattern, len(patterns))
	copy(sorted, patterns)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	byComponent := make(map[string][]Pattern)
	seen := make(map[string]map[string]bool)

	for _, p := range sorted {
		for _, comp := range p.AppliesTo {
			if seen[comp] == nil {
				seen[comp] = make(map[string]bool)
			}
			if seen[comp][p.Payload] {
				continue
			}
			seen[comp][p.Payload] = true
			byComponent[comp] = append(byComponent[comp], p)
		}
	}

	return &Catalogue{byComponent: byComponent}, nil
}

// Match returns the lowest-ID Pattern in component's catalogue subset that
// matches value, if any.
func (c *Catalogue) Match(component, value string) (Pattern, bool) {
	candidates := c.byComponent[component]
	raw := []byte(value)

	for _, p := range candidates {
		if patternMatches(p, value, raw) {
			return p, true
		}
	}

	return Pattern{}, false
}

func patternMatches(p Pattern, value string, raw []byte) bool {
	switch p.MatchKind {
	case Literal:
		return strings.Contains(value, p.Payload)
	case CaseInsensitive:
		return strings.Contains(strings.ToLower(value), strings.ToLower(p.Payload))
	case ByteSequence:
		return bytes.Contains(raw, []byte(p.Payload))
	default:
		return false
	}
}

// Len returns the number of distinct (component, payload) entries held.
func (c *Catalogue) Len() int {
	n := 0
	for _, v := range c.byComponent {
		n += len(v)
	}
	return n
}
