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

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizationStage applies Unicode NFC normalization and, for path-like
// components, collapses path segments (".", "..", repeated separators) and
// rejects traversal outside the root and mixed separators.
type NormalizationStage struct {
	cfg       Config
	component Component
}

func NewNormalizationStage(cfg Config, component Component) *NormalizationStage {
	return &NormalizationStage{cfg: cfg, component: component}
}

func (s *NormalizationStage) Name() string {
	return "NormalizationStage"
}

func (s *NormalizationStage) Validate(value *string) (*string, *Violation) {
	if value == nil {
		return nil, nil
	}

	raw := *value

	normalized := raw
	if s.cfg.NormalizeUnicode {
		normalized = norm.NFC.String(normalized)
	}

	if s.component != ComponentPath {
		return &normalized, nil
	}

	if strings.ContainsRune(normalized, '\\') {
		v := newViolation(s.Name(), InvalidCharacter, raw, "mixed path separators")
		return nil, &v
	}

	collapsed, v := collapsePathSegments(s.Name(), raw, normalized)
	if v != nil {
		return nil, v
	}

	return &collapsed, nil
}

// collapsePathSegments resolves "." and ".." segments and collapses runs of
// "/", reporting PathTraversal when ".." would climb above the root.
func collapsePathSegments(stage, raw, path string) (string, *Violation) {
	absolute := strings.HasPrefix(path, "/")
	trailingSlash := len(path) > 1 && strings.HasSuffix(path, "/")

	parts := strings.Split(path, "/")
	stack := make([]string, 0, len(parts))

	for _, seg := range parts {
		switch seg {
		case "", ".":
			continue
		case "..":
			if len(stack) == 0 {
				v := newViolation(stage, PathTraversal, raw, "path traversal above root")
				return "", &v
			}
			stack = stack[:len(stack)-1]
		default:
			stack = append(stack, seg)
		}
	}

	result := strings.Join(stack, "/")

	if absolute {
		result = "/" + result
	}
	if trailingSlash && result != "/" {
		result += "/"
	}
	if result == "" {
		result = "."
	}

	return result, nil
}
