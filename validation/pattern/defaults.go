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

const (
	componentPath        = "path"
	componentParameter   = "parameter"
	componentHeaderName  = "header_name"
	componentHeaderValue = "header_value"
)

// Default returns the built-in attack-pattern catalogue: a conservative set
// of known-malicious fragments for SQL injection, cross-site scripting,
// command injection, template injection and path traversal, targeted at
// the components where each realistically appears. IDs are stable across
// releases; insert new patterns at the end of a family's block rather than
// renumbering.
func Default() *Catalogue {
	c, err := NewCatalogue(
		// SQL injection.
		Pattern{ID: 100, Family: "sql_injection", MatchKind: CaseInsensitive, Payload: "' or '1'='1", AppliesTo: []string{componentParameter, componentHeaderValue}},
		Pattern{ID: 101, Family: "sql_injection", MatchKind: CaseInsensitive, Payload: "union select", AppliesTo: []string{componentParameter, componentHeaderValue}},
		Pattern{ID: 102, Family: "sql_injection", MatchKind: CaseInsensitive, Payload: "; drop table", AppliesTo: []string{componentParameter, componentHeaderValue}},
		Pattern{ID: 103, Family: "sql_injection", MatchKind: Literal, Payload: "--", AppliesTo: []string{componentParameter}},

		// Cross-site scripting.
		Pattern{ID: 200, Family: "xss", MatchKind: CaseInsensitive, Payload: "<script", AppliesTo: []string{componentParameter, componentHeaderValue}},
		Pattern{ID: 201, Family: "xss", MatchKind: CaseInsensitive, Payload: "javascript:", AppliesTo: []string{componentParameter, componentHeaderValue}},
		Pattern{ID: 202, Family: "xss", MatchKind: CaseInsensitive, Payload: "onerror=", AppliesTo: []string{componentParameter, componentHeaderValue}},
		Pattern{ID: 203, Family: "xss", MatchKind: CaseInsensitive, Payload: "onload=", AppliesTo: []string{componentParameter, componentHeaderValue}},

		// Command injection.
		Pattern{ID: 300, Family: "command_injection", MatchKind: Literal, Payload: "; rm -rf", AppliesTo: []string{componentParameter, componentHeaderValue}},
		Pattern{ID: 301, Family: "command_injection", MatchKind: Literal, Payload: "$(", AppliesTo: []string{componentParameter, componentHeaderValue}},
		Pattern{ID: 302, Family: "command_injection", MatchKind: Literal, Payload: "`", AppliesTo: []string{componentParameter, componentHeaderValue}},
		Pattern{ID: 303, Family: "command_injection", MatchKind: Literal, Payload: "|", AppliesTo: []string{componentParameter}},

		// Template / expression injection.
		Pattern{ID: 400, Family: "template_injection", MatchKind: Literal, Payload: "${", AppliesTo: []string{componentParameter, componentHeaderValue}},
		Pattern{ID: 401, Family: "template_injection", MatchKind: Literal, Payload: "{{", AppliesTo: []string{componentParameter, componentHeaderValue}},

		// Path traversal fragments that survive normalization as literal
		// payload (e.g. percent-decoded separators embedded mid-segment).
		Pattern{ID: 500, Family: "path_traversal", MatchKind: Literal, Payload: "../", AppliesTo: []string{componentPath}},
		Pattern{ID: 501, Family: "path_traversal", MatchKind: Literal, Payload: "..\\", AppliesTo: []string{componentPath}},

		// Header injection / request smuggling.
		Pattern{ID: 600, Family: "header_injection", MatchKind: Literal, Payload: "\r\n", AppliesTo: []string{componentHeaderValue}},
		Pattern{ID: 601, Family: "header_injection", MatchKind: CaseInsensitive, Payload: "transfer-encoding:", AppliesTo: []string{componentHeaderValue}},
	)
	if err != nil {
		panic(err)
	}
	return c
}
