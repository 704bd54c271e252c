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

// Guard wires the five stages (decoding, normalization, character
// validation, length validation, pattern matching) into the ordered
// pipelines needed to validate an HTTP request: a URL path, a query
// parameter, a header name, and a header value. Build one Guard per
// Config/Catalogue pair and share it across requests; it holds no
// per-request state.
type Guard struct {
	path        *Pipeline
	parameter   *Pipeline
	headerName  *Pipeline
	headerValue *Pipeline
}

// NewGuard builds a Guard from cfg and catalogue. A nil catalogue uses the
// built-in default attack-pattern set.
func NewGuard(cfg Config, catalogue *pattern.Catalogue) *Guard {
	if catalogue == nil {
		catalogue = pattern.Default()
	}

	build := func(component Component) *Pipeline {
		return NewPipeline(
			NewDecodingStage(cfg),
			NewNormalizationStage(cfg, component),
			NewCharacterValidationStage(cfg, component),
			NewLengthValidationStage(cfg, component),
			NewPatternMatchingStage(catalogue, component),
		)
	}

	return &Guard{
		path:        build(ComponentPath),
		parameter:   build(ComponentParameter),
		headerName:  build(ComponentHeaderName),
		headerValue: build(ComponentHeaderValue),
	}
}

// ValidatePath runs the URL-path/full-URL pipeline.
func (g *Guard) ValidatePath(path string) (string, *Violation) {
	out, v := g.path.Validate(&path)
	if v != nil {
		return "", v
	}
	return *out, nil
}

// ValidateParameter runs the query-parameter pipeline.
func (g *Guard) ValidateParameter(value string) (string, *Violation) {
	out, v := g.parameter.Validate(&value)
	if v != nil {
		return "", v
	}
	return *out, nil
}

// ValidateHeader runs the header-name pipeline followed by the
// header-value pipeline, so a violation always names which one failed.
func (g *Guard) ValidateHeader(name, value string) (canonicalName, canonicalValue string, violation *Violation) {
	outName, v := g.headerName.Validate(&name)
	if v != nil {
		return "", "", v
	}

	outValue, v := g.headerValue.Validate(&value)
	if v != nil {
		return "", "", v
	}

	return *outName, *outValue, nil
}
