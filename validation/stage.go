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

// Component names the HTTP-protocol part a pipeline validates, used to
// select the attack-pattern catalogue subset that applies.
type Component uint8

const (
	ComponentPath Component = iota
	ComponentParameter
	ComponentHeaderName
	ComponentHeaderValue
)

func (c Component) String() string {
	switch c {
	case ComponentPath:
		return "path"
	case ComponentParameter:
		return "parameter"
	case ComponentHeaderName:
		return "header_name"
	case ComponentHeaderValue:
		return "header_value"
	default:
		return "unknown"
	}
}

// Stage is a single, pure, side-effect-free validation step. A nil input
// propagates untouched without the stage being invoked; a non-nil input is
// either passed through (possibly transformed) or rejected with a Violation.
type Stage interface {
	Name() string
	Validate(value *string) (*string, *Violation)
}

// Pipeline runs an ordered list of Stages over one input. The first
// Violation wins; no later stage observes the input once one stage rejects
// it.
type Pipeline struct {
	stages []Stage
}

// NewPipeline builds a Pipeline running stages in the given order.
func NewPipeline(stages ...Stage) *Pipeline {
	return &Pipeline{stages: stages}
}

// Validate runs every stage in order over input, short-circuiting on the
// first Violation.
func (p *Pipeline) Validate(input *string) (*string, *Violation) {
	value := input

	for _, s := range p.stages {
		if value == nil {
			return nil, nil
		}

		var v *Violation
		value, v = s.Validate(value)
		if v != nil {
			return nil, v
		}
	}

	return value, nil
}
