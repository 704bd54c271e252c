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

// Package validation implements a composable, fail-secure pipeline that
// inspects HTTP-protocol components (URL paths, full URLs, query
// parameters, header names and values) for injection, traversal and
// encoding-based attacks.
package validation

import (
	"github.com/go-playground/validator/v10"
)

// CharacterClass bounds which bytes a Character Validation Stage accepts
// once control characters have already been rejected.
type CharacterClass uint8

const (
	// PrintableASCII accepts only the printable ASCII range (0x20-0x7E).
	PrintableASCII CharacterClass = iota
	// PrintableUTF8 accepts any printable, non-control Unicode codepoint.
	PrintableUTF8
	// Strict accepts only [A-Za-z0-9-._~] (RFC 3986 unreserved plus dash).
	Strict
)

// Config is the immutable configuration shared by every stage of one
// pipeline. Construct once per pipeline and share by reference.
type Config struct {
	MaxPathLength         int `validate:"required,gt=0"`
	MaxParameterLength    int `validate:"required,gt=0"`
	MaxHeaderNameLength   int `validate:"required,gt=0"`
	MaxHeaderValueLength  int `validate:"required,gt=0"`
	AllowPercentEncoding  bool
	NormalizeUnicode      bool
	DecodeIterationsMax   int `validate:"required,gt=0"`
	AllowedCharacterClass CharacterClass

	// WidenHeaderNameTokens widens header-name validation from the
	// restricted [A-Za-z0-9-] subset to the full RFC 7230 token grammar.
	// Off by default; see the design notes on header-name character class.
	WidenHeaderNameTokens bool
}

// DefaultConfig returns conservative limits suitable for typical HTTP
// components.
func DefaultConfig() Config {
	return Config{
		MaxPathLength:         2048,
		MaxParameterLength:    1024,
		MaxHeaderNameLength:   256,
		MaxHeaderValueLength:  8192,
		AllowPercentEncoding:  true,
		NormalizeUnicode:      true,
		DecodeIterationsMax:   3,
		AllowedCharacterClass: PrintableUTF8,
	}
}

// Validate checks the configuration's own invariants (positive limits).
func (c Config) Validate() error {
	if e := validator.New().Struct(c); e != nil {
		return ErrorConfigInvalid.ErrorParent(e)
	}
	return nil
}
