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

package certificates

import (
	"crypto/tls"
	"fmt"

	libval "github.com/go-playground/validator/v10"
	tlscpr "github.com/nicolasjuhel/httpguard/certificates/cipher"
	tlsvrs "github.com/nicolasjuhel/httpguard/certificates/tlsversion"
)

// Config is the marshalable snapshot of a TLSConfig, suitable for viper/json/
// yaml/toml-driven configuration of the httpclient executor's transport.
type Config struct {
	CipherList           []tlscpr.Cipher    `mapstructure:"cipherList" json:"cipherList" yaml:"cipherList" toml:"cipherList"`
	CurveList            []tls.CurveID      `mapstructure:"curveList" json:"curveList" yaml:"curveList" toml:"curveList"`
	RootCA               []string           `mapstructure:"rootCA" json:"rootCA" yaml:"rootCA" toml:"rootCA"`
	ClientCA             []string           `mapstructure:"clientCA" json:"clientCA" yaml:"clientCA" toml:"clientCA"`
	VersionMin           tlsvrs.Version     `mapstructure:"versionMin" json:"versionMin" yaml:"versionMin" toml:"versionMin"`
	VersionMax           tlsvrs.Version     `mapstructure:"versionMax" json:"versionMax" yaml:"versionMax" toml:"versionMax"`
	AuthClient           tls.ClientAuthType `mapstructure:"authClient" json:"authClient" yaml:"authClient" toml:"authClient"`
	InheritDefault       bool               `mapstructure:"inheritDefault" json:"inheritDefault" yaml:"inheritDefault" toml:"inheritDefault"`
	DynamicSizingDisable bool               `mapstructure:"dynamicSizingDisable" json:"dynamicSizingDisable" yaml:"dynamicSizingDisable" toml:"dynamicSizingDisable"`
	SessionTicketDisable bool               `mapstructure:"sessionTicketDisable" json:"sessionTicketDisable" yaml:"sessionTicketDisable" toml:"sessionTicketDisable"`
}

// Validate checks the Config against its struct constraints using
// go-playground/validator. It returns nil when the configuration is usable.
func (c *Config) Validate() error {
	err := ErrorValidatorError.Error(nil)

	if er := libval.New().Struct(c); er != nil {
		if e, ok := er.(*libval.InvalidValidationError); ok {
			err.Add(e)
		}

		for _, e := range er.(libval.ValidationErrors) {
			//nolint goerr113
			err.Add(fmt.Errorf("config field '%s' is not validated by constraint '%s'", e.StructNamespace(), e.ActualTag()))
		}
	}

	if err.HasParent() {
		return err
	}

	return nil
}

// New builds a TLSConfig from the Config, optionally inheriting from Default.
func (c *Config) New() TLSConfig {
	if c.InheritDefault {
		return c.NewFrom(Default)
	}
	return c.NewFrom(nil)
}

// NewFrom builds a TLSConfig, layering c's non-zero fields over cfg (or over
// a bare config when cfg is nil).
func (c *Config) NewFrom(cfg TLSConfig) TLSConfig {
	res := New().(*config)

	if cfg != nil {
		base := cfg.(*config)
		res.rand = base.rand
		res.caRoot = base.caRoot
		res.clientCA = base.clientCA
		res.cert = append(res.cert, base.cert...)
		res.cipherList = append(res.cipherList, base.cipherList...)
		res.curveList = append(res.curveList, base.curveList...)
		res.clientAuth = base.clientAuth
		res.tlsMinVersion = base.tlsMinVersion
		res.tlsMaxVersion = base.tlsMaxVersion
		res.dynSizingDisabled = base.dynSizingDisabled
		res.ticketSessionDisabled = base.ticketSessionDisabled
	}

	if c.VersionMin != tlsvrs.VersionUnknown {
		res.tlsMinVersion = uint16(c.VersionMin)
	}

	if c.VersionMax != tlsvrs.VersionUnknown {
		res.tlsMaxVersion = uint16(c.VersionMax)
	}

	if c.DynamicSizingDisable {
		res.dynSizingDisabled = true
	}

	if c.SessionTicketDisable {
		res.ticketSessionDisabled = true
	}

	if c.AuthClient != tls.NoClientCert {
		res.clientAuth = c.AuthClient
	}

	if len(c.CipherList) > 0 {
		res.SetCipherList(c.CipherList)
	}

	if len(c.CurveList) > 0 {
		res.SetCurveList(c.CurveList)
	}

	for _, s := range c.RootCA {
		res.AddRootCAString(s)
	}

	for _, s := range c.ClientCA {
		res.AddClientCAString(s)
	}

	return res
}
