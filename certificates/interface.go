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

// Package certificates is the external TLS provider boundary used by the
// resilient HTTP client: it builds *tls.Config values for outbound
// connections without the client package ever touching crypto/x509 or
// crypto/tls directly.
//
// Subpackages:
//   - cipher: TLS cipher suite selection and (de)serialization
//   - tlsversion: TLS version selection and (de)serialization
package certificates

import (
	"crypto/tls"
	"crypto/x509"
	"io"

	tlscpr "github.com/nicolasjuhel/httpguard/certificates/cipher"
	tlsvrs "github.com/nicolasjuhel/httpguard/certificates/tlsversion"
)

// FctTLSDefault returns a default TLSConfig. It is used by callers that want
// to lazily defer to the package-wide Default instead of wiring their own.
type FctTLSDefault func() TLSConfig

// TLSConfig is the main interface for configuring TLS connections used by the
// httpclient executor. All operations are safe for concurrent use.
type TLSConfig interface {
	// RegisterRand sets the source of randomness used by the TLS handshake.
	// A nil reader restores the default crypto/rand source.
	RegisterRand(rand io.Reader)

	AddRootCAString(rootCA string) bool
	AddRootCAFile(pemFile string) error
	GetRootCA() *x509.CertPool

	AddClientCAString(ca string) bool
	AddClientCAFile(pemFile string) error
	GetClientCA() *x509.CertPool
	SetClientAuth(a tls.ClientAuthType)

	AddCertificatePairString(key, crt string) error
	AddCertificatePairFile(keyFile, crtFile string) error
	LenCertificatePair() int
	CleanCertificatePair()
	GetCertificatePair() []tls.Certificate

	SetVersionMin(v tlsvrs.Version)
	GetVersionMin() tlsvrs.Version
	SetVersionMax(v tlsvrs.Version)
	GetVersionMax() tlsvrs.Version

	SetCipherList(c []tlscpr.Cipher)
	AddCiphers(c ...tlscpr.Cipher)
	GetCiphers() []tlscpr.Cipher

	SetCurveList(c []tls.CurveID)
	AddCurves(c ...tls.CurveID)
	GetCurves() []tls.CurveID

	SetDynamicSizingDisabled(flag bool)
	SetSessionTicketDisabled(flag bool)

	// Clone returns an independent deep copy of the TLSConfig.
	Clone() TLSConfig
	// TLS builds the *tls.Config to use for the given server name. An empty
	// serverName leaves tls.Config.ServerName unset.
	TLS(serverName string) *tls.Config
	// Config snapshots the current settings into a marshalable Config value.
	Config() *Config
}

// Default is a ready-to-use TLSConfig with the package's baseline settings
// (TLS 1.2 minimum, TLS 1.3 maximum, no client authentication).
var Default = New()

// New returns a new TLSConfig with default values.
func New() TLSConfig {
	return &config{
		rand:                  nil,
		cert:                  make([]tls.Certificate, 0),
		cipherList:            make([]uint16, 0),
		curveList:             make([]tls.CurveID, 0),
		caRoot:                nil,
		clientAuth:            tls.NoClientCert,
		clientCA:              nil,
		tlsMinVersion:         uint16(tlsvrs.VersionTLS12),
		tlsMaxVersion:         uint16(tlsvrs.VersionTLS13),
		dynSizingDisabled:     false,
		ticketSessionDisabled: false,
	}
}
