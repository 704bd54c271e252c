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
	"bytes"
	"crypto/tls"
	"crypto/x509"
	"io"
	"os"
	"strings"
	"sync"

	tlscpr "github.com/nicolasjuhel/httpguard/certificates/cipher"
	tlsvrs "github.com/nicolasjuhel/httpguard/certificates/tlsversion"
)

type config struct {
	mu                    sync.RWMutex
	rand                  io.Reader
	cert                  []tls.Certificate
	cipherList            []uint16
	curveList             []tls.CurveID
	caRoot                *x509.CertPool
	clientAuth            tls.ClientAuthType
	clientCA              *x509.CertPool
	tlsMinVersion         uint16
	tlsMaxVersion         uint16
	dynSizingDisabled     bool
	ticketSessionDisabled bool
}

// SystemRootCA returns a copy of the host's system root CA pool, falling
// back to an empty pool when the platform offers none.
func SystemRootCA() *x509.CertPool {
	if p, e := x509.SystemCertPool(); e == nil && p != nil {
		return p
	}

	return x509.NewCertPool()
}

func (c *config) checkFile(pemFiles ...string) error {
	for _, f := range pemFiles {
		if f == "" {
			return ErrorParamsEmpty.Error(nil)
		}

		if _, e := os.Stat(f); e != nil {
			return ErrorFileStat.ErrorParent(e)
		}

		/* #nosec */
		b, e := os.ReadFile(f)
		if e != nil {
			return ErrorFileRead.ErrorParent(e)
		}

		b = bytes.Trim(b, "\n")
		b = bytes.Trim(b, "\r")
		b = bytes.TrimSpace(b)

		if len(b) < 1 {
			return ErrorFileEmpty.Error(nil)
		}
	}

	return nil
}

func (c *config) RegisterRand(rand io.Reader) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rand = rand
}

func (c *config) AddRootCAString(rootCA string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.caRoot == nil {
		c.caRoot = SystemRootCA()
	}

	if rootCA != "" {
		return c.caRoot.AppendCertsFromPEM([]byte(rootCA))
	}

	return false
}

func (c *config) AddRootCAFile(pemFile string) error {
	if e := c.checkFile(pemFile); e != nil {
		return e
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.caRoot == nil {
		c.caRoot = SystemRootCA()
	}

	/* #nosec */
	b, _ := os.ReadFile(pemFile)

	if c.caRoot.AppendCertsFromPEM(b) {
		return nil
	}

	return ErrorCertAppend.Error(nil)
}

func (c *config) GetRootCA() *x509.CertPool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.caRoot
}

func (c *config) AddClientCAString(ca string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.clientCA == nil {
		c.clientCA = x509.NewCertPool()
	}

	if ca != "" {
		return c.clientCA.AppendCertsFromPEM([]byte(ca))
	}

	return false
}

func (c *config) AddClientCAFile(pemFile string) error {
	if e := c.checkFile(pemFile); e != nil {
		return e
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.clientCA == nil {
		c.clientCA = x509.NewCertPool()
	}

	/* #nosec */
	b, _ := os.ReadFile(pemFile)

	if c.clientCA.AppendCertsFromPEM(b) {
		return nil
	}

	return ErrorCertAppend.Error(nil)
}

func (c *config) GetClientCA() *x509.CertPool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.clientCA
}

func (c *config) SetClientAuth(a tls.ClientAuthType) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clientAuth = a
}

func (c *config) AddCertificatePairString(key, crt string) error {
	key = strings.TrimSpace(strings.Trim(strings.Trim(key, "\n"), "\r"))
	crt = strings.TrimSpace(strings.Trim(strings.Trim(crt, "\n"), "\r"))

	if len(key) < 1 || len(crt) < 1 {
		return ErrorParamsEmpty.Error(nil)
	}

	p, err := tls.X509KeyPair([]byte(crt), []byte(key))
	if err != nil {
		return ErrorCertKeyPairParse.ErrorParent(err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.cert = append(c.cert, p)
	return nil
}

func (c *config) AddCertificatePairFile(keyFile, crtFile string) error {
	if e := c.checkFile(keyFile, crtFile); e != nil {
		return e
	}

	p, e := tls.LoadX509KeyPair(crtFile, keyFile)
	if e != nil {
		return ErrorCertKeyPairLoad.ErrorParent(e)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.cert = append(c.cert, p)
	return nil
}

func (c *config) LenCertificatePair() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cert)
}

func (c *config) CleanCertificatePair() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cert = make([]tls.Certificate, 0)
}

func (c *config) GetCertificatePair() []tls.Certificate {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append(make([]tls.Certificate, 0, len(c.cert)), c.cert...)
}

func (c *config) SetVersionMin(v tlsvrs.Version) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tlsMinVersion = uint16(v)
}

func (c *config) GetVersionMin() tlsvrs.Version {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return tlsvrs.ParseInt(int(c.tlsMinVersion))
}

func (c *config) SetVersionMax(v tlsvrs.Version) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tlsMaxVersion = uint16(v)
}

func (c *config) GetVersionMax() tlsvrs.Version {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return tlsvrs.ParseInt(int(c.tlsMaxVersion))
}

func (c *config) SetCipherList(list []tlscpr.Cipher) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cipherList = make([]uint16, 0, len(list))
	for _, a := range list {
		if tlscpr.Check(a.Uint16()) {
			c.cipherList = append(c.cipherList, a.Uint16())
		}
	}
}

func (c *config) AddCiphers(list ...tlscpr.Cipher) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, a := range list {
		if tlscpr.Check(a.Uint16()) {
			c.cipherList = append(c.cipherList, a.Uint16())
		}
	}
}

func (c *config) GetCiphers() []tlscpr.Cipher {
	c.mu.RLock()
	defer c.mu.RUnlock()

	res := make([]tlscpr.Cipher, 0, len(c.cipherList))
	for _, u := range c.cipherList {
		res = append(res, tlscpr.ParseInt(int(u)))
	}
	return res
}

func (c *config) SetCurveList(curves []tls.CurveID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.curveList = append(make([]tls.CurveID, 0, len(curves)), curves...)
}

func (c *config) AddCurves(curves ...tls.CurveID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.curveList = append(c.curveList, curves...)
}

func (c *config) GetCurves() []tls.CurveID {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append(make([]tls.CurveID, 0, len(c.curveList)), c.curveList...)
}

func (c *config) SetDynamicSizingDisabled(flag bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dynSizingDisabled = flag
}

func (c *config) SetSessionTicketDisabled(flag bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ticketSessionDisabled = flag
}

func (c *config) TLS(serverName string) *tls.Config {
	c.mu.RLock()
	defer c.mu.RUnlock()

	/* #nosec */
	cnf := &tls.Config{
		InsecureSkipVerify: false,
		Rand:               c.rand,
	}

	if serverName != "" {
		cnf.ServerName = serverName
	}

	if c.ticketSessionDisabled {
		cnf.SessionTicketsDisabled = true
	}

	if c.dynSizingDisabled {
		cnf.DynamicRecordSizingDisabled = true
	}

	if c.tlsMinVersion != 0 {
		cnf.MinVersion = c.tlsMinVersion
	}

	if c.tlsMaxVersion != 0 {
		cnf.MaxVersion = c.tlsMaxVersion
	}

	if len(c.cipherList) > 0 {
		cnf.CipherSuites = append(make([]uint16, 0, len(c.cipherList)), c.cipherList...)
	}

	if len(c.curveList) > 0 {
		cnf.CurvePreferences = append(make([]tls.CurveID, 0, len(c.curveList)), c.curveList...)
	}

	if c.caRoot != nil {
		cnf.RootCAs = c.caRoot
	}

	if len(c.cert) > 0 {
		cnf.Certificates = append(make([]tls.Certificate, 0, len(c.cert)), c.cert...)
	}

	if c.clientAuth != tls.NoClientCert {
		cnf.ClientAuth = c.clientAuth
		if c.clientCA != nil {
			cnf.ClientCAs = c.clientCA
		}
	}

	return cnf
}

func (c *config) Clone() TLSConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var root, client *x509.CertPool
	if c.caRoot != nil {
		root = c.caRoot.Clone()
	}
	if c.clientCA != nil {
		client = c.clientCA.Clone()
	}

	return &config{
		rand:                  c.rand,
		caRoot:                root,
		clientCA:              client,
		cert:                  append(make([]tls.Certificate, 0, len(c.cert)), c.cert...),
		tlsMinVersion:         c.tlsMinVersion,
		tlsMaxVersion:         c.tlsMaxVersion,
		cipherList:            append(make([]uint16, 0, len(c.cipherList)), c.cipherList...),
		curveList:             append(make([]tls.CurveID, 0, len(c.curveList)), c.curveList...),
		dynSizingDisabled:     c.dynSizingDisabled,
		ticketSessionDisabled: c.ticketSessionDisabled,
		clientAuth:            c.clientAuth,
	}
}

func (c *config) Config() *Config {
	return &Config{
		CipherList:           c.GetCiphers(),
		CurveList:            c.GetCurves(),
		VersionMin:           c.GetVersionMin(),
		VersionMax:           c.GetVersionMax(),
		AuthClient:           c.clientAuth,
		DynamicSizingDisable: c.dynSizingDisabled,
		SessionTicketDisable: c.ticketSessionDisabled,
	}
}
