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

package httpcli

import (
	"context"
	"net"
	"net/http"
	"time"

	"golang.org/x/net/http2"

	libtls "github.com/nicolasjuhel/httpguard/certificates"
	liberr "github.com/nicolasjuhel/httpguard/errors"
)

// GetClientTimeout returns an *http.Client built by GetClientTls with the
// default TLS configuration (libtls.Default), with the given global timeout
// applied to the whole request round-trip.
func GetClientTimeout(servername string, http2Tr bool, globalTimeout time.Duration) (*http.Client, liberr.Error) {
	return GetClientTls(servername, nil, http2Tr, globalTimeout)
}

// GetClientTls returns an *http.Client whose transport dials TLS connections
// using the given TLSConfig (libtls.Default when nil), optionally negotiating
// HTTP/2, bounded by globalTimeout.
func GetClientTls(servername string, tls libtls.TLSConfig, http2Tr bool, globalTimeout time.Duration) (*http.Client, liberr.Error) {
	if tls == nil {
		tls = libtls.Default
	}

	tr := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		TLSClientConfig:     tls.TLS(servername),
		MaxIdleConns:        50,
		MaxIdleConnsPerHost: 5,
		MaxConnsPerHost:     25,
		IdleConnTimeout:     30 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	if http2Tr {
		if e := http2.ConfigureTransport(tr); e != nil {
			return nil, ErrorClientTransportHttp2.ErrorParent(e)
		}
	}

	return &http.Client{
		Transport: tr,
		Timeout:   globalTimeout,
	}, nil
}

// GetClientForceIP behaves like GetClientTls but forces every dial to connect
// to forcedAddr over network instead of letting net.Dialer resolve servername
// itself. This is used for sticky-host testing, bypassing DNS when the caller
// already knows the target address, or routing the connection over a Unix
// domain socket or UDP transport regardless of the request URI's scheme.
func GetClientForceIP(forcedAddr string, servername string, network Network, tls libtls.TLSConfig, http2Tr bool, globalTimeout time.Duration) (*http.Client, liberr.Error) {
	if tls == nil {
		tls = libtls.Default
	}

	dialer := &net.Dialer{Timeout: 10 * time.Second, KeepAlive: 15 * time.Second}

	tr := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		TLSClientConfig:     tls.TLS(servername),
		MaxIdleConns:        50,
		MaxIdleConnsPerHost: 5,
		MaxConnsPerHost:     25,
		IdleConnTimeout:     30 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
		DialContext: func(ctx context.Context, _, _ string) (net.Conn, error) {
			return dialer.DialContext(ctx, network.Code(), forcedAddr)
		},
	}

	if http2Tr {
		if e := http2.ConfigureTransport(tr); e != nil {
			return nil, ErrorClientTransportHttp2.ErrorParent(e)
		}
	}

	return &http.Client{
		Transport: tr,
		Timeout:   globalTimeout,
	}, nil
}
