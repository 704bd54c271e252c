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

// Package retry decorates a call with exponential backoff and jitter, gated
// on the result category and the method's idempotency.
package retry

import (
	"math"
	"math/rand"
	"time"
)

// Config bounds the retry decorator's behavior. IdempotentOnly gates whether
// a retry is permitted at all for a non-idempotent method; when false, every
// method is eligible for the same retry gate as an idempotent one.
type Config struct {
	MaxAttempts    int
	InitialDelay   time.Duration
	MaxDelay       time.Duration
	Multiplier     float64
	Jitter         float64
	IdempotentOnly bool
}

// DefaultConfig mirrors a conservative, commonly used backoff shape.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:    3,
		InitialDelay:   200 * time.Millisecond,
		MaxDelay:       5 * time.Second,
		Multiplier:     2.0,
		Jitter:         0.2,
		IdempotentOnly: true,
	}
}

// Delay returns the backoff delay after attempt n, before attempt n+1
// (1-indexed: the delay preceding the second attempt is Delay(1)), per
// delay = min(initial * multiplier^(n-1) * (1 + U*jitter), max), with
// U drawn uniformly from [-1, +1].
func (c Config) Delay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}

	base := float64(c.InitialDelay) * math.Pow(c.Multiplier, float64(attempt-1))
	u := rand.Float64()*2 - 1
	jittered := base * (1 + u*c.Jitter)

	if jittered < 0 {
		jittered = 0
	}

	d := time.Duration(jittered)
	if d > c.MaxDelay {
		d = c.MaxDelay
	}

	return d
}

// Retryable is the minimal result contract the decorator needs: whether the
// outcome counts as a failure, and whether that failure's category permits a
// retry. The method's idempotency is not part of the result; it is passed to
// ShouldRetry and Do separately.
type Retryable interface {
	IsFailure() bool
	IsRetryable() bool
}

// ShouldRetry reports whether attempt (1-indexed, the attempt just
// completed) should be followed by another, given result and the method's
// idempotency. When cfg.IdempotentOnly is true, a non-idempotent method
// never retries regardless of category.
func ShouldRetry(cfg Config, result Retryable, attempt int, idempotent bool) bool {
	if !result.IsFailure() || !result.IsRetryable() {
		return false
	}
	if cfg.IdempotentOnly && !idempotent {
		return false
	}
	return attempt < cfg.MaxAttempts
}

// Do runs call up to cfg.MaxAttempts times, sleeping with exponential
// backoff and jitter between attempts, stopping as soon as call succeeds or
// the result is no longer retryable. idempotent is the method's own
// idempotency, consulted only when cfg.IdempotentOnly is set.
func Do[T Retryable](cfg Config, idempotent bool, call func(attempt int) T) T {
	var (
		result T
		n      int
	)

	for {
		n++
		result = call(n)

		if !ShouldRetry(cfg, result, n, idempotent) {
			return result
		}

		time.Sleep(cfg.Delay(n))
	}
}
