// Copyright © 2020 AMIS Technologies
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package random wraps the operating system's cryptographic byte
// source behind a lazily-initialized, process-wide Source. Access is
// the one piece of shared mutable state in the dsa core (§5); it is
// guarded by an internal mutex rather than exposed as a bare
// io.Reader, so concurrent callers never race on it.
package random

import (
	"crypto/rand"
	"errors"
	"io"
	"sync"
)

// ErrUnavailable is returned when the OS CSPRNG cannot service a read.
// It is unrecoverable: callers should treat it as fatal rather than
// retry, per §4.B.
var ErrUnavailable = errors.New("random: cryptographic source unavailable")

// Source is a non-blocking cryptographic byte source. The zero value
// is not usable; obtain one via Default or New.
type Source struct {
	mu     sync.Mutex
	reader io.Reader
}

// New wraps an arbitrary io.Reader as a Source. Production callers
// should use Default; New exists so tests can substitute a
// deterministic reader.
func New(reader io.Reader) *Source {
	return &Source{reader: reader}
}

var (
	defaultOnce   sync.Once
	defaultSource *Source
)

// Default returns the process-wide Source, opening the OS CSPRNG on
// first use and reusing it thereafter. This is the only module-level
// state in the package; it is obtained through this accessor rather
// than a raw global so every read is serialized.
func Default() *Source {
	defaultOnce.Do(func() {
		defaultSource = New(rand.Reader)
	})
	return defaultSource
}

// Reset tears down the process-wide Source so the next call to
// Default reopens it. Intended for tests and for hosts that need an
// explicit teardown point at process exit; it is never called by the
// core itself.
func Reset() {
	defaultOnce = sync.Once{}
	defaultSource = nil
}

// RandomBytes returns n freshly read bytes from the source. It fails
// with ErrUnavailable (wrapping the underlying I/O error) if the
// source cannot produce n bytes.
func (s *Source) RandomBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, errors.New("random: negative length")
	}
	buf := make([]byte, n)
	if n == 0 {
		return buf, nil
	}

	s.mu.Lock()
	_, err := io.ReadFull(s.reader, buf)
	s.mu.Unlock()

	if err != nil {
		return nil, errorsJoin(ErrUnavailable, err)
	}
	return buf, nil
}

// Reader exposes the Source as an io.Reader, serialized through the
// same mutex as RandomBytes. NumUtil's sampling routines take an
// io.Reader so they can be driven by either Default() or a
// test double.
func (s *Source) Reader() io.Reader {
	return readerFunc(func(p []byte) (int, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		return io.ReadFull(s.reader, p)
	})
}

type readerFunc func(p []byte) (int, error)

func (f readerFunc) Read(p []byte) (int, error) { return f(p) }

// errorsJoin wraps err with a sentinel so errors.Is matches either one,
// without depending on Go 1.20's errors.Join (the module targets 1.17).
func errorsJoin(sentinel, err error) error {
	return &wrappedError{sentinel: sentinel, cause: err}
}

type wrappedError struct {
	sentinel error
	cause    error
}

func (e *wrappedError) Error() string {
	return e.sentinel.Error() + ": " + e.cause.Error()
}

func (e *wrappedError) Unwrap() error {
	return e.sentinel
}

// Is lets errors.Is find the underlying cause as well as the sentinel.
func (e *wrappedError) Is(target error) bool {
	return errors.Is(e.cause, target)
}
