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

// Package numutil provides the arbitrary-precision integer helpers the
// rest of the dsa core builds on: big-endian octet conversions, modular
// exponentiation/inversion and uniform random sampling.
package numutil

import (
	"errors"
	"io"
	"math/big"
)

var (
	// ErrNotCoprime is returned by ModInverse when gcd(a, n) != 1.
	ErrNotCoprime = errors.New("numutil: a and n are not coprime")
	// ErrInvalidBits is returned by MakeRandom when bits <= 0.
	ErrInvalidBits = errors.New("numutil: bits must be positive")
	// ErrNegativeMax is returned by MakeRandomRange when max < 0.
	ErrNegativeMax = errors.New("numutil: max must be non-negative")

	big0 = big.NewInt(0)
	big1 = big.NewInt(1)
)

// Bitsize returns the number of bits needed to represent n, i.e.
// floor(log2(n)) + 1. Bitsize(0) is 0.
func Bitsize(n *big.Int) int {
	if n.Sign() == 0 {
		return 0
	}
	return n.BitLen()
}

// OS2IP interprets bs as a big-endian base-256 non-negative integer.
// An empty byte string maps to 0.
func OS2IP(bs []byte) *big.Int {
	return new(big.Int).SetBytes(bs)
}

// I2OSP renders n as the minimal big-endian byte string. Zero maps to
// the empty string. Callers wanting a fixed-width encoding must pad
// the result themselves.
func I2OSP(n *big.Int) []byte {
	if n.Sign() == 0 {
		return []byte{}
	}
	return n.Bytes()
}

// I2OSPPadded renders n as a big-endian byte string padded on the left
// with zero bytes to exactly size bytes. It panics if n does not fit.
func I2OSPPadded(n *big.Int, size int) []byte {
	raw := n.Bytes()
	if len(raw) > size {
		panic("numutil: I2OSPPadded: value does not fit in size bytes")
	}
	out := make([]byte, size)
	copy(out[size-len(raw):], raw)
	return out
}

// ModExp returns a^e mod n, a non-negative result.
func ModExp(a, e, n *big.Int) *big.Int {
	return new(big.Int).Exp(a, e, n)
}

// ModInverse returns the multiplicative inverse of a modulo n. It
// fails with ErrNotCoprime when gcd(a, n) != 1.
func ModInverse(a, n *big.Int) (*big.Int, error) {
	inv := new(big.Int).ModInverse(a, n)
	if inv == nil {
		return nil, ErrNotCoprime
	}
	return inv, nil
}

// MakeRandom returns a uniformly random integer with exactly bits
// bits: the high bit is always set, so 2^(bits-1) <= x < 2^bits.
func MakeRandom(rand io.Reader, bits int) (*big.Int, error) {
	if bits <= 0 {
		return nil, ErrInvalidBits
	}
	numBytes := (bits + 7) / 8
	buf := make([]byte, numBytes)
	if _, err := io.ReadFull(rand, buf); err != nil {
		return nil, err
	}
	// Clear any excess high bits beyond `bits`.
	excess := uint(numBytes*8 - bits)
	if excess > 0 {
		buf[0] &= byte(0xFF >> excess)
	}
	// Force the top bit of the `bits`-bit value.
	topBit := byte(1) << (7 - excess)
	buf[0] |= topBit
	return new(big.Int).SetBytes(buf), nil
}

// MakeRandomRange returns an integer uniform in [0, max].
func MakeRandomRange(rand io.Reader, max *big.Int) (*big.Int, error) {
	if max.Sign() < 0 {
		return nil, ErrNegativeMax
	}
	upper := new(big.Int).Add(max, big1)
	return randInt(rand, upper)
}

// randInt draws a uniform integer in [0, bound) by rejection sampling
// over bound's bit length, avoiding modulo bias.
func randInt(rand io.Reader, bound *big.Int) (*big.Int, error) {
	if bound.Sign() <= 0 {
		return new(big.Int).Set(big0), nil
	}
	bits := bound.BitLen()
	numBytes := (bits + 7) / 8
	excess := uint(numBytes*8 - bits)
	buf := make([]byte, numBytes)
	for {
		if _, err := io.ReadFull(rand, buf); err != nil {
			return nil, err
		}
		if excess > 0 {
			buf[0] &= byte(0xFF >> excess)
		}
		candidate := new(big.Int).SetBytes(buf)
		if candidate.Cmp(bound) < 0 {
			return candidate, nil
		}
	}
}
