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

package paramgen

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"math/big"

	"github.com/getamis/fips-dsa/crypto/dsa/random"
)

// hashOutlen selects the SHA-2 variant FIPS 186-4 Table C.1 requires
// for a given N: SHA-256 for N<=256, SHA-384 for N<=384, else SHA-512.
func hashOutlen(n int) (outlenBits int, hashFn func([]byte) []byte) {
	switch {
	case n <= 256:
		return 256, func(b []byte) []byte { h := sha256.Sum256(b); return h[:] }
	case n <= 384:
		return 384, func(b []byte) []byte { h := sha512.Sum384(b); return h[:] }
	default:
		return 512, func(b []byte) []byte { h := sha512.Sum512(b); return h[:] }
	}
}

// primalityRounds returns (nptests, nqtests) per FIPS 186-4 Table C.1.
func primalityRounds(L, N int) (nptests, nqtests int) {
	nptests = 3
	if L > 2048 {
		nptests = 2
	}
	nqtests = 19
	if N > 160 {
		nqtests = 27
	}
	return
}

func generateFIPS1864(rng *random.Source, opts *resolvedOptions) (*Params, error) {
	L, N := opts.Size, opts.QSize
	outlenBits, hashFn := hashOutlen(N)
	n := (L+outlenBits-1)/outlenBits - 1
	seedlen := (N + 7) / 8
	nptests, nqtests := primalityRounds(L, N)

	qTest := new(big.Int).Lsh(big1, uint(N-1))

	callerSeed := opts.Seed
	if len(callerSeed)*8 < N {
		callerSeed = nil // discarded: must be at least N bits (§4.D's Seed row)
	}

	for {
		q, seed, err := findQ186_4(rng, seedlen, qTest, hashFn, callerSeed, opts.ProveQ, nqtests)
		if err != nil {
			return nil, err
		}
		callerSeed = nil

		p, counter, err := findP186_4(rng, L, n, outlenBits, q, seed, hashFn, opts.ProveP, nptests, opts.Progress)
		if err != nil {
			if err == errCounterOverflow {
				continue
			}
			return nil, err
		}

		return &Params{P: p, Q: q, Counter: counter, Seed: seed}, nil
	}
}

func findQ186_4(rng *random.Source, seedlen int, qTest *big.Int, hashFn func([]byte) []byte, callerSeed []byte, prove bool, nqtests int) (q *big.Int, seed []byte, err error) {
	for {
		if callerSeed != nil {
			seed = callerSeed
			callerSeed = nil
		} else {
			seed, err = randomBytesOrRandomSource(rng, seedlen)
			if err != nil {
				return nil, nil, err
			}
		}

		u := new(big.Int).SetBytes(hashFn(seed))
		u.Mod(u, qTest)

		candidate := new(big.Int).Add(qTest, u)
		candidate.Add(candidate, big1)
		if u.Bit(0) == 1 {
			candidate.Sub(candidate, big1)
		}

		ok, acceptErr := acceptCandidate(candidate, prove, nqtests, hex.EncodeToString(seed))
		if acceptErr != nil {
			return nil, nil, acceptErr
		}
		if ok {
			return candidate, seed, nil
		}
	}
}

func findP186_4(rng *random.Source, L, n, outlenBits int, q *big.Int, seed []byte, hashFn func([]byte) []byte, prove bool, nptests int, progress ProgressFunc) (*big.Int, int, error) {
	pTest := new(big.Int).Lsh(big1, uint(L-1))
	q2 := new(big.Int).Lsh(q, 1)
	counterBound := 4 * L

	// §9 open question: FIPS 186-4 masks the final Wstr block to b bits
	// where b = L-1-n*outlen; this implementation applies that mask.
	b := L - 1 - n*outlenBits

	cur := make([]byte, len(seed))
	copy(cur, seed)

	for counter := 0; counter < counterBound; counter++ {
		if err := reportProgress(progress, "find-p-186-4", counter); err != nil {
			return nil, 0, err
		}

		var acc []byte
		for j := 0; j <= n; j++ {
			cur = incrementBytes(cur)
			h := hashFn(cur)
			if j == n {
				h = maskTopBits(h, b)
			}
			acc = append(h, acc...)
		}

		w := new(big.Int).SetBytes(acc)
		w.Mod(w, pTest)
		x := new(big.Int).Add(w, pTest)

		xModQ2 := new(big.Int).Mod(x, q2)
		p := new(big.Int).Sub(x, xModQ2)
		p.Add(p, big1)

		if p.Cmp(pTest) < 0 {
			continue
		}

		ok, err := acceptCandidate(p, prove, nptests, hex.EncodeToString(cur))
		if err != nil {
			return nil, 0, err
		}
		if ok {
			return p, counter, nil
		}
	}

	return nil, 0, errCounterOverflow
}
