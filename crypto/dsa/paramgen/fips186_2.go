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
	"crypto/sha1" //nolint:gosec // FIPS 186-2 mandates SHA-1 for the legacy regime.
	"encoding/hex"
	"errors"
	"math/big"

	"github.com/getamis/fips-dsa/crypto/dsa/random"
)

const (
	qBits186_2    = 160
	counterBound2 = 4096
)

// generateFIPS1862 implements §4.D.1: the FIPS 186-2 / A.1.1.1
// seed-driven search for q followed by the counter-bounded search for
// p, restarting from a fresh seed whenever the counter overflows.
func generateFIPS1862(rng *random.Source, opts *resolvedOptions) (*Params, error) {
	L := opts.Size
	n := (L+159)/160 - 1

	callerSeed := opts.Seed
	if len(callerSeed) != 20 {
		callerSeed = nil // silently discarded per §4.D's Seed row
	}

	for {
		q, seed, seedp1, err := findQ186_2(rng, callerSeed, opts.ProveQ)
		if err != nil {
			return nil, err
		}
		callerSeed = nil // consumed at most once across the whole search

		p, counter, err := findP186_2(rng, L, n, q, seedp1, opts.ProveP, opts.Progress)
		if err != nil {
			if err == errCounterOverflow {
				continue
			}
			return nil, err
		}

		return &Params{P: p, Q: q, Counter: counter, Seed: seed}, nil
	}
}

var errCounterOverflow = errors.New("paramgen: counter overflowed, restart with a fresh seed")

func findQ186_2(rng *random.Source, callerSeed []byte, prove bool) (q *big.Int, seed, seedp1 []byte, err error) {
	for attempt := 0; ; attempt++ {
		if callerSeed != nil {
			seed = callerSeed
			callerSeed = nil
		} else {
			seed, err = randomBytesOrRandomSource(rng, 20)
			if err != nil {
				return nil, nil, nil, err
			}
		}

		seedp1 = incrementBytes(seed)

		h1 := sha1.Sum(seed)
		h2 := sha1.Sum(seedp1)
		md := xorBytes(h1[:], h2[:])
		md[0] |= 0x80
		md[len(md)-1] |= 0x01

		candidate := new(big.Int).SetBytes(md)

		ok, acceptErr := acceptCandidate(candidate, prove, 19, hex.EncodeToString(seedp1))
		if acceptErr != nil {
			return nil, nil, nil, acceptErr
		}
		if ok {
			return candidate, seed, seedp1, nil
		}
	}
}

func findP186_2(rng *random.Source, L, n int, q *big.Int, seedp1 []byte, prove bool, progress ProgressFunc) (*big.Int, int, error) {
	pTest := new(big.Int).Lsh(big1, uint(L-1))
	q2 := new(big.Int).Lsh(q, 1)

	cur := make([]byte, len(seedp1))
	copy(cur, seedp1)

	for counter := 0; counter < counterBound2; counter++ {
		if err := reportProgress(progress, "find-p-186-2", counter); err != nil {
			return nil, 0, err
		}

		var acc []byte
		for j := 0; j <= n; j++ {
			cur = incrementBytes(cur)
			h := sha1.Sum(cur)
			acc = append(h[:], acc...)
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

		ok, err := acceptCandidate(p, prove, 3, hex.EncodeToString(cur))
		if err != nil {
			return nil, 0, err
		}
		if ok {
			return p, counter, nil
		}
	}

	return nil, 0, errCounterOverflow
}
