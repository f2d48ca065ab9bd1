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

package dsa

import (
	"math/big"

	"github.com/getamis/fips-dsa/crypto/dsa/numutil"
)

var (
	big0 = big.NewInt(0)
	big1 = big.NewInt(1)
)

// Sign implements §4.E.3. Exactly one of opts.Message/opts.Digest must
// be set and Key must carry a private component. Every call samples a
// fresh nonce k; there is no per-key cache of k or kinv (§4.E.5 — the
// legacy source's caching is explicitly not reproduced here).
func (e *Engine) Sign(key *Key, opts SignOptions) (*Signature, error) {
	if key == nil {
		return nil, usageError(ErrMissingKey)
	}
	if !key.IsPrivate() {
		return nil, usageError(ErrMissingPrivateKey)
	}
	if len(opts.Message) == 0 && len(opts.Digest) == 0 {
		return nil, usageError(ErrMissingMessageOrDigest)
	}
	if len(opts.Message) != 0 && len(opts.Digest) != 0 {
		return nil, usageError(ErrBothMessageAndDigest)
	}

	standard := e.resolveStandard(opts.Standard)
	n := numutil.Bitsize(key.Q)

	digest := opts.Digest
	if len(digest) == 0 {
		hash := selectHash(standard, n)
		digest = hash(opts.Message)
	}
	z := digestToZ(digest, n)

	reader := e.rng.Reader()

	for {
		var r, s, k *big.Int

		for {
			var err error
			k, err = numutil.MakeRandomRange(reader, new(big.Int).Sub(key.Q, big1))
			if err != nil {
				return nil, randomnessError(err)
			}
			k.Add(k, big1) // k uniform in [1, q-1]

			r = new(big.Int).Exp(key.G, k, key.P)
			r.Mod(r, key.Q)
			if r.Sign() != 0 {
				break
			}
		}

		kInv, err := numutil.ModInverse(k, key.Q)
		if err != nil {
			// k was sampled in [1, q-1]; q is prime, so this cannot
			// happen unless a postcondition elsewhere is broken.
			return nil, internalError(ErrInternalGeneratorInvariant)
		}

		s = new(big.Int).Mul(key.Priv, r)
		s.Add(s, z)
		s.Mul(s, kInv)
		s.Mod(s, key.Q)

		if r.Sign() == 0 && s.Sign() == 0 {
			return nil, internalError(ErrInternalZeroSignature)
		}
		if s.Sign() == 0 {
			continue
		}

		return &Signature{R: r, S: s}, nil
	}
}
