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

// Verify implements §4.E.4. It returns (false, nil) for a malformed or
// non-matching signature — VerifyReject is a return value, never an
// error (§7) — and a UsageError only for a genuinely malformed call
// (missing key, missing message/digest).
func (e *Engine) Verify(key *Key, sig *Signature, opts VerifyOptions) (bool, error) {
	if key == nil {
		return false, usageError(ErrMissingKey)
	}
	if sig == nil || sig.R == nil || sig.S == nil {
		return false, nil
	}
	if len(opts.Message) == 0 && len(opts.Digest) == 0 {
		return false, usageError(ErrMissingMessageOrDigest)
	}
	if len(opts.Message) != 0 && len(opts.Digest) != 0 {
		return false, usageError(ErrBothMessageAndDigest)
	}

	if !inOpenRange(sig.R, key.Q) || !inOpenRange(sig.S, key.Q) {
		return false, nil
	}

	standard := e.resolveStandard(opts.Standard)
	n := numutil.Bitsize(key.Q)

	digest := opts.Digest
	if len(digest) == 0 {
		hash := selectHash(standard, n)
		digest = hash(opts.Message)
	}
	z := digestToZ(digest, n)

	w, err := numutil.ModInverse(sig.S, key.Q)
	if err != nil {
		// s was range-checked into (0, q) and q is prime, so s is
		// always invertible; this would indicate a broken invariant
		// upstream rather than a malformed signature.
		return false, internalError(ErrInternalGeneratorInvariant)
	}

	u1 := new(big.Int).Mul(z, w)
	u1.Mod(u1, key.Q)
	u2 := new(big.Int).Mul(sig.R, w)
	u2.Mod(u2, key.Q)

	gu1 := new(big.Int).Exp(key.G, u1, key.P)
	pubU2 := new(big.Int).Exp(key.Pub, u2, key.P)
	v := new(big.Int).Mul(gu1, pubU2)
	v.Mod(v, key.P)
	v.Mod(v, key.Q)

	return v.Cmp(sig.R) == 0, nil
}

// inOpenRange reports whether 0 < x < q.
func inOpenRange(x, q *big.Int) bool {
	return x.Cmp(big0) > 0 && x.Cmp(q) < 0
}
