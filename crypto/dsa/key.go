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

import "math/big"

// Key is a DSA domain-parameter triple plus the derived key pair
// (§3). Priv is nil for a public-only key constructed for verification
// workflows. Key is an immutable value object: callers never mutate
// its fields after construction.
type Key struct {
	P, Q, G *big.Int
	Pub     *big.Int
	Priv    *big.Int
}

// IsPrivate reports whether the key carries a private component.
func (k *Key) IsPrivate() bool {
	return k != nil && k.Priv != nil
}

// Witness carries the ancillary, non-secret values Generate returns
// alongside domain parameters (§3 "Generation witness"): the counter
// at which p was accepted, the scan base h used to derive g, and the
// seed that produced the accepted q. Useful for audit/replay; never
// consulted by Sign or Verify.
type Witness struct {
	Counter int
	H       *big.Int
	Seed    []byte
}

// NewPublicKey builds a public-only Key from externally supplied
// domain parameters and public value, e.g. one decoded by an envelope
// codec outside this package's scope (§3). The caller is responsible
// for re-validating consistency (q | p-1, g's order, etc.) before use;
// this constructor performs no such validation itself.
func NewPublicKey(p, q, g, pub *big.Int) *Key {
	return &Key{P: p, Q: q, G: g, Pub: pub}
}

// NewPrivateKey builds a full key pair from externally supplied
// values, subject to the same caller-revalidation caveat as
// NewPublicKey.
func NewPrivateKey(p, q, g, pub, priv *big.Int) *Key {
	return &Key{P: p, Q: q, G: g, Pub: pub, Priv: priv}
}
