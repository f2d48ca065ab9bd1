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

import "math/big"

// DeriveGenerator implements §4.D.3: starting at h=2, compute
// g = h^e mod p where e = (p-1)/q, retrying with h+1 while g == 1.
// It returns the first g != 1 together with the h that produced it.
func DeriveGenerator(p, q *big.Int) (g, h *big.Int, err error) {
	e := new(big.Int).Sub(p, big1)
	e.Div(e, q)

	h = new(big.Int).Set(big2)
	for {
		g = new(big.Int).Exp(h, e, p)
		if g.Cmp(big1) != 0 {
			break
		}
		h = new(big.Int).Add(h, big1)
	}

	// Invariant check (§3): g^q mod p == 1 and g != 1.
	check := new(big.Int).Exp(g, q, p)
	if check.Cmp(big1) != 0 || g.Cmp(big1) == 0 {
		return nil, nil, ErrInternalPostcondition
	}
	return g, h, nil
}
