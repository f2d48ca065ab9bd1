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
	"math/big"

	"github.com/getamis/fips-dsa/crypto/dsa/numutil"
	"github.com/getamis/fips-dsa/crypto/dsa/random"
)

// DerivePrivateKey draws priv uniformly in [1, q-1] per §4.D.4: a
// uniform sample in [0, q-2], shifted up by one.
func DerivePrivateKey(rng *random.Source, q *big.Int) (*big.Int, error) {
	if rng == nil {
		rng = random.Default()
	}
	x, err := numutil.MakeRandomRange(rng.Reader(), new(big.Int).Sub(q, big2))
	if err != nil {
		return nil, err
	}
	return x.Add(x, big1), nil
}

// DerivePublicKey computes pub = g^priv mod p.
func DerivePublicKey(g, priv, p *big.Int) *big.Int {
	return new(big.Int).Exp(g, priv, p)
}
