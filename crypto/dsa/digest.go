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
	"crypto/sha1" //nolint:gosec // FIPS 186-2 / default signing mandates SHA-1.
	"crypto/sha256"
	"crypto/sha512"
	"math/big"

	"github.com/getamis/fips-dsa/crypto/dsa/numutil"
)

// selectHash implements §4.E.1's digest-selection table: SHA-1 for the
// legacy standard, otherwise SHA-256 when N<=256 or SHA-512 when N>256.
func selectHash(standard Standard, n int) func([]byte) []byte {
	if standard != FIPS1864 {
		return func(b []byte) []byte { h := sha1.Sum(b); return h[:] }
	}
	if n <= 256 {
		return func(b []byte) []byte { h := sha256.Sum256(b); return h[:] }
	}
	return func(b []byte) []byte { h := sha512.Sum512(b); return h[:] }
}

// digestToZ implements §4.E.2's truncation rule: if the digest is
// wider than N bits, right-shift its integer form by the excess bit
// count. The legacy branch's truncation (SHA-1 is always narrower than
// or equal to the 160-bit q it accompanies) is the same rule applied
// to a non-positive shift, i.e. a no-op.
func digestToZ(digest []byte, n int) *big.Int {
	z := numutil.OS2IP(digest)
	outlen := 8 * len(digest)
	if outlen > n {
		z = new(big.Int).Rsh(z, uint(outlen-n))
	}
	return z
}
