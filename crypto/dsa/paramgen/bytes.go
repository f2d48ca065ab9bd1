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

// incrementBytes returns seed+1 interpreted as a big-endian integer,
// wrapping around to all-zero on overflow (carry wrap), without
// changing the slice's length.
func incrementBytes(seed []byte) []byte {
	out := make([]byte, len(seed))
	copy(out, seed)
	for i := len(out) - 1; i >= 0; i-- {
		out[i]++
		if out[i] != 0 {
			break
		}
	}
	return out
}

// xorBytes XORs two equal-length byte slices.
func xorBytes(a, b []byte) []byte {
	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out
}

// maskTopBits clears every bit above position bitsToKeep-1 (counting
// from the least-significant bit) in the big-endian byte slice h,
// leaving only its low bitsToKeep bits. Used for the FIPS 186-4 Wstr
// construction's final-block mask (§9 open question: implemented per
// the "SHOULD apply the mask" resolution).
func maskTopBits(h []byte, bitsToKeep int) []byte {
	out := make([]byte, len(h))
	copy(out, h)
	totalBits := len(out) * 8
	if bitsToKeep >= totalBits {
		return out
	}
	if bitsToKeep <= 0 {
		for i := range out {
			out[i] = 0
		}
		return out
	}
	clearBits := totalBits - bitsToKeep
	fullBytes := clearBits / 8
	remBits := clearBits % 8
	for i := 0; i < fullBytes && i < len(out); i++ {
		out[i] = 0
	}
	if fullBytes < len(out) && remBits > 0 {
		out[fullBytes] &= byte(0xFF >> remBits)
	}
	return out
}
