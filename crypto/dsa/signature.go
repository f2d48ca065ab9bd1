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

// Signature is the (r, s) pair produced by Sign and consumed by
// Verify (§3). Both components are expected in [1, q-1]; Verify
// rejects anything outside that range without treating it as an error.
type Signature struct {
	R, S *big.Int
}
