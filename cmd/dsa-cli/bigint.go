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

package main

import (
	"fmt"
	"math/big"
)

// hexToBig parses a "0x..."-prefixed or bare hex string into a
// *big.Int, as the envelope codecs out of scope for the core would
// hand the CLI after decoding a key file.
func hexToBig(s string) (*big.Int, error) {
	if s == "" {
		return nil, fmt.Errorf("dsa-cli: missing required hex value")
	}
	n := new(big.Int)
	trimmed := s
	if len(trimmed) > 2 && (trimmed[:2] == "0x" || trimmed[:2] == "0X") {
		trimmed = trimmed[2:]
	}
	if _, ok := n.SetString(trimmed, 16); !ok {
		return nil, fmt.Errorf("dsa-cli: invalid hex value %q", s)
	}
	return n, nil
}

func bigToHex(n *big.Int) string {
	if n == nil {
		return ""
	}
	return "0x" + n.Text(16)
}
