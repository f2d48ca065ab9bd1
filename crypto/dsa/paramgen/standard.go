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

import "regexp"

// Standard selects which FIPS domain-parameter generation algorithm
// and digest regime is in effect.
type Standard int

const (
	// FIPS1862 is the legacy SHA-1, N=160 regime (FIPS 186-2, and its
	// aliases 186-1/186-2). It is the default when Standard is absent.
	FIPS1862 Standard = iota
	// FIPS1864 is the SHA-2 regime added by FIPS 186-4 (aliases 186-3/186-4).
	FIPS1864
)

func (s Standard) String() string {
	if s == FIPS1864 {
		return "FIPS 186-4"
	}
	return "FIPS 186-2"
}

var fips4Pattern = regexp.MustCompile(`186-[34]`)

// ParseStandard selects FIPS1864 when s contains "186-3" or "186-4"
// anywhere in the string (so "FIPS 186-4", "186-4" and "186-3" all
// match); any other value, including the empty string, selects the
// legacy FIPS1862 regime. This mirrors §6's "Standard-string parsing"
// rule verbatim.
func ParseStandard(s string) Standard {
	if fips4Pattern.MatchString(s) {
		return FIPS1864
	}
	return FIPS1862
}
