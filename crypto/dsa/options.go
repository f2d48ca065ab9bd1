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
	"strings"

	"github.com/getamis/fips-dsa/crypto/dsa/paramgen"
)

// Standard re-exports paramgen.Standard: the caller-selectable FIPS
// revision (§6's "Standard-string parsing").
type Standard = paramgen.Standard

const (
	FIPS1862 = paramgen.FIPS1862
	FIPS1864 = paramgen.FIPS1864
)

// ParseStandard applies §6's rule: any value matching "186-[34]"
// selects FIPS1864, anything else (including absence) selects FIPS1862.
func ParseStandard(s string) Standard { return paramgen.ParseStandard(s) }

// ProveMode enumerates the recognized Prove settings (§4.D's table),
// replacing the source's dynamic truthy/string value with an explicit
// set (§9's "Dynamic option dictionaries" design note).
type ProveMode int

const (
	// ProveNone runs the probable-prime regimen only (the default).
	ProveNone ProveMode = iota
	// ProveP additionally constructs an unconditional certificate for p.
	ProveP
	// ProveQ additionally constructs an unconditional certificate for q.
	ProveQ
	// ProveBoth proves both p and q.
	ProveBoth
)

func (m ProveMode) provesP() bool { return m == ProveP || m == ProveBoth }
func (m ProveMode) provesQ() bool { return m == ProveQ || m == ProveBoth }

// ParseProve accepts the dynamic shapes §4.D documents for Prove at an
// external boundary (e.g. a config file read by cmd/dsa-cli): nil/""
// /false/0 -> ProveNone; "P"/"p" -> ProveP; "Q"/"q" -> ProveQ; true or
// the integer 1 -> ProveBoth. Strings are trimmed and matched without
// regard to case, and "0"/"false" and "1"/"true" are read like their
// bool counterparts. Anything else is a UsageError.
func ParseProve(v interface{}) (ProveMode, error) {
	switch t := v.(type) {
	case nil:
		return ProveNone, nil
	case bool:
		if t {
			return ProveBoth, nil
		}
		return ProveNone, nil
	case int:
		switch t {
		case 0:
			return ProveNone, nil
		case 1:
			return ProveBoth, nil
		default:
			return ProveNone, usageError(ErrInvalidProve)
		}
	case string:
		switch strings.ToUpper(strings.TrimSpace(t)) {
		case "", "0", "FALSE":
			return ProveNone, nil
		case "1", "TRUE":
			return ProveBoth, nil
		case "P":
			return ProveP, nil
		case "Q":
			return ProveQ, nil
		default:
			return ProveNone, usageError(ErrInvalidProve)
		}
	default:
		return ProveNone, usageError(ErrInvalidProve)
	}
}

// ProgressFunc is invoked once per iteration of ParamGen's p-search
// loop; see paramgen.ProgressFunc.
type ProgressFunc = paramgen.ProgressFunc

// KeygenOptions collects keygen's named arguments (§6). QSize, Seed,
// Standard, Prove and Verbosity/Progress are all optional; Size is
// required.
type KeygenOptions struct {
	Size      int
	QSize     int
	Seed      []byte
	Standard  *Standard // nil uses the Engine's configured standard
	Prove     ProveMode
	Verbosity int
	Progress  ProgressFunc
}

// SignOptions collects sign's named arguments (§6). Exactly one of
// Message/Digest must be set.
type SignOptions struct {
	Message  []byte
	Digest   []byte
	Standard *Standard // nil uses the Engine's configured standard
}

// VerifyOptions collects verify's named arguments (§6). Exactly one of
// Message/Digest must be set.
type VerifyOptions struct {
	Message  []byte
	Digest   []byte
	Standard *Standard // nil uses the Engine's configured standard
}
