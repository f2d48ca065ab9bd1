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
	"errors"
	"fmt"
)

// Kind classifies the errors the engine can return (§7). VerifyReject
// is deliberately absent: a rejected signature is a false return
// value, never an error.
type Kind int

const (
	// KindUsage covers malformed calls: missing Key, missing
	// Message/Digest, an invalid Size/QSize/Prove combination.
	KindUsage Kind = iota
	// KindRandomness covers RandomSource failure.
	KindRandomness
	// KindInternal covers a violated postcondition: a library bug.
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindUsage:
		return "usage"
	case KindRandomness:
		return "randomness"
	case KindInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// Error wraps a sentinel with its Kind so callers can branch on
// severity (the Kind field, via errors.As or a type assertion) while
// still matching the specific failure sentinel below with errors.Is.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("dsa: %s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func usageError(err error) error { return &Error{Kind: KindUsage, Err: err} }
func randomnessError(err error) error { return &Error{Kind: KindRandomness, Err: err} }
func internalError(err error) error { return &Error{Kind: KindInternal, Err: err} }

var (
	// ErrMissingKey is returned when Sign/Verify is called without a Key.
	ErrMissingKey = errors.New("dsa: missing key")
	// ErrMissingPrivateKey is returned when Sign is called on a public-only key.
	ErrMissingPrivateKey = errors.New("dsa: key has no private component")
	// ErrMissingMessageOrDigest is returned when neither Message nor Digest is supplied.
	ErrMissingMessageOrDigest = errors.New("dsa: exactly one of Message or Digest is required")
	// ErrBothMessageAndDigest is returned when both Message and Digest are supplied.
	ErrBothMessageAndDigest = errors.New("dsa: only one of Message or Digest may be supplied")
	// ErrInvalidProve is returned when a dynamic Prove value is neither "P", "Q" nor boolean-like.
	ErrInvalidProve = errors.New(`dsa: Prove must be unset, a bool, 1, "P" or "Q"`)
	// ErrInternalZeroSignature is returned if r=0 and s=0 survive the retry loop (§4.E.3).
	ErrInternalZeroSignature = errors.New("dsa: sign produced r=0 and s=0 after retrying")
	// ErrInternalGeneratorInvariant is returned when k (in Sign) or s (in Verify) has no
	// inverse modulo q, which only happens if the key's q is not prime.
	ErrInternalGeneratorInvariant = errors.New("dsa: generator invariant violated")
)
