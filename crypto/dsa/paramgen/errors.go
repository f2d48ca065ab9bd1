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

import "errors"

var (
	// ErrSizeTooSmall is returned when Size < 256.
	ErrSizeTooSmall = errors.New("paramgen: Size must be at least 256 bits")
	// ErrQSizeTooSmall is returned when Size < QSize+8.
	ErrQSizeTooSmall = errors.New("paramgen: Size must be at least QSize+8 bits")
	// ErrQSizeFixed is returned when FIPS 186-2 is asked for a QSize != 160.
	ErrQSizeFixed = errors.New("paramgen: FIPS 186-2 requires QSize = 160")
	// ErrQSizeOutOfRange is returned when FIPS 186-4's QSize is outside [1, 512].
	ErrQSizeOutOfRange = errors.New("paramgen: QSize must be within [1, 512] under FIPS 186-4")
	// ErrCancelled is returned when the progress hook requests cancellation.
	ErrCancelled = errors.New("paramgen: cancelled by progress hook")
	// ErrProveSizeUnsupported is returned when ProveP or ProveQ is
	// requested for a bit length beyond primality.MaxProvableBits. The
	// unconditional certificate search cannot realistically succeed
	// above that bound (see primality.IsProvablePrime); Generate fails
	// fast here rather than looping forever over fresh candidates that
	// can never be certified.
	ErrProveSizeUnsupported = errors.New("paramgen: Prove is not supported at this Size/QSize")

	// ErrInternalPostcondition is an internal-bug marker: a generator
	// invariant (e.g. g != 1 on return) was violated. Exported so
	// callers (dsa.classifyParamgenError) can classify it as an
	// InternalError rather than a RandomnessError.
	ErrInternalPostcondition = errors.New("paramgen: internal postcondition violated")
)
