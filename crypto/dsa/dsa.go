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

// Package dsa is the library surface (§6): an Engine bound to a FIPS
// standard, exposing keygen/sign/verify over the lower-level numutil,
// random, primality and paramgen packages.
package dsa

import (
	"github.com/getamis/fips-dsa/crypto/dsa/paramgen"
	"github.com/getamis/fips-dsa/crypto/dsa/random"
	"github.com/getamis/fips-dsa/internal/logger"
)

// Engine is bound to a default FIPS standard at construction and
// exposes the three public operations (§6). An Engine holds no
// mutable state of its own beyond a handle to the process-wide
// RandomSource; it is safe for concurrent use across distinct keys
// and, because keys are immutable, across concurrent calls against
// the same key too (§5).
type Engine struct {
	standard Standard
	rng      *random.Source
}

// New constructs an Engine bound to standard (parsed per §6's rule).
// An empty call selects the legacy FIPS 186-2 default.
func New(standard ...string) *Engine {
	s := ""
	if len(standard) > 0 {
		s = standard[0]
	}
	return &Engine{
		standard: ParseStandard(s),
		rng:      random.Default(),
	}
}

// Standard returns the Engine's configured default standard.
func (e *Engine) Standard() Standard { return e.standard }

func (e *Engine) resolveStandard(override *Standard) Standard {
	if override != nil {
		return *override
	}
	return e.standard
}

// Keygen runs ParamGen (§4.D) to produce fresh domain parameters, then
// derives a key pair from them (§4.D.4). It returns the Key together
// with the generation Witness for audit/replay.
func (e *Engine) Keygen(opts KeygenOptions) (*Key, *Witness, error) {
	if opts.Size < 256 {
		return nil, nil, usageError(paramgen.ErrSizeTooSmall)
	}

	standard := e.resolveStandard(opts.Standard)

	params, err := paramgen.Generate(e.rng, paramgen.Options{
		Size:     opts.Size,
		QSize:    opts.QSize,
		Seed:     opts.Seed,
		Standard: standard,
		ProveP:   opts.Prove.provesP(),
		ProveQ:   opts.Prove.provesQ(),
		Progress: wrapProgress(opts.Verbosity, opts.Progress),
	})
	if err != nil {
		return nil, nil, classifyParamgenError(err)
	}

	priv, err := paramgen.DerivePrivateKey(e.rng, params.Q)
	if err != nil {
		return nil, nil, randomnessError(err)
	}
	pub := paramgen.DerivePublicKey(params.G, priv, params.P)

	key := &Key{P: params.P, Q: params.Q, G: params.G, Pub: pub, Priv: priv}
	witness := &Witness{Counter: params.Counter, H: params.H, Seed: params.Seed}
	return key, witness, nil
}

// wrapProgress gates the caller's progress hook behind Verbosity, per
// §4.D's "a 1 enables progress emission to a caller-supplied sink".
func wrapProgress(verbosity int, fn ProgressFunc) ProgressFunc {
	if verbosity != 1 || fn == nil {
		return nil
	}
	return fn
}

func classifyParamgenError(err error) error {
	switch err {
	case paramgen.ErrSizeTooSmall, paramgen.ErrQSizeTooSmall, paramgen.ErrQSizeFixed,
		paramgen.ErrQSizeOutOfRange, paramgen.ErrProveSizeUnsupported:
		return usageError(err)
	case paramgen.ErrCancelled:
		return err // propagated verbatim: not a Kind-classified failure
	case paramgen.ErrInternalPostcondition:
		logger.Logger().Error("dsa: paramgen postcondition violated", "err", err)
		return internalError(err)
	default:
		logger.Logger().Error("dsa: paramgen failed", "err", err)
		return randomnessError(err)
	}
}
