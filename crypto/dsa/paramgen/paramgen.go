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

// Package paramgen implements the FIPS 186-2 §A.1.1.1 and FIPS 186-4
// §A.1.1.2 domain-parameter generators: the seed-driven search for q,
// the counter-bounded search for p, and the generator derivation step
// that follows. This is the heart of the dsa core (§4.D).
package paramgen

import (
	"math/big"

	"github.com/getamis/fips-dsa/crypto/dsa/primality"
	"github.com/getamis/fips-dsa/crypto/dsa/random"
	"github.com/getamis/fips-dsa/internal/logger"
)

// ProgressFunc is invoked once per outer-loop iteration of the p
// search. Returning true requests cancellation; Generate then returns
// ErrCancelled without leaving partial state behind.
type ProgressFunc func(phase string, iteration int) (cancel bool)

// Options collects every named input to Generate (§4.D's table).
type Options struct {
	Size     int
	QSize    int // 0 selects the standard's default
	Seed     []byte
	Standard Standard
	ProveP   bool
	ProveQ   bool
	Progress ProgressFunc
}

// Params is the output of Generate: the domain-parameter triple plus
// the generation witness (§3 "Generation witness").
type Params struct {
	P, Q, G *big.Int
	Counter int
	H       *big.Int
	Seed    []byte
}

var (
	big0 = big.NewInt(0)
	big1 = big.NewInt(1)
	big2 = big.NewInt(2)
)

// Generate runs the domain-parameter search described in §4.D,
// dispatching to the 186-2 or 186-4 branch per opts.Standard.
func Generate(rng *random.Source, opts Options) (*Params, error) {
	resolved, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}

	var params *Params
	if resolved.Standard == FIPS1864 {
		params, err = generateFIPS1864(rng, resolved)
	} else {
		params, err = generateFIPS1862(rng, resolved)
	}
	if err != nil {
		return nil, err
	}

	g, h, err := DeriveGenerator(params.P, params.Q)
	if err != nil {
		return nil, err
	}
	params.G = g
	params.H = h
	return params, nil
}

// resolvedOptions carries Options after default resolution and
// validation (§4.D.5's failure semantics), in one place per call
// (§9's "Dynamic option dictionaries" design note).
type resolvedOptions struct {
	Size     int
	QSize    int
	Seed     []byte
	Standard Standard
	ProveP   bool
	ProveQ   bool
	Progress ProgressFunc
}

func resolveOptions(opts Options) (*resolvedOptions, error) {
	if opts.Size < 256 {
		return nil, ErrSizeTooSmall
	}

	qsize := opts.QSize
	if opts.Standard == FIPS1864 {
		if qsize == 0 {
			if opts.Size >= 2048 {
				qsize = 256
			} else {
				qsize = 160
			}
		}
		if qsize < 1 || qsize > 512 {
			return nil, ErrQSizeOutOfRange
		}
	} else {
		if qsize == 0 {
			qsize = 160
		}
		if qsize != 160 {
			return nil, ErrQSizeFixed
		}
	}

	if opts.Size < qsize+8 {
		return nil, ErrQSizeTooSmall
	}

	if opts.ProveP && opts.Size > primality.MaxProvableBits {
		return nil, ErrProveSizeUnsupported
	}
	if opts.ProveQ && qsize > primality.MaxProvableBits {
		return nil, ErrProveSizeUnsupported
	}

	return &resolvedOptions{
		Size:     opts.Size,
		QSize:    qsize,
		Seed:     opts.Seed,
		Standard: opts.Standard,
		ProveP:   opts.ProveP,
		ProveQ:   opts.ProveQ,
		Progress: opts.Progress,
	}, nil
}

// acceptCandidate applies the primality regimen of §4.C/§4.D: when
// prove is requested the candidate must pass the unconditional proof;
// otherwise it must pass the cheap sieve and `rounds` seeded
// Miller-Rabin rounds.
func acceptCandidate(n *big.Int, prove bool, rounds int, entropyHex string) (bool, error) {
	if prove {
		ok, err := primality.IsProvablePrime(n)
		if err != nil {
			return false, nil // no certificate: treat as rejected candidate, not fatal
		}
		return ok, nil
	}
	if !primality.IsProbablePrime(n) {
		return false, nil
	}
	return primality.MillerRabinRandom(n, rounds, entropyHex)
}

func reportProgress(fn ProgressFunc, phase string, iteration int) error {
	if fn == nil {
		return nil
	}
	if fn(phase, iteration) {
		logger.Logger().Debug("paramgen: cancelled by progress hook", "phase", phase, "iteration", iteration)
		return ErrCancelled
	}
	return nil
}

func randomBytesOrRandomSource(rng *random.Source, n int) ([]byte, error) {
	if rng == nil {
		rng = random.Default()
	}
	return rng.RandomBytes(n)
}
