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

import (
	"math/big"
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/getamis/fips-dsa/crypto/dsa/numutil"
	"github.com/getamis/fips-dsa/crypto/dsa/random"
)

func TestParamgen(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Paramgen Suite")
}

func checkDomainParams(params *Params, expectL, expectN int) {
	Expect(params.Q.ProbablyPrime(20)).Should(BeTrue())
	Expect(params.P.ProbablyPrime(20)).Should(BeTrue())

	pMinus1 := new(big.Int).Sub(params.P, big.NewInt(1))
	Expect(new(big.Int).Mod(pMinus1, params.Q).Sign()).Should(Equal(0))

	Expect(params.G.Cmp(big.NewInt(1)) > 0).Should(BeTrue())
	Expect(params.G.Cmp(params.P) < 0).Should(BeTrue())

	check := new(big.Int).Exp(params.G, params.Q, params.P)
	Expect(check).Should(Equal(big.NewInt(1)))

	Expect(numutil.Bitsize(params.P)).Should(Equal(expectL))
	Expect(numutil.Bitsize(params.Q)).Should(Equal(expectN))
}

var _ = Describe("Generate", func() {
	It("rejects Size < 256", func() {
		_, err := Generate(random.Default(), Options{Size: 255, Standard: FIPS1862})
		Expect(err).Should(Equal(ErrSizeTooSmall))
	})

	It("rejects a non-160 QSize under FIPS 186-2", func() {
		_, err := Generate(random.Default(), Options{Size: 512, QSize: 224, Standard: FIPS1862})
		Expect(err).Should(Equal(ErrQSizeFixed))
	})

	It("rejects Size < QSize+8", func() {
		_, err := Generate(random.Default(), Options{Size: 256, QSize: 256, Standard: FIPS1864})
		Expect(err).Should(Equal(ErrQSizeTooSmall))
	})

	It("rejects an out-of-range QSize under FIPS 186-4", func() {
		_, err := Generate(random.Default(), Options{Size: 2048, QSize: 600, Standard: FIPS1864})
		Expect(err).Should(Equal(ErrQSizeOutOfRange))
	})

	// S5: keygen(Size=512) under the default (legacy) standard yields a
	// 512-bit p and 160-bit q.
	It("generates FIPS 186-2 domain parameters of the requested size", func() {
		params, err := Generate(random.Default(), Options{Size: 512, Standard: FIPS1862})
		Expect(err).Should(BeNil())
		checkDomainParams(params, 512, 160)
		Expect(params.Seed).Should(HaveLen(20))
	})

	// S6: keygen(Size=2048, Standard="FIPS 186-4") yields bitsize(q)=256.
	It("generates FIPS 186-4 domain parameters with the default QSize", func() {
		params, err := Generate(random.Default(), Options{Size: 2048, Standard: FIPS1864})
		Expect(err).Should(BeNil())
		checkDomainParams(params, 2048, 256)
	})

	It("honors an explicit QSize under FIPS 186-4", func() {
		params, err := Generate(random.Default(), Options{Size: 1024, QSize: 224, Standard: FIPS1864})
		Expect(err).Should(BeNil())
		checkDomainParams(params, 1024, 224)
	})

	It("rejects ProveP at a Size beyond the certificate search's bound", func() {
		_, err := Generate(random.Default(), Options{Size: 512, Standard: FIPS1862, ProveP: true})
		Expect(err).Should(Equal(ErrProveSizeUnsupported))
	})

	It("rejects ProveQ at a QSize beyond the certificate search's bound", func() {
		_, err := Generate(random.Default(), Options{Size: 2048, Standard: FIPS1864, ProveQ: true})
		Expect(err).Should(Equal(ErrProveSizeUnsupported))
	})

	It("invokes the progress hook and honors cancellation", func() {
		calls := 0
		_, err := Generate(random.Default(), Options{
			Size:     512,
			Standard: FIPS1862,
			Progress: func(phase string, iteration int) bool {
				calls++
				return true
			},
		})
		Expect(err).Should(Equal(ErrCancelled))
		Expect(calls).Should(BeNumerically(">", 0))
	})
})

var _ = Describe("DeriveGenerator", func() {
	It("produces a generator of order q with g != 1", func() {
		params, err := Generate(random.Default(), Options{Size: 512, Standard: FIPS1862})
		Expect(err).Should(BeNil())

		g, h, err := DeriveGenerator(params.P, params.Q)
		Expect(err).Should(BeNil())
		Expect(g).Should(Equal(params.G))
		Expect(g.Cmp(big.NewInt(1))).ShouldNot(Equal(0))
		Expect(new(big.Int).Exp(g, params.Q, params.P)).Should(Equal(big.NewInt(1)))
		Expect(h.Sign() > 0).Should(BeTrue())
	})
})

var _ = Describe("ParseStandard", func() {
	It("selects FIPS1864 for 186-3 and 186-4 spellings", func() {
		Expect(ParseStandard("FIPS 186-4")).Should(Equal(FIPS1864))
		Expect(ParseStandard("186-4")).Should(Equal(FIPS1864))
		Expect(ParseStandard("186-3")).Should(Equal(FIPS1864))
	})

	It("defaults to FIPS1862 for anything else", func() {
		Expect(ParseStandard("")).Should(Equal(FIPS1862))
		Expect(ParseStandard("FIPS 186-2")).Should(Equal(FIPS1862))
		Expect(ParseStandard("186-1")).Should(Equal(FIPS1862))
		Expect(ParseStandard("garbage")).Should(Equal(FIPS1862))
	})
})
