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

package primality

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

func TestPrimality(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Primality Suite")
}

func randomSeedHex() string {
	b := make([]byte, 20)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

var _ = Describe("IsProbablePrime", func() {
	DescribeTable("known primes and composites", func(n int64, want bool) {
		Expect(IsProbablePrime(big.NewInt(n))).Should(Equal(want))
	},
		Entry("2 is prime", int64(2), true),
		Entry("3 is prime", int64(3), true),
		Entry("97 is prime", int64(97), true),
		Entry("7919 is prime", int64(7919), true),
		Entry("4 is composite", int64(4), false),
		Entry("1 is not prime", int64(1), false),
		Entry("0 is not prime", int64(0), false),
		Entry("91 = 7*13 is composite", int64(91), false),
	)
})

var _ = Describe("MillerRabinRandom", func() {
	It("accepts a known prime across repeated seeds", func() {
		n := big.NewInt(104729) // the 10000th prime
		for i := 0; i < 5; i++ {
			ok, err := MillerRabinRandom(n, 19, randomSeedHex())
			Expect(err).Should(BeNil())
			Expect(ok).Should(BeTrue())
		}
	})

	It("rejects a known composite", func() {
		n := big.NewInt(104723 * 3) // composite, well above the trial base
		ok, err := MillerRabinRandom(n, 19, randomSeedHex())
		Expect(err).Should(BeNil())
		Expect(ok).Should(BeFalse())
	})

	It("is reproducible given the same entropy", func() {
		n := big.NewInt(104729)
		seed := randomSeedHex()
		a, err := MillerRabinRandom(n, 5, seed)
		Expect(err).Should(BeNil())
		b, err := MillerRabinRandom(n, 5, seed)
		Expect(err).Should(BeNil())
		Expect(a).Should(Equal(b))
	})

	It("rejects malformed entropy", func() {
		_, err := MillerRabinRandom(big.NewInt(11), 3, "not-hex")
		Expect(err).Should(Equal(ErrInvalidEntropy))
	})
})

var _ = Describe("IsProvablePrime", func() {
	It("proves a small prime whose predecessor is smooth", func() {
		// 211 - 1 = 210 = 2*3*5*7, fully smooth.
		n := big.NewInt(211)
		ok, err := IsProvablePrime(n)
		Expect(err).Should(BeNil())
		Expect(ok).Should(BeTrue())
	})

	It("rejects a composite outright", func() {
		ok, err := IsProvablePrime(big.NewInt(221)) // 13*17
		Expect(err).Should(BeNil())
		Expect(ok).Should(BeFalse())
	})

	It("proves 2 and treats 1 as non-prime", func() {
		ok, err := IsProvablePrime(big.NewInt(2))
		Expect(err).Should(BeNil())
		Expect(ok).Should(BeTrue())

		ok, err = IsProvablePrime(big.NewInt(1))
		Expect(err).Should(BeNil())
		Expect(ok).Should(BeFalse())
	})

	It("fails fast, without searching, above MaxProvableBits", func() {
		// A 512-bit probable prime: far beyond what trial-division
		// Pocklington can certify. This must return ErrTooLargeToProve
		// immediately rather than spinning through the certificate search.
		n, err := rand.Prime(rand.Reader, 512)
		Expect(err).Should(BeNil())
		Expect(n.BitLen() > MaxProvableBits).Should(BeTrue())

		ok, err := IsProvablePrime(n)
		Expect(err).Should(Equal(ErrTooLargeToProve))
		Expect(ok).Should(BeFalse())
	})
})
