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
	"math/big"
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func TestDSA(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "DSA Suite")
}

var _ = Describe("Engine", func() {
	It("rejects an unrecognized Prove value", func() {
		_, err := ParseProve("X")
		Expect(err).ShouldNot(BeNil())
		dsaErr, isDSAErr := err.(*Error)
		Expect(isDSAErr).Should(BeTrue())
		Expect(dsaErr.Kind).Should(Equal(KindUsage))
	})

	// S5: keygen(Size=512) under the default standard.
	It("round-trips sign/verify under the default (legacy) standard", func() {
		e := New()
		key, witness, err := e.Keygen(KeygenOptions{Size: 512})
		Expect(err).Should(BeNil())
		Expect(key.P.BitLen()).Should(Equal(512))
		Expect(key.Q.BitLen()).Should(Equal(160))
		Expect(key.Pub).Should(Equal(new(big.Int).Exp(key.G, key.Priv, key.P)))
		Expect(witness.Counter >= 0).Should(BeTrue())

		sig, err := e.Sign(key, SignOptions{Message: []byte("foo bar")})
		Expect(err).Should(BeNil())

		ok, err := e.Verify(key, sig, VerifyOptions{Message: []byte("foo bar")})
		Expect(err).Should(BeNil())
		Expect(ok).Should(BeTrue())

		// Tampering: a different message must fail to verify.
		bad, err := e.Verify(key, sig, VerifyOptions{Message: []byte("foo baz")})
		Expect(err).Should(BeNil())
		Expect(bad).Should(BeFalse())
	})

	// S6: keygen(Size=2048, Standard="FIPS 186-4") selects SHA-256.
	It("round-trips sign/verify under FIPS 186-4 with the default QSize", func() {
		e := New("FIPS 186-4")
		key, _, err := e.Keygen(KeygenOptions{Size: 2048})
		Expect(err).Should(BeNil())
		Expect(key.Q.BitLen()).Should(Equal(256))

		sig, err := e.Sign(key, SignOptions{Message: []byte("foo bar")})
		Expect(err).Should(BeNil())

		valid, err := e.Verify(key, sig, VerifyOptions{Message: []byte("foo bar")})
		Expect(err).Should(BeNil())
		Expect(valid).Should(BeTrue())
	})

	It("rejects signatures with r or s out of range", func() {
		e := New()
		key, _, err := e.Keygen(KeygenOptions{Size: 512})
		Expect(err).Should(BeNil())

		cases := []*Signature{
			{R: big.NewInt(0), S: big.NewInt(1)},
			{R: new(big.Int).Set(key.Q), S: big.NewInt(1)},
			{R: big.NewInt(1), S: big.NewInt(0)},
			{R: big.NewInt(1), S: new(big.Int).Set(key.Q)},
		}
		for _, sig := range cases {
			ok, err := e.Verify(key, sig, VerifyOptions{Message: []byte("m")})
			Expect(err).Should(BeNil())
			Expect(ok).Should(BeFalse())
		}
	})

	It("produces fresh (r, s) pairs across successive signatures", func() {
		e := New()
		key, _, err := e.Keygen(KeygenOptions{Size: 512})
		Expect(err).Should(BeNil())

		s1, err := e.Sign(key, SignOptions{Message: []byte("same message")})
		Expect(err).Should(BeNil())
		s2, err := e.Sign(key, SignOptions{Message: []byte("same message")})
		Expect(err).Should(BeNil())

		Expect(s1.R.Cmp(s2.R) == 0 && s1.S.Cmp(s2.S) == 0).Should(BeFalse())
	})

	It("requires exactly one of Message/Digest", func() {
		e := New()
		key, _, err := e.Keygen(KeygenOptions{Size: 512})
		Expect(err).Should(BeNil())

		_, err = e.Sign(key, SignOptions{})
		Expect(err).ShouldNot(BeNil())

		_, err = e.Sign(key, SignOptions{Message: []byte("m"), Digest: []byte{1, 2, 3}})
		Expect(err).ShouldNot(BeNil())
	})

	It("rejects signing with a public-only key", func() {
		e := New()
		key, _, err := e.Keygen(KeygenOptions{Size: 512})
		Expect(err).Should(BeNil())

		pubOnly := NewPublicKey(key.P, key.Q, key.G, key.Pub)
		_, err = e.Sign(pubOnly, SignOptions{Message: []byte("m")})
		Expect(err).ShouldNot(BeNil())
	})

	It("accepts a precomputed digest in place of a message", func() {
		e := New()
		key, _, err := e.Keygen(KeygenOptions{Size: 512})
		Expect(err).Should(BeNil())

		digest := make([]byte, 20)
		for i := range digest {
			digest[i] = byte(i)
		}
		sig, err := e.Sign(key, SignOptions{Digest: digest})
		Expect(err).Should(BeNil())

		valid, err := e.Verify(key, sig, VerifyOptions{Digest: digest})
		Expect(err).Should(BeNil())
		Expect(valid).Should(BeTrue())
	})
})
