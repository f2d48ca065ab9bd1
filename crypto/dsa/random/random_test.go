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

package random

import (
	"bytes"
	"errors"
	"io"
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func TestRandom(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Random Suite")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

var _ = Describe("Source", func() {
	It("returns n bytes of the requested length", func() {
		s := New(bytes.NewReader(bytes.Repeat([]byte{0xAB}, 64)))
		bs, err := s.RandomBytes(16)
		Expect(err).Should(BeNil())
		Expect(bs).Should(HaveLen(16))
	})

	It("returns an empty slice for n=0 without reading", func() {
		s := New(failingReader{})
		bs, err := s.RandomBytes(0)
		Expect(err).Should(BeNil())
		Expect(bs).Should(BeEmpty())
	})

	It("wraps ErrUnavailable when the underlying reader fails", func() {
		s := New(failingReader{})
		_, err := s.RandomBytes(8)
		Expect(errors.Is(err, ErrUnavailable)).Should(BeTrue())
	})

	It("serializes concurrent reads without data races", func() {
		s := New(bytes.NewReader(bytes.Repeat([]byte{0x01}, 4096)))
		done := make(chan struct{})
		for i := 0; i < 8; i++ {
			go func() {
				defer GinkgoRecover()
				_, err := s.RandomBytes(32)
				Expect(err).Should(BeNil())
				done <- struct{}{}
			}()
		}
		for i := 0; i < 8; i++ {
			<-done
		}
	})

	It("Default lazily opens a singleton and Reset tears it down", func() {
		Reset()
		a := Default()
		b := Default()
		Expect(a).Should(BeIdenticalTo(b))
		Reset()
		c := Default()
		Expect(c).ShouldNot(BeIdenticalTo(a))
	})

	It("exposes a serialized io.Reader", func() {
		s := New(bytes.NewReader(bytes.Repeat([]byte{0x02}, 64)))
		var r io.Reader = s.Reader()
		buf := make([]byte, 8)
		n, err := r.Read(buf)
		Expect(err).Should(BeNil())
		Expect(n).Should(Equal(8))
	})
})
