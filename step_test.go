// Copyright 2015 Rick Beton. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package period

import (
	"testing"

	. "github.com/onsi/gomega"
)

func TestStepString(t *testing.T) {
	g := NewWithT(t)
	g.Expect(Months.String()).To(Equal("Months"))
	g.Expect(Seconds.String()).To(Equal("Seconds"))
	g.Expect(Microseconds.String()).To(Equal("Microseconds"))
}

func TestStepString_invalidPanics(t *testing.T) {
	g := NewWithT(t)
	g.Expect(func() { _ = Step(99).String() }).To(Panic())
}

func TestMicrosecondsPerUnit(t *testing.T) {
	g := NewWithT(t)
	g.Expect(Seconds.microsecondsPerUnit()).To(Equal(int64(1_000_000)))
	g.Expect(Microseconds.microsecondsPerUnit()).To(Equal(int64(1)))
	g.Expect(Months.microsecondsPerUnit()).To(Equal(int64(0)))
}
