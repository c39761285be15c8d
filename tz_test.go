// Copyright 2015 Rick Beton. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package period

import (
	"testing"
	"time"

	. "github.com/onsi/gomega"
)

func TestFixedOffset_rejectsOutOfRange(t *testing.T) {
	g := NewWithT(t)
	_, err := FixedOffset(86_400)
	g.Expect(err).To(HaveOccurred())
	g.Expect(err).To(BeAssignableToTypeOf(&ValidationError{}))

	_, err = FixedOffset(-86_400)
	g.Expect(err).To(HaveOccurred())
}

func TestFixedOffset_string(t *testing.T) {
	g := NewWithT(t)

	tz, err := FixedOffset(0)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(tz.String()).To(Equal("Z"))

	tz, err = FixedOffset(-19_800)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(tz.String()).To(Equal("-05:30"))
}

func TestNamedZone_nilIsNoTz(t *testing.T) {
	g := NewWithT(t)
	g.Expect(NamedZone(nil).IsZero()).To(BeTrue())
}

func TestTzEqual(t *testing.T) {
	g := NewWithT(t)
	a := NamedZone(time.UTC)
	b := NamedZone(time.UTC)
	g.Expect(a.Equal(b)).To(BeTrue())
	g.Expect(a.Equal(NoTz)).To(BeFalse())
	g.Expect(NoTz.Equal(NoTz)).To(BeTrue())
}
