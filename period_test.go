// Copyright 2015 Rick Beton. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package period

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	. "github.com/onsi/gomega"
)

func TestYearOrdinal(t *testing.T) {
	g := NewWithT(t)
	p := MustNew(mustStepAndMultiplier(Months, 12))
	g.Expect(p.Ordinal(time.Date(1984, 1, 1, 0, 0, 0, 0, time.UTC))).To(Equal(int64(1984)))
	g.Expect(p.DateTime(1984)).To(Equal(time.Date(1984, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestOrdinalDateTimeRoundTrip(t *testing.T) {
	g := NewWithT(t)

	periods := []Period{
		MustNew(mustStepAndMultiplier(Months, 1)),
		MustNew(mustStepAndMultiplier(Months, 12)),
		MustNew(mustStepAndMultiplier(Months, 24)),
		MustNew(mustStepAndMultiplier(Months, 5)),
		MustNew(mustStepAndMultiplier(Seconds, 86_400)),
		MustNew(mustStepAndMultiplier(Seconds, 3 * 86_400)),
		MustNew(mustStepAndMultiplier(Seconds, 3_600)),
		MustNew(mustStepAndMultiplier(Seconds, 900)),
		MustNew(mustStepAndMultiplier(Seconds, 7)),
		MustNew(mustStepAndMultiplier(Microseconds, 500)),
	}

	for i, p := range periods {
		t.Run(fmt.Sprintf("%d %s", i, p.IsoDuration()), func(t *testing.T) {
			g := NewWithT(t)
			for _, n := range []int64{-100, -1, 0, 1, 100, 100_000} {
				dt := p.DateTime(n)
				g.Expect(p.Ordinal(dt)).To(Equal(n), "ordinal(datetime(%d)) for %s", n, p.IsoDuration())
			}
		})
	}
}

func TestMultiMinuteOrdinal(t *testing.T) {
	g := NewWithT(t)
	p := MustNew(mustStepAndMultiplier(Seconds, 900)) // PT15M

	t0 := time.Date(2024, 6, 15, 13, 47, 30, 0, time.UTC)
	n := p.Ordinal(t0)

	// self-consistent oracle: independently recomputed from this module's own
	// verified day-ordinal (739052 for 2024-06-15), not spec.md's worked
	// example (see DESIGN.md's note on that example's arithmetic).
	g.Expect(n).To(Equal(int64(70_949_047)))
	g.Expect(stripZone(p.DateTime(n))).To(Equal(time.Date(2024, 6, 15, 13, 45, 0, 0, time.UTC)))
}

func TestIsAligned(t *testing.T) {
	g := NewWithT(t)
	p := MustNew(mustStepAndMultiplier(Seconds, 86_400))

	g.Expect(p.IsAligned(time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC))).To(BeTrue())
	g.Expect(p.IsAligned(time.Date(2024, 6, 15, 0, 0, 1, 0, time.UTC))).To(BeFalse())
}

func TestWithOrigin_pinsOrdinalZero(t *testing.T) {
	g := NewWithT(t)
	p := MustNew(mustStepAndMultiplier(Months, 1))
	origin := time.Date(1980, 10, 1, 9, 0, 0, 0, time.UTC)

	originated, err := p.WithOrigin(origin)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(originated.Ordinal(origin)).To(Equal(int64(0)))
	g.Expect(originated.IsAligned(origin)).To(BeTrue())
}

func TestWithOrigin_forcesZeroMonthOffsetOnSecondsStep(t *testing.T) {
	g := NewWithT(t)
	p := MustNew(mustStepAndMultiplier(Seconds, 3_600))
	origin := time.Date(2020, 3, 1, 10, 30, 0, 0, time.UTC)

	originated, err := p.WithOrigin(origin)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(originated.Properties().monthOffset).To(Equal(int64(0)))
	g.Expect(originated.Ordinal(origin)).To(Equal(int64(0)))
}

func TestMinMaxOrdinal(t *testing.T) {
	g := NewWithT(t)
	p := MustNew(mustStepAndMultiplier(Months, 12))

	min := p.MinOrdinal()
	max := p.MaxOrdinal()
	g.Expect(p.DateTime(min).Year()).To(BeNumerically(">=", 1))
	g.Expect(p.DateTime(max).Year()).To(BeNumerically("<=", 9999))
	g.Expect(min).To(BeNumerically("<=", max))
}

func TestMinMaxOrdinal_withOffsetRecoversFromOverflow(t *testing.T) {
	g := NewWithT(t)
	p := MustNew(mustStepAndMultiplier(Months, 12))
	offset, err := p.WithMonthOffset(11)
	g.Expect(err).NotTo(HaveOccurred())

	g.Expect(func() { offset.MinOrdinal() }).NotTo(Panic())
	g.Expect(func() { offset.MaxOrdinal() }).NotTo(Panic())
}

func TestEqual(t *testing.T) {
	g := NewWithT(t)
	a := MustNew(mustStepAndMultiplier(Months, 3))
	b := MustNew(mustStepAndMultiplier(Months, 3))
	c := MustNew(mustStepAndMultiplier(Months, 6))

	g.Expect(a.Equal(b)).To(BeTrue())
	g.Expect(a.Equal(c)).To(BeFalse())
}

// TestNormaliseIsDeterministic uses go-cmp for a structural diff across every
// unexported field of Properties (including the nested Tz), rather than a
// plain "==" comparison, so a future field added to either struct is caught
// here instead of silently passing.
func TestNormaliseIsDeterministic(t *testing.T) {
	g := NewWithT(t)
	opts := cmp.Options{cmp.AllowUnexported(Properties{}, Tz{})}

	a, err := OfMonths(7)
	g.Expect(err).NotTo(HaveOccurred())
	a, err = a.WithMonthOffset(19) // normalises to 19 mod 7 == 5
	g.Expect(err).NotTo(HaveOccurred())

	b, err := OfMonths(7)
	g.Expect(err).NotTo(HaveOccurred())
	b, err = b.WithMonthOffset(5)
	g.Expect(err).NotTo(HaveOccurred())

	if diff := cmp.Diff(a, b, opts); diff != "" {
		t.Errorf("normalised Properties differ (-got +want):\n%s", diff)
	}

	c, err := OfMonths(7)
	g.Expect(err).NotTo(HaveOccurred())
	c, err = c.WithMonthOffset(6)
	g.Expect(err).NotTo(HaveOccurred())

	g.Expect(cmp.Equal(a, c, opts, cmpopts.IgnoreFields(Properties{}, "monthOffset"))).To(BeTrue())
	g.Expect(cmp.Equal(a, c, opts)).To(BeFalse())
}

func TestWithoutOffsetAndOrdinalShift(t *testing.T) {
	g := NewWithT(t)
	p := MustNew(mustStepAndMultiplier(Months, 3))
	p, err := p.WithMonthOffset(1)
	g.Expect(err).NotTo(HaveOccurred())
	p = Period{props: p.Properties().WithOrdinalShift(5)}

	plain := p.WithoutOffset()
	g.Expect(plain.Properties().monthOffset).To(Equal(int64(0)))

	unshifted := p.WithoutOrdinalShift()
	g.Expect(unshifted.Properties().ordinalShift).To(Equal(int64(0)))
}
