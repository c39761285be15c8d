// Copyright 2015 Rick Beton. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package period

import (
	"fmt"
	"testing"
	"time"

	. "github.com/onsi/gomega"
)

func TestDateToOrdinal(t *testing.T) {
	cases := []struct {
		y, m, d int64
		want    int64
	}{
		{1, 1, 1, 1},
		{1, 1, 2, 2},
		{1, 12, 31, 365},
		{2, 1, 1, 366},
		{4, 12, 31, 1461}, // year 4 is a leap year
		{2024, 6, 15, 739052},
		{1984, 1, 1, 724276},
	}
	for i, c := range cases {
		t.Run(fmt.Sprintf("%d %04d-%02d-%02d", i, c.y, c.m, c.d), func(t *testing.T) {
			g := NewWithT(t)
			g.Expect(dateToOrdinal(c.y, c.m, c.d)).To(Equal(c.want))
		})
	}
}

func TestOrdinalToDateIsInverse(t *testing.T) {
	g := NewWithT(t)
	for _, ord := range []int64{1, 365, 366, 1461, 739052, 724276, -1, -365} {
		y, m, d := ordinalToDate(ord)
		g.Expect(dateToOrdinal(y, m, d)).To(Equal(ord), "ordinal %d round trip", ord)
	}
}

func TestEFloorDivAndEMod(t *testing.T) {
	g := NewWithT(t)
	g.Expect(eFloorDiv(7, 2)).To(Equal(int64(3)))
	g.Expect(eFloorDiv(-7, 2)).To(Equal(int64(-4)))
	g.Expect(eFloorDiv(-1, 400)).To(Equal(int64(-1)))
	g.Expect(eMod(7, 2)).To(Equal(int64(1)))
	g.Expect(eMod(-1, 400)).To(Equal(int64(399)))
	g.Expect(eMod(-7, 2)).To(Equal(int64(1)))
}

func TestIsLeapYear(t *testing.T) {
	g := NewWithT(t)
	g.Expect(isLeapYear(2000)).To(BeTrue())
	g.Expect(isLeapYear(1900)).To(BeFalse())
	g.Expect(isLeapYear(2024)).To(BeTrue())
	g.Expect(isLeapYear(2023)).To(BeFalse())
}

func TestAddMonthsClampsDayOfMonth(t *testing.T) {
	g := NewWithT(t)

	jan31 := time.Date(2020, 1, 31, 0, 0, 0, 0, time.UTC)
	g.Expect(addMonths(jan31, 1)).To(Equal(time.Date(2020, 2, 29, 0, 0, 0, 0, time.UTC)))

	feb29 := time.Date(2020, 2, 29, 0, 0, 0, 0, time.UTC)
	g.Expect(addMonths(feb29, 12)).To(Equal(time.Date(2021, 2, 28, 0, 0, 0, 0, time.UTC)))

	g.Expect(addMonths(jan31, -1)).To(Equal(time.Date(2019, 12, 31, 0, 0, 0, 0, time.UTC)))
}

func TestAddMonthsPreservesTimeOfDayAndLocation(t *testing.T) {
	g := NewWithT(t)
	loc := time.FixedZone("test", 3600)
	t0 := time.Date(2020, 1, 15, 9, 30, 45, 123, loc)
	t1 := addMonths(t0, 2)
	g.Expect(t1.Hour()).To(Equal(9))
	g.Expect(t1.Minute()).To(Equal(30))
	g.Expect(t1.Location()).To(Equal(loc))
}
