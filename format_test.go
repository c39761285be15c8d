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

func TestFormatter_granularity(t *testing.T) {
	cases := []struct {
		period string
		sep    byte
		t      time.Time
		want   string
	}{
		{"P1Y", ' ', time.Date(2024, 6, 15, 13, 47, 30, 0, time.UTC), "2024"},
		{"P1M", ' ', time.Date(2024, 6, 15, 13, 47, 30, 0, time.UTC), "2024-06"},
		{"P1D", ' ', time.Date(2024, 6, 15, 13, 47, 30, 0, time.UTC), "2024-06-15"},
		{"PT1H", ' ', time.Date(2024, 6, 15, 13, 47, 30, 0, time.UTC), "2024-06-15 13"},
		{"PT15M", ' ', time.Date(2024, 6, 15, 13, 47, 30, 0, time.UTC), "2024-06-15 13:47"},
		{"PT1S", ' ', time.Date(2024, 6, 15, 13, 47, 30, 0, time.UTC), "2024-06-15 13:47:30"},
		{"PT1H", 'T', time.Date(2024, 6, 15, 13, 47, 30, 0, time.UTC), "2024-06-15T13"},
	}
	for i, c := range cases {
		t.Run(fmt.Sprintf("%d %s", i, c.period), func(t *testing.T) {
			g := NewWithT(t)
			p := MustParse(c.period)
			f, err := p.Formatter(c.sep)
			g.Expect(err).NotTo(HaveOccurred())
			g.Expect(f(c.t)).To(Equal(c.want))
		})
	}
}

func TestFormatter_rejectsBadSeparator(t *testing.T) {
	g := NewWithT(t)
	p := MustParse("P1D")
	_, err := p.Formatter('_')
	g.Expect(err).To(HaveOccurred())
	g.Expect(err).To(BeAssignableToTypeOf(&ValidationError{}))
}

func TestFormatter_awareBumpsToHourAndAppendsZone(t *testing.T) {
	g := NewWithT(t)
	p := MustParse("P1Y").WithTzinfo(UTC)
	f, err := p.Formatter(' ')
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(f(time.Date(2024, 6, 15, 13, 0, 0, 0, time.UTC))).To(Equal("2024-06-15 13Z"))
}

func TestFormatter_offsetBumpsGranularity(t *testing.T) {
	g := NewWithT(t)
	p, err := OfDuration("P1Y+12H")
	g.Expect(err).NotTo(HaveOccurred())
	f, err := p.Formatter(' ')
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(f(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))).To(Equal("2024-01-01 00"))
}

func TestString_noOffset(t *testing.T) {
	g := NewWithT(t)
	g.Expect(MustParse("P1Y").String()).To(Equal("P1Y"))
}

func TestString_withOffset(t *testing.T) {
	g := NewWithT(t)
	p, err := OfDuration("P1Y+9M9H")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(p.String()).To(Equal("P1Y+9M9H"))
}

func TestIsEpochAgnosticForwarding(t *testing.T) {
	g := NewWithT(t)
	g.Expect(MustParse("PT1H").IsEpochAgnostic()).To(BeTrue())
	g.Expect(MustParse("PT7H").IsEpochAgnostic()).To(BeFalse())
}

func TestPlIntervalAndPlOffset(t *testing.T) {
	g := NewWithT(t)
	p, err := OfDuration("P1Y+9M9H")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(p.PlInterval()).To(Equal("12mo"))
	g.Expect(p.PlOffset()).To(Equal(fmt.Sprintf("9mo%dus", 9*3_600_000_000)))
}
