// Copyright 2015 Rick Beton. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package period

import "time"

// variant is the closed set of ordinal/datetime implementations a Period can
// dispatch to, selected once at construction by newVariant. Per spec.md §9,
// this is the static-language rendition of the reference design's runtime
// polymorphism: a tagged set of small value types, each holding only the
// state its formula needs.
type variant interface {
	// ordinal returns the index of the interval containing t, in naive
	// (zone-stripped) terms; the wrapping Period reattaches tzinfo.
	ordinal(t time.Time) int64
	// datetime returns the inclusive start of interval n, in naive terms.
	datetime(n int64) time.Time
}

// newVariant builds the variant implementation selected by Properties,
// following the dispatch table of spec.md §4.3 in priority order.
func newVariant(p Properties) variant {
	if p.ordinalShift != 0 {
		inner := newVariant(p.WithOrdinalShift(0))
		return shiftedVariant{inner: inner, shift: p.ordinalShift}
	}
	if p.monthOffset != 0 || p.microsecondOffset != 0 {
		base := p
		base.monthOffset = 0
		base.microsecondOffset = 0
		v, err := newOffsetVariant(newVariant(base), p.monthOffset, p.microsecondOffset)
		if err != nil {
			panic(err)
		}
		return v
	}

	switch p.step {
	case Months:
		switch {
		case p.multiplier == 1:
			return monthVariant{}
		case p.multiplier == 12:
			return yearVariant{}
		case p.multiplier%12 == 0:
			return multiYearVariant{years: p.multiplier / 12}
		default:
			return multiMonthVariant{n: p.multiplier}
		}
	case Seconds:
		switch {
		case p.multiplier == 86_400:
			return dayVariant{}
		case p.multiplier%86_400 == 0:
			return multiDayVariant{days: p.multiplier / 86_400}
		case p.multiplier%3_600 == 0:
			return multiHourVariant{seconds: p.multiplier}
		case p.multiplier%60 == 0:
			return multiMinuteVariant{seconds: p.multiplier}
		default:
			return multiSecondVariant{seconds: p.multiplier}
		}
	case Microseconds:
		return microsecondVariant{micros: p.multiplier}
	}
	panic("period: invalid step")
}
