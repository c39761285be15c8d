// Copyright 2015 Rick Beton. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package period

import "time"

// Period is an immutable value that partitions the proleptic Gregorian
// timeline into a sequence of consecutive half-open intervals, each
// identified by a signed integer ordinal. It wraps exactly one Properties
// value; the dispatch to a concrete ordinal/datetime implementation is a pure
// function of that Properties (see newVariant).
type Period struct {
	props Properties
}

// New wraps Properties as a Period, validating it first.
func New(props Properties) (Period, error) {
	if err := props.validate(); err != nil {
		return Period{}, err
	}
	return Period{props: props.normalise()}, nil
}

// MustNew is as New but panics on error. Intended for setup code, not user
// input, matching the teacher's MustParse convention.
func MustNew(props Properties) Period {
	p, err := New(props)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Period) variant() variant {
	return newVariant(p.props)
}

// Properties returns the Period's canonical record.
func (p Period) Properties() Properties {
	return p.props
}

// Ordinal returns the index of the interval containing t.
func (p Period) Ordinal(t time.Time) int64 {
	return p.variant().ordinal(stripZone(t))
}

// DateTime returns the inclusive start of interval n, with the Period's
// tzinfo (if any) re-attached.
func (p Period) DateTime(n int64) time.Time {
	naive := p.variant().datetime(n)
	if p.props.tzinfo.IsZero() {
		return naive
	}
	return time.Date(naive.Year(), naive.Month(), naive.Day(),
		naive.Hour(), naive.Minute(), naive.Second(), naive.Nanosecond(),
		p.props.tzinfo.Location())
}

// stripZone discards t's timezone, keeping its wall-clock fields, since
// alignment and ordinal arithmetic are defined in naive terms (spec.md §4.3).
func stripZone(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// IsAligned reports whether t falls exactly on an interval boundary:
// datetime(ordinal(t)) == t, comparing wall-clock fields only (tz-independent,
// per spec.md §4.3).
func (p Period) IsAligned(t time.Time) bool {
	n := p.Ordinal(t)
	return stripZone(p.DateTime(n)).Equal(stripZone(t))
}

// WithMultiplier returns a new Period with its magnitude scaled to k.
func (p Period) WithMultiplier(k int64) (Period, error) {
	props, err := p.props.WithMultiplier(k)
	if err != nil {
		return Period{}, err
	}
	return Period{props: props}, nil
}

// WithMonthOffset returns a new Period with k added to month_offset.
func (p Period) WithMonthOffset(k int64) (Period, error) {
	props, err := p.props.WithMonthOffset(k)
	if err != nil {
		return Period{}, err
	}
	return Period{props: props}, nil
}

// WithMicrosecondOffset returns a new Period with k added to
// microsecond_offset.
func (p Period) WithMicrosecondOffset(k int64) (Period, error) {
	props, err := p.props.WithMicrosecondOffset(k)
	if err != nil {
		return Period{}, err
	}
	return Period{props: props}, nil
}

// WithHourOffset returns a new Period with k hours added to
// microsecond_offset.
func (p Period) WithHourOffset(k int64) (Period, error) {
	props, err := p.props.WithHourOffset(k)
	if err != nil {
		return Period{}, err
	}
	return Period{props: props}, nil
}

// WithMinuteOffset returns a new Period with k minutes added to
// microsecond_offset.
func (p Period) WithMinuteOffset(k int64) (Period, error) {
	props, err := p.props.WithMinuteOffset(k)
	if err != nil {
		return Period{}, err
	}
	return Period{props: props}, nil
}

// WithTzinfo returns a new Period with tzinfo replaced; ordinal_shift is
// preserved (spec.md §9).
func (p Period) WithTzinfo(tz Tz) Period {
	return Period{props: p.props.WithTzinfo(tz)}
}

// WithoutOffset returns a new Period with both offsets cleared.
func (p Period) WithoutOffset() Period {
	props := p.props
	props.monthOffset = 0
	props.microsecondOffset = 0
	return Period{props: props}
}

// WithoutOrdinalShift returns a new Period with ordinal_shift reset to zero.
func (p Period) WithoutOrdinalShift() Period {
	return Period{props: p.props.WithOrdinalShift(0)}
}

// WithOrigin returns a Period P' such that P'.Ordinal(o) == 0 and
// P'.IsAligned(o): the base period's floor of o is found, month and
// microsecond offsets are derived from o minus that floor, and the result is
// rebased so o itself carries ordinal zero (spec.md §4.3). For Seconds and
// Microseconds steps, month_offset is forced to zero regardless of how far o
// is from the floor.
func (p Period) WithOrigin(o time.Time) (Period, error) {
	o = stripZone(o)

	base := p.props.withoutOffsets()
	baseVariant := newVariant(base)
	floor := baseVariant.datetime(baseVariant.ordinal(o))

	var monthOffset, microsecondOffset int64
	if p.props.step == Months {
		oYear, oMonth, _ := o.Date()
		floorYear, floorMonth, _ := floor.Date()
		monthOffset = (int64(oYear)*12 + int64(oMonth) - 1) - (int64(floorYear)*12 + int64(floorMonth) - 1)
		monthStart := addMonths(floor, monthOffset)
		microsecondOffset = o.Sub(monthStart).Microseconds()
	} else {
		microsecondOffset = o.Sub(floor).Microseconds()
	}

	offsetProps := base
	offsetProps.monthOffset = monthOffset
	offsetProps.microsecondOffset = microsecondOffset
	offsetProps = offsetProps.normalise()

	shift := -newVariant(offsetProps).ordinal(o)
	offsetProps.ordinalShift = shift
	return New(offsetProps)
}

func (props Properties) withoutOffsets() Properties {
	props.monthOffset = 0
	props.microsecondOffset = 0
	props.ordinalShift = 0
	return props
}

// MinOrdinal returns the smallest ordinal n such that datetime(n) falls on or
// after 0001-01-01T00:00:00. Arithmetic that would overflow the representable
// date range is guarded: this recovers and falls back to the unoffset
// period's bound (spec.md §4.3, §7).
func (p Period) MinOrdinal() (n int64) {
	tMin := time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC)
	defer func() {
		if recover() != nil {
			n = newVariant(p.props.withoutOffsets()).ordinal(tMin)
		}
	}()
	v := p.variant()
	n = v.ordinal(tMin)
	if v.datetime(n).Before(tMin) {
		n++
	}
	return n
}

// MaxOrdinal returns the largest ordinal n such that datetime(n) falls on or
// before 9999-12-31T23:59:59.999999.
func (p Period) MaxOrdinal() (n int64) {
	tMax := time.Date(9999, 12, 31, 23, 59, 59, 999999000, time.UTC)
	defer func() {
		if recover() != nil {
			n = newVariant(p.props.withoutOffsets()).ordinal(tMax)
		}
	}()
	v := p.variant()
	n = v.ordinal(tMax)
	if v.datetime(n).After(tMax) {
		n--
	}
	return n
}

// Equal reports whether p and other are the same Period: their Properties
// are structurally equal after normalization (spec.md §3), with the
// timezones compared by Tz.Equal rather than by *time.Location identity.
func (p Period) Equal(other Period) bool {
	a, b := p.props, other.props
	if !a.tzinfo.Equal(b.tzinfo) {
		return false
	}
	a.tzinfo, b.tzinfo = NoTz, NoTz
	return a == b
}
