// Copyright 2015 Rick Beton. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package period

import (
	"fmt"
	"strings"
	"time"
)

// Properties is the canonical, immutable record every Period wraps: a step, a
// magnitude (multiplier), two offsets that shift the partition's boundaries
// away from the natural epoch, an optional timezone, and an ordinal rebasing
// shift.
//
// Two Properties values are equal iff they are structurally equal after
// normalise, which this package applies to every value it hands back. Plain
// struct equality ("==") compares the tzinfo's *time.Location by identity,
// so two separately built zones with the same offset (two FixedOffset calls,
// say) differ under it; Period.Equal compares timezones with Tz.Equal.
type Properties struct {
	step               Step
	multiplier         int64
	monthOffset        int64
	microsecondOffset  int64
	tzinfo             Tz
	ordinalShift       int64
}

func (p Properties) normalise() Properties {
	switch p.step {
	case Months:
		if p.multiplier > 0 {
			p.monthOffset = eMod(p.monthOffset, p.multiplier)
		}
	case Seconds:
		mod := p.multiplier * 1_000_000
		if mod > 0 {
			p.microsecondOffset = eMod(p.microsecondOffset, mod)
		}
	case Microseconds:
		if p.multiplier > 0 {
			p.microsecondOffset = eMod(p.microsecondOffset, p.multiplier)
		}
	}
	return p
}

func (p Properties) validate() error {
	if p.multiplier <= 0 {
		return validationErrorf("multiplier", "must be positive, got %d", p.multiplier)
	}
	if p.monthOffset < 0 {
		return validationErrorf("month_offset", "must not be negative, got %d", p.monthOffset)
	}
	if p.microsecondOffset < 0 {
		return validationErrorf("microsecond_offset", "must not be negative, got %d", p.microsecondOffset)
	}
	if p.step != Months && p.monthOffset != 0 {
		return validationErrorf("month_offset", "must be zero when step is not Months")
	}
	return nil
}

// OfStepAndMultiplier constructs Properties for the given step and positive
// multiplier, with zero offsets and no timezone. A Microseconds step whose
// multiplier is an exact multiple of 1_000_000 collapses to the equivalent
// Seconds step, per spec.md §4.2.
func OfStepAndMultiplier(step Step, multiplier int64) (Properties, error) {
	if step == Microseconds && multiplier > 0 && multiplier%1_000_000 == 0 {
		step, multiplier = Seconds, multiplier/1_000_000
	}
	p := Properties{step: step, multiplier: multiplier}
	if err := p.validate(); err != nil {
		return Properties{}, err
	}
	return p.normalise(), nil
}

func mustStepAndMultiplier(step Step, multiplier int64) Properties {
	p, err := OfStepAndMultiplier(step, multiplier)
	if err != nil {
		panic(err)
	}
	return p
}

// OfYears constructs Properties for N-year intervals (N*12 months).
func OfYears(n int64) (Properties, error) { return OfStepAndMultiplier(Months, n*12) }

// OfMonths constructs Properties for N-month intervals.
func OfMonths(n int64) (Properties, error) { return OfStepAndMultiplier(Months, n) }

// OfQuarters constructs Properties for N-quarter (3-month) intervals. Sugar
// over OfMonths, supplementing spec.md's factory list per the original's
// PeriodProperties.of_quarters.
func OfQuarters(n int64) (Properties, error) { return OfStepAndMultiplier(Months, n*3) }

// OfWeeks constructs Properties for N-week (7-day) intervals. Sugar over
// OfStepAndMultiplier(Seconds, ...), supplementing spec.md's factory list.
func OfWeeks(n int64) (Properties, error) { return OfStepAndMultiplier(Seconds, n*7*86_400) }

// OfDays constructs Properties for N-day intervals.
func OfDays(n int64) (Properties, error) { return OfStepAndMultiplier(Seconds, n*86_400) }

// OfHours constructs Properties for N-hour intervals.
func OfHours(n int64) (Properties, error) { return OfStepAndMultiplier(Seconds, n*3_600) }

// OfMinutes constructs Properties for N-minute intervals.
func OfMinutes(n int64) (Properties, error) { return OfStepAndMultiplier(Seconds, n*60) }

// OfSeconds constructs Properties for N-second intervals.
func OfSeconds(n int64) (Properties, error) { return OfStepAndMultiplier(Seconds, n) }

// OfMicroseconds constructs Properties for N-microsecond intervals. A
// multiple of 1_000_000 collapses to the equivalent Seconds step.
func OfMicroseconds(n int64) (Properties, error) { return OfStepAndMultiplier(Microseconds, n) }

//-------------------------------------------------------------------------------------------------
// builders

// WithMultiplier returns Properties with the magnitude scaled to k, offsets
// preserved and re-normalized, and ordinal_shift reset to zero.
func (p Properties) WithMultiplier(k int64) (Properties, error) {
	p.multiplier = k
	p.ordinalShift = 0
	if err := p.validate(); err != nil {
		return Properties{}, err
	}
	return p.normalise(), nil
}

// WithMonthOffset returns Properties with k added to month_offset. It fails
// if step is not Months.
func (p Properties) WithMonthOffset(k int64) (Properties, error) {
	if p.step != Months {
		return Properties{}, validationErrorf("month_offset", "cannot be set when step is %s", p.step)
	}
	p.monthOffset += k
	p.ordinalShift = 0
	if err := p.validate(); err != nil {
		return Properties{}, err
	}
	return p.normalise(), nil
}

// WithMicrosecondOffset returns Properties with k added to
// microsecond_offset.
func (p Properties) WithMicrosecondOffset(k int64) (Properties, error) {
	p.microsecondOffset += k
	p.ordinalShift = 0
	if err := p.validate(); err != nil {
		return Properties{}, err
	}
	return p.normalise(), nil
}

// WithHourOffset is sugar over WithMicrosecondOffset(k * 3_600_000_000),
// supplementing spec.md's builder list per the original's convenience
// accessors used by its "water year" examples.
func (p Properties) WithHourOffset(k int64) (Properties, error) {
	return p.WithMicrosecondOffset(k * 3_600_000_000)
}

// WithMinuteOffset is sugar over WithMicrosecondOffset(k * 60_000_000).
func (p Properties) WithMinuteOffset(k int64) (Properties, error) {
	return p.WithMicrosecondOffset(k * 60_000_000)
}

// WithTzinfo returns Properties with tzinfo replaced. Unlike every other
// builder, ordinal_shift is preserved: a user who pinned a Period to a
// specific origin and then reinterprets it in a different zone still wants
// ordinal(origin) == 0 (spec.md §9).
func (p Properties) WithTzinfo(tz Tz) Properties {
	p.tzinfo = tz
	return p
}

// WithOrdinalShift sets ordinal_shift directly, without re-normalizing any
// other field.
func (p Properties) WithOrdinalShift(shift int64) Properties {
	p.ordinalShift = shift
	return p
}

//-------------------------------------------------------------------------------------------------
// derived queries

// IsEpochAgnostic reports whether the partition induced by p is invariant
// under any choice of epoch that falls on the start of a calendar year.
func (p Properties) IsEpochAgnostic() bool {
	switch p.step {
	case Months:
		return p.multiplier > 0 && 12%p.multiplier == 0
	case Seconds:
		return p.multiplier > 0 && 86_400%p.multiplier == 0
	case Microseconds:
		return p.multiplier > 0 && p.multiplier <= 1_000_000 && 1_000_000%p.multiplier == 0
	}
	return false
}

// Timedelta returns a fixed-length duration for Seconds and Microseconds
// steps, and ok=false for Months (whose unit length is calendar-variable).
func (p Properties) Timedelta() (d time.Duration, ok bool) {
	switch p.step {
	case Seconds:
		return time.Duration(p.multiplier) * time.Second, true
	case Microseconds:
		return time.Duration(p.multiplier) * time.Microsecond, true
	}
	return 0, false
}

// IsoDuration renders the canonical minimal ISO-8601 duration string for the
// magnitude of p (the offsets are not part of this string; see Period's
// extended offset and repr forms for those). Zero-valued components are never
// emitted.
func (p Properties) IsoDuration() string {
	switch p.step {
	case Months:
		years, months := p.multiplier/12, p.multiplier%12
		var b strings.Builder
		b.WriteByte('P')
		if years > 0 {
			fmt.Fprintf(&b, "%dY", years)
		}
		if months > 0 || years == 0 {
			fmt.Fprintf(&b, "%dM", months)
		}
		return b.String()
	case Seconds:
		return isoDurationFromSeconds(p.multiplier)
	case Microseconds:
		return isoDurationFromMicroseconds(p.multiplier)
	}
	panic("period: invalid step")
}

func isoDurationFromSeconds(totalSeconds int64) string {
	days := totalSeconds / 86_400
	rem := totalSeconds % 86_400
	hours := rem / 3_600
	rem %= 3_600
	minutes := rem / 60
	seconds := rem % 60

	var b strings.Builder
	b.WriteByte('P')
	if days > 0 {
		fmt.Fprintf(&b, "%dD", days)
	}
	if hours == 0 && minutes == 0 && seconds == 0 {
		if days == 0 {
			b.WriteString("T0S")
		}
		return b.String()
	}
	b.WriteByte('T')
	if hours > 0 {
		fmt.Fprintf(&b, "%dH", hours)
	}
	if minutes > 0 {
		fmt.Fprintf(&b, "%dM", minutes)
	}
	if seconds > 0 {
		fmt.Fprintf(&b, "%dS", seconds)
	}
	return b.String()
}

func isoDurationFromMicroseconds(totalMicros int64) string {
	seconds := totalMicros / 1_000_000
	micros := totalMicros % 1_000_000
	var b strings.Builder
	fmt.Fprintf(&b, "PT%d", seconds)
	if micros > 0 {
		fmt.Fprintf(&b, ".%06d", micros)
		trimTrailingZeros(&b)
	}
	b.WriteByte('S')
	return b.String()
}

// trimTrailingZeros removes trailing zero digits (but not the decimal point)
// from the string built so far, mirroring period32.go's writeFraction in the
// teacher repo.
func trimTrailingZeros(b *strings.Builder) {
	s := b.String()
	i := len(s)
	for i > 0 && s[i-1] == '0' {
		i--
	}
	b.Reset()
	b.WriteString(s[:i])
}
