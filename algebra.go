// Copyright 2015 Rick Beton. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package period

// Count returns the number of this Period's intervals inside one interval of
// outer, or -1 if this is not a subperiod of outer. A result of 0 means this
// is a subperiod whose count varies between outer-intervals — the
// day-in-month case of spec.md §8 ("Period::of_days(1) is_subperiod_of
// Period::of_months(1) is true; count == 0" — there is no teacher precedent
// for this algorithm in the pack; rickb777/period never compares one period
// against another, so it is implemented fresh from spec.md §4.5).
func (p Period) Count(outer Period) int64 {
	if p.props.tzinfo.IsZero() != outer.props.tzinfo.IsZero() {
		return -1
	}

	inner := p.props
	o := outer.props

	switch {
	case inner.step == Months && o.step != Months:
		return -1

	case inner.step != Months && o.step == Months:
		return monthsContainSeconds(inner, o)

	case inner.step == Months && o.step == Months:
		return sameStepCount(inner.multiplier, o.multiplier, inner.monthOffset, o.monthOffset, inner.microsecondOffset, o.microsecondOffset, true)

	default:
		mi := inner.multiplier * inner.step.microsecondsPerUnit()
		mo := o.multiplier * o.step.microsecondsPerUnit()
		return sameStepCount(mi, mo, inner.microsecondOffset, o.microsecondOffset, 0, 0, false)
	}
}

// monthsContainSeconds handles a Seconds/Microseconds-step inner period
// against a Months-step outer. It reports 0 (a subperiod with a variable
// count) iff inner has no offset and its multiplier is a whole number of
// seconds that divides evenly into one day: such intervals tile each day
// exactly, and a day never spans two months, so each lies within a single
// calendar month (and therefore within a single outer interval, however many
// months outer spans). Every other inner period reports -1, including every
// Microseconds-step one, whose multiplier is never a whole number of seconds
// (those collapse to a Seconds step at construction).
func monthsContainSeconds(inner, outer Properties) int64 {
	if inner.monthOffset != 0 || inner.microsecondOffset != 0 {
		return -1
	}
	var seconds int64
	switch inner.step {
	case Seconds:
		seconds = inner.multiplier
	case Microseconds:
		if inner.multiplier%1_000_000 != 0 {
			return -1
		}
		seconds = inner.multiplier / 1_000_000
	}
	if seconds <= 0 || seconds > 86_400 || 86_400%seconds != 0 {
		return -1
	}
	_ = outer
	return 0
}

// sameStepCount implements spec.md §4.5 step 3 for two periods of the same
// step: require the outer multiplier to be a whole multiple of the inner one,
// and the offsets (reduced modulo the inner's magnitude) to agree.
func sameStepCount(mi, mo, innerOffset, outerOffset, innerSecondary, outerSecondary int64, checkSecondary bool) int64 {
	if mi <= 0 || mo%mi != 0 {
		return -1
	}
	if eMod(outerOffset, mi) != eMod(innerOffset, mi) {
		return -1
	}
	if checkSecondary && innerSecondary != outerSecondary {
		return -1
	}
	return mo / mi
}

// IsSubperiodOf reports whether every interval of outer is an exact union of
// consecutive intervals of p, with aligned boundaries: Count(outer) >= 0.
// Note this is deliberately not "Count(outer) > 0": spec.md's own worked
// example (days inside months) is a subperiod with a non-constant count of 0,
// so strict positivity would contradict the spec's stated scenario; see
// DESIGN.md.
func (p Period) IsSubperiodOf(outer Period) bool {
	return p.Count(outer) >= 0
}
