// Copyright 2015 Rick Beton. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package period

import "time"

// offsetVariant wraps a base variant with a month offset and/or a microsecond
// offset, implementing the composite advance/retreat adjuster of spec.md
// §4.1: advance applies the microsecond offset first, then the month offset;
// retreat applies them in the opposite order. This ordering is what makes
// retreat(advance(x)) == x hold across month-end boundaries (spec.md §4.1,
// law 6 of spec.md §8).
//
// The teacher (rickb777/period) has no analog for this: its Period is a
// standalone duration, never a boundary-shifted partition, so this composite
// is implemented fresh rather than adapted (see DESIGN.md).
type offsetVariant struct {
	base              variant
	monthOffset       int64
	microsecondOffset int64
}

// newOffsetVariant is the sole constructor for offsetVariant. Per spec.md §7,
// "both offsets zero" is a ConfigError: a programmer bug in this package's own
// dispatcher, never a condition a caller's input can trigger, since newVariant
// only reaches here when it has already observed a non-zero offset field.
func newOffsetVariant(base variant, monthOffset, microsecondOffset int64) (variant, error) {
	if monthOffset == 0 && microsecondOffset == 0 {
		return nil, configErrorf("offset variant requires a non-zero value in at least one of its two offset fields")
	}
	return offsetVariant{base: base, monthOffset: monthOffset, microsecondOffset: microsecondOffset}, nil
}

func (v offsetVariant) retreat(t time.Time) time.Time {
	if v.monthOffset != 0 {
		t = addMonths(t, -v.monthOffset)
	}
	if v.microsecondOffset != 0 {
		t = t.Add(-time.Duration(v.microsecondOffset) * time.Microsecond)
	}
	return t
}

func (v offsetVariant) advance(t time.Time) time.Time {
	if v.microsecondOffset != 0 {
		t = t.Add(time.Duration(v.microsecondOffset) * time.Microsecond)
	}
	if v.monthOffset != 0 {
		t = addMonths(t, v.monthOffset)
	}
	return t
}

func (v offsetVariant) ordinal(t time.Time) int64 {
	return v.base.ordinal(v.retreat(t))
}

func (v offsetVariant) datetime(n int64) time.Time {
	return v.advance(v.base.datetime(n))
}
