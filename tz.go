// Copyright 2015 Rick Beton. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package period

import "time"

// Tz is a timezone opaque to Period arithmetic. The core performs only three
// operations on a Tz: equality comparison, serializing a fixed UTC offset as
// "Z" or "±HH:MM", and re-attaching the zone to a produced time.Time. Named
// zones with historical offset changes are carried but never interpreted: a
// Period's arithmetic is always computed in naive (zone-free) terms and the
// zone is reattached afterwards, per spec.md's Non-goals.
type Tz struct {
	// loc is nil for "no timezone" (a naive Period).
	loc *time.Location
	// fixedOffsetSeconds and hasFixedOffset record a fixed UTC offset
	// distinctly from loc, since a *time.Location built with time.FixedZone
	// is indistinguishable from a named zone without re-deriving the offset.
	fixedOffsetSeconds int
	hasFixedOffset     bool
}

// NoTz is the absence of a timezone: a naive Period.
var NoTz = Tz{}

// UTC is the fixed UTC-offset timezone.
var UTC = Tz{loc: time.UTC, hasFixedOffset: true, fixedOffsetSeconds: 0}

// FixedOffset returns a Tz representing a fixed offset from UTC, in seconds.
// It fails if |seconds| >= 24 hours.
func FixedOffset(seconds int) (Tz, error) {
	if seconds <= -86_400 || seconds >= 86_400 {
		return Tz{}, validationErrorf("tzinfo", "offset %ds is out of range (must be within ±24h)", seconds)
	}
	name := formatTzOffset(seconds)
	return Tz{loc: time.FixedZone(name, seconds), hasFixedOffset: true, fixedOffsetSeconds: seconds}, nil
}

// NamedZone wraps an IANA time zone, carried opaquely: Period arithmetic never
// consults its historical offset rules, only its identity.
func NamedZone(loc *time.Location) Tz {
	if loc == nil {
		return NoTz
	}
	return Tz{loc: loc}
}

// IsZero reports whether tz represents "no timezone".
func (tz Tz) IsZero() bool {
	return tz.loc == nil
}

// Location returns the underlying *time.Location, or nil if tz is NoTz.
func (tz Tz) Location() *time.Location {
	return tz.loc
}

// Equal reports whether two Tz values are the same for Period equality
// purposes: by location identity (name), which is sufficient since Period
// arithmetic never consults zone rules.
func (tz Tz) Equal(other Tz) bool {
	if tz.loc == nil || other.loc == nil {
		return tz.loc == other.loc
	}
	return tz.loc.String() == other.loc.String()
}

// String renders the zone as "Z" or "±HH:MM" ("" for NoTz). A fixed offset
// renders as itself; a named zone renders as its offset at the current time.
// This is the one place a named zone's current offset is consulted, for
// best-effort repr output (see spec.md §9, the documented lossy-conversion
// decision carried forward into this module).
func (tz Tz) String() string {
	if tz.loc == nil {
		return ""
	}
	if tz.hasFixedOffset {
		return formatTzOffset(tz.fixedOffsetSeconds)
	}
	_, offset := time.Now().In(tz.loc).Zone()
	return formatTzOffset(offset)
}

// formatTzOffset renders a signed offset in seconds as "Z" (zero offset),
// "+HH:MM", or "-HH:MM". It rejects |delta| >= 24h.
func formatTzOffset(deltaSeconds int) string {
	if deltaSeconds <= -86_400 || deltaSeconds >= 86_400 {
		panic("period: timezone offset out of range")
	}
	if deltaSeconds == 0 {
		return "Z"
	}
	sign := byte('+')
	d := deltaSeconds
	if d < 0 {
		sign = '-'
		d = -d
	}
	h := d / 3600
	m := (d % 3600) / 60
	buf := make([]byte, 0, 6)
	buf = append(buf, sign)
	buf = appendTwoDigits(buf, h)
	buf = append(buf, ':')
	buf = appendTwoDigits(buf, m)
	return string(buf)
}

func appendTwoDigits(buf []byte, v int) []byte {
	return append(buf, byte('0'+(v/10)%10), byte('0'+v%10))
}
