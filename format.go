// Copyright 2015 Rick Beton. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package period

import (
	"fmt"
	"strings"
	"time"
)

// granularity is the coarsest time unit a formatter must render in order to
// tell two adjacent interval starts apart (spec.md §4.4).
type granularity int

const (
	gYear granularity = iota
	gMonth
	gDay
	gHour
	gMinute
	gSecond
	gMicrosecond
)

// granularity walks from most-precise to least, stopping at the first level
// both the magnitude and the offsets require (spec.md §4.4's decision tree).
func (p Properties) granularity() granularity {
	var g granularity
	switch p.step {
	case Months:
		g = gYear
		if p.multiplier%12 != 0 || p.monthOffset != 0 {
			g = gMonth
		}
	default:
		g = granularityForMicros(p.multiplier * p.step.microsecondsPerUnit())
	}
	if p.microsecondOffset != 0 {
		if og := granularityForMicros(p.microsecondOffset); og > g {
			g = og
		}
	}
	return g
}

// granularityForMicros classifies a microsecond count by the coarsest unit
// that divides it evenly, bottoming out at gDay (Seconds/Microseconds steps
// never need year/month granularity: their unit length is fixed, not
// calendar-variable).
func granularityForMicros(micros int64) granularity {
	if micros < 0 {
		micros = -micros
	}
	switch {
	case micros%86_400_000_000 == 0:
		return gDay
	case micros%3_600_000_000 == 0:
		return gHour
	case micros%60_000_000 == 0:
		return gMinute
	case micros%1_000_000 == 0:
		return gSecond
	default:
		return gMicrosecond
	}
}

func layoutFor(g granularity, sep byte) string {
	switch g {
	case gYear:
		return "2006"
	case gMonth:
		return "2006-01"
	case gDay:
		return "2006-01-02"
	case gHour:
		return "2006-01-02" + string(sep) + "15"
	case gMinute:
		return "2006-01-02" + string(sep) + "15:04"
	case gSecond:
		return "2006-01-02" + string(sep) + "15:04:05"
	default:
		return "2006-01-02" + string(sep) + "15:04:05.000000"
	}
}

// Formatter returns a function rendering the wall-clock start of any
// interval of p at the minimum precision that keeps adjacent interval starts
// distinct, joining the date and time portions with sep (one of ' ', 'T',
// 't'; any other separator is a ValidationError). When p carries a tzinfo,
// the rendering is bumped to at least hour precision and the zone suffix is
// appended, matching spec.md §8 property 13's "YYYY-MM-DD HH<tz>" example.
func (p Period) Formatter(sep byte) (func(time.Time) string, error) {
	if sep != ' ' && sep != 'T' && sep != 't' {
		return nil, validationErrorf("separator", "must be one of ' ', 'T', 't', got %q", rune(sep))
	}
	g := p.props.granularity()
	aware := !p.props.tzinfo.IsZero()
	if aware && g < gHour {
		g = gHour
	}
	layout := layoutFor(g, sep)
	tz := p.props.tzinfo
	return func(t time.Time) string {
		s := t.Format(layout)
		if aware {
			s += tz.String()
		}
		return s
	}, nil
}

// IsoDuration forwards to Properties.IsoDuration: the canonical minimal
// ISO-8601 duration string for p's magnitude.
func (p Period) IsoDuration() string { return p.props.IsoDuration() }

// Timedelta forwards to Properties.Timedelta.
func (p Period) Timedelta() (time.Duration, bool) { return p.props.Timedelta() }

// PlInterval forwards to Properties.PlInterval.
func (p Period) PlInterval() string { return p.props.PlInterval() }

// PlOffset forwards to Properties.PlOffset.
func (p Period) PlOffset() string { return p.props.PlOffset() }

// IsEpochAgnostic forwards to Properties.IsEpochAgnostic.
func (p Period) IsEpochAgnostic() bool { return p.props.IsEpochAgnostic() }

// String renders p as iso_duration when it carries no offset, and as the
// extended offset form ("<duration>+<offset>") otherwise — the two
// producers spec.md §6's external-interfaces table assigns to __str__.
func (p Period) String() string {
	if p.props.monthOffset == 0 && p.props.microsecondOffset == 0 {
		return p.props.IsoDuration()
	}
	return p.props.IsoDuration() + offsetSuffix(p.props)
}

// Repr renders the full round-trip form "<duration>[<tz?>]<shift?>"
// (spec.md §6), accepted back by OfRepr/Parse per §8 property 3. A named
// zone is rendered as its current fixed offset: repr cannot carry historical
// zone rules, so this is a deliberate, documented lossy conversion
// (spec.md §9's open question, resolved the same way as the reference
// implementation).
func (p Period) Repr() string {
	var b strings.Builder
	b.WriteString(p.props.IsoDuration())
	if p.props.monthOffset != 0 || p.props.microsecondOffset != 0 {
		b.WriteString(offsetSuffix(p.props))
	}
	if !p.props.tzinfo.IsZero() {
		b.WriteByte('[')
		b.WriteString(p.props.tzinfo.String())
		b.WriteByte(']')
	}
	if p.props.ordinalShift != 0 {
		fmt.Fprintf(&b, "%+d", p.props.ordinalShift)
	}
	return b.String()
}

// offsetSuffix renders the "+<months>M<days>D<hours>H<minutes>M<seconds>S"
// offset segment. Offsets are always non-negative (Properties.validate
// rejects negative offsets), so the sign is always '+'.
func offsetSuffix(p Properties) string {
	var b strings.Builder
	b.WriteByte('+')
	if p.monthOffset != 0 {
		fmt.Fprintf(&b, "%dM", p.monthOffset)
	}
	if p.microsecondOffset != 0 {
		writeOffsetMicros(&b, p.microsecondOffset)
	}
	return b.String()
}

func writeOffsetMicros(b *strings.Builder, totalMicros int64) {
	days := totalMicros / 86_400_000_000
	rem := totalMicros % 86_400_000_000
	hours := rem / 3_600_000_000
	rem %= 3_600_000_000
	minutes := rem / 60_000_000
	rem %= 60_000_000
	seconds := rem / 1_000_000
	micros := rem % 1_000_000

	if days > 0 {
		fmt.Fprintf(b, "%dD", days)
	}
	if hours > 0 {
		fmt.Fprintf(b, "%dH", hours)
	} else if days == 0 && minutes > 0 {
		// A bare minutes field is ambiguous with the months field of the
		// same letter: consumeOffsetFields only reads 'M' as minutes once
		// it has seen an H/S/W/D designator. A zero-hours field forces that
		// without changing the offset's value.
		b.WriteString("0H")
	}
	if minutes > 0 {
		fmt.Fprintf(b, "%dM", minutes)
	}
	if seconds > 0 || micros > 0 {
		var sb strings.Builder
		fmt.Fprintf(&sb, "%d", seconds)
		if micros > 0 {
			fmt.Fprintf(&sb, ".%06d", micros)
			trimTrailingZeros(&sb)
		}
		sb.WriteByte('S')
		b.WriteString(sb.String())
	}
}
