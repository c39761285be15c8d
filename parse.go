// Copyright 2015 Rick Beton. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package period

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/govalues/decimal"
)

// reprSuffixPattern matches the decorative "[<tz>]<shift>" tail of the repr
// grammar once the magnitude and offset fields have been consumed — a
// statically-compiled, read-only-after-init pattern for the one part of this
// module's grammar that is naturally a fixed shape rather than a scanned
// field run (spec.md §5's "statically-compiled regex patterns" note).
var reprSuffixPattern = regexp.MustCompile(`^(\[([^\]]*)\])?([+-]\d+)?$`)

// MustParse is as per Parse except that it panics if the string cannot be
// parsed. Intended for setup code; don't use it for user inputs.
func MustParse(s string) Period {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Parse dispatches s to whichever of the external grammars it matches
// (spec.md §6): a "<datetime>/<duration>" date-and-duration, a repr
// ("<duration>[<tz>]<shift>", possibly missing some of those pieces), or a
// bare ISO-8601 duration. A plain magnitude never contains '+', '-' or '[',
// so the first occurrence of any of those characters is enough to tell the
// extended forms apart from a bare duration.
func Parse(s string) (Period, error) {
	if strings.ContainsRune(s, '/') {
		return OfDateAndDuration(s)
	}
	if strings.ContainsAny(s, "+-[") {
		return OfRepr(s)
	}
	return OfISODuration(s)
}

// OfISODuration parses a bare ISO-8601 duration, e.g. "P1Y", "PT15M",
// "PT0.001S" (spec.md §6). It carries no offset, timezone, or ordinal shift.
func OfISODuration(s string) (Period, error) {
	props, rest, err := parseMagnitude(s, s)
	if err != nil {
		return Period{}, err
	}
	if rest != "" {
		return Period{}, parsingErrorf(s, "unexpected trailing characters %q", rest)
	}
	return New(props)
}

// OfDuration parses the "extended offset" grammar, e.g. "P1Y+9M9H": a
// magnitude followed by a single signed run of offset fields (spec.md §6).
func OfDuration(s string) (Period, error) {
	props, rest, err := parseMagnitude(s, s)
	if err != nil {
		return Period{}, err
	}

	monthDelta, microDelta, rest, err := consumeOffsetFields(rest, s)
	if err != nil {
		return Period{}, err
	}
	if rest != "" {
		return Period{}, parsingErrorf(s, "unexpected trailing characters %q", rest)
	}

	if monthDelta != 0 {
		if props, err = props.WithMonthOffset(monthDelta); err != nil {
			return Period{}, err
		}
	}
	if microDelta != 0 {
		if props, err = props.WithMicrosecondOffset(microDelta); err != nil {
			return Period{}, err
		}
	}
	return New(props)
}

// OfDateAndDuration parses "<ISO datetime>/<duration>", e.g.
// "1980-10-01T09:00:00/P1Y" (spec.md §6). The result is the duration's
// Period with_origin the datetime, and without_ordinal_shift applied so the
// origin itself does not leak into the ordinal numbering.
func OfDateAndDuration(s string) (Period, error) {
	idx := strings.IndexByte(s, '/')
	if idx < 0 {
		return Period{}, parsingErrorf(s, "expected '<datetime>/<duration>'")
	}
	datePart, durPart := s[:idx], s[idx+1:]

	t, err := parseISODateTime(datePart, s)
	if err != nil {
		return Period{}, err
	}

	props, rest, err := parseMagnitude(durPart, s)
	if err != nil {
		return Period{}, err
	}
	if rest != "" {
		return Period{}, parsingErrorf(s, "unexpected trailing characters %q", rest)
	}

	p, err := New(props)
	if err != nil {
		return Period{}, err
	}
	originated, err := p.WithOrigin(t)
	if err != nil {
		return Period{}, err
	}
	return originated.WithoutOrdinalShift(), nil
}

// OfRepr parses the repr round-trip grammar, "<duration>[<tz?>]<shift?>",
// e.g. "P1Y+9M9H[Z]-42" (spec.md §6, §8 property 3: P == Parse(repr(P))).
func OfRepr(s string) (Period, error) {
	props, rest, err := parseMagnitude(s, s)
	if err != nil {
		return Period{}, err
	}

	monthDelta, microDelta, rest, err := consumeOffsetFields(rest, s)
	if err != nil {
		return Period{}, err
	}
	if monthDelta != 0 {
		if props, err = props.WithMonthOffset(monthDelta); err != nil {
			return Period{}, err
		}
	}
	if microDelta != 0 {
		if props, err = props.WithMicrosecondOffset(microDelta); err != nil {
			return Period{}, err
		}
	}

	m := reprSuffixPattern.FindStringSubmatch(rest)
	if m == nil {
		return Period{}, parsingErrorf(s, "unexpected trailing characters %q", rest)
	}
	if m[2] != "" {
		tz, err := parseTzToken(m[2], s)
		if err != nil {
			return Period{}, err
		}
		props = props.WithTzinfo(tz)
	}

	var shift int64
	if m[3] != "" {
		shift, err = strconv.ParseInt(m[3], 10, 64)
		if err != nil {
			return Period{}, parsingErrorf(s, "unexpected trailing characters %q", m[3])
		}
	}
	props = props.WithOrdinalShift(shift)

	return New(props)
}

//-------------------------------------------------------------------------------------------------
// magnitude and offset field scanning

// parseMagnitude consumes a leading ISO-8601 duration ("P...[T...]") from s
// and returns the Properties it denotes together with the unconsumed
// remainder, for callers that append an offset, timezone, or shift. Y/M
// fields before 'T' (and W/D, which contribute whole days) accumulate into a
// Months-step or a Seconds/Microseconds-step magnitude; mixing both kinds in
// one magnitude is a ValidationError, since a Period has exactly one step
// (spec.md §4.2, §7). A zero-length magnitude is rejected, per spec.md §9's
// "validation strictness" note.
func parseMagnitude(s, original string) (Properties, string, error) {
	if len(s) == 0 || s[0] != 'P' {
		return Properties{}, "", parsingErrorf(original, "expected 'P' designator at the start")
	}
	rest := s[1:]

	var months, days, micros int64
	var haveFraction, sawAny, inTime bool

	for len(rest) > 0 {
		if rest[0] == 'T' {
			if inTime {
				return Properties{}, "", parsingErrorf(original, "'T' designator cannot occur more than once")
			}
			inTime = true
			rest = rest[1:]
			continue
		}
		if !isNumberStart(rest[0]) {
			break
		}

		numStr, i := scanDigits(rest)
		if i == noNumberFound {
			return Properties{}, "", parsingErrorf(original, "expected a number but found '%c'", rest[0])
		}
		if i == stringIsAllNumeric {
			return Properties{}, "", parsingErrorf(original, "missing designator at the end")
		}
		if haveFraction {
			return Properties{}, "", parsingErrorf(original, "only the last field may carry a fraction")
		}

		dec, err := decimal.Parse(numStr)
		if err != nil {
			return Properties{}, "", parsingErrorf(original, "invalid number %q", numStr)
		}
		letter := rest[i]
		rest = rest[i+1:]
		sawAny = true

		switch {
		case !inTime && letter == 'Y':
			n, e := wholeField(dec, original)
			if e != nil {
				return Properties{}, "", e
			}
			months += n * 12
		case !inTime && letter == 'M':
			n, e := wholeField(dec, original)
			if e != nil {
				return Properties{}, "", e
			}
			months += n
		case !inTime && letter == 'W':
			n, e := wholeField(dec, original)
			if e != nil {
				return Properties{}, "", e
			}
			days += n * 7
		case !inTime && letter == 'D':
			n, e := wholeField(dec, original)
			if e != nil {
				return Properties{}, "", e
			}
			days += n
		case inTime && letter == 'H':
			n, e := wholeField(dec, original)
			if e != nil {
				return Properties{}, "", e
			}
			micros += n * 3_600_000_000
		case inTime && letter == 'M':
			n, e := wholeField(dec, original)
			if e != nil {
				return Properties{}, "", e
			}
			micros += n * 60_000_000
		case inTime && letter == 'S':
			m, e := microsecondField(dec, original)
			if e != nil {
				return Properties{}, "", e
			}
			micros += m
			if dec.Scale() > 0 {
				haveFraction = true
			}
		default:
			return Properties{}, "", parsingErrorf(original, "unexpected designator '%c'", letter)
		}
	}

	if !sawAny {
		return Properties{}, "", parsingErrorf(original, "expected at least one 'Y', 'M', 'W', 'D', 'H', 'M', or 'S' field")
	}

	daysMicros := days * 86_400_000_000
	switch {
	case months != 0 && (daysMicros != 0 || micros != 0):
		return Properties{}, "", validationErrorf("duration", "%q mixes a month-based field with a second-based field in one magnitude", original)
	case months != 0:
		props, err := OfStepAndMultiplier(Months, months)
		return props, rest, err
	default:
		total := daysMicros + micros
		if total == 0 {
			return Properties{}, "", parsingErrorf(original, "a zero-length duration is not a valid period magnitude")
		}
		props, err := OfStepAndMultiplier(Microseconds, total)
		return props, rest, err
	}
}

// consumeOffsetFields consumes a single signed run of offset fields from the
// front of rest, e.g. "+9M9H" (spec.md §6). It reports zero deltas and the
// unmodified rest if rest does not begin with such a run, so callers can
// distinguish an offset chunk from a trailing bare signed integer (the repr
// form's ordinal shift). Within one run, 'M' means months until the first
// 'H', 'S', 'W', or 'D' field, and minutes afterwards — mirroring how a
// leading time designator disambiguates month/minute in the core ISO-8601
// grammar, except this grammar omits 'T' and uses field order instead.
func consumeOffsetFields(rest, original string) (monthDelta, microDelta int64, newRest string, err error) {
	if len(rest) == 0 || (rest[0] != '+' && rest[0] != '-') {
		return 0, 0, rest, nil
	}

	_, idx := scanDigits(rest[1:])
	if idx < 0 || 1+idx >= len(rest) || !isOffsetDesignator(rest[1+idx]) {
		return 0, 0, rest, nil // a bare signed integer: leave it for shift parsing
	}

	sign := int64(1)
	if rest[0] == '-' {
		sign = -1
	}
	rest = rest[1:]

	var months, micros int64
	timeStarted := false
	for len(rest) > 0 && isNumberStart(rest[0]) {
		numStr, i := scanDigits(rest)
		if i == noNumberFound {
			return 0, 0, "", parsingErrorf(original, "expected a number but found '%c'", rest[0])
		}
		if i == stringIsAllNumeric {
			return 0, 0, "", parsingErrorf(original, "missing designator at the end of an offset")
		}
		dec, perr := decimal.Parse(numStr)
		if perr != nil {
			return 0, 0, "", parsingErrorf(original, "invalid number %q", numStr)
		}
		letter := rest[i]
		rest = rest[i+1:]

		switch letter {
		case 'Y':
			n, e := wholeField(dec, original)
			if e != nil {
				return 0, 0, "", e
			}
			months += n * 12
		case 'M':
			n, e := wholeField(dec, original)
			if e != nil {
				return 0, 0, "", e
			}
			if timeStarted {
				micros += n * 60_000_000
			} else {
				months += n
			}
		case 'W':
			n, e := wholeField(dec, original)
			if e != nil {
				return 0, 0, "", e
			}
			micros += n * 7 * 86_400_000_000
			timeStarted = true
		case 'D':
			n, e := wholeField(dec, original)
			if e != nil {
				return 0, 0, "", e
			}
			micros += n * 86_400_000_000
			timeStarted = true
		case 'H':
			n, e := wholeField(dec, original)
			if e != nil {
				return 0, 0, "", e
			}
			micros += n * 3_600_000_000
			timeStarted = true
		case 'S':
			m, e := microsecondField(dec, original)
			if e != nil {
				return 0, 0, "", e
			}
			micros += m
			timeStarted = true
		default:
			return 0, 0, "", parsingErrorf(original, "unexpected offset designator '%c'", letter)
		}
	}

	return sign * months, sign * micros, rest, nil
}

func isOffsetDesignator(c byte) bool {
	switch c {
	case 'Y', 'M', 'W', 'D', 'H', 'S':
		return true
	}
	return false
}

func isNumberStart(c byte) bool {
	return c == '.' || c == ',' || ('0' <= c && c <= '9')
}

// wholeField converts a decimal field to an integer count, rejecting any
// fraction: only a magnitude's trailing seconds field may carry one
// (spec.md §7's "only the last field can have a fraction" rule, inherited
// from the teacher's itemState/testAndSet parser).
func wholeField(d decimal.Decimal, original string) (int64, error) {
	if d.Scale() > 0 {
		return 0, validationErrorf("duration", "%q: only the seconds field may carry a fraction", original)
	}
	return int64(d.Sign()) * int64(d.Coef()), nil
}

// microsecondField converts a (possibly fractional) seconds field to a
// signed microsecond count. Sub-microsecond precision is rejected, since
// microseconds is this module's finest representable unit (spec.md §4.2).
func microsecondField(d decimal.Decimal, original string) (int64, error) {
	if d.Scale() > 6 {
		return 0, validationErrorf("duration", "%q: sub-microsecond precision is not representable", original)
	}
	coef := int64(d.Coef())
	for i := d.Scale(); i < 6; i++ {
		coef *= 10
	}
	return int64(d.Sign()) * coef, nil
}

// scanDigits finds the index of the first non-digit character after some
// digits, treating ',' as an alternate decimal point. It never consumes a
// leading sign: magnitude and offset fields are unsigned, with sign carried
// separately (the offset chunk's leading '+'/'-', or none at all for a bare
// magnitude, since a Period's multiplier is always positive).
func scanDigits(s string) (string, int) {
	rs := []rune(s)
	number := make([]rune, 0, len(rs))
	for i, c := range rs {
		if c == '.' || c == ',' {
			number = append(number, '.')
		} else if '0' <= c && c <= '9' {
			number = append(number, c)
		} else if len(number) > 0 {
			return string(number), i
		} else {
			return "", noNumberFound
		}
	}
	return "", stringIsAllNumeric
}

const (
	noNumberFound      = -1
	stringIsAllNumeric = -2
)

//-------------------------------------------------------------------------------------------------
// ISO datetime and timezone token parsing

// parseISODateTime parses "YYYY[-MM[-DD[(T|space)HH[:MM[:SS[.ffffff]][Z|±HH:MM]]]]]"
// (spec.md §6). Omitted components default to the first valid value.
func parseISODateTime(s, original string) (time.Time, error) {
	if len(s) < 4 {
		return time.Time{}, parsingErrorf(original, "expected an ISO date/time, got %q", s)
	}
	year, err := strconv.Atoi(s[:4])
	if err != nil {
		return time.Time{}, parsingErrorf(original, "invalid year in %q", s)
	}
	rest := s[4:]

	month, day, hour, minute, second, nanos := 1, 1, 0, 0, 0, 0

	take := func(width int) (int, bool) {
		if len(rest) < width {
			return 0, false
		}
		v, err := strconv.Atoi(rest[:width])
		if err != nil {
			return 0, false
		}
		rest = rest[width:]
		return v, true
	}

	if len(rest) > 0 && rest[0] == '-' {
		rest = rest[1:]
		v, ok := take(2)
		if !ok {
			return time.Time{}, parsingErrorf(original, "invalid month in %q", s)
		}
		month = v
		if len(rest) > 0 && rest[0] == '-' {
			rest = rest[1:]
			v, ok = take(2)
			if !ok {
				return time.Time{}, parsingErrorf(original, "invalid day in %q", s)
			}
			day = v
		}
	}

	tzStr := ""
	if len(rest) > 0 && (rest[0] == 'T' || rest[0] == 't' || rest[0] == ' ') {
		rest = rest[1:]
		v, ok := take(2)
		if !ok {
			return time.Time{}, parsingErrorf(original, "invalid hour in %q", s)
		}
		hour = v
		if len(rest) > 0 && rest[0] == ':' {
			rest = rest[1:]
			v, ok = take(2)
			if !ok {
				return time.Time{}, parsingErrorf(original, "invalid minute in %q", s)
			}
			minute = v
			if len(rest) > 0 && rest[0] == ':' {
				rest = rest[1:]
				v, ok = take(2)
				if !ok {
					return time.Time{}, parsingErrorf(original, "invalid second in %q", s)
				}
				second = v
				if len(rest) > 0 && rest[0] == '.' {
					rest = rest[1:]
					nanos, rest = scanFractionNanos(rest)
				}
			}
		}
		tzStr = rest
		rest = ""
	}

	if rest != "" {
		return time.Time{}, parsingErrorf(original, "unexpected trailing characters %q in %q", rest, s)
	}

	loc := time.UTC
	if tzStr != "" {
		tz, err := parseTzToken(tzStr, original)
		if err != nil {
			return time.Time{}, err
		}
		if !tz.IsZero() {
			loc = tz.Location()
		}
	}
	return time.Date(year, time.Month(month), day, hour, minute, second, nanos, loc), nil
}

// scanFractionNanos reads a run of fractional-second digits and returns it
// rebased to nanoseconds, along with the unconsumed remainder. Precision
// beyond nanoseconds is discarded.
func scanFractionNanos(s string) (int, string) {
	i := 0
	for i < len(s) && i < 9 && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	digits := s[:i]
	rest := s[i:]
	for len(rest) > 0 && rest[0] >= '0' && rest[0] <= '9' {
		rest = rest[1:]
	}
	for len(digits) < 9 {
		digits += "0"
	}
	n, _ := strconv.Atoi(digits)
	return n, rest
}

// parseTzToken parses a timezone token from a repr's "[...]" segment or an
// ISO datetime's trailing zone: "Z", a fixed "±HH:MM" offset, or an IANA
// zone name loaded via time.LoadLocation.
func parseTzToken(tok, original string) (Tz, error) {
	if tok == "" {
		return NoTz, nil
	}
	if tok == "Z" {
		return UTC, nil
	}
	if tok[0] == '+' || tok[0] == '-' {
		secs, err := parseFixedOffsetToken(tok)
		if err != nil {
			return Tz{}, parsingErrorf(original, "invalid timezone offset %q", tok)
		}
		return FixedOffset(secs)
	}
	loc, err := time.LoadLocation(tok)
	if err != nil {
		return Tz{}, parsingErrorf(original, "unknown timezone %q", tok)
	}
	return NamedZone(loc), nil
}

func parseFixedOffsetToken(tok string) (int, error) {
	sign := 1
	if tok[0] == '-' {
		sign = -1
	}
	body := tok[1:]
	parts := strings.SplitN(body, ":", 2)
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, err
	}
	m := 0
	if len(parts) > 1 {
		m, err = strconv.Atoi(parts[1])
		if err != nil {
			return 0, err
		}
	}
	return sign * (h*3_600 + m*60), nil
}
