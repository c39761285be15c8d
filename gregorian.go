// Copyright 2015 Rick Beton. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package period

import "time"

// gregorianDayOrdinal returns the day number of t in the proleptic Gregorian
// calendar, where day 1 is 0001-01-01. It is the date component only; time of
// day is discarded. The conversion is Howard Hinnant's days_from_civil
// algorithm (see dateToOrdinal), rebased from its 1970-01-01 = 0 count to
// ordinal 1 = 0001-01-01.
func gregorianDayOrdinal(t time.Time) int64 {
	year, month, day := t.Date()
	return dateToOrdinal(int64(year), int64(month), int64(day))
}

// rataDieEpoch is the day ordinal of 1970-01-01, the day Howard Hinnant's
// days_from_civil algorithm counts as 0: adding it rebases that count so that
// day 1 is 0001-01-01, per spec.md §4.1.
const rataDieEpoch = 719163

func dateToOrdinal(y, m, d int64) int64 {
	// Howard Hinnant's days_from_civil algorithm, Euclidean-division safe for
	// proleptic years of either sign.
	if m <= 2 {
		y--
	}
	era := eFloorDiv(y, 400)
	yoe := y - era*400
	var mp int64
	if m > 2 {
		mp = m - 3
	} else {
		mp = m + 9
	}
	doy := (153*mp+2)/5 + d - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	daysSinceUnixEpoch := era*146097 + doe - 719468
	return daysSinceUnixEpoch + rataDieEpoch
}

// ordinalToDate is the inverse of dateToOrdinal.
func ordinalToDate(ordinal int64) (year, month, day int64) {
	z := ordinal - rataDieEpoch + 719468
	era := eFloorDiv(z, 146097)
	doe := z - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	d := doy - (153*mp+2)/5 + 1
	var m int64
	if mp < 10 {
		m = mp + 3
	} else {
		m = mp - 9
	}
	if m <= 2 {
		y++
	}
	return y, m, d
}

// eFloorDiv performs Euclidean (floor, toward -infinity) integer division.
func eFloorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// eMod is the remainder complementing eFloorDiv: always has the sign of b (or
// zero), never negative for positive b.
func eMod(a, b int64) int64 {
	r := a % b
	if r != 0 && ((r < 0) != (b < 0)) {
		r += b
	}
	return r
}

// secondsOfDay returns the time-of-day component of t in [0, 86_400).
func secondsOfDay(t time.Time) int64 {
	return int64(t.Hour())*3600 + int64(t.Minute())*60 + int64(t.Second())
}

// microsecondsOfDay returns the time-of-day component of t in microseconds,
// in [0, 86_400_000_000).
func microsecondsOfDay(t time.Time) int64 {
	return secondsOfDay(t)*1_000_000 + int64(t.Nanosecond())/1000
}

func isLeapYear(year int64) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

var daysInMonthTable = [12]int64{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func daysInMonth(year, month int64) int64 {
	if month == 2 && isLeapYear(year) {
		return 29
	}
	return daysInMonthTable[month-1]
}

// addMonths shifts t by k calendar months, clamping the day-of-month to the
// last valid day of the target month (e.g. Jan 31 + 1 month = Feb 28 or 29).
// Time of day, and any timezone attached to t, are preserved verbatim.
func addMonths(t time.Time, k int64) time.Time {
	year, month, day := int64(t.Year()), int64(t.Month()), int64(t.Day())
	total := year*12 + (month - 1) + k
	newYear := eFloorDiv(total, 12)
	newMonth := eMod(total, 12) + 1
	newDay := day
	if max := daysInMonth(newYear, newMonth); newDay > max {
		newDay = max
	}
	return time.Date(int(newYear), time.Month(newMonth), int(newDay),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
