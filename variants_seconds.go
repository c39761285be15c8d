// Copyright 2015 Rick Beton. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package period

import "time"

// secondsSinceEpoch returns t's offset, in whole seconds, from the start of
// day 0 of the ordinal numbering (0000-12-31T00:00:00), so that
// 0001-01-01T00:00:00 (day 1) is 86_400. MultiHour, MultiMinute and
// MultiSecond are all "N-second intervals" and share this helper (as does
// microsecondVariant), rather than re-deriving the same arithmetic per named
// variant; Day and MultiDay divide the day ordinal directly.
func secondsSinceEpoch(t time.Time) int64 {
	return gregorianDayOrdinal(t)*86_400 + secondsOfDay(t)
}

func datetimeFromSeconds(totalSeconds int64) time.Time {
	days := eFloorDiv(totalSeconds, 86_400)
	rem := eMod(totalSeconds, 86_400)
	y, m, d := ordinalToDate(days)
	return time.Date(int(y), time.Month(m), int(d), int(rem/3600), int((rem%3600)/60), int(rem%60), 0, time.UTC)
}

// dayVariant implements 1-day intervals: ordinal = gregorian_day_ordinal(t).
type dayVariant struct{}

func (dayVariant) ordinal(t time.Time) int64 {
	return gregorianDayOrdinal(t)
}

func (dayVariant) datetime(n int64) time.Time {
	y, m, d := ordinalToDate(n)
	return time.Date(int(y), time.Month(m), int(d), 0, 0, 0, 0, time.UTC)
}

// multiDayVariant implements N-day intervals: ordinal = day_ordinal(t) / N.
type multiDayVariant struct{ days int64 }

func (v multiDayVariant) ordinal(t time.Time) int64 {
	return eFloorDiv(gregorianDayOrdinal(t), v.days)
}

func (v multiDayVariant) datetime(n int64) time.Time {
	y, m, d := ordinalToDate(n * v.days)
	return time.Date(int(y), time.Month(m), int(d), 0, 0, 0, 0, time.UTC)
}

// multiHourVariant implements N-hour intervals where N*3600 does not divide
// into a whole day count only implicitly: ordinal = total_seconds / (N*3600).
type multiHourVariant struct{ seconds int64 }

func (v multiHourVariant) ordinal(t time.Time) int64 {
	return eFloorDiv(secondsSinceEpoch(t), v.seconds)
}

func (v multiHourVariant) datetime(n int64) time.Time {
	return datetimeFromSeconds(n * v.seconds)
}

// multiMinuteVariant implements N-minute intervals.
type multiMinuteVariant struct{ seconds int64 }

func (v multiMinuteVariant) ordinal(t time.Time) int64 {
	return eFloorDiv(secondsSinceEpoch(t), v.seconds)
}

func (v multiMinuteVariant) datetime(n int64) time.Time {
	return datetimeFromSeconds(n * v.seconds)
}

// multiSecondVariant implements N-second intervals for N not a multiple of
// 60, 3600 or 86400.
type multiSecondVariant struct{ seconds int64 }

func (v multiSecondVariant) ordinal(t time.Time) int64 {
	return eFloorDiv(secondsSinceEpoch(t), v.seconds)
}

func (v multiSecondVariant) datetime(n int64) time.Time {
	return datetimeFromSeconds(n * v.seconds)
}
