// Copyright 2015 Rick Beton. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package period

import "time"

// monthVariant implements 1-month intervals: ordinal = year*12 + month - 1.
type monthVariant struct{}

func (monthVariant) ordinal(t time.Time) int64 {
	y, m, _ := t.Date()
	return int64(y)*12 + int64(m) - 1
}

func (monthVariant) datetime(n int64) time.Time {
	y := eFloorDiv(n, 12)
	m := eMod(n, 12) + 1
	return time.Date(int(y), time.Month(m), 1, 0, 0, 0, 0, time.UTC)
}

// yearVariant implements 1-year (12-month) intervals: ordinal = year.
type yearVariant struct{}

func (yearVariant) ordinal(t time.Time) int64 {
	y, _, _ := t.Date()
	return int64(y)
}

func (yearVariant) datetime(n int64) time.Time {
	return time.Date(int(n), time.January, 1, 0, 0, 0, 0, time.UTC)
}

// multiYearVariant implements N-year intervals: ordinal = year / N.
type multiYearVariant struct{ years int64 }

func (v multiYearVariant) ordinal(t time.Time) int64 {
	y, _, _ := t.Date()
	return eFloorDiv(int64(y), v.years)
}

func (v multiYearVariant) datetime(n int64) time.Time {
	return time.Date(int(n*v.years), time.January, 1, 0, 0, 0, 0, time.UTC)
}

// multiMonthVariant implements N-month intervals, N not a multiple of 12:
// ordinal = (year*12 + month - 1) / N.
type multiMonthVariant struct{ n int64 }

func (v multiMonthVariant) ordinal(t time.Time) int64 {
	y, m, _ := t.Date()
	return eFloorDiv(int64(y)*12+int64(m)-1, v.n)
}

func (v multiMonthVariant) datetime(n int64) time.Time {
	totalMonths := n * v.n
	y := eFloorDiv(totalMonths, 12)
	m := eMod(totalMonths, 12) + 1
	return time.Date(int(y), time.Month(m), 1, 0, 0, 0, 0, time.UTC)
}
