// Copyright 2015 Rick Beton. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package period

import "strconv"

// Step is the coarsest semantic unit of a Period: months (calendar-variable
// length), seconds (fixed length), or microseconds (fixed length, sub-second).
// Every Period is anchored at exactly one Step; mixing units from more than
// one Step is rejected at construction.
type Step int

const (
	// Months steps count calendar months; their length in absolute time varies.
	Months Step = iota
	// Seconds steps count whole seconds.
	Seconds
	// Microseconds steps count microseconds; a whole-second multiple collapses
	// to a Seconds step at construction.
	Microseconds
)

func (s Step) String() string {
	switch s {
	case Months:
		return "Months"
	case Seconds:
		return "Seconds"
	case Microseconds:
		return "Microseconds"
	}
	panic("period: invalid step " + strconv.Itoa(int(s)))
}

// microsecondsPerUnit returns the number of microseconds represented by one
// unit of s, or 0 for Months (whose unit length is calendar-variable).
func (s Step) microsecondsPerUnit() int64 {
	switch s {
	case Seconds:
		return 1_000_000
	case Microseconds:
		return 1
	}
	return 0
}
