// Copyright 2015 Rick Beton. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package period

import "strconv"

// PlInterval renders the Period's magnitude as an interop string for
// downstream dataframe libraries: "{multiplier}{us|s|mo}", e.g. "1500000us",
// "3600s", "12mo" (spec.md §6). Grounded on the original's
// PeriodProperties.pl_interval property (original_source/src/time_series/
// period.py), since spec.md names the format but gives only examples.
func (p Properties) PlInterval() string {
	switch p.step {
	case Months:
		return strconv.FormatInt(p.multiplier, 10) + "mo"
	case Seconds:
		return strconv.FormatInt(p.multiplier, 10) + "s"
	case Microseconds:
		return strconv.FormatInt(p.multiplier, 10) + "us"
	}
	panic("period: invalid step")
}

// PlOffset renders the Period's offsets as an interop string:
// "{month_offset}mo{microsecond_offset}us", e.g. "9mo32400000000us".
func (p Properties) PlOffset() string {
	return strconv.FormatInt(p.monthOffset, 10) + "mo" + strconv.FormatInt(p.microsecondOffset, 10) + "us"
}
