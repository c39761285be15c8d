// Copyright 2015 Rick Beton. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package period

import "time"

// shiftedVariant wraps an inner variant (an Offset or a Base variant) and
// adds a constant to every ordinal it produces, implementing with_origin and
// the repr form's trailing signed-shift suffix (spec.md §4.3, §4.4).
type shiftedVariant struct {
	inner variant
	shift int64
}

func (v shiftedVariant) ordinal(t time.Time) int64 {
	return v.inner.ordinal(t) + v.shift
}

func (v shiftedVariant) datetime(n int64) time.Time {
	return v.inner.datetime(n - v.shift)
}
