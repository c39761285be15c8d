// Copyright 2015 Rick Beton. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package period

import "time"

// microsecondVariant implements N-microsecond intervals:
// ordinal = (total_seconds * 1_000_000 + microseconds) / N.
type microsecondVariant struct{ micros int64 }

func (v microsecondVariant) ordinal(t time.Time) int64 {
	totalMicros := secondsSinceEpoch(t)*1_000_000 + int64(t.Nanosecond())/1000
	return eFloorDiv(totalMicros, v.micros)
}

func (v microsecondVariant) datetime(n int64) time.Time {
	totalMicros := n * v.micros
	totalSeconds := eFloorDiv(totalMicros, 1_000_000)
	micros := eMod(totalMicros, 1_000_000)
	t := datetimeFromSeconds(totalSeconds)
	return t.Add(time.Duration(micros) * time.Microsecond)
}
