// Copyright 2015 Rick Beton. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package period

import (
	"time"

	"github.com/rickb777/plural"
)

// misalignedCount pluralizes the diagnostic count in ValidateAlignment's
// error message, the way the teacher's period-format.go pluralizes its
// human-readable duration fields.
var misalignedCount = plural.FromZero("%v timestamps", "%v timestamp", "%v timestamps")

// AllAligned reports whether every timestamp in ts is aligned to p
// (spec.md §1c: bulk alignment checks, consumed by the excluded time-series
// layer to validate that a dataset's periodicity matches its declared Period).
func AllAligned(p Period, ts []time.Time) bool {
	for _, t := range ts {
		if !p.IsAligned(t) {
			return false
		}
	}
	return true
}

// ValidateAlignment reports a ValidationError naming how many of ts are not
// aligned to p, or nil if AllAligned(p, ts) would report true. Where
// AllAligned gives a bulk yes/no answer, this gives the time-series layer a
// diagnostic worth surfacing to a caller.
func ValidateAlignment(p Period, ts []time.Time) error {
	var bad int
	for _, t := range ts {
		if !p.IsAligned(t) {
			bad++
		}
	}
	if bad == 0 {
		return nil
	}
	return validationErrorf("timestamps", "%s of %d not aligned to period %s", misalignedCount.FormatInt(bad), len(ts), p.Repr())
}

// AllOrdinalsDistinct reports whether every timestamp in ts maps to a
// distinct ordinal under p: no two timestamps fall in the same interval.
func AllOrdinalsDistinct(p Period, ts []time.Time) bool {
	seen := make(map[int64]struct{}, len(ts))
	for _, t := range ts {
		n := p.Ordinal(t)
		if _, ok := seen[n]; ok {
			return false
		}
		seen[n] = struct{}{}
	}
	return true
}

// InferredResolution finds the finest Period among candidates to which every
// timestamp in ts is aligned. Candidates are compared with IsSubperiodOf: an
// aligned candidate replaces the current pick only if it is a subperiod of
// it, so when aligned candidates do not divide one another the result is not
// necessarily the one with the smallest interval. It returns ok=false
// if ts is empty or no candidate aligns with every timestamp. Used by the
// excluded time-series layer to validate a dataset's resolution refines its
// periodicity (spec.md §4.5).
func InferredResolution(candidates []Period, ts []time.Time) (Period, bool) {
	if len(ts) == 0 {
		return Period{}, false
	}
	var best Period
	haveBest := false
	for _, c := range candidates {
		if !AllAligned(c, ts) {
			continue
		}
		if !haveBest || c.IsSubperiodOf(best) {
			best = c
			haveBest = true
		}
	}
	return best, haveBest
}
