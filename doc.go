// Copyright 2016 Rick Beton. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package period partitions the proleptic Gregorian timeline into
// consecutive, half-open intervals and assigns each interval a signed
// integer ordinal, invertibly.
//
// A [Period] wraps a [Properties] value describing the partition: a [Step]
// (Months, Seconds, or Microseconds), a positive multiplier giving the
// interval's magnitude in that step's units, two offsets shifting the
// partition's boundaries away from the natural epoch, an optional timezone,
// and an ordinal rebasing shift. Two Periods describing the same partition
// always report [Period.Equal] after normalization.
//
//   - [Period.Ordinal] maps a [time.Time] to the index of the interval
//     containing it.
//   - [Period.DateTime] is its inverse: the inclusive start of interval n.
//   - [Period.IsAligned] reports whether a time falls exactly on a
//     boundary.
//
// Months-step periods count calendar months, whose length in absolute time
// varies; Seconds- and Microseconds-step periods have a fixed length.
// Mixing units from more than one step is rejected at construction.
//
// Periods parse from and render to four string grammars (see [Parse],
// [OfISODuration], [OfDuration], [OfDateAndDuration], [OfRepr], and
// [Period.Repr]):
//
//   - ISO duration: "P1Y", "PT15M", "PT0.001S"
//   - Extended offset: "P1Y+9M9H"
//   - Date-and-duration: "1980-10-01T09:00:00/P1Y"
//   - Repr round trip: "P1Y+9M9H[Z]-42"
//
// [Period.Count] and [Period.IsSubperiodOf] compare two Periods: whether
// every interval of one Period divides evenly into intervals of another,
// with aligned boundaries.
package period
