// Copyright 2015 Rick Beton. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package period

import (
	"fmt"
)

// ParsingError is returned when a string does not match any of the grammars
// accepted by Parse: the ISO-8601 duration form, the extended offset form, the
// date-and-duration form, or the repr round-trip form.
type ParsingError struct {
	Input string
	Msg   string
}

func (e *ParsingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Input, e.Msg)
}

func parsingErrorf(input, format string, args ...interface{}) error {
	return &ParsingError{Input: input, Msg: fmt.Sprintf(format, args...)}
}

// ValidationError is returned when parsed or constructed values violate an
// invariant of Properties or Period: a non-positive multiplier, a negative
// offset, a month offset on a non-Months step, or a timezone offset of 24
// hours or more.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

func validationErrorf(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Msg: fmt.Sprintf(format, args...)}
}

// ConfigError is raised only by internal helpers when their own preconditions
// are violated. It always indicates a programming error in this package, never
// a problem with user input.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string {
	return "period: " + e.Msg
}

func configErrorf(format string, args ...interface{}) error {
	return &ConfigError{Msg: fmt.Sprintf(format, args...)}
}
