// Copyright 2015 Rick Beton. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package period

import (
	"bytes"
	"database/sql/driver"
	"encoding/gob"
)

// MarshalText implements encoding.TextMarshaler, rendering p via Repr so the
// full round trip (offsets, tzinfo, ordinal shift) survives re-parsing.
// encoding/json uses this automatically since Period defines no MarshalJSON.
func (p Period) MarshalText() ([]byte, error) {
	return []byte(p.Repr()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting any of the
// four external grammars via Parse.
func (p *Period) UnmarshalText(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// GobEncode implements gob.GobEncoder. Period's fields are all unexported,
// so the default gob struct encoding cannot see them; encoding through Repr
// keeps gob, like text marshaling, a full round trip.
func (p Period) GobEncode() ([]byte, error) {
	return p.MarshalText()
}

// GobDecode implements gob.GobDecoder.
func (p *Period) GobDecode(data []byte) error {
	return p.UnmarshalText(data)
}

var (
	_ gob.GobEncoder = Period{}
	_ gob.GobDecoder = &Period{}
)

// Scan implements database/sql.Scanner, accepting a string, a []byte, or nil
// (which leaves p unchanged).
func (p *Period) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		return nil
	case string:
		return p.UnmarshalText([]byte(v))
	case []byte:
		return p.UnmarshalText(bytes.Clone(v))
	default:
		return parsingErrorf("", "%#v is not a meaningful period", value)
	}
}

// Value implements database/sql/driver.Valuer.
func (p Period) Value() (driver.Value, error) {
	return p.Repr(), nil
}

// Set implements flag.Value (and pflag.Value via Type), parsing s with
// Parse and replacing p's contents in place.
func (p *Period) Set(s string) error {
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Get implements flag.Getter.
func (p Period) Get() interface{} {
	return p
}

// Type implements pflag.Value, naming the flag's value type in --help text.
func (p Period) Type() string {
	return "period"
}
