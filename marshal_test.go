// Copyright 2015 Rick Beton. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package period

import (
	"bytes"
	"database/sql/driver"
	"encoding/gob"
	"encoding/json"
	"flag"
	"fmt"
	"testing"

	. "github.com/onsi/gomega"
)

func TestTextMarshalUnmarshalRoundTrip(t *testing.T) {
	cases := []string{"P1Y", "P1Y+9M9H", "PT15M", "P1D[Z]-3"}
	for i, c := range cases {
		t.Run(fmt.Sprintf("%d %s", i, c), func(t *testing.T) {
			g := NewWithT(t)
			p := MustParse(c)

			bs, err := p.MarshalText()
			g.Expect(err).NotTo(HaveOccurred())

			var q Period
			g.Expect(q.UnmarshalText(bs)).NotTo(HaveOccurred())
			g.Expect(q.Equal(p)).To(BeTrue())
		})
	}
}

func TestJSONMarshalling(t *testing.T) {
	g := NewWithT(t)
	p := MustParse("P1Y+9M9H")

	bs, err := json.Marshal(p)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(string(bs)).To(Equal(`"` + p.Repr() + `"`))

	var q Period
	g.Expect(json.Unmarshal(bs, &q)).NotTo(HaveOccurred())
	g.Expect(q.Equal(p)).To(BeTrue())
}

func TestGobEncoding(t *testing.T) {
	var b bytes.Buffer
	encoder := gob.NewEncoder(&b)
	decoder := gob.NewDecoder(&b)

	cases := []string{"P1Y", "P1Y+9M9H", "PT15M", "P1D[Z]-3"}
	for i, c := range cases {
		t.Run(fmt.Sprintf("%d %s", i, c), func(t *testing.T) {
			g := NewWithT(t)
			period := MustParse(c)

			g.Expect(encoder.Encode(&period)).NotTo(HaveOccurred())

			var p Period
			g.Expect(decoder.Decode(&p)).NotTo(HaveOccurred())
			g.Expect(p.Equal(period)).To(BeTrue())
		})
	}
}

func TestScanAndValue(t *testing.T) {
	cases := []struct {
		v interface{}
	}{
		{[]byte("P1Y3M")},
		{"P1Y3M"},
		{"P1Y+9M9H"},
	}
	for i, c := range cases {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			g := NewWithT(t)
			r := new(Period)
			g.Expect(r.Scan(c.v)).NotTo(HaveOccurred())

			var d driver.Valuer = *r
			q, err := d.Value()
			g.Expect(err).NotTo(HaveOccurred())
			g.Expect(q.(string)).To(Equal(r.Repr()))
		})
	}
}

func TestScan_nilLeavesUnchanged(t *testing.T) {
	g := NewWithT(t)
	r := new(Period)
	g.Expect(r.Scan(nil)).NotTo(HaveOccurred())
	g.Expect(r.Equal(Period{})).To(BeTrue())
}

func TestScan_rejectsUnknownType(t *testing.T) {
	g := NewWithT(t)
	r := new(Period)
	err := r.Scan(1)
	g.Expect(err).To(HaveOccurred())
	g.Expect(err.Error()).To(ContainSubstring("not a meaningful period"))
}

func TestFlagValue(t *testing.T) {
	g := NewWithT(t)

	var p Period
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Var(&p, "period", "")
	g.Expect(fs.Parse([]string{"-period=P1Y"})).NotTo(HaveOccurred())
	g.Expect(p.Equal(MustParse("P1Y"))).To(BeTrue())
	g.Expect(p.Type()).To(Equal("period"))
	g.Expect(p.Get()).To(Equal(p))
}
