// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"cmp"
	"errors"
	"strconv"
	"strings"
)

// Kind is the inferred type of a single field.
type Kind uint8

const (
	Missing Kind = iota
	Number
	Text
)

func (k Kind) String() string {
	switch k {
	case Missing:
		return "missing"
	case Number:
		return "number"
	case Text:
		return "text"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a typed field of a row. The zero Value is Missing.
//
// A Value remembers the field exactly as it appeared in the input so
// the dataset can be written back out unchanged.
type Value struct {
	kind Kind
	num  float64
	str  string // normalized text (trimmed)
	raw  string // field as read
}

// Num returns a Number value.
func Num(x float64) Value {
	s := strconv.FormatFloat(x, 'g', -1, 64)
	return Value{kind: Number, num: x, str: s, raw: s}
}

// Str returns a Text value.
func Str(s string) Value {
	return Value{kind: Text, str: s, raw: s}
}

// Parse infers the type of a raw field. Blank fields are Missing,
// fields that parse as a float are Numbers, and everything else is
// Text. Surrounding white space is ignored for the purposes of
// typing.
func Parse(raw string) Value {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Value{raw: raw}
	}
	x, err := strconv.ParseFloat(s, 64)
	if err == nil || errors.Is(err, strconv.ErrRange) {
		return Value{kind: Number, num: x, str: s, raw: raw}
	}
	return Value{kind: Text, str: s, raw: raw}
}

func (v Value) Kind() Kind {
	return v.kind
}

// Float returns v's numeric value and whether v is a Number.
func (v Value) Float() (float64, bool) {
	return v.num, v.kind == Number
}

// Text returns v's string and whether v is Text.
func (v Value) Text() (string, bool) {
	if v.kind != Text {
		return "", false
	}
	return v.str, true
}

// Raw returns the field as it was read.
func (v Value) Raw() string {
	return v.raw
}

func (v Value) String() string {
	return v.str
}

// Equal reports whether v and w have the same kind and value. Raw
// spelling is not compared, so "1.0" and "1" are equal Numbers.
func (v Value) Equal(w Value) bool {
	if v.kind != w.kind {
		return false
	}
	switch v.kind {
	case Number:
		return v.num == w.num
	case Text:
		return v.str == w.str
	}
	return true
}

// Compare orders values for sorting. Numbers sort before Text, and
// Missing sorts after everything else. Numbers compare numerically
// and Text compares lexically.
func Compare(a, b Value) int {
	if a.kind != b.kind {
		return cmp.Compare(rank(a.kind), rank(b.kind))
	}
	switch a.kind {
	case Number:
		return cmp.Compare(a.num, b.num)
	case Text:
		return strings.Compare(a.str, b.str)
	}
	return 0
}

func rank(k Kind) int {
	switch k {
	case Number:
		return 0
	case Text:
		return 1
	}
	return 2
}
