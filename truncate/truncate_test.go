// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package truncate

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/Syedabbasjarri1/sprung-energymodel-2/dataset"
)

func frame(col string, vals ...dataset.Value) *dataset.Frame {
	rows := make([]dataset.Row, len(vals))
	for i, v := range vals {
		rows[i] = dataset.Row{ID: i, Values: []dataset.Value{v}}
	}
	return dataset.NewFrame([]string{col}, rows)
}

func TestBuild(t *testing.T) {
	const p = "abcdefghijklmnopqrst" // 20 runes
	f := frame("c",
		dataset.Str(p+"uvwxy"),
		dataset.Str("short"),
		dataset.Str(p+"UVWXY"),
		dataset.Str(p+"uvwxy"),
		dataset.Num(42),
		dataset.Str(p),
		dataset.Str(p+"zzzzz"),
		dataset.Value{},
	)
	idx := Build(f)
	want := map[string]string{
		p + "uvwxy": p + "...",
		p + "UVWXY": p + "... 2...",
		p + "zzzzz": p + "... 3...",
	}
	if len(idx["c"]) != len(want) {
		t.Fatalf("index = %q; want %q", idx["c"], want)
	}
	for raw, disp := range want {
		if got := idx["c"][raw]; got != disp {
			t.Errorf("index[%q] = %q; want %q", raw, got, disp)
		}
	}

	got := idx.Apply(f)
	for i, w := range []string{p + "...", "short", p + "... 2...", p + "...", "42", p, p + "... 3...", ""} {
		if s := got.Row(i).Values[0].String(); s != w {
			t.Errorf("row %d displays %q; want %q", i, s, w)
		}
		if got.Row(i).ID != i {
			t.Errorf("row %d has ID %d", i, got.Row(i).ID)
		}
	}
	if k := got.Row(4).Values[0].Kind(); k != dataset.Number {
		t.Errorf("number became %v", k)
	}
}

func TestBuildRunes(t *testing.T) {
	s := strings.Repeat("é", 25)
	idx := Build(frame("c", dataset.Str(s)))
	if got, want := idx["c"][s], strings.Repeat("é", 20)+"..."; got != want {
		t.Fatalf("got %q; want %q", got, want)
	}
}

func TestBuildColumnsIndependent(t *testing.T) {
	long := strings.Repeat("x", 30)
	rows := []dataset.Row{
		{ID: 0, Values: []dataset.Value{dataset.Str(long), dataset.Str(long + "a")}},
		{ID: 1, Values: []dataset.Value{dataset.Str(long + "b"), dataset.Str(long)}},
	}
	idx := Build(dataset.NewFrame([]string{"a", "b"}, rows))
	base := strings.Repeat("x", 20) + "..."
	if idx["a"][long] != base || idx["b"][long+"a"] != base {
		t.Fatalf("first value of each column should get the plain ellipsis: %q", idx)
	}
	if idx["a"][long+"b"] != base+" 2..." || idx["b"][long] != base+" 2..." {
		t.Fatalf("second value of each column should be numbered: %q", idx)
	}
}

// TestBuildInjective checks that display strings never collide within
// a column, for values that share long prefixes.
func TestBuildInjective(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for iter := 0; iter < 50; iter++ {
		var vals []dataset.Value
		for i := 0; i < 40; i++ {
			n := 15 + r.Intn(15)
			s := strings.Repeat("a", n-3) + fmt.Sprintf("%03d", r.Intn(8))
			vals = append(vals, dataset.Str(s))
		}
		f := frame("c", vals...)
		out := Build(f).Apply(f)

		byDisplay := map[string]string{}
		byRaw := map[string]string{}
		for i := 0; i < f.Len(); i++ {
			raw := f.Row(i).Values[0].String()
			disp := out.Row(i).Values[0].String()
			if prev, ok := byDisplay[disp]; ok && prev != raw {
				t.Fatalf("%q and %q both display as %q", prev, raw, disp)
			}
			if prev, ok := byRaw[raw]; ok && prev != disp {
				t.Fatalf("%q displays as both %q and %q", raw, prev, disp)
			}
			byDisplay[disp], byRaw[raw] = raw, disp
		}
	}
}
