// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package selection

import (
	"reflect"
	"strings"
	"testing"

	"github.com/Syedabbasjarri1/sprung-energymodel-2/dataset"
)

func load(t *testing.T, csv string) *dataset.Dataset {
	t.Helper()
	d, err := dataset.Load(strings.NewReader(csv))
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestSummary(t *testing.T) {
	s := New([]string{"a", "b", "c"}, nil)
	for _, test := range []struct {
		toggle string
		want   string
	}{
		{"", "Nothing is selected"},
		{"b", "1 column selected"},
		{"a", "2 columns selected"},
		{"c", "3 columns selected"},
		{"b", "2 columns selected"},
		{"nope", "2 columns selected"},
	} {
		if test.toggle != "" {
			s.Toggle(test.toggle)
		}
		if got := s.Summary(); got != test.want {
			t.Errorf("after toggling %q: Summary() = %q; want %q", test.toggle, got, test.want)
		}
	}
	if want := []string{"a", "c"}; !reflect.DeepEqual(s.Columns(), want) {
		t.Errorf("Columns() = %v; want %v", s.Columns(), want)
	}
}

func TestChecklist(t *testing.T) {
	s := New([]string{"a", "b", "c"}, []string{"c", "x", "a"})
	want := []Option{{"a", true}, {"b", false}, {"c", true}}
	if got := s.Checklist(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Checklist() = %v; want %v", got, want)
	}
	s.Reset([]string{"b"})
	if want := []string{"b"}; !reflect.DeepEqual(s.Columns(), want) {
		t.Fatalf("after Reset, Columns() = %v; want %v", s.Columns(), want)
	}
}

func TestParseDefaults(t *testing.T) {
	got, err := ParseDefaults(strings.NewReader("A\r\nPermutation #\n\n name\n"))
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "Permutation #", " name"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("ParseDefaults = %q; want %q", got, want)
	}
}

func TestProject(t *testing.T) {
	d := load(t, "A,name,Permutation #,B\n1,x,0,p\n5,y,1,q\n9,z,2,r\n7,w,,s\n")

	for _, test := range []struct {
		sel  []string
		keep Keep
		cols []string
		ids  []int
	}{
		{[]string{"B", "A"}, nil, []string{"A", "B"}, []int{0, 1, 2, 3}},
		{[]string{"B", "A"}, Baseline(DefaultBaselineColumn), []string{"A", "B"}, []int{1, 2, 3}},
		// The baseline is dropped even when its column is hidden.
		{[]string{"name"}, Baseline(DefaultBaselineColumn), []string{"name"}, []int{1, 2, 3}},
		{nil, Baseline(DefaultBaselineColumn), nil, []int{1, 2, 3}},
	} {
		f := Project(d, New(d.Columns(), test.sel), test.keep)
		if !reflect.DeepEqual(f.Columns(), test.cols) {
			t.Errorf("selection %v: columns %v; want %v", test.sel, f.Columns(), test.cols)
		}
		var ids []int
		for _, r := range f.Rows() {
			ids = append(ids, r.ID)
			if len(r.Values) != len(test.cols) {
				t.Errorf("selection %v: row %d has %d values", test.sel, r.ID, len(r.Values))
			}
			for j, c := range test.cols {
				if !r.Values[j].Equal(d.Value(r.ID, c)) {
					t.Errorf("selection %v: row %d column %q = %v; want %v", test.sel, r.ID, c, r.Values[j], d.Value(r.ID, c))
				}
			}
		}
		if !reflect.DeepEqual(ids, test.ids) {
			t.Errorf("selection %v: rows %v; want %v", test.sel, ids, test.ids)
		}
	}
}
