// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/kballard/go-shellquote"
	"golang.org/x/term"
)

// brushFlag collects repeated -brush axis=lo:hi flags.
type brushFlag []brush

type brush struct {
	axis, lo, hi string
}

func (f *brushFlag) String() string {
	var parts []string
	for _, b := range *f {
		parts = append(parts, b.axis+"="+b.lo+":"+b.hi)
	}
	return strings.Join(parts, " ")
}

func (f *brushFlag) Set(s string) error {
	axis, rng, ok := strings.Cut(s, "=")
	if !ok || axis == "" {
		return fmt.Errorf("brush %q: want axis=lo:hi", s)
	}
	lo, hi, ok := strings.Cut(rng, ":")
	if !ok {
		return fmt.Errorf("brush %q: want axis=lo:hi", s)
	}
	*f = append(*f, brush{axis, lo, hi})
	return nil
}

// splitColumns splits a shell-quoted column list. An empty list is
// nil.
func splitColumns(s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	return shellquote.Split(s)
}

// defaultPageSize is the grid page size when none is given: enough
// rows to fill a terminal on stdout, or 25.
func defaultPageSize(fd int) int {
	const fallback, chrome = 25, 4
	if !term.IsTerminal(fd) {
		return fallback
	}
	_, height, err := term.GetSize(fd)
	if err != nil || height <= chrome {
		return fallback
	}
	return height - chrome
}
