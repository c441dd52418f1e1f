// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command pcview explores a CSV table as a linked parallel-coordinates
// plot and data grid.
//
// pcview loads the table, applies the column selection and color
// column, replays any brushes, sort, and hover given on the command
// line, and then prints the grid's current page. With -o it also
// writes the plot as SVG, and with -legend the color scale as PNG.
//
// By default pcview expects a permutation table: rows are colored by
// the "Permutation #" column, the baseline run (permutation 0) is
// dropped, and the "name" column is not drawn as an axis. Use -color,
// -baseline "" and -exclude "" for other tables.
//
// For example,
//
//	pcview -cols 'name "Permutation #" score' -brush score=10:20 -sort score -desc -o plot.svg runs.csv
package main

import (
	"flag"
	"fmt"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"

	"github.com/Syedabbasjarri1/sprung-energymodel-2/dataset"
	"github.com/Syedabbasjarri1/sprung-energymodel-2/internal/svgplot"
	"github.com/Syedabbasjarri1/sprung-energymodel-2/internal/textgrid"
	"github.com/Syedabbasjarri1/sprung-energymodel-2/selection"
	"github.com/Syedabbasjarri1/sprung-energymodel-2/viewsync"
)

func main() {
	log.SetPrefix("pcview: ")
	log.SetFlags(0)

	var brushes brushFlag
	var (
		flagCPUProfile = flag.String("cpuprofile", "", "write CPU profile to `file`")
		flagMemProfile = flag.String("memprofile", "", "write heap profile to `file`")
		flagCols       = flag.String("cols", "", "shell-quoted `list` of columns to show (default: all)")
		flagColsFile   = flag.String("cols-file", "", "read columns to show from `file`, one per line")
		flagColor      = flag.String("color", viewsync.DefaultColorColumn, "color rows by `column`")
		flagExclude    = flag.String("exclude", "name", "shell-quoted `list` of columns not drawn as axes")
		flagBaseline   = flag.String("baseline", selection.DefaultBaselineColumn, "drop rows where `column` is 0 (\"\" keeps every row)")
		flagSort       = flag.String("sort", "", "sort the grid by `column`")
		flagDesc       = flag.Bool("desc", false, "sort descending")
		flagHover      = flag.Int("hover", -1, "hover over grid `row` of the current page")
		flagPage       = flag.Int("page", 0, "show `n` grid rows per page (default: terminal height)")
		flagPageNum    = flag.Int("pagenum", 1, "show grid page `n`")
		flagOut        = flag.String("o", "", "write the plot as SVG to `file`")
		flagWidth      = flag.Int("width", 0, "plot width in pixels")
		flagHeight     = flag.Int("height", 0, "plot height in pixels")
		flagLegend     = flag.String("legend", "", "write the color scale as PNG to `file`")
		flagExport     = flag.String("export", "", "write the table as CSV to `file` (or "+dataset.ExportName+" in a directory)")
		flagXLSX       = flag.String("xlsx", "", "write the table as a spreadsheet to `file`")
		flagTable      = flag.Bool("table", false, "print the loaded table and exit")
		flagVerbose    = flag.Bool("v", false, "log view state changes")
	)
	flag.Var(&brushes, "brush", "brush `axis=lo:hi` (repeatable)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] data.csv\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if *flagCPUProfile != "" {
		f, err := os.Create(*flagCPUProfile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if *flagMemProfile != "" {
		defer func() {
			runtime.GC()
			f, err := os.Create(*flagMemProfile)
			if err != nil {
				log.Fatal(err)
			}
			pprof.WriteHeapProfile(f)
			f.Close()
		}()
	}

	d := load(flag.Arg(0))

	if *flagTable {
		dataset.Fprint(os.Stdout, d)
		return
	}

	// Configure the explorer.
	cfg := viewsync.Config{
		DefaultColor:   *flagColor,
		BaselineColumn: *flagBaseline,
		PageSize:       *flagPage,
	}
	var err error
	if cfg.DefaultColumns, err = splitColumns(*flagCols); err != nil {
		log.Fatalf("-cols: %v", err)
	}
	if *flagColsFile != "" {
		cfg.DefaultColumns = readColumns(*flagColsFile)
	}
	if cfg.ExcludedAxes, err = splitColumns(*flagExclude); err != nil {
		log.Fatalf("-exclude: %v", err)
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = defaultPageSize(int(os.Stdout.Fd()))
	}
	if *flagVerbose {
		cfg.Logger = log.New(os.Stderr, "pcview: ", 0)
	}

	app, err := viewsync.New(d, cfg, svgplot.New(svgplot.Options{Width: *flagWidth, Height: *flagHeight}), textgrid.New())
	if err != nil {
		log.Fatal(err)
	}
	defer app.Close()
	sess := app.Session()
	plot := sess.Plot.(*svgplot.Plot)
	grid := sess.Grid.(*textgrid.Grid)

	// Replay user interactions.
	for _, b := range brushes {
		if err := plot.Brush(b.axis, dataset.Parse(b.lo), dataset.Parse(b.hi)); err != nil {
			log.Fatalf("-brush: %v", err)
		}
	}
	if *flagSort != "" {
		if err := sortGrid(grid, *flagSort, *flagDesc); err != nil {
			log.Fatalf("-sort: %v", err)
		}
	}
	sess.Pager.Goto(*flagPageNum - 1)
	if *flagHover >= 0 {
		grid.MouseEnter(*flagHover)
		if id, ok := sess.Highlighted(); ok {
			log.Printf("highlighted row %d", id)
		}
	}

	// Output.
	if err := grid.Fprint(os.Stdout); err != nil {
		log.Fatal(err)
	}
	if *flagOut != "" {
		create(*flagOut, plot.WriteSVG)
	}
	if *flagLegend != "" {
		create(*flagLegend, func(w io.Writer) error { return png.Encode(w, sess.Scale.Legend(256, 16)) })
	}
	if *flagExport != "" {
		path := *flagExport
		if st, err := os.Stat(path); err == nil && st.IsDir() {
			path = filepath.Join(path, dataset.ExportName)
		}
		create(path, func(w io.Writer) error { return dataset.WriteCSV(w, d) })
	}
	if *flagXLSX != "" {
		create(*flagXLSX, func(w io.Writer) error { return dataset.WriteXLSX(w, d) })
	}
}

// sortGrid clicks the header of col once, or twice for a descending
// sort.
func sortGrid(g *textgrid.Grid, col string, desc bool) error {
	if err := g.ClickHeader(col); err != nil {
		return err
	}
	if desc {
		return g.ClickHeader(col)
	}
	return nil
}

func load(path string) *dataset.Dataset {
	f, err := os.Open(path)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	d, err := dataset.Load(f)
	if err != nil {
		log.Fatalf("%s: %v", path, err)
	}
	return d
}

func readColumns(path string) []string {
	f, err := os.Open(path)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	cols, err := selection.ParseDefaults(f)
	if err != nil {
		log.Fatalf("%s: %v", path, err)
	}
	return cols
}

// create writes path with write, exiting on any error.
func create(path string, write func(io.Writer) error) {
	f, err := os.Create(path)
	if err != nil {
		log.Fatal(err)
	}
	if err := write(f); err != nil {
		f.Close()
		log.Fatalf("%s: %v", path, err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}
}
