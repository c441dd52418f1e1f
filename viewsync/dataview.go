// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewsync

import (
	"fmt"
	"slices"

	"github.com/Syedabbasjarri1/sprung-energymodel-2/dataset"
)

// DataView is the row model behind a Grid. It holds the grid's items,
// optionally split into pages, and notifies the grid when the visible
// rows change.
type DataView struct {
	items    []dataset.Row
	visible  []dataset.Row
	updating int
	pageSize int
	pageNum  int

	RowCountChanged   Event[RowCountChange]
	RowsChanged       Event[RowsChange]
	PagingInfoChanged Event[PagingInfo]
}

// RowCountChange reports a change in the number of visible rows.
type RowCountChange struct {
	Previous, Current int
}

// RowsChange lists the visible row indexes whose items changed.
type RowsChange struct {
	Rows []int
}

// PagingInfo describes the current page.
type PagingInfo struct {
	PageSize   int // 0 means a single page of every row
	PageNum    int // 0-based
	TotalRows  int
	TotalPages int
}

func NewDataView() *DataView {
	return &DataView{}
}

// BeginUpdate suspends notifications until the matching EndUpdate.
func (v *DataView) BeginUpdate() {
	v.updating++
}

func (v *DataView) EndUpdate() {
	v.updating--
	if v.updating <= 0 {
		v.updating = 0
		v.refresh()
	}
}

// SetItems replaces the items of v.
func (v *DataView) SetItems(rows []dataset.Row) {
	v.items = append([]dataset.Row(nil), rows...)
	v.refresh()
}

// Items returns every item, across all pages.
func (v *DataView) Items() []dataset.Row {
	return v.items
}

// Sort stably sorts the items with cmp.
func (v *DataView) Sort(cmp func(a, b dataset.Row) int) {
	slices.SortStableFunc(v.items, cmp)
	v.refresh()
}

// Len returns the number of rows on the current page.
func (v *DataView) Len() int {
	return len(v.visible)
}

// Item returns row i of the current page.
func (v *DataView) Item(i int) (dataset.Row, bool) {
	if i < 0 || i >= len(v.visible) {
		return dataset.Row{}, false
	}
	return v.visible[i], true
}

// SetPaging shows page num of size rows each. A size of 0 shows every
// row on one page. num is clamped to the available pages.
func (v *DataView) SetPaging(size, num int) {
	if size < 0 {
		size = 0
	}
	v.pageSize, v.pageNum = size, num
	v.refresh()
}

func (v *DataView) Paging() PagingInfo {
	info := PagingInfo{PageSize: v.pageSize, PageNum: v.pageNum, TotalRows: len(v.items), TotalPages: 1}
	if v.pageSize > 0 {
		info.TotalPages = max(1, (len(v.items)+v.pageSize-1)/v.pageSize)
	}
	return info
}

func (v *DataView) refresh() {
	if v.updating > 0 {
		return
	}
	info := v.Paging()
	v.pageNum = min(max(v.pageNum, 0), info.TotalPages-1)
	info.PageNum = v.pageNum

	next := v.items
	if v.pageSize > 0 {
		lo := v.pageNum * v.pageSize
		hi := min(lo+v.pageSize, len(v.items))
		next = v.items[lo:hi]
	}
	prev := v.visible
	v.visible = append([]dataset.Row(nil), next...)

	var changed []int
	for i, r := range v.visible {
		if i >= len(prev) || prev[i].ID != r.ID {
			changed = append(changed, i)
		}
	}

	v.PagingInfoChanged.Notify(info)
	if len(prev) != len(v.visible) {
		v.RowCountChanged.Notify(RowCountChange{len(prev), len(v.visible)})
	}
	if len(changed) > 0 {
		v.RowsChanged.Notify(RowsChange{changed})
	}
}

// Pager is the paging control of a DataView.
type Pager struct {
	view *DataView
}

func NewPager(v *DataView) *Pager {
	return &Pager{v}
}

// SetPageSize shows n rows per page, starting again at the first
// page. 0 shows every row.
func (p *Pager) SetPageSize(n int) {
	p.view.SetPaging(n, 0)
}

func (p *Pager) First() { p.Goto(0) }
func (p *Pager) Last()  { p.Goto(p.view.Paging().TotalPages - 1) }
func (p *Pager) Next()  { p.Goto(p.view.pageNum + 1) }
func (p *Pager) Prev()  { p.Goto(p.view.pageNum - 1) }

// Goto shows page num, clamped to the available pages.
func (p *Pager) Goto(num int) {
	p.view.SetPaging(p.view.pageSize, num)
}

// Status describes the current page for display.
func (p *Pager) Status() string {
	info := p.view.Paging()
	if info.PageSize == 0 {
		return fmt.Sprintf("Showing all %d rows", info.TotalRows)
	}
	return fmt.Sprintf("Showing page %d of %d", info.PageNum+1, info.TotalPages)
}
