// Package resultpanel shows pages of matching documents.
package resultpanel

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	nt "vellum/entity"
	"vellum/message"
	"vellum/style"
)

const (
	headerHeight = 2
)

// PageMsg delivers a page of documents and the matching count
type PageMsg struct {
	Docs  []nt.Doc
	Count int
}

// ResetMsg signals to return to the top of the results
type ResetMsg struct{}

// Panel handles result display and navigation state
type Panel struct {
	selected int // Absolute position of selected doc
	offset   int // Offset of page shown
	total    int // Total docs matching the view

	width  int
	height int

	colFmts []colFmt
	docs    []nt.Doc
	table   *table.Table

	ctx    context.Context
	logger nt.Logger
}

// colFmt tracks order and width of columns to be shown
type colFmt struct {
	docIdx    int
	width     int
	fieldName string
}

func New(ctx context.Context, columns []nt.Column, fields []nt.Field, count int, lgr nt.Logger) Panel {

	lgt := table.New()
	styleTable(lgt)

	pnl := Panel{
		table:  lgt,
		total:  count,
		ctx:    ctx,
		logger: lgr,
	}

	pnl = pnl.setColumns(columns, fields)

	return pnl
}

// Total returns the count of matching documents.
func (pnl Panel) Total() int {
	return pnl.total
}

// Selected returns the absolute position of the selected document.
func (pnl Panel) Selected() int {
	return pnl.selected
}

// PageSize returns the number of rows that fit on panel
func (pnl Panel) PageSize() int {
	if pnl.height <= headerHeight {
		return 0
	}
	return pnl.height - headerHeight
}

func (pnl Panel) Update(msg tea.Msg) (Panel, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		pnl.width = msg.Width
		pnl.height = msg.Height

		if pnl.PageSize() > 0 {
			return pnl, message.GetPageCmd(pnl.offset, pnl.PageSize())
		}

	case PageMsg:
		pnl.docs = msg.Docs
		pnl.total = msg.Count
		if pnl.selected >= pnl.total && pnl.total > 0 {
			pnl.selected = pnl.total - 1
		}
		return pnl, nil

	case ResetMsg:
		pnl.selected = 0
		pnl.offset = 0
		return pnl, message.GetPageCmd(pnl.offset, pnl.PageSize())

	case tea.KeyPressMsg:
		return pnl.handleKey(msg)
	}

	return pnl, nil
}

func (pnl Panel) handleKey(msg tea.KeyPressMsg) (Panel, tea.Cmd) {

	pageSize := pnl.PageSize()

	switch msg.String() {
	case "up", "k":
		if pnl.selected > 0 {
			pnl.selected--
		}

	case "down", "j":
		if pnl.selected < pnl.total-1 {
			pnl.selected++
		}

	case "pgup":
		pnl.selected -= pageSize
		if pnl.selected < 0 {
			pnl.selected = 0
		}

	case "pgdown":
		pnl.selected += pageSize
		if pnl.selected >= pnl.total {
			pnl.selected = pnl.total - 1
		}

	case "g":
		pnl.selected = 0

	case "G":
		pnl.selected = pnl.total - 1
	}

	if pnl.selected < 0 {
		pnl.selected = 0
	}

	// keep the selection visible, fetching when we cross a page boundary
	oldOffset := pnl.offset
	if pnl.selected < pnl.offset {
		pnl.offset = pnl.selected
	} else if pageSize > 0 && pnl.selected >= pnl.offset+pageSize {
		pnl.offset = pnl.selected - pageSize + 1
	}

	if pnl.offset != oldOffset {
		return pnl, message.GetPageCmd(pnl.offset, pageSize)
	}

	return pnl, nil
}

// Render renders the result table with the current page
func (pnl Panel) Render() string {

	pnl.table.StyleFunc(style.RowStyler(pnl.selected - pnl.offset))

	pnl.table.ClearRows()
	for _, doc := range pnl.docs {
		pnl.table.Row(pnl.row(doc)...)
	}

	return pnl.table.Render()
}

// unexported

func (pnl Panel) row(doc nt.Doc) []string {
	row := make([]string, len(pnl.colFmts))
	for i, cf := range pnl.colFmts {
		cell := ""
		if cf.docIdx < len(doc) {
			cell = doc[cf.docIdx].String()
		}
		row[i] = truncate(cell, cf.width)
	}
	return row
}

func (pnl Panel) setColumns(columns []nt.Column, fields []nt.Field) Panel {

	idxByName := map[string]int{}
	for i, field := range fields {
		idxByName[field.Name] = i
	}

	colFmts := []colFmt{}
	for _, col := range columns {
		if col.Hidden {
			continue
		}

		idx, ok := idxByName[col.Field]
		if !ok {
			continue
		}

		colFmts = append(colFmts, colFmt{
			docIdx:    idx,
			width:     col.Width,
			fieldName: col.Field,
		})
	}

	var headers []string
	for _, cf := range colFmts {
		headers = append(headers, fmt.Sprintf("%-*s", cf.width+1, cf.fieldName))
	}

	pnl.table.Headers(headers...)
	pnl.colFmts = colFmts
	pnl.docs = nil // docs we had no longer match colFmts

	return pnl
}

func truncate(in string, width int) string {

	runes := []rune(in)
	if len(runes) <= width {
		return in
	}

	return string(runes[:width-1]) + style.MutedStyle.Render("…")
}

func styleTable(tbl *table.Table) {

	tbl.Border(lipgloss.Border{
		Top:         "─",
		Middle:      "─",
		MiddleLeft:  "─",
		MiddleRight: "─",
	}).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderStyle(style.BorderStyle)
}
