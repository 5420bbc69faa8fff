package table

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2/table"

	nt "studydash/entity"
	"studydash/message"
	"studydash/query"
	"studydash/style"
)

const (
	headerHeight = 2
	defaultWidth = 16
)

// TablePanel shows one page of listing lines at a time.
// Paging is done by the api, the panel only asks for pages.
type TablePanel struct {
	request  query.Request // request the shown page answers
	total    int           // records matching the request
	selected int           // line within page
	offset   int           // first line shown when the page outgrows the panel
	sizes    []int

	width  int
	height int

	ready   bool
	colFmts []colFmt
	lines   []nt.Line
	table   *table.Table
}

type colFmt struct {
	lineIdx   int
	width     int
	fieldName string
}

func NewTablePanel(request query.Request, sizes []int) TablePanel {

	lgt := table.New()
	style.StyleTable(lgt)

	return TablePanel{
		request: request,
		sizes:   sizes,
		table:   lgt,
	}
}

func (pnl TablePanel) Update(msg tea.Msg) (TablePanel, tea.Cmd) {
	switch msg := msg.(type) {

	case SizeMsg:
		pnl.width = msg.Width
		pnl.height = msg.Height
		pnl = pnl.scroll()

	case ColumnsMsg:
		pnl = pnl.setColumns(msg.Columns, msg.Fields)
		pnl.ready = true

	case PageMsg:
		pnl.request = msg.Request
		pnl.total = msg.Listing.Total
		pnl.lines = msg.Listing.Lines
		pnl.selected = 0
		pnl.offset = 0
		return pnl, pnl.selectedCmd()

	case tea.KeyPressMsg:
		if !pnl.ready {
			return pnl, nil
		}
		return pnl.handleKey(msg)
	}

	return pnl, nil
}

func (pnl TablePanel) handleKey(msg tea.KeyPressMsg) (TablePanel, tea.Cmd) {

	page := pnl.request.Page
	pages := pnl.request.Pages(pnl.total)

	switch msg.String() {
	case "up", "k":
		if pnl.selected > 0 {
			pnl.selected--
		}

	case "down", "j":
		if pnl.selected < len(pnl.lines)-1 {
			pnl.selected++
		}

	case "n", "pgdown", "ctrl+d":
		if page < pages {
			return pnl, message.GetPageCmd(page+1, pnl.request.Size)
		}

	case "b", "pgup", "ctrl+u":
		if page > 1 {
			return pnl, message.GetPageCmd(page-1, pnl.request.Size)
		}

	case "g", "home":
		if page != 1 {
			return pnl, message.GetPageCmd(1, pnl.request.Size)
		}

	case "G", "end":
		if page != pages {
			return pnl, message.GetPageCmd(pages, pnl.request.Size)
		}

	case "r", "ctrl+l":
		// refetch as is, after a failed page
		return pnl, message.GetPageCmd(page, pnl.request.Size)

	case "+", "=":
		return pnl, message.GetPageCmd(1, pnl.nextSize(1))

	case "-", "_":
		return pnl, message.GetPageCmd(1, pnl.nextSize(-1))

	default:
		return pnl, nil
	}

	pnl = pnl.scroll()
	return pnl, pnl.selectedCmd()
}

// Render renders the table with the current page
func (pnl TablePanel) Render() string {

	if !pnl.ready {
		return "Loading..."
	}

	pnl.table.StyleFunc(style.RowStyler(pnl.selected - pnl.offset))

	pnl.table.ClearRows()
	end := min(pnl.offset+pnl.visible(), len(pnl.lines))
	for _, line := range pnl.lines[pnl.offset:end] {
		pnl.table.Row(pnl.row(line)...)
	}

	return pnl.table.Render()
}

// Selected returns the line under the cursor
func (pnl TablePanel) Selected() (line nt.Line, ok bool) {
	if pnl.selected < 0 || pnl.selected >= len(pnl.lines) {
		return
	}
	return pnl.lines[pnl.selected], true
}

// Status describes the position in the listing
func (pnl TablePanel) Status() string {
	return fmt.Sprintf("page %d/%d  %d rows of %d  size %d",
		pnl.request.Page, pnl.request.Pages(pnl.total),
		len(pnl.lines), pnl.total, pnl.request.Size)
}

// unexported

func (pnl TablePanel) selectedCmd() tea.Cmd {

	line, ok := pnl.Selected()
	if !ok {
		return nil
	}

	row := (pnl.request.Page-1)*pnl.request.Size + pnl.selected + 1
	return func() tea.Msg {
		return message.SelectedMsg{Row: row, Line: line}
	}
}

// visible returns the number of lines that fit under the header
func (pnl TablePanel) visible() int {
	if pnl.height <= headerHeight {
		return len(pnl.lines)
	}
	return pnl.height - headerHeight
}

// scroll keeps the selected line on screen
func (pnl TablePanel) scroll() TablePanel {

	visible := pnl.visible()
	if pnl.selected < pnl.offset {
		pnl.offset = pnl.selected
	} else if pnl.selected >= pnl.offset+visible {
		pnl.offset = pnl.selected - visible + 1
	}
	return pnl
}

func (pnl TablePanel) nextSize(step int) int {

	if len(pnl.sizes) == 0 {
		return pnl.request.Size
	}

	idx := 0
	for i, size := range pnl.sizes {
		if size == pnl.request.Size {
			idx = i
			break
		}
	}

	idx = (idx + step + len(pnl.sizes)) % len(pnl.sizes)
	return pnl.sizes[idx]
}

func (pnl TablePanel) row(line nt.Line) []string {
	row := make([]string, len(pnl.colFmts))
	for i, colFmt := range pnl.colFmts {
		if colFmt.lineIdx >= len(line) {
			continue
		}
		row[i] = style.Truncate(line[colFmt.lineIdx].String(), colFmt.width)
	}
	return row
}

// setColumns resolves columns against fields, skipping those the api lacks.
// With no columns configured every field is shown.
func (pnl TablePanel) setColumns(columns []nt.Column, fields []nt.Field) TablePanel {

	idxByName := map[string]int{}
	for i, field := range fields {
		idxByName[field.Name] = i
	}

	if len(columns) == 0 {
		for _, field := range fields {
			columns = append(columns, nt.Column{Field: field.Name})
		}
	}

	colFmts := []colFmt{}
	for _, col := range columns {
		idx, ok := idxByName[col.Field]
		if !ok {
			continue
		}

		width := col.Width
		if width <= 0 {
			width = defaultWidth
		}

		colFmts = append(colFmts, colFmt{
			lineIdx:   idx,
			width:     width,
			fieldName: col.Field,
		})
	}

	var headers []string
	for _, colFmt := range colFmts {
		padded := fmt.Sprintf("%-*.*s", colFmt.width+1, colFmt.width, colFmt.fieldName)
		headers = append(headers, padded)
	}

	pnl.table.Headers(headers...)
	pnl.colFmts = colFmts
	pnl.lines = nil // lines we had no longer match colFmts

	return pnl
}
