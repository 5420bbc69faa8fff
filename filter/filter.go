package filter

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	nt "studydash/entity"
	"studydash/message"
	"studydash/query"
	"studydash/style"
)

// FilterPanel edits the filter rows applied to the listing
type FilterPanel struct {
	rows          []row
	fields        []nt.Field
	selectedRow   int
	selectedField fieldType

	width  int
	height int
}

// row is a filter under edit, field -1 is the placeholder
type row struct {
	field   int
	pending string
	op      nt.FilterOp
	value   textInput
}

type fieldType int

const (
	fieldColumn fieldType = iota
	fieldOperator
	fieldValue
)

const notLoaded = "Filter columns not yet loaded. Please wait."

// NewFilterPanel starts with seed rows, resolved once fields arrive
func NewFilterPanel(seed []nt.Filter) FilterPanel {

	pnl := FilterPanel{}
	for _, filter := range seed {
		pnl.rows = append(pnl.rows, row{
			field:   -1,
			pending: filter.Field,
			op:      filter.Op,
			value:   newTextInput(filter.Value),
		})
	}
	return pnl
}

func (pnl FilterPanel) Update(msg tea.Msg) (FilterPanel, tea.Cmd) {
	switch msg := msg.(type) {

	case FieldsMsg:
		pnl = pnl.setFields(msg.Fields)

	case SizeMsg:
		pnl.width = msg.Width
		pnl.height = msg.Height

	case tea.KeyPressMsg:
		return pnl.handleKey(msg)
	}

	return pnl, nil
}

// Filters returns the rows as entered, placeholder columns included
func (pnl FilterPanel) Filters() []nt.Filter {

	filters := make([]nt.Filter, len(pnl.rows))
	for i, rw := range pnl.rows {
		filters[i] = nt.Filter{
			Field: pnl.rowName(rw),
			Op:    rw.op,
			Value: rw.value.String(),
		}
	}
	return filters
}

func (pnl FilterPanel) handleKey(msg tea.KeyPressMsg) (FilterPanel, tea.Cmd) {

	switch msg.String() {
	case "enter":
		return pnl, pnl.applyCmd()

	case "ctrl+n":
		if len(pnl.fields) == 0 {
			return pnl, message.ErrorfCmd(notLoaded)
		}
		pnl.rows = append(pnl.rows, newRow())
		pnl.selectedRow = len(pnl.rows) - 1
		pnl.selectedField = fieldColumn
		return pnl, nil

	case "ctrl+x":
		if pnl.selectedRow < len(pnl.rows) {
			pnl.rows = append(pnl.rows[:pnl.selectedRow:pnl.selectedRow], pnl.rows[pnl.selectedRow+1:]...)
		}
		if pnl.selectedRow >= len(pnl.rows) && pnl.selectedRow > 0 {
			pnl.selectedRow = len(pnl.rows) - 1
		}
		return pnl, nil

	case "ctrl+r":
		// Clear leaves one empty row and reloads unfiltered
		pnl.rows = []row{newRow()}
		pnl.selectedRow = 0
		pnl.selectedField = fieldColumn
		return pnl, pnl.applyCmd()

	case "tab":
		pnl.selectedField = (pnl.selectedField + 1) % 3
		return pnl, nil

	case "shift+tab":
		pnl.selectedField = (pnl.selectedField + 2) % 3
		return pnl, nil

	case "up":
		if pnl.selectedRow > 0 {
			pnl.selectedRow--
		}
		return pnl, nil

	case "down":
		if pnl.selectedRow < len(pnl.rows)-1 {
			pnl.selectedRow++
		}
		return pnl, nil
	}

	if pnl.selectedRow >= len(pnl.rows) {
		return pnl, nil
	}
	rw := &pnl.rows[pnl.selectedRow]

	switch pnl.selectedField {
	case fieldColumn:
		switch msg.String() {
		case "right", "l":
			rw.field = pnl.cycleField(rw.field, 1)
		case "left", "h":
			rw.field = pnl.cycleField(rw.field, -1)
		}

	case fieldOperator:
		switch msg.String() {
		case "right", "l":
			rw.op = cycleOp(rw.op, 1)
		case "left", "h":
			rw.op = cycleOp(rw.op, -1)
		}

	case fieldValue:
		rw.value = rw.value.update(msg)
	}

	return pnl, nil
}

func (pnl FilterPanel) applyCmd() tea.Cmd {
	filters := pnl.Filters()
	return func() tea.Msg {
		return message.SetFilterMsg{Filters: filters}
	}
}

// Render draws the filter rows in a bordered dialog
func (pnl FilterPanel) Render() string {
	var content strings.Builder

	content.WriteString("Filters:\n")
	if len(pnl.rows) == 0 {
		content.WriteString(style.MutedStyle.Render("  (no filters)") + "\n")
	}

	for i, rw := range pnl.rows {
		isSelected := i == pnl.selectedRow

		colStr := fmt.Sprintf("%-20.20s", pnl.rowName(rw))
		opStr := fmt.Sprintf("%-8s", rw.op.String())
		valStr := rw.value.render(isSelected && pnl.selectedField == fieldValue)

		if isSelected {
			switch pnl.selectedField {
			case fieldColumn:
				colStr = style.HlCellStyle.Render(colStr)
			case fieldOperator:
				opStr = style.HlCellStyle.Render(opStr)
			case fieldValue:
				valStr = style.HlCellStyle.Render(valStr)
			}
		}

		rowPrefix := "  "
		if isSelected {
			rowPrefix = "> "
		}

		content.WriteString(fmt.Sprintf("%s%s %s %s\n", rowPrefix, colStr, opStr, valStr))
	}

	// Context-aware help text
	var helpText string
	switch pnl.selectedField {
	case fieldColumn:
		helpText = "←→: column"
	case fieldOperator:
		helpText = "←→: operator"
	case fieldValue:
		helpText = "type: value"
	}
	helpText += "  Tab: next  ↑↓: row  ^N: add  ^X: remove  ^R: clear  Enter: apply  Esc: back"
	content.WriteString("\n" + style.MutedStyle.Render(helpText))

	width := 60
	if pnl.width > 8 {
		width = pnl.width - 4
	}

	dialogStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 2).
		Width(width)

	return dialogStyle.Render(content.String())
}

// unexported

func newRow() row {
	return row{field: -1, op: nt.Eq}
}

func (pnl FilterPanel) fieldName(idx int) string {
	if idx < 0 || idx >= len(pnl.fields) {
		return query.Placeholder
	}
	return pnl.fields[idx].Name
}

func (pnl FilterPanel) rowName(rw row) string {
	if rw.pending != "" {
		return rw.pending
	}
	return pnl.fieldName(rw.field)
}

// setFields resolves seeded rows by name and makes sure there is a row to edit
func (pnl FilterPanel) setFields(fields []nt.Field) FilterPanel {

	idxByName := map[string]int{}
	for i, field := range fields {
		idxByName[field.Name] = i
	}

	for i, rw := range pnl.rows {
		name := rw.pending
		if name == "" {
			name = pnl.fieldName(rw.field)
		}
		idx, ok := idxByName[name]
		if !ok {
			idx = -1
		}
		pnl.rows[i].field = idx
		pnl.rows[i].pending = ""
	}

	pnl.fields = fields

	if len(pnl.rows) == 0 {
		pnl.rows = []row{newRow()}
	}
	return pnl
}

// cycleField steps through the placeholder and every field
func (pnl FilterPanel) cycleField(idx, step int) int {
	options := len(pnl.fields) + 1
	pos := (idx + 1 + step + options) % options
	return pos - 1
}

func cycleOp(op nt.FilterOp, step int) nt.FilterOp {
	for i, candidate := range nt.Ops {
		if candidate == op {
			return nt.Ops[(i+step+len(nt.Ops))%len(nt.Ops)]
		}
	}
	return nt.Eq
}
