package filter

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nt "studydash/entity"
	"studydash/message"
	"studydash/query"
)

var fields = []nt.Field{
	{Name: "Study", Type: "string"},
	{Name: "PMID", Type: "number"},
	{Name: "Harm_status", Type: "string"},
}

func press(code rune, mod tea.KeyMod) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code, Mod: mod}
}

func typed(text string) (msgs []tea.KeyPressMsg) {
	for _, r := range text {
		msgs = append(msgs, tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	return
}

func send(t *testing.T, pnl FilterPanel, msgs ...tea.KeyPressMsg) FilterPanel {
	t.Helper()

	for _, msg := range msgs {
		pnl, _ = pnl.Update(msg)
	}
	return pnl
}

func applied(t *testing.T, cmd tea.Cmd) []nt.Filter {
	t.Helper()

	require.NotNil(t, cmd)
	msg, ok := cmd().(message.SetFilterMsg)
	require.True(t, ok)
	return msg.Filters
}

func TestFieldsMsg(t *testing.T) {

	t.Run("empty panel gets one placeholder row", func(t *testing.T) {
		pnl, _ := NewFilterPanel(nil).Update(FieldsMsg{Fields: fields})

		assert.Equal(t, []nt.Filter{{Field: query.Placeholder, Op: nt.Eq}}, pnl.Filters())
	})

	t.Run("seeded rows resolve by name", func(t *testing.T) {
		pnl := NewFilterPanel([]nt.Filter{
			{Field: "Harm_status", Op: nt.Ne, Value: "DONE"},
			{Field: "Bogus", Op: nt.Eq, Value: "x"},
		})
		pnl, _ = pnl.Update(FieldsMsg{Fields: fields})

		assert.Equal(t, []nt.Filter{
			{Field: "Harm_status", Op: nt.Ne, Value: "DONE"},
			{Field: query.Placeholder, Op: nt.Eq, Value: "x"},
		}, pnl.Filters())
	})
}

func TestAddBeforeFields(t *testing.T) {

	pnl := NewFilterPanel(nil)
	pnl, cmd := pnl.Update(press('n', tea.ModCtrl))

	require.NotNil(t, cmd)
	msg, ok := cmd().(message.ErrorMsg)
	require.True(t, ok)
	assert.EqualError(t, msg.Err, "Filter columns not yet loaded. Please wait.")
	assert.Empty(t, pnl.Filters())
}

func TestEditAndApply(t *testing.T) {

	pnl, _ := NewFilterPanel(nil).Update(FieldsMsg{Fields: fields})

	// column: placeholder -> Study
	pnl = send(t, pnl, press(tea.KeyRight, 0))
	// operator: = -> contains, backwards
	pnl = send(t, pnl, press(tea.KeyTab, 0), press(tea.KeyLeft, 0))
	// value
	pnl = send(t, pnl, press(tea.KeyTab, 0))
	pnl = send(t, pnl, typed("GCST")...)

	_, cmd := pnl.Update(press(tea.KeyEnter, 0))
	filters := applied(t, cmd)

	assert.Equal(t, []nt.Filter{{Field: "Study", Op: nt.Contains, Value: "GCST"}}, filters)
	assert.Equal(t, "Study~GCST", query.Serialize(filters))
}

func TestAddDeleteClear(t *testing.T) {

	pnl, _ := NewFilterPanel(nil).Update(FieldsMsg{Fields: fields})

	pnl = send(t, pnl, press('n', tea.ModCtrl), press(tea.KeyRight, 0), press(tea.KeyRight, 0))
	require.Len(t, pnl.Filters(), 2)
	assert.Equal(t, "PMID", pnl.Filters()[1].Field)

	pnl = send(t, pnl, press(tea.KeyUp, 0), press('x', tea.ModCtrl))
	assert.Equal(t, []nt.Filter{{Field: "PMID", Op: nt.Eq}}, pnl.Filters())

	pnl = send(t, pnl, press(tea.KeyTab, 0), press(tea.KeyTab, 0))
	pnl = send(t, pnl, typed("123")...)
	assert.Equal(t, "PMID=123", query.Serialize(pnl.Filters()))

	pnl, cmd := pnl.Update(press('r', tea.ModCtrl))
	assert.Equal(t, []nt.Filter{{Field: query.Placeholder, Op: nt.Eq}}, applied(t, cmd))
	assert.Equal(t, "", query.Serialize(pnl.Filters()))
}

func TestCycleField(t *testing.T) {

	pnl, _ := NewFilterPanel(nil).Update(FieldsMsg{Fields: fields})

	// wraps from placeholder back to the last field
	pnl = send(t, pnl, press(tea.KeyLeft, 0))
	assert.Equal(t, "Harm_status", pnl.Filters()[0].Field)

	pnl = send(t, pnl, press(tea.KeyRight, 0))
	assert.Equal(t, query.Placeholder, pnl.Filters()[0].Field)
}

func TestValueEditing(t *testing.T) {

	pnl, _ := NewFilterPanel([]nt.Filter{{Field: "Study", Value: "GCSX"}}).Update(FieldsMsg{Fields: fields})
	pnl = send(t, pnl, press(tea.KeyTab, 0), press(tea.KeyTab, 0))

	pnl = send(t, pnl, press(tea.KeyBackspace, 0))
	pnl = send(t, pnl, typed("T")...)
	assert.Equal(t, "GCST", pnl.Filters()[0].Value)

	pnl = send(t, pnl, press(tea.KeyHome, 0))
	pnl = send(t, pnl, typed(">")...)
	assert.Equal(t, ">GCST", pnl.Filters()[0].Value)
}

func TestRender(t *testing.T) {

	pnl, _ := NewFilterPanel([]nt.Filter{{Field: "Study", Op: nt.Contains, Value: "GCST"}}).Update(FieldsMsg{Fields: fields})
	pnl, _ = pnl.Update(SizeMsg{Width: 80, Height: 20})

	out := pnl.Render()
	assert.Contains(t, out, "Filters:")
	assert.Contains(t, out, "Study")
	assert.Contains(t, out, "contains")
	assert.Contains(t, out, "GCST")
}
