package table

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nt "studydash/entity"
	"studydash/message"
	"studydash/query"
)

func key(s string) tea.KeyPressMsg {
	switch s {
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	}
	return tea.KeyPressMsg{Code: rune(s[0]), Text: s}
}

func line(vals ...any) nt.Line {
	ln := nt.Line{}
	for _, val := range vals {
		ln = append(ln, nt.Value{Raw: val})
	}
	return ln
}

var fields = []nt.Field{{Name: "Study"}, {Name: "PMID"}, {Name: "Harm_status"}}

func loaded(t *testing.T, page, total int) TablePanel {
	t.Helper()

	pnl := NewTablePanel(query.NewRequest(10), []int{10, 50, 100})
	pnl, _ = pnl.Update(ColumnsMsg{
		Columns: []nt.Column{{Field: "Study", Width: 10}, {Field: "Missing"}, {Field: "Harm_status", Width: 12}},
		Fields:  fields,
	})
	pnl, _ = pnl.Update(SizeMsg{Width: 80, Height: 20})
	pnl, _ = pnl.Update(PageMsg{
		Request: query.NewRequest(10).WithPage(page),
		Listing: nt.Listing{
			Total: total,
			Lines: []nt.Line{
				line("GCST001", 111.0, "harmonised"),
				line("GCST002", 222.0, "backlog"),
			},
		},
	})
	return pnl
}

func getPage(t *testing.T, cmd tea.Cmd) message.GetPageMsg {
	t.Helper()

	require.NotNil(t, cmd)
	msg, ok := cmd().(message.GetPageMsg)
	require.True(t, ok)
	return msg
}

func TestNotReady(t *testing.T) {

	pnl := NewTablePanel(query.NewRequest(10), nil)
	assert.Equal(t, "Loading...", pnl.Render())

	_, cmd := pnl.Update(key("n"))
	assert.Nil(t, cmd)
}

func TestRender(t *testing.T) {

	pnl := loaded(t, 1, 2)
	out := pnl.Render()

	assert.Contains(t, out, "Study")
	assert.Contains(t, out, "Harm_status")
	assert.NotContains(t, out, "Missing")
	assert.NotContains(t, out, "PMID")
	assert.Contains(t, out, "GCST002")
	assert.Contains(t, out, "backlog")
}

func TestPaging(t *testing.T) {

	pnl := loaded(t, 2, 35) // four pages of ten

	_, cmd := pnl.Update(key("n"))
	assert.Equal(t, message.GetPageMsg{Page: 3, Size: 10}, getPage(t, cmd))

	_, cmd = pnl.Update(key("b"))
	assert.Equal(t, message.GetPageMsg{Page: 1, Size: 10}, getPage(t, cmd))

	_, cmd = pnl.Update(key("G"))
	assert.Equal(t, message.GetPageMsg{Page: 4, Size: 10}, getPage(t, cmd))

	_, cmd = pnl.Update(key("g"))
	assert.Equal(t, message.GetPageMsg{Page: 1, Size: 10}, getPage(t, cmd))

	_, cmd = pnl.Update(key("+"))
	assert.Equal(t, message.GetPageMsg{Page: 1, Size: 50}, getPage(t, cmd))

	_, cmd = pnl.Update(key("-"))
	assert.Equal(t, message.GetPageMsg{Page: 1, Size: 100}, getPage(t, cmd))
}

func TestRefresh(t *testing.T) {

	pnl := loaded(t, 3, 35)

	// a failed fetch leaves the requested page with nothing in it
	pnl, _ = pnl.Update(PageMsg{Request: query.NewRequest(10).WithPage(3)})
	assert.Equal(t, "page 3/1  0 rows of 0  size 10", pnl.Status())

	_, cmd := pnl.Update(key("r"))
	assert.Equal(t, message.GetPageMsg{Page: 3, Size: 10}, getPage(t, cmd))
}

func TestPagingAtEdges(t *testing.T) {

	pnl := loaded(t, 1, 2)

	_, cmd := pnl.Update(key("n"))
	if cmd != nil {
		_, isPage := cmd().(message.GetPageMsg)
		assert.False(t, isPage)
	}

	_, cmd = pnl.Update(key("b"))
	if cmd != nil {
		_, isPage := cmd().(message.GetPageMsg)
		assert.False(t, isPage)
	}
}

func TestSelection(t *testing.T) {

	pnl := loaded(t, 3, 35)

	pnl, cmd := pnl.Update(key("down"))
	require.NotNil(t, cmd)
	selected, ok := cmd().(message.SelectedMsg)
	require.True(t, ok)
	assert.Equal(t, 22, selected.Row)
	assert.Equal(t, "GCST002", selected.Line[0].String())

	// already at bottom of page
	pnl, _ = pnl.Update(key("down"))
	got, ok := pnl.Selected()
	require.True(t, ok)
	assert.Equal(t, "GCST002", got[0].String())

	pnl, _ = pnl.Update(key("up"))
	got, _ = pnl.Selected()
	assert.Equal(t, "GCST001", got[0].String())
}

func TestEmptyPage(t *testing.T) {

	pnl := loaded(t, 1, 2)
	pnl, _ = pnl.Update(PageMsg{Request: query.NewRequest(10)})

	_, ok := pnl.Selected()
	assert.False(t, ok)
	assert.Equal(t, "page 1/1  0 rows of 0  size 10", pnl.Status())
	assert.NotContains(t, pnl.Render(), "GCST001")
}
