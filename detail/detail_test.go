package detail

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nt "studydash/entity"
)

var fields = []nt.Field{
	{Name: "Study", Type: "string"},
	{Name: "PMID", Type: "number"},
	{Name: "Harm_status", Type: "string"},
	{Name: "Meta", Type: "string"},
}

var line = nt.Line{
	{Raw: "GCST90000123"},
	{Raw: float64(31234567)},
	{Raw: "harmonised"},
	{Raw: `{"a":1}`},
}

func TestRender(t *testing.T) {

	content, err := render(fields, line)
	require.NoError(t, err)

	assert.Equal(t, strings.Join([]string{
		`{`,
		`  "Study": "GCST90000123",`,
		`  "PMID": 31234567,`,
		`  "Harm_status": "harmonised",`,
		`  "Meta": {`,
		`    "a": 1`,
		`  }`,
		`}`,
	}, "\n"), content)
}

func TestRenderNull(t *testing.T) {

	content, err := render(fields[:2], nt.Line{{Raw: "x<y"}, {Raw: nil}})
	require.NoError(t, err)

	assert.Equal(t, "{\n  \"Study\": \"x<y\",\n  \"PMID\": null\n}", content)
}

func TestExpand(t *testing.T) {

	assert.Equal(t, "plain", expand("plain"))
	assert.Equal(t, "[not json", expand("[not json"))
	assert.Equal(t, []any{float64(1), "b"}, expand(`[1,"b"]`))
	assert.Equal(t, float64(3), expand(float64(3)))
}

func TestPanel(t *testing.T) {

	pnl := NewDetailPanel(fields)
	assert.Contains(t, pnl.Render(), "No record selected.")

	pnl, _ = pnl.Update(SizeMsg{Width: 80, Height: 3})
	pnl, _ = pnl.Update(LineMsg{Line: line})

	assert.Equal(t, "{\n  \"Study\": \"GCST90000123\",\n  \"PMID\": 31234567,", pnl.Render())

	down := tea.KeyPressMsg{Code: tea.KeyDown}
	for range 10 {
		pnl, _ = pnl.Update(down)
	}
	assert.Equal(t, "    \"a\": 1\n  }\n}", pnl.Render())

	pnl, _ = pnl.Update(tea.KeyPressMsg{Code: tea.KeyPgUp})
	assert.True(t, strings.HasPrefix(pnl.Render(), "  \"PMID\""))
}
