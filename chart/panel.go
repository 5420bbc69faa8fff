package chart

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/pkg/errors"

	nt "studydash/entity"
	"studydash/style"
)

type ChartMsg interface {
	isChartMsg()
}

func (SizeMsg) isChartMsg()   {}
func (LoadedMsg) isChartMsg() {}

type SizeMsg struct {
	Width  int
	Height int
}

// LoadedMsg delivers rows, or the error fetching them, for the chart at Index
type LoadedMsg struct {
	Index int
	Rows  []nt.Row
	Err   error
}

// Chart can be drawn as text
type Chart interface {
	Render(width int) string
}

// ChartPanel shows one chart at a time, each loaded independently.
type ChartPanel struct {
	specs    []Spec
	charts   []Chart
	errs     []string
	selected int

	width  int
	height int
}

func NewChartPanel(specs []Spec) ChartPanel {
	return ChartPanel{
		specs:  specs,
		charts: make([]Chart, len(specs)),
		errs:   make([]string, len(specs)),
	}
}

func (pnl ChartPanel) Update(msg tea.Msg) (ChartPanel, tea.Cmd) {

	switch msg := msg.(type) {

	case SizeMsg:
		pnl.width = msg.Width
		pnl.height = msg.Height

	case LoadedMsg:
		if msg.Index < 0 || msg.Index >= len(pnl.specs) {
			return pnl, nil
		}
		pnl.charts = append([]Chart{}, pnl.charts...)
		pnl.errs = append([]string{}, pnl.errs...)

		chart, err := build(pnl.specs[msg.Index], msg.Rows, msg.Err)
		if err != nil {
			pnl.charts[msg.Index] = nil
			pnl.errs[msg.Index] = fmt.Sprintf("Failed to load chart: %s", err)
			return pnl, nil
		}
		pnl.charts[msg.Index] = chart
		pnl.errs[msg.Index] = ""

	case tea.KeyPressMsg:
		if len(pnl.specs) == 0 {
			return pnl, nil
		}
		switch msg.String() {
		case "tab", "right", "l":
			pnl.selected = (pnl.selected + 1) % len(pnl.specs)
		case "shift+tab", "left", "h":
			pnl.selected = (pnl.selected + len(pnl.specs) - 1) % len(pnl.specs)
		}
	}

	return pnl, nil
}

// Error returns the load error text for the chart at idx, if any
func (pnl ChartPanel) Error(idx int) string {
	if idx < 0 || idx >= len(pnl.errs) {
		return ""
	}
	return pnl.errs[idx]
}

// Render draws the selected chart with a tab strip of titles
func (pnl ChartPanel) Render() string {

	if len(pnl.specs) == 0 {
		return style.MutedStyle.Render("No charts configured.")
	}

	tabs := make([]string, len(pnl.specs))
	for i := range pnl.specs {
		label := fmt.Sprintf(" %d ", i+1)
		if i == pnl.selected {
			tabs[i] = style.HlCellStyle.Render(label)
			continue
		}
		tabs[i] = style.MutedStyle.Render(label)
	}

	var body string
	switch {
	case pnl.errs[pnl.selected] != "":
		body = style.TitleStyle.Render(pnl.specs[pnl.selected].Title) + "\n\n" +
			style.ErrorStyle.Render(pnl.errs[pnl.selected])
	case pnl.charts[pnl.selected] == nil:
		body = style.TitleStyle.Render(pnl.specs[pnl.selected].Title) + "\n\n" +
			style.MutedStyle.Render("Loading...")
	default:
		body = pnl.charts[pnl.selected].Render(pnl.width)
	}

	return strings.Join(tabs, "") + "\n\n" + body
}

// unexported

func build(spec Spec, rows []nt.Row, fetchErr error) (chart Chart, err error) {

	if fetchErr != nil {
		err = fetchErr
		return
	}

	switch spec.Kind {
	case BarKind:
		chart, err = NewBar(spec, rows)
	case ScatterKind:
		chart, err = NewScatter(spec, rows)
	default:
		err = errors.Errorf("unknown chart kind %q", spec.Kind)
	}
	return
}
