package studydash

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"studydash/chart"
	"studydash/detail"
	nt "studydash/entity"
	"studydash/filter"
	"studydash/message"
	"studydash/query"
	"studydash/style"
	"studydash/table"
)

const (
	loadingText = "Loading..."
	loadErrText = "Error loading data"
	notLoaded   = "Filter columns not yet loaded. Please wait."
)

// Model is the bubbletea model for the dashboard.
// It owns the listing request; panels only ask for changes to it.
type Model struct {
	ctx    context.Context
	store  Store
	series SeriesStore
	logger nt.Logger
	layout Layout
	charts []chart.Spec

	request query.Request
	fields  []nt.Field
	builder query.Builder

	loaded      bool
	failed      bool
	summary     string
	errorString string

	screen      Screen
	tablePanel  table.TablePanel
	filterPanel filter.FilterPanel
	detailPanel detail.DetailPanel
	chartPanel  chart.ChartPanel

	width  int
	height int
}

// NewModel creates a new bt model; series may be nil to go without charts.
func NewModel(ctx context.Context, cfg *Config, store Store, series SeriesStore, lgr nt.Logger) Model {

	layout := cfg.Layout
	request := query.NewRequest(layout.pageSize())

	charts := cfg.Charts
	if series == nil {
		charts = nil
	}

	return Model{
		ctx:         ctx,
		store:       store,
		series:      series,
		logger:      lgr,
		layout:      layout,
		charts:      charts,
		request:     request,
		summary:     loadingText,
		screen:      TableScreen,
		tablePanel:  table.NewTablePanel(request, layout.PageSizes),
		filterPanel: filter.NewFilterPanel(layout.Filters),
		detailPanel: detail.NewDetailPanel(nil),
		chartPanel:  chart.NewChartPanel(charts),
	}
}

// Request returns the listing request as it stands.
func (m Model) Request() query.Request {
	return m.request
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.getSchema(), m.getCharts())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {

	switch msg := msg.(type) {

	case schemaMsg:
		return m.setSchema(msg)

	case pageErrMsg:
		m.errorString = fmt.Sprintf("Failed to load data: %s", msg.err)
		m.tablePanel, _ = m.tablePanel.Update(table.PageMsg{Request: msg.request})
		m.detailPanel, _ = m.detailPanel.Update(detail.LineMsg{})
		return m, nil

	case message.GetPageMsg:
		if !m.loaded {
			return m, nil
		}
		if msg.Size != m.request.Size {
			m.request = m.request.WithSize(msg.Size)
		} else {
			m.request = m.request.WithPage(msg.Page)
		}
		return m, m.getPage(m.request)

	case message.SetFilterMsg:
		if !m.loaded {
			return m, message.ErrorfCmd(notLoaded)
		}
		m.request = m.request.WithFilter(m.builder.Serialize(msg.Filters))
		m.logger.Info(m.ctx, "applying filter", "filter", m.request.Filter)
		m.screen = TableScreen
		return m, m.getPage(m.request)

	case message.SelectedMsg:
		m.detailPanel, _ = m.detailPanel.Update(detail.LineMsg{Line: msg.Line})
		return m, nil

	case message.ErrorMsg:
		m.logger.Error(m.ctx, "error msg", msg.Err)
		m.errorString = msg.Err.Error()
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m.resize()
	}

	// Broadcast to all child components
	var cmds [4]tea.Cmd
	m.tablePanel, cmds[0] = m.tablePanel.Update(msg)
	m.filterPanel, cmds[1] = m.filterPanel.Update(msg)
	m.detailPanel, cmds[2] = m.detailPanel.Update(msg)
	m.chartPanel, cmds[3] = m.chartPanel.Update(msg)
	return m, tea.Batch(cmds[:]...)
}

func (m Model) View() tea.View {
	view := tea.NewView(m.render())
	view.AltScreen = m.width > 0
	return view
}

// unexported

// render lays out the summary, current screen and footer
func (m Model) render() string {
	if m.width == 0 {
		return loadingText
	}

	var screenContent string
	switch {
	case m.failed && m.screen != ChartScreen:
		screenContent = style.ErrorStyle.Render(loadErrText)
	case m.screen == FilterScreen:
		screenContent = m.filterPanel.Render()
	case m.screen == DetailScreen:
		screenContent = m.detailPanel.Render()
	case m.screen == ChartScreen:
		screenContent = m.chartPanel.Render()
	default:
		screenContent = m.tablePanel.Render()
	}

	panelHeight := max(m.height-headerHeight-footerHeight, 1)
	screenContent = lipgloss.NewStyle().
		Height(panelHeight).
		MaxHeight(panelHeight).
		Render(screenContent)

	header := style.TitleStyle.Render(style.Truncate(m.summary, m.width))
	footer := RenderFooter(m.errorString, m.status(), m.store.Name(), m.width)

	return lipgloss.JoinVertical(lipgloss.Left, header, screenContent, footer)
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {

	m.errorString = ""
	key := msg.String()

	switch key {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		if m.screen != TableScreen {
			m.screen = TableScreen
			return m, nil
		}
		return m, tea.Quit
	}

	// the filter screen takes every other key as input
	if m.screen == FilterScreen {
		var cmd tea.Cmd
		m.filterPanel, cmd = m.filterPanel.Update(msg)
		return m, cmd
	}

	switch key {
	case "q":
		return m, tea.Quit

	case "f":
		m.screen = FilterScreen
		return m, nil

	case "v":
		if m.screen == ChartScreen {
			m.screen = TableScreen
		} else {
			m.screen = ChartScreen
		}
		return m, nil

	case "enter", "right", "l":
		if m.screen == TableScreen {
			if _, ok := m.tablePanel.Selected(); ok {
				m.screen = DetailScreen
			}
			return m, nil
		}

	case "left", "h":
		if m.screen == DetailScreen {
			m.screen = TableScreen
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.screen {
	case TableScreen:
		m.tablePanel, cmd = m.tablePanel.Update(msg)
	case DetailScreen:
		m.detailPanel, cmd = m.detailPanel.Update(msg)
	case ChartScreen:
		m.chartPanel, cmd = m.chartPanel.Update(msg)
	}
	return m, cmd
}

// setSchema builds the grid from discovered fields and fetches the first page
func (m Model) setSchema(msg schemaMsg) (tea.Model, tea.Cmd) {

	if msg.err != nil {
		m.failed = true
		m.summary = loadErrText
		return m, nil
	}

	m.loaded = true
	m.fields = msg.fields
	m.builder = query.Builder{Fields: msg.fields}
	m.summary = summary(msg.total)

	m.tablePanel, _ = m.tablePanel.Update(table.ColumnsMsg{Columns: m.layout.Columns, Fields: msg.fields})
	m.filterPanel, _ = m.filterPanel.Update(filter.FieldsMsg{Fields: msg.fields})
	m.detailPanel, _ = m.detailPanel.Update(detail.FieldsMsg{Fields: msg.fields})

	m.request = m.request.WithFilter(m.builder.Serialize(m.filterPanel.Filters()))
	return m, m.getPage(m.request)
}

func (m Model) resize() (tea.Model, tea.Cmd) {

	width := m.width
	height := max(m.height-headerHeight-footerHeight, 1)

	m.tablePanel, _ = m.tablePanel.Update(table.SizeMsg{Width: width, Height: height})
	m.filterPanel, _ = m.filterPanel.Update(filter.SizeMsg{Width: width, Height: height})
	m.detailPanel, _ = m.detailPanel.Update(detail.SizeMsg{Width: width, Height: height})
	m.chartPanel, _ = m.chartPanel.Update(chart.SizeMsg{Width: width, Height: height})
	return m, nil
}

func (m Model) status() string {

	status := m.screen.String()
	if m.loaded {
		status += "  " + m.tablePanel.Status()
	}
	if m.request.Filter != "" {
		status += "  filter " + m.request.Filter
	}
	return status
}
