package studydash

import (
	tea "charm.land/bubbletea/v2"

	"studydash/chart"
	"studydash/logger"
	"studydash/query"
	"studydash/table"
)

// getSchema discovers fields from the store
func (m Model) getSchema() tea.Cmd {

	return func() tea.Msg {

		fields, total, err := m.store.Schema(m.ctx)
		if err != nil {
			m.logger.Error(m.ctx, "failed to load schema", err, "source", m.store.Name())
			return schemaMsg{err: err}
		}

		m.logger.Info(m.ctx, "loaded schema", "fields", len(fields), "total", total)
		return schemaMsg{fields: fields, total: total}
	}
}

// getPage gets the page of lines answering req from the store
func (m Model) getPage(req query.Request) tea.Cmd {

	fields := m.fields
	return func() tea.Msg {

		ctx := logger.WithFields(m.ctx, "page", req.Page, "size", req.Size, "filter", req.Filter)

		listing, err := m.store.GetPage(ctx, fields, req)
		if err != nil {
			m.logger.Error(ctx, "failed to get page", err)
			return pageErrMsg{request: req, err: err}
		}

		return table.PageMsg{Request: req, Listing: listing}
	}
}

// getSeries loads rows for the chart at idx
func (m Model) getSeries(idx int, spec chart.Spec) tea.Cmd {

	return func() tea.Msg {

		ctx := logger.WithFields(m.ctx, "chart", spec.Path)

		rows, err := m.series.Series(ctx, spec.Path)
		if err != nil {
			m.logger.Error(ctx, "failed to load chart", err)
		}

		return chart.LoadedMsg{Index: idx, Rows: rows, Err: err}
	}
}

// getCharts loads every chart independently
func (m Model) getCharts() tea.Cmd {

	if m.series == nil {
		return nil
	}

	cmds := make([]tea.Cmd, len(m.charts))
	for i, spec := range m.charts {
		cmds[i] = m.getSeries(i, spec)
	}
	return tea.Batch(cmds...)
}
