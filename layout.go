package studydash

import (
	nt "studydash/entity"
)

// Layout configures the grid: page sizes, visible columns and starting filters.
type Layout struct {
	PageSize  int         `yaml:"page_size"`
	PageSizes []int       `yaml:"page_sizes"`
	Columns   []nt.Column `yaml:"columns"`
	Filters   []nt.Filter `yaml:"filters,omitempty"`
}

var defaultColumns = []string{
	"Study",
	"PMID",
	"Genotyping_type",
	"Effect_size_type",
	"Raw_N_variants",
	"Harm_status",
	"Harm_drop_rate",
	"Liftover_drop_rate",
}

// DefaultLayout shows the commonly used study fields, fifty to a page.
func DefaultLayout() Layout {

	columns := make([]nt.Column, len(defaultColumns))
	for i, name := range defaultColumns {
		columns[i] = nt.Column{Field: name}
	}

	return Layout{
		PageSize:  50,
		PageSizes: []int{10, 50, 100},
		Columns:   columns,
	}
}

// pageSize returns a usable page size
func (layout Layout) pageSize() int {
	if layout.PageSize > 0 {
		return layout.PageSize
	}
	if len(layout.PageSizes) > 0 {
		return layout.PageSizes[0]
	}
	return 50
}
