// Package studydash is a terminal dashboard over the study-metadata api:
// a server-paged, filterable grid of studies and a handful of charts.
package studydash

import (
	"context"

	nt "studydash/entity"
	"studydash/query"
)

// Store specifies the listing api.
type Store interface {
	// Name returns the name of the data source
	Name() string
	// Schema discovers fields and the unfiltered record count
	Schema(ctx context.Context) (fields []nt.Field, total int, err error)
	// GetPage fetches the page of lines answering req
	GetPage(ctx context.Context, fields []nt.Field, req query.Request) (listing nt.Listing, err error)
}

// SeriesStore specifies the chart api.
type SeriesStore interface {
	// Series fetches the rows behind a chart
	Series(ctx context.Context, path string) (rows []nt.Row, err error)
}
