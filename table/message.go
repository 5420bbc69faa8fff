package table

import (
	nt "studydash/entity"
	"studydash/query"
)

type TableMsg interface {
	isTableMsg()
}

func (SizeMsg) isTableMsg()    {}
func (PageMsg) isTableMsg()    {}
func (ColumnsMsg) isTableMsg() {}

type SizeMsg struct {
	Width  int
	Height int
}

// PageMsg delivers the page fetched for Request
type PageMsg struct {
	Request query.Request
	Listing nt.Listing
}

// ColumnsMsg sets the schema and the columns to show from it
type ColumnsMsg struct {
	Columns []nt.Column
	Fields  []nt.Field
}
