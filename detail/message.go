package detail

import nt "studydash/entity"

type DetailMsg interface {
	isDetailMsg()
}

func (SizeMsg) isDetailMsg()   {}
func (LineMsg) isDetailMsg()   {}
func (FieldsMsg) isDetailMsg() {}

type SizeMsg struct {
	Width  int
	Height int
}

// LineMsg sets the record to show
type LineMsg struct {
	Line nt.Line
}

// FieldsMsg names the values of a line, in order
type FieldsMsg struct {
	Fields []nt.Field
}
