package filter

import nt "studydash/entity"

type FilterMsg interface {
	isFilterMsg()
}

func (SizeMsg) isFilterMsg()   {}
func (FieldsMsg) isFilterMsg() {}

type SizeMsg struct {
	Width  int
	Height int
}

// FieldsMsg supplies the fields rows can filter on
type FieldsMsg struct {
	Fields []nt.Field
}
