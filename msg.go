package studydash

import (
	nt "studydash/entity"
	"studydash/query"
)

// schemaMsg contains the discovered fields
type schemaMsg struct {
	fields []nt.Field
	total  int
	err    error
}

// pageErrMsg reports a failed page fetch
type pageErrMsg struct {
	request query.Request
	err     error
}
