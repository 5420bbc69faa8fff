// Package query builds the filter expression and listing request understood
// by the remote study api.
//
// A filter row contributes "<field><op><value>", or "<field>~<value>" for
// contains, and contributing rows are joined with ";".  Rows without a real
// field or with a blank value are dropped rather than reported.
package query

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	nt "studydash/entity"
)

const (
	// Placeholder is the column label shown before a field is chosen.
	Placeholder = "- Column -"

	containsMark = "~"
	separator    = ";"

	listPath  = "/all_studies"
	queryPath = "/query"
)

// Serialize encodes rows for the filter parameter without checking field names.
func Serialize(rows []nt.Filter) string {
	return Builder{}.Serialize(rows)
}

// Builder serializes filter rows, dropping those not naming a known field.
// A zero Builder knows no fields and accepts any non-placeholder name.
type Builder struct {
	Fields []nt.Field
}

// Serialize encodes the contributing rows in the order given.
func (bld Builder) Serialize(rows []nt.Filter) string {

	parts := []string{}
	for _, row := range bld.Valid(rows) {
		parts = append(parts, encode(row))
	}

	return strings.Join(parts, separator)
}

// Valid returns the rows that contribute to a filter, with values trimmed.
func (bld Builder) Valid(rows []nt.Filter) (valid []nt.Filter) {

	known := map[string]bool{}
	for _, field := range bld.Fields {
		known[field.Name] = true
	}

	for _, row := range rows {
		row.Value = strings.TrimSpace(row.Value)

		switch {
		case row.Field == "" || row.Field == Placeholder:
			continue
		case row.Value == "":
			continue
		case len(known) > 0 && !known[row.Field]:
			continue
		}

		valid = append(valid, row)
	}
	return
}

// ParseFilter decodes a serialized filter back into rows.
// The earliest operator in each part wins, two-character operators before one.
func ParseFilter(filter string) (rows []nt.Filter, err error) {

	for _, part := range strings.Split(filter, separator) {
		if strings.TrimSpace(part) == "" {
			continue
		}

		var row nt.Filter
		row, err = decode(part)
		if err != nil {
			return
		}
		rows = append(rows, row)
	}
	return
}

// Request is the listing state: which page, how big, and the serialized filter.
type Request struct {
	Page   int
	Size   int
	Filter string
}

// NewRequest returns a request for the first page of unfiltered results.
func NewRequest(size int) Request {
	return Request{Page: 1, Size: size}
}

// WithFilter sets the filter and resets to the first page.
func (req Request) WithFilter(filter string) Request {
	req.Filter = filter
	req.Page = 1
	return req
}

// WithPage moves to page, pages start at 1.
func (req Request) WithPage(page int) Request {
	if page < 1 {
		page = 1
	}
	req.Page = page
	return req
}

// WithSize changes the page size and resets to the first page.
func (req Request) WithSize(size int) Request {
	if size > 0 {
		req.Size = size
	}
	req.Page = 1
	return req
}

// Pages returns the number of pages needed for total records, at least one.
func (req Request) Pages(total int) int {
	if req.Size < 1 || total <= req.Size {
		return 1
	}
	return (total + req.Size - 1) / req.Size
}

// Path returns the endpoint serving the request.
func (req Request) Path() string {
	if req.Filter == "" {
		return listPath
	}
	return queryPath
}

// Values returns the query parameters, omitting filter when empty.
func (req Request) Values() url.Values {

	values := url.Values{}
	values.Set("page", strconv.Itoa(req.Page))
	values.Set("size", strconv.Itoa(req.Size))
	if req.Filter != "" {
		values.Set("filter", req.Filter)
	}

	return values
}

// URL returns the full request url against base.
func (req Request) URL(base string) string {
	return strings.TrimRight(base, "/") + req.Path() + "?" + req.Values().Encode()
}

// unexported

func encode(row nt.Filter) string {
	if row.Op == nt.Contains {
		return row.Field + containsMark + row.Value
	}
	return row.Field + row.Op.String() + row.Value
}

// decodeOps in match priority at a given position
var decodeOps = []struct {
	token string
	op    nt.FilterOp
}{
	{"!=", nt.Ne},
	{">=", nt.Gte},
	{"<=", nt.Lte},
	{containsMark, nt.Contains},
	{"=", nt.Eq},
	{">", nt.Gt},
	{"<", nt.Lt},
}

func decode(part string) (row nt.Filter, err error) {

	for i := range len(part) {
		for _, candidate := range decodeOps {
			if !strings.HasPrefix(part[i:], candidate.token) {
				continue
			}

			row = nt.Filter{
				Field: strings.TrimSpace(part[:i]),
				Op:    candidate.op,
				Value: strings.TrimSpace(part[i+len(candidate.token):]),
			}

			if row.Field == "" {
				err = errors.Errorf("missing field in filter %q", part)
			} else if row.Value == "" {
				err = errors.Errorf("missing value in filter %q", part)
			}
			return
		}
	}

	err = errors.Errorf("no operator in filter %q", part)
	return
}
