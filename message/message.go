// Package message holds messages passed between the model and its panels.
package message

import (
	nt "studydash/entity"
)

// ErrorMsg contains an error
type ErrorMsg struct {
	Err error
}

// GetPageMsg signals to load a page of lines
type GetPageMsg struct {
	Page int
	Size int
}

// SetFilterMsg signals the filter rows have been applied
type SetFilterMsg struct {
	Filters []nt.Filter
}

// SelectedMsg reports the line under the cursor
type SelectedMsg struct {
	Row  int // 1-indexed across all pages
	Line nt.Line
}
