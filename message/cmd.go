package message

import (
	tea "charm.land/bubbletea/v2"
	"github.com/pkg/errors"
)

// ErrorCmd returns a command reporting err
func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Err: err}
	}
}

// ErrorfCmd returns a command reporting a formatted error
func ErrorfCmd(format string, args ...any) tea.Cmd {
	return ErrorCmd(errors.Errorf(format, args...))
}

// GetPageCmd returns a command to request a page of data
func GetPageCmd(page, size int) tea.Cmd {
	return func() tea.Msg {
		return GetPageMsg{
			Page: page,
			Size: size,
		}
	}
}
