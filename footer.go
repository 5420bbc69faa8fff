package studydash

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"studydash/style"
)

const (
	footerHeight = 3
	headerHeight = 1
)

var printer = message.NewPrinter(language.English)

// RenderFooter renders the error line and a status line padded to width.
func RenderFooter(errorString, status, name string, width int) string {

	errLine := ""
	if errorString != "" {
		errLine = style.ErrorStyle.Render(style.Truncate(errorString, width))
	}

	padding := max(width-lipgloss.Width(status)-lipgloss.Width(name), 1)
	statusLine := style.MutedStyle.Render(status + strings.Repeat(" ", padding) + name)

	return lipgloss.JoinVertical(lipgloss.Left, "", errLine, statusLine)
}

// summary describes the size of the catalog
func summary(total int) string {
	return fmt.Sprintf("Currently, the GWAS Catalog contains %s summary statistics datasets", formatCount(total))
}

// formatCount groups thousands with commas
func formatCount(count int) string {
	return printer.Sprintf("%d", count)
}
