package chart

import (
	"fmt"
	"sort"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/pkg/errors"

	nt "studydash/entity"
	"studydash/style"
)

// Bar is a bar chart, one bar per category.
type Bar struct {
	Title string
	Items []BarItem
}

type BarItem struct {
	Category string
	Value    float64
	Color    string
}

// NewBar maps rows to bars, largest first unless the spec preserves order.
func NewBar(spec Spec, rows []nt.Row) (bar Bar, err error) {

	bar.Title = spec.Title
	for i, row := range rows {

		category, ok := row[spec.CategoryKey]
		if !ok || category.Raw == nil {
			err = errors.Errorf("row %d has no %q", i, spec.CategoryKey)
			return
		}

		// missing or non-numeric values plot as zero
		value, _ := row[spec.ValueKey].Float()

		item := BarItem{
			Category: strings.TrimSpace(category.String()),
			Value:    value,
			Color:    DefaultColor,
		}
		if spec.Colors {
			if color, ok := StatusColors[item.Category]; ok {
				item.Color = color
			}
		}
		bar.Items = append(bar.Items, item)
	}

	if !spec.PreserveOrder {
		sort.SliceStable(bar.Items, func(i, j int) bool {
			return bar.Items[i].Value > bar.Items[j].Value
		})
	}
	return
}

// Render draws horizontal bars scaled to width.
func (bar Bar) Render(width int) string {

	var out strings.Builder
	out.WriteString(style.TitleStyle.Render(bar.Title) + "\n\n")

	if len(bar.Items) == 0 {
		out.WriteString(style.MutedStyle.Render("No data."))
		return out.String()
	}

	labelWidth := 0
	valueWidth := 0
	top := 0.0
	for _, item := range bar.Items {
		labelWidth = max(labelWidth, lipgloss.Width(item.Category))
		valueWidth = max(valueWidth, len(formatValue(item.Value)))
		top = max(top, item.Value)
	}

	barWidth := max(width-labelWidth-valueWidth-3, 1)
	labelStyle := lipgloss.NewStyle().Width(labelWidth)

	for _, item := range bar.Items {
		length := 0
		if top > 0 && item.Value > 0 {
			length = max(int(item.Value/top*float64(barWidth)), 1)
		}

		block := lipgloss.NewStyle().
			Foreground(lipgloss.Color(item.Color)).
			Render(strings.Repeat("█", length))

		out.WriteString(fmt.Sprintf("%s %s %s\n", labelStyle.Render(item.Category), block, formatValue(item.Value)))
	}

	return strings.TrimSuffix(out.String(), "\n")
}

func formatValue(value float64) string {
	return nt.Value{Raw: value}.String()
}
