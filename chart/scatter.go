package chart

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"

	nt "studydash/entity"
	"studydash/style"
)

const scatterHeight = 10

// Scatter plots drop rate by year, one point per study.
type Scatter struct {
	Title     string
	Threshold float64
	Points    []Point
	Summary   Summary
}

type Point struct {
	Year     int
	DropRate float64
	Study    string
}

// Summary describes the drop rates plotted.
type Summary struct {
	Count  int
	Median float64
	Mean   float64
	Above  int // points over threshold
}

// NewScatter maps rows to points, skipping rows without a numeric year and drop rate.
func NewScatter(spec Spec, rows []nt.Row) (sct Scatter, err error) {

	sct.Title = spec.Title
	sct.Threshold = spec.Threshold

	for _, row := range rows {
		year, err := parseYear(row["year"])
		if err != nil {
			continue
		}
		rate, err := row["Harm_drop_rate"].Float()
		if err != nil || math.IsNaN(rate) {
			continue
		}

		sct.Points = append(sct.Points, Point{
			Year:     year,
			DropRate: rate,
			Study:    row["Study"].String(),
		})
	}

	sct.Summary, err = summarize(sct.Points, sct.Threshold)
	return
}

// Render draws the points on a grid with one column per year.
func (sct Scatter) Render(width int) string {

	var out strings.Builder
	out.WriteString(style.TitleStyle.Render(sct.Title) + "\n")

	if len(sct.Points) == 0 {
		out.WriteString("\n" + style.MutedStyle.Render("No data."))
		return out.String()
	}
	out.WriteString(style.MutedStyle.Render(sct.Summary.String(sct.Threshold)) + "\n\n")

	years := sct.years()
	top := sct.Threshold
	for _, pt := range sct.Points {
		top = max(top, pt.DropRate)
	}
	if top <= 0 {
		top = 1
	}

	colWidth := 5
	if len(years) > 0 && width > 0 {
		colWidth = min(max((width-8)/len(years), 1), 5)
	}

	grid := make([][]rune, scatterHeight)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", colWidth*len(years)))
	}

	rowOf := func(rate float64) int {
		row := scatterHeight - 1 - int(math.Round(rate/top*float64(scatterHeight-1)))
		return min(max(row, 0), scatterHeight-1)
	}

	thresholdRow := -1
	if sct.Threshold > 0 {
		thresholdRow = rowOf(sct.Threshold)
		for i := range grid[thresholdRow] {
			grid[thresholdRow][i] = '┄'
		}
	}

	colOf := map[int]int{}
	for i, year := range years {
		colOf[year] = i*colWidth + colWidth/2
	}
	for _, pt := range sct.Points {
		grid[rowOf(pt.DropRate)][colOf[pt.Year]] = '●'
	}

	markStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(DefaultColor))
	for i, line := range grid {
		label := "      "
		switch i {
		case 0:
			label = fmt.Sprintf("%6.3f", top)
		case scatterHeight - 1:
			label = fmt.Sprintf("%6.3f", 0.0)
		case thresholdRow:
			label = style.ErrorStyle.Render(fmt.Sprintf("%6.3f", sct.Threshold))
		}

		text := markStyle.Render(string(line))
		if i == thresholdRow {
			text = style.ErrorStyle.Render(string(line))
		}
		out.WriteString(label + " │" + text + "\n")
	}

	var axis strings.Builder
	for _, year := range years {
		label := strconv.Itoa(year)
		if len(label) > colWidth {
			label = label[len(label)-colWidth:]
		}
		axis.WriteString(fmt.Sprintf("%-*s", colWidth, label))
	}
	out.WriteString("        " + axis.String())

	return out.String()
}

// String reports the summary for a subtitle.
func (sum Summary) String(threshold float64) string {

	text := fmt.Sprintf("%d studies  median %.3f  mean %.3f", sum.Count, sum.Median, sum.Mean)
	if threshold > 0 {
		text += fmt.Sprintf("  %d above %g", sum.Above, threshold)
	}
	return text
}

// unexported

func (sct Scatter) years() []int {

	seen := map[int]bool{}
	years := []int{}
	for _, pt := range sct.Points {
		if !seen[pt.Year] {
			seen[pt.Year] = true
			years = append(years, pt.Year)
		}
	}
	sort.Ints(years)
	return years
}

func summarize(points []Point, threshold float64) (sum Summary, err error) {

	if len(points) == 0 {
		return
	}

	rates := make([]float64, len(points))
	for i, pt := range points {
		rates[i] = pt.DropRate
		if threshold > 0 && pt.DropRate > threshold {
			sum.Above++
		}
	}
	sum.Count = len(rates)

	sum.Median, err = stats.Median(rates)
	if err != nil {
		err = errors.Wrapf(err, "failed to find median of %d drop rates", len(rates))
		return
	}

	sum.Mean, err = stats.Mean(rates)
	err = errors.Wrapf(err, "failed to find mean of %d drop rates", len(rates))
	return
}

// parseYear takes the leading integer, as years may arrive as "2019" or 2019.0
func parseYear(val nt.Value) (year int, err error) {

	switch raw := val.Raw.(type) {
	case float64:
		if math.IsNaN(raw) || math.IsInf(raw, 0) {
			err = errors.Errorf("year is not a number")
			return
		}
		year = int(raw)
		return
	case string:
		digits := strings.TrimSpace(raw)
		end := 0
		for end < len(digits) && (digits[end] >= '0' && digits[end] <= '9' || end == 0 && digits[end] == '-') {
			end++
		}
		year, err = strconv.Atoi(digits[:end])
		err = errors.Wrapf(err, "year is not a number: %q", raw)
		return
	}

	err = errors.Errorf("year is not a number: %T", val.Raw)
	return
}
