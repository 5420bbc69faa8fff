package studydash

// Screen indicates which screen is currently displayed
type Screen int

const (
	TableScreen Screen = iota
	FilterScreen
	DetailScreen
	ChartScreen
)

// String names the screen for the footer
func (scr Screen) String() string {
	switch scr {
	case TableScreen:
		return "studies"
	case FilterScreen:
		return "filters"
	case DetailScreen:
		return "record"
	case ChartScreen:
		return "charts"
	}
	return "unknown"
}
