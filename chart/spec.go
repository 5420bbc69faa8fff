// Package chart turns chart endpoint rows into bar and scatter charts drawn as text.
package chart

// Kind is the chart type
type Kind string

const (
	BarKind     Kind = "bar"
	ScatterKind Kind = "scatter"
)

// Spec describes a chart and where its rows come from.
type Spec struct {
	Kind  Kind   `yaml:"kind"`
	Path  string `yaml:"path"`
	Title string `yaml:"title"`

	// bar
	CategoryKey   string `yaml:"category_key,omitempty"`
	ValueKey      string `yaml:"value_key,omitempty"`
	Colors        bool   `yaml:"colors,omitempty"`
	PreserveOrder bool   `yaml:"preserve_order,omitempty"`

	// scatter, zero for no mark line
	Threshold float64 `yaml:"threshold,omitempty"`
}

// Colors for harmonisation status categories.
var (
	StatusColors = map[string]string{
		"harmonised":  "#00b894",
		"cannot_harm": "#d63031",
		"harmonising": "#a29bfe",
		"backlog":     "#fdcb6e",
	}
	DefaultColor = "#0984e3"
)

// DefaultSpecs are the dashboard's charts.
func DefaultSpecs() []Spec {
	return []Spec{
		{
			Kind:        BarKind,
			Path:        "/plotly/status_bar",
			Title:       "Current Harmonisation Status",
			CategoryKey: "Harm_status",
			ValueKey:    "num_unique_studies",
			Colors:      true,
		},
		{
			Kind:          BarKind,
			Path:          "/plotly/harmed_six_month",
			Title:         "Newly Harmonised Sumstats (Recent 6 months)",
			CategoryKey:   "month",
			ValueKey:      "num_studies",
			PreserveOrder: true,
		},
		{
			Kind:      ScatterKind,
			Path:      "/plotly/drop_rate/array",
			Title:     "Drop Rate - Array Studies",
			Threshold: 0.15,
		},
		{
			Kind:      ScatterKind,
			Path:      "/plotly/drop_rate/sequencing",
			Title:     "Drop Rate - Sequencing Studies",
			Threshold: 0.2,
		},
		{
			Kind:  ScatterKind,
			Path:  "/plotly/drop_rate/mix",
			Title: "Drop Rate - Mixed Studies",
		},
	}
}
