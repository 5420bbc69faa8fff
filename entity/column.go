package entity

// Column configures a visible grid column.
type Column struct {
	Field string `yaml:"field"`
	Width int    `yaml:"width"`
}
