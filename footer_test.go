package studydash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCount(t *testing.T) {

	cases := map[int]string{
		0:        "0",
		999:      "999",
		1000:     "1,000",
		1234567:  "1,234,567",
		-1234:    "-1,234",
		100000:   "100,000",
		12345678: "12,345,678",
	}

	for count, exp := range cases {
		assert.Equal(t, exp, formatCount(count), "%d", count)
	}
}

func TestRenderFooter(t *testing.T) {

	out := RenderFooter("", "page 1/2", "https://api.example", 40)
	assert.Contains(t, out, "page 1/2")
	assert.Contains(t, out, "https://api.example")

	out = RenderFooter("Failed to load data: boom", "page 1/1", "src", 40)
	assert.Contains(t, out, "Failed to load data: boom")
}
