package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nt "studydash/entity"
)

func TestSerialize(t *testing.T) {

	tests := []struct {
		name string
		rows []nt.Filter
		exp  string
	}{
		{
			name: "empty",
			rows: nil,
			exp:  "",
		},
		{
			name: "single equality",
			rows: []nt.Filter{{Field: "Harm_status", Op: nt.Eq, Value: "DONE"}},
			exp:  "Harm_status=DONE",
		},
		{
			name: "contains uses tilde",
			rows: []nt.Filter{{Field: "Study", Op: nt.Contains, Value: "GCST"}},
			exp:  "Study~GCST",
		},
		{
			name: "order preserved",
			rows: []nt.Filter{
				{Field: "A", Op: nt.Eq, Value: "1"},
				{Field: "B", Op: nt.Gt, Value: "2"},
			},
			exp: "A=1;B>2",
		},
		{
			name: "every comparison",
			rows: []nt.Filter{
				{Field: "a", Op: nt.Ne, Value: "x"},
				{Field: "b", Op: nt.Lt, Value: "1"},
				{Field: "c", Op: nt.Gte, Value: "2"},
				{Field: "d", Op: nt.Lte, Value: "3"},
			},
			exp: "a!=x;b<1;c>=2;d<=3",
		},
		{
			name: "value is trimmed",
			rows: []nt.Filter{{Field: "PMID", Op: nt.Eq, Value: "  123 "}},
			exp:  "PMID=123",
		},
		{
			name: "only blanks",
			rows: []nt.Filter{
				{Field: "", Op: nt.Eq, Value: "1"},
				{Field: Placeholder, Op: nt.Eq, Value: "1"},
				{Field: "A", Op: nt.Eq, Value: "   "},
			},
			exp: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.exp, Serialize(tc.rows))
		})
	}
}

func TestSerializeIgnoresBlankRows(t *testing.T) {

	complete := []nt.Filter{
		{Field: "A", Op: nt.Eq, Value: "1"},
		{Field: "B", Op: nt.Contains, Value: "x"},
	}
	withBlanks := []nt.Filter{
		{Field: Placeholder, Op: nt.Gt, Value: "9"},
		complete[0],
		{Field: "C", Op: nt.Eq, Value: ""},
		{Field: "", Op: nt.Eq, Value: ""},
		complete[1],
		{Field: "D", Op: nt.Lt, Value: "\t"},
	}

	assert.Equal(t, Serialize(complete), Serialize(withBlanks))
}

func TestBuilderKnownFields(t *testing.T) {

	bld := Builder{Fields: []nt.Field{{Name: "Study"}, {Name: "PMID"}}}
	rows := []nt.Filter{
		{Field: "Study", Op: nt.Contains, Value: "GCST"},
		{Field: "Nope", Op: nt.Eq, Value: "1"},
		{Field: "PMID", Op: nt.Gt, Value: "100"},
	}

	assert.Equal(t, "Study~GCST;PMID>100", bld.Serialize(rows))
	assert.Equal(t, "Study~GCST;Nope=1;PMID>100", Builder{}.Serialize(rows))
}

func TestParseFilter(t *testing.T) {

	rows, err := ParseFilter("Harm_status=DONE;Study~GCST;N>=10;M<=2;X!=y;P>1;Q<3")
	require.NoError(t, err)
	assert.Equal(t, []nt.Filter{
		{Field: "Harm_status", Op: nt.Eq, Value: "DONE"},
		{Field: "Study", Op: nt.Contains, Value: "GCST"},
		{Field: "N", Op: nt.Gte, Value: "10"},
		{Field: "M", Op: nt.Lte, Value: "2"},
		{Field: "X", Op: nt.Ne, Value: "y"},
		{Field: "P", Op: nt.Gt, Value: "1"},
		{Field: "Q", Op: nt.Lt, Value: "3"},
	}, rows)

	// round trip
	assert.Equal(t, "Harm_status=DONE;Study~GCST;N>=10;M<=2;X!=y;P>1;Q<3", Serialize(rows))

	rows, err = ParseFilter("")
	require.NoError(t, err)
	assert.Empty(t, rows)

	_, err = ParseFilter("justtext")
	assert.Error(t, err)

	_, err = ParseFilter("=1")
	assert.Error(t, err)

	_, err = ParseFilter("A=")
	assert.Error(t, err)
}

func TestRequest(t *testing.T) {

	req := NewRequest(10)
	assert.Equal(t, "/all_studies", req.Path())
	assert.Equal(t, "page=1&size=10", req.Values().Encode())
	assert.NotContains(t, req.Values(), "filter")

	req = req.WithPage(4)
	assert.Equal(t, 4, req.Page)

	req = req.WithFilter("Harm_status=DONE;PMID>2")
	assert.Equal(t, 1, req.Page, "applying a filter resets to page one")
	assert.Equal(t, "/query", req.Path())
	assert.Equal(t, "Harm_status=DONE;PMID>2", req.Values().Get("filter"))

	req = req.WithPage(3).WithFilter("")
	assert.Equal(t, 1, req.Page)
	assert.Equal(t, "/all_studies", req.Path())

	req = req.WithPage(5).WithSize(50)
	assert.Equal(t, 1, req.Page)
	assert.Equal(t, 50, req.Size)

	assert.Equal(t, 1, req.WithPage(-2).Page)
}

func TestRequestPages(t *testing.T) {

	req := NewRequest(10)
	assert.Equal(t, 1, req.Pages(0))
	assert.Equal(t, 1, req.Pages(10))
	assert.Equal(t, 2, req.Pages(11))
	assert.Equal(t, 13, req.Pages(128))
}

func TestRequestURL(t *testing.T) {

	req := NewRequest(10).WithFilter("Study~GCST;A=1")
	assert.Equal(t,
		"https://api.example/query?filter=Study~GCST%3BA%3D1&page=1&size=10",
		req.URL("https://api.example/"),
	)
}
