package detail

import (
	"bytes"
	"encoding/json"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	nt "studydash/entity"
	"studydash/style"
)

// DetailPanel shows every field of a line as json, in schema order
type DetailPanel struct {
	fields []nt.Field
	line   nt.Line

	contentLines []string // rendered content split into lines (cached)

	width        int
	height       int
	scrollOffset int
}

func NewDetailPanel(fields []nt.Field) DetailPanel {
	return DetailPanel{
		fields: fields,
	}
}

func (pnl DetailPanel) Update(msg tea.Msg) (DetailPanel, tea.Cmd) {

	switch msg := msg.(type) {

	case LineMsg:
		pnl.line = msg.Line
		pnl.computeContentLines()
		pnl.scrollOffset = 0

	case FieldsMsg:
		pnl.fields = msg.Fields
		if pnl.line != nil {
			pnl.computeContentLines()
		}

	case SizeMsg:
		pnl.width = msg.Width
		pnl.height = msg.Height
		pnl.scrollOffset = min(pnl.scrollOffset, pnl.maxScroll())

	case tea.KeyPressMsg:
		switch msg.String() {
		case "up", "k":
			if pnl.scrollOffset > 0 {
				pnl.scrollOffset--
			}

		case "down", "j":
			if pnl.scrollOffset < pnl.maxScroll() {
				pnl.scrollOffset++
			}

		case "pgup", "b":
			pnl.scrollOffset = max(pnl.scrollOffset-pnl.height, 0)

		case "pgdown", "n", "space":
			pnl.scrollOffset = min(pnl.scrollOffset+pnl.height, pnl.maxScroll())
		}
	}

	return pnl, nil
}

// Render shows the visible portion of the record
func (pnl DetailPanel) Render() string {
	if pnl.contentLines == nil {
		return style.MutedStyle.Render("No record selected.")
	}

	visibleLines := pnl.contentLines[pnl.scrollOffset:]
	if pnl.height > 0 && len(visibleLines) > pnl.height {
		visibleLines = visibleLines[:pnl.height]
	}

	if pnl.width <= 0 {
		return strings.Join(visibleLines, "\n")
	}

	truncated := make([]string, len(visibleLines))
	for i, line := range visibleLines {
		truncated[i] = style.Truncate(line, pnl.width)
	}
	return strings.Join(truncated, "\n")
}

// unexported

func (pnl DetailPanel) maxScroll() int {
	if pnl.height <= 0 || len(pnl.contentLines) <= pnl.height {
		return 0
	}
	return len(pnl.contentLines) - pnl.height
}

func (pnl *DetailPanel) computeContentLines() {

	if pnl.line == nil {
		pnl.contentLines = nil
		return
	}

	content, err := render(pnl.fields, pnl.line)
	if err != nil {
		pnl.contentLines = []string{"Error pretty-printing record: " + err.Error()}
		return
	}

	pnl.contentLines = strings.Split(content, "\n")
}

// render writes an indented json object keeping field order
func render(fields []nt.Field, line nt.Line) (content string, err error) {

	var buf bytes.Buffer
	buf.WriteString("{")

	for i, field := range fields {
		if i >= len(line) {
			break
		}

		var key, val []byte
		key, err = json.Marshal(field.Name)
		if err != nil {
			err = errors.Wrapf(err, "failed to encode field name %q", field.Name)
			return
		}

		val, err = marshal(expand(line[i].Raw))
		if err != nil {
			err = errors.Wrapf(err, "failed to encode value of %q", field.Name)
			return
		}

		if i > 0 {
			buf.WriteString(",")
		}
		buf.WriteString("\n  ")
		buf.Write(key)
		buf.WriteString(": ")
		buf.Write(val)
	}

	buf.WriteString("\n}")
	content = buf.String()
	return
}

func marshal(val any) (data []byte, err error) {

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("  ", "  ")
	encoder.SetEscapeHTML(false)

	err = encoder.Encode(val)
	data = bytes.TrimSuffix(buf.Bytes(), []byte("\n"))
	return
}

// expand decodes strings holding a json object or array
func expand(raw any) any {

	str, ok := raw.(string)
	if !ok {
		return raw
	}

	trimmed := strings.TrimSpace(str)
	if !strings.HasPrefix(trimmed, "{") && !strings.HasPrefix(trimmed, "[") {
		return raw
	}
	if !gjson.Valid(trimmed) {
		return raw
	}

	return gjson.Parse(trimmed).Value()
}
