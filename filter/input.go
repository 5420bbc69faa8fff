package filter

import (
	tea "charm.land/bubbletea/v2"
)

const maxValueLength = 100

// textInput is an editable text field
type textInput struct {
	value  []rune
	cursor int
}

func newTextInput(value string) textInput {
	runes := []rune(value)
	return textInput{
		value:  runes,
		cursor: len(runes),
	}
}

func (t textInput) update(msg tea.KeyPressMsg) textInput {

	switch msg.String() {
	case "backspace":
		if t.cursor > 0 {
			t.value = append(t.value[:t.cursor-1:t.cursor-1], t.value[t.cursor:]...)
			t.cursor--
		}
	case "delete":
		if t.cursor < len(t.value) {
			t.value = append(t.value[:t.cursor:t.cursor], t.value[t.cursor+1:]...)
		}
	case "left":
		if t.cursor > 0 {
			t.cursor--
		}
	case "right":
		if t.cursor < len(t.value) {
			t.cursor++
		}
	case "home", "ctrl+a":
		t.cursor = 0
	case "end", "ctrl+e":
		t.cursor = len(t.value)
	default:
		// Insert typed text, ignoring chords
		if msg.Text == "" || msg.Mod.Contains(tea.ModCtrl) || msg.Mod.Contains(tea.ModAlt) {
			break
		}
		text := []rune(msg.Text)
		if len(t.value)+len(text) > maxValueLength {
			break
		}
		value := append([]rune{}, t.value[:t.cursor]...)
		value = append(value, text...)
		t.value = append(value, t.value[t.cursor:]...)
		t.cursor += len(text)
	}

	return t
}

func (t textInput) String() string {
	return string(t.value)
}

// render shows the value with a block cursor when focused
func (t textInput) render(focused bool) string {
	if !focused {
		return string(t.value)
	}
	return string(t.value[:t.cursor]) + "█" + string(t.value[t.cursor:])
}
