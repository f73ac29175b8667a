package tui

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// fieldKind distinguishes how a form field is edited and rendered.
type fieldKind int

const (
	fieldText fieldKind = iota
	fieldPassword
	fieldChoice // cycled with left/right
	fieldToggle // flipped with space/left/right
)

// field is one entry of a modal form.
type field struct {
	key      string
	label    string
	kind     fieldKind
	required bool
	maxRunes int // 0 = unlimited; counter shown when set

	input     textinput.Model
	choices   []string
	choiceIdx int
	on        bool
}

func textField(key, label string, required bool) field {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 0
	return field{key: key, label: label, kind: fieldText, required: required, input: ti}
}

func limitedField(key, label string, required bool, maxRunes int) field {
	f := textField(key, label, required)
	f.maxRunes = maxRunes
	return f
}

func passwordField(key, label string) field {
	f := textField(key, label, true)
	f.kind = fieldPassword
	f.input.EchoMode = textinput.EchoPassword
	f.input.EchoCharacter = '•'
	return f
}

func choiceField(key, label string, choices []string) field {
	return field{key: key, label: label, kind: fieldChoice, choices: choices, input: textinput.New()}
}

func toggleField(key, label string, on bool) field {
	return field{key: key, label: label, kind: fieldToggle, on: on, input: textinput.New()}
}

// formModel is the reusable modal form widget: a titled list of fields with
// one focused at a time. It renders and edits fields; lifecycle (open,
// submitting, error) belongs to the owning view's viewstate.Form.
type formModel struct {
	title  string
	fields []field
	focus  int
}

func newFormModel(title string, fields ...field) formModel {
	m := formModel{title: title, fields: fields}
	if len(m.fields) > 0 {
		m.fields[0].input.Focus()
	}
	return m
}

// setValue assigns a field's current value by key; used for edit prefill.
func (m *formModel) setValue(key, value string) {
	for i := range m.fields {
		if m.fields[i].key != key {
			continue
		}
		switch m.fields[i].kind {
		case fieldChoice:
			for j, c := range m.fields[i].choices {
				if c == value {
					m.fields[i].choiceIdx = j
					break
				}
			}
		case fieldToggle:
			m.fields[i].on = value == "true"
		default:
			m.fields[i].input.SetValue(value)
		}
		return
	}
}

// setChoices replaces a choice field's option list, e.g. once server enums
// arrive.
func (m *formModel) setChoices(key string, choices []string) {
	for i := range m.fields {
		if m.fields[i].key == key {
			m.fields[i].choices = choices
			if m.fields[i].choiceIdx >= len(choices) {
				m.fields[i].choiceIdx = 0
			}
			return
		}
	}
}

// value returns a field's current value by key. Choices yield the selected
// option, toggles "true"/"false".
func (m *formModel) value(key string) string {
	for i := range m.fields {
		if m.fields[i].key != key {
			continue
		}
		f := &m.fields[i]
		switch f.kind {
		case fieldChoice:
			if len(f.choices) == 0 {
				return ""
			}
			return f.choices[f.choiceIdx]
		case fieldToggle:
			return strconv.FormatBool(f.on)
		default:
			return strings.TrimSpace(f.input.Value())
		}
	}
	return ""
}

// intValue parses a field as an integer, returning fallback on blank or
// malformed input.
func (m *formModel) intValue(key string, fallback int) int {
	v := m.value(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// validate runs the client-side checks: required fields present and rune
// limits respected. The first violation is returned as the display message.
func (m *formModel) validate() string {
	for i := range m.fields {
		f := &m.fields[i]
		v := m.value(f.key)
		if f.required && v == "" {
			return fmt.Sprintf("%s is required", f.label)
		}
		if f.maxRunes > 0 {
			if c := utf8.RuneCountInString(v); c > f.maxRunes {
				return fmt.Sprintf("%s is %d characters, maximum is %d", f.label, c, f.maxRunes)
			}
		}
	}
	return ""
}

// reset clears all fields and focuses the first one.
func (m *formModel) reset() {
	for i := range m.fields {
		m.fields[i].input.SetValue("")
		m.fields[i].input.Blur()
		m.fields[i].choiceIdx = 0
		m.fields[i].on = false
	}
	m.focus = 0
	if len(m.fields) > 0 {
		m.fields[0].input.Focus()
	}
}

func (m *formModel) focusField(idx int) {
	if idx < 0 || idx >= len(m.fields) {
		return
	}
	m.fields[m.focus].input.Blur()
	m.focus = idx
	m.fields[m.focus].input.Focus()
}

func (m *formModel) nextField() { m.focusField((m.focus + 1) % len(m.fields)) }
func (m *formModel) prevField() { m.focusField((m.focus - 1 + len(m.fields)) % len(m.fields)) }

// handleKey edits the focused field. Navigation between fields and
// submit/cancel keys are handled by the owning view before delegating here.
func (m *formModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if len(m.fields) == 0 {
		return nil
	}
	f := &m.fields[m.focus]

	switch f.kind {
	case fieldChoice:
		switch msg.String() {
		case "left", "h":
			if len(f.choices) > 0 {
				f.choiceIdx = (f.choiceIdx - 1 + len(f.choices)) % len(f.choices)
			}
		case "right", "l", " ":
			if len(f.choices) > 0 {
				f.choiceIdx = (f.choiceIdx + 1) % len(f.choices)
			}
		}
		return nil
	case fieldToggle:
		switch msg.String() {
		case " ", "left", "right", "h", "l":
			f.on = !f.on
		}
		return nil
	default:
		var cmd tea.Cmd
		f.input, cmd = f.input.Update(msg)
		return cmd
	}
}

// view renders the form with the given error line and submitting state.
func (m *formModel) view(errText string, submitting bool) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")

	for i := range m.fields {
		f := &m.fields[i]
		cursor := "  "
		if i == m.focus {
			cursor = "> "
		}

		var val string
		switch f.kind {
		case fieldChoice:
			val = "< " + m.value(f.key) + " >"
		case fieldToggle:
			if f.on {
				val = "[x]"
			} else {
				val = "[ ]"
			}
		default:
			val = f.input.View()
		}

		label := f.label
		if f.required {
			label += " *"
		}
		if f.maxRunes > 0 {
			label += fmt.Sprintf(" (%d/%d)", utf8.RuneCountInString(m.value(f.key)), f.maxRunes)
		}

		b.WriteString(cursor + labelStyle.Render(label) + ": " + val + "\n")
	}

	if errText != "" {
		b.WriteString("\n" + errorStyle.Render(errText) + "\n")
	}
	if submitting {
		b.WriteString("\n" + dimStyle.Render("saving…") + "\n")
	} else {
		b.WriteString(helpStyle.Render("tab/↓ next · ↑ prev · enter save · esc cancel"))
	}
	return panelStyle.Render(b.String())
}
