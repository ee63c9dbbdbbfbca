// ABOUTME: Small multi-field input forms built on bubbles/textinput.
// ABOUTME: Used for adding exercises, meals and water, and editing a setting.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type formKind int

const (
	formExercise formKind = iota
	formMeal
	formWater
	formSetting
)

type form struct {
	kind   formKind
	title  string
	key    string // setting key for formSetting
	labels []string
	inputs []textinput.Model
	focus  int
}

func newForm(kind formKind, title string, fields ...[2]string) *form {
	f := &form{kind: kind, title: title}
	for i, fd := range fields {
		in := textinput.New()
		in.Placeholder = fd[1]
		in.CharLimit = 64
		in.Width = 30
		if i == 0 {
			in.Focus()
		}
		f.labels = append(f.labels, fd[0])
		f.inputs = append(f.inputs, in)
	}
	return f
}

func exerciseForm() *form {
	return newForm(formExercise, "Add Exercise",
		[2]string{"Name", "Running"},
		[2]string{"Duration (min)", "30"},
		[2]string{"Calories", "300"},
		[2]string{"Time", "7:00 AM"},
	)
}

func mealForm() *form {
	return newForm(formMeal, "Add Meal",
		[2]string{"Name", "Oatmeal"},
		[2]string{"Type", "breakfast, lunch, snacks or dinner"},
		[2]string{"Calories", "350"},
	)
}

func waterForm() *form {
	return newForm(formWater, "Add Water", [2]string{"Liters", "0.25"})
}

func settingForm(key, label, value string) *form {
	f := newForm(formSetting, "Edit "+label, [2]string{label, value})
	f.key = key
	f.inputs[0].SetValue(value)
	return f
}

func (f *form) value(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

func (f *form) move(delta int) {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}
