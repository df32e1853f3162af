package terminal

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-formview/pkg/form"
	"github.com/goliatone/go-formview/pkg/layout"
)

type person struct {
	Name string
	Age  int
}

var errMinor = errors.New("must be 18 or older")

func personProgram(t *testing.T, opts ...ProgramOption) (*Program[person], *TextField[string], *TextField[int]) {
	t.Helper()
	f := form.New[person](form.WithLayoutConfig(layout.TerminalConfig()))
	name := NewTextField[string]("Name")
	age := NewTextField[int]("Age")

	nameID := form.BindInput(f, name, form.Set(func(p *person, v string) { p.Name = v }))
	ageID := form.BindInput(f, age, form.Validate(
		func(p *person, v int) { p.Age = v },
		func(v int) error {
			if v < 18 {
				return errMinor
			}
			return nil
		},
	))
	f.AddRow(form.Elem(nameID, 2), form.Elem(ageID, 1))

	return NewProgram(f, nil, append([]ProgramOption{WithWidth(40)}, opts...)...), name, age
}

func key(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func TestProgram_FocusCycles(t *testing.T) {
	p, name, age := personProgram(t)
	require.True(t, name.Focused(), "first input is focused on start")

	p.Update(key(tea.KeyTab))
	require.True(t, age.Focused())
	require.False(t, name.Focused())

	p.Update(key(tea.KeyTab))
	require.True(t, name.Focused())

	p.Update(key(tea.KeyShiftTab))
	require.True(t, age.Focused())
}

func TestProgram_TypingGoesToFocusedField(t *testing.T) {
	p, name, age := personProgram(t)

	p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Ada")})
	p.Update(key(tea.KeyTab))
	p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("36")})

	require.Equal(t, "Ada", name.Text())
	require.Equal(t, "36", age.Text())
}

func TestProgram_SubmitFailureKeepsRunning(t *testing.T) {
	p, name, age := personProgram(t)
	name.SetText("Ada")
	age.SetText("12")

	_, cmd := p.Update(key(tea.KeyEnter))
	require.Nil(t, cmd)

	res, ok := p.Last()
	require.True(t, ok)
	require.False(t, res.Resolution.OK)
	require.Equal(t, "Ada", res.Model.Name)
	require.Contains(t, p.View(), "Age: must be 18 or older")
}

func TestProgram_SubmitSuccessQuits(t *testing.T) {
	p, name, age := personProgram(t, WithTitle("Person"))
	name.SetText("Ada")
	age.SetText("36")

	_, cmd := p.Update(key(tea.KeyEnter))
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())

	res, ok := p.Last()
	require.True(t, ok)
	require.Equal(t, person{Name: "Ada", Age: 36}, res.Model)

	view := p.View()
	require.Contains(t, view, "Person")
	require.Contains(t, view, "✓")
}

func TestProgram_StaysOpenWhenConfigured(t *testing.T) {
	p, name, age := personProgram(t, WithQuitOnSuccess(false))
	name.SetText("Ada")
	age.SetText("36")

	_, cmd := p.Update(key(tea.KeyEnter))
	require.Nil(t, cmd)
}

func TestProgram_EscQuits(t *testing.T) {
	p, _, _ := personProgram(t)
	_, cmd := p.Update(key(tea.KeyEsc))
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())

	_, ok := p.Last()
	require.False(t, ok)
}

func TestProgram_ResizeRelayouts(t *testing.T) {
	p, _, _ := personProgram(t)
	before := p.canvas.Frames()

	p.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	after := p.canvas.Frames()

	require.Len(t, after, 2)
	require.Greater(t, after[1].Width, before[1].Width)
}
