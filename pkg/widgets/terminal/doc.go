// Package terminal provides form widgets drawn in a terminal with bubbletea.
//
// TextField wraps a bubbles text input and satisfies form.Input. Canvas is a
// layout.Surface that turns placed rectangles into a block of text, and
// Program drives a form interactively:
//
//	f := form.New[Person](form.WithLayoutConfig(layout.TerminalConfig()))
//	name := terminal.NewTextField[string]("Name")
//	id := form.BindInput(f, name, form.Set(setName))
//	f.AddRow(form.Elems(id)...)
//
//	res, err := terminal.NewProgram(f, func() Person { return Person{} }).Run(ctx)
package terminal
