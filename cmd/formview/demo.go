package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formview/pkg/form"
	"github.com/goliatone/go-formview/pkg/widgets"
)

var (
	errAgeNotNumber = errors.New("age must be a whole number")
	errAgeRange     = errors.New("age must be between 0 and 150")
	errNameRequired = errors.New("first name is required")
)

type person struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address   string `json:"address"`
	Age       int64  `json:"age"`
	Zip       string `json:"zip"`
}

// buildPerson lays out the user form: the first name takes two thirds of
// its row, age shares a row with a double spacer and the postal section is
// separated by an empty row.
func buildPerson(factory widgets.Factory, opts ...form.Option) *form.Form[person] {
	f := form.New[person](opts...)

	title := f.BindView(factory.Heading("User Form"))
	first := form.BindInput(f,
		factory.Text(widgets.Spec{Name: "first_name", Label: "First name", Required: true}),
		form.Validate(func(p *person, v string) { p.FirstName = v }, func(v string) error {
			if v == "" {
				return errNameRequired
			}
			return nil
		}))
	last := form.BindInput(f,
		factory.Text(widgets.Spec{Name: "last_name", Label: "Last name"}),
		form.Set(func(p *person, v string) { p.LastName = v }))
	address := form.BindInput(f,
		factory.Text(widgets.Spec{Name: "address", Label: "Address"}),
		form.Set(func(p *person, v string) { p.Address = v }))
	age := form.BindInput(f,
		factory.Integer(widgets.Spec{Name: "age", Label: "Age", Type: widgets.TypeInteger}),
		func(p *person, v int64, ok bool) (bool, error) {
			if !ok {
				return false, errAgeNotNumber
			}
			if v < 0 || v > 150 {
				return false, errAgeRange
			}
			p.Age = v
			return true, nil
		})
	postal := f.BindView(factory.Heading("Postal"))
	zip := form.BindInput(f,
		factory.Text(widgets.Spec{Name: "zip", Label: "Zip code"}),
		form.Set(func(p *person, v string) { p.Zip = v }))

	f.AddRow(form.Elems(title)...)
	f.AddRow(form.Elem(first, 2), form.Elem(last, 1))
	f.AddRow(form.Elems(address)...)
	f.AddRow(form.Elem(age, 1), form.Spacer(2))
	f.AddRow(form.Spacer(1))
	f.AddRow(form.Elems(postal)...)
	f.AddRow(form.Elem(zip, 1), form.Spacer(1))
	return f
}

func newDemoCmd(g *globals) *cobra.Command {
	var serveFlag bool
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Present the built-in user form",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newPresenter(g, "FormView")
			if err != nil {
				return err
			}
			p.serve = serveFlag
			opts, err := p.formOptions()
			if err != nil {
				return err
			}
			newForm := func() (*form.Form[person], error) {
				return buildPerson(p.factory, opts...), nil
			}
			return present(cmd.Context(), p, newForm, func() person { return person{} }, cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVar(&serveFlag, "serve", false, "serve the html form over HTTP")
	return cmd
}
