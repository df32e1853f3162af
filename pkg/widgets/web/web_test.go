package web

import (
	"errors"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formview/pkg/form"
	"github.com/goliatone/go-formview/pkg/widgets"
)

type signup struct {
	Email string
	Age   int64
}

var errTooYoung = errors.New("must be 18 or older")

func signupForm() (*form.Form[signup], *TextField[string], *TextField[int64]) {
	f := form.New[signup]()
	email := NewTextField[string]("email", "Email", WithRequired())
	age := NewTextField[int64]("age", "Age")

	emailID := form.BindInput(f, email, form.Set(func(s *signup, v string) { s.Email = v }))
	ageID := form.BindInput(f, age, form.Validate(
		func(s *signup, v int64) { s.Age = v },
		func(v int64) error {
			if v < 18 {
				return errTooYoung
			}
			return nil
		},
	))
	f.AddRow(form.Elem(emailID, 2), form.Elem(ageID, 1))
	return f, email, age
}

func TestDecodeResolveAnnotate(t *testing.T) {
	f, email, age := signupForm()

	n := Decode(f, url.Values{"email": {"ada@example.com"}, "age": {"12"}, "other": {"x"}})
	if n != 2 {
		t.Fatalf("want 2 fields decoded, got %d", n)
	}

	var s signup
	res := f.Resolve(&s)
	Annotate(f, res)

	if res.OK {
		t.Fatalf("age 12 should fail validation")
	}
	if diff := cmp.Diff([]string{"must be 18 or older"}, age.Errors()); diff != "" {
		t.Fatalf("age errors mismatch (-want +got):\n%s", diff)
	}
	if len(email.Errors()) != 0 {
		t.Fatalf("email should have no errors, got %v", email.Errors())
	}

	Decode(f, url.Values{"age": {"36"}})
	res = f.Resolve(&s)
	Annotate(f, res)

	if !res.OK || len(age.Errors()) != 0 {
		t.Fatalf("second submission should clear errors: ok=%v errors=%v", res.OK, age.Errors())
	}
	if diff := cmp.Diff(signup{Email: "ada@example.com", Age: 36}, s); diff != "" {
		t.Fatalf("model mismatch (-want +got):\n%s", diff)
	}
}

func TestAnnotate_FailureWithoutReason(t *testing.T) {
	f := form.New[signup]()
	age := NewTextField[int64]("age", "Age")
	id := form.BindInput(f, age, form.Set(func(s *signup, v int64) { s.Age = v }))
	f.AddRow(form.Elems(id)...)

	age.SetText("abc")
	var s signup
	Annotate(f, f.Resolve(&s))

	if diff := cmp.Diff([]string{"invalid value"}, age.Errors()); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestTextField_Control(t *testing.T) {
	age := NewTextField[int]("age", "Age", WithPlaceholder("years"), WithInitialText("4"))
	age.Focus()
	age.AddError("too young")

	want := Control{
		Kind:        KindInput,
		Name:        "age",
		Label:       "Age",
		Value:       "4",
		Placeholder: "years",
		Type:        "text",
		InputMode:   "numeric",
		Autofocus:   true,
		Errors:      []string{"too young"},
	}
	if diff := cmp.Diff(want, age.Control()); diff != "" {
		t.Fatalf("control mismatch (-want +got):\n%s", diff)
	}

	pw := NewTextField[string]("pw", "Password", WithSecret(), WithInitialText("hunter2"))
	if c := pw.Control(); c.Type != "password" || c.Value != "" {
		t.Fatalf("secret fields must not echo their value: %+v", c)
	}
	if pw.Text() != "hunter2" {
		t.Fatalf("secret text should still be readable, got %q", pw.Text())
	}
}

func TestFactory(t *testing.T) {
	var factory Factory
	in := factory.Number(widgets.Spec{Name: "ratio", Default: "0.5", Required: true})

	field, ok := in.(*TextField[float64])
	if !ok {
		t.Fatalf("unexpected input type %T", in)
	}
	c := field.Control()
	if c.Name != "ratio" || c.Label != "ratio" || !c.Required || c.InputMode != "decimal" {
		t.Fatalf("unexpected control: %+v", c)
	}
	if v, ok := field.Output(); !ok || v != 0.5 {
		t.Fatalf("default should convert, got %v %v", v, ok)
	}
	if h, ok := factory.Heading("Title").(Controller); !ok || h.Control().Kind != KindHeading {
		t.Fatalf("heading should be a heading control")
	}
}
