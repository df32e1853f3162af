package openapi

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/getkin/kin-openapi/openapi3"
	"go.uber.org/zap"

	"github.com/goliatone/go-formview/pkg/form"
	"github.com/goliatone/go-formview/pkg/widgets"
)

// Values is the model OpenAPI forms resolve into.
type Values map[string]any

// Option configures a Builder.
type Option func(*Builder)

// WithRegistry replaces the widget registry.
func WithRegistry(reg *widgets.Registry) Option {
	return func(b *Builder) {
		if reg != nil {
			b.registry = reg
		}
	}
}

// WithFormOptions forwards options to form.New.
func WithFormOptions(opts ...form.Option) Option {
	return func(b *Builder) {
		b.formOptions = append(b.formOptions, opts...)
	}
}

// WithMediaType selects the request body content entry.
func WithMediaType(mediaType string) Option {
	return func(b *Builder) {
		b.mediaType = strings.TrimSpace(mediaType)
	}
}

// WithLogger sets the logger reporting skipped properties.
func WithLogger(l *zap.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithoutTitle drops the heading row derived from the schema title.
func WithoutTitle() Option {
	return func(b *Builder) {
		b.skipTitle = true
	}
}

// Builder turns request body schemas into forms.
type Builder struct {
	factory     widgets.Factory
	registry    *widgets.Registry
	formOptions []form.Option
	mediaType   string
	logger      *zap.Logger
	skipTitle   bool
}

// NewBuilder creates a builder drawing widgets from factory.
func NewBuilder(factory widgets.Factory, options ...Option) *Builder {
	b := &Builder{
		factory:  factory,
		registry: widgets.NewRegistry(),
		logger:   zap.NewNop(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(b)
		}
	}
	return b
}

// Build loads data and builds the form of the operation's request body.
func (b *Builder) Build(ctx context.Context, data []byte, operationID string) (*form.Form[Values], error) {
	doc, err := Load(ctx, data)
	if err != nil {
		return nil, err
	}
	return b.BuildOperation(doc, operationID)
}

// BuildOperation builds the form of an operation in a loaded document.
func (b *Builder) BuildOperation(doc *openapi3.T, operationID string) (*form.Form[Values], error) {
	schema, err := RequestSchema(doc, operationID, b.mediaType)
	if err != nil {
		return nil, err
	}
	return b.BuildSchema(schema)
}

type property struct {
	name   string
	schema *openapi3.Schema
	spec   widgets.Spec
	hints  placementHints
}

// BuildSchema builds a form from an object schema.
func (b *Builder) BuildSchema(schema *openapi3.Schema) (*form.Form[Values], error) {
	if b.factory == nil {
		return nil, fmt.Errorf("openapi: builder has no widget factory")
	}
	if schema == nil || len(schema.Properties) == 0 {
		return nil, ErrNotObject
	}

	f := form.New[Values](b.formOptions...)
	if title := strings.TrimSpace(schema.Title); title != "" && !b.skipTitle {
		head := f.BindView(b.factory.Heading(title))
		f.AddRow(form.Elems(head)...)
		f.AddRow(form.Spacer(1))
	}

	props := b.properties(schema)
	var rows [][]form.Element
	rowIndex := make(map[int]int)
	for _, p := range props {
		id := b.bind(f, p)
		el := form.Elem(id, p.hints.weight)
		if p.hints.row > 0 {
			if at, ok := rowIndex[p.hints.row]; ok {
				rows[at] = append(rows[at], el)
				continue
			}
			rowIndex[p.hints.row] = len(rows)
		}
		rows = append(rows, []form.Element{el})
	}
	for _, row := range rows {
		f.AddRow(row...)
	}
	return f, nil
}

func (b *Builder) properties(schema *openapi3.Schema) []property {
	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}

	var props []property
	for name, ref := range schema.Properties {
		if ref == nil || ref.Value == nil {
			continue
		}
		typ := schemaType(ref.Value)
		if typ == "object" || typ == "array" {
			b.logger.Warn("openapi: skipping nested property",
				zap.String("property", name),
				zap.String("type", typ))
			continue
		}
		hints := readHints(ref.Value.Extensions)
		props = append(props, property{
			name:   name,
			schema: ref.Value,
			spec:   specFor(name, ref.Value, required[name], hints),
			hints:  hints,
		})
	}

	sort.SliceStable(props, func(i, j int) bool {
		a, c := props[i].hints, props[j].hints
		if a.hasOrder != c.hasOrder {
			return a.hasOrder
		}
		if a.hasOrder && a.order != c.order {
			return a.order < c.order
		}
		return props[i].name < props[j].name
	})
	return props
}

func specFor(name string, schema *openapi3.Schema, required bool, hints placementHints) widgets.Spec {
	spec := widgets.Spec{
		Name:     name,
		Label:    strings.TrimSpace(schema.Title),
		Help:     strings.TrimSpace(schema.Description),
		Type:     schemaType(schema),
		Format:   schema.Format,
		Required: required,
	}
	if spec.Label == "" {
		spec.Label = humanize(name)
	}
	if schema.Default != nil {
		spec.Default = fmt.Sprint(schema.Default)
	}
	if schema.Example != nil {
		spec.Placeholder = fmt.Sprint(schema.Example)
	}
	if hints.widget != "" {
		spec.Hints = map[string]string{"widget": hints.widget}
	}
	return spec
}

func (b *Builder) bind(f *form.Form[Values], p property) form.ID {
	switch b.registry.Resolve(p.spec) {
	case widgets.KindInteger:
		in := b.factory.Integer(p.spec)
		return form.BindInput(f, in, assign(p, in, func(v int64) (any, error) {
			return v, checkNumber(p.schema, float64(v))
		}))
	case widgets.KindNumber:
		in := b.factory.Number(p.spec)
		return form.BindInput(f, in, assign(p, in, func(v float64) (any, error) {
			return v, checkNumber(p.schema, v)
		}))
	case widgets.KindSecret:
		in := b.factory.Secret(p.spec)
		return form.BindInput(f, in, assign(p, in, func(v string) (any, error) {
			return v, checkString(p.schema, v)
		}))
	default:
		in := b.factory.Text(p.spec)
		return form.BindInput(f, in, assign(p, in, func(v string) (any, error) {
			return textValue(p.schema, v)
		}))
	}
}

// assign stores the converted value under the property name. Empty input is
// an error for required properties and removes optional ones.
func assign[V any](p property, in form.Input[V], convert func(V) (any, error)) form.Assign[Values, V] {
	name, required := p.name, p.spec.Required
	return func(m *Values, v V, ok bool) (bool, error) {
		if strings.TrimSpace(in.Text()) == "" {
			if required {
				return false, &FieldError{Field: name, Err: ErrRequired}
			}
			delete(*m, name)
			return true, nil
		}
		if !ok {
			return false, &FieldError{Field: name, Err: ErrInvalidValue}
		}
		value, err := convert(v)
		if err != nil {
			return false, &FieldError{Field: name, Err: err}
		}
		if *m == nil {
			*m = make(Values)
		}
		(*m)[name] = value
		return true, nil
	}
}

func textValue(schema *openapi3.Schema, text string) (any, error) {
	switch schemaType(schema) {
	case widgets.TypeBoolean:
		v, err := strconv.ParseBool(strings.TrimSpace(text))
		if err != nil {
			return nil, ErrInvalidValue
		}
		return v, nil
	case widgets.TypeInteger:
		v, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
		if err != nil {
			return nil, ErrInvalidValue
		}
		return v, checkNumber(schema, float64(v))
	case widgets.TypeNumber:
		v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			return nil, ErrInvalidValue
		}
		return v, checkNumber(schema, v)
	}
	return text, checkString(schema, text)
}

func checkString(schema *openapi3.Schema, v string) error {
	n := uint64(utf8.RuneCountInString(v))
	if n < schema.MinLength {
		return fmt.Errorf("%w: at least %d characters", ErrOutOfRange, schema.MinLength)
	}
	if schema.MaxLength != nil && n > *schema.MaxLength {
		return fmt.Errorf("%w: at most %d characters", ErrOutOfRange, *schema.MaxLength)
	}
	return checkEnum(schema, v)
}

func checkNumber(schema *openapi3.Schema, v float64) error {
	if schema.Min != nil && (v < *schema.Min || (schema.ExclusiveMin && v == *schema.Min)) {
		return fmt.Errorf("%w: minimum is %v", ErrOutOfRange, *schema.Min)
	}
	if schema.Max != nil && (v > *schema.Max || (schema.ExclusiveMax && v == *schema.Max)) {
		return fmt.Errorf("%w: maximum is %v", ErrOutOfRange, *schema.Max)
	}
	return checkEnum(schema, strconv.FormatFloat(v, 'f', -1, 64))
}

func checkEnum(schema *openapi3.Schema, v string) error {
	if len(schema.Enum) == 0 {
		return nil
	}
	for _, allowed := range schema.Enum {
		if fmt.Sprint(allowed) == v {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrNotAllowed, v)
}

func schemaType(schema *openapi3.Schema) string {
	if schema == nil || schema.Type == nil {
		return ""
	}
	types := schema.Type.Slice()
	for _, t := range types {
		if t != "null" {
			return t
		}
	}
	return ""
}

// humanize turns first_name or firstName into "First name".
func humanize(name string) string {
	var words []string
	var current []rune
	flush := func() {
		if len(current) > 0 {
			words = append(words, strings.ToLower(string(current)))
			current = current[:0]
		}
	}
	for i, r := range name {
		switch {
		case r == '_' || r == '-' || r == ' ' || r == '.':
			flush()
		case unicode.IsUpper(r) && i > 0:
			flush()
			current = append(current, r)
		default:
			current = append(current, r)
		}
	}
	flush()
	if len(words) == 0 {
		return name
	}
	first := []rune(words[0])
	first[0] = unicode.ToUpper(first[0])
	words[0] = string(first)
	return strings.Join(words, " ")
}
