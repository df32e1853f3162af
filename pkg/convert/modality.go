package convert

import "reflect"

// Modality is an input-method hint. It mirrors the keyboard a touch UI would
// bring up for a field and drives placeholders and character filters in the
// terminal and web widgets.
type Modality int

const (
	// ModalityText accepts any text.
	ModalityText Modality = iota
	// ModalityNumeric accepts an optionally signed whole number.
	ModalityNumeric
	// ModalityDecimal accepts a number with a fractional part.
	ModalityDecimal
)

// String reports the modality name.
func (m Modality) String() string {
	switch m {
	case ModalityNumeric:
		return "numeric"
	case ModalityDecimal:
		return "decimal"
	default:
		return "text"
	}
}

// HTMLInputMode maps the modality onto the inputmode attribute, whose values
// match the modality names.
func (m Modality) HTMLInputMode() string {
	return m.String()
}

// Accepts reports whether r may appear in text typed for this modality.
func (m Modality) Accepts(r rune) bool {
	switch m {
	case ModalityNumeric:
		return (r >= '0' && r <= '9') || r == '-' || r == '+'
	case ModalityDecimal:
		return (r >= '0' && r <= '9') || r == '-' || r == '+' || r == '.' || r == 'e' || r == 'E'
	default:
		return true
	}
}

// PreferredModality reports the modality suited to T.
func PreferredModality[T Value]() Modality {
	var zero T
	return modalityOf(reflect.TypeOf(zero))
}

func modalityOf(typ reflect.Type) Modality {
	if typ == nil {
		return ModalityText
	}
	switch typ.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return ModalityNumeric
	case reflect.Float32, reflect.Float64:
		return ModalityDecimal
	default:
		return ModalityText
	}
}
