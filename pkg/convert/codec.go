package convert

import (
	"encoding"
	"fmt"
)

// Codec bundles the text round-trip for a value type. Widgets are generic over
// any T and take a Codec, so custom types can be bound next to the built-ins.
type Codec[T any] struct {
	Parse    func(text string) (T, bool)
	Format   func(value T) string
	Modality Modality
}

// CodecFor returns the codec for a built-in convertible type.
func CodecFor[T Value]() Codec[T] {
	return Codec[T]{
		Parse:    Parse[T],
		Format:   Format[T],
		Modality: PreferredModality[T](),
	}
}

// TextCodec derives a codec from the encoding.TextUnmarshaler implemented by
// *T. Formatting uses encoding.TextMarshaler when T (or *T) implements it and
// falls back to fmt otherwise.
func TextCodec[T any, PT interface {
	*T
	encoding.TextUnmarshaler
}]() Codec[T] {
	return Codec[T]{
		Parse: func(text string) (T, bool) {
			var out T
			if err := PT(&out).UnmarshalText([]byte(text)); err != nil {
				var zero T
				return zero, false
			}
			return out, true
		},
		Format: func(value T) string {
			if m, ok := any(value).(encoding.TextMarshaler); ok {
				if b, err := m.MarshalText(); err == nil {
					return string(b)
				}
			}
			if m, ok := any(&value).(encoding.TextMarshaler); ok {
				if b, err := m.MarshalText(); err == nil {
					return string(b)
				}
			}
			return fmt.Sprint(value)
		},
		Modality: ModalityText,
	}
}

// Valid reports whether the codec can be used.
func (c Codec[T]) Valid() bool {
	return c.Parse != nil && c.Format != nil
}
