package convert

import (
	"reflect"
	"strconv"
	"strings"
)

// Value lists the built-in convertible kinds. Named types over these kinds
// (type Age int) are accepted too.
type Value interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 |
		~string
}

// Parse converts text into T. Numeric kinds trim surrounding whitespace and
// honour the bit width of T, so "300" does not parse as an int8. Strings are
// returned verbatim and always succeed.
func Parse[T Value](text string) (T, bool) {
	var out T
	rv := reflect.ValueOf(&out).Elem()
	switch rv.Kind() {
	case reflect.String:
		rv.SetString(text)
		return out, true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(strings.TrimSpace(text), 10, rv.Type().Bits())
		if err != nil {
			return out, false
		}
		rv.SetInt(n)
		return out, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(strings.TrimSpace(text), 10, rv.Type().Bits())
		if err != nil {
			return out, false
		}
		rv.SetUint(n)
		return out, true
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(strings.TrimSpace(text), rv.Type().Bits())
		if err != nil {
			return out, false
		}
		rv.SetFloat(f)
		return out, true
	}
	return out, false
}

// Format renders v as text that Parse accepts back. Floats use the shortest
// representation that round-trips at the width of T.
func Format[T Value](v T) string {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, rv.Type().Bits())
	}
	return ""
}
