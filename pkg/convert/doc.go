// Package convert describes the text round-trip capability form inputs rely
// on. A value type is convertible when it can be parsed (fallibly) from the
// text a user typed and rendered back to text that parses to the same value.
// The built-in conformers are the signed and unsigned integers of every width,
// both float widths and strings; other types join through a Codec, either
// hand-written or derived from encoding.TextMarshaler/TextUnmarshaler.
//
// Modality is a separate, advisory capability: it tells a widget which kind of
// input method suits a type (numeric keypad, decimal keypad, free text). It is
// never required for correctness.
package convert
