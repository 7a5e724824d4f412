package argv

import "strconv"

// Value is a single option value produced by the tokenizer. It holds either
// text (from --name=value) or a boolean flag state (from --name / --no-name).
// The zero Value is an empty string.
type Value struct {
	text   string
	flag   bool
	isBool bool
}

// String returns a textual Value.
func String(s string) Value {
	return Value{text: s}
}

// Bool returns a boolean Value.
func Bool(b bool) Value {
	return Value{flag: b, isBool: true}
}

// IsBool reports whether the value came from a bare flag.
func (v Value) IsBool() bool {
	return v.isBool
}

// IsText reports whether the value carries text.
func (v Value) IsText() bool {
	return !v.isBool
}

// Text returns the textual content. Boolean values render as "true"/"false".
func (v Value) Text() string {
	if v.isBool {
		return strconv.FormatBool(v.flag)
	}
	return v.text
}

// Flag returns the boolean state. Text values are never a set flag.
func (v Value) Flag() bool {
	return v.isBool && v.flag
}

// Truthy reports whether the value counts as present: a true flag or
// non-empty text.
func (v Value) Truthy() bool {
	if v.isBool {
		return v.flag
	}
	return v.text != ""
}

func (v Value) String() string {
	if v.isBool {
		return v.Text()
	}
	return strconv.Quote(v.text)
}
