package sii

import (
	"strconv"
	"strings"
)

// MaxSafeInteger is the largest magnitude stored as a Number. Larger
// integers are kept as NumericString so no digit is lost.
const MaxSafeInteger = 1<<53 - 1

// =========================
// Constructors
// =========================

func Number(i int64) *Value { return &Value{Type: ValueKinds.Number, V: i} }

func Bool(b bool) *Value { return &Value{Type: ValueKinds.Bool, V: b} }

func String(s string) *Value { return &Value{Type: ValueKinds.String, V: s} }

func NumericString(s string) *Value { return &Value{Type: ValueKinds.NumericString, V: s} }

func HexFloat(s string) *Value { return &Value{Type: ValueKinds.HexFloat, V: s} }

// ParseValue classifies a raw value token. Hex-float literals win over
// booleans, booleans over numerals, and anything left is a plain string.
func ParseValue(raw string) *Value {
	if isHexFloat(raw) {
		return HexFloat(raw)
	}
	if strings.EqualFold(raw, "true") {
		return Bool(true)
	}
	if strings.EqualFold(raw, "false") {
		return Bool(false)
	}
	if ok, hasDot := scanNumeral(raw); ok {
		if hasDot {
			return NumericString(raw)
		}
		i, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || i > MaxSafeInteger || i < -MaxSafeInteger {
			return NumericString(raw)
		}
		return Number(i)
	}
	return String(raw)
}

// =========================
// Accessors
// =========================

// Text returns the value in the form the encoder writes it.
func (v *Value) Text() string {
	switch x := v.V.(type) {
	case int64:
		return strconv.FormatInt(x, 10)
	case bool:
		return strconv.FormatBool(x)
	case string:
		return x
	default:
		return ""
	}
}

func (v *Value) String() string { return v.Text() }

// Int returns the value of a Number.
func (v *Value) Int() (int64, bool) {
	i, ok := v.V.(int64)
	return i, ok
}

func (v *Value) Bool() (bool, bool) {
	b, ok := v.V.(bool)
	return b, ok
}

// Unquoted returns the text with one pair of surrounding double quotes
// removed. The decoder never strips quotes on its own.
func (v *Value) Unquoted() string {
	s := v.Text()
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

// =========================
// Utilities
// =========================

func isHexFloat(s string) bool {
	if len(s) < 2 || s[0] != '&' {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return false
		}
	}
	return true
}

// scanNumeral matches -?digits(.digits)?
func scanNumeral(s string) (ok, hasDot bool) {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == start {
		return false, false
	}
	if i == len(s) {
		return true, false
	}
	if s[i] != '.' {
		return false, false
	}
	i++
	frac := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == frac || i != len(s) {
		return false, false
	}
	return true, true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isWordChar(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}
