// Package validation evaluates declarative rule sets against a single input
// value. A Rule names the constraints that apply (required, length bounds for
// text, range bounds for numbers) and Validate reports whether every
// applicable constraint holds. Constraints that do not apply to the value's
// kind, or whose bound is unset, are skipped rather than failed.
//
//	ok := validation.Validate(validation.Rule{
//	    Value:     validation.Text(description),
//	    Required:  true,
//	    MinLength: validation.Bound(5),
//	})
//
// Only pass/fail is reported. Callers that validate several fields aggregate
// the failures themselves.
package validation

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Kind distinguishes textual from numeric values.
type Kind int

const (
	KindText Kind = iota
	KindNumber
)

// Value is a single form value, either text or a number.
type Value struct {
	kind Kind
	text string
	num  float64
}

// Text wraps a string value.
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// Number wraps a numeric value.
func Number(n float64) Value {
	return Value{kind: KindNumber, num: n}
}

// Kind reports whether v holds text or a number.
func (v Value) Kind() Kind {
	return v.kind
}

// String returns the value's textual form. Numbers use the shortest
// representation that round-trips ("3", "2.5", "NaN").
func (v Value) String() string {
	if v.kind == KindNumber {
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	}
	return v.text
}

// Rule is a declarative set of constraints applied to one Value. Nil bounds
// are unset.
type Rule struct {
	Value     Value
	Required  bool
	MinLength *int
	MaxLength *int
	Min       *float64
	Max       *float64
}

// Bound returns a pointer to v for use as an optional Rule bound.
func Bound[T int | float64](v T) *T {
	return &v
}

// Validate reports whether every applicable constraint of r holds.
func Validate(r Rule) bool {
	valid := true

	if r.Required {
		valid = valid && len(r.Value.String()) != 0
	}

	if r.Value.kind == KindText {
		n := utf8.RuneCountInString(strings.TrimSpace(r.Value.text))
		if r.MinLength != nil {
			valid = valid && n >= *r.MinLength
		}
		if r.MaxLength != nil {
			valid = valid && n <= *r.MaxLength
		}
	}

	if r.Value.kind == KindNumber {
		// NaN compares false against every bound, so it fails any range check.
		if r.Min != nil {
			valid = valid && r.Value.num >= *r.Min
		}
		if r.Max != nil {
			valid = valid && r.Value.num <= *r.Max
		}
	}

	return valid
}

// ParseNumber coerces raw form input to a number the way an HTML number field
// is read: surrounding whitespace is ignored, an empty string is zero and
// anything unparsable is NaN.
func ParseNumber(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return n
}
