// Package validate declares the validation rules that can be attached to
// schema fields. Rules are declarative: the converter reads them to emit
// OpenAPI validation keywords (minimum, maxLength, enum, pattern, ...) and
// never executes them against data.
//
// The converter does not depend on the concrete rule types in this package.
// It consumes the capability interfaces (NumericRule, SizeRule, ChoiceRule,
// EqualRule, PatternRule), so custom rules participate in keyword emission
// by implementing the capability that applies to them.
package validate

// Validator is a declarative validation rule attached to a field.
type Validator interface {
	// Rule returns a short name identifying the kind of rule, used in
	// diagnostics ("range", "length", "one_of", "equal", "regexp").
	Rule() string
}

// NumericRule is implemented by rules that bound a numeric value to an
// inclusive range. Rules that also carry a SizeBounds capability are treated
// as size rules, not numeric rules.
type NumericRule interface {
	Validator
	NumericBounds() (min, max *float64)
}

// SizeRule is implemented by rules that bound a string length or a
// collection size. A non-nil equal bound pins both ends.
type SizeRule interface {
	Validator
	SizeBounds() (min, max, equal *int)
}

// ChoiceRule is implemented by rules that restrict a value to a fixed set
// of choices.
type ChoiceRule interface {
	Validator
	ChoiceValues() []any
}

// EqualRule is implemented by rules that restrict a value to exactly one
// allowed value.
type EqualRule interface {
	Validator
	EqualValue() any
}

// PatternRule is implemented by rules that restrict a string to match a
// regular expression.
type PatternRule interface {
	Validator
	PatternValue() string
}

// Range bounds a numeric value to [Min, Max]. A nil bound is open.
//
//	validate.Range{Min: validate.Float64(0), Max: validate.Float64(100)}
type Range struct {
	Min *float64
	Max *float64
}

// Rule implements Validator.
func (Range) Rule() string { return "range" }

// NumericBounds implements NumericRule.
func (r Range) NumericBounds() (min, max *float64) { return r.Min, r.Max }

// Length bounds a string length or collection size to [Min, Max].
// A non-nil Equal pins the size exactly and takes precedence over Min/Max.
//
//	validate.Length{Min: validate.Int(1), Max: validate.Int(64)}
//	validate.Length{Equal: validate.Int(2)}
type Length struct {
	Min   *int
	Max   *int
	Equal *int
}

// Rule implements Validator.
func (Length) Rule() string { return "length" }

// SizeBounds implements SizeRule.
func (l Length) SizeBounds() (min, max, equal *int) { return l.Min, l.Max, l.Equal }

// OneOf restricts a value to a fixed set of choices. Multiple OneOf rules on
// one field intersect.
//
//	validate.OneOf{Choices: []any{"red", "green", "blue"}}
type OneOf struct {
	Choices []any
}

// Rule implements Validator.
func (OneOf) Rule() string { return "one_of" }

// ChoiceValues implements ChoiceRule.
func (o OneOf) ChoiceValues() []any { return o.Choices }

// Equal restricts a value to exactly Value.
//
//	validate.Equal{Value: "fixed"}
type Equal struct {
	Value any
}

// Rule implements Validator.
func (Equal) Rule() string { return "equal" }

// EqualValue implements EqualRule.
func (e Equal) EqualValue() any { return e.Value }

// Regexp restricts a string to match Pattern. The pattern is emitted
// verbatim into the document; it is not compiled or executed here.
//
//	validate.Regexp{Pattern: `^[a-z0-9-]+$`}
type Regexp struct {
	Pattern string
}

// Rule implements Validator.
func (Regexp) Rule() string { return "regexp" }

// PatternValue implements PatternRule.
func (r Regexp) PatternValue() string { return r.Pattern }

// Float64 returns a pointer to v, for building Range bounds inline.
func Float64(v float64) *float64 { return &v }

// Int returns a pointer to v, for building Length bounds inline.
func Int(v int) *int { return &v }
