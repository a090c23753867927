package model

import (
	"fmt"
	"strconv"
)

// Feature is the tri-state spelling meson uses for optional features.
type Feature int

const (
	Auto Feature = iota
	Enabled
	Disabled
)

func (f Feature) String() string {
	switch f {
	case Enabled:
		return "enabled"
	case Disabled:
		return "disabled"
	default:
		return "auto"
	}
}

type valueKind int

const (
	featureKind valueKind = iota
	boolKind
	stringKind
	intKind
)

// Value is a single option value: a tri-state feature, a bool, a string,
// or an integer. The zero Value is Auto.
type Value struct {
	kind    valueKind
	feature Feature
	b       bool
	s       string
	n       int
}

func FeatureValue(f Feature) Value {
	return Value{kind: featureKind, feature: f}
}

func BoolValue(b bool) Value {
	return Value{kind: boolKind, b: b}
}

func StringValue(s string) Value {
	return Value{kind: stringKind, s: s}
}

func IntValue(n int) Value {
	return Value{kind: intKind, n: n}
}

// MesonString renders the value the way meson expects it on the command line.
func (v Value) MesonString() string {
	switch v.kind {
	case boolKind:
		return strconv.FormatBool(v.b)
	case stringKind:
		return v.s
	case intKind:
		return strconv.Itoa(v.n)
	default:
		return v.feature.String()
	}
}

func (v Value) String() string {
	return v.MesonString()
}

// Option is a named build option destined for the generator command line.
type Option struct {
	Name  string
	Value Value
}

func (o Option) Flag() string {
	return fmt.Sprintf("-D%s=%s", o.Name, o.Value.MesonString())
}

// OptionSet is an insertion-ordered mapping from option name to value.
//
// Appending an existing name replaces the value in place, so a name can
// never appear twice and the original position is kept. Order matters
// only for reproducibility of the generator invocation.
type OptionSet struct {
	opts  []Option
	index map[string]int
}

func NewOptionSet() *OptionSet {
	return &OptionSet{index: make(map[string]int)}
}

func (s *OptionSet) Append(name string, v Value) {
	if i, ok := s.index[name]; ok {
		s.opts[i].Value = v
		return
	}
	s.index[name] = len(s.opts)
	s.opts = append(s.opts, Option{Name: name, Value: v})
}

func (s *OptionSet) Get(name string) (Value, bool) {
	i, ok := s.index[name]
	if !ok {
		return Value{}, false
	}
	return s.opts[i].Value, true
}

func (s *OptionSet) Len() int {
	return len(s.opts)
}

// Pairs returns the options in accumulation order.
func (s *OptionSet) Pairs() []Option {
	result := make([]Option, len(s.opts))
	copy(result, s.opts)
	return result
}

// Flags renders the ordered "-Dname=value" argument list.
func (s *OptionSet) Flags() []string {
	result := make([]string, 0, len(s.opts))
	for _, o := range s.opts {
		result = append(result, o.Flag())
	}
	return result
}
