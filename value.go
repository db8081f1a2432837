package structlog

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Value is a captured property value: ScalarValue, SequenceValue,
// StructureValue, DictionaryValue or MarkerValue. Values are immutable.
type Value interface {
	// String renders the value the way it appears inside a message.
	String() string
	render(b *strings.Builder, format string, quote bool)
}

// ScalarValue holds a primitive. Captured scalars are normalised to nil,
// string, bool, int64, uint64, float32, float64, complex128, time.Time,
// time.Duration or []byte.
type ScalarValue struct {
	Value any
}

// SequenceValue is an ordered list of captured elements.
type SequenceValue struct {
	Elements []Value
}

// StructureValue is a destructured composite: a type tag and its fields in
// declaration order.
type StructureValue struct {
	TypeTag string
	Fields  []Property
}

// DictionaryEntry is one key/value pair of a DictionaryValue.
type DictionaryEntry struct {
	Key   ScalarValue
	Value Value
}

// DictionaryValue is a captured map. Entries are sorted by rendered key.
type DictionaryValue struct {
	Entries []DictionaryEntry
}

// MarkerValue stands in for a value that could not be bound or captured.
type MarkerValue string

const (
	// MissingValue is bound to placeholders that have no matching value.
	MissingValue MarkerValue = "<missing>"
	// DepthExceededValue replaces values nested deeper than the capture limit.
	DepthExceededValue MarkerValue = "<max depth reached>"
)

func (v ScalarValue) String() string     { return renderString(v, "") }
func (v SequenceValue) String() string   { return renderString(v, "") }
func (v StructureValue) String() string  { return renderString(v, "") }
func (v DictionaryValue) String() string { return renderString(v, "") }
func (v MarkerValue) String() string     { return string(v) }

func renderString(v Value, format string) string {
	var b strings.Builder
	v.render(&b, format, false)
	return b.String()
}

func (v ScalarValue) render(b *strings.Builder, format string, quote bool) {
	switch x := v.Value.(type) {
	case nil:
		b.WriteString("null")
	case string:
		if format != "" && strings.Contains(format, "%") {
			b.WriteString(fmt.Sprintf(format, x))
			return
		}
		if quote && format != "l" {
			b.WriteString(strconv.Quote(x))
			return
		}
		b.WriteString(x)
	case time.Time:
		switch {
		case format == "":
			b.WriteString(x.Format(time.RFC3339Nano))
		case strings.Contains(format, "%"):
			b.WriteString(fmt.Sprintf(format, x))
		default:
			b.WriteString(x.Format(format))
		}
	case []byte:
		if format != "" && strings.Contains(format, "%") {
			b.WriteString(fmt.Sprintf(format, x))
			return
		}
		b.WriteString(fmt.Sprintf("%x", x))
	default:
		if format != "" && strings.Contains(format, "%") {
			b.WriteString(fmt.Sprintf(format, x))
			return
		}
		b.WriteString(fmt.Sprint(x))
	}
}

func (v SequenceValue) render(b *strings.Builder, format string, _ bool) {
	b.WriteByte('[')
	for i, e := range v.Elements {
		if i > 0 {
			b.WriteString(", ")
		}
		renderNested(b, e, format)
	}
	b.WriteByte(']')
}

func (v StructureValue) render(b *strings.Builder, format string, _ bool) {
	if v.TypeTag != "" {
		b.WriteString(v.TypeTag)
		b.WriteByte(' ')
	}
	if len(v.Fields) == 0 {
		b.WriteString("{}")
		return
	}
	b.WriteString("{ ")
	for i, f := range v.Fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.Name)
		b.WriteString(": ")
		renderNested(b, f.Value, format)
	}
	b.WriteString(" }")
}

func (v DictionaryValue) render(b *strings.Builder, format string, _ bool) {
	b.WriteByte('[')
	for i, e := range v.Entries {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('(')
		e.Key.render(b, "", true)
		b.WriteString(": ")
		renderNested(b, e.Value, format)
		b.WriteByte(')')
	}
	b.WriteByte(']')
}

func (v MarkerValue) render(b *strings.Builder, _ string, _ bool) {
	b.WriteString(string(v))
}

// Nested values are quoted so that strings are distinguishable from other
// scalars inside collections.
func renderNested(b *strings.Builder, v Value, format string) {
	if v == nil {
		b.WriteString("null")
		return
	}
	v.render(b, format, true)
}

// Plain converts a Value into plain Go data (nil, scalars, []any and
// map[string]any) suitable for JSON encoding. Structures carry their type
// tag under "$type".
func Plain(v Value) any {
	switch v := v.(type) {
	case nil:
		return nil
	case ScalarValue:
		return v.Value
	case MarkerValue:
		return string(v)
	case SequenceValue:
		out := make([]any, len(v.Elements))
		for i, e := range v.Elements {
			out[i] = Plain(e)
		}
		return out
	case StructureValue:
		out := make(map[string]any, len(v.Fields)+1)
		if v.TypeTag != "" {
			out["$type"] = v.TypeTag
		}
		for _, f := range v.Fields {
			out[f.Name] = Plain(f.Value)
		}
		return out
	case DictionaryValue:
		out := make(map[string]any, len(v.Entries))
		for _, e := range v.Entries {
			out[dictionaryKey(e.Key)] = Plain(e.Value)
		}
		return out
	}
	return v.String()
}

func dictionaryKey(k ScalarValue) string {
	if s, ok := k.Value.(string); ok {
		return s
	}
	return k.String()
}
