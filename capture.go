package structlog

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"
	"unicode/utf8"
)

// Bound on pointer/interface hops while unwrapping, so that values such as
// `var p any; p = &p` terminate.
const maxUnwrap = 32

var timeType = reflect.TypeOf(time.Time{})

type capturer struct {
	maxDepth      int
	maxString     int
	maxCollection int
}

func newCapturer(limits CaptureLimits) capturer {
	limits = limits.withDefaults()
	return capturer{
		maxDepth:      limits.MaxDepth,
		maxString:     limits.MaxStringLength,
		maxCollection: limits.MaxCollectionCount,
	}
}

// capture converts v into a Value. depth is the nesting level of v; values
// nested deeper than maxDepth become DepthExceededValue.
func (c capturer) capture(v any, hint CaptureHint, depth int) Value {
	if depth > c.maxDepth {
		return DepthExceededValue
	}
	if v == nil {
		return ScalarValue{}
	}
	if val, ok := v.(Value); ok {
		return val
	}
	if hint == CaptureStringify {
		return c.sprint(v, depth)
	}
	if sv, ok := c.primitive(v); ok {
		return sv
	}

	val := reflect.ValueOf(v)
	if (val.Kind() == reflect.Pointer || val.Kind() == reflect.Interface) && val.IsNil() {
		return ScalarValue{}
	}

	if hint == CaptureDefault {
		switch x := v.(type) {
		case error:
			return c.stringScalar(x.Error())
		case fmt.Stringer:
			return c.stringScalar(x.String())
		}
	}

	for hops := 0; val.Kind() == reflect.Pointer || val.Kind() == reflect.Interface; hops++ {
		if hops == maxUnwrap {
			return DepthExceededValue
		}
		if val.IsNil() {
			return ScalarValue{}
		}
		val = val.Elem()
	}

	return c.captureValue(val, hint, depth)
}

func (c capturer) captureValue(val reflect.Value, hint CaptureHint, depth int) Value {
	if val.Type() == timeType {
		return ScalarValue{Value: val.Interface()}
	}

	switch val.Kind() {
	case reflect.Bool:
		return ScalarValue{Value: val.Bool()}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ScalarValue{Value: val.Int()}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return ScalarValue{Value: val.Uint()}
	case reflect.Float32:
		return ScalarValue{Value: float32(val.Float())}
	case reflect.Float64:
		return ScalarValue{Value: val.Float()}
	case reflect.Complex64, reflect.Complex128:
		return ScalarValue{Value: val.Complex()}
	case reflect.String:
		return c.stringScalar(val.String())

	case reflect.Slice, reflect.Array:
		if val.Kind() == reflect.Slice && val.IsNil() {
			return ScalarValue{}
		}
		if val.Type().Elem().Kind() == reflect.Uint8 {
			out := make([]byte, val.Len())
			reflect.Copy(reflect.ValueOf(out), val)
			return ScalarValue{Value: out}
		}
		n := c.limitCount(val.Len())
		elems := make([]Value, 0, n)
		for i := 0; i < n; i++ {
			elems = append(elems, c.captureElem(val.Index(i), hint, depth+1))
		}
		return SequenceValue{Elements: elems}

	case reflect.Map:
		if val.IsNil() {
			return ScalarValue{}
		}
		entries := make([]DictionaryEntry, 0, val.Len())
		iter := val.MapRange()
		for iter.Next() {
			entries = append(entries, DictionaryEntry{
				Key:   c.captureKey(iter.Key()),
				Value: c.captureElem(iter.Value(), hint, depth+1),
			})
		}
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Key.String() < entries[j].Key.String()
		})
		if n := c.limitCount(len(entries)); n < len(entries) {
			entries = entries[:n]
		}
		return DictionaryValue{Entries: entries}

	case reflect.Struct:
		if hint != CaptureDestructure {
			return c.sprint(val.Interface(), depth)
		}
		return c.destructureStruct(val, depth)

	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return ScalarValue{Value: val.Type().String()}
	}

	if val.IsValid() && val.CanInterface() {
		return c.sprint(val.Interface(), depth)
	}
	return ScalarValue{}
}

// sprint formats v with fmt when fmt's walk of v stays within the depth
// limit. fmt does not detect cycles, so anything deeper is rendered from
// the bounded capture tree instead.
func (c capturer) sprint(v any, depth int) ScalarValue {
	val := reflect.ValueOf(v)
	if c.printable(val, depth, true) {
		return c.stringScalar(fmt.Sprint(v))
	}
	for hops := 0; val.Kind() == reflect.Pointer || val.Kind() == reflect.Interface; hops++ {
		if hops == maxUnwrap || val.IsNil() {
			return c.stringScalar(DepthExceededValue.String())
		}
		val = val.Elem()
	}
	return c.stringScalar(c.captureValue(val, CaptureDestructure, depth).String())
}

// printable mirrors the traversal fmt performs for %v: it stops at values
// with their own formatting methods, and below the top level it prints
// pointers as addresses.
func (c capturer) printable(val reflect.Value, depth int, top bool) bool {
	if depth > c.maxDepth {
		return false
	}
	if !val.IsValid() {
		return true
	}
	if val.CanInterface() {
		switch val.Interface().(type) {
		case fmt.Formatter, fmt.Stringer, error:
			return true
		}
	}

	switch val.Kind() {
	case reflect.Pointer:
		if !top || val.IsNil() {
			return true
		}
		switch val.Elem().Kind() {
		case reflect.Array, reflect.Slice, reflect.Struct, reflect.Map:
			return c.printable(val.Elem(), depth+1, false)
		}
	case reflect.Interface:
		if !val.IsNil() {
			return c.printable(val.Elem(), depth+1, false)
		}
	case reflect.Map:
		iter := val.MapRange()
		for iter.Next() {
			if !c.printable(iter.Key(), depth+1, false) || !c.printable(iter.Value(), depth+1, false) {
				return false
			}
		}
	case reflect.Slice, reflect.Array:
		if val.Type().Elem().Kind() == reflect.Uint8 {
			return true
		}
		for i := 0; i < val.Len(); i++ {
			if !c.printable(val.Index(i), depth+1, false) {
				return false
			}
		}
	case reflect.Struct:
		for i := 0; i < val.NumField(); i++ {
			if !c.printable(val.Field(i), depth+1, false) {
				return false
			}
		}
	}
	return true
}

func (c capturer) destructureStruct(val reflect.Value, depth int) Value {
	typ := val.Type()
	fields := make([]Property, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		fieldVal := val.Field(i)

		// Skip unexported fields
		if !field.IsExported() || !fieldVal.CanInterface() {
			continue
		}

		name := field.Name
		if tag, ok := field.Tag.Lookup("log"); ok {
			tag, _, _ = strings.Cut(tag, ",")
			if tag == "-" {
				continue
			}
			if tag != "" {
				name = tag
			}
		}

		fields = append(fields, Property{
			Name:  name,
			Value: c.captureElem(fieldVal, CaptureDestructure, depth+1),
		})
	}
	return StructureValue{TypeTag: typ.Name(), Fields: fields}
}

func (c capturer) captureElem(elem reflect.Value, hint CaptureHint, depth int) Value {
	if !elem.IsValid() || !elem.CanInterface() {
		return ScalarValue{}
	}
	return c.capture(elem.Interface(), hint, depth)
}

func (c capturer) captureKey(key reflect.Value) ScalarValue {
	if key.CanInterface() {
		// Keys are never destructured; composite keys use their fmt form.
		if sv, ok := c.capture(key.Interface(), CaptureDefault, 0).(ScalarValue); ok {
			return sv
		}
		return ScalarValue{Value: fmt.Sprint(key.Interface())}
	}
	return ScalarValue{Value: key.String()}
}

// primitive handles the common scalar types without reflection.
func (c capturer) primitive(v any) (ScalarValue, bool) {
	switch x := v.(type) {
	case string:
		return c.stringScalar(x), true
	case bool:
		return ScalarValue{Value: x}, true
	case int:
		return ScalarValue{Value: int64(x)}, true
	case int8:
		return ScalarValue{Value: int64(x)}, true
	case int16:
		return ScalarValue{Value: int64(x)}, true
	case int32:
		return ScalarValue{Value: int64(x)}, true
	case int64:
		return ScalarValue{Value: x}, true
	case uint:
		return ScalarValue{Value: uint64(x)}, true
	case uint8:
		return ScalarValue{Value: uint64(x)}, true
	case uint16:
		return ScalarValue{Value: uint64(x)}, true
	case uint32:
		return ScalarValue{Value: uint64(x)}, true
	case uint64:
		return ScalarValue{Value: x}, true
	case uintptr:
		return ScalarValue{Value: uint64(x)}, true
	case float32:
		return ScalarValue{Value: x}, true
	case float64:
		return ScalarValue{Value: x}, true
	case complex64:
		return ScalarValue{Value: complex128(x)}, true
	case complex128:
		return ScalarValue{Value: x}, true
	case time.Time:
		return ScalarValue{Value: x}, true
	case time.Duration:
		return ScalarValue{Value: x}, true
	case []byte:
		if x == nil {
			return ScalarValue{}, true
		}
		return ScalarValue{Value: append([]byte(nil), x...)}, true
	}
	return ScalarValue{}, false
}

func (c capturer) stringScalar(s string) ScalarValue {
	if c.maxString > 0 && utf8.RuneCountInString(s) > c.maxString {
		runes := []rune(s)
		s = string(runes[:c.maxString]) + "…"
	}
	return ScalarValue{Value: s}
}

func (c capturer) limitCount(n int) int {
	if c.maxCollection > 0 && n > c.maxCollection {
		return c.maxCollection
	}
	return n
}
