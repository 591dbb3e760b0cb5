// Package logger implements the structured build-logging core: word
// wrapping of mixed-type values into indented terminal lines, severity
// print channels, and the per-task lifecycle Logger that emits TaskEvents.
package logger

import (
	"fmt"
	"reflect"
	"runtime"
	"strconv"
	"strings"
)

// valueKind enumerates the closed set of loggable value variants, so the
// word wrapper's branching is exhaustive rather than runtime-typed.
type valueKind int

const (
	kindText valueKind = iota
	kindNumber
	kindBool
	kindNull
	kindUndefined
	kindThunk
)

// Value is one loggable argument. Primitive variants carry their rendered
// text; the thunk variant defers rendering until line assembly so that
// large composites are only stringified when actually printed.
type Value struct {
	kind  valueKind
	text  string
	thunk func() string
}

// Text creates a text value. It is split into whitespace-delimited words
// during wrapping.
func Text(s string) Value {
	return Value{kind: kindText, text: s}
}

// Number creates a numeric value rendered as a single word.
func Number(n float64) Value {
	return Value{kind: kindNumber, text: strconv.FormatFloat(n, 'f', -1, 64)}
}

// Bool creates a boolean value rendered as "true" or "false".
func Bool(b bool) Value {
	return Value{kind: kindBool, text: strconv.FormatBool(b)}
}

// Null is the value rendered as the single word "null".
func Null() Value {
	return Value{kind: kindNull, text: "null"}
}

// Undefined is the value rendered as the single word "undefined".
func Undefined() Value {
	return Value{kind: kindUndefined, text: "undefined"}
}

// Thunk creates a deferred value. Its rendering is emitted as a standalone
// line, never word-wrapped.
func Thunk(fn func() string) Value {
	return Value{kind: kindThunk, thunk: fn}
}

// Values converts arbitrary arguments into the closed Value set. This is
// the single boundary where dynamic typing is allowed:
//
//   - nil becomes the word "null"
//   - strings are text, split on whitespace during wrapping
//   - numbers and booleans become single words
//   - functions become their symbol name, kept as one word
//   - errors, slices, maps and structs become deferred thunks rendered
//     lazily on their own line
//   - anything else falls back to its fmt representation
func Values(args ...any) []Value {
	values := make([]Value, 0, len(args))
	for _, arg := range args {
		values = append(values, valueOf(arg))
	}
	return values
}

func valueOf(arg any) Value {
	switch v := arg.(type) {
	case nil:
		return Null()
	case Value:
		return v
	case string:
		return Text(v)
	case bool:
		return Bool(v)
	case int:
		return Number(float64(v))
	case int8:
		return Number(float64(v))
	case int16:
		return Number(float64(v))
	case int32:
		return Number(float64(v))
	case int64:
		return Number(float64(v))
	case uint:
		return Number(float64(v))
	case uint8:
		return Number(float64(v))
	case uint16:
		return Number(float64(v))
	case uint32:
		return Number(float64(v))
	case uint64:
		return Number(float64(v))
	case float32:
		return Number(float64(v))
	case float64:
		return Number(v)
	case func() string:
		return Thunk(v)
	case error:
		return Thunk(v.Error)
	}

	rv := reflect.ValueOf(arg)
	switch rv.Kind() {
	case reflect.Func:
		name := runtime.FuncForPC(rv.Pointer()).Name()
		if name == "" {
			name = fmt.Sprintf("%T", arg)
		}
		return Text(name)
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Struct, reflect.Ptr, reflect.Interface:
		return Thunk(func() string { return fmt.Sprintf("%+v", arg) })
	default:
		return Text(fmt.Sprint(arg))
	}
}

// words expands a primitive value into its display words. Thunks are not
// words; callers must branch on deferred() first.
func (v Value) words() []string {
	if v.kind != kindText {
		return []string{v.text}
	}

	fields := strings.Fields(v.text)
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			words = append(words, f)
		}
	}
	return words
}

// deferred reports whether the value renders lazily on its own line.
func (v Value) deferred() bool {
	return v.kind == kindThunk
}

// render evaluates a deferred value.
func (v Value) render() string {
	if v.thunk == nil {
		return ""
	}
	return v.thunk()
}
