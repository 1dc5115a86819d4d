package util

import (
	"fmt"
	"reflect"
)

// FuncOf resolves target to a non-variadic func value.
func FuncOf(target any) (reflect.Value, error) {
	if target == nil {
		return reflect.Value{}, fmt.Errorf("target is nil")
	}
	fn := reflect.ValueOf(target)
	if fn.Kind() != reflect.Func {
		return reflect.Value{}, fmt.Errorf("target %T is not a func", target)
	}
	if fn.Type().IsVariadic() {
		return reflect.Value{}, fmt.Errorf("variadic target %T is not supported", target)
	}
	return fn, nil
}

// StructType resolves target (a struct value, a pointer to struct, or a
// reflect.Type) to the underlying struct type.
func StructType(target any) (reflect.Type, error) {
	if target == nil {
		return nil, fmt.Errorf("target is nil")
	}
	t, ok := target.(reflect.Type)
	if !ok {
		t = reflect.TypeOf(target)
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("target %s is not a struct type", t)
	}
	return t, nil
}

// FieldNames returns the exported field names of t in declaration order.
// These stand in for the formal parameter names of the type's initializer.
func FieldNames(t reflect.Type) []string {
	names := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		names = append(names, f.Name)
	}
	return names
}

// Coerce adapts v to type t, dereferencing a pointer where that makes the
// value fit. The boolean reports whether the result is usable as a t; Coerce
// never converts between unrelated types.
func Coerce(v any, t reflect.Type) (reflect.Value, bool) {
	if v == nil {
		switch t.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
			return reflect.Zero(t), true
		}
		return reflect.Value{}, false
	}

	rv := reflect.ValueOf(v)
	if rv.Type().AssignableTo(t) {
		return rv, true
	}
	if rv.Kind() == reflect.Pointer && !rv.IsNil() && rv.Elem().Type().AssignableTo(t) {
		return rv.Elem(), true
	}
	return reflect.Value{}, false
}
