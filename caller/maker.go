package caller

import (
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"

	"github.com/unfamiliarplace/sfc/internal/util"
)

// ObjectMaker builds instances of a struct type under canonical keyword
// names. The type's exported fields, in declaration order, stand in for the
// formal parameters of its initializer; reflection recovers them, so no
// declared-name list is required.
//
// Unlike the function and method variants, the maker recovers from binding
// failure: when the keyword set cannot satisfy the type's fields it reports
// the failure and returns an Uninstantiated placeholder carrying the type's
// name, so a grading run that expects an object can proceed without crashing.
type ObjectMaker struct {
	base
	typ reflect.Type
}

// NewMaker wraps the struct type in def.Target, given as a value, a pointer,
// or a reflect.Type. def.Params is ignored; field names are introspected.
func NewMaker(def Definition, opts ...Option) (*ObjectMaker, error) {
	t, err := util.StructType(def.Target)
	if err != nil {
		return nil, fmt.Errorf("maker %s: %w", def.Name, err)
	}
	return &ObjectMaker{base: newBase(def, util.FieldNames(t), opts), typ: t}, nil
}

// TypeName returns the bare name of the struct type the maker builds.
func (m *ObjectMaker) TypeName() string {
	if name := m.typ.Name(); name != "" {
		return name
	}
	return m.typ.String()
}

// Make builds a new instance of the target type from the supplied keyword
// set and returns a pointer to it. When the set cannot satisfy the type's
// fields, the binding failure is logged and an Uninstantiated placeholder is
// returned in its place; Make never fails outright.
func (m *ObjectMaker) Make(kwargs map[string]any) any {
	callID := uuid.NewString()
	start := time.Now()
	m.logger.Debug("maker.make.start", "call_id", callID, "target", m.def.Name)

	resolved := m.resolve(callID, kwargs)
	obj, err := m.build(resolved)
	if err != nil {
		m.logger.Warn("maker.make.uninstantiated", "call_id", callID, "target", m.def.Name, "type", m.TypeName(), "error", err.Error())
		return Uninstantiated{TypeName: m.TypeName()}
	}

	m.logger.Info("maker.make.success", "call_id", callID, "target", m.def.Name, "duration_ms", time.Since(start).Milliseconds())
	return obj
}

// build assigns every exported field from the resolved keyword set. Each
// field must receive exactly one assignable value; anything less is a
// *BindingError.
func (m *ObjectMaker) build(resolved map[string]any) (any, error) {
	v := reflect.New(m.typ).Elem()
	for _, name := range m.declared {
		f := v.FieldByName(name)
		raw, ok := resolved[name]
		if !ok {
			return nil, &BindingError{Target: m.def.Name, Param: name, Message: "no argument resolved for this field"}
		}
		rv, ok := util.Coerce(raw, f.Type())
		if !ok {
			return nil, &BindingError{Target: m.def.Name, Param: name, Message: fmt.Sprintf("value of type %T is not assignable to %s", raw, f.Type())}
		}
		f.Set(rv)
	}
	return v.Addr().Interface(), nil
}

// Uninstantiated stands in for an object that could not be built after name
// resolution. It carries only the intended type's bare name; downstream code
// tells it apart from a real instance with IsUninstantiated or a type
// assertion.
type Uninstantiated struct {
	TypeName string
}

// String returns the human-readable description of the failure.
func (u Uninstantiated) String() string {
	return fmt.Sprintf("<failed to instantiate %s due to unexpected parameters>", u.TypeName)
}

// IsUninstantiated reports whether v is the placeholder produced by a failed
// Make rather than a genuine instance.
func IsUninstantiated(v any) bool {
	_, ok := v.(Uninstantiated)
	return ok
}
