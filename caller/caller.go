package caller

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/unfamiliarplace/sfc/calibrate"
	"github.com/unfamiliarplace/sfc/internal/util"
	"github.com/unfamiliarplace/sfc/logging"
)

// Optional pairs a canonical parameter name the target may or may not declare
// with the default value to pass when it does. A slice keeps the ordering the
// matcher's tie-break rules depend on, which a Go map could not.
type Optional struct {
	Name    string
	Default any
}

// Definition describes one third-party signature the harness wants to drive.
// It is immutable once handed to a constructor and lives for the process
// lifetime of the grading run.
type Definition struct {
	// Name identifies the definition in logs and error messages.
	Name string

	// Target is the thing to invoke: a func for NewFunction, a method
	// expression for NewMethod, or a struct value / pointer / reflect.Type
	// for NewMaker.
	Target any

	// Params names the target's formal parameters in positional order.
	// Go reflection cannot recover parameter names from a func, so the
	// definition supplies them. NewMaker ignores Params and introspects the
	// struct's exported field names instead.
	Params []string

	// Required lists the canonical names, in order, that callers supply
	// keywords for.
	Required []string

	// Possible lists canonical names the target may have declared without
	// needing to, with the defaults to pass when it did. Callers never
	// supply these; disjoint from Required.
	Possible []Optional
}

// allNames returns the full canonical name set: required then possible, in
// declaration order.
func (d Definition) allNames() []string {
	names := make([]string, 0, len(d.Required)+len(d.Possible))
	names = append(names, d.Required...)
	for _, opt := range d.Possible {
		names = append(names, opt.Name)
	}
	return names
}

// Options configures an adapter at construction time.
type Options struct {
	// Logger receives per-call diagnostics. Defaults to NoOpLogger.
	Logger logging.Logger
}

// Option mutates Options.
type Option func(o *Options)

// WithLogger sets the logger the adapter reports matching decisions and
// failures to.
func WithLogger(l logging.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// BindingError reports that an assembled keyword set could not satisfy the
// target's real signature: a parameter went unfilled, or a value could not be
// assigned to it. It is distinguishable (errors.As) from errors returned by
// the target's own body, which the adapters never touch.
type BindingError struct {
	Target  string // definition name
	Param   string // declared parameter or field name, if one is implicated
	Message string
}

// Error implements the error interface for BindingError.
func (e *BindingError) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("cannot bind parameter %q of %s: %s", e.Param, e.Target, e.Message)
	}
	return fmt.Sprintf("cannot bind parameters of %s: %s", e.Target, e.Message)
}

// base carries the state shared by the three adapter variants: the immutable
// definition, the target's declared parameter names, and the canonical to
// declared correspondence, computed once at construction.
type base struct {
	def      Definition
	declared []string
	key      map[string]string // canonical name -> declared name ("" if unmatched)
	logger   logging.Logger
}

func newBase(def Definition, declared []string, opts []Option) base {
	o := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range opts {
		fn(&o)
	}
	return base{
		def:      def,
		declared: declared,
		key:      calibrate.Align(declared, def.allNames()),
		logger:   o.Logger,
	}
}

// resolve maps the caller-supplied keyword set onto the target's declared
// parameter names: supplied name -> required canonical name (fresh alignment,
// inverted) -> declared name (cached alignment), then injects the defaults
// for every possible name the target turned out to declare.
//
// Supplied keywords are aligned in sorted-name order so resolution is
// deterministic regardless of map iteration.
func (b *base) resolve(callID string, kwargs map[string]any) map[string]any {
	supplied := make([]string, 0, len(kwargs))
	for name := range kwargs {
		supplied = append(supplied, name)
	}
	sort.Strings(supplied)

	tester := calibrate.Align(supplied, b.def.Required)
	inverse := make(map[string]string, len(tester))
	for canon, arg := range tester {
		if arg != "" {
			inverse[arg] = canon
		}
	}

	resolved := make(map[string]any, len(kwargs)+len(b.def.Possible))
	for _, name := range supplied {
		canon, ok := inverse[name]
		if !ok {
			// Surplus keyword with no open canonical slot. Non-fatal.
			b.logger.Debug("caller.resolve.dropped", "call_id", callID, "target", b.def.Name, "keyword", name)
			continue
		}
		decl := b.key[canon]
		if decl == "" {
			// The canonical name found no counterpart on the target; omit
			// the keyword and let the target's own binding rules decide.
			b.logger.Debug("caller.resolve.unmatched", "call_id", callID, "target", b.def.Name, "canonical", canon)
			continue
		}
		resolved[decl] = kwargs[name]
	}

	for _, opt := range b.def.Possible {
		if decl := b.key[opt.Name]; decl != "" {
			resolved[decl] = opt.Default
		}
	}

	return resolved
}

// bindArgs lays the resolved keyword set out positionally after any leading
// arguments, in declared-name order, coercing each value to the parameter's
// type.
func (b *base) bindArgs(ft reflect.Type, lead []reflect.Value, resolved map[string]any) ([]reflect.Value, error) {
	args := make([]reflect.Value, 0, len(lead)+len(b.declared))
	args = append(args, lead...)
	for i, name := range b.declared {
		in := ft.In(i + len(lead))
		raw, ok := resolved[name]
		if !ok {
			return nil, &BindingError{Target: b.def.Name, Param: name, Message: "no argument resolved for this parameter"}
		}
		rv, ok := util.Coerce(raw, in)
		if !ok {
			return nil, &BindingError{Target: b.def.Name, Param: name, Message: fmt.Sprintf("value of type %T is not assignable to %s", raw, in)}
		}
		args = append(args, rv)
	}
	return args, nil
}

var errType = reflect.TypeOf((*error)(nil)).Elem()

// invoke calls fn and splits a trailing error result, if the signature
// declares one, off from the returned values. Zero remaining values collapse
// to nil, one to itself, several to a []any.
func invoke(fn reflect.Value, args []reflect.Value) (any, error) {
	out := fn.Call(args)

	if n := len(out); n > 0 && fn.Type().Out(n-1) == errType {
		if e := out[n-1].Interface(); e != nil {
			return nil, e.(error)
		}
		out = out[:n-1]
	}

	switch len(out) {
	case 0:
		return nil, nil
	case 1:
		return out[0].Interface(), nil
	default:
		vals := make([]any, len(out))
		for i, v := range out {
			vals[i] = v.Interface()
		}
		return vals, nil
	}
}
