package caller

import (
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"

	"github.com/unfamiliarplace/sfc/internal/util"
)

// MethodCaller invokes a method through its method expression, a func whose
// first parameter is the receiver. The bound instance travels as an explicit
// typed argument of Call, never through the keyword map, so no reserved
// keyword name is needed and nothing a submission declares can collide with
// it.
type MethodCaller struct {
	base
	fn reflect.Value
}

// NewMethod wraps the method expression in def.Target (for example
// Location.Equal). def.Params names the non-receiver parameters in positional
// order; the receiver is implicit.
func NewMethod(def Definition, opts ...Option) (*MethodCaller, error) {
	fn, err := funcTarget(def, 1)
	if err != nil {
		return nil, err
	}
	return &MethodCaller{base: newBase(def, def.Params, opts), fn: fn}, nil
}

// Call invokes the target method on instance with the resolved keyword set
// and returns whatever it returns. An instance of the wrong type is a
// *BindingError, like any other unbindable parameter.
func (c *MethodCaller) Call(instance any, kwargs map[string]any) (any, error) {
	callID := uuid.NewString()
	start := time.Now()
	c.logger.Debug("caller.call.start", "call_id", callID, "target", c.def.Name)

	recv, ok := util.Coerce(instance, c.fn.Type().In(0))
	if !ok {
		err := &BindingError{Target: c.def.Name, Message: fmt.Sprintf("instance of type %T is not assignable to receiver type %s", instance, c.fn.Type().In(0))}
		c.logger.Warn("caller.call.binding_failed", "call_id", callID, "target", c.def.Name, "error", err.Error())
		return nil, err
	}

	resolved := c.resolve(callID, kwargs)
	args, err := c.bindArgs(c.fn.Type(), []reflect.Value{recv}, resolved)
	if err != nil {
		c.logger.Warn("caller.call.binding_failed", "call_id", callID, "target", c.def.Name, "error", err.Error())
		return nil, err
	}

	result, err := invoke(c.fn, args)
	if err != nil {
		c.logger.Error("caller.call.error", "call_id", callID, "target", c.def.Name, "error", err.Error())
		return nil, err
	}

	c.logger.Info("caller.call.success", "call_id", callID, "target", c.def.Name, "duration_ms", time.Since(start).Milliseconds())
	return result, nil
}
