package caller

import (
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"

	"github.com/unfamiliarplace/sfc/internal/util"
)

// FunctionCaller invokes a free function under canonical keyword names.
//
// No error recovery is performed: a *BindingError from resolution, or any
// error the function itself returns, propagates to the caller unchanged.
type FunctionCaller struct {
	base
	fn reflect.Value
}

// NewFunction wraps the func in def.Target. def.Params must name every formal
// parameter of the func in positional order; construction fails if the target
// is not a non-variadic func or the counts disagree.
func NewFunction(def Definition, opts ...Option) (*FunctionCaller, error) {
	fn, err := funcTarget(def, 0)
	if err != nil {
		return nil, err
	}
	return &FunctionCaller{base: newBase(def, def.Params, opts), fn: fn}, nil
}

// Call resolves the supplied keywords onto the target's parameter names and
// invokes it, returning whatever it returns. A declared error result is split
// off and returned as the error.
func (c *FunctionCaller) Call(kwargs map[string]any) (any, error) {
	callID := uuid.NewString()
	start := time.Now()
	c.logger.Debug("caller.call.start", "call_id", callID, "target", c.def.Name)

	resolved := c.resolve(callID, kwargs)
	args, err := c.bindArgs(c.fn.Type(), nil, resolved)
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

// funcTarget checks def.Target is a usable func whose parameter count matches
// the declared names plus any leading implicit parameters (a receiver).
func funcTarget(def Definition, lead int) (reflect.Value, error) {
	fn, err := util.FuncOf(def.Target)
	if err != nil {
		return reflect.Value{}, fmt.Errorf("caller %s: %w", def.Name, err)
	}
	if got, want := fn.Type().NumIn(), len(def.Params)+lead; got != want {
		return reflect.Value{}, fmt.Errorf("caller %s: target takes %d parameters, %d declared", def.Name, got, want)
	}
	return fn, nil
}
