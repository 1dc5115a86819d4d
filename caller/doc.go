// Package caller implements the dispatch adapters that let a grading harness
// invoke third-party functions, methods and constructors whose parameter
// names are unknown or misspelled relative to the names the harness expects.
//
// Each adapter wraps one target behind an immutable Definition and runs the
// calibrate matcher twice per call: once to align the target's declared
// parameter names with the canonical names (computed eagerly, since a
// definition never changes), and once to align the keyword names the harness
// actually supplied with the required canonical names. Composing the two
// correspondences yields the keyword set the target really wants.
//
// Three variants cover the three kinds of target:
//
//   - FunctionCaller invokes a free function.
//   - MethodCaller invokes a method expression, taking the bound instance as
//     an explicit typed argument.
//   - ObjectMaker builds a struct value, treating its exported fields as the
//     initializer's formal parameters. When the keyword set cannot satisfy
//     them it substitutes the Uninstantiated placeholder instead of failing,
//     so grading code that expects an object of roughly the right shape can
//     proceed.
//
// Function and method callers perform no error recovery: a *BindingError or
// an error returned by the target itself propagates as-is, because harnesses
// need to observe and classify miscallable submissions themselves.
//
// Adapters hold no mutable state after construction and are safe for
// concurrent use by multiple goroutines.
package caller
