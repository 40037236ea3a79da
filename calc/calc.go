// Package calc: the Calculator registry and its history.
package calc

import (
	"fmt"
	"log/slog"
)

// Entry is one recorded calculation: which operation ran and what it produced.
type Entry struct {
	Op     string  // operation name as dispatched
	Result float64 // value returned by Operation.Apply
}

// Calculator dispatches named binary operations and records every successful
// result. Zero value is not usable — construct via New. Not safe for
// concurrent use.
type Calculator struct {
	ops     []Operation // registration order preserved for OperationNames
	byName  map[string]Operation
	history []Entry
	logger  *slog.Logger // nil ⇒ silent
}

// New creates a Calculator with the four built-in operations (addition,
// subtraction, multiplication, division) already registered.
func New(opts ...Option) *Calculator {
	c := &Calculator{byName: make(map[string]Operation)}
	for _, opt := range opts {
		opt(c)
	}

	// Built-ins can never collide in a fresh registry.
	for _, op := range []Operation{addition{}, subtraction{}, multiplication{}, division{}} {
		_ = c.Register(op)
	}

	return c
}

// Register adds op to the registry.
//
// Errors: ErrNilOperation (nil op), ErrDuplicateOperation (name taken).
// Complexity: O(1).
func (c *Calculator) Register(op Operation) error {
	if op == nil {
		return ErrNilOperation
	}
	name := op.Name()
	if _, exists := c.byName[name]; exists {
		return fmt.Errorf("Register(%q): %w", name, ErrDuplicateOperation)
	}

	c.byName[name] = op
	c.ops = append(c.ops, op)

	return nil
}

// Calculate dispatches the operation registered under name with operands
// (a, b). A successful result is appended to the history and, when a logger
// is configured, logged at Debug. A failed Apply records nothing.
//
// Errors: ErrUnknownOperation (no such name), plus whatever the operation
// itself reports (e.g. ErrDivideByZero).
// Complexity: O(1) dispatch.
func (c *Calculator) Calculate(name string, a, b float64) (float64, error) {
	op, ok := c.byName[name]
	if !ok {
		return 0, fmt.Errorf("Calculate(%q): %w", name, ErrUnknownOperation)
	}

	result, err := op.Apply(a, b)
	if err != nil {
		return 0, fmt.Errorf("Calculate(%q): %w", name, err)
	}

	c.history = append(c.history, Entry{Op: name, Result: result})
	if c.logger != nil {
		c.logger.Debug("calculated", "op", name, "a", a, "b", b, "result", result)
	}

	return result, nil
}

// History returns a copy of the recorded entries in calculation order.
// Mutating the returned slice does not affect the Calculator.
func (c *Calculator) History() []Entry {
	out := make([]Entry, len(c.history))
	copy(out, c.history)

	return out
}

// Len returns the number of recorded calculations. Complexity: O(1).
func (c *Calculator) Len() int { return len(c.history) }

// ClearHistory discards all recorded entries. Registered operations remain.
func (c *Calculator) ClearHistory() { c.history = c.history[:0] }

// OperationCount returns the number of registered operations.
func (c *Calculator) OperationCount() int { return len(c.ops) }

// OperationNames returns the registered operation names in registration
// order, built-ins first.
func (c *Calculator) OperationNames() []string {
	names := make([]string, len(c.ops))
	for i, op := range c.ops {
		names[i] = op.Name()
	}

	return names
}
