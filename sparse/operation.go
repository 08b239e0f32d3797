// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"
	"strings"
)

// Operation selects one of the binary kernels. It is the hand-off point
// between a caller that picks an operation by name and the kernels above.
type Operation int

const (
	OpAdd Operation = iota + 1
	OpSub
	OpMul
)

// Operations lists every valid Operation in menu order.
var Operations = []Operation{OpAdd, OpSub, OpMul}

// opNames maps accepted spellings to operations.
var opNames = map[string]Operation{
	"add": OpAdd, "addition": OpAdd, "+": OpAdd,
	"sub": OpSub, "subtract": OpSub, "subtraction": OpSub, "-": OpSub,
	"mul": OpMul, "multiply": OpMul, "multiplication": OpMul, "*": OpMul,
}

// ParseOperation resolves a case-insensitive name such as "add",
// "subtraction" or "*". Unknown names yield ErrUnknownOperation.
func ParseOperation(name string) (Operation, error) {
	if op, ok := opNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return op, nil
	}

	return 0, fmt.Errorf("%q: %w", name, ErrUnknownOperation)
}

// String returns the long lowercase name ("addition", ...), used for
// result file names and messages.
func (op Operation) String() string {
	switch op {
	case OpAdd:
		return "addition"
	case OpSub:
		return "subtraction"
	case OpMul:
		return "multiplication"
	default:
		return fmt.Sprintf("Operation(%d)", int(op))
	}
}

// Apply runs the selected kernel on a and b.
func (op Operation) Apply(a, b *Matrix, opts ...Option) (*Matrix, error) {
	switch op {
	case OpAdd:
		return Add(a, b, opts...)
	case OpSub:
		return Sub(a, b, opts...)
	case OpMul:
		return Mul(a, b, opts...)
	default:
		return nil, fmt.Errorf("%s: %w", op, ErrUnknownOperation)
	}
}

// Compatible reports whether Apply would pass its shape checks for a and b.
// Nil operands are never compatible.
func (op Operation) Compatible(a, b *Matrix) bool {
	if a == nil || b == nil {
		return false
	}
	switch op {
	case OpAdd, OpSub:
		return ValidateSameShape(op.String(), a, b) == nil
	case OpMul:
		return ValidateMulShape(op.String(), a, b) == nil
	default:
		return false
	}
}
