package filesize

import "fmt"

// OperationKind is the arithmetic step recorded by a PendingOperation.
type OperationKind int

const (
	OpSet OperationKind = iota
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
)

// Execute applies the step to the running total acc.
func (k OperationKind) Execute(acc, operand float64) float64 {
	switch k {
	case OpSet:
		return operand
	case OpAdd:
		return acc + operand
	case OpSubtract:
		return acc - operand
	case OpMultiply:
		return acc * operand
	case OpDivide:
		return acc / operand
	default:
		return acc
	}
}

func (k OperationKind) String() string {
	switch k {
	case OpSet:
		return "set"
	case OpAdd:
		return "add"
	case OpSubtract:
		return "subtract"
	case OpMultiply:
		return "multiply"
	case OpDivide:
		return "divide"
	default:
		return fmt.Sprintf("OperationKind(%d)", int(k))
	}
}

// PendingOperation is one deferred arithmetic step. Value is expressed in
// Unit, or is a raw factor when Unit is NoUnit.
type PendingOperation struct {
	Kind  OperationKind
	Value float64
	Unit  Unit
}

// Operand returns the step's operand in bytes (or the raw factor).
func (p PendingOperation) Operand(base ByteBase) float64 {
	if p.Unit == NoUnit {
		return p.Value
	}
	return p.Unit.ToBytes(p.Value, base)
}

func (p PendingOperation) String() string {
	if p.Unit == NoUnit {
		return fmt.Sprintf("%s %g", p.Kind, p.Value)
	}
	return fmt.Sprintf("%s %g %s", p.Kind, p.Value, p.Unit)
}
