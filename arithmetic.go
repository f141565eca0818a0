package filesize

import "math"

// enqueue returns a copy of f with op appended to a fresh copy of the queue.
func (f FileSize) enqueue(op PendingOperation) FileSize {
	pending := make([]PendingOperation, len(f.pending), len(f.pending)+1)
	copy(pending, f.pending)
	f.pending = append(pending, op)
	return f.withOptions(f.opts())
}

// Add queues the addition of v expressed in unit.
func (f FileSize) Add(v float64, unit Unit) FileSize {
	return f.enqueue(PendingOperation{Kind: OpAdd, Value: v, Unit: unit})
}

// Sub queues the subtraction of v expressed in unit. A negative running
// total fails at resolution when validation_throw_on_negative_result is set.
func (f FileSize) Sub(v float64, unit Unit) FileSize {
	return f.enqueue(PendingOperation{Kind: OpSubtract, Value: v, Unit: unit})
}

// Multiply queues multiplication by a raw factor.
func (f FileSize) Multiply(factor float64) FileSize {
	return f.enqueue(PendingOperation{Kind: OpMultiply, Value: factor, Unit: NoUnit})
}

// Divide queues division by a raw divisor. A divisor whose integer part is
// zero is rejected immediately.
func (f FileSize) Divide(divisor float64) (FileSize, error) {
	if math.IsNaN(divisor) || math.IsInf(divisor, 0) {
		return FileSize{}, invalidValue("Value must be a finite number.")
	}
	if math.Trunc(divisor) == 0 {
		return FileSize{}, invalidValue("Cannot divide by zero.")
	}
	return f.enqueue(PendingOperation{Kind: OpDivide, Value: divisor, Unit: NoUnit}), nil
}

// Abs resolves the queue and returns the absolute byte count with an empty
// queue.
func (f FileSize) Abs() (FileSize, error) {
	bytes, err := f.resolve()
	if err != nil {
		return FileSize{}, err
	}
	out := f.withOptions(f.opts())
	out.bytes = math.Abs(bytes)
	out.pending = nil
	return out, nil
}

func (f FileSize) AddBytes(v float64) FileSize     { return f.Add(v, Byte) }
func (f FileSize) SubBytes(v float64) FileSize     { return f.Sub(v, Byte) }
func (f FileSize) AddKilobytes(v float64) FileSize { return f.Add(v, KiloByte) }
func (f FileSize) SubKilobytes(v float64) FileSize { return f.Sub(v, KiloByte) }
func (f FileSize) AddMegabytes(v float64) FileSize { return f.Add(v, MegaByte) }
func (f FileSize) SubMegabytes(v float64) FileSize { return f.Sub(v, MegaByte) }
func (f FileSize) AddGigabytes(v float64) FileSize { return f.Add(v, GigaByte) }
func (f FileSize) SubGigabytes(v float64) FileSize { return f.Sub(v, GigaByte) }
func (f FileSize) AddTerabytes(v float64) FileSize { return f.Add(v, TeraByte) }
func (f FileSize) SubTerabytes(v float64) FileSize { return f.Sub(v, TeraByte) }
func (f FileSize) AddPetabytes(v float64) FileSize { return f.Add(v, PetaByte) }
func (f FileSize) SubPetabytes(v float64) FileSize { return f.Sub(v, PetaByte) }
