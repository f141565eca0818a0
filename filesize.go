// Package filesize provides FileSize, an immutable byte-count value with unit
// conversion, deferred arithmetic, precision-aware comparison and
// human-readable formatting in binary (1024) or decimal (1000) bases.
//
// Every method that looks like a mutation returns a new FileSize; the
// receiver, its options and its pending operations are never modified.
// Arithmetic is recorded as pending operations and replayed when the value is
// observed (converted, compared, formatted or evaluated).
package filesize

import (
	"math"
)

// FileSize is a byte count plus the pending operations still to be applied
// to it. The zero value is an empty size with default options.
type FileSize struct {
	bytes      float64
	pending    []PendingOperation
	options    Options
	configured bool
}

// New returns an empty FileSize with default options overlaid with overrides.
func New(overrides ...OptionMap) (FileSize, error) {
	opts, err := DefaultOptions().Merge(overrides...)
	if err != nil {
		return FileSize{}, err
	}
	return FileSize{options: opts, configured: true}, nil
}

// NewFromBytes returns a FileSize holding bytes. Negative input is rejected
// unless validation_allow_negative_input is set; non-finite input is
// always rejected.
func NewFromBytes(bytes float64, overrides ...OptionMap) (FileSize, error) {
	f, err := New(overrides...)
	if err != nil {
		return FileSize{}, err
	}
	if err := validateInput(bytes, f.options); err != nil {
		return FileSize{}, err
	}
	f.bytes = bytes
	return f, nil
}

func validateInput(value float64, opts Options) error {
	if value < 0 && !opts.ValidationAllowNegativeInput {
		return negativeInput(value)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return invalidValue("Value must be a finite number.")
	}
	return nil
}

func (f FileSize) opts() Options {
	if !f.configured {
		return DefaultOptions()
	}
	return f.options
}

func (f FileSize) withOptions(opts Options) FileSize {
	f.options = opts
	f.configured = true
	return f
}

// Set starts a new value of v expressed in unit. Earlier pending operations
// are discarded.
func (f FileSize) Set(v float64, unit Unit, overrides ...OptionMap) (FileSize, error) {
	opts, err := f.opts().Merge(overrides...)
	if err != nil {
		return FileSize{}, err
	}
	if !unit.valid() {
		return FileSize{}, invalidValue("Unknown unit: %s", unit)
	}
	if err := validateInput(v, opts); err != nil {
		return FileSize{}, err
	}

	out := f.withOptions(opts)
	out.pending = []PendingOperation{{Kind: OpSet, Value: v, Unit: unit}}
	return out, nil
}

func (f FileSize) Bytes(v float64, overrides ...OptionMap) (FileSize, error) {
	return f.Set(v, Byte, overrides...)
}

func (f FileSize) Kilobytes(v float64, overrides ...OptionMap) (FileSize, error) {
	return f.Set(v, KiloByte, overrides...)
}

func (f FileSize) Megabytes(v float64, overrides ...OptionMap) (FileSize, error) {
	return f.Set(v, MegaByte, overrides...)
}

func (f FileSize) Gigabytes(v float64, overrides ...OptionMap) (FileSize, error) {
	return f.Set(v, GigaByte, overrides...)
}

func (f FileSize) Terabytes(v float64, overrides ...OptionMap) (FileSize, error) {
	return f.Set(v, TeraByte, overrides...)
}

func (f FileSize) Petabytes(v float64, overrides ...OptionMap) (FileSize, error) {
	return f.Set(v, PetaByte, overrides...)
}

// Byte is Bytes(1).
func (f FileSize) Byte(overrides ...OptionMap) (FileSize, error) {
	return f.Bytes(1, overrides...)
}

func (f FileSize) Kilobyte(overrides ...OptionMap) (FileSize, error) {
	return f.Kilobytes(1, overrides...)
}

func (f FileSize) Megabyte(overrides ...OptionMap) (FileSize, error) {
	return f.Megabytes(1, overrides...)
}

func (f FileSize) Gigabyte(overrides ...OptionMap) (FileSize, error) {
	return f.Gigabytes(1, overrides...)
}

func (f FileSize) Terabyte(overrides ...OptionMap) (FileSize, error) {
	return f.Terabytes(1, overrides...)
}

func (f FileSize) Petabyte(overrides ...OptionMap) (FileSize, error) {
	return f.Petabytes(1, overrides...)
}

// -- Factories --

func fromUnit(v float64, unit Unit, overrides []OptionMap) (FileSize, error) {
	f, err := New(overrides...)
	if err != nil {
		return FileSize{}, err
	}
	return f.Set(v, unit)
}

func FromBytes(v float64, overrides ...OptionMap) (FileSize, error) {
	return fromUnit(v, Byte, overrides)
}

func FromKilobytes(v float64, overrides ...OptionMap) (FileSize, error) {
	return fromUnit(v, KiloByte, overrides)
}

func FromMegabytes(v float64, overrides ...OptionMap) (FileSize, error) {
	return fromUnit(v, MegaByte, overrides)
}

func FromGigabytes(v float64, overrides ...OptionMap) (FileSize, error) {
	return fromUnit(v, GigaByte, overrides)
}

func FromTerabytes(v float64, overrides ...OptionMap) (FileSize, error) {
	return fromUnit(v, TeraByte, overrides)
}

func FromPetabytes(v float64, overrides ...OptionMap) (FileSize, error) {
	return fromUnit(v, PetaByte, overrides)
}

// Zero returns a size of zero bytes.
func Zero(overrides ...OptionMap) (FileSize, error) {
	return fromUnit(0, Byte, overrides)
}

// -- Resolution --

// resolve folds the pending operations over the raw byte count.
func (f FileSize) resolve() (float64, error) {
	if len(f.pending) == 0 {
		return f.bytes, nil
	}

	opts := f.opts()
	base := opts.ResolvedByteBase()
	bytes := f.bytes

	for _, op := range f.pending {
		bytes = op.Kind.Execute(bytes, op.Operand(base))

		if op.Kind == OpSubtract && bytes < 0 && opts.ValidationThrowOnNegativeResult {
			return 0, negativeResult(bytes)
		}
	}

	return bytes, nil
}

// Evaluate applies all pending operations now and returns a size holding the
// result with an empty queue. Options are preserved.
func (f FileSize) Evaluate() (FileSize, error) {
	if len(f.pending) == 0 {
		return f, nil
	}
	bytes, err := f.resolve()
	if err != nil {
		return FileSize{}, err
	}
	out := f.withOptions(f.opts())
	out.bytes = bytes
	out.pending = nil
	return out, nil
}

// GetBytes returns the resolved byte count without rounding.
func (f FileSize) GetBytes() (float64, error) {
	return f.resolve()
}

// Pending returns a copy of the queued operations.
func (f FileSize) Pending() []PendingOperation {
	return append([]PendingOperation(nil), f.pending...)
}

// -- Configuration --

// Options returns the active options.
func (f FileSize) Options() Options {
	return f.opts()
}

func (f FileSize) Precision() int {
	return f.opts().Precision
}

// ByteBase returns the base used for numeric conversion.
func (f FileSize) ByteBase() ByteBase {
	return f.opts().ResolvedByteBase()
}

// LabelBase returns the base whose unit names are used for display.
func (f FileSize) LabelBase() ByteBase {
	return f.opts().ResolvedLabelBase()
}

// WithPrecision returns a copy rounding to precision digits.
func (f FileSize) WithPrecision(precision int) (FileSize, error) {
	opts := f.opts()
	opts.Precision = precision
	if err := opts.Validate(); err != nil {
		return FileSize{}, err
	}
	return f.withOptions(opts), nil
}

// WithByteBase returns a copy converting with base.
func (f FileSize) WithByteBase(base ByteBase) FileSize {
	opts := f.opts()
	opts.ByteBase = base
	return f.withOptions(opts)
}

func (f FileSize) InBinaryFormat() FileSize {
	return f.WithByteBase(Binary)
}

func (f FileSize) InDecimalFormat() FileSize {
	return f.WithByteBase(Decimal)
}

// WithLabelStyle returns a copy displaying unit names of base. Numeric
// conversion is unaffected.
func (f FileSize) WithLabelStyle(base ByteBase) FileSize {
	opts := f.opts()
	opts.LabelStyle = base
	return f.withOptions(opts)
}

func (f FileSize) WithBinaryLabel() FileSize {
	return f.WithLabelStyle(Binary)
}

func (f FileSize) WithDecimalLabel() FileSize {
	return f.WithLabelStyle(Decimal)
}
