package filesize

import "cmp"

// Compare resolves f and compares it with v expressed in unit. Both sides are
// rounded to the configured precision first, so differences below it compare
// equal. Returns -1, 0 or +1.
func (f FileSize) Compare(v float64, unit Unit, overrides ...OptionMap) (int, error) {
	opts, err := f.opts().Merge(overrides...)
	if err != nil {
		return 0, err
	}

	bytes, err := f.withOptions(opts).resolve()
	if err != nil {
		return 0, err
	}

	own := round(bytes, opts.Precision)
	other := round(unit.ToBytes(v, opts.ResolvedByteBase()), opts.Precision)
	return cmp.Compare(own, other), nil
}

func (f FileSize) Equals(v float64, unit Unit, overrides ...OptionMap) (bool, error) {
	return f.check(v, unit, overrides, func(c int) bool { return c == 0 })
}

func (f FileSize) NotEquals(v float64, unit Unit, overrides ...OptionMap) (bool, error) {
	return f.check(v, unit, overrides, func(c int) bool { return c != 0 })
}

func (f FileSize) GreaterThan(v float64, unit Unit, overrides ...OptionMap) (bool, error) {
	return f.check(v, unit, overrides, func(c int) bool { return c > 0 })
}

func (f FileSize) GreaterThanOrEqual(v float64, unit Unit, overrides ...OptionMap) (bool, error) {
	return f.check(v, unit, overrides, func(c int) bool { return c >= 0 })
}

func (f FileSize) LessThan(v float64, unit Unit, overrides ...OptionMap) (bool, error) {
	return f.check(v, unit, overrides, func(c int) bool { return c < 0 })
}

func (f FileSize) LessThanOrEqual(v float64, unit Unit, overrides ...OptionMap) (bool, error) {
	return f.check(v, unit, overrides, func(c int) bool { return c <= 0 })
}

func (f FileSize) check(v float64, unit Unit, overrides []OptionMap, pred func(int) bool) (bool, error) {
	c, err := f.Compare(v, unit, overrides...)
	if err != nil {
		return false, err
	}
	return pred(c), nil
}

// Between reports whether lower <= f <= upper, both bounds inclusive.
func (f FileSize) Between(lower, upper float64, unit Unit, overrides ...OptionMap) (bool, error) {
	ok, err := f.GreaterThanOrEqual(lower, unit, overrides...)
	if err != nil || !ok {
		return false, err
	}
	return f.LessThanOrEqual(upper, unit, overrides...)
}

// Min returns whichever of f and other has fewer resolved bytes, without
// rounding. Ties return f.
func (f FileSize) Min(other FileSize) (FileSize, error) {
	a, b, err := resolvePair(f, other)
	if err != nil {
		return FileSize{}, err
	}
	if a <= b {
		return f, nil
	}
	return other, nil
}

// Max returns whichever of f and other has more resolved bytes, without
// rounding. Ties return f.
func (f FileSize) Max(other FileSize) (FileSize, error) {
	a, b, err := resolvePair(f, other)
	if err != nil {
		return FileSize{}, err
	}
	if a >= b {
		return f, nil
	}
	return other, nil
}

func resolvePair(a, b FileSize) (float64, float64, error) {
	x, err := a.resolve()
	if err != nil {
		return 0, 0, err
	}
	y, err := b.resolve()
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

// IsZero reports whether f equals zero bytes at the configured precision.
func (f FileSize) IsZero(overrides ...OptionMap) (bool, error) {
	return f.Equals(0, Byte, overrides...)
}

// IsPositive reports whether the resolved byte count is strictly above zero.
func (f FileSize) IsPositive() (bool, error) {
	bytes, err := f.resolve()
	if err != nil {
		return false, err
	}
	return bytes > 0, nil
}

// IsNegative is the complement of IsPositive.
// NOTE: zero therefore reports as negative.
func (f FileSize) IsNegative() (bool, error) {
	positive, err := f.IsPositive()
	if err != nil {
		return false, err
	}
	return !positive, nil
}
