package filesize

// To resolves f and converts it to unit using the configured byte base,
// rounded to precision[0] when given, else the configured precision.
func (f FileSize) To(unit Unit, precision ...int) (float64, error) {
	opts := f.opts()
	if len(precision) > 0 {
		opts.Precision = precision[0]
		if err := opts.Validate(); err != nil {
			return 0, err
		}
	}

	bytes, err := f.resolve()
	if err != nil {
		return 0, err
	}
	return round(unit.FromBytes(bytes, opts.ResolvedByteBase()), opts.Precision), nil
}

func (f FileSize) ToBytes(precision ...int) (float64, error) {
	return f.To(Byte, precision...)
}

func (f FileSize) ToKilobytes(precision ...int) (float64, error) {
	return f.To(KiloByte, precision...)
}

func (f FileSize) ToMegabytes(precision ...int) (float64, error) {
	return f.To(MegaByte, precision...)
}

func (f FileSize) ToGigabytes(precision ...int) (float64, error) {
	return f.To(GigaByte, precision...)
}

func (f FileSize) ToTerabytes(precision ...int) (float64, error) {
	return f.To(TeraByte, precision...)
}

func (f FileSize) ToPetabytes(precision ...int) (float64, error) {
	return f.To(PetaByte, precision...)
}

// Get converts f to the unit named by name, which may be plural, singular or
// a two-letter alias ("megabytes", "megabyte", "mb").
func (f FileSize) Get(name string) (float64, error) {
	unit, err := ParseUnit(name)
	if err != nil {
		return 0, err
	}
	return f.To(unit)
}
