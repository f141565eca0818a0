package filesize

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// displayUnits is scanned from the largest unit down; Byte is the fallback.
var displayUnits = []Unit{PetaByte, TeraByte, GigaByte, MegaByte, KiloByte}

// ForHumans renders f in the largest unit whose magnitude is at least one,
// e.g. "1.50 Mebibytes" or, with short, "1.50 MiB". The numeric conversion
// uses the byte base; the unit name uses the label style.
func (f FileSize) ForHumans(short bool, overrides ...OptionMap) (string, error) {
	opts, err := f.opts().Merge(overrides...)
	if err != nil {
		return "", err
	}

	bytes, err := f.withOptions(opts).resolve()
	if err != nil {
		return "", err
	}

	base := opts.ResolvedByteBase()
	unit := bestUnit(bytes, base)
	value := round(unit.FromBytes(bytes, base), opts.Precision)

	var b strings.Builder
	b.WriteString(formatNumber(value, opts.Precision, opts.DecimalSeparator, opts.ThousandsSeparator))
	if opts.SpaceBetweenValueAndUnit {
		b.WriteByte(' ')
	}
	b.WriteString(unit.Label(opts.ResolvedLabelBase(), short))
	return b.String(), nil
}

// Format renders with long unit names.
func (f FileSize) Format(overrides ...OptionMap) (string, error) {
	return f.ForHumans(false, overrides...)
}

// FormatShort renders with short unit names.
func (f FileSize) FormatShort(overrides ...OptionMap) (string, error) {
	return f.ForHumans(true, overrides...)
}

// String implements fmt.Stringer using Format.
func (f FileSize) String() string {
	s, err := f.Format()
	if err != nil {
		return fmt.Sprintf("%%!v(filesize: %v)", err)
	}
	return s
}

func bestUnit(bytes float64, base ByteBase) Unit {
	abs := math.Abs(bytes)
	for _, unit := range displayUnits {
		if abs >= unit.ToBytes(1, base) {
			return unit
		}
	}
	return Byte
}

// formatNumber renders value with exactly precision fractional digits and
// the integer part grouped in thousands. A value that prints as zero is
// never signed.
func formatNumber(value float64, precision int, decimalSep, thousandsSep string) string {
	digits := strconv.FormatFloat(math.Abs(value), 'f', precision, 64)
	whole, frac, _ := strings.Cut(digits, ".")

	grouped := whole
	if n, ok := new(big.Int).SetString(whole, 10); ok {
		grouped = strings.ReplaceAll(humanize.BigComma(n), ",", thousandsSep)
	}

	sign := ""
	if value < 0 && strings.Trim(whole+frac, "0") != "" {
		sign = "-"
	}

	if precision == 0 {
		return sign + grouped
	}
	return sign + grouped + decimalSep + frac
}
