package filesize

import (
	"fmt"
	"strings"
)

// Unit is a power of the byte base, from Byte (exponent 0) to PetaByte (5).
type Unit int

const (
	Byte Unit = iota
	KiloByte
	MegaByte
	GigaByte
	TeraByte
	PetaByte
)

// NoUnit marks a pending operation whose operand is a raw factor.
const NoUnit Unit = -1

// labels is indexed by unit, then [binary long, binary short, decimal long, decimal short].
var labels = [...][4]string{
	Byte:     {"Bytes", "B", "Bytes", "B"},
	KiloByte: {"Kibibytes", "KiB", "Kilobytes", "KB"},
	MegaByte: {"Mebibytes", "MiB", "Megabytes", "MB"},
	GigaByte: {"Gibibytes", "GiB", "Gigabytes", "GB"},
	TeraByte: {"Tebibytes", "TiB", "Terabytes", "TB"},
	PetaByte: {"Pebibytes", "PiB", "Petabytes", "PB"},
}

var unitNames = map[string]Unit{
	"byte":     Byte,
	"b":        Byte,
	"kilobyte": KiloByte,
	"kb":       KiloByte,
	"megabyte": MegaByte,
	"mb":       MegaByte,
	"gigabyte": GigaByte,
	"gb":       GigaByte,
	"terabyte": TeraByte,
	"tb":       TeraByte,
	"petabyte": PetaByte,
	"pb":       PetaByte,
}

// Units returns every unit in ascending order.
func Units() []Unit {
	return []Unit{Byte, KiloByte, MegaByte, GigaByte, TeraByte, PetaByte}
}

// ParseUnit resolves a unit by plural, singular or two-letter name
// ("kilobytes", "kilobyte", "kb"). Matching is case-insensitive.
func ParseUnit(name string) (Unit, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if u, ok := unitNames[key]; ok {
		return u, nil
	}
	if u, ok := unitNames[strings.TrimSuffix(key, "s")]; ok && key != "s" {
		return u, nil
	}
	return NoUnit, invalidValue("Unknown property: %s", name)
}

func (u Unit) valid() bool {
	return u >= Byte && u <= PetaByte
}

// ToBytes converts value expressed in u to bytes.
func (u Unit) ToBytes(value float64, base ByteBase) float64 {
	return value * base.Multiply(int(u))
}

// FromBytes converts a byte count to a value expressed in u.
func (u Unit) FromBytes(bytes float64, base ByteBase) float64 {
	return bytes / base.Multiply(int(u))
}

// Label returns the display name of u in the label family of base.
func (u Unit) Label(base ByteBase, short bool) string {
	if !u.valid() {
		return ""
	}
	col := 0
	if base.orDefault(DefaultByteBase()) == Decimal {
		col = 2
	}
	if short {
		col++
	}
	return labels[u][col]
}

func (u Unit) String() string {
	if !u.valid() {
		return fmt.Sprintf("Unit(%d)", int(u))
	}
	return [...]string{"byte", "kilobyte", "megabyte", "gigabyte", "terabyte", "petabyte"}[u]
}
