package filesize

import (
	"math"
	"strings"
)

// ByteBase selects the multiplier between adjacent units: 1024 (IEC) or
// 1000 (SI). The zero value means "not configured".
type ByteBase string

const (
	Binary  ByteBase = "binary"
	Decimal ByteBase = "decimal"
)

// DefaultByteBase is used whenever no valid base is configured.
func DefaultByteBase() ByteBase {
	return Binary
}

// ParseByteBase accepts "binary" or "decimal" in any case.
func ParseByteBase(s string) (ByteBase, error) {
	switch ByteBase(strings.ToLower(strings.TrimSpace(s))) {
	case Binary:
		return Binary, nil
	case Decimal:
		return Decimal, nil
	}
	return "", invalidValue("Unknown byte base: %s", s)
}

// Valid reports whether b is one of the two known bases.
func (b ByteBase) Valid() bool {
	return b == Binary || b == Decimal
}

// Multiplier returns the factor between two adjacent units.
func (b ByteBase) Multiplier() float64 {
	if b == Decimal {
		return 1000
	}
	return 1024
}

// Multiply returns Multiplier() raised to exponent.
func (b ByteBase) Multiply(exponent int) float64 {
	return math.Pow(b.Multiplier(), float64(exponent))
}

func (b ByteBase) String() string {
	return string(b)
}

// orDefault returns b when valid, otherwise fallback.
func (b ByteBase) orDefault(fallback ByteBase) ByteBase {
	if b.Valid() {
		return b
	}
	return fallback
}
