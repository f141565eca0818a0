package filesize_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cyclone1070/filesize"
)

func TestConversion_AllUnits(t *testing.T) {
	size := must(t)(filesize.FromPetabytes(1))

	tests := []struct {
		name    string
		convert func(...int) (float64, error)
		want    float64
	}{
		{"ToBytes", size.ToBytes, math.Pow(1024, 5)},
		{"ToKilobytes", size.ToKilobytes, math.Pow(1024, 4)},
		{"ToMegabytes", size.ToMegabytes, math.Pow(1024, 3)},
		{"ToGigabytes", size.ToGigabytes, math.Pow(1024, 2)},
		{"ToTerabytes", size.ToTerabytes, 1024},
		{"ToPetabytes", size.ToPetabytes, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.convert()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConversion_ByteBase(t *testing.T) {
	size := must(t)(filesize.FromGigabytes(1))

	assert.Equal(t, float64(1024), toMegabytes(t, size))
	assert.Equal(t, float64(1000), toMegabytes(t, size.InDecimalFormat()))
}

func TestConversion_Precision(t *testing.T) {
	size := must(t)(filesize.NewFromBytes(1234567))

	tests := []struct {
		name      string
		precision []int
		want      float64
	}{
		{"Configured_Default", nil, 1205.63},
		{"Override_Zero", []int{0}, 1206},
		{"Override_Four", []int{4}, 1205.6318},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := size.ToKilobytes(tt.precision...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("Override_Out_Of_Range", func(t *testing.T) {
		_, err := size.ToKilobytes(16)
		assert.ErrorIs(t, err, filesize.ErrInvalidValue)
	})

	t.Run("Configured_Precision", func(t *testing.T) {
		precise := must(t)(size.WithPrecision(1))
		got, err := precise.ToMegabytes()
		require.NoError(t, err)
		assert.Equal(t, 1.2, got)
	})
}

func TestConversion_RoundTrip(t *testing.T) {
	byteCounts := []float64{0, 1, 1023, 1024, 1500000, 123456789, 5e15}
	for _, base := range []filesize.ByteBase{filesize.Binary, filesize.Decimal} {
		for _, unit := range filesize.Units() {
			for _, b := range byteCounts {
				opts := filesize.OptionMap{"byte_base": base}
				size := must(t)(must(t)(filesize.New(opts)).Set(unit.FromBytes(b, base), unit))

				got := toBytes(t, size)
				assert.InDelta(t, b, got, 0.01, "base=%s unit=%s bytes=%v", base, unit, b)
			}
		}
	}
}

func TestGet_DynamicAccessor(t *testing.T) {
	size := must(t)(filesize.FromMegabytes(2))

	for _, name := range []string{"kilobytes", "kilobyte", "kb", "KB", "Kilobytes", " kilobytes "} {
		t.Run(name, func(t *testing.T) {
			got, err := size.Get(name)
			require.NoError(t, err)
			assert.Equal(t, float64(2048), got)
		})
	}

	for _, name := range []string{"bytes", "byte", "b"} {
		got, err := size.Get(name)
		require.NoError(t, err)
		assert.Equal(t, float64(2097152), got)
	}

	got, err := size.Get("petabytes")
	require.NoError(t, err)
	assert.Equal(t, float64(0), got) // Rounded to two places

	t.Run("Unknown_Name", func(t *testing.T) {
		_, err := size.Get("parsecs")
		require.Error(t, err)
		assert.ErrorIs(t, err, filesize.ErrInvalidValue)
		assert.Equal(t, "Unknown property: parsecs", err.Error())
	})
}
