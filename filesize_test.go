package filesize_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cyclone1070/filesize"
)

// must returns a function that fails the test on err and returns size.
// Use as must(t)(filesize.FromBytes(1)).
func must(t *testing.T) func(filesize.FileSize, error) filesize.FileSize {
	return func(size filesize.FileSize, err error) filesize.FileSize {
		t.Helper()
		require.NoError(t, err)
		return size
	}
}

func toBytes(t *testing.T, size filesize.FileSize) float64 {
	t.Helper()
	v, err := size.ToBytes()
	require.NoError(t, err)
	return v
}

func toMegabytes(t *testing.T, size filesize.FileSize) float64 {
	t.Helper()
	v, err := size.ToMegabytes()
	require.NoError(t, err)
	return v
}

func TestNew_Defaults(t *testing.T) {
	size := must(t)(filesize.New())

	assert.Equal(t, filesize.DefaultOptions(), size.Options())
	assert.Equal(t, 2, size.Precision())
	assert.Equal(t, filesize.Binary, size.ByteBase())
	assert.Equal(t, filesize.Binary, size.LabelBase())
	assert.Equal(t, float64(0), toBytes(t, size))
	assert.Empty(t, size.Pending())
}

func TestZeroValue_BehavesAsDefault(t *testing.T) {
	var size filesize.FileSize

	assert.Equal(t, filesize.DefaultOptions(), size.Options())
	assert.Equal(t, float64(0), toBytes(t, size))

	formatted, err := size.Format()
	require.NoError(t, err)
	assert.Equal(t, "0.00 Bytes", formatted)

	grown := size.AddKilobytes(1)
	assert.Equal(t, float64(1024), toBytes(t, grown))
}

func TestNewFromBytes(t *testing.T) {
	size := must(t)(filesize.NewFromBytes(2048))

	assert.Equal(t, float64(2048), toBytes(t, size))
	assert.Empty(t, size.Pending())
}

func TestNewFromBytes_Validation(t *testing.T) {
	tests := []struct {
		name    string
		bytes   float64
		opts    filesize.OptionMap
		wantErr error
		wantMsg string
	}{
		{"Negative_Rejected", -1, nil, filesize.ErrNegativeValue, "Negative values are not allowed. Use subtraction methods instead."},
		{"NaN_Rejected", math.NaN(), nil, filesize.ErrInvalidValue, "Value must be a finite number."},
		{"PosInf_Rejected", math.Inf(1), nil, filesize.ErrInvalidValue, "Value must be a finite number."},
		{"NegInf_Rejected_Even_When_Negatives_Allowed", math.Inf(-1), filesize.OptionMap{"validation_allow_negative_input": true}, filesize.ErrInvalidValue, "finite"},
		{"UnknownOption_Rejected", 1, filesize.OptionMap{"bogus_key": 1}, filesize.ErrInvalidValue, "bogus_key"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := filesize.NewFromBytes(tt.bytes, tt.opts)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}

	t.Run("Negative_Allowed_With_Option", func(t *testing.T) {
		size := must(t)(filesize.NewFromBytes(-10, filesize.OptionMap{"validation_allow_negative_input": true}))
		assert.Equal(t, float64(-10), toBytes(t, size))
	})
}

func TestNegativeValueError_CarriesValue(t *testing.T) {
	_, err := filesize.FromMegabytes(-3)

	var negErr *filesize.NegativeValueError
	require.ErrorAs(t, err, &negErr)
	assert.Equal(t, float64(-3), negErr.Value)
}

func TestFactories(t *testing.T) {
	tests := []struct {
		name    string
		factory func(float64, ...filesize.OptionMap) (filesize.FileSize, error)
		want    float64
	}{
		{"FromBytes", filesize.FromBytes, 2},
		{"FromKilobytes", filesize.FromKilobytes, 2 * 1024},
		{"FromMegabytes", filesize.FromMegabytes, 2 * 1024 * 1024},
		{"FromGigabytes", filesize.FromGigabytes, 2 * math.Pow(1024, 3)},
		{"FromTerabytes", filesize.FromTerabytes, 2 * math.Pow(1024, 4)},
		{"FromPetabytes", filesize.FromPetabytes, 2 * math.Pow(1024, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			size := must(t)(tt.factory(2))
			assert.Equal(t, tt.want, toBytes(t, size))

			pending := size.Pending()
			require.Len(t, pending, 1)
			assert.Equal(t, filesize.OpSet, pending[0].Kind)
		})
	}

	t.Run("Zero", func(t *testing.T) {
		size := must(t)(filesize.Zero())
		assert.Equal(t, float64(0), toBytes(t, size))
	})

	t.Run("Decimal_Option", func(t *testing.T) {
		size := must(t)(filesize.FromKilobytes(2, filesize.OptionMap{"byte_base": "decimal"}))
		assert.Equal(t, float64(2000), toBytes(t, size))
	})
}

func TestUnitSetters(t *testing.T) {
	base := must(t)(filesize.New())

	tests := []struct {
		name   string
		set    func() (filesize.FileSize, error)
		expect float64
	}{
		{"Bytes", func() (filesize.FileSize, error) { return base.Bytes(3) }, 3},
		{"Kilobytes", func() (filesize.FileSize, error) { return base.Kilobytes(3) }, 3 * 1024},
		{"Megabytes", func() (filesize.FileSize, error) { return base.Megabytes(3) }, 3 * math.Pow(1024, 2)},
		{"Gigabytes", func() (filesize.FileSize, error) { return base.Gigabytes(3) }, 3 * math.Pow(1024, 3)},
		{"Terabytes", func() (filesize.FileSize, error) { return base.Terabytes(3) }, 3 * math.Pow(1024, 4)},
		{"Petabytes", func() (filesize.FileSize, error) { return base.Petabytes(3) }, 3 * math.Pow(1024, 5)},
		{"Byte", func() (filesize.FileSize, error) { return base.Byte() }, 1},
		{"Kilobyte", func() (filesize.FileSize, error) { return base.Kilobyte() }, 1024},
		{"Megabyte", func() (filesize.FileSize, error) { return base.Megabyte() }, math.Pow(1024, 2)},
		{"Gigabyte", func() (filesize.FileSize, error) { return base.Gigabyte() }, math.Pow(1024, 3)},
		{"Terabyte", func() (filesize.FileSize, error) { return base.Terabyte() }, math.Pow(1024, 4)},
		{"Petabyte", func() (filesize.FileSize, error) { return base.Petabyte() }, math.Pow(1024, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			size := must(t)(tt.set())
			assert.Equal(t, tt.expect, toBytes(t, size))
		})
	}
}

func TestSet_DiscardsPendingQueue(t *testing.T) {
	size := must(t)(filesize.New())
	size = must(t)(size.Kilobytes(1))
	size = size.AddMegabytes(4).Multiply(3)
	size = must(t)(size.Megabytes(1))

	kb, err := size.ToKilobytes()
	require.NoError(t, err)
	assert.Equal(t, float64(1024), kb)

	pending := size.Pending()
	require.Len(t, pending, 1)
	assert.Equal(t, filesize.PendingOperation{Kind: filesize.OpSet, Value: 1, Unit: filesize.MegaByte}, pending[0])
}

func TestSet_InlineOverrides(t *testing.T) {
	size := must(t)(filesize.New())

	decimal := must(t)(size.Megabytes(1.5, filesize.OptionMap{"byte_base": "decimal"}))

	assert.Equal(t, float64(1500000), toBytes(t, decimal))
	assert.Equal(t, filesize.Binary, size.ByteBase()) // Receiver untouched
}

func TestSet_Validation(t *testing.T) {
	size := must(t)(filesize.New())

	_, err := size.Megabytes(-1)
	assert.ErrorIs(t, err, filesize.ErrNegativeValue)

	_, err = size.Megabytes(math.NaN())
	assert.ErrorIs(t, err, filesize.ErrInvalidValue)

	_, err = size.Set(1, filesize.NoUnit)
	assert.ErrorIs(t, err, filesize.ErrInvalidValue)

	_, err = size.Megabytes(1, filesize.OptionMap{"precision": -1})
	assert.ErrorIs(t, err, filesize.ErrInvalidValue)
}

func TestEvaluate(t *testing.T) {
	t.Run("Collapses_Queue", func(t *testing.T) {
		size := must(t)(filesize.FromMegabytes(1, filesize.OptionMap{"precision": 4}))
		size = size.AddKilobytes(512)

		evaluated := must(t)(size.Evaluate())

		assert.Empty(t, evaluated.Pending())
		assert.Equal(t, float64(1572864), toBytes(t, evaluated))
		assert.Equal(t, 4, evaluated.Precision())
		assert.Len(t, size.Pending(), 2) // Receiver untouched
	})

	t.Run("Nothing_Pending_Returns_Receiver", func(t *testing.T) {
		size := must(t)(filesize.NewFromBytes(42))
		evaluated := must(t)(size.Evaluate())
		assert.Equal(t, size, evaluated)
	})

	t.Run("Fixes_Bytes_Against_Later_Base_Change", func(t *testing.T) {
		size := must(t)(must(t)(filesize.FromKilobytes(1)).Evaluate())
		assert.Equal(t, float64(1024), toBytes(t, size.InDecimalFormat()))
	})

	t.Run("Propagates_Negative_Result", func(t *testing.T) {
		size := must(t)(filesize.FromMegabytes(1, filesize.OptionMap{"validation_throw_on_negative_result": true}))
		_, err := size.SubMegabytes(2).Evaluate()
		assert.ErrorIs(t, err, filesize.ErrNegativeValue)
	})

	t.Run("Keeps_Negative_Total_Without_Input_Check", func(t *testing.T) {
		size := must(t)(filesize.FromMegabytes(1))

		evaluated := must(t)(size.SubMegabytes(2).Evaluate())

		bytes, err := evaluated.GetBytes()
		require.NoError(t, err)
		assert.Equal(t, float64(-1048576), bytes)
		assert.False(t, evaluated.Options().ValidationAllowNegativeInput)
	})
}

func TestPendingUnitsConvertWithCurrentBase(t *testing.T) {
	size := must(t)(filesize.FromMegabytes(1))

	assert.Equal(t, float64(1048576), toBytes(t, size))
	assert.Equal(t, float64(1000000), toBytes(t, size.InDecimalFormat()))
}

func TestGetBytes_Unrounded(t *testing.T) {
	size := must(t)(must(t)(filesize.NewFromBytes(10)).Divide(3))

	bytes, err := size.GetBytes()
	require.NoError(t, err)
	assert.Equal(t, 10.0/3, bytes)
	assert.Equal(t, 3.33, toBytes(t, size))
}

func TestString(t *testing.T) {
	size := must(t)(filesize.FromMegabytes(1.5))
	assert.Equal(t, "1.50 Mebibytes", fmt.Sprint(size))

	failing := must(t)(filesize.FromMegabytes(1, filesize.OptionMap{"validation_throw_on_negative_result": true})).SubMegabytes(2)
	assert.Equal(t, "%!v(filesize: Subtraction resulted in negative value.)", failing.String())
}

func TestConfiguration_ReturnsCopies(t *testing.T) {
	size := must(t)(filesize.FromMegabytes(1))

	precise := must(t)(size.WithPrecision(5))
	assert.Equal(t, 5, precise.Precision())
	assert.Equal(t, 2, size.Precision())

	_, err := size.WithPrecision(filesize.MaxPrecision + 1)
	assert.ErrorIs(t, err, filesize.ErrInvalidValue)
	_, err = size.WithPrecision(-1)
	assert.ErrorIs(t, err, filesize.ErrInvalidValue)

	decimal := size.InDecimalFormat()
	assert.Equal(t, filesize.Decimal, decimal.ByteBase())
	assert.Equal(t, filesize.Decimal, decimal.LabelBase()) // Follows byte base
	assert.Equal(t, filesize.Binary, size.ByteBase())
	assert.Equal(t, filesize.Binary, decimal.InBinaryFormat().ByteBase())

	labelled := size.WithDecimalLabel()
	assert.Equal(t, filesize.Binary, labelled.ByteBase())
	assert.Equal(t, filesize.Decimal, labelled.LabelBase())
	assert.Equal(t, filesize.Binary, labelled.WithBinaryLabel().LabelBase())
	assert.Equal(t, filesize.Binary, size.LabelBase())

	// An unknown base falls back to the default when resolved
	assert.Equal(t, filesize.Binary, size.WithByteBase("octal").ByteBase())
}
