package filesize

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

// Recognised option keys.
const (
	OptionByteBase                        = "byte_base"
	OptionPrecision                       = "precision"
	OptionLabelStyle                      = "label_style"
	OptionDecimalSeparator                = "decimal_separator"
	OptionThousandsSeparator              = "thousands_separator"
	OptionSpaceBetweenValueAndUnit        = "space_between_value_and_unit"
	OptionValidationThrowOnNegativeResult = "validation_throw_on_negative_result"
	OptionValidationAllowNegativeInput    = "validation_allow_negative_input"
)

// MaxPrecision is the largest accepted rounding precision. float64 carries
// no meaningful fractional digits beyond it.
const MaxPrecision = 15

var optionKeys = []string{
	OptionByteBase,
	OptionPrecision,
	OptionLabelStyle,
	OptionDecimalSeparator,
	OptionThousandsSeparator,
	OptionSpaceBetweenValueAndUnit,
	OptionValidationThrowOnNegativeResult,
	OptionValidationAllowNegativeInput,
}

// nullable options accept nil, meaning "unset".
var nullableOptions = []string{OptionByteBase, OptionLabelStyle}

// OptionMap is a loosely typed set of option overrides keyed by the
// recognised option names.
type OptionMap map[string]any

// Options controls conversion base, rounding, display and validation.
// NOTE: Merge decodes overrides onto a copy of the receiver, so keys absent
// from the overrides keep their current value rather than the default.
type Options struct {
	ByteBase                        ByteBase `mapstructure:"byte_base"`
	Precision                       int      `mapstructure:"precision"`
	LabelStyle                      ByteBase `mapstructure:"label_style"` // empty = follow ByteBase
	DecimalSeparator                string   `mapstructure:"decimal_separator"`
	ThousandsSeparator              string   `mapstructure:"thousands_separator"`
	SpaceBetweenValueAndUnit        bool     `mapstructure:"space_between_value_and_unit"`
	ValidationThrowOnNegativeResult bool     `mapstructure:"validation_throw_on_negative_result"`
	ValidationAllowNegativeInput    bool     `mapstructure:"validation_allow_negative_input"`
}

// DefaultOptions returns the default option set.
func DefaultOptions() Options {
	return Options{
		ByteBase:                 DefaultByteBase(),
		Precision:                2,
		DecimalSeparator:         ".",
		ThousandsSeparator:       ",",
		SpaceBetweenValueAndUnit: true,
	}
}

// OptionKeys returns the recognised option names in declaration order.
func OptionKeys() []string {
	return append([]string(nil), optionKeys...)
}

// OptionsFromMap builds Options from defaults overlaid with m.
func OptionsFromMap(m OptionMap) (Options, error) {
	return DefaultOptions().Merge(m)
}

// Merge returns a copy of o with every key present in overrides applied.
// Unknown keys fail with an UnknownOptionError before anything is applied.
func (o Options) Merge(overrides ...OptionMap) (Options, error) {
	merged := o
	for _, m := range overrides {
		keys := lo.Keys(m)
		sort.Strings(keys)

		for _, key := range keys {
			if !lo.Contains(optionKeys, key) {
				return o, &UnknownOptionError{Key: key}
			}
		}

		for _, key := range keys {
			if err := merged.apply(key, m[key]); err != nil {
				return o, err
			}
		}
	}

	if err := merged.Validate(); err != nil {
		return o, err
	}
	return merged, nil
}

func (o *Options) apply(key string, value any) error {
	if value == nil {
		if !lo.Contains(nullableOptions, key) {
			return &OptionValueError{Key: key, Cause: errors.New("value cannot be nil")}
		}
		if key == OptionByteBase {
			o.ByteBase = ""
		} else {
			o.LabelStyle = ""
		}
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       byteBaseHook,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
		Result:           o,
	})
	if err != nil {
		return fmt.Errorf("failed to create option decoder: %w", err)
	}
	if err := decoder.Decode(map[string]any{key: value}); err != nil {
		return &OptionValueError{Key: key, Cause: err}
	}
	return nil
}

var byteBaseType = reflect.TypeOf(ByteBase(""))

// byteBaseHook normalises string and ByteBase inputs. A name that is not a
// known base is kept as given and falls back to the default on resolution.
func byteBaseHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to != byteBaseType {
		return data, nil
	}
	if from.Kind() != reflect.String {
		return nil, invalidValue("Unknown byte base: %v", data)
	}
	return ByteBase(strings.ToLower(strings.TrimSpace(reflect.ValueOf(data).String()))), nil
}

// Validate checks option values that cannot be resolved to a fallback.
func (o Options) Validate() error {
	if o.Precision < 0 || o.Precision > MaxPrecision {
		return &OptionValueError{
			Key:   OptionPrecision,
			Cause: fmt.Errorf("must be between 0 and %d, got %d", MaxPrecision, o.Precision),
		}
	}
	return nil
}

// ToMap returns every option keyed by its recognised name. An unset label
// style is reported as nil.
func (o Options) ToMap() OptionMap {
	var labelStyle any
	if o.LabelStyle != "" {
		labelStyle = o.LabelStyle
	}
	return OptionMap{
		OptionByteBase:                        o.ResolvedByteBase(),
		OptionPrecision:                       o.Precision,
		OptionLabelStyle:                      labelStyle,
		OptionDecimalSeparator:                o.DecimalSeparator,
		OptionThousandsSeparator:              o.ThousandsSeparator,
		OptionSpaceBetweenValueAndUnit:        o.SpaceBetweenValueAndUnit,
		OptionValidationThrowOnNegativeResult: o.ValidationThrowOnNegativeResult,
		OptionValidationAllowNegativeInput:    o.ValidationAllowNegativeInput,
	}
}

// ResolvedByteBase returns the configured base, or Binary when unset or
// unparseable.
func (o Options) ResolvedByteBase() ByteBase {
	return o.ByteBase.orDefault(DefaultByteBase())
}

// ResolvedLabelBase returns the label style when set and parseable,
// otherwise the resolved byte base.
func (o Options) ResolvedLabelBase() ByteBase {
	return o.LabelStyle.orDefault(o.ResolvedByteBase())
}
