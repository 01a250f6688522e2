package handler

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DofusPlanner_Go/internal/domain"
)

// =============================================================================
// Validator Tests - Demonstrating 5-Case Testing Model
// =============================================================================

func TestValidator_LotSizeValidation(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name    string
		lotSize int
		wantErr bool
	}{
		// CASE 1: Best Case
		{"unit", 1, false},
		{"ten", 10, false},
		{"hundred", 100, false},

		// CASE 2: Boundary - zero falls back to the default
		{"zero omitted", 0, false},

		// CASE 4: Invalid Case
		{"five", 5, true},
		{"thousand", 1000, true},
		{"negative", -10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(AddToPlanRequest{ItemName: "Pain d'Incarnam", LotSize: tt.lotSize})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_ItemNameValidation(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name     string
		itemName string
		wantErr  bool
	}{
		// CASE 1: Best Case
		{"plain name", "Brioche", false},
		{"accents and apostrophe", "Pain d'Incarnam", false},

		// CASE 2: Boundary Case
		{"exactly max length", strings.Repeat("a", 200), false},
		{"over max length", strings.Repeat("a", 201), true},

		// CASE 4: Invalid Case
		{"empty", "", true},
		{"with newline", "Pain\nd'Incarnam", true},
		{"with null byte", "Pain\x00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(AddToPlanRequest{ItemName: tt.itemName})

			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidator_DailyQuantityBounds(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name     string
		quantity int
		wantErr  bool
	}{
		// CASE 1: Best Case
		{"typical", 250, false},

		// CASE 2: Boundary Case
		{"zero", 0, false},
		{"daily maximum", domain.MaxDailyQuantity, false},
		{"above daily maximum", domain.MaxDailyQuantity + 1, true},

		// CASE 4: Invalid Case
		{"negative", -1, true},
		{"overflow sized", math.MaxInt/2 + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(SetQuantityRequest{DailyQuantity: tt.quantity})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInitValidator_RegistersCustomTags(t *testing.T) {
	require.NotPanics(t, InitValidator)
	v := GetValidator()

	assert.NoError(t, v.validate.Var(domain.LotSizeTen, "lotsize"))
	assert.Error(t, v.validate.Var(7, "lotsize"))
}

func TestValidator_StockValidation(t *testing.T) {
	InitValidator()
	v := GetValidator()

	assert.NoError(t, v.ValidateStruct(NeedsRequest{Stock: map[int]int{289: 25}}))
	assert.NoError(t, v.ValidateStruct(NeedsRequest{}))
	assert.Error(t, v.ValidateStruct(NeedsRequest{Stock: map[int]int{289: -1}}))
}

func TestFormatValidationError(t *testing.T) {
	InitValidator()
	v := GetValidator()

	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, FormatValidationError(nil))
	})

	t.Run("multiple fields", func(t *testing.T) {
		err := v.ValidateStruct(AddToPlanRequest{ItemName: "", LotSize: 7})
		require.Error(t, err)

		fields := FormatValidationError(err)
		assert.Equal(t, "This field is required", fields["itemname"])
		assert.Equal(t, ErrMsgInvalidLotSizeError, fields["lotsize"])
	})

	t.Run("negative quantity", func(t *testing.T) {
		err := v.ValidateStruct(SetQuantityRequest{DailyQuantity: -1})
		require.Error(t, err)

		assert.Equal(t, "Must be at least 0", FormatValidationError(err)["dailyquantity"])
	})

	t.Run("quantity above daily maximum", func(t *testing.T) {
		err := v.ValidateStruct(SetQuantityRequest{DailyQuantity: 1_000_001})
		require.Error(t, err)

		assert.Equal(t, "Must be at most 1000000", FormatValidationError(err)["dailyquantity"])
	})

	t.Run("not a validation error", func(t *testing.T) {
		fields := FormatValidationError(assert.AnError)
		assert.Equal(t, "Invalid request format", fields["error"])
	})
}
