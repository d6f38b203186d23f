package pricing_test

import (
	"testing"

	"parcel/internal/core/domain/model/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCost(t *testing.T) {
	tests := []struct {
		name string
		in   pricing.Input
		want string
	}{
		{
			name: "standard basic customer booking",
			in:   pricing.Input{WeightGrams: 500, DeliveryType: pricing.DeliveryStandard, PackingPreference: pricing.PackingBasic},
			want: "105.00",
		},
		{
			name: "standard basic officer booking adds admin fee",
			in: pricing.Input{
				WeightGrams: 500, DeliveryType: pricing.DeliveryStandard, PackingPreference: pricing.PackingBasic,
				BookedByOfficer: true,
			},
			want: "157.50",
		},
		{
			name: "express premium officer booking",
			in: pricing.Input{
				WeightGrams: 1000, DeliveryType: pricing.DeliveryExpress, PackingPreference: pricing.PackingPremium,
				BookedByOfficer: true,
			},
			want: "241.50",
		},
		{
			name: "same day basic",
			in:   pricing.Input{WeightGrams: 2500, DeliveryType: pricing.DeliverySameDay, PackingPreference: pricing.PackingBasic},
			want: "273.00",
		},
		{
			name: "minimum weight rounds down",
			in:   pricing.Input{WeightGrams: 1, DeliveryType: pricing.DeliveryStandard, PackingPreference: pricing.PackingBasic},
			want: "94.52",
		},
		{
			name: "exact half rounds up",
			in:   pricing.Input{WeightGrams: 5, DeliveryType: pricing.DeliveryStandard, PackingPreference: pricing.PackingBasic},
			want: "94.61",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pricing.Cost(tt.in)

			require.NoError(t, err)
			assert.Equal(t, tt.want, pricing.FormatAmount(got))
		})
	}
}

func TestCost_IsDeterministic(t *testing.T) {
	in := pricing.Input{WeightGrams: 1234, DeliveryType: pricing.DeliveryExpress, PackingPreference: pricing.PackingPremium}

	first, err := pricing.Cost(in)
	require.NoError(t, err)

	for range 100 {
		again, err := pricing.Cost(in)
		require.NoError(t, err)
		assert.True(t, first.Equal(again))
		assert.Equal(t, first.String(), again.String())
	}
}

func TestCost_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		in   pricing.Input
		msg  string
	}{
		{
			name: "zero weight",
			in:   pricing.Input{WeightGrams: 0, DeliveryType: pricing.DeliveryStandard, PackingPreference: pricing.PackingBasic},
			msg:  "below the minimum",
		},
		{
			name: "negative weight",
			in:   pricing.Input{WeightGrams: -10, DeliveryType: pricing.DeliveryStandard, PackingPreference: pricing.PackingBasic},
			msg:  "below the minimum",
		},
		{
			name: "unknown delivery type",
			in:   pricing.Input{WeightGrams: 10, DeliveryType: pricing.DeliveryUnknown, PackingPreference: pricing.PackingBasic},
			msg:  "delivery type",
		},
		{
			name: "unknown packing preference",
			in:   pricing.Input{WeightGrams: 10, DeliveryType: pricing.DeliveryStandard, PackingPreference: pricing.PackingPreference(42)},
			msg:  "packing preference",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := pricing.Cost(tt.in)

			require.ErrorIs(t, err, pricing.ErrInvalidPricingInput)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}

	t.Run("all problems are reported together", func(t *testing.T) {
		err := pricing.ValidateInput(pricing.Input{})

		require.ErrorIs(t, err, pricing.ErrInvalidPricingInput)
		assert.Contains(t, err.Error(), "weight")
		assert.Contains(t, err.Error(), "delivery type")
		assert.Contains(t, err.Error(), "packing preference")
	})
}

func TestItemize(t *testing.T) {
	q, err := pricing.Itemize(pricing.Input{
		WeightGrams:       333,
		DeliveryType:      pricing.DeliveryExpress,
		PackingPreference: pricing.PackingBasic,
		BookedByOfficer:   true,
	})
	require.NoError(t, err)

	assert.Equal(t, "50", q.Base.String())
	assert.Equal(t, "6.66", q.WeightCharge.String())
	assert.Equal(t, "80", q.DeliveryCharge.String())
	assert.Equal(t, "10", q.PackingCharge.String())
	assert.Equal(t, "50", q.AdminFee.String())
	assert.Equal(t, "196.66", q.Subtotal.String())
	assert.Equal(t, "0.05", q.SurchargeRate.String())
	assert.Equal(t, "9.833", q.Surcharge.String())
	// 196.66 * 1.05 = 206.493
	assert.Equal(t, "206.49", pricing.FormatAmount(q.Total))
	assert.True(t, q.Subtotal.Add(q.Surcharge).Round(2).Equal(q.Total))
}
