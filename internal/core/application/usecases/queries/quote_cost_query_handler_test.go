package queries_test

import (
	"testing"

	"parcel/internal/core/application/usecases/queries"
	"parcel/internal/core/domain/model/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteCostQueryHandler_Handle(t *testing.T) {
	query, err := queries.NewQuoteCostQuery(500, pricing.DeliveryStandard, pricing.PackingBasic, true)
	require.NoError(t, err)

	quote, err := queries.NewQuoteCostQueryHandler().Handle(t.Context(), query)

	require.NoError(t, err)
	assert.Equal(t, "157.50", pricing.FormatAmount(quote.Total))
	assert.Equal(t, "150", quote.Subtotal.String())
	assert.Equal(t, "50", quote.AdminFee.String())
}

func TestNewQuoteCostQuery_InvalidInput(t *testing.T) {
	_, err := queries.NewQuoteCostQuery(0, pricing.DeliveryUnknown, pricing.PackingBasic, false)

	require.ErrorIs(t, err, pricing.ErrInvalidPricingInput)
}

func TestQuoteCostQueryHandler_Handle_NotConstructed(t *testing.T) {
	_, err := queries.NewQuoteCostQueryHandler().Handle(t.Context(), queries.QuoteCostQuery{})

	require.ErrorIs(t, err, queries.ErrQuoteCostQueryIsNotConstructed)
}
