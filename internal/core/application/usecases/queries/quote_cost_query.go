package queries

import (
	"errors"

	"parcel/internal/core/domain/model/pricing"
	"parcel/internal/pkg/guard"
)

var ErrQuoteCostQueryIsNotConstructed = errors.New(
	"QuoteCostQuery must be created via NewQuoteCostQuery constructor",
)

// QuoteCostQuery prices a parcel without booking it.
type QuoteCostQuery struct {
	input pricing.Input

	guard guard.ConstructorGuard
}

// NewQuoteCostQuery fails with pricing.ErrInvalidPricingInput for a weight
// below one gram or an unrecognized option.
func NewQuoteCostQuery(
	weightGrams int,
	delivery pricing.DeliveryType,
	packing pricing.PackingPreference,
	bookedByOfficer bool,
) (QuoteCostQuery, error) {
	in := pricing.Input{
		WeightGrams:       weightGrams,
		DeliveryType:      delivery,
		PackingPreference: packing,
		BookedByOfficer:   bookedByOfficer,
	}
	if err := pricing.ValidateInput(in); err != nil {
		return QuoteCostQuery{}, err
	}
	return QuoteCostQuery{input: in, guard: guard.NewConstructorGuard()}, nil
}

func (q QuoteCostQuery) Validate() error {
	return q.guard.Validate(ErrQuoteCostQueryIsNotConstructed)
}

func (q QuoteCostQuery) Input() pricing.Input {
	return q.input
}
