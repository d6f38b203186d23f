package queries

import (
	"context"

	"parcel/internal/core/domain/model/pricing"
)

// QuoteCostQueryHandler returns the itemised cost of a parcel. It touches no storage.
type QuoteCostQueryHandler struct{}

func NewQuoteCostQueryHandler() QuoteCostQueryHandler {
	return QuoteCostQueryHandler{}
}

func (h QuoteCostQueryHandler) Handle(_ context.Context, query QuoteCostQuery) (pricing.Quote, error) {
	if err := query.Validate(); err != nil {
		return pricing.Quote{}, err
	}
	return pricing.Itemize(query.Input())
}
