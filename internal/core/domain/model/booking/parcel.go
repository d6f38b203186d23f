package booking

import (
	"errors"
	"strings"

	"parcel/internal/core/domain/model/pricing"
	"parcel/internal/pkg/guard"
)

var ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel")

// Parcel carries the physical description of a shipment and the options that
// drive its price.
type Parcel struct {
	weightGrams int
	contents    string
	delivery    pricing.DeliveryType
	packing     pricing.PackingPreference
	guard       guard.ConstructorGuard
}

// NewParcel validates the pricing inputs through the pricing engine, so a
// constructed Parcel can always be priced.
func NewParcel(
	weightGrams int,
	contents string,
	delivery pricing.DeliveryType,
	packing pricing.PackingPreference,
) (Parcel, error) {
	p := Parcel{
		weightGrams: weightGrams,
		contents:    strings.TrimSpace(contents),
		delivery:    delivery,
		packing:     packing,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		pricing.ValidateInput(p.pricingInput(false)),
		requireText("parcelContentsDescription", p.contents),
	); err != nil {
		return Parcel{}, err
	}
	return p, nil
}

func (p Parcel) WeightGrams() int                            { return p.weightGrams }
func (p Parcel) Contents() string                            { return p.contents }
func (p Parcel) DeliveryType() pricing.DeliveryType          { return p.delivery }
func (p Parcel) PackingPreference() pricing.PackingPreference { return p.packing }

func (p Parcel) Validate() error {
	return p.guard.Validate(ErrParcelIsNotConstructed)
}

// IsEqual compares the priced attributes and the contents.
func (p Parcel) IsEqual(other Parcel) bool {
	return p.weightGrams == other.weightGrams &&
		p.contents == other.contents &&
		p.delivery == other.delivery &&
		p.packing == other.packing
}

func (p Parcel) pricingInput(bookedByOfficer bool) pricing.Input {
	return pricing.Input{
		WeightGrams:       p.weightGrams,
		DeliveryType:      p.delivery,
		PackingPreference: p.packing,
		BookedByOfficer:   bookedByOfficer,
	}
}
