package pricing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// DeliveryType is the closed set of delivery speeds. Each value carries a
// fixed charge looked up in deliveryCharges.
type DeliveryType int

const (
	DeliveryUnknown DeliveryType = iota
	DeliveryStandard
	DeliveryExpress
	DeliverySameDay
)

var deliveryNames = map[DeliveryType]string{
	DeliveryStandard: "STANDARD",
	DeliveryExpress:  "EXPRESS",
	DeliverySameDay:  "SAME_DAY",
}

var deliveryCharges = map[DeliveryType]decimal.Decimal{
	DeliveryStandard: decimal.NewFromInt(30),
	DeliveryExpress:  decimal.NewFromInt(80),
	DeliverySameDay:  decimal.NewFromInt(150),
}

func (d DeliveryType) String() string {
	if name, ok := deliveryNames[d]; ok {
		return name
	}
	return "UNKNOWN"
}

func (d DeliveryType) Validate() error {
	if _, ok := deliveryCharges[d]; !ok {
		return fmt.Errorf("%w: unrecognized delivery type %d", ErrInvalidPricingInput, d)
	}
	return nil
}

// Charge returns the fixed charge of the delivery type, zero when unrecognized.
func (d DeliveryType) Charge() decimal.Decimal {
	return deliveryCharges[d]
}

func ParseDeliveryType(s string) (DeliveryType, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for d, n := range deliveryNames {
		if n == name {
			return d, nil
		}
	}
	return DeliveryUnknown, fmt.Errorf("%w: unrecognized delivery type %q", ErrInvalidPricingInput, s)
}

// DeliveryTypes lists every recognized delivery type in ascending cost order.
func DeliveryTypes() []DeliveryType {
	return []DeliveryType{DeliveryStandard, DeliveryExpress, DeliverySameDay}
}

// PackingPreference is the closed set of packing options, each with a fixed charge.
type PackingPreference int

const (
	PackingUnknown PackingPreference = iota
	PackingBasic
	PackingPremium
)

var packingNames = map[PackingPreference]string{
	PackingBasic:   "BASIC",
	PackingPremium: "PREMIUM",
}

var packingCharges = map[PackingPreference]decimal.Decimal{
	PackingBasic:   decimal.NewFromInt(10),
	PackingPremium: decimal.NewFromInt(30),
}

func (p PackingPreference) String() string {
	if name, ok := packingNames[p]; ok {
		return name
	}
	return "UNKNOWN"
}

func (p PackingPreference) Validate() error {
	if _, ok := packingCharges[p]; !ok {
		return fmt.Errorf("%w: unrecognized packing preference %d", ErrInvalidPricingInput, p)
	}
	return nil
}

func (p PackingPreference) Charge() decimal.Decimal {
	return packingCharges[p]
}

func ParsePackingPreference(s string) (PackingPreference, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for p, n := range packingNames {
		if n == name {
			return p, nil
		}
	}
	return PackingUnknown, fmt.Errorf("%w: unrecognized packing preference %q", ErrInvalidPricingInput, s)
}

func PackingPreferences() []PackingPreference {
	return []PackingPreference{PackingBasic, PackingPremium}
}
