package pricing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidPricingInput is returned for a weight below MinWeightGrams or an
// unrecognized delivery type or packing preference.
var ErrInvalidPricingInput = errors.New("invalid pricing input")

const (
	MinWeightGrams = 1

	// AmountScale is the number of fractional digits of every total.
	AmountScale = 2
)

var (
	baseCharge      = decimal.NewFromInt(50)
	perGramCharge   = decimal.RequireFromString("0.02")
	officerAdminFee = decimal.NewFromInt(50)
	surchargeRate   = decimal.RequireFromString("0.05")
	surchargeFactor = decimal.NewFromInt(1).Add(surchargeRate)
)

// Input holds the four parameters the service cost depends on.
type Input struct {
	WeightGrams       int
	DeliveryType      DeliveryType
	PackingPreference PackingPreference
	BookedByOfficer   bool
}

// Quote is the itemised computation behind a total. Every term except Total
// is exact; Total is Subtotal*1.05 rounded half-up to AmountScale digits.
type Quote struct {
	Input          Input
	Base           decimal.Decimal
	WeightCharge   decimal.Decimal
	DeliveryCharge decimal.Decimal
	PackingCharge  decimal.Decimal
	AdminFee       decimal.Decimal
	Subtotal       decimal.Decimal
	SurchargeRate  decimal.Decimal
	Surcharge      decimal.Decimal
	Total          decimal.Decimal
}

// ValidateInput reports every problem with in at once, wrapped in ErrInvalidPricingInput.
func ValidateInput(in Input) error {
	var problems []error
	if in.WeightGrams < MinWeightGrams {
		problems = append(problems, fmt.Errorf("weight %d g is below the minimum of %d g", in.WeightGrams, MinWeightGrams))
	}
	if _, ok := deliveryCharges[in.DeliveryType]; !ok {
		problems = append(problems, fmt.Errorf("unrecognized delivery type %d", in.DeliveryType))
	}
	if _, ok := packingCharges[in.PackingPreference]; !ok {
		problems = append(problems, fmt.Errorf("unrecognized packing preference %d", in.PackingPreference))
	}
	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidPricingInput, errors.Join(problems...))
}

// Itemize computes the full breakdown for in.
func Itemize(in Input) (Quote, error) {
	if err := ValidateInput(in); err != nil {
		return Quote{}, err
	}

	q := Quote{
		Input:          in,
		Base:           baseCharge,
		WeightCharge:   perGramCharge.Mul(decimal.NewFromInt(int64(in.WeightGrams))),
		DeliveryCharge: in.DeliveryType.Charge(),
		PackingCharge:  in.PackingPreference.Charge(),
		AdminFee:       decimal.Zero,
		SurchargeRate:  surchargeRate,
	}
	if in.BookedByOfficer {
		q.AdminFee = officerAdminFee
	}

	q.Subtotal = q.Base.Add(q.WeightCharge).Add(q.DeliveryCharge).Add(q.PackingCharge).Add(q.AdminFee)
	q.Surcharge = q.Subtotal.Mul(surchargeRate)
	// Round is half away from zero, which is half-up for the positive totals produced here.
	q.Total = q.Subtotal.Mul(surchargeFactor).Round(AmountScale)
	return q, nil
}

// Cost returns the rounded total for in.
func Cost(in Input) (decimal.Decimal, error) {
	q, err := Itemize(in)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return q.Total, nil
}

// FormatAmount renders an amount with exactly AmountScale fractional digits, e.g. "105.00".
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(AmountScale)
}
