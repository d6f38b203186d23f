// Package pricing is the deterministic cost engine for parcel bookings.
//
// The total for a booking is
//
//	(base + weightCharge + deliveryCharge + packingCharge + adminFee) * 1.05
//
// computed in fixed-point decimal arithmetic and rounded half-up to two
// fractional digits only once, on the final total. The engine has no
// dependencies on storage, clocks or randomness: identical inputs always
// produce an identical amount.
package pricing
