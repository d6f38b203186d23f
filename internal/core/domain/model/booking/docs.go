// Package booking provides the Booking aggregate root and its lifecycle.
//
// The package includes:
//   - Booking: the aggregate that owns receiver, parcel and schedule details,
//     keeps its service cost consistent with the pricing engine and records
//     domain events for every mutation
//   - Status: the lifecycle state machine
//     NEW → SCHEDULED → PICKED_UP → ASSIGNED → BOOKED → IN_TRANSIT → DELIVERED,
//     with CANCELLED reachable from any non-terminal state
//   - Receiver, Parcel and Schedule value objects validated at intake
//   - ID: the human readable booking identifier, "BK" followed by a ULID
//
// Key business rules:
//   - serviceCost always equals pricing.Cost of the current parcel and the
//     booked-by-officer flag; it is recomputed whenever the parcel changes
//   - DELIVERED and CANCELLED are terminal: status, schedule and parcel can no
//     longer change
//   - cancellation is refused while IN_TRANSIT or once DELIVERED
//   - every mutation moves the last-modified timestamp
package booking
