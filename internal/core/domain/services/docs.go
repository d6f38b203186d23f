// Package services provides domain services that span more than one aggregate.
//
// The package includes:
//   - ScopeResolver: the single place that decides, for an authenticated
//     principal, who owns a new booking, which bookings it may read or cancel
//     and how its listings are scoped
//
// Officer-only capabilities (status, schedule, parcel and payment updates) are
// enforced by the inbound adapters, which only expose them on officer routes.
package services
