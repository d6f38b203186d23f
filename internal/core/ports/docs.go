// Package ports defines the contracts between the booking core and its
// infrastructure: repositories for bookings, customer accounts and outbox
// messages, the unit of work that binds them to one transaction, and the
// event publisher the outbox relay hands messages to.
package ports
