package commands

import (
	"errors"
	"strings"

	"parcel/internal/core/domain/model/booking"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/guard"
)

var ErrCreateBookingCommandIsNotConstructed = errors.New(
	"CreateBookingCommand must be created via NewCreateBookingCommand constructor",
)

// CreateBookingCommand represents a request to book a parcel delivery.
//
// Example:
//
//	receiver, _ := booking.NewReceiver("Asha Rao", "12 Park Street", "560001", "9876543210")
//	parcel, _ := booking.NewParcel(500, "books", pricing.DeliveryStandard, pricing.PackingBasic)
//	cmd, err := NewCreateBookingCommand(principal, false, "", receiver, parcel, booking.Schedule{})
//	if err != nil {
//	    return err
//	}
//
//	id, err := handler.Handle(ctx, cmd)
type CreateBookingCommand struct { //nolint:recvcheck //using for validation
	principal  kernel.Principal
	asOfficer  bool
	customerID string
	receiver   booking.Receiver
	parcel     booking.Parcel
	schedule   booking.Schedule

	guard guard.ConstructorGuard
}

// NewCreateBookingCommand validates the acting principal and the intake value
// objects. customerID is only honoured when asOfficer is true.
func NewCreateBookingCommand(
	principal kernel.Principal,
	asOfficer bool,
	customerID string,
	receiver booking.Receiver,
	parcel booking.Parcel,
	schedule booking.Schedule,
) (CreateBookingCommand, error) {
	cmd := CreateBookingCommand{
		principal:  principal,
		asOfficer:  asOfficer,
		customerID: strings.TrimSpace(customerID),
		schedule:   schedule,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		principal.Validate(),
		cmd.setReceiver(receiver),
		cmd.setParcel(parcel),
	); err != nil {
		return CreateBookingCommand{}, err
	}

	return cmd, nil
}

func (c CreateBookingCommand) Validate() error {
	return c.guard.Validate(ErrCreateBookingCommandIsNotConstructed)
}

func (c CreateBookingCommand) Principal() kernel.Principal { return c.principal }
func (c CreateBookingCommand) AsOfficer() bool             { return c.asOfficer }
func (c CreateBookingCommand) Receiver() booking.Receiver  { return c.receiver }
func (c CreateBookingCommand) Parcel() booking.Parcel      { return c.parcel }
func (c CreateBookingCommand) Schedule() booking.Schedule  { return c.schedule }

// CustomerID returns the customer named by an officer, empty otherwise.
func (c CreateBookingCommand) CustomerID() string {
	if !c.asOfficer {
		return ""
	}
	return c.customerID
}

func (c *CreateBookingCommand) setReceiver(receiver booking.Receiver) error {
	if err := receiver.Validate(); err != nil {
		return err
	}
	c.receiver = receiver
	return nil
}

func (c *CreateBookingCommand) setParcel(parcel booking.Parcel) error {
	if err := parcel.Validate(); err != nil {
		return err
	}
	c.parcel = parcel
	return nil
}
