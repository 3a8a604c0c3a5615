package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var (
	ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
		"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
	)

	// ErrCancellationViaStatusUpdate is returned when a status update targets
	// CANCELLED. Cancellation carries a reason and extra side effects, so it
	// has its own command.
	ErrCancellationViaStatusUpdate = errors.New(
		"cancellation must be requested via CancelOrderCommand",
	)
)

// UpdateOrderStatusCommand represents a request to move an order to a new
// lifecycle status. Notes are optional free text for the history entry; when
// empty, the entry defaults to the status's display label.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID
	status  order.Status
	notes   string

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to update an order's status.
// The target status must be a valid non-cancellation status.
func NewUpdateOrderStatusCommand(orderID kernel.ID, status order.Status, notes string) (UpdateOrderStatusCommand, error) {
	command := UpdateOrderStatusCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setStatus(status),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderStatusCommand) OrderID() kernel.ID {
	return c.orderID
}

// Status returns the target status.
func (c UpdateOrderStatusCommand) Status() order.Status {
	return c.status
}

// Notes returns the optional history entry notes.
func (c UpdateOrderStatusCommand) Notes() string {
	return c.notes
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if status == order.Cancelled {
		return ErrCancellationViaStatusUpdate
	}

	c.status = status
	return nil
}
