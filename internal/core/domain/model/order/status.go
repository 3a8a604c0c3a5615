package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// The storefront assigns the initial status at order creation (conventionally
// PaymentReceived). Any valid status is reachable from any non-terminal status;
// the lifecycle imposes no forward-only ordering between PaymentReceived,
// Processing, Shipped, and Delivered. Cancelled is terminal: no transition is
// defined out of it.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// PaymentReceived is the conventional initial status after checkout.
	PaymentReceived

	// Processing indicates the seller is preparing the order.
	Processing

	// Shipped indicates the order has been handed to a carrier.
	Shipped

	// Delivered indicates the order has reached the buyer.
	Delivered

	// Cancelled is the terminal state. Entering it goes through Order.Cancel
	// so the cancellation fields are written together with the status.
	Cancelled
)

// statusCodes maps statuses to their wire codes as stored in order documents.
func statusCodes() map[Status]string {
	return map[Status]string{
		PaymentReceived: "PAYMENT_RECEIVED",
		Processing:      "PROCESSING",
		Shipped:         "SHIPPED",
		Delivered:       "DELIVERED",
		Cancelled:       "CANCELLED",
	}
}

// statusLabels maps statuses to their human-readable display labels, used as
// the default notes of a status history entry.
func statusLabels() map[Status]string {
	return map[Status]string{
		PaymentReceived: "Payment Received",
		Processing:      "Processing",
		Shipped:         "Shipped",
		Delivered:       "Delivered",
		Cancelled:       "Cancelled",
	}
}

// StatusFromCode parses a wire code (e.g. "SHIPPED") into a Status.
// Returns an error for codes outside the closed enumeration.
func StatusFromCode(code string) (Status, error) {
	for status, c := range statusCodes() {
		if c == code {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status code", code),
	)
}

// Validate checks that the Status is a member of the closed enumeration.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := statusCodes()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// Code returns the wire representation of the status, e.g. "PAYMENT_RECEIVED".
// Returns "UNKNOWN" for invalid values.
func (s Status) Code() string {
	if code, ok := statusCodes()[s]; ok {
		return code
	}
	return "UNKNOWN"
}

// DisplayLabel returns the human-readable label of the status, e.g.
// "Payment Received". Returns "Unknown" for invalid values.
func (s Status) DisplayLabel() string {
	if label, ok := statusLabels()[s]; ok {
		return label
	}
	return "Unknown"
}

// String implements fmt.Stringer using the wire code.
func (s Status) String() string {
	return s.Code()
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Cancelled
}

// TransitionTo validates a transition from s to target and returns the new
// status.
//
// Rules:
//   - both statuses must be members of the enumeration
//   - no transition is defined out of Cancelled
//   - any other transition is allowed, including repeating the current status
//
// Repeated identical transitions are not collapsed: each produces its own
// status history entry.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if s.IsTerminal() {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is terminal, cannot transition to %s", s, target),
		)
	}
	return target, nil
}
