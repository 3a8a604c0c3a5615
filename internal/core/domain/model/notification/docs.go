// Package notification contains the notification entity persisted for order
// events.
//
// A Notification is a message addressed to one user. It is created once by the
// dispatcher and never updated by this service; the read flag belongs to the
// notification-inbox feature, which consumes the documents written here.
// Cancellation notifications additionally carry a snapshot of the order (first
// line item, total, image) so the inbox can render them without another read.
package notification
