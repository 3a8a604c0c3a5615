package kernel

import "time"

// Timestamp is a point in time represented as epoch milliseconds on the wire,
// matching the document store's timestamp encoding. The zero value means
// "not set" and is used for optional fields such as an order's cancelledAt.
type Timestamp struct {
	millis int64
}

// TimestampFromTime converts a time.Time into a Timestamp, truncating to
// millisecond precision.
func TimestampFromTime(t time.Time) Timestamp {
	return Timestamp{millis: t.UnixMilli()}
}

// TimestampFromMillis creates a Timestamp from epoch milliseconds.
func TimestampFromMillis(millis int64) Timestamp {
	return Timestamp{millis: millis}
}

// Millis returns the timestamp as epoch milliseconds.
func (t Timestamp) Millis() int64 {
	return t.millis
}

// Time returns the timestamp as a time.Time in UTC.
func (t Timestamp) Time() time.Time {
	return time.UnixMilli(t.millis).UTC()
}

// IsZero reports whether the timestamp is unset.
func (t Timestamp) IsZero() bool {
	return t.millis == 0
}

// IsEqual compares two timestamps at millisecond precision.
func (t Timestamp) IsEqual(other Timestamp) bool {
	return t.millis == other.millis
}

// Before reports whether t is strictly earlier than other.
func (t Timestamp) Before(other Timestamp) bool {
	return t.millis < other.millis
}
