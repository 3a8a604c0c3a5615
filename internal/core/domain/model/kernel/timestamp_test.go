package kernel_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
)

func TestTimestampFromTime_TruncatesToMillis(t *testing.T) {
	moment := time.Date(2024, 5, 17, 10, 30, 0, 123_456_789, time.UTC)

	ts := kernel.TimestampFromTime(moment)

	assert.Equal(t, moment.UnixMilli(), ts.Millis())
	assert.Equal(t, time.Date(2024, 5, 17, 10, 30, 0, 123_000_000, time.UTC), ts.Time())
}

func TestTimestampFromMillis_RoundTrips(t *testing.T) {
	ts := kernel.TimestampFromMillis(1715941800123)

	assert.Equal(t, int64(1715941800123), ts.Millis())
	assert.Equal(t, ts, kernel.TimestampFromTime(ts.Time()))
}

func TestTimestamp_IsZero(t *testing.T) {
	var unset kernel.Timestamp

	assert.True(t, unset.IsZero())
	assert.False(t, kernel.TimestampFromMillis(1).IsZero())
}

func TestTimestamp_Ordering(t *testing.T) {
	earlier := kernel.TimestampFromMillis(1000)
	later := kernel.TimestampFromMillis(2000)

	assert.True(t, earlier.Before(later))
	assert.False(t, later.Before(earlier))
	assert.False(t, earlier.Before(earlier))
	assert.True(t, earlier.IsEqual(kernel.TimestampFromMillis(1000)))
}
