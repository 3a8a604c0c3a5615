package kernel_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	t.Run("valid value", func(t *testing.T) {
		id, err := kernel.NewID("abc123")

		require.NoError(t, err)
		assert.Equal(t, "abc123", id.String())
		require.NoError(t, id.Validate())
	})

	t.Run("empty value is rejected", func(t *testing.T) {
		_, err := kernel.NewID("")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestID_Validate_ZeroValue(t *testing.T) {
	var id kernel.ID

	err := id.Validate()

	require.Error(t, err)
	assert.Equal(t, kernel.ErrIDIsNotConstructed, err)
}

func TestID_IsEqual(t *testing.T) {
	a, _ := kernel.NewID("abc123")
	b, _ := kernel.NewID("abc123")
	c, _ := kernel.NewID("xyz789")

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestID_Suffix(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		n        int
		expected string
	}{
		{name: "longer than n", value: "order-8f3b2c-abc123", n: 6, expected: "abc123"},
		{name: "exactly n", value: "abc123", n: 6, expected: "abc123"},
		{name: "shorter than n", value: "ab", n: 6, expected: "ab"},
		{name: "non-positive n", value: "abc123", n: 0, expected: "abc123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := kernel.NewID(tt.value)
			require.NoError(t, err)

			assert.Equal(t, tt.expected, id.Suffix(tt.n))
		})
	}
}
