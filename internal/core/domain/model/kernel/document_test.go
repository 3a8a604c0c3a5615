package kernel_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
)

func TestDocument_String(t *testing.T) {
	doc := kernel.Document{"buyerId": "u1", "quantity": 5}

	assert.Equal(t, "u1", doc.String("buyerId"))
	assert.Equal(t, "", doc.String("sellerId"))
	assert.Equal(t, "", doc.String("quantity"))
}

func TestDocument_NumericAccessors(t *testing.T) {
	// JSON decoding produces float64; in-process writers store native ints.
	doc := kernel.Document{
		"totalAmount": 250.0,
		"quantity":    float64(5),
		"updatedAt":   int64(1715941800123),
	}

	assert.InEpsilon(t, 250.0, doc.Float("totalAmount"), 1e-9)
	assert.Equal(t, 5, doc.Int("quantity"))
	assert.Equal(t, int64(1715941800123), doc.Int64("updatedAt"))
	assert.Zero(t, doc.Int("missing"))
}

func TestDocument_Bool(t *testing.T) {
	doc := kernel.Document{"read": false}

	assert.False(t, doc.Bool("read"))
	assert.False(t, doc.Bool("missing"))

	doc["read"] = true
	assert.True(t, doc.Bool("read"))
}

func TestDocument_Documents(t *testing.T) {
	t.Run("decoded JSON array", func(t *testing.T) {
		doc := kernel.Document{
			"items": []any{
				map[string]any{"name": "Rice", "quantity": float64(5)},
				"not a document",
			},
		}

		items := doc.Documents("items")

		assert.Len(t, items, 1)
		assert.Equal(t, "Rice", items[0].String("name"))
	})

	t.Run("typed slice from in-process writer", func(t *testing.T) {
		doc := kernel.Document{
			"items": []kernel.Document{{"name": "Rice"}},
		}

		items := doc.Documents("items")

		assert.Len(t, items, 1)
		assert.Equal(t, "Rice", items[0].String("name"))
	})

	t.Run("missing key", func(t *testing.T) {
		assert.Nil(t, kernel.Document{}.Documents("items"))
	})
}

func TestDocument_Has(t *testing.T) {
	doc := kernel.Document{"cancelReason": ""}

	assert.True(t, doc.Has("cancelReason"))
	assert.False(t, doc.Has("cancelledAt"))
}
