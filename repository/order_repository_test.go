package repository

import (
	"testing"

	"portfolio-backend/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestMarkPaidFilter(t *testing.T) {
	filter := markPaidFilter("cs_123", models.PaymentMethodStripe)

	assert.Equal(t, bson.M{
		"paymentSessionId": "cs_123",
		"paymentMethod":    models.PaymentMethodStripe,
		"status":           models.OrderStatusPending,
	}, filter)

	// Only pending orders qualify for the automated transition: a replayed
	// event against a paid order matches nothing, and cancelled or refunded
	// orders can never be flipped back to paid by a late delivery.
	for _, status := range []string{
		models.OrderStatusPaid,
		models.OrderStatusCancelled,
		models.OrderStatusRefunded,
		models.OrderStatusFailed,
	} {
		assert.NotEqual(t, status, filter["status"])
	}
}
