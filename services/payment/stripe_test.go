package payment

import (
	"testing"

	"stayhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76/webhook"
)

func signed(t *testing.T, payload string) string {
	t.Helper()
	return webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload: []byte(payload),
		Secret:  testSecret,
	}).Header
}

func TestParseStripeEventCheckoutCompleted(t *testing.T) {
	payload := `{
		"id": "evt_checkout",
		"object": "event",
		"type": "checkout.session.completed",
		"data": {"object": {"id": "cs_test_1", "object": "checkout.session", "metadata": {"bookingId": "b-1"}}}
	}`

	evt, err := ParseStripeEvent([]byte(payload), signed(t, payload), testSecret)
	require.NoError(t, err)
	assert.Equal(t, models.CheckoutCompleted, evt.Kind)
	assert.Equal(t, "b-1", evt.BookingID)
	assert.Equal(t, "evt_checkout", evt.ID)
}

func TestParseStripeEventPaymentIntentSucceeded(t *testing.T) {
	payload := `{
		"id": "evt_pi",
		"object": "event",
		"type": "payment_intent.succeeded",
		"data": {"object": {"id": "pi_1", "object": "payment_intent"}}
	}`

	evt, err := ParseStripeEvent([]byte(payload), signed(t, payload), testSecret)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentSucceeded, evt.Kind)
	assert.Equal(t, "pi_1", evt.PaymentIntentID)
	assert.Empty(t, evt.BookingID)
}

func TestParseStripeEventOtherTypesIgnored(t *testing.T) {
	payload := `{"id": "evt_x", "object": "event", "type": "charge.refunded", "data": {"object": {}}}`

	evt, err := ParseStripeEvent([]byte(payload), signed(t, payload), testSecret)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentIgnored, evt.Kind)
	assert.Equal(t, "charge.refunded", evt.RawType)
}

func TestParseStripeEventWrongSecret(t *testing.T) {
	payload := `{"id": "evt_x", "object": "event", "type": "checkout.session.completed", "data": {"object": {}}}`

	_, err := ParseStripeEvent([]byte(payload), signed(t, payload), "whsec_other")
	assert.Error(t, err)
}

func TestParseStripeEventTamperedPayload(t *testing.T) {
	payload := `{"id": "evt_x", "object": "event", "type": "checkout.session.completed", "data": {"object": {"metadata": {"bookingId": "b-1"}}}}`
	header := signed(t, payload)

	tampered := `{"id": "evt_x", "object": "event", "type": "checkout.session.completed", "data": {"object": {"metadata": {"bookingId": "b-2"}}}}`
	_, err := ParseStripeEvent([]byte(tampered), header, testSecret)
	assert.Error(t, err)
}
