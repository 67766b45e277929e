package payment

import (
	"context"
	"encoding/json"
	"fmt"

	"stayhub/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

const metadataBookingID = "bookingId"

// StripeGateway implements CheckoutGateway with Stripe Checkout.
type StripeGateway struct {
	api *client.API
}

func NewStripeGateway(api *client.API) *StripeGateway {
	return &StripeGateway{api: api}
}

// NewStripeClient builds a client for the given secret key.
func NewStripeClient(secretKey string) *client.API {
	sc := &client.API{}
	sc.Init(secretKey, nil)
	return sc
}

func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, req models.CheckoutRequest) (*models.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(req.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.ProductName),
					},
					UnitAmount: stripe.Int64(req.AmountMinor),
				},
				Quantity: stripe.Int64(1),
			},
		},
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(req.SuccessURL),
		CancelURL:  stripe.String(req.CancelURL),
	}
	params.AddMetadata(metadataBookingID, req.BookingID)
	params.Context = ctx

	s, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe checkout session: %w", err)
	}
	return &models.CheckoutSession{ID: s.ID, URL: s.URL}, nil
}

func (g *StripeGateway) FindBookingIDByPaymentIntent(ctx context.Context, paymentIntentID string) (string, error) {
	params := &stripe.CheckoutSessionListParams{
		PaymentIntent: stripe.String(paymentIntentID),
	}
	params.Context = ctx

	it := g.api.CheckoutSessions.List(params)
	for it.Next() {
		if id := it.CheckoutSession().Metadata[metadataBookingID]; id != "" {
			return id, nil
		}
	}
	if err := it.Err(); err != nil {
		return "", fmt.Errorf("stripe list checkout sessions: %w", err)
	}
	return "", nil
}

// ParseStripeEvent verifies the Stripe-Signature header and decodes the
// event into a PaymentEvent.
func ParseStripeEvent(payload []byte, signature, secret string) (models.PaymentEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, secret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return models.PaymentEvent{}, fmt.Errorf("invalid stripe signature: %w", err)
	}

	evt := models.PaymentEvent{
		ID:      event.ID,
		Kind:    models.PaymentIgnored,
		RawType: string(event.Type),
	}

	switch event.Type {
	case stripe.EventTypeCheckoutSessionCompleted:
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return models.PaymentEvent{}, fmt.Errorf("decode checkout session: %w", err)
		}
		evt.Kind = models.CheckoutCompleted
		evt.BookingID = session.Metadata[metadataBookingID]
	case stripe.EventTypePaymentIntentSucceeded:
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			return models.PaymentEvent{}, fmt.Errorf("decode payment intent: %w", err)
		}
		evt.Kind = models.PaymentSucceeded
		evt.PaymentIntentID = intent.ID
	}
	return evt, nil
}
