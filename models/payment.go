package models

// PaymentEventKind is the processor-agnostic kind of an inbound payment event.
type PaymentEventKind string

const (
	CheckoutCompleted PaymentEventKind = "checkout_completed"
	PaymentSucceeded  PaymentEventKind = "payment_succeeded"
	PaymentIgnored    PaymentEventKind = "ignored"
)

// PaymentEvent is a verified webhook event, decoded once at the boundary.
// BookingID is only set for checkout events; PaymentIntentID only for
// payment-intent events.
type PaymentEvent struct {
	ID              string
	Kind            PaymentEventKind
	RawType         string
	BookingID       string
	PaymentIntentID string
}

// CheckoutRequest describes a single line-item checkout session.
type CheckoutRequest struct {
	BookingID   string
	ProductName string
	AmountMinor int64 // smallest currency unit
	Currency    string
	SuccessURL  string
	CancelURL   string
}

// CheckoutSession is the processor's answer to a CheckoutRequest.
type CheckoutSession struct {
	ID  string
	URL string
}
