package payment

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"stayhub/database/repository"
	"stayhub/database/repository/memory"
	"stayhub/models"
	"stayhub/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeGateway struct {
	requests []models.CheckoutRequest
	sessions map[string]string // payment intent -> booking id
	err      error
}

func (g *fakeGateway) CreateCheckoutSession(_ context.Context, req models.CheckoutRequest) (*models.CheckoutSession, error) {
	if g.err != nil {
		return nil, g.err
	}
	g.requests = append(g.requests, req)
	return &models.CheckoutSession{ID: "cs_test_1", URL: "https://checkout.stripe.com/c/pay/cs_test_1"}, nil
}

func (g *fakeGateway) FindBookingIDByPaymentIntent(_ context.Context, pi string) (string, error) {
	if g.err != nil {
		return "", g.err
	}
	return g.sessions[pi], nil
}

type countingNotifier struct {
	mu    sync.Mutex
	calls []string
}

func (n *countingNotifier) NotifyBookingPaid(_ context.Context, b *models.Booking) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, b.ID)
	return nil
}

const testSecret = "whsec_test_secret"

func newTestService() (*DefaultPaymentService, repository.BookingRepository, *fakeGateway, *countingNotifier) {
	store := memory.NewStore()
	store.Seed(
		models.Booking{ID: "b-1", RoomID: "room_1", HotelID: "hotel_1", Guests: 2, TotalPrice: 100, Status: models.BookingPending, PaymentMethod: models.PayAtProperty},
		models.Booking{ID: "b-2", RoomID: "room_1", HotelID: "hotel_1", Guests: 1, TotalPrice: 19.99, Status: models.BookingPending},
		models.Room{ID: "room_1", HotelID: "hotel_1", PackageName: "Everest Base Camp", PricePerNight: 50},
		models.Hotel{ID: "hotel_1", Name: "Summit Lodge", OwnerID: "owner_1"},
	)
	repos := store.Repositories()
	gateway := &fakeGateway{sessions: map[string]string{"pi_1": "b-1"}}
	notifier := &countingNotifier{}
	svc := &DefaultPaymentService{
		Bookings:      repos.Bookings,
		Rooms:         repos.Rooms,
		Hotels:        repos.Hotels,
		Gateway:       gateway,
		Notifier:      notifier,
		WebhookSecret: testSecret,
		Currency:      "USD",
		Logger:        zap.NewNop(),
	}
	return svc, repos.Bookings, gateway, notifier
}

func TestCreateCheckoutSession(t *testing.T) {
	svc, bookings, gateway, _ := newTestService()

	url, err := svc.CreateCheckoutSession(context.Background(), "b-1", "https://stayhub.example/")
	require.NoError(t, err)
	assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_test_1", url)

	require.Len(t, gateway.requests, 1)
	req := gateway.requests[0]
	assert.Equal(t, "b-1", req.BookingID)
	assert.Equal(t, "Everest Base Camp", req.ProductName)
	assert.Equal(t, int64(10000), req.AmountMinor)
	assert.Equal(t, "usd", req.Currency)
	assert.Equal(t, "https://stayhub.example/loader/my-bookings", req.SuccessURL)
	assert.Equal(t, "https://stayhub.example/my-bookings", req.CancelURL)

	b, _ := bookings.GetByID(context.Background(), "b-1")
	assert.False(t, b.IsPaid)
}

func TestCreateCheckoutSessionRoundsAmount(t *testing.T) {
	svc, _, gateway, _ := newTestService()

	_, err := svc.CreateCheckoutSession(context.Background(), "b-2", "http://localhost:5173")
	require.NoError(t, err)
	assert.Equal(t, int64(1999), gateway.requests[0].AmountMinor)
}

func TestCreateCheckoutSessionFailures(t *testing.T) {
	svc, _, gateway, _ := newTestService()
	ctx := context.Background()

	_, err := svc.CreateCheckoutSession(ctx, "missing", "https://stayhub.example")
	assert.Equal(t, services.KindUpstream, services.KindOf(err))
	assert.Equal(t, "Payment Failed", services.MessageOf(err, ""))

	gateway.err = errors.New("card_declined")
	_, err = svc.CreateCheckoutSession(ctx, "b-1", "https://stayhub.example")
	assert.Equal(t, "Payment Failed", services.MessageOf(err, ""))

	_, err = svc.CreateCheckoutSession(ctx, "b-1", "")
	assert.Equal(t, services.KindValidation, services.KindOf(err))
}

func TestCheckoutCompletedTwiceNotifiesOnce(t *testing.T) {
	svc, bookings, _, notifier := newTestService()
	ctx := context.Background()
	evt := models.PaymentEvent{ID: "evt_1", Kind: models.CheckoutCompleted, BookingID: "b-1"}

	require.NoError(t, svc.HandleEvent(ctx, evt))
	require.NoError(t, svc.HandleEvent(ctx, evt))

	b, err := bookings.GetByID(ctx, "b-1")
	require.NoError(t, err)
	assert.True(t, b.IsPaid)
	assert.Equal(t, models.BookingConfirmed, b.Status)
	assert.Equal(t, models.PayWithStripe, b.PaymentMethod)
	assert.Equal(t, []string{"b-1"}, notifier.calls)
}

func TestConcurrentDuplicateEventsNotifyOnce(t *testing.T) {
	svc, _, _, notifier := newTestService()
	evt := models.PaymentEvent{ID: "evt_1", Kind: models.CheckoutCompleted, BookingID: "b-1"}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, svc.HandleEvent(context.Background(), evt))
		}()
	}
	wg.Wait()
	assert.Len(t, notifier.calls, 1)
}

func TestPaymentSucceededResolvesSession(t *testing.T) {
	svc, bookings, _, notifier := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.HandleEvent(ctx, models.PaymentEvent{ID: "evt_2", Kind: models.PaymentSucceeded, PaymentIntentID: "pi_1"}))

	b, _ := bookings.GetByID(ctx, "b-1")
	assert.True(t, b.IsPaid)
	assert.Len(t, notifier.calls, 1)
}

func TestPaymentSucceededWithoutSession(t *testing.T) {
	svc, bookings, _, notifier := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.HandleEvent(ctx, models.PaymentEvent{ID: "evt_3", Kind: models.PaymentSucceeded, PaymentIntentID: "pi_unknown"}))
	assert.Empty(t, notifier.calls)
	b, _ := bookings.GetByID(ctx, "b-1")
	assert.False(t, b.IsPaid)
}

func TestPaymentSucceededGatewayError(t *testing.T) {
	svc, _, gateway, _ := newTestService()
	gateway.err = errors.New("stripe unavailable")

	err := svc.HandleEvent(context.Background(), models.PaymentEvent{Kind: models.PaymentSucceeded, PaymentIntentID: "pi_1"})
	assert.Error(t, err)
}

func TestHandleEventIgnoresUnknownBookingAndKinds(t *testing.T) {
	svc, _, _, notifier := newTestService()
	ctx := context.Background()

	assert.NoError(t, svc.HandleEvent(ctx, models.PaymentEvent{Kind: models.CheckoutCompleted, BookingID: "missing"}))
	assert.NoError(t, svc.HandleEvent(ctx, models.PaymentEvent{Kind: models.CheckoutCompleted}))
	assert.NoError(t, svc.HandleEvent(ctx, models.PaymentEvent{Kind: models.PaymentIgnored, RawType: "charge.refunded"}))
	assert.Empty(t, notifier.calls)
}

func TestParseEventRejectsBadSignature(t *testing.T) {
	svc, _, _, _ := newTestService()

	payload := []byte(`{"id":"evt_1","object":"event","type":"checkout.session.completed","data":{"object":{}}}`)
	_, err := svc.ParseEvent(payload, fmt.Sprintf("t=%d,v1=deadbeef", time.Now().Unix()))
	assert.Equal(t, services.KindUnauthorized, services.KindOf(err))

	_, err = svc.ParseEvent(payload, "")
	assert.Error(t, err)
}
