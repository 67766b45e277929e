package booking

import (
	"context"
	"time"

	"stayhub/models"
	"stayhub/services"

	"go.uber.org/zap"
)

// IsAvailable reports whether no non-cancelled booking of the room overlaps
// the requested stay. Any lookup failure counts as unavailable so a storage
// problem can never let an overbooking through.
func (s *DefaultBookingService) IsAvailable(ctx context.Context, roomID string, checkIn, checkOut time.Time) bool {
	in, out := NormalizeRange(checkIn, checkOut, s.loc())

	conflicts, err := s.Bookings.FindOverlapping(ctx, roomID, in, out)
	if err != nil {
		s.Logger.Error("availability check failed",
			zap.String("room", roomID),
			zap.Time("checkIn", in),
			zap.Time("checkOut", out),
			zap.Error(err),
		)
		return false
	}
	if len(conflicts) > 0 {
		s.Logger.Debug("found conflicting bookings",
			zap.String("room", roomID),
			zap.Int("count", len(conflicts)),
		)
	}
	return len(conflicts) == 0
}

// CheckAvailability validates the client dates and runs IsAvailable.
func (s *DefaultBookingService) CheckAvailability(ctx context.Context, req models.BookingRequest) (bool, error) {
	checkIn, checkOut, err := s.parseStay(req)
	if err != nil {
		return false, err
	}
	return s.IsAvailable(ctx, req.RoomID, checkIn, checkOut), nil
}

func (s *DefaultBookingService) parseStay(req models.BookingRequest) (time.Time, time.Time, error) {
	if req.RoomID == "" {
		return time.Time{}, time.Time{}, services.Validation("Room is required")
	}
	checkIn, err := ParseDate(req.CheckInDate, s.loc())
	if err != nil {
		return time.Time{}, time.Time{}, services.Validation("Invalid check-in date")
	}
	checkOut, err := ParseDate(req.CheckOutDate, s.loc())
	if err != nil {
		return time.Time{}, time.Time{}, services.Validation("Invalid check-out date")
	}
	if StartOfDay(checkOut, s.loc()).Before(StartOfDay(checkIn, s.loc())) {
		return time.Time{}, time.Time{}, services.Validation("Check-out date must not be before check-in date")
	}
	return checkIn, checkOut, nil
}
