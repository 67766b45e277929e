package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceErrorClassification(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := fmt.Errorf("checkout: %w", Upstream("Payment Failed", cause))

	assert.Equal(t, KindUpstream, KindOf(err))
	assert.Equal(t, "Payment Failed", MessageOf(err, "fallback"))
	assert.ErrorIs(t, err, cause)
}

func TestMessageOf_HidesInternalErrors(t *testing.T) {
	err := errors.New("mongo: connection pool exhausted")

	assert.Equal(t, Kind(""), KindOf(err))
	assert.Equal(t, "Failed to create Booking", MessageOf(err, "Failed to create Booking"))
}

func TestServiceErrorString(t *testing.T) {
	assert.Equal(t, "conflict: Room is not available", Conflict("Room is not available").Error())
	assert.Equal(t, "notFound: No hotel found", NotFound("No hotel found").Error())
}
