package handler

import (
	"testing"

	"wishbot/internal/domain"
	"wishbot/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestStateAccessors(t *testing.T) {
	h := newTestHandler(new(testutil.MockUserRepository), new(testutil.MockWishRepository))

	// Unknown sender starts idle
	assert.Equal(t, domain.StateNone, h.GetState(42).State)

	h.SetState(42, &domain.StateData{
		State:    domain.StateAwaitingPriority,
		UserID:   1,
		WishText: "Bike",
	})
	state := h.GetState(42)
	assert.Equal(t, domain.StateAwaitingPriority, state.State)
	assert.Equal(t, "Bike", state.WishText)

	// States are independent across senders
	assert.Equal(t, domain.StateNone, h.GetState(43).State)

	h.ResetState(42)
	state = h.GetState(42)
	assert.Equal(t, domain.StateNone, state.State)
	assert.Empty(t, state.WishText)
	assert.Zero(t, state.UserID)
}
