package service

import (
	"testing"
	"time"

	"github.com/deveshkun/Rental-Fleet/internal/entities"

	"github.com/stretchr/testify/assert"
)

func TestPromoValidator_ValidCode(t *testing.T) {
	v := NewPromoValidator()
	defer v.Stop()

	state := v.Apply("RENT50")
	assert.Equal(t, entities.PromoResultSuccess, state.LastResult)
	assert.Equal(t, 50.0, state.DiscountAmount)
}

func TestPromoValidator_CaseInsensitive(t *testing.T) {
	v := NewPromoValidator()
	defer v.Stop()

	state := v.Apply("rent50")
	assert.Equal(t, entities.PromoResultSuccess, state.LastResult)
	assert.Equal(t, 50.0, state.DiscountAmount)
}

func TestPromoValidator_InvalidCode(t *testing.T) {
	v := NewPromoValidator()
	defer v.Stop()

	state := v.Apply("WRONG")
	assert.Equal(t, entities.PromoResultFail, state.LastResult)
	assert.Equal(t, 0.0, state.DiscountAmount)
}

func TestPromoValidator_ValidThenInvalidResetsDiscount(t *testing.T) {
	v := NewPromoValidator()
	defer v.Stop()

	v.Apply("RENT50")
	state := v.Apply("WRONG")

	assert.Equal(t, entities.PromoResultFail, state.LastResult)
	assert.Equal(t, 0.0, state.DiscountAmount)
}

func TestPromoValidator_ResultResetsButDiscountPersists(t *testing.T) {
	v := NewPromoValidator()
	v.resetAfter = 20 * time.Millisecond
	defer v.Stop()

	v.Apply("RENT50")

	assert.Eventually(t, func() bool {
		return v.State().LastResult == entities.PromoResultNone
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, 50.0, v.State().DiscountAmount)
}

func TestPromoValidator_StaleResetDoesNotClobberNewerApply(t *testing.T) {
	v := NewPromoValidator()
	v.resetAfter = 50 * time.Millisecond
	defer v.Stop()

	v.Apply("RENT50")
	time.Sleep(20 * time.Millisecond)
	v.Apply("WRONG")

	// Wait past the first apply's reset point; the second apply's result
	// must still be standing.
	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, entities.PromoResultFail, v.State().LastResult)

	// And the second apply's own reset eventually fires.
	assert.Eventually(t, func() bool {
		return v.State().LastResult == entities.PromoResultNone
	}, time.Second, 5*time.Millisecond)
}

func TestPromoValidator_StopCancelsPendingReset(t *testing.T) {
	v := NewPromoValidator()
	v.resetAfter = 20 * time.Millisecond

	v.Apply("RENT50")
	v.Stop()

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, entities.PromoResultSuccess, v.State().LastResult)
}
