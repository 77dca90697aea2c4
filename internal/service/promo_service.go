package service

import (
	"strings"
	"sync"
	"time"

	"github.com/deveshkun/Rental-Fleet/internal/entities"
)

// Valid promo codes and their flat discount amounts.
var promoCodes = map[string]float64{
	"RENT50": 50,
}

const promoResultResetDelay = time.Second

// PromoValidator evaluates promo codes and tracks the transient apply
// result. The result indicator reverts to "none" after a short delay while
// the discount amount persists until the next apply. Each apply bumps a
// sequence number so a reset scheduled by an earlier apply cannot clobber a
// newer result.
type PromoValidator struct {
	mu         sync.Mutex
	state      entities.PromoState
	seq        uint64
	timer      *time.Timer
	resetAfter time.Duration
}

func NewPromoValidator() *PromoValidator {
	return &PromoValidator{
		state:      entities.PromoState{LastResult: entities.PromoResultNone},
		resetAfter: promoResultResetDelay,
	}
}

// Apply re-evaluates the code from scratch: a match sets the discount and a
// "success" result, a miss resets the discount to zero with a "fail" result.
func (v *PromoValidator) Apply(code string) entities.PromoState {
	v.mu.Lock()
	defer v.mu.Unlock()

	normalized := strings.ToUpper(strings.TrimSpace(code))
	v.seq++
	if amount, ok := promoCodes[normalized]; ok {
		v.state = entities.PromoState{Code: normalized, DiscountAmount: amount, LastResult: entities.PromoResultSuccess}
	} else {
		v.state = entities.PromoState{Code: normalized, DiscountAmount: 0, LastResult: entities.PromoResultFail}
	}

	if v.timer != nil {
		v.timer.Stop()
	}
	seq := v.seq
	v.timer = time.AfterFunc(v.resetAfter, func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		// A newer apply owns the state now; this reset is stale.
		if v.seq != seq {
			return
		}
		v.state.LastResult = entities.PromoResultNone
	})

	return v.state
}

func (v *PromoValidator) State() entities.PromoState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Stop cancels any pending result reset. Called when the owning booking
// session is discarded.
func (v *PromoValidator) Stop() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.timer != nil {
		v.timer.Stop()
		v.timer = nil
	}
}
