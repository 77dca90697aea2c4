package entities

type PromoResult string

const (
	PromoResultSuccess PromoResult = "success"
	PromoResultFail    PromoResult = "fail"
	PromoResultNone    PromoResult = "none"
)

// PromoState holds the currently applied promo code. LastResult is transient
// and reverts to "none" shortly after an apply; DiscountAmount persists until
// the next apply.
type PromoState struct {
	Code           string      `json:"code"`
	DiscountAmount float64     `json:"discount_amount"`
	LastResult     PromoResult `json:"last_result"`
}
