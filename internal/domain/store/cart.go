// Package store holds the per-persona session state containers.
//
// Every store is a plain value owned by exactly one session. Setters take patch structs whose
// nil fields leave the current value untouched, and Reset restores the initial snapshot.
// Stores are not safe for concurrent use; the session repository serializes access.
package store

// Contract terms offered at checkout.
const (
	Term24 = 24
	Term36 = 36
)

// Cart is the device and plan a shopper intends to buy.
type Cart struct {
	DeviceID   string `json:"device_id,omitempty"`
	PlanID     string `json:"plan_id,omitempty"`
	TermMonths int    `json:"term_months"`
	PromoCode  string `json:"promo_code,omitempty"`
}

// CartPatch is a partial Cart update.
type CartPatch struct {
	DeviceID   *string `json:"device_id"`
	PlanID     *string `json:"plan_id"`
	TermMonths *int    `json:"term_months" validate:"omitempty,oneof=24 36"`
	PromoCode  *string `json:"promo_code"`
}

func newCart() Cart {
	return Cart{TermMonths: Term24}
}

// apply merges the patch into the cart.
func (c *Cart) apply(p CartPatch) {
	setIf(&c.DeviceID, p.DeviceID)
	setIf(&c.PlanID, p.PlanID)
	setIf(&c.TermMonths, p.TermMonths)
	setIf(&c.PromoCode, p.PromoCode)
}

// IsEmpty reports whether nothing has been chosen yet.
func (c Cart) IsEmpty() bool {
	return c.DeviceID == "" && c.PlanID == ""
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
