// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"

	"storefront/internal/errors"

	"github.com/google/uuid"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	// OrderPlaced is the state of a freshly checked-out order.
	OrderPlaced OrderStatus = "placed"
)

// OrderLine is one line of service in an order.
type OrderLine struct {
	DeviceID      string  `json:"device_id,omitempty"` // Empty for BYO lines.
	PlanID        string  `json:"plan_id"`
	TermMonths    int     `json:"term_months"`
	DeviceMonthly float64 `json:"device_monthly"`
	PlanMonthly   float64 `json:"plan_monthly"`
	Upfront       float64 `json:"upfront"`
	ESIM          bool    `json:"esim"`
}

// Order is the result of a checkout.
type Order struct {
	ID           uuid.UUID   `json:"id"`
	SessionID    uuid.UUID   `json:"session_id"`
	Persona      Persona     `json:"persona"`
	Lines        []OrderLine `json:"lines"`
	MonthlyTotal float64     `json:"monthly_total"`
	UpfrontTotal float64     `json:"upfront_total"`
	PromoCode    string      `json:"promo_code,omitempty"`
	Discount     float64     `json:"discount"`
	ActivationID string      `json:"activation_id,omitempty"` // eSIM activation code when any line is eSIM.
	NotifyToken  string      `json:"-"`                       // Push token for the order confirmation.
	Status       OrderStatus `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
}

// HasESIM reports whether any line needs an eSIM activation.
func (o *Order) HasESIM() bool {
	for _, line := range o.Lines {
		if line.ESIM {
			return true
		}
	}

	return false
}

// ESIMActivation is the GSMA activation code a handset scans to download an eSIM profile.
type ESIMActivation struct {
	SMDPAddress  string `json:"smdp_address"`
	MatchingID   string `json:"matching_id"`
	Confirmation bool   `json:"confirmation,omitempty"` // Requires a confirmation code on the handset.
}

// ErrInvalidActivationCode is returned when a string is not an LPA activation code.
var ErrInvalidActivationCode = errors.New("invalid eSIM activation code")

const lpaPrefix = "LPA:1$"

// String renders the activation in the LPA format, e.g. "LPA:1$smdp.example.com$ABC-123".
func (a ESIMActivation) String() string {
	code := lpaPrefix + a.SMDPAddress + "$" + a.MatchingID
	if a.Confirmation {
		code += "$$1"
	}

	return code
}

// ParseESIMActivation parses an LPA activation code.
func ParseESIMActivation(code string) (ESIMActivation, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(code), lpaPrefix)
	if !ok {
		return ESIMActivation{}, errors.Wrapf(ErrInvalidActivationCode, "missing %q prefix", lpaPrefix)
	}

	parts := strings.Split(rest, "$")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return ESIMActivation{}, errors.Wrapf(ErrInvalidActivationCode, "%q", code)
	}

	activation := ESIMActivation{SMDPAddress: parts[0], MatchingID: parts[1]}
	if len(parts) == 4 && parts[3] == "1" {
		activation.Confirmation = true
	}

	return activation, nil
}
