// Package entity contains the core business objects of the project.
package entity

import "time"

// DealKind classifies a promotion.
type DealKind string

const (
	DealTradeIn      DealKind = "trade_in"
	DealSwitchCredit DealKind = "switch_credit"
	DealBundle       DealKind = "bundle"
)

// Deal is a static promotion offered to switchers.
type Deal struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Kind        DealKind `json:"kind" yaml:"kind"`
	Value       float64  `json:"value" yaml:"value"`
	Description string   `json:"description" yaml:"description"`
}

// RefurbGrade is the condition tier of a refurbished unit.
type RefurbGrade string

const (
	GradeA RefurbGrade = "A"
	GradeB RefurbGrade = "B"
	GradeC RefurbGrade = "C"
)

// Discount returns the fraction taken off the new-device price for the grade.
func (g RefurbGrade) Discount() float64 {
	switch g {
	case GradeA:
		return 0.15
	case GradeB:
		return 0.25
	case GradeC:
		return 0.35
	default:
		return 0
	}
}

// RefurbDevice is a discounted refurbished unit of a catalog device.
type RefurbDevice struct {
	ID             string      `json:"id" yaml:"id"`
	DeviceID       string      `json:"device_id" yaml:"deviceId"`
	Grade          RefurbGrade `json:"grade" yaml:"grade"`
	BatteryHealth  int         `json:"battery_health" yaml:"batteryHealth"` // Percent.
	WarrantyMonths int         `json:"warranty_months" yaml:"warrantyMonths"`
	Price          float64     `json:"price" yaml:"-"` // Derived from the device price and grade.
}

// SimType is the SIM form factor a BYO device supports.
type SimType string

const (
	SimESIM SimType = "esim"
	SimBoth SimType = "both"
)

// BYOInfo is the result of a bring-your-own-device compatibility check.
type BYOInfo struct {
	Model      string  `json:"model"`
	Compatible bool    `json:"compatible"`
	SimType    SimType `json:"sim_type"`
}

// PortingStep is one stage of a number transfer.
type PortingStep struct {
	Name        string     `json:"name"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// PortingStatus tracks a number transfer from another carrier.
type PortingStatus struct {
	ID            string        `json:"id"`
	SessionID     string        `json:"session_id"`
	OrderID       string        `json:"order_id,omitempty"` // Set when the transfer is attached to a checkout.
	PhoneNumber   string        `json:"phone_number"`
	Carrier       string        `json:"carrier"`
	AccountNumber string        `json:"account_number"`
	PINHash       string        `json:"-"`
	Steps         []PortingStep `json:"steps"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// PortingStepNames is the fixed order of a number transfer.
var PortingStepNames = []string{
	"request_submitted",
	"account_verified",
	"transfer_scheduled",
	"number_active",
}

// NewPortingSteps returns a fresh tracker with the first step completed.
func NewPortingSteps(now time.Time) []PortingStep {
	steps := make([]PortingStep, len(PortingStepNames))
	for i, name := range PortingStepNames {
		steps[i] = PortingStep{Name: name}
	}
	steps[0].Completed = true
	steps[0].CompletedAt = &now

	return steps
}

// Advance completes the next pending step. It is a no-op once every step is complete and
// reports whether a step was completed.
func (p *PortingStatus) Advance(now time.Time) bool {
	for i := range p.Steps {
		if !p.Steps[i].Completed {
			p.Steps[i].Completed = true
			p.Steps[i].CompletedAt = &now
			p.UpdatedAt = now

			return true
		}
	}

	return false
}

// Done reports whether the number transfer has finished.
func (p *PortingStatus) Done() bool {
	for _, step := range p.Steps {
		if !step.Completed {
			return false
		}
	}

	return len(p.Steps) > 0
}

// CurrentStep returns the name of the first pending step, or the last step when done.
func (p *PortingStatus) CurrentStep() string {
	for _, step := range p.Steps {
		if !step.Completed {
			return step.Name
		}
	}
	if len(p.Steps) == 0 {
		return ""
	}

	return p.Steps[len(p.Steps)-1].Name
}

// CoverageLevel is the best network technology available at a location.
type CoverageLevel string

const (
	Coverage5G   CoverageLevel = "5g"
	CoverageLTE  CoverageLevel = "lte"
	CoverageNone CoverageLevel = "no_coverage"
)

// CoverageResult is the answer of a coverage lookup.
type CoverageResult struct {
	Latitude  float64       `json:"latitude"`
	Longitude float64       `json:"longitude"`
	Level     CoverageLevel `json:"level"`
	Zone      string        `json:"zone,omitempty"`
}
