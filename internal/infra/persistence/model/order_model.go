package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
// Lines are stored as a JSON array of OrderLineModel.
type OrderModel struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key"`
	SessionID    uuid.UUID      `gorm:"type:uuid;not null;index"`
	Persona      string         `gorm:"type:text;not null"`
	Lines        datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'"`
	MonthlyTotal float64        `gorm:"type:numeric(10,2);not null"`
	UpfrontTotal float64        `gorm:"type:numeric(10,2);not null"`
	PromoCode    string         `gorm:"type:text"`
	Discount     float64        `gorm:"type:numeric(10,2);not null;default:0"`
	ActivationID string         `gorm:"type:text"`
	NotifyToken  string         `gorm:"type:text"`
	Status       string         `gorm:"type:text;not null;default:'placed'"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderLineModel is the JSON shape of one order line inside OrderModel.Lines.
type OrderLineModel struct {
	DeviceID      string  `json:"device_id,omitempty"`
	PlanID        string  `json:"plan_id"`
	TermMonths    int     `json:"term_months"`
	DeviceMonthly float64 `json:"device_monthly"`
	PlanMonthly   float64 `json:"plan_monthly"`
	Upfront       float64 `json:"upfront"`
	ESIM          bool    `json:"esim"`
}
