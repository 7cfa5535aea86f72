// Package entity contains the core business objects of the project.
package entity

// Plan is a data and calls bundle sold per line.
type Plan struct {
	ID              string   `json:"id" yaml:"id"`
	Name            string   `json:"name" yaml:"name"`
	Data            string   `json:"data" yaml:"data"` // e.g. "80GB" or "Unlimited".
	MonthlyPrice    float64  `json:"monthly_price" yaml:"monthlyPrice"`
	StudentDiscount float64  `json:"student_discount,omitempty" yaml:"studentDiscount,omitempty"`
	Perks           []string `json:"perks,omitempty" yaml:"perks,omitempty"`
}

// SharedPlanTier is a family plan whose allowance is pooled across all lines.
type SharedPlanTier struct {
	ID       string  `json:"id" yaml:"id"`
	Name     string  `json:"name" yaml:"name"`
	Data     string  `json:"data" yaml:"data"`
	Price    float64 `json:"price" yaml:"price"`
	MaxLines int     `json:"max_lines" yaml:"maxLines"`
}

// RoamingPack is an add-on for travelling customers.
type RoamingPack struct {
	ID    string  `json:"id" yaml:"id"`
	Name  string  `json:"name" yaml:"name"`
	Zone  string  `json:"zone" yaml:"zone"`
	Data  string  `json:"data" yaml:"data"`
	Days  int     `json:"days" yaml:"days"`
	Price float64 `json:"price" yaml:"price"`
}

// PromoCode is a checkout code that takes a fixed credit off every monthly bill.
type PromoCode struct {
	Code          string  `json:"code" yaml:"code"`
	MonthlyCredit float64 `json:"monthly_credit" yaml:"monthlyCredit"`
	Description   string  `json:"description" yaml:"description"`
}
