// Package entity contains the core business objects of the project.
package entity

// TravelFrequency is how often a shopper travels abroad.
type TravelFrequency string

const (
	TravelNever      TravelFrequency = "never"
	TravelOccasional TravelFrequency = "occasional"
	TravelFrequent   TravelFrequency = "frequent"
)

// ScorerAnswers is the Young Professional quiz input. Likert ratings use a 1-5 scale;
// zero or out-of-range values are treated as the neutral 3.
type ScorerAnswers struct {
	Price           int             `json:"price"`
	Brand           int             `json:"brand"`
	Camera          int             `json:"camera"`
	Battery         int             `json:"battery"`
	Productivity    int             `json:"productivity"`
	Budget          float64         `json:"budget"` // Monthly budget in USD.
	TravelFrequency TravelFrequency `json:"travel_frequency"`
	HybridWork      bool            `json:"hybrid_work"`
}

// Bucket is the three-way outcome of the scorer quiz.
type Bucket string

const (
	BucketValue    Bucket = "value"
	BucketBalanced Bucket = "balanced"
	BucketPrestige Bucket = "prestige"
)

// ScorerResults is the deterministic output derived from ScorerAnswers.
type ScorerResults struct {
	ValueScore     int    `json:"value_score"`
	PrestigeScore  int    `json:"prestige_score"`
	WorkScore      int    `json:"work_score"`
	Recommendation Bucket `json:"recommendation"`
}
