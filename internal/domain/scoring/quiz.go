package scoring

import "storefront/internal/domain/entity"

// NeutralLikert is used for missing or out-of-range quiz ratings.
const NeutralLikert = 3

// BucketMargin is the score gap beyond which one side wins outright.
const BucketMargin = 20

func likert(v int) int {
	if v < 1 || v > 5 {
		return NeutralLikert
	}

	return v
}

// Quiz scores the Young Professional questionnaire.
func Quiz(a entity.ScorerAnswers) entity.ScorerResults {
	price := likert(a.Price)
	brand := likert(a.Brand)
	camera := likert(a.Camera)
	battery := likert(a.Battery)
	productivity := likert(a.Productivity)

	value := 8*price + 4*battery + 4*(6-brand)
	switch {
	case a.Budget > 0 && a.Budget <= 40:
		value += 20
	case a.Budget > 0 && a.Budget <= 60:
		value += 10
	}

	prestige := 8*brand + 6*camera
	switch {
	case a.Budget >= 80:
		prestige += 20
	case a.Budget >= 60:
		prestige += 10
	}
	if a.TravelFrequency == entity.TravelFrequent {
		prestige += 10
	}

	work := 10*productivity + 4*battery
	if a.HybridWork {
		work += 20
	}
	switch a.TravelFrequency {
	case entity.TravelFrequent:
		work += 10
	case entity.TravelOccasional:
		work += 5
	}

	results := entity.ScorerResults{
		ValueScore:    clamp(value),
		PrestigeScore: clamp(prestige),
		WorkScore:     clamp(work),
	}
	results.Recommendation = Recommend(results.ValueScore, results.PrestigeScore)

	return results
}

// Recommend picks prestige or value when one beats the other by more than BucketMargin,
// and balanced otherwise.
func Recommend(valueScore, prestigeScore int) entity.Bucket {
	switch {
	case prestigeScore-valueScore > BucketMargin:
		return entity.BucketPrestige
	case valueScore-prestigeScore > BucketMargin:
		return entity.BucketValue
	default:
		return entity.BucketBalanced
	}
}
