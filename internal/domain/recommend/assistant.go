package recommend

import (
	"fmt"
	"strings"

	"storefront/internal/domain/entity"
)

// AssistantReply is the chat answer of the Gen Z shopping assistant.
type AssistantReply struct {
	Message    string               `json:"message"`
	Topic      Dimension            `json:"topic,omitempty"`
	Suggestion *entity.RankedDevice `json:"suggestion,omitempty"`
}

// assistantTopics maps message keywords to the dimension they ask about. The first topic
// with a matching keyword wins.
var assistantTopics = []struct {
	dim      Dimension
	keywords []string
}{
	{DimensionGaming, []string{"gaming", "game", "fps", "esports"}},
	{DimensionCamera, []string{"camera", "photo", "selfie", "video"}},
	{DimensionBattery, []string{"battery", "charge", "all day"}},
	{DimensionValue, []string{"budget", "cheap", "price", "afford", "deal"}},
	{DimensionWork, []string{"work", "productivity", "email", "office"}},
}

const assistantFallback = "I can help you pick a phone for gaming, camera, battery life, budget or work. What matters most to you?"

// Ask answers a shopper message by naming the best device for the topic it mentions.
func Ask(devices []entity.Device, message string) AssistantReply {
	text := strings.ToLower(message)

	for _, topic := range assistantTopics {
		if !containsAny(text, topic.keywords) {
			continue
		}

		best, ok := bestFor(devices, topic.dim)
		if !ok {
			return AssistantReply{
				Message: "I couldn't find a phone for that right now. Try another question.",
				Topic:   topic.dim,
			}
		}

		return AssistantReply{
			Message: fmt.Sprintf("For %s I'd go with the %s %s: %s.",
				strings.ToLower(dimensionLabels[topic.dim]), best.Brand, best.Name, Explain(best.Device, topic.dim)),
			Topic:      topic.dim,
			Suggestion: &best,
		}
	}

	return AssistantReply{Message: assistantFallback}
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}

	return false
}

// bestFor returns the first device with the highest score for the dimension. The value
// dimension is decided by the lowest 36-month price.
func bestFor(devices []entity.Device, dim Dimension) (entity.RankedDevice, bool) {
	if len(devices) == 0 {
		return entity.RankedDevice{}, false
	}

	best := devices[0]
	bestScore := scoreOf(best, dim)
	for _, d := range devices[1:] {
		score := scoreOf(d, dim)
		if dim == DimensionValue {
			if d.Price36 < best.Price36 {
				best, bestScore = d, score
			}

			continue
		}
		if score > bestScore {
			best, bestScore = d, score
		}
	}

	return entity.RankedDevice{
		Device:     best,
		Annotation: entity.Annotation{MatchScore: bestScore, BestFor: dimensionLabels[dim]},
	}, true
}
