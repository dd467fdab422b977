package conversation

import (
	"strings"

	"busimap/models"
)

// AnalyzeCulture scores the politeness, urgency and location-reference
// signals of an utterance for the given language. Each score is the fraction
// of the category's indicators found in the text, so values stay in [0,1].
// Pure function; languages without indicator sets use the English ones.
func AnalyzeCulture(utterance, lang string) models.CulturalContext {
	indicators, ok := culturalIndicators[lang]
	if !ok {
		indicators = culturalIndicators["en"]
	}

	lowered := strings.ToLower(utterance)

	politeness := categoryScore(lowered, indicators.politeness)
	urgency := categoryScore(lowered, indicators.urgency)

	locationMentioned := false
	for _, indicator := range indicators.location {
		if strings.Contains(lowered, indicator) {
			locationMentioned = true
			break
		}
	}

	tone := "neutral"
	switch {
	case urgency > 0.3:
		tone = "urgent"
	case politeness > 0.3:
		tone = "polite"
	}

	return models.CulturalContext{
		PolitenessScore:   politeness,
		UrgencyScore:      urgency,
		LocationMentioned: locationMentioned,
		Appropriate:       politeness > 0.1 || urgency > 0.1,
		Ambiguous:         len(strings.Fields(utterance)) < 3 || strings.Contains(utterance, "?"),
		Tone:              tone,
	}
}

func categoryScore(lowered string, indicators []string) float64 {
	if len(indicators) == 0 {
		return 0
	}
	matches := 0
	for _, indicator := range indicators {
		if strings.Contains(lowered, indicator) {
			matches++
		}
	}
	return float64(matches) / float64(len(indicators))
}
