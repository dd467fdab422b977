package conversation

import (
	"strings"

	"busimap/models"
)

// Signal weights for intent scoring. Keyword, regex-pattern and
// cultural-indicator ratios are combined with a per-intent fixed boost and
// clamped to [0,1].
const (
	keywordWeight  = 0.4
	patternWeight  = 0.5
	culturalWeight = 0.2

	fallbackConfidence = 0.1
	clarifyThreshold   = 0.6
)

// DetectPattern returns the coarse conversation pattern for an utterance by
// keyword containment over a fixed priority list (emergency first). When no
// keyword matches, the session's previous intent carries the pattern forward;
// otherwise the pattern is general_inquiry. This label drives response
// template selection and may disagree with the scored intent for ambiguous
// text. Both are kept.
func DetectPattern(utterance, lang, previousIntent string) string {
	lowered := strings.ToLower(utterance)
	lang = langOrDefault(lang)

	for _, pattern := range patternPriority {
		for _, keyword := range patternKeywords[pattern][lang] {
			if strings.Contains(lowered, keyword) {
				return pattern
			}
		}
	}

	if previousIntent != "" {
		return previousIntent
	}
	return IntentGeneralInquiry
}

// ScoreIntents scores every intent with a pattern definition for the language
// against the utterance, in taxonomy declaration order. The per-signal
// breakdown is retained for explainability.
func ScoreIntents(utterance, lang string) []models.IntentScore {
	lowered := strings.ToLower(strings.TrimSpace(utterance))
	lang = langOrDefault(lang)

	scores := make([]models.IntentScore, 0, len(intentOrder))
	for _, intent := range intentOrder {
		pattern, ok := intentPatterns[intent][lang]
		if !ok {
			continue
		}

		var s models.IntentScore
		s.Intent = intent

		keywordMatches := 0
		for _, keyword := range pattern.keywords {
			if strings.Contains(lowered, keyword) {
				keywordMatches++
			}
		}
		if keywordMatches > 0 {
			s.KeywordRatio = float64(keywordMatches) / float64(len(pattern.keywords))
		}

		patternMatches := 0
		for _, re := range pattern.patterns {
			if re.MatchString(lowered) {
				patternMatches++
			}
		}
		if patternMatches > 0 {
			s.PatternRatio = float64(patternMatches) / float64(len(pattern.patterns))
		}

		if len(pattern.culturalIndicators) > 0 {
			culturalMatches := 0
			for _, indicator := range pattern.culturalIndicators {
				if strings.Contains(lowered, indicator) {
					culturalMatches++
				}
			}
			if culturalMatches > 0 {
				s.CulturalRatio = float64(culturalMatches) / float64(len(pattern.culturalIndicators))
			}
		}

		s.Boost = pattern.confidenceBoost
		s.Score = clamp01(s.KeywordRatio*keywordWeight + s.PatternRatio*patternWeight + s.CulturalRatio*culturalWeight + s.Boost)
		scores = append(scores, s)
	}
	return scores
}

// Classify runs the full analysis for one utterance: coarse pattern, scored
// intent, cultural context, entities and the clarification decision.
func Classify(utterance, lang, previousIntent string, location *models.UserLocation) models.IntentAnalysis {
	if strings.TrimSpace(utterance) == "" {
		return models.IntentAnalysis{
			Intent:                IntentGeneralInquiry,
			Pattern:               IntentGeneralInquiry,
			Confidence:            0,
			Entities:              []models.Entity{},
			Cultural:              models.CulturalContext{Tone: "neutral", Ambiguous: true},
			RequiresClarification: true,
			SuggestedQuestions:    defaultClarifyingQuestions[langOrDefault(lang)],
			Language:              lang,
		}
	}

	cultural := AnalyzeCulture(utterance, lang)
	pattern := DetectPattern(utterance, lang, previousIntent)
	scores := ScoreIntents(utterance, lang)
	entities := ExtractEntities(utterance, lang, location)

	intent := IntentGeneralInquiry
	confidence := fallbackConfidence
	best := 0.0
	for _, s := range scores {
		// Strictly greater keeps the first-declared intent on ties.
		if s.Score > best {
			best = s.Score
			intent = s.Intent
			confidence = s.Score
		}
	}

	requiresClarification := confidence < clarifyThreshold ||
		(entityRequiringIntents[intent] && len(entities) == 0) ||
		cultural.Ambiguous

	var questions []string
	if requiresClarification {
		questions = ClarifyingQuestions(intent, lang)
	}

	return models.IntentAnalysis{
		Intent:                intent,
		Pattern:               pattern,
		Confidence:            confidence,
		Entities:              entities,
		Cultural:              cultural,
		RequiresClarification: requiresClarification,
		SuggestedQuestions:    questions,
		Language:              lang,
		Scores:                scores,
	}
}

// ClarifyingQuestions returns the static per-intent question set for a
// language, falling back to the generic set for intents without one.
func ClarifyingQuestions(intent, lang string) []string {
	lang = langOrDefault(lang)
	if byLang, ok := clarifyingQuestions[intent]; ok {
		if questions, ok := byLang[lang]; ok {
			return questions
		}
	}
	return defaultClarifyingQuestions[lang]
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
