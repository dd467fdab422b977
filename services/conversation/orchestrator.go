package conversation

import (
	"context"
	"strings"
	"time"

	"busimap/config"
	"busimap/models"
	"busimap/services/language"
	"busimap/services/search"
	"busimap/utils"

	"go.uber.org/zap"
)

// StartSession opens a fresh session in the greeting state. Callers that do
// not name a language get the deployment default from config.
func (s *DefaultConversationService) StartSession(lang string) (*models.Session, error) {
	if lang == "" {
		lang = config.AppConfig.DefaultLanguage
	}
	if !language.IsSupported(lang) {
		lang = language.DefaultLanguage
	}
	return s.Sessions.Create(lang), nil
}

// GetSession returns a read-only copy of a session.
func (s *DefaultConversationService) GetSession(sessionID string) (*models.Session, error) {
	return s.Sessions.Get(sessionID)
}

// ProcessTurn runs one utterance through the full pipeline: language
// detection, classification, entity extraction, dialogue flow, contextual
// search and memory bookkeeping. Mutations to the session happen under its
// per-session lock, so concurrent turns on one session serialize.
func (s *DefaultConversationService) ProcessTurn(ctx context.Context, sessionID, utterance string, location *models.UserLocation) (resp *models.TurnResponse, err error) {
	logger := utils.GetLogger().With(zap.String("sessionId", sessionID))

	defer func() {
		if r := recover(); r != nil {
			logger.Error("turn processing panicked", zap.Any("panic", r))
			resp = s.fallbackResponse(sessionID, utterance)
			err = nil
		}
	}()

	var out *models.TurnResponse
	withErr := s.Sessions.With(sessionID, func(session *models.Session) error {
		lang := language.Detect(utterance)
		session.Language = lang

		previousIntent, _ := session.Memory["last_intent"].(string)
		analysis := Classify(utterance, lang, previousIntent, location)

		flow := s.Flows.GetFlow(analysis.Pattern, session.State, lang)

		outcome := search.Outcome{
			Results:  []models.BusinessSummary{},
			Metadata: models.SearchMetadata{},
		}
		searched := false
		if s.Bridge != nil && search.IsSearchBearing(analysis.Pattern) {
			// Search runs for every search-bearing pattern, even when the
			// turn asks for clarification, so partial results can ride
			// along with the follow-up question.
			outcome = s.Bridge.Lookup(ctx, analysis.Pattern, lang, analysis.Entities, location)
			searched = !outcome.Degraded
		}

		responseText := flow.Message
		if analysis.RequiresClarification {
			responseText = clarificationResponse(analysis, lang)
		} else if search.IsSearchBearing(analysis.Pattern) {
			responseText = flow.Message + " " + actionLine(analysis.Pattern, lang, location)
			if len(outcome.Results) > 0 {
				responseText += " " + personality[langOrDefault(lang)]["found"]
			} else if searched {
				responseText += " " + personality[langOrDefault(lang)]["not_found"]
			}
		}

		now := time.Now().UTC()
		patch := map[string]any{
			"last_intent":     analysis.Intent,
			"last_pattern":    analysis.Pattern,
			"last_confidence": analysis.Confidence,
			"timestamp":       now.Format(time.RFC3339),
		}
		if location != nil {
			patch["last_location"] = *location
			session.LastLocation = location
		}

		AppendTurn(session, models.Turn{
			Role:       models.RoleUser,
			Text:       utterance,
			Language:   lang,
			Intent:     analysis.Intent,
			Confidence: analysis.Confidence,
			Entities:   analysis.Entities,
			Timestamp:  now,
		})
		AppendTurn(session, models.Turn{
			Role:      models.RoleSystem,
			Text:      responseText,
			Language:  lang,
			Intent:    analysis.Intent,
			Timestamp: now,
		})
		UpdateMemory(session, patch)
		session.State = flow.NextState

		out = &models.TurnResponse{
			SessionID:             session.ID,
			ResponseText:          responseText,
			Suggestions:           suggestionsFor(analysis.Pattern, lang),
			NextStep:              nextStepFor(analysis.Pattern, lang),
			NextState:             flow.NextState,
			Intent:                analysis.Intent,
			Pattern:               analysis.Pattern,
			Confidence:            analysis.Confidence,
			Entities:              analysis.Entities,
			RequiresClarification: analysis.RequiresClarification,
			SuggestedQuestions:    analysis.SuggestedQuestions,
			SearchResults:         outcome.Results,
			SearchMetadata:        outcome.Metadata,
			MemoryPatch:           patch,
			Language:              lang,
		}
		return nil
	})
	if withErr != nil {
		return nil, withErr
	}
	return out, nil
}

// ManageState records an externally produced utterance/response pair, grades
// the exchange and merges the bookkeeping into session memory.
func (s *DefaultConversationService) ManageState(sessionID, userInput, systemResponse, intent string) (*models.StateUpdate, error) {
	quality := assessQuality(userInput, systemResponse)
	patch := map[string]any{
		"last_intent":          intent,
		"last_user_input":      userInput,
		"conversation_quality": quality,
		"last_activity":        time.Now().UTC().Format(time.RFC3339),
	}

	err := s.Sessions.With(sessionID, func(session *models.Session) error {
		now := time.Now().UTC()
		AppendTurn(session, models.Turn{
			Role:      models.RoleUser,
			Text:      userInput,
			Language:  session.Language,
			Intent:    intent,
			Timestamp: now,
		})
		AppendTurn(session, models.Turn{
			Role:      models.RoleSystem,
			Text:      systemResponse,
			Language:  session.Language,
			Timestamp: now,
		})
		UpdateMemory(session, patch)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &models.StateUpdate{Quality: quality, MemoryPatch: patch}, nil
}

// assessQuality is a coarse heuristic over the exchange: a substantive user
// input with a substantive response is "good", a substantive user input alone
// is "needs_improvement", anything else is "unclear".
func assessQuality(userInput, systemResponse string) string {
	userOK := len(strings.Fields(userInput)) > 2
	responseOK := len(strings.Fields(systemResponse)) > 5
	switch {
	case userOK && responseOK:
		return "good"
	case userOK:
		return "needs_improvement"
	default:
		return "unclear"
	}
}

// fallbackResponse is the localized all-else-failed reply. It never exposes
// internal errors to the caller.
func (s *DefaultConversationService) fallbackResponse(sessionID, utterance string) *models.TurnResponse {
	lang := language.Detect(utterance)
	return &models.TurnResponse{
		SessionID:     sessionID,
		ResponseText:  gracefulErrorMessage[langOrDefault(lang)],
		Suggestions:   []string{},
		NextStep:      nextStepFor(IntentGeneralInquiry, lang),
		NextState:     models.StateExploring,
		Intent:        IntentGeneralInquiry,
		Pattern:       IntentGeneralInquiry,
		Entities:      []models.Entity{},
		SearchResults: []models.BusinessSummary{},
		MemoryPatch:   map[string]any{},
		Language:      lang,
	}
}
