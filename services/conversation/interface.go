package conversation

import (
	"context"

	"busimap/models"
	"busimap/services/search"
)

type Service interface {
	// Sessions
	StartSession(language string) (*models.Session, error)
	GetSession(sessionID string) (*models.Session, error)

	// Dialogue
	ProcessTurn(ctx context.Context, sessionID, utterance string, location *models.UserLocation) (*models.TurnResponse, error)
	ManageState(sessionID, userInput, systemResponse, intent string) (*models.StateUpdate, error)
}

// DefaultConversationService is the production implementation.
type DefaultConversationService struct {
	Sessions *SessionManager
	Flows    *FlowEngine
	Bridge   *search.ContextualBridge
}
