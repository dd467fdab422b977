package conversation

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"busimap/config"
	"busimap/models"
	"busimap/services/search"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingSearch struct{}

func (failingSearch) Search(context.Context, models.SearchQuery) (*models.SearchResultSet, error) {
	return nil, errors.New("search backend down")
}

// cannedSearch returns a fixed result set and records the queries it saw.
type cannedSearch struct {
	mu      sync.Mutex
	set     *models.SearchResultSet
	queries []models.SearchQuery
}

func (s *cannedSearch) Search(_ context.Context, q models.SearchQuery) (*models.SearchResultSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queries = append(s.queries, q)
	return s.set, nil
}

func cannedResults(n int) *models.SearchResultSet {
	results := make([]models.BusinessResult, 0, n)
	for i := 0; i < n; i++ {
		results = append(results, models.BusinessResult{
			Business: models.Business{
				ID:       fmt.Sprintf("biz-%d", i),
				Name:     fmt.Sprintf("Business %d", i),
				Category: "restaurant",
				Rating:   4.0,
			},
		})
	}
	return &models.SearchResultSet{
		Results:    results,
		TotalFound: n,
		Metadata:   models.SearchMetadata{TotalFound: n, Query: "restaurant"},
	}
}

func newTestService(svc search.Service) *DefaultConversationService {
	return &DefaultConversationService{
		Sessions: NewSessionManager(nil),
		Flows:    &FlowEngine{Choose: firstChooser},
		Bridge:   search.NewContextualBridge(svc, time.Second),
	}
}

func TestStartSession(t *testing.T) {
	svc := newTestService(&cannedSearch{set: cannedResults(0)})

	session, err := svc.StartSession("rw")
	require.NoError(t, err)
	assert.Equal(t, "rw", session.Language)
	assert.Equal(t, models.StateGreeting, session.State)

	session, err = svc.StartSession("sw")
	require.NoError(t, err)
	assert.Equal(t, "en", session.Language)
}

func TestStartSessionUsesConfiguredDefaultLanguage(t *testing.T) {
	svc := newTestService(&cannedSearch{set: cannedResults(0)})

	prev := config.AppConfig.DefaultLanguage
	defer func() { config.AppConfig.DefaultLanguage = prev }()

	config.AppConfig.DefaultLanguage = "rw"
	session, err := svc.StartSession("")
	require.NoError(t, err)
	assert.Equal(t, "rw", session.Language)

	// An unset or bogus deployment default still lands on English.
	config.AppConfig.DefaultLanguage = ""
	session, err = svc.StartSession("")
	require.NoError(t, err)
	assert.Equal(t, "en", session.Language)
}

func TestProcessTurnHappyPath(t *testing.T) {
	backend := &cannedSearch{set: cannedResults(7)}
	svc := newTestService(backend)

	session, err := svc.StartSession("en")
	require.NoError(t, err)

	resp, err := svc.ProcessTurn(context.Background(), session.ID, "I am hungry", kigali)
	require.NoError(t, err)

	assert.Equal(t, session.ID, resp.SessionID)
	assert.Equal(t, IntentFoodSearch, resp.Intent)
	assert.Equal(t, IntentFoodSearch, resp.Pattern)
	assert.InDelta(t, 0.98, resp.Confidence, 1e-9)
	assert.False(t, resp.RequiresClarification)
	assert.Equal(t, models.StateExploring, resp.NextState)
	assert.Equal(t, "en", resp.Language)

	// Top five of the seven hits survive compaction.
	assert.Len(t, resp.SearchResults, 5)
	assert.Equal(t, 7, resp.SearchMetadata.TotalFound)

	// Response text combines the flow template with the location-aware line.
	assert.Contains(t, resp.ResponseText, flowTemplates[IntentFoodSearch]["en"][models.StateGreeting][0])
	assert.Contains(t, resp.ResponseText, "Kigali")

	assert.Equal(t, contextualSuggestions[IntentFoodSearch]["en"], resp.Suggestions)
	assert.Equal(t, nextSteps["en"][IntentFoodSearch], resp.NextStep)
	assert.Equal(t, "food_search", resp.MemoryPatch["last_intent"])

	// No extracted business type, so the query falls back to the pattern term.
	backend.mu.Lock()
	require.Len(t, backend.queries, 1)
	assert.Equal(t, "restaurant", backend.queries[0].Text)
	backend.mu.Unlock()

	// The session advanced: two turns recorded, state moved on.
	got, err := svc.GetSession(session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StateExploring, got.State)
	require.Len(t, got.History, 2)
	assert.Equal(t, models.RoleUser, got.History[0].Role)
	assert.Equal(t, models.RoleSystem, got.History[1].Role)
	assert.Equal(t, "food_search", got.Memory["last_intent"])
	require.NotNil(t, got.LastLocation)
	assert.Equal(t, kigali.Address, got.LastLocation.Address)
}

func TestProcessTurnSearchFailureDegradesGracefully(t *testing.T) {
	svc := newTestService(failingSearch{})

	session, err := svc.StartSession("en")
	require.NoError(t, err)

	resp, err := svc.ProcessTurn(context.Background(), session.ID, "I am hungry", kigali)
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ResponseText)
	assert.NotNil(t, resp.SearchResults)
	assert.Empty(t, resp.SearchResults)
	assert.Zero(t, resp.SearchMetadata.TotalFound)
	assert.GreaterOrEqual(t, resp.Confidence, 0.0)
	assert.LessOrEqual(t, resp.Confidence, 1.0)

	// The turn still committed.
	got, err := svc.GetSession(session.ID)
	require.NoError(t, err)
	assert.Len(t, got.History, 2)
}

func TestProcessTurnClarification(t *testing.T) {
	backend := &cannedSearch{set: cannedResults(3)}
	svc := newTestService(backend)

	session, err := svc.StartSession("en")
	require.NoError(t, err)

	resp, err := svc.ProcessTurn(context.Background(), session.ID, "hm okay?", nil)
	require.NoError(t, err)

	assert.True(t, resp.RequiresClarification)
	assert.NotEmpty(t, resp.SuggestedQuestions)
	assert.Contains(t, resp.ResponseText, resp.SuggestedQuestions[0])

	// general_inquiry carries no search, so the collaborator stays idle.
	backend.mu.Lock()
	assert.Empty(t, backend.queries)
	backend.mu.Unlock()
}

func TestProcessTurnClarifyingSearchBearingTurnStillSearches(t *testing.T) {
	backend := &cannedSearch{set: cannedResults(3)}
	svc := newTestService(backend)

	session, err := svc.StartSession("rw")
	require.NoError(t, err)

	// Two tokens is ambiguous enough to ask a follow-up, but the food
	// pattern still triggers a lookup so results ride along.
	resp, err := svc.ProcessTurn(context.Background(), session.ID, "Ndashaka kurya", kigali)
	require.NoError(t, err)

	assert.Equal(t, IntentFoodSearch, resp.Pattern)
	assert.True(t, resp.RequiresClarification)
	assert.NotEmpty(t, resp.SuggestedQuestions)
	assert.Len(t, resp.SearchResults, 3)
	assert.Equal(t, 3, resp.SearchMetadata.TotalFound)

	backend.mu.Lock()
	require.Len(t, backend.queries, 1)
	assert.Equal(t, "restaurant", backend.queries[0].Text)
	backend.mu.Unlock()
}

func TestProcessTurnSwitchesLanguageMidSession(t *testing.T) {
	svc := newTestService(&cannedSearch{set: cannedResults(2)})

	session, err := svc.StartSession("en")
	require.NoError(t, err)

	resp, err := svc.ProcessTurn(context.Background(), session.ID, "Muraho ndashaka kurya mfasha", kigali)
	require.NoError(t, err)
	assert.Equal(t, "rw", resp.Language)

	got, err := svc.GetSession(session.ID)
	require.NoError(t, err)
	assert.Equal(t, "rw", got.Language)
}

func TestProcessTurnUnknownSession(t *testing.T) {
	svc := newTestService(&cannedSearch{set: cannedResults(0)})

	_, err := svc.ProcessTurn(context.Background(), "missing", "hello", nil)
	require.Error(t, err)

	var notFound SessionNotFoundError
	assert.True(t, errors.As(err, &notFound))
}

func TestManageState(t *testing.T) {
	svc := newTestService(&cannedSearch{set: cannedResults(0)})
	session, err := svc.StartSession("en")
	require.NoError(t, err)

	t.Run("good exchange", func(t *testing.T) {
		update, err := svc.ManageState(session.ID, "I want cheap food now", "Here are some great restaurants near you", "food_search")
		require.NoError(t, err)
		assert.Equal(t, "good", update.Quality)
		assert.Equal(t, "food_search", update.MemoryPatch["last_intent"])
	})

	t.Run("thin response", func(t *testing.T) {
		update, err := svc.ManageState(session.ID, "I want cheap food", "ok", "food_search")
		require.NoError(t, err)
		assert.Equal(t, "needs_improvement", update.Quality)
	})

	t.Run("thin input", func(t *testing.T) {
		update, err := svc.ManageState(session.ID, "hm", "ok", "general_inquiry")
		require.NoError(t, err)
		assert.Equal(t, "unclear", update.Quality)
	})

	t.Run("session bookkeeping", func(t *testing.T) {
		got, err := svc.GetSession(session.ID)
		require.NoError(t, err)
		assert.Equal(t, 6, got.TotalTurns)
		assert.Equal(t, "unclear", got.Memory["conversation_quality"])
		assert.Equal(t, "general_inquiry", got.Memory["last_intent"])
	})

	t.Run("unknown session", func(t *testing.T) {
		_, err := svc.ManageState("missing", "a", "b", "c")
		var notFound SessionNotFoundError
		assert.True(t, errors.As(err, &notFound))
	})
}
