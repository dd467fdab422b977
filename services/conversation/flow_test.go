package conversation

import (
	"testing"

	"busimap/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// firstChooser makes template selection deterministic for tests.
func firstChooser(candidates []string) string { return candidates[0] }

func TestNextState(t *testing.T) {
	cases := []struct {
		from models.DialogueState
		to   models.DialogueState
	}{
		{models.StateGreeting, models.StateExploring},
		{models.StateExploring, models.StateClarifying},
		{models.StateClarifying, models.StateSolving},
		{models.StateSolving, models.StateSatisfying},
		{models.StateSatisfying, models.StateFollowingUp},
		{models.StateFollowingUp, models.StateExploring},
		{models.DialogueState("bogus"), models.StateExploring},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.to, NextState(tc.from), "from %s", tc.from)
	}
}

func TestGetFlowSelectsTemplate(t *testing.T) {
	engine := &FlowEngine{Choose: firstChooser}

	reply := engine.GetFlow(IntentFoodSearch, models.StateGreeting, "en")

	assert.Equal(t, flowTemplates[IntentFoodSearch]["en"][models.StateGreeting][0], reply.Message)
	assert.Equal(t, models.StateGreeting, reply.CurrentState)
	assert.Equal(t, models.StateExploring, reply.NextState)
	assert.Equal(t, "en", reply.Language)
	assert.Equal(t, followUpQuestions[IntentFoodSearch]["en"], reply.FollowUpQuestions)
}

func TestGetFlowRandomChoiceStaysInCandidateSet(t *testing.T) {
	engine := NewFlowEngine()
	candidates := flowTemplates[IntentEmergencyHelp]["rw"][models.StateExploring]
	require.NotEmpty(t, candidates)

	for i := 0; i < 20; i++ {
		reply := engine.GetFlow(IntentEmergencyHelp, models.StateExploring, "rw")
		assert.Contains(t, candidates, reply.Message)
	}
}

func TestGetFlowUnknownIntentUsesDefault(t *testing.T) {
	engine := &FlowEngine{Choose: firstChooser}

	reply := engine.GetFlow(IntentGeneralInquiry, models.StateGreeting, "en")

	assert.Equal(t, defaultFlowMessage["en"], reply.Message)
	assert.Equal(t, models.StateExploring, reply.CurrentState)
	assert.Equal(t, models.StateClarifying, reply.NextState)
	assert.Equal(t, defaultFlowQuestions["en"], reply.FollowUpQuestions)
}

func TestGetFlowUnknownLanguageFallsBackToEnglish(t *testing.T) {
	engine := &FlowEngine{Choose: firstChooser}

	reply := engine.GetFlow(IntentFoodSearch, models.StateGreeting, "fr")

	assert.Equal(t, "en", reply.Language)
	assert.Equal(t, flowTemplates[IntentFoodSearch]["en"][models.StateGreeting][0], reply.Message)
}

func TestFollowUps(t *testing.T) {
	assert.NotEmpty(t, FollowUps(IntentFoodSearch, "en"))
	assert.NotEmpty(t, FollowUps(IntentFoodSearch, "rw"))
	assert.Empty(t, FollowUps("bogus_intent", "en"))
}
