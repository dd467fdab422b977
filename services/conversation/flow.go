package conversation

import (
	"math/rand"

	"busimap/models"
)

// TemplateChooser selects one response template among equally valid
// candidates. The default is a uniform random pick; tests inject a
// deterministic chooser.
type TemplateChooser func(candidates []string) string

func randomChooser(candidates []string) string {
	return candidates[rand.Intn(len(candidates))]
}

// FlowEngine is the deterministic dialogue state machine plus the flow
// pattern registry. Transitions are a pure function of the current state;
// only template selection is randomized, through Choose.
type FlowEngine struct {
	Choose TemplateChooser
}

func NewFlowEngine() *FlowEngine {
	return &FlowEngine{Choose: randomChooser}
}

// stateTransitions is the cyclic default transition table.
var stateTransitions = map[models.DialogueState]models.DialogueState{
	models.StateGreeting:    models.StateExploring,
	models.StateExploring:   models.StateClarifying,
	models.StateClarifying:  models.StateSolving,
	models.StateSolving:     models.StateSatisfying,
	models.StateSatisfying:  models.StateFollowingUp,
	models.StateFollowingUp: models.StateExploring,
}

// NextState returns the successor of a dialogue state. Unknown states reset
// to exploring.
func NextState(state models.DialogueState) models.DialogueState {
	if next, ok := stateTransitions[state]; ok {
		return next
	}
	return models.StateExploring
}

// GetFlow resolves the flow pattern for (intent, state, language): a selected
// response template, the static follow-up questions and the next state. A
// missing registry entry yields the built-in default flow.
func (e *FlowEngine) GetFlow(intent string, state models.DialogueState, lang string) models.FlowReply {
	lang = langOrDefault(lang)

	byLang, ok := flowTemplates[intent]
	if !ok {
		return e.defaultFlow(lang)
	}
	byState, ok := byLang[lang]
	if !ok {
		return e.defaultFlow(lang)
	}

	message := helpFallbackMessage[lang]
	if candidates := byState[state]; len(candidates) > 0 {
		message = e.Choose(candidates)
	}

	return models.FlowReply{
		Message:           message,
		FollowUpQuestions: FollowUps(intent, lang),
		CurrentState:      state,
		NextState:         NextState(state),
		Language:          lang,
	}
}

func (e *FlowEngine) defaultFlow(lang string) models.FlowReply {
	return models.FlowReply{
		Message:           defaultFlowMessage[lang],
		FollowUpQuestions: defaultFlowQuestions[lang],
		CurrentState:      models.StateExploring,
		NextState:         models.StateClarifying,
		Language:          lang,
	}
}

// FollowUps returns the static follow-up question list for an intent and
// language; empty for intents without one.
func FollowUps(intent, lang string) []string {
	lang = langOrDefault(lang)
	if byLang, ok := followUpQuestions[intent]; ok {
		return byLang[lang]
	}
	return []string{}
}
