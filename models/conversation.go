package models

import "time"

// DialogueState is the conversational stage a session is in.
type DialogueState string

const (
	StateGreeting    DialogueState = "greeting"
	StateExploring   DialogueState = "exploring"
	StateClarifying  DialogueState = "clarifying"
	StateSolving     DialogueState = "solving"
	StateSatisfying  DialogueState = "satisfying"
	StateFollowingUp DialogueState = "following_up"
)

// Turn roles.
const (
	RoleUser   = "user"
	RoleSystem = "system"
)

// EntityType tags the kind of fact extracted from an utterance.
type EntityType string

const (
	EntityBusinessType EntityType = "business_type"
	EntityLocation     EntityType = "location"
	EntityPriceRange   EntityType = "price_range"
)

// UserLocation is a caller-supplied coordinate pair with an optional address.
type UserLocation struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
	Address   string  `bson:"address,omitempty" json:"address,omitempty"`
}

// Entity is a structured fact pulled out of an utterance. Value carries the
// canonical term for business_type and price_range entities; Location is set
// only for location entities.
type Entity struct {
	Type       EntityType    `bson:"type" json:"type"`
	Value      string        `bson:"value,omitempty" json:"value,omitempty"`
	Location   *UserLocation `bson:"location,omitempty" json:"location,omitempty"`
	Confidence float64       `bson:"confidence" json:"confidence"`
	Language   string        `bson:"language,omitempty" json:"language,omitempty"`
}

// Turn is one utterance recorded in a session's history. Immutable once
// appended.
type Turn struct {
	Role       string    `bson:"role" json:"role"`
	Text       string    `bson:"text" json:"text"`
	Language   string    `bson:"language" json:"language"`
	Intent     string    `bson:"intent,omitempty" json:"intent,omitempty"`
	Confidence float64   `bson:"confidence" json:"confidence"`
	Entities   []Entity  `bson:"entities,omitempty" json:"entities,omitempty"`
	Timestamp  time.Time `bson:"timestamp" json:"timestamp"`
}

// Session is the durable conversational context for one user. History is
// bounded (most-recent-last); Memory is a free-form last-write-wins map.
type Session struct {
	ID           string         `bson:"sessionId" json:"session_id"`
	State        DialogueState  `bson:"state" json:"state"`
	Language     string         `bson:"language" json:"language"`
	History      []Turn         `bson:"history" json:"history"`
	Memory       map[string]any `bson:"memory" json:"memory"`
	LastLocation *UserLocation  `bson:"lastLocation,omitempty" json:"last_location,omitempty"`
	TotalTurns   int            `bson:"totalTurns" json:"total_turns"`
	CreatedAt    time.Time      `bson:"createdAt" json:"created_at"`
	LastActivity time.Time      `bson:"lastActivity" json:"last_activity"`
}

// IntentScore keeps the per-signal breakdown behind a classified intent so
// scoring stays explainable and testable.
type IntentScore struct {
	Intent        string  `json:"intent"`
	Score         float64 `json:"score"`
	KeywordRatio  float64 `json:"keyword_ratio"`
	PatternRatio  float64 `json:"pattern_ratio"`
	CulturalRatio float64 `json:"cultural_ratio"`
	Boost         float64 `json:"boost"`
}

// CulturalContext carries the politeness/urgency/location signals detected in
// an utterance.
type CulturalContext struct {
	PolitenessScore   float64 `json:"politeness_score"`
	UrgencyScore      float64 `json:"urgency_score"`
	LocationMentioned bool    `json:"location_mentioned"`
	Appropriate       bool    `json:"is_culturally_appropriate"`
	Ambiguous         bool    `json:"ambiguous"`
	Tone              string  `json:"tone"` // "urgent", "polite" or "neutral"
}

// IntentAnalysis is the full classification output for one utterance. Pattern
// is the coarse keyword-priority label used for template selection; Intent is
// the fine-grained scored label. The two may disagree for ambiguous text.
type IntentAnalysis struct {
	Intent                string          `json:"intent"`
	Pattern               string          `json:"pattern"`
	Confidence            float64         `json:"confidence"`
	Entities              []Entity        `json:"entities"`
	Cultural              CulturalContext `json:"cultural_context"`
	RequiresClarification bool            `json:"requires_clarification"`
	SuggestedQuestions    []string        `json:"suggested_questions"`
	Language              string          `json:"language"`
	Scores                []IntentScore   `json:"scores,omitempty"`
}

// FlowReply is what the dialogue state machine returns for one lookup.
type FlowReply struct {
	Message           string        `json:"message"`
	FollowUpQuestions []string      `json:"follow_up_questions"`
	CurrentState      DialogueState `json:"current_state"`
	NextState         DialogueState `json:"next_state"`
	Language          string        `json:"language"`
}

// TurnResponse is the outbound payload for one processed turn.
type TurnResponse struct {
	SessionID             string            `json:"session_id"`
	ResponseText          string            `json:"response"`
	Suggestions           []string          `json:"suggestions"`
	NextStep              string            `json:"next_step"`
	NextState             DialogueState     `json:"next_state"`
	Intent                string            `json:"intent"`
	Pattern               string            `json:"pattern"`
	Confidence            float64           `json:"confidence"`
	Entities              []Entity          `json:"entities"`
	RequiresClarification bool              `json:"requires_clarification"`
	SuggestedQuestions    []string          `json:"suggested_questions,omitempty"`
	SearchResults         []BusinessSummary `json:"search_results"`
	SearchMetadata        SearchMetadata    `json:"search_metadata"`
	MemoryPatch           map[string]any    `json:"memory_patch"`
	Language              string            `json:"language"`
}

// StateUpdate is the bookkeeping result for an out-of-band utterance/response
// pair recorded through ManageState.
type StateUpdate struct {
	Quality     string         `json:"conversation_quality"` // "good", "needs_improvement" or "unclear"
	MemoryPatch map[string]any `json:"memory_patch"`
}
