package search

import (
	"context"
	"time"

	"busimap/models"
	"busimap/services/language"

	"go.uber.org/zap"
)

// maxConversationalResults caps how many hits get compacted for chat display.
const maxConversationalResults = 5

// searchBearingPatterns are the conversation patterns that trigger a search.
var searchBearingPatterns = map[string]bool{
	"food_search":      true,
	"transport_search": true,
	"emergency_help":   true,
	"shopping_search":  true,
	"health_search":    true,
}

// fallbackQueryTerm resolves a query term when no business_type entity was
// extracted for a search-bearing pattern.
var fallbackQueryTerm = map[string]string{
	"food_search":      "restaurant",
	"transport_search": "transport",
	"emergency_help":   "garage",
	"shopping_search":  "shop",
	"health_search":    "hospital",
}

// IsSearchBearing reports whether a conversation pattern should trigger the
// search collaborator.
func IsSearchBearing(pattern string) bool {
	return searchBearingPatterns[pattern]
}

// Outcome is what the bridge hands back to the orchestrator. Degraded marks a
// collaborator failure downgraded to an empty result set; the orchestrator
// consumes it unconditionally and never sees an error.
type Outcome struct {
	Results  []models.BusinessSummary `json:"results"`
	Metadata models.SearchMetadata    `json:"metadata"`
	Degraded bool                     `json:"-"`
}

// ContextualBridge translates an analyzed turn into a structured query and
// compacts the collaborator's top hits for conversational rendering.
type ContextualBridge struct {
	Search  Service
	Timeout time.Duration
}

func NewContextualBridge(svc Service, timeout time.Duration) *ContextualBridge {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &ContextualBridge{Search: svc, Timeout: timeout}
}

// Lookup runs the contextual search for one turn. Any collaborator failure,
// including a timeout, degrades to an empty outcome: search must never abort
// the conversation.
func (b *ContextualBridge) Lookup(ctx context.Context, pattern, lang string, entities []models.Entity, location *models.UserLocation) Outcome {
	term := b.resolveTerm(pattern, entities)

	query := models.SearchQuery{
		Text:     term,
		Language: lang,
		Location: location,
		Category: term,
		SortBy:   "relevance",
		Page:     1,
	}

	ctx, cancel := context.WithTimeout(ctx, b.Timeout)
	defer cancel()

	resultSet, err := b.Search.Search(ctx, query)
	if err != nil {
		zap.L().Warn("contextual search degraded",
			zap.String("pattern", pattern),
			zap.String("term", term),
			zap.Error(err))
		return Outcome{Results: []models.BusinessSummary{}, Metadata: models.SearchMetadata{}, Degraded: true}
	}

	top := resultSet.Results
	if len(top) > maxConversationalResults {
		top = top[:maxConversationalResults]
	}

	summaries := make([]models.BusinessSummary, 0, len(top))
	for _, r := range top {
		summaries = append(summaries, models.BusinessSummary{
			ID:         r.ID,
			Name:       r.Name,
			Category:   r.Category,
			Address:    r.Address,
			District:   r.District,
			Phone:      r.Phone,
			Rating:     r.Rating,
			PriceRange: r.PriceRange,
			Latitude:   r.Latitude,
			Longitude:  r.Longitude,
			Reason:     r.Reason,
		})
	}

	metadata := resultSet.Metadata
	if metadata.TotalFound == 0 {
		metadata.TotalFound = resultSet.TotalFound
	}
	if metadata.Query == "" {
		metadata.Query = language.TranslateTerm(term, lang)
	}

	return Outcome{Results: summaries, Metadata: metadata}
}

// resolveTerm picks the query term: the first business_type entity wins, then
// the per-pattern fallback, then a generic term.
func (b *ContextualBridge) resolveTerm(pattern string, entities []models.Entity) string {
	for _, entity := range entities {
		if entity.Type == models.EntityBusinessType && entity.Value != "" {
			return entity.Value
		}
	}
	if term, ok := fallbackQueryTerm[pattern]; ok {
		return term
	}
	return "business"
}
