package search

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"busimap/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	set  *models.SearchResultSet
	err  error
	last models.SearchQuery
}

func (s *stubService) Search(_ context.Context, q models.SearchQuery) (*models.SearchResultSet, error) {
	s.last = q
	if s.err != nil {
		return nil, s.err
	}
	return s.set, nil
}

func resultSet(n int) *models.SearchResultSet {
	results := make([]models.BusinessResult, 0, n)
	for i := 0; i < n; i++ {
		results = append(results, models.BusinessResult{
			Business: models.Business{
				ID:       fmt.Sprintf("biz-%d", i),
				Name:     fmt.Sprintf("Business %d", i),
				Category: "restaurant",
				Address:  "KN 4 Ave",
				Phone:    "+250780000000",
				Rating:   4.2,
			},
			Reason: "Highly rated by customers",
		})
	}
	return &models.SearchResultSet{Results: results, TotalFound: n}
}

func TestIsSearchBearing(t *testing.T) {
	for _, pattern := range []string{"food_search", "transport_search", "emergency_help", "shopping_search", "health_search"} {
		assert.True(t, IsSearchBearing(pattern), pattern)
	}
	// search_business is a scored intent, not a conversation pattern; the
	// coarse detector never emits it, so it does not trigger a search.
	assert.False(t, IsSearchBearing("search_business"))
	assert.False(t, IsSearchBearing("greeting"))
	assert.False(t, IsSearchBearing("general_inquiry"))
	assert.False(t, IsSearchBearing(""))
}

func TestLookupQueryTerm(t *testing.T) {
	t.Run("business type entity wins", func(t *testing.T) {
		stub := &stubService{set: resultSet(1)}
		bridge := NewContextualBridge(stub, time.Second)

		entities := []models.Entity{
			{Type: models.EntityLocation, Confidence: 1.0},
			{Type: models.EntityBusinessType, Value: "garage", Confidence: 0.8},
		}
		bridge.Lookup(context.Background(), "food_search", "en", entities, nil)
		assert.Equal(t, "garage", stub.last.Text)
	})

	t.Run("pattern fallback without entities", func(t *testing.T) {
		cases := map[string]string{
			"food_search":      "restaurant",
			"transport_search": "transport",
			"emergency_help":   "garage",
			"shopping_search":  "shop",
			"health_search":    "hospital",
		}
		for pattern, want := range cases {
			stub := &stubService{set: resultSet(1)}
			bridge := NewContextualBridge(stub, time.Second)
			bridge.Lookup(context.Background(), pattern, "en", nil, nil)
			assert.Equal(t, want, stub.last.Text, pattern)
		}
	})

	t.Run("generic term for unknown pattern", func(t *testing.T) {
		stub := &stubService{set: resultSet(1)}
		bridge := NewContextualBridge(stub, time.Second)
		bridge.Lookup(context.Background(), "something_else", "en", nil, nil)
		assert.Equal(t, "business", stub.last.Text)
	})
}

func TestLookupBuildsStructuredQuery(t *testing.T) {
	stub := &stubService{set: resultSet(1)}
	bridge := NewContextualBridge(stub, time.Second)
	loc := &models.UserLocation{Latitude: -1.94, Longitude: 30.06}

	bridge.Lookup(context.Background(), "food_search", "rw", nil, loc)

	assert.Equal(t, "rw", stub.last.Language)
	assert.Equal(t, "relevance", stub.last.SortBy)
	assert.Equal(t, 1, stub.last.Page)
	assert.Equal(t, loc, stub.last.Location)
}

func TestLookupLocalizesMetadataQuery(t *testing.T) {
	stub := &stubService{set: resultSet(2)}
	bridge := NewContextualBridge(stub, time.Second)

	outcome := bridge.Lookup(context.Background(), "food_search", "rw", nil, nil)
	assert.Equal(t, "restoran", outcome.Metadata.Query)

	outcome = bridge.Lookup(context.Background(), "food_search", "en", nil, nil)
	assert.Equal(t, "restaurant", outcome.Metadata.Query)
}

func TestLookupCompactsToTopFive(t *testing.T) {
	stub := &stubService{set: resultSet(9)}
	bridge := NewContextualBridge(stub, time.Second)

	outcome := bridge.Lookup(context.Background(), "food_search", "en", nil, nil)

	require.Len(t, outcome.Results, 5)
	assert.False(t, outcome.Degraded)
	assert.Equal(t, 9, outcome.Metadata.TotalFound)

	first := outcome.Results[0]
	assert.Equal(t, "biz-0", first.ID)
	assert.Equal(t, "Business 0", first.Name)
	assert.Equal(t, "restaurant", first.Category)
	assert.Equal(t, "Highly rated by customers", first.Reason)
}

func TestLookupDegradesOnError(t *testing.T) {
	stub := &stubService{err: errors.New("backend unavailable")}
	bridge := NewContextualBridge(stub, time.Second)

	outcome := bridge.Lookup(context.Background(), "food_search", "en", nil, nil)

	assert.True(t, outcome.Degraded)
	assert.NotNil(t, outcome.Results)
	assert.Empty(t, outcome.Results)
	assert.Zero(t, outcome.Metadata.TotalFound)
}

func TestSortSpec(t *testing.T) {
	assert.Equal(t, "rating", sortSpec("rating")[0].Key)
	assert.Equal(t, "name", sortSpec("name")[0].Key)
	assert.Equal(t, "viewCount", sortSpec("relevance")[0].Key)
	assert.Equal(t, "viewCount", sortSpec("")[0].Key)
}

func TestRecommendationReason(t *testing.T) {
	highlyRated := &models.Business{Rating: 4.7}
	assert.Equal(t, "Highly rated by customers", recommendationReason(highlyRated, "en"))
	assert.Equal(t, "Ikunzwe cyane n'abakiriya", recommendationReason(highlyRated, "rw"))

	verified := &models.Business{Rating: 4.0, Verified: true}
	assert.Equal(t, "Verified business", recommendationReason(verified, "en"))

	plain := &models.Business{Rating: 3.0}
	assert.Empty(t, recommendationReason(plain, "en"))
}

func TestQuerySuggestions(t *testing.T) {
	assert.Equal(t, []string{"restaurant near me", "best restaurant"}, querySuggestions("restaurant", "en"))
	assert.Equal(t, []string{"restoran hafi yanjye", "restoran nziza"}, querySuggestions("restoran", "rw"))
	assert.Nil(t, querySuggestions("", "en"))
}
