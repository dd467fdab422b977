package search

import (
	"context"
	"fmt"

	"busimap/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const searchPageSize = 20

// MongoSearchService is the default Search collaborator, backed by the
// businesses collection.
type MongoSearchService struct {
	Coll *mongo.Collection
}

func NewMongoSearchService(coll *mongo.Collection) *MongoSearchService {
	return &MongoSearchService{Coll: coll}
}

func (s *MongoSearchService) Search(ctx context.Context, query models.SearchQuery) (*models.SearchResultSet, error) {
	filter := bson.M{}
	if query.Text != "" {
		filter["$or"] = bson.A{
			bson.M{"name": bson.M{"$regex": query.Text, "$options": "i"}},
			bson.M{"description": bson.M{"$regex": query.Text, "$options": "i"}},
			bson.M{"category": bson.M{"$regex": query.Text, "$options": "i"}},
		}
	}
	if query.Category != "" {
		filter["category"] = bson.M{"$regex": query.Category, "$options": "i"}
	}

	total, err := s.Coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count businesses: %w", err)
	}

	page := query.Page
	if page < 1 {
		page = 1
	}
	opts := options.Find().
		SetSort(sortSpec(query.SortBy)).
		SetSkip(int64((page - 1) * searchPageSize)).
		SetLimit(searchPageSize)

	cursor, err := s.Coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("search businesses: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.BusinessResult
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("decode businesses: %w", err)
	}

	for i := range results {
		results[i].Reason = recommendationReason(&results[i].Business, query.Language)
	}

	return &models.SearchResultSet{
		Results:    results,
		TotalFound: int(total),
		Metadata: models.SearchMetadata{
			TotalFound:  int(total),
			Query:       query.Text,
			Suggestions: querySuggestions(query.Text, query.Language),
		},
	}, nil
}

func sortSpec(sortBy string) bson.D {
	switch sortBy {
	case "rating":
		return bson.D{{Key: "rating", Value: -1}, {Key: "reviews", Value: -1}}
	case "name":
		return bson.D{{Key: "name", Value: 1}}
	default: // relevance
		return bson.D{{Key: "viewCount", Value: -1}, {Key: "rating", Value: -1}}
	}
}

// recommendationReason attaches a short localized explanation to a hit.
func recommendationReason(b *models.Business, lang string) string {
	switch {
	case b.Rating >= 4.5:
		if lang == "rw" {
			return "Ikunzwe cyane n'abakiriya"
		}
		return "Highly rated by customers"
	case b.Verified:
		if lang == "rw" {
			return "Ubucuruzi bwemejwe"
		}
		return "Verified business"
	default:
		return ""
	}
}

func querySuggestions(text, lang string) []string {
	if text == "" {
		return nil
	}
	if lang == "rw" {
		return []string{text + " hafi yanjye", text + " nziza"}
	}
	return []string{text + " near me", "best " + text}
}
