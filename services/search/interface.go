// Package search exposes the business-search collaborator consumed by the
// conversation engine, a Mongo-backed default implementation, and the
// contextual bridge that turns an analyzed turn into a compacted result set.
package search

import (
	"context"

	"busimap/models"
)

// Service is the search collaborator interface. The ranking algorithm behind
// it is external to the conversation engine; only the query/result contract
// is fixed here.
type Service interface {
	Search(ctx context.Context, query models.SearchQuery) (*models.SearchResultSet, error)
}
