package handlers

import (
	"busimap/services/conversation"
	"busimap/services/search"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Conversation endpoints
	StartSession gin.HandlerFunc
	Chat         gin.HandlerFunc
	ManageState  gin.HandlerFunc
	GetSession   gin.HandlerFunc

	// Search endpoints
	SearchBusinesses gin.HandlerFunc
}

// NewHandlerBundle wires the services into their HTTP handlers.
func NewHandlerBundle(convSvc conversation.Service, searchSvc search.Service) *HandlerBundle {
	return &HandlerBundle{
		StartSession:     StartSessionHandler(convSvc),
		Chat:             ChatHandler(convSvc),
		ManageState:      ManageStateHandler(convSvc),
		GetSession:       GetSessionHandler(convSvc),
		SearchBusinesses: SearchHandler(searchSvc),
	}
}
