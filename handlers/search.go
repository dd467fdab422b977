package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"busimap/models"
	"busimap/services/search"
	"busimap/utils"
)

// SearchHandler runs a structured business search outside the conversational
// flow.
func SearchHandler(svc search.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var query models.SearchQuery
		if err := c.ShouldBindJSON(&query); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}
		if query.Text == "" && query.Category == "" {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", "either text or category is required")
			return
		}

		results, err := svc.Search(c.Request.Context(), query)
		if err != nil {
			logger.Error("Search failed", zap.Error(err), zap.String("query", query.Text))
			utils.JSONError(c, http.StatusInternalServerError, "Search failed", err.Error())
			return
		}

		c.JSON(http.StatusOK, results)
	}
}
