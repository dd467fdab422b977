package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"busimap/models"
	"busimap/services/conversation"
	"busimap/utils"
)

// StartSessionHandler opens a fresh conversation session.
func StartSessionHandler(svc conversation.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var input struct {
			Language string `json:"language"`
		}
		// Body is optional; an empty body starts an English session.
		_ = c.ShouldBindJSON(&input)

		session, err := svc.StartSession(input.Language)
		if err != nil {
			logger.Error("Failed to start session", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to start session", err.Error())
			return
		}

		c.JSON(http.StatusOK, session)
	}
}

// ChatHandler processes one user utterance end to end.
func ChatHandler(svc conversation.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var input struct {
			SessionID string               `json:"session_id" binding:"required"`
			Message   string               `json:"message" binding:"required"`
			Location  *models.UserLocation `json:"location"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}

		resp, err := svc.ProcessTurn(c.Request.Context(), input.SessionID, input.Message, input.Location)
		if err != nil {
			var notFound conversation.SessionNotFoundError
			if errors.As(err, &notFound) {
				utils.JSONError(c, http.StatusNotFound, "Session not found", notFound.SessionID)
				return
			}
			logger.Error("Failed to process turn", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to process message", err.Error())
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}

// ManageStateHandler records an externally produced exchange on a session.
func ManageStateHandler(svc conversation.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var input struct {
			SessionID      string `json:"session_id" binding:"required"`
			UserInput      string `json:"user_input" binding:"required"`
			SystemResponse string `json:"system_response"`
			Intent         string `json:"intent"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}

		update, err := svc.ManageState(input.SessionID, input.UserInput, input.SystemResponse, input.Intent)
		if err != nil {
			var notFound conversation.SessionNotFoundError
			if errors.As(err, &notFound) {
				utils.JSONError(c, http.StatusNotFound, "Session not found", notFound.SessionID)
				return
			}
			logger.Error("Failed to manage state", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to manage state", err.Error())
			return
		}

		c.JSON(http.StatusOK, update)
	}
}

// GetSessionHandler returns the current state of a session.
func GetSessionHandler(svc conversation.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("sessionID")

		session, err := svc.GetSession(sessionID)
		if err != nil {
			var notFound conversation.SessionNotFoundError
			if errors.As(err, &notFound) {
				utils.JSONError(c, http.StatusNotFound, "Session not found", notFound.SessionID)
				return
			}
			getLogger(c).Error("Failed to fetch session", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch session", err.Error())
			return
		}

		c.JSON(http.StatusOK, session)
	}
}
