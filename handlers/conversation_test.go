package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"busimap/services/conversation"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) (*gin.Engine, conversation.Service) {
	t.Helper()

	svc := &conversation.DefaultConversationService{
		Sessions: conversation.NewSessionManager(nil),
		Flows:    conversation.NewFlowEngine(),
	}

	r := gin.New()
	r.POST("/api/conversation/session", StartSessionHandler(svc))
	r.GET("/api/conversation/session/:sessionID", GetSessionHandler(svc))
	r.POST("/api/conversation/chat", ChatHandler(svc))
	r.POST("/api/conversation/state", ManageStateHandler(svc))
	return r, svc
}

func postJSON(r *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestStartSessionEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	w := postJSON(r, "/api/conversation/session", map[string]string{"language": "rw"})
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body["session_id"])
	assert.Equal(t, "greeting", body["state"])
	assert.Equal(t, "rw", body["language"])
}

func TestChatEndpoint(t *testing.T) {
	r, svc := newTestRouter(t)
	session, err := svc.StartSession("en")
	require.NoError(t, err)

	t.Run("processes a turn", func(t *testing.T) {
		w := postJSON(r, "/api/conversation/chat", map[string]any{
			"session_id": session.ID,
			"message":    "I am hungry",
			"location":   map[string]any{"latitude": -1.9441, "longitude": 30.0619, "address": "Kigali"},
		})
		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, session.ID, body["session_id"])
		assert.Equal(t, "food_search", body["intent"])
		assert.NotEmpty(t, body["response"])
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		w := postJSON(r, "/api/conversation/chat", map[string]any{"message": "hello"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown session is a 404", func(t *testing.T) {
		w := postJSON(r, "/api/conversation/chat", map[string]any{
			"session_id": "missing",
			"message":    "hello",
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestManageStateEndpoint(t *testing.T) {
	r, svc := newTestRouter(t)
	session, err := svc.StartSession("en")
	require.NoError(t, err)

	w := postJSON(r, "/api/conversation/state", map[string]any{
		"session_id":      session.ID,
		"user_input":      "I want cheap food now",
		"system_response": "Here are some great restaurants near you",
		"intent":          "food_search",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "good", body["conversation_quality"])
}

func TestGetSessionEndpoint(t *testing.T) {
	r, svc := newTestRouter(t)
	session, err := svc.StartSession("en")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/conversation/session/"+session.ID, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, session.ID, body["session_id"])

	req = httptest.NewRequest(http.MethodGet, "/api/conversation/session/missing", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
