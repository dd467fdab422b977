package conversation

import (
	"context"
	"errors"
	"sync"
	"time"

	"busimap/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HistoryLimit bounds a session's turn history. The oldest turn is evicted
// when an append would exceed it.
const HistoryLimit = 10

// SessionManager owns the bounded turn history and memory map of every
// session. Mutations for one session are serialized behind a per-session
// lock; different sessions proceed in parallel.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*sessionEntry

	// Store, when set, receives a snapshot after every committed mutation
	// and backfills sessions not found in memory. Snapshot failures are
	// logged, never surfaced: persistence is best-effort by contract.
	Store SessionStore
}

type sessionEntry struct {
	mu      sync.Mutex
	session *models.Session
}

func NewSessionManager(store SessionStore) *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*sessionEntry),
		Store:    store,
	}
}

// Create registers a new session in the greeting state.
func (m *SessionManager) Create(lang string) *models.Session {
	now := time.Now().UTC()
	session := &models.Session{
		ID:           uuid.NewString(),
		State:        models.StateGreeting,
		Language:     lang,
		History:      []models.Turn{},
		Memory:       make(map[string]any),
		CreatedAt:    now,
		LastActivity: now,
	}

	m.mu.Lock()
	m.sessions[session.ID] = &sessionEntry{session: session}
	m.mu.Unlock()

	m.snapshot(session)
	return m.clone(session)
}

// Get returns a copy of the session's current state.
func (m *SessionManager) Get(sessionID string) (*models.Session, error) {
	entry, err := m.entry(sessionID)
	if err != nil {
		return nil, err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	return m.clone(entry.session), nil
}

// With runs fn under the session's lock, then snapshots the mutated session.
// Concurrent calls for the same session serialize; this is the single-writer
// guarantee that keeps bounded history ordering intact.
func (m *SessionManager) With(sessionID string, fn func(*models.Session) error) error {
	entry, err := m.entry(sessionID)
	if err != nil {
		return err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if err := fn(entry.session); err != nil {
		return err
	}
	m.snapshot(entry.session)
	return nil
}

func (m *SessionManager) entry(sessionID string) (*sessionEntry, error) {
	m.mu.RLock()
	entry, ok := m.sessions[sessionID]
	m.mu.RUnlock()
	if ok {
		return entry, nil
	}

	// Fall back to the snapshot store before declaring the handle invalid.
	if m.Store != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		session, err := m.Store.Load(ctx, sessionID)
		if err == nil && session != nil {
			m.mu.Lock()
			if existing, ok := m.sessions[sessionID]; ok {
				m.mu.Unlock()
				return existing, nil
			}
			entry = &sessionEntry{session: session}
			m.sessions[sessionID] = entry
			m.mu.Unlock()
			return entry, nil
		}
		if err != nil && !errors.Is(err, ErrSnapshotMissing) {
			zap.L().Warn("session snapshot load failed", zap.String("sessionId", sessionID), zap.Error(err))
		}
	}

	return nil, SessionNotFoundError{SessionID: sessionID}
}

func (m *SessionManager) snapshot(session *models.Session) {
	if m.Store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := m.Store.Save(ctx, session); err != nil {
		zap.L().Warn("session snapshot save failed", zap.String("sessionId", session.ID), zap.Error(err))
	}
}

func (m *SessionManager) clone(session *models.Session) *models.Session {
	out := *session
	out.History = append([]models.Turn(nil), session.History...)
	out.Memory = make(map[string]any, len(session.Memory))
	for k, v := range session.Memory {
		out.Memory[k] = v
	}
	if session.LastLocation != nil {
		loc := *session.LastLocation
		out.LastLocation = &loc
	}
	return &out
}

// AppendTurn pushes a turn onto the session history, evicting the oldest
// entry once the bound is exceeded. Caller must hold the session lock.
func AppendTurn(session *models.Session, turn models.Turn) {
	session.History = append(session.History, turn)
	if len(session.History) > HistoryLimit {
		session.History = session.History[len(session.History)-HistoryLimit:]
	}
	session.TotalTurns++
	session.LastActivity = turn.Timestamp
}

// UpdateMemory merges a patch into the session memory map, last write wins
// per key. Caller must hold the session lock.
func UpdateMemory(session *models.Session, patch map[string]any) {
	if session.Memory == nil {
		session.Memory = make(map[string]any, len(patch))
	}
	for k, v := range patch {
		session.Memory[k] = v
	}
}
