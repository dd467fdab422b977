package conversation

// SessionNotFoundError signals a caller-supplied session handle that does not
// exist. This is the only condition the engine surfaces as a hard failure:
// session state cannot be fabricated safely.
type SessionNotFoundError struct {
	SessionID string
}

func (e SessionNotFoundError) Error() string {
	return "conversation session not found: " + e.SessionID
}
