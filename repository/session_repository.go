package repository

import (
	"context"
	"errors"
	"maps"
	"slices"
	"sync"
	"time"

	"legalease-backend/models"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a record does not exist
var ErrNotFound = errors.New("record not found")

// session is the in-memory state of one client
type session struct {
	documents   []*models.DocumentRecord
	activeID    *uuid.UUID
	chatHistory []models.ChatMessage
	updatedAt   time.Time
}

// SessionRepository keeps per-session documents and chat history in memory.
// Records are copied on the way in and out so callers never share them.
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*session
}

// NewSessionRepository creates an empty session repository
func NewSessionRepository() *SessionRepository {
	return &SessionRepository{sessions: make(map[string]*session)}
}

func (r *SessionRepository) getOrCreate(sessionID string) *session {
	s, ok := r.sessions[sessionID]
	if !ok {
		s = &session{}
		r.sessions[sessionID] = s
	}
	s.updatedAt = time.Now()
	return s
}

// AddDocument stores a document in the session and makes it the active one
func (r *SessionRepository) AddDocument(ctx context.Context, sessionID string, doc *models.DocumentRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.getOrCreate(sessionID)
	s.documents = append(s.documents, cloneRecord(doc))
	id := doc.ID
	s.activeID = &id
	return nil
}

// UpdateDocument replaces a stored document with the same ID
func (r *SessionRepository) UpdateDocument(ctx context.Context, sessionID string, doc *models.DocumentRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		return ErrNotFound
	}
	for i, existing := range s.documents {
		if existing.ID == doc.ID {
			s.documents[i] = cloneRecord(doc)
			s.updatedAt = time.Now()
			return nil
		}
	}
	return ErrNotFound
}

// GetDocument retrieves a document by ID
func (r *SessionRepository) GetDocument(ctx context.Context, sessionID string, id uuid.UUID) (*models.DocumentRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		return nil, ErrNotFound
	}
	for _, doc := range s.documents {
		if doc.ID == id {
			return cloneRecord(doc), nil
		}
	}
	return nil, ErrNotFound
}

// FindByChecksum returns the session's document with the given checksum
func (r *SessionRepository) FindByChecksum(ctx context.Context, sessionID, checksum string) (*models.DocumentRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		return nil, ErrNotFound
	}
	for _, doc := range s.documents {
		if doc.Checksum == checksum {
			return cloneRecord(doc), nil
		}
	}
	return nil, ErrNotFound
}

// ListDocuments returns the session's documents in the order they were added
func (r *SessionRepository) ListDocuments(ctx context.Context, sessionID string) ([]*models.DocumentRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		return []*models.DocumentRecord{}, nil
	}
	docs := make([]*models.DocumentRecord, 0, len(s.documents))
	for _, doc := range s.documents {
		docs = append(docs, cloneRecord(doc))
	}
	return docs, nil
}

// ActiveDocumentID returns the most recently added document still in the session
func (r *SessionRepository) ActiveDocumentID(ctx context.Context, sessionID string) (*uuid.UUID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[sessionID]
	if !ok || s.activeID == nil {
		return nil, ErrNotFound
	}
	id := *s.activeID
	return &id, nil
}

// DeleteDocument removes a document from the session
func (r *SessionRepository) DeleteDocument(ctx context.Context, sessionID string, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		return ErrNotFound
	}
	idx := slices.IndexFunc(s.documents, func(d *models.DocumentRecord) bool { return d.ID == id })
	if idx < 0 {
		return ErrNotFound
	}
	s.documents = slices.Delete(s.documents, idx, idx+1)

	if s.activeID != nil && *s.activeID == id {
		s.activeID = nil
		if n := len(s.documents); n > 0 {
			last := s.documents[n-1].ID
			s.activeID = &last
		}
	}
	s.updatedAt = time.Now()
	return nil
}

// AppendChat adds messages to the session's chat history
func (r *SessionRepository) AppendChat(ctx context.Context, sessionID string, msgs ...models.ChatMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.getOrCreate(sessionID)
	s.chatHistory = append(s.chatHistory, msgs...)
	return nil
}

// ChatHistory returns a copy of the session's chat history
func (r *SessionRepository) ChatHistory(ctx context.Context, sessionID string) ([]models.ChatMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		return []models.ChatMessage{}, nil
	}
	return slices.Clone(s.chatHistory), nil
}

// Clear drops everything held for a session
func (r *SessionRepository) Clear(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, sessionID)
	return nil
}

// PruneIdle drops sessions untouched for longer than maxIdle and returns how many were removed
func (r *SessionRepository) PruneIdle(maxIdle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := time.Now().Add(-maxIdle)
	removed := 0
	for id, s := range r.sessions {
		if s.updatedAt.Before(cutoff) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

func cloneRecord(doc *models.DocumentRecord) *models.DocumentRecord {
	out := *doc
	out.RiskyClauses = slices.Clone(doc.RiskyClauses)
	out.Translations = maps.Clone(doc.Translations)
	return &out
}
