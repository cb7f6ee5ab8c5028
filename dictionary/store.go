// Package dictionary loads the editable keyword and term tables that feed the
// analysis catalog, creating documented defaults the first time a table is
// missing from its store.
package dictionary

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"legalease-backend/storage"
)

// Dictionary categories
const (
	CategoryRiskKeywords = "risk_keywords"
	CategoryLegalTerms   = "legal_terms"
	CategoryLegalQuiz    = "legal_quiz"
)

// Categories lists every category the loader knows a default for
var Categories = []string{CategoryRiskKeywords, CategoryLegalTerms, CategoryLegalQuiz}

var (
	ErrNotFound        = errors.New("dictionary not found")
	ErrUnknownCategory = errors.New("unknown dictionary category")
)

// Store persists raw dictionary documents by category
type Store interface {
	// Get returns the stored JSON for category or ErrNotFound
	Get(ctx context.Context, category string) ([]byte, error)

	// Put replaces the stored JSON for category
	Put(ctx context.Context, category string, data []byte) error
}

// ObjectStore keeps dictionaries as JSON objects in a storage backend
type ObjectStore struct {
	storage storage.Storage
}

// NewObjectStore creates a dictionary store on top of object storage
func NewObjectStore(s storage.Storage) *ObjectStore {
	return &ObjectStore{storage: s}
}

// ObjectKey returns the storage key for a category
func ObjectKey(category string) string {
	return "dictionaries/" + category + ".json"
}

// Get reads a dictionary object
func (s *ObjectStore) Get(ctx context.Context, category string) ([]byte, error) {
	rc, err := s.storage.Get(ctx, ObjectKey(category))
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read dictionary %s: %w", category, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionary %s: %w", category, err)
	}
	return data, nil
}

// Put writes a dictionary object
func (s *ObjectStore) Put(ctx context.Context, category string, data []byte) error {
	if err := s.storage.Put(ctx, ObjectKey(category), bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write dictionary %s: %w", category, err)
	}
	return nil
}
