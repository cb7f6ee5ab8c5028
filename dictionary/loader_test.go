package dictionary

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"legalease-backend/analysis"
	"legalease-backend/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	mu      sync.Mutex
	data    map[string][]byte
	gets    atomic.Int32
	delay   time.Duration
	readErr error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{data: make(map[string][]byte)}
}

func (s *memoryStore) Get(ctx context.Context, category string) ([]byte, error) {
	s.gets.Add(1)
	time.Sleep(s.delay)
	if s.readErr != nil {
		return nil, s.readErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.data[category]
	if !ok {
		return nil, ErrNotFound
	}
	return data, nil
}

func (s *memoryStore) Put(ctx context.Context, category string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[category] = data
	return nil
}

func TestLoader_WritesDefaultsWhenMissing(t *testing.T) {
	store := newMemoryStore()

	catalog := NewLoader(store).Catalog(context.Background())

	assert.Equal(t, analysis.DefaultRiskKeywords(), catalog.RiskKeywords)
	assert.Equal(t, analysis.DefaultLegalTerms(), catalog.LegalTerms)
	require.Contains(t, store.data, CategoryRiskKeywords)
	require.Contains(t, store.data, CategoryLegalTerms)
	assert.Contains(t, string(store.data[CategoryLegalTerms]), "\n  \"")
}

func TestLoader_PreservesDocumentOrder(t *testing.T) {
	store := newMemoryStore()
	store.data[CategoryRiskKeywords] = []byte(`{"zeta": ["late fee"], "alpha": ["penalty", "fine"]}`)
	store.data[CategoryLegalTerms] = []byte(`{"subject": "topic", "subject to": "depending on"}`)

	catalog := NewLoader(store).Catalog(context.Background())

	assert.Equal(t, analysis.RiskKeywordSet{
		{Name: "zeta", Keywords: []string{"late fee"}},
		{Name: "alpha", Keywords: []string{"penalty", "fine"}},
	}, catalog.RiskKeywords)
	assert.Equal(t, analysis.LegalTermDictionary{
		{Term: "subject", Plain: "topic"},
		{Term: "subject to", Plain: "depending on"},
	}, catalog.LegalTerms)
}

func TestLoader_CorruptDictionaryFallsBackToEmpty(t *testing.T) {
	store := newMemoryStore()
	store.data[CategoryRiskKeywords] = []byte(`{not json`)
	store.data[CategoryLegalTerms] = []byte(`{"herein": 42}`)

	catalog := NewLoader(store).Catalog(context.Background())

	assert.NotNil(t, catalog.RiskKeywords)
	assert.Empty(t, catalog.RiskKeywords)
	assert.Empty(t, catalog.LegalTerms)
	assert.Equal(t, []analysis.RiskyClause{}, analysis.NewDetector(catalog).Detect("automatic renewal applies"))
}

func TestLoader_ReadFailureFallsBackToEmpty(t *testing.T) {
	store := newMemoryStore()
	store.readErr = errors.New("disk on fire")

	catalog := NewLoader(store).Catalog(context.Background())

	assert.Empty(t, catalog.RiskKeywords)
	assert.Empty(t, catalog.LegalTerms)
	assert.Empty(t, store.data, "defaults must not overwrite an unreadable store")
}

func TestLoader_ConcurrentFirstCallsLoadOnce(t *testing.T) {
	store := newMemoryStore()
	store.delay = 20 * time.Millisecond
	loader := NewLoader(store)

	var wg sync.WaitGroup
	results := make([]*analysis.Catalog, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = loader.Catalog(context.Background())
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(2), store.gets.Load(), "one read per catalog category")
	for _, c := range results {
		assert.Same(t, results[0], c)
	}
}

func TestLoader_CarriesOptions(t *testing.T) {
	thresholds := analysis.Thresholds{Low: 0.2, Medium: 0.5, High: 0.9}

	catalog := NewLoader(newMemoryStore(),
		WithThresholds(thresholds),
		WithTermOrder(analysis.TermOrderLongestFirst),
	).Catalog(context.Background())

	assert.Equal(t, thresholds, catalog.Thresholds)
	assert.Equal(t, analysis.TermOrderLongestFirst, catalog.TermOrder)
	assert.Equal(t, analysis.DefaultRiskWeights(), catalog.RiskWeights)
}

func TestLoader_QuizDefaults(t *testing.T) {
	store := newMemoryStore()

	quiz := NewLoader(store).Quiz(context.Background())

	require.Len(t, quiz, 5)
	assert.Equal(t, 1, quiz[0].CorrectAnswer)
	assert.Contains(t, store.data, CategoryLegalQuiz)
}

func TestLoader_QuizDropsUnanswerableQuestions(t *testing.T) {
	store := newMemoryStore()
	store.data[CategoryLegalQuiz] = []byte(`[
		{"question": "Valid?", "options": ["no", "yes"], "correct_answer": 1, "explanation": "yes"},
		{"question": "Out of range?", "options": ["a"], "correct_answer": 3},
		{"question": "", "options": ["a"], "correct_answer": 0}
	]`)

	quiz := NewLoader(store).Quiz(context.Background())

	require.Len(t, quiz, 1)
	assert.Equal(t, "Valid?", quiz[0].Question)
}

func TestEnsureDefaults(t *testing.T) {
	store := newMemoryStore()
	store.data[CategoryLegalTerms] = []byte(`{}`)

	created, err := EnsureDefaults(context.Background(), store)

	require.NoError(t, err)
	assert.Equal(t, []string{CategoryRiskKeywords, CategoryLegalQuiz}, created)
	assert.Equal(t, []byte(`{}`), store.data[CategoryLegalTerms])
}

func TestDefaultDocument_UnknownCategory(t *testing.T) {
	_, err := DefaultDocument("nope")

	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestEncodeRiskKeywords_KeepsOrder(t *testing.T) {
	data, err := EncodeRiskKeywords(analysis.DefaultRiskKeywords())
	require.NoError(t, err)

	decoded, err := DecodeRiskKeywords(data)
	require.NoError(t, err)
	assert.Equal(t, analysis.DefaultRiskKeywords(), decoded)
	assert.True(t, json.Valid(data))
}

func TestObjectStore_LocalStorage(t *testing.T) {
	ctx := context.Background()
	local, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	store := NewObjectStore(local)

	_, err = store.Get(ctx, CategoryLegalTerms)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Put(ctx, CategoryLegalTerms, []byte(`{"herein": "in this"}`)))
	data, err := store.Get(ctx, CategoryLegalTerms)
	require.NoError(t, err)
	assert.Equal(t, `{"herein": "in this"}`, string(data))
}
