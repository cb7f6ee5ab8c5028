package dictionary

import (
	"context"
	"errors"
	"sync"

	"legalease-backend/analysis"
	"legalease-backend/metrics"
	"legalease-backend/models"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// Loader builds the analysis catalog and quiz from a Store. Each is loaded
// once on first use and cached for the lifetime of the Loader.
type Loader struct {
	store      Store
	logger     *zap.Logger
	thresholds analysis.Thresholds
	weights    analysis.RiskWeightTable
	termOrder  analysis.TermOrder

	group   singleflight.Group
	mu      sync.RWMutex
	catalog *analysis.Catalog
	quiz    []models.QuizQuestion
}

// LoaderOption is a functional option for Loader
type LoaderOption func(*Loader)

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) LoaderOption {
	return func(l *Loader) {
		l.logger = logger
	}
}

// WithThresholds sets the score thresholds carried in the catalog
func WithThresholds(t analysis.Thresholds) LoaderOption {
	return func(l *Loader) {
		l.thresholds = t
	}
}

// WithRiskWeights overrides the default risk weight table
func WithRiskWeights(w analysis.RiskWeightTable) LoaderOption {
	return func(l *Loader) {
		l.weights = w
	}
}

// WithTermOrder sets the simplifier's term conflict policy
func WithTermOrder(order analysis.TermOrder) LoaderOption {
	return func(l *Loader) {
		l.termOrder = order
	}
}

// NewLoader creates a loader over store
func NewLoader(store Store, opts ...LoaderOption) *Loader {
	l := &Loader{
		store:      store,
		logger:     zap.NewNop(),
		thresholds: analysis.DefaultThresholds(),
		weights:    analysis.DefaultRiskWeights(),
		termOrder:  analysis.TermOrderInsertion,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Catalog returns the cached catalog, loading it on the first call.
// Concurrent first calls share a single load.
func (l *Loader) Catalog(ctx context.Context) *analysis.Catalog {
	l.mu.RLock()
	cached := l.catalog
	l.mu.RUnlock()
	if cached != nil {
		return cached
	}

	v, _, _ := l.group.Do("catalog", func() (interface{}, error) {
		l.mu.RLock()
		cached := l.catalog
		l.mu.RUnlock()
		if cached != nil {
			return cached, nil
		}

		catalog := l.loadCatalog(context.WithoutCancel(ctx))

		l.mu.Lock()
		l.catalog = catalog
		l.mu.Unlock()
		return catalog, nil
	})
	return v.(*analysis.Catalog)
}

// Quiz returns the cached quiz questions, loading them on the first call
func (l *Loader) Quiz(ctx context.Context) []models.QuizQuestion {
	l.mu.RLock()
	cached := l.quiz
	l.mu.RUnlock()
	if cached != nil {
		return cached
	}

	v, _, _ := l.group.Do("quiz", func() (interface{}, error) {
		l.mu.RLock()
		cached := l.quiz
		l.mu.RUnlock()
		if cached != nil {
			return cached, nil
		}

		data := l.fetch(context.WithoutCancel(ctx), CategoryLegalQuiz)
		quiz, err := DecodeQuiz(data)
		if err != nil {
			l.logger.Error("Falling back to empty quiz", zap.Error(err))
			metrics.DictionaryLoads.WithLabelValues(CategoryLegalQuiz, metrics.SourceFallback).Inc()
		}
		if quiz == nil {
			quiz = []models.QuizQuestion{}
		}

		l.mu.Lock()
		l.quiz = quiz
		l.mu.Unlock()
		return quiz, nil
	})
	return v.([]models.QuizQuestion)
}

func (l *Loader) loadCatalog(ctx context.Context) *analysis.Catalog {
	var (
		keywords analysis.RiskKeywordSet
		terms    analysis.LegalTermDictionary
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		set, err := DecodeRiskKeywords(l.fetch(gctx, CategoryRiskKeywords))
		if err != nil {
			l.logger.Error("Falling back to empty risk keywords", zap.Error(err))
			metrics.DictionaryLoads.WithLabelValues(CategoryRiskKeywords, metrics.SourceFallback).Inc()
			set = analysis.RiskKeywordSet{}
		}
		keywords = set
		return nil
	})
	g.Go(func() error {
		dict, err := DecodeLegalTerms(l.fetch(gctx, CategoryLegalTerms))
		if err != nil {
			l.logger.Error("Falling back to empty legal terms", zap.Error(err))
			metrics.DictionaryLoads.WithLabelValues(CategoryLegalTerms, metrics.SourceFallback).Inc()
			dict = analysis.LegalTermDictionary{}
		}
		terms = dict
		return nil
	})
	_ = g.Wait()

	l.logger.Info("Analysis catalog loaded",
		zap.Int("risk_categories", len(keywords)),
		zap.Int("legal_terms", len(terms)),
		zap.String("term_order", string(l.termOrder)))

	return &analysis.Catalog{
		RiskKeywords: keywords,
		RiskWeights:  l.weights,
		Thresholds:   l.thresholds,
		LegalTerms:   terms,
		TermOrder:    l.termOrder,
	}
}

// fetch returns the stored document for category, writing the default when
// the store has none. A nil result means the category could not be read.
func (l *Loader) fetch(ctx context.Context, category string) []byte {
	data, err := l.store.Get(ctx, category)
	if err == nil {
		metrics.DictionaryLoads.WithLabelValues(category, metrics.SourceStore).Inc()
		return data
	}
	if !errors.Is(err, ErrNotFound) {
		l.logger.Error("Failed to read dictionary", zap.String("category", category), zap.Error(err))
		return nil
	}

	data, err = DefaultDocument(category)
	if err != nil {
		l.logger.Error("Failed to encode default dictionary", zap.String("category", category), zap.Error(err))
		return nil
	}
	if err := l.store.Put(ctx, category, data); err != nil {
		l.logger.Warn("Failed to persist default dictionary", zap.String("category", category), zap.Error(err))
	} else {
		l.logger.Info("Created default dictionary", zap.String("category", category))
	}
	metrics.DictionaryLoads.WithLabelValues(category, metrics.SourceDefault).Inc()
	return data
}

// EnsureDefaults writes the default document for every missing category and
// returns the categories it created
func EnsureDefaults(ctx context.Context, store Store) ([]string, error) {
	var created []string
	for _, category := range Categories {
		_, err := store.Get(ctx, category)
		if err == nil {
			continue
		}
		if !errors.Is(err, ErrNotFound) {
			return created, err
		}

		data, err := DefaultDocument(category)
		if err != nil {
			return created, err
		}
		if err := store.Put(ctx, category, data); err != nil {
			return created, err
		}
		created = append(created, category)
	}
	return created, nil
}
