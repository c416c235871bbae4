package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/schedule-assistant/soc-api/internal/models"
	"github.com/schedule-assistant/soc-api/pkg/config"
	appErrors "github.com/schedule-assistant/soc-api/pkg/errors"
)

// ObjectStore fetches raw schedule blobs by storage key. An absent object is
// reported as (nil, nil), distinct from a failed call.
type ObjectStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
}

// ScheduleService composes the cache, the object store and the normalizer
// into the schedule lookup pipeline. It is stateless between requests.
type ScheduleService struct {
	store        ObjectStore
	cache        *CacheService
	metrics      *MetricsService
	subjects     map[int]string
	cacheTTL     time.Duration
	fetchTimeout time.Duration
	validator    *validator.Validate
	logger       *zap.Logger
}

// NewScheduleService instantiates ScheduleService. The configured subject
// codes are intersected with the known department table; an empty code list
// selects the full table.
func NewScheduleService(store ObjectStore, cache *CacheService, metrics *MetricsService, cfg config.ScheduleConfig, validate *validator.Validate, logger *zap.Logger) *ScheduleService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	subjects := make(map[int]string, len(models.SubjectNames))
	if len(cfg.SubjectCodes) == 0 {
		for code, name := range models.SubjectNames {
			subjects[code] = name
		}
	} else {
		for _, code := range cfg.SubjectCodes {
			name, ok := models.SubjectNames[code]
			if !ok {
				name = models.UnknownDepartment
			}
			subjects[code] = name
		}
	}

	fetchTimeout := cfg.FetchTimeout
	if fetchTimeout <= 0 {
		fetchTimeout = 10 * time.Second
	}

	return &ScheduleService{
		store:        store,
		cache:        cache,
		metrics:      metrics,
		subjects:     subjects,
		cacheTTL:     cfg.CacheTTL,
		fetchTimeout: fetchTimeout,
		validator:    validate,
		logger:       logger,
	}
}

// Fetch returns the normalized schedule for the query. The second return
// value reports whether the cache served the request. Store and parse
// failures are fatal for the request; cache failures never are.
func (s *ScheduleService) Fetch(ctx context.Context, query models.ScheduleQuery) (*models.Schedule, bool, error) {
	if err := s.validator.Struct(query); err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid schedule query")
	}

	cacheKey := query.CacheKey()

	var cached []models.Course
	if s.cache.Get(ctx, cacheKey, &cached) {
		return &models.Schedule{Response: cached}, true, nil
	}

	storageKey := query.StorageKey()

	fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	start := time.Now()
	payload, err := s.store.Get(fetchCtx, storageKey)
	if s.metrics != nil {
		s.metrics.ObserveFetch(time.Since(start), err != nil)
	}
	if err != nil {
		s.logger.Error("schedule fetch failed", zap.String("key", storageKey), zap.Error(err))
		return nil, false, appErrors.Wrap(err, appErrors.ErrUpstreamFetch.Code, appErrors.ErrUpstreamFetch.Status, appErrors.ErrUpstreamFetch.Message)
	}

	// No schedule published yet for this key; a valid, empty outcome.
	if len(payload) == 0 {
		return &models.Schedule{Response: []models.Course{}}, false, nil
	}

	var records []models.RawCourseRecord
	if err := json.Unmarshal(payload, &records); err != nil {
		s.logger.Error("schedule payload unparseable", zap.String("key", storageKey), zap.Error(err))
		return nil, false, appErrors.Wrap(err, appErrors.ErrMalformedPayload.Code, appErrors.ErrMalformedPayload.Status, appErrors.ErrMalformedPayload.Message)
	}

	courses := Normalize(records, s.subjects)

	s.cache.Set(ctx, cacheKey, courses, s.cacheTTL)

	return &models.Schedule{Response: courses}, false, nil
}
