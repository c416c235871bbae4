package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/schedule-assistant/soc-api/internal/models"
	"github.com/schedule-assistant/soc-api/pkg/config"
	appErrors "github.com/schedule-assistant/soc-api/pkg/errors"
)

type stubCacheRepo struct {
	store   map[string][]byte
	getErr  error
	setErr  error
	setKeys []string
}

func (s *stubCacheRepo) Get(_ context.Context, key string, dest interface{}) error {
	if s.getErr != nil {
		return s.getErr
	}
	if s.store == nil {
		return appErrors.ErrCacheMiss
	}
	payload, ok := s.store[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(payload, dest)
}

func (s *stubCacheRepo) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	if s.setErr != nil {
		return s.setErr
	}
	if s.store == nil {
		s.store = make(map[string][]byte)
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.store[key] = payload
	s.setKeys = append(s.setKeys, key)
	return nil
}

type fakeStore struct {
	payload []byte
	err     error
	calls   int
	lastKey string
}

func (f *fakeStore) Get(_ context.Context, key string) ([]byte, error) {
	f.calls++
	f.lastKey = key
	if f.err != nil {
		return nil, f.err
	}
	return f.payload, nil
}

func rawPayload(t *testing.T) []byte {
	t.Helper()
	payload, err := json.Marshal([]models.RawCourseRecord{sampleRecord()})
	require.NoError(t, err)
	return payload
}

func newTestService(store ObjectStore, cacheRepo CacheRepository) *ScheduleService {
	cacheSvc := NewCacheService(cacheRepo, nil, time.Minute, zap.NewNop())
	return NewScheduleService(store, cacheSvc, nil, config.ScheduleConfig{CacheTTL: time.Minute, FetchTimeout: time.Second}, nil, zap.NewNop())
}

func TestScheduleServiceFetchMissThenPopulate(t *testing.T) {
	store := &fakeStore{payload: rawPayload(t)}
	cacheRepo := &stubCacheRepo{}
	svc := newTestService(store, cacheRepo)

	query := models.ScheduleQuery{Year: "2024", Term: "Fall", Campus: "Newark"}
	schedule, cacheHit, err := svc.Fetch(context.Background(), query)

	require.NoError(t, err)
	assert.False(t, cacheHit)
	assert.Equal(t, "2024/fall/newark.json", store.lastKey)
	require.Len(t, schedule.Response, 1)
	assert.Equal(t, "Intro to CS", schedule.Response[0].Title)
	assert.Equal(t, "Computer Science", schedule.Response[0].Department)
	assert.Equal(t, []string{"Monday: 10:00 - 11:20, Newark"}, schedule.Response[0].Sections[0].Meetings)

	require.Contains(t, cacheRepo.setKeys, "2024:fall:newark")
	var cached []models.Course
	require.NoError(t, json.Unmarshal(cacheRepo.store["2024:fall:newark"], &cached))
	assert.Equal(t, schedule.Response, cached)
}

func TestScheduleServiceFetchCacheHitSkipsStore(t *testing.T) {
	courses := []models.Course{{Title: "Cached Course", Department: "Computer Science", CourseCode: "CS200", Credits: "4"}}
	payload, err := json.Marshal(courses)
	require.NoError(t, err)

	store := &fakeStore{err: errors.New("store must not be called")}
	cacheRepo := &stubCacheRepo{store: map[string][]byte{"2024:fall:newark": payload}}
	svc := newTestService(store, cacheRepo)

	schedule, cacheHit, err := svc.Fetch(context.Background(), models.ScheduleQuery{Year: "2024", Term: "Fall", Campus: "Newark"})

	require.NoError(t, err)
	assert.True(t, cacheHit)
	assert.Equal(t, 0, store.calls)
	assert.Equal(t, courses, schedule.Response)
}

func TestScheduleServiceCacheRoundTripMatchesDirectNormalization(t *testing.T) {
	store := &fakeStore{payload: rawPayload(t)}
	cacheRepo := &stubCacheRepo{}
	svc := newTestService(store, cacheRepo)

	query := models.ScheduleQuery{Year: "2024", Term: "Fall", Campus: "Newark"}
	direct, _, err := svc.Fetch(context.Background(), query)
	require.NoError(t, err)

	cached, cacheHit, err := svc.Fetch(context.Background(), query)
	require.NoError(t, err)
	assert.True(t, cacheHit)
	assert.Equal(t, 1, store.calls)
	assert.Equal(t, direct, cached)
}

func TestScheduleServiceEmptyPayloadReturnsEmptyResult(t *testing.T) {
	store := &fakeStore{payload: nil}
	cacheRepo := &stubCacheRepo{}
	svc := newTestService(store, cacheRepo)

	schedule, cacheHit, err := svc.Fetch(context.Background(), models.ScheduleQuery{Year: "2024", Term: "Winter", Campus: "Camden"})

	require.NoError(t, err)
	assert.False(t, cacheHit)
	assert.NotNil(t, schedule.Response)
	assert.Empty(t, schedule.Response)
	assert.Empty(t, cacheRepo.setKeys, "empty results are not cached")
}

func TestScheduleServiceStoreErrorPropagates(t *testing.T) {
	store := &fakeStore{err: errors.New("connection reset")}
	cacheRepo := &stubCacheRepo{}
	svc := newTestService(store, cacheRepo)

	_, _, err := svc.Fetch(context.Background(), models.ScheduleQuery{Year: "2024", Term: "Fall", Campus: "Newark"})

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUpstreamFetch.Code, appErrors.FromError(err).Code)
	assert.Empty(t, cacheRepo.setKeys, "no cache write on store failure")
}

func TestScheduleServiceMalformedPayloadPropagates(t *testing.T) {
	store := &fakeStore{payload: []byte(`{"not": "a list"}`)}
	cacheRepo := &stubCacheRepo{}
	svc := newTestService(store, cacheRepo)

	_, _, err := svc.Fetch(context.Background(), models.ScheduleQuery{Year: "2024", Term: "Fall", Campus: "Newark"})

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrMalformedPayload.Code, appErrors.FromError(err).Code)
	assert.Empty(t, cacheRepo.setKeys)
}

func TestScheduleServiceCacheFailuresAreSoft(t *testing.T) {
	store := &fakeStore{payload: rawPayload(t)}
	cacheRepo := &stubCacheRepo{getErr: errors.New("redis down"), setErr: errors.New("redis down")}
	svc := newTestService(store, cacheRepo)

	schedule, cacheHit, err := svc.Fetch(context.Background(), models.ScheduleQuery{Year: "2024", Term: "Fall", Campus: "Newark"})

	require.NoError(t, err)
	assert.False(t, cacheHit)
	require.Len(t, schedule.Response, 1)
	assert.Equal(t, 1, store.calls)
}

func TestScheduleServiceRejectsInvalidQuery(t *testing.T) {
	svc := newTestService(&fakeStore{}, &stubCacheRepo{})

	cases := []models.ScheduleQuery{
		{Year: "2024", Term: "Autumn", Campus: "Newark"},
		{Year: "2024", Term: "Fall", Campus: "Princeton"},
		{Term: "Fall", Campus: "Newark"},
	}
	for _, query := range cases {
		_, _, err := svc.Fetch(context.Background(), query)
		require.Error(t, err)
		assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	}
}

func TestScheduleServiceAcceptsNewBrunswick(t *testing.T) {
	store := &fakeStore{payload: rawPayload(t)}
	svc := newTestService(store, &stubCacheRepo{})

	_, _, err := svc.Fetch(context.Background(), models.ScheduleQuery{Year: "2024", Term: "Fall", Campus: "New Brunswick"})

	require.NoError(t, err)
	assert.Equal(t, "2024/fall/new brunswick.json", store.lastKey)
}

func TestScheduleServiceSubjectSubsetConfig(t *testing.T) {
	mathRecord := sampleRecord()
	mathRecord.ExpandedTitle = "Calculus I"
	mathRecord.Subject = "640"
	payload, err := json.Marshal([]models.RawCourseRecord{sampleRecord(), mathRecord})
	require.NoError(t, err)

	store := &fakeStore{payload: payload}
	cacheSvc := NewCacheService(&stubCacheRepo{}, nil, time.Minute, zap.NewNop())
	svc := NewScheduleService(store, cacheSvc, nil, config.ScheduleConfig{SubjectCodes: []int{198}, FetchTimeout: time.Second}, nil, zap.NewNop())

	schedule, _, err := svc.Fetch(context.Background(), models.ScheduleQuery{Year: "2024", Term: "Fall", Campus: "Newark"})

	require.NoError(t, err)
	require.Len(t, schedule.Response, 1)
	assert.Equal(t, "Intro to CS", schedule.Response[0].Title)
}
