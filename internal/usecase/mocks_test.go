package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/tourist-guide/internal/domain"
)

// MockGeoRepository is a mock of GeoRepository
type MockGeoRepository struct {
	mock.Mock
}

func (m *MockGeoRepository) FindNearby(ctx context.Context, coord domain.Coordinate, radiusMeters, limit int) ([]domain.Candidate, error) {
	args := m.Called(ctx, coord, radiusMeters, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Candidate), args.Error(1)
}

// MockIdentityRepository is a mock of IdentityRepository
type MockIdentityRepository struct {
	mock.Mock
}

func (m *MockIdentityRepository) ResolveIdentity(ctx context.Context, pageID int64) (domain.CanonicalID, bool, error) {
	args := m.Called(ctx, pageID)
	return args.Get(0).(domain.CanonicalID), args.Bool(1), args.Error(2)
}

// MockRegistryRepository is a mock of RegistryRepository
type MockRegistryRepository struct {
	mock.Mock
}

func (m *MockRegistryRepository) TitleInLanguage(ctx context.Context, id domain.CanonicalID, lang string) (string, bool, error) {
	args := m.Called(ctx, id, lang)
	return args.String(0), args.Bool(1), args.Error(2)
}

// MockContentRepository is a mock of ContentRepository
type MockContentRepository struct {
	mock.Mock
}

func (m *MockContentRepository) GetSummary(ctx context.Context, title, lang string) (*domain.LocalizedContent, bool, error) {
	args := m.Called(ctx, title, lang)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.LocalizedContent), args.Bool(1), args.Error(2)
}

func (m *MockContentRepository) GetExtract(ctx context.Context, title, lang string) (string, bool, error) {
	args := m.Called(ctx, title, lang)
	return args.String(0), args.Bool(1), args.Error(2)
}

// MockTranslatorRepository is a mock of TranslatorRepository
type MockTranslatorRepository struct {
	mock.Mock
}

func (m *MockTranslatorRepository) Enabled() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockTranslatorRepository) Summarize(ctx context.Context, text, lang string, sentences, maxChars int) (string, error) {
	args := m.Called(ctx, text, lang, sentences, maxChars)
	return args.String(0), args.Error(1)
}

func (m *MockTranslatorRepository) Translate(ctx context.Context, text, targetLang string) (string, error) {
	args := m.Called(ctx, text, targetLang)
	return args.String(0), args.Error(1)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	args := m.Called(ctx, stream, group, messageID)
	return args.Error(0)
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

// MockSpeechRepository is a mock of SpeechRepository
type MockSpeechRepository struct {
	mock.Mock
}

func (m *MockSpeechRepository) Synthesize(ctx context.Context, text, lang string) ([]byte, string, error) {
	args := m.Called(ctx, text, lang)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}
