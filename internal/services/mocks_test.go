package services_test

import (
	"context"
	"sync"

	"taproom/internal/models"
	"taproom/pkg/pagination"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockBeerRepository is a testify mock of repositories.BeerRepository.
type MockBeerRepository struct {
	mock.Mock
}

func (m *MockBeerRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Beer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Beer), args.Error(1)
}

func (m *MockBeerRepository) FindAll(ctx context.Context, spec pagination.PageSpec) (pagination.Page[models.Beer], error) {
	args := m.Called(ctx, spec)
	return args.Get(0).(pagination.Page[models.Beer]), args.Error(1)
}

func (m *MockBeerRepository) FindAllByNameContainingIgnoreCase(ctx context.Context, pattern string, spec pagination.PageSpec) (pagination.Page[models.Beer], error) {
	args := m.Called(ctx, pattern, spec)
	return args.Get(0).(pagination.Page[models.Beer]), args.Error(1)
}

func (m *MockBeerRepository) FindAllByStyle(ctx context.Context, style models.BeerStyle, spec pagination.PageSpec) (pagination.Page[models.Beer], error) {
	args := m.Called(ctx, style, spec)
	return args.Get(0).(pagination.Page[models.Beer]), args.Error(1)
}

func (m *MockBeerRepository) FindAllByStyleAndNameContainingIgnoreCase(ctx context.Context, style models.BeerStyle, pattern string, spec pagination.PageSpec) (pagination.Page[models.Beer], error) {
	args := m.Called(ctx, style, pattern, spec)
	return args.Get(0).(pagination.Page[models.Beer]), args.Error(1)
}

func (m *MockBeerRepository) Save(ctx context.Context, beer *models.Beer) (*models.Beer, error) {
	args := m.Called(ctx, beer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Beer), args.Error(1)
}

func (m *MockBeerRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockBeerRepository) DeleteByID(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockUserRepository is a testify mock of repositories.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type publishedEvent struct {
	routingKey string
	payload    any
}

// recordingPublisher keeps every event it is asked to publish and fails
// with err when set.
type recordingPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
	err    error
}

func (p *recordingPublisher) PublishJSON(routingKey string, payload any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, publishedEvent{routingKey: routingKey, payload: payload})
	return nil
}

func (p *recordingPublisher) routingKeys() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	keys := make([]string, 0, len(p.events))
	for _, e := range p.events {
		keys = append(keys, e.routingKey)
	}
	return keys
}
