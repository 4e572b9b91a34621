package handler_test

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/ecoleta-discovery/internal/domain"
)

// fakeSession records renderer commands against a fixed view model
type fakeSession struct {
	mu      sync.Mutex
	vm      domain.DiscoveryViewModel
	toggled []int64
	retries map[string]int
	syncErr error
}

func newFakeSession(vm domain.DiscoveryViewModel) *fakeSession {
	return &fakeSession{vm: vm, retries: make(map[string]int)}
}

func (s *fakeSession) ViewModel() domain.DiscoveryViewModel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.vm.Clone()
}

func (s *fakeSession) ToggleCategory(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.toggled = append(s.toggled, id)
	sel := domain.NewSelectionSet(s.vm.Selection...)
	sel.Toggle(id)
	s.vm.Selection = sel.IDs()
}

func (s *fakeSession) RetryLocation() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.retries["location"]++
}

func (s *fakeSession) RetryCatalog() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.retries["catalog"]++
}

func (s *fakeSession) Sync(ctx context.Context) error {
	return s.syncErr
}

type MockPointRepository struct {
	mock.Mock
}

func (m *MockPointRepository) SearchPoints(ctx context.Context, search domain.PointSearch) ([]domain.CollectionPoint, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CollectionPoint), args.Error(1)
}

func (m *MockPointRepository) GetPoint(ctx context.Context, id int64) (*domain.PointDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PointDetail), args.Error(1)
}

type MockContactDispatcher struct {
	mock.Mock
}

func (m *MockContactDispatcher) OpenLink(link string) error {
	return m.Called(link).Error(0)
}

func (m *MockContactDispatcher) ComposeMail(draft domain.MailDraft) error {
	return m.Called(draft).Error(0)
}
