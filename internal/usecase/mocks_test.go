package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ecoleta-discovery/internal/domain"
)

// MockCatalogRepository is a mock of CatalogRepository
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) ListItems(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

// MockPointRepository is a mock of PointRepository
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

// MockGeolocationProvider is a mock of GeolocationProvider
type MockGeolocationProvider struct {
	mock.Mock
}

func (m *MockGeolocationProvider) RequestPermission(ctx context.Context) (domain.PermissionStatus, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.PermissionStatus), args.Error(1)
}

func (m *MockGeolocationProvider) CurrentPosition(ctx context.Context) (float64, float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Get(1).(float64), args.Error(2)
}

// MockContactDispatcher is a mock of ContactDispatcher
type MockContactDispatcher struct {
	mock.Mock
}

func (m *MockContactDispatcher) OpenLink(link string) error {
	args := m.Called(link)
	return args.Error(0)
}

func (m *MockContactDispatcher) ComposeMail(draft domain.MailDraft) error {
	args := m.Called(draft)
	return args.Error(0)
}

// itemsEqual matches a point search by its selected category IDs
func itemsEqual(ids ...int64) interface{} {
	return mock.MatchedBy(func(s domain.PointSearch) bool {
		if len(s.Items) != len(ids) {
			return false
		}
		for i := range ids {
			if s.Items[i] != ids[i] {
				return false
			}
		}
		return true
	})
}

// waitFor blocks a mocked call until gate is closed
func waitFor(gate <-chan struct{}) func(mock.Arguments) {
	return func(mock.Arguments) {
		<-gate
	}
}
