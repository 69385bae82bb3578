package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/leocth/labrinth/internal/domain"
	"github.com/leocth/labrinth/internal/service"
)

// MockGameVersionService is a mock implementation of service.GameVersionService.
type MockGameVersionService struct {
	mock.Mock
}

func (m *MockGameVersionService) List(ctx context.Context, filter service.GameVersionFilter) ([]domain.GameVersion, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GameVersion), args.Error(1)
}
