package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/leocth/labrinth/internal/domain"
)

// MockGameVersionRepo is a mock implementation of port.GameVersionRepository.
type MockGameVersionRepo struct {
	mock.Mock
}

func (m *MockGameVersionRepo) List(ctx context.Context) ([]domain.GameVersion, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GameVersion), args.Error(1)
}

func (m *MockGameVersionRepo) Upsert(ctx context.Context, versions []domain.GameVersion) (int, error) {
	args := m.Called(ctx, versions)
	return args.Int(0), args.Error(1)
}
