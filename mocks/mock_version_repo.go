package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/leocth/labrinth/internal/domain"
)

// MockVersionRepo is a mock implementation of port.VersionRepository.
type MockVersionRepo struct {
	mock.Mock
}

func (m *MockVersionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Version, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Version), args.Error(1)
}
