package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/leocth/labrinth/internal/domain"
)

// MockVersionFileRepo is a mock implementation of port.VersionFileRepository.
type MockVersionFileRepo struct {
	mock.Mock
}

func (m *MockVersionFileRepo) Create(ctx context.Context, file *domain.VersionFile) error {
	args := m.Called(ctx, file)
	return args.Error(0)
}

func (m *MockVersionFileRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.VersionFile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VersionFile), args.Error(1)
}

func (m *MockVersionFileRepo) ListByVersion(ctx context.Context, versionID uuid.UUID) ([]domain.VersionFile, error) {
	args := m.Called(ctx, versionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VersionFile), args.Error(1)
}

func (m *MockVersionFileRepo) ExistsBySHA1(ctx context.Context, sha1 string) (bool, error) {
	args := m.Called(ctx, sha1)
	return args.Bool(0), args.Error(1)
}

func (m *MockVersionFileRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.FileStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockVersionFileRepo) MarkFailed(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVersionFileRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
