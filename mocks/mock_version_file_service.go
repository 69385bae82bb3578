package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/leocth/labrinth/internal/domain"
	"github.com/leocth/labrinth/internal/service"
	"github.com/leocth/labrinth/internal/validator"
)

// MockVersionFileService is a mock implementation of service.VersionFileService.
type MockVersionFileService struct {
	mock.Mock
}

func (m *MockVersionFileService) Upload(ctx context.Context, input service.VersionFileUploadInput) (*service.UploadResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.UploadResult), args.Error(1)
}

func (m *MockVersionFileService) Validate(ctx context.Context, input service.ArchiveCheckInput) (validator.Result, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(validator.Result), args.Error(1)
}

func (m *MockVersionFileService) GetByID(ctx context.Context, fileID uuid.UUID) (*domain.VersionFile, error) {
	args := m.Called(ctx, fileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VersionFile), args.Error(1)
}

func (m *MockVersionFileService) ListByVersion(ctx context.Context, versionID uuid.UUID) ([]domain.VersionFile, error) {
	args := m.Called(ctx, versionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VersionFile), args.Error(1)
}

func (m *MockVersionFileService) GetDownloadURL(ctx context.Context, fileID uuid.UUID) (string, error) {
	args := m.Called(ctx, fileID)
	return args.String(0), args.Error(1)
}

func (m *MockVersionFileService) Delete(ctx context.Context, fileID uuid.UUID) error {
	args := m.Called(ctx, fileID)
	return args.Error(0)
}
