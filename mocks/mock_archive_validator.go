package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/leocth/labrinth/internal/validator"
)

// MockArchiveValidator is a mock implementation of port.ArchiveValidator.
type MockArchiveValidator struct {
	mock.Mock
}

func (m *MockArchiveValidator) ValidateFile(ctx context.Context, in validator.FileInput) (validator.Result, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(validator.Result), args.Error(1)
}
