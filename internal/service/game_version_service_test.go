package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/leocth/labrinth/internal/domain"
	"github.com/leocth/labrinth/internal/service"
	"github.com/leocth/labrinth/mocks"
)

func TestGameVersionService_List(t *testing.T) {
	all := []domain.GameVersion{
		{Version: "1.19.2", VersionType: domain.GameVersionRelease, Major: false},
		{Version: "22w45a", VersionType: domain.GameVersionSnapshot},
		{Version: "1.19", VersionType: domain.GameVersionRelease, Major: true},
	}
	release := domain.GameVersionRelease
	major := true

	tests := []struct {
		name   string
		filter service.GameVersionFilter
		want   []string
	}{
		{"no filter", service.GameVersionFilter{}, []string{"1.19.2", "22w45a", "1.19"}},
		{"releases", service.GameVersionFilter{Type: &release}, []string{"1.19.2", "1.19"}},
		{"major releases", service.GameVersionFilter{Type: &release, Major: &major}, []string{"1.19"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockGameVersionRepo)
			repo.On("List", mock.Anything).Return(all, nil)
			svc := service.NewGameVersionService(repo)

			got, err := svc.List(context.Background(), tt.filter)
			require.NoError(t, err)

			var names []string
			for _, gv := range got {
				names = append(names, gv.Version)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestGameVersionService_List_RepoError(t *testing.T) {
	repo := new(mocks.MockGameVersionRepo)
	repo.On("List", mock.Anything).Return(nil, errors.New("db down"))
	svc := service.NewGameVersionService(repo)

	_, err := svc.List(context.Background(), service.GameVersionFilter{})
	assert.Error(t, err)
}
