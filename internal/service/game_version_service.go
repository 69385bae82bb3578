package service

import (
	"context"

	"github.com/leocth/labrinth/internal/domain"
	"github.com/leocth/labrinth/internal/port"
)

// GameVersionFilter narrows a catalogue listing. Nil fields match everything.
type GameVersionFilter struct {
	Type  *domain.GameVersionType
	Major *bool
}

// GameVersionService exposes the game version catalogue.
type GameVersionService interface {
	List(ctx context.Context, filter GameVersionFilter) ([]domain.GameVersion, error)
}

type gameVersionService struct {
	repo port.GameVersionRepository
}

// NewGameVersionService creates a new GameVersionService implementation.
func NewGameVersionService(repo port.GameVersionRepository) GameVersionService {
	return &gameVersionService{repo: repo}
}

func (s *gameVersionService) List(ctx context.Context, filter GameVersionFilter) ([]domain.GameVersion, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.GameVersion, 0, len(all))
	for _, gv := range all {
		if filter.Type != nil && gv.VersionType != *filter.Type {
			continue
		}
		if filter.Major != nil && gv.Major != *filter.Major {
			continue
		}
		out = append(out, gv)
	}
	return out, nil
}
