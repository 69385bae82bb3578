package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/leocth/labrinth/internal/domain"
	"github.com/leocth/labrinth/internal/port"
)

type versionRepo struct {
	db *sqlx.DB
}

// NewVersionRepo creates a new PostgreSQL-backed VersionRepository.
func NewVersionRepo(db *sqlx.DB) port.VersionRepository {
	return &versionRepo{db: db}
}

func (r *versionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Version, error) {
	var v domain.Version
	err := r.db.GetContext(ctx, &v,
		`SELECT id, project_id, project_type, name, version_number, created_at
		 FROM versions WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVersionNotFound
		}
		return nil, fmt.Errorf("versionRepo.GetByID: %w", err)
	}

	v.Loaders = []string{}
	err = r.db.SelectContext(ctx, &v.Loaders,
		`SELECT l.loader FROM loaders_versions lv
		 INNER JOIN loaders l ON l.id = lv.loader_id
		 WHERE lv.version_id = $1
		 ORDER BY l.loader`, id)
	if err != nil {
		return nil, fmt.Errorf("versionRepo.GetByID loaders: %w", err)
	}

	v.GameVersions = []string{}
	err = r.db.SelectContext(ctx, &v.GameVersions,
		`SELECT gv.version FROM game_versions_versions gvv
		 INNER JOIN game_versions gv ON gv.id = gvv.game_version_id
		 WHERE gvv.version_id = $1
		 ORDER BY gv.created`, id)
	if err != nil {
		return nil, fmt.Errorf("versionRepo.GetByID game versions: %w", err)
	}

	return &v, nil
}
