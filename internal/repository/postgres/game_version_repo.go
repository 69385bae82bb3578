package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/leocth/labrinth/internal/domain"
	"github.com/leocth/labrinth/internal/port"
)

type gameVersionRepo struct {
	db *sqlx.DB
}

// NewGameVersionRepo creates a new PostgreSQL-backed GameVersionRepository.
func NewGameVersionRepo(db *sqlx.DB) port.GameVersionRepository {
	return &gameVersionRepo{db: db}
}

// List returns the whole catalogue, newest first.
func (r *gameVersionRepo) List(ctx context.Context) ([]domain.GameVersion, error) {
	versions := []domain.GameVersion{}
	err := r.db.SelectContext(ctx, &versions,
		"SELECT id, version, type, created, major FROM game_versions ORDER BY created DESC")
	if err != nil {
		return nil, fmt.Errorf("gameVersionRepo.List: %w", err)
	}
	return versions, nil
}

// Upsert inserts the given versions in a single transaction, refreshing type,
// release date and major flag of identifiers that already exist.
func (r *gameVersionRepo) Upsert(ctx context.Context, versions []domain.GameVersion) (int, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("gameVersionRepo.Upsert begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `INSERT INTO game_versions (version, type, created, major)
		VALUES (:version, :type, :created, :major)
		ON CONFLICT (version) DO UPDATE
		SET type = EXCLUDED.type, created = EXCLUDED.created, major = EXCLUDED.major`

	n := 0
	for i := range versions {
		if _, err := tx.NamedExecContext(ctx, query, &versions[i]); err != nil {
			return n, fmt.Errorf("gameVersionRepo.Upsert %s: %w", versions[i].Version, err)
		}
		n++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("gameVersionRepo.Upsert commit: %w", err)
	}
	return n, nil
}
