package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/leocth/labrinth/internal/domain"
	"github.com/leocth/labrinth/internal/port"
)

type versionFileRepo struct {
	db *sqlx.DB
}

// NewVersionFileRepo creates a new PostgreSQL-backed VersionFileRepository.
func NewVersionFileRepo(db *sqlx.DB) port.VersionFileRepository {
	return &versionFileRepo{db: db}
}

func (r *versionFileRepo) Create(ctx context.Context, file *domain.VersionFile) error {
	now := time.Now().UTC()
	file.CreatedAt = now
	file.UpdatedAt = now

	query := `INSERT INTO files
		(id, version_id, url, filename, is_primary, size, content_type,
		 s3_bucket, s3_key, sha1, sha512, warning, status, created_at, updated_at)
		VALUES (:id, :version_id, :url, :filename, :is_primary, :size, :content_type,
		 :s3_bucket, :s3_key, :sha1, :sha512, :warning, :status, :created_at, :updated_at)`

	if _, err := r.db.NamedExecContext(ctx, query, file); err != nil {
		return fmt.Errorf("versionFileRepo.Create: %w", err)
	}
	return nil
}

func (r *versionFileRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.VersionFile, error) {
	var file domain.VersionFile
	err := r.db.GetContext(ctx, &file,
		"SELECT * FROM files WHERE id = $1 AND status != $2", id, domain.FileStatusDeleted)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("versionFileRepo.GetByID: %w", err)
	}
	return &file, nil
}

func (r *versionFileRepo) ListByVersion(ctx context.Context, versionID uuid.UUID) ([]domain.VersionFile, error) {
	files := []domain.VersionFile{}
	err := r.db.SelectContext(ctx, &files,
		`SELECT * FROM files
		 WHERE version_id = $1 AND status NOT IN ($2, $3)
		 ORDER BY is_primary DESC, created_at ASC`,
		versionID, domain.FileStatusDeleted, domain.FileStatusFailed)
	if err != nil {
		return nil, fmt.Errorf("versionFileRepo.ListByVersion: %w", err)
	}
	return files, nil
}

func (r *versionFileRepo) ExistsBySHA1(ctx context.Context, sha1 string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		"SELECT EXISTS(SELECT 1 FROM files WHERE sha1 = $1 AND status NOT IN ($2, $3))",
		sha1, domain.FileStatusDeleted, domain.FileStatusFailed)
	if err != nil {
		return false, fmt.Errorf("versionFileRepo.ExistsBySHA1: %w", err)
	}
	return exists, nil
}

func (r *versionFileRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.FileStatus) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE files SET status = $1, updated_at = $2 WHERE id = $3",
		status, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("versionFileRepo.UpdateStatus: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// MarkFailed records a file whose bytes never reached storage. The row keeps
// no claim on the version's primary slot, its filename or its hash.
func (r *versionFileRepo) MarkFailed(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE files SET status = $1, is_primary = FALSE, updated_at = $2 WHERE id = $3",
		domain.FileStatusFailed, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("versionFileRepo.MarkFailed: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete soft-deletes the file and clears its primary flag so another file of
// the version can take it.
func (r *versionFileRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE files SET status = $1, is_primary = FALSE, updated_at = $2 WHERE id = $3",
		domain.FileStatusDeleted, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("versionFileRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
