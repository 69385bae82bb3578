package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/leocth/labrinth/internal/domain"
)

// VersionRepository defines the contract for version lookups. Loaders and
// game versions are populated from their join tables.
type VersionRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Version, error)
}

// VersionFileRepository defines the contract for version file persistence.
// Deleted files are excluded from every read. Failed files are excluded from
// ListByVersion and ExistsBySHA1 and never hold the primary flag.
type VersionFileRepository interface {
	Create(ctx context.Context, file *domain.VersionFile) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.VersionFile, error)
	ListByVersion(ctx context.Context, versionID uuid.UUID) ([]domain.VersionFile, error)
	ExistsBySHA1(ctx context.Context, sha1 string) (bool, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.FileStatus) error
	MarkFailed(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// GameVersionRepository defines the contract for the game version catalogue.
type GameVersionRepository interface {
	List(ctx context.Context) ([]domain.GameVersion, error)
	Upsert(ctx context.Context, versions []domain.GameVersion) (int, error)
}
