package domain

import (
	"time"

	"github.com/google/uuid"
)

// GameVersion is one entry of the game version catalogue. Ordering between
// versions only exists through Created.
type GameVersion struct {
	ID          int             `db:"id" json:"id"`
	Version     string          `db:"version" json:"version"`
	VersionType GameVersionType `db:"type" json:"version_type"`
	Created     time.Time       `db:"created" json:"date"`
	Major       bool            `db:"major" json:"major"`
}

// Version is a release of a project that files are uploaded to.
type Version struct {
	ID            uuid.UUID   `db:"id" json:"id"`
	ProjectID     uuid.UUID   `db:"project_id" json:"project_id"`
	ProjectType   ProjectType `db:"project_type" json:"project_type"`
	Name          string      `db:"name" json:"name"`
	VersionNumber string      `db:"version_number" json:"version_number"`
	Loaders       []string    `db:"-" json:"loaders"`
	GameVersions  []string    `db:"-" json:"game_versions"`
	CreatedAt     time.Time   `db:"created_at" json:"created_at"`
}

// VersionFile is a stored file attached to a version.
type VersionFile struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	VersionID   uuid.UUID  `db:"version_id" json:"version_id"`
	URL         string     `db:"url" json:"url"`
	Filename    string     `db:"filename" json:"filename"`
	IsPrimary   bool       `db:"is_primary" json:"primary"`
	Size        int64      `db:"size" json:"size"`
	ContentType string     `db:"content_type" json:"content_type"`
	S3Bucket    string     `db:"s3_bucket" json:"-"`
	S3Key       string     `db:"s3_key" json:"-"`
	SHA1        string     `db:"sha1" json:"sha1"`
	SHA512      string     `db:"sha512" json:"sha512"`
	Warning     *string    `db:"warning" json:"warning,omitempty"`
	Status      FileStatus `db:"status" json:"status"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}
