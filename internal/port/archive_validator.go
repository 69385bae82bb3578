package port

import (
	"context"

	"github.com/leocth/labrinth/internal/validator"
)

// ArchiveValidator classifies an uploaded archive against the metadata the
// uploader declared for it.
type ArchiveValidator interface {
	ValidateFile(ctx context.Context, in validator.FileInput) (validator.Result, error)
}
