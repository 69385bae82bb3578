package validator

import (
	"github.com/leocth/labrinth/internal/archive"
)

// Validator checks the structure of archives for one loader ecosystem.
type Validator interface {
	// Name identifies the validator in logs.
	Name() string
	FileExtensions() []string
	ProjectTypes() []string
	SupportedLoaders() []string
	SupportedGameVersions() SupportWindow
	// Validate inspects the archive listing and classifies the file.
	Validate(a *archive.Archive) (Result, error)
}
