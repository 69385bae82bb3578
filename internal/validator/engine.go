package validator

import (
	"context"
	"slices"

	"go.uber.org/zap"

	"github.com/leocth/labrinth/internal/archive"
	"github.com/leocth/labrinth/internal/domain"
)

// FileInput is everything the Engine needs to classify one uploaded file.
type FileInput struct {
	Data          []byte
	FileExtension string
	ProjectType   string
	Loaders       []string
	GameVersions  []string
	// Catalogue maps game version identifiers to release dates.
	Catalogue []domain.GameVersion
}

// Engine selects the applicable validator for a file and runs it on the pool.
type Engine struct {
	registry *Registry
	pool     *Pool
	logger   *zap.Logger
}

// NewEngine creates a new validation engine.
func NewEngine(registry *Registry, pool *Pool, logger *zap.Logger) *Engine {
	return &Engine{
		registry: registry,
		pool:     pool,
		logger:   logger.Named("engine"),
	}
}

// ValidateFile classifies the file, deciding whether it may be marked primary.
func (e *Engine) ValidateFile(ctx context.Context, in FileInput) (Result, error) {
	return e.pool.Do(ctx, func() (Result, error) {
		return e.validate(in)
	})
}

// validate scans the registry in order and hands the file to the first
// validator whose project types, loaders and game versions all match.
// Scanning stops there even if that validator rejects the extension.
func (e *Engine) validate(in FileInput) (Result, error) {
	a, err := archive.Open(in.Data)
	if err != nil {
		return Result{}, ArchiveError(err)
	}

	for _, v := range e.registry.validators {
		if !e.applies(v, in) {
			continue
		}

		if !slices.Contains(v.FileExtensions(), in.FileExtension) {
			e.logger.Debug("extension rejected by dispatched validator",
				zap.String("validator", v.Name()),
				zap.String("extension", in.FileExtension))
			return Result{}, InvalidInputf("File extension %s is invalid for input file", in.FileExtension)
		}

		res, err := v.Validate(a)
		if err != nil {
			return Result{}, err
		}
		e.logger.Debug("archive validated",
			zap.String("validator", v.Name()),
			zap.String("status", string(res.Status)),
			zap.Int("entries", a.Len()))
		return res, nil
	}

	return Pass(), nil
}

func (e *Engine) applies(v Validator, in FileInput) bool {
	if !slices.Contains(v.ProjectTypes(), in.ProjectType) {
		return false
	}
	loaders := v.SupportedLoaders()
	if !slices.ContainsFunc(in.Loaders, func(l string) bool { return slices.Contains(loaders, l) }) {
		return false
	}
	return v.SupportedGameVersions().SupportedBy(in.GameVersions, in.Catalogue)
}
