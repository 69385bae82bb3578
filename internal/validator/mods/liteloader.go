package mods

import (
	"github.com/leocth/labrinth/internal/archive"
	"github.com/leocth/labrinth/internal/validator"
)

// LiteLoaderValidator checks LiteLoader mods.
type LiteLoaderValidator struct{}

func (LiteLoaderValidator) Name() string               { return "liteloader" }
func (LiteLoaderValidator) FileExtensions() []string   { return []string{"litemod"} }
func (LiteLoaderValidator) ProjectTypes() []string     { return modProjectTypes() }
func (LiteLoaderValidator) SupportedLoaders() []string { return []string{"liteloader"} }

func (LiteLoaderValidator) SupportedGameVersions() validator.SupportWindow {
	return validator.AllVersions()
}

func (LiteLoaderValidator) Validate(a *archive.Archive) (validator.Result, error) {
	if !a.Contains("litemod.json") {
		return validator.Result{}, validator.InvalidInput("No litemod.json present for LiteLoader file.")
	}
	return validator.Pass(), nil
}
