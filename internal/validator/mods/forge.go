package mods

import (
	"github.com/leocth/labrinth/internal/archive"
	"github.com/leocth/labrinth/internal/validator"
)

// ForgeValidator checks Forge mods for 1.13 and later.
type ForgeValidator struct{}

func (ForgeValidator) Name() string               { return "forge" }
func (ForgeValidator) FileExtensions() []string   { return jarExtensions() }
func (ForgeValidator) ProjectTypes() []string     { return modProjectTypes() }
func (ForgeValidator) SupportedLoaders() []string { return []string{"forge"} }

func (ForgeValidator) SupportedGameVersions() validator.SupportWindow {
	return validator.PastDate(forgeTOMLEpoch)
}

// Validate only warns on a missing mods.toml; some packaging pipelines omit it.
func (ForgeValidator) Validate(a *archive.Archive) (validator.Result, error) {
	if !a.Contains("META-INF/mods.toml") {
		return validator.Warning("No mods.toml present for Forge file."), nil
	}

	if !a.AnyMatch(".class") {
		return validator.Warning("Forge mod file is a source file!"), nil
	}

	return validator.Pass(), nil
}

// LegacyForgeValidator checks Forge mods for 1.5.2 through 1.12.2.
type LegacyForgeValidator struct{}

func (LegacyForgeValidator) Name() string               { return "legacy-forge" }
func (LegacyForgeValidator) FileExtensions() []string   { return jarExtensions() }
func (LegacyForgeValidator) ProjectTypes() []string     { return modProjectTypes() }
func (LegacyForgeValidator) SupportedLoaders() []string { return []string{"forge"} }

func (LegacyForgeValidator) SupportedGameVersions() validator.SupportWindow {
	return validator.Range(legacyForgeStart, legacyForgeEnd)
}

func (LegacyForgeValidator) Validate(a *archive.Archive) (validator.Result, error) {
	if !a.Contains("mcmod.info") {
		return validator.Warning("Forge mod file does not contain mcmod.info!"), nil
	}

	if !a.AnyMatch(".class") {
		return validator.Warning("Forge mod file is a source file!"), nil
	}

	return validator.Pass(), nil
}
