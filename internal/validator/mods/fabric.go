package mods

import (
	"github.com/leocth/labrinth/internal/archive"
	"github.com/leocth/labrinth/internal/validator"
)

// FabricValidator checks Fabric mods.
type FabricValidator struct{}

func (FabricValidator) Name() string               { return "fabric" }
func (FabricValidator) FileExtensions() []string   { return jarExtensions() }
func (FabricValidator) ProjectTypes() []string     { return modProjectTypes() }
func (FabricValidator) SupportedLoaders() []string { return []string{"fabric"} }

func (FabricValidator) SupportedGameVersions() validator.SupportWindow {
	return validator.PastDate(fabricEpoch)
}

// Validate requires fabric.mod.json and at least one compiled entry.
func (FabricValidator) Validate(a *archive.Archive) (validator.Result, error) {
	if !a.Contains("fabric.mod.json") {
		return validator.Result{}, validator.InvalidInput("No fabric.mod.json present for Fabric file.")
	}

	if !a.AnyMatch(".refmap.json", ".class") {
		return validator.Warning("Fabric mod file is a source file!"), nil
	}

	return validator.Pass(), nil
}
