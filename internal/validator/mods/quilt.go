package mods

import (
	"github.com/leocth/labrinth/internal/archive"
	"github.com/leocth/labrinth/internal/validator"
)

// QuiltValidator checks Quilt mods. Quilt projects are tagged with the
// fabric loader since Quilt loads Fabric mods.
type QuiltValidator struct{}

func (QuiltValidator) Name() string               { return "quilt" }
func (QuiltValidator) FileExtensions() []string   { return jarExtensions() }
func (QuiltValidator) ProjectTypes() []string     { return modProjectTypes() }
func (QuiltValidator) SupportedLoaders() []string { return []string{"fabric"} }

func (QuiltValidator) SupportedGameVersions() validator.SupportWindow {
	return validator.PastDate(quiltEpoch)
}

func (QuiltValidator) Validate(a *archive.Archive) (validator.Result, error) {
	if !a.Contains("quilt.mod.json") {
		return validator.Result{}, validator.InvalidInput("No quilt.mod.json present for Quilt file.")
	}

	if !a.AnyMatch(".refmap.json", ".class") {
		return validator.Warning("Quilt mod file is a source file!"), nil
	}

	return validator.Pass(), nil
}
