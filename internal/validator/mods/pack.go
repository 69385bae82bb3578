package mods

import (
	"encoding/json"

	"github.com/leocth/labrinth/internal/archive"
	"github.com/leocth/labrinth/internal/domain"
	"github.com/leocth/labrinth/internal/validator"
)

// PackIndexName is the modpack index entry inside an .mrpack archive.
const PackIndexName = "modrinth.index.json"

// PackValidator checks modpacks and extracts their index.
type PackValidator struct{}

func (PackValidator) Name() string             { return "pack" }
func (PackValidator) FileExtensions() []string { return []string{"mrpack"} }
func (PackValidator) ProjectTypes() []string   { return []string{"modpack"} }

func (PackValidator) SupportedLoaders() []string {
	return []string{"forge", "fabric", "quilt"}
}

func (PackValidator) SupportedGameVersions() validator.SupportWindow {
	return validator.AllVersions()
}

// Validate parses the pack index; its contents are returned, not checked.
func (PackValidator) Validate(a *archive.Archive) (validator.Result, error) {
	if !a.Contains(PackIndexName) {
		return validator.Result{}, validator.InvalidInput("Pack manifest is missing.")
	}

	raw, err := a.ReadFile(PackIndexName)
	if err != nil {
		return validator.Result{}, validator.ArchiveError(err)
	}

	var pack domain.PackFormat
	if err := json.Unmarshal(raw, &pack); err != nil {
		return validator.Result{}, validator.SerDeError(err)
	}

	return validator.PassWithPackData(&pack), nil
}
