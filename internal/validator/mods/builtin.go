// Package mods holds the structural validators for each supported mod loader
// and for modpacks.
package mods

import (
	"time"

	"github.com/leocth/labrinth/internal/validator"
)

// Release dates bounding each validator's game version era.
var (
	// 18w49a, the first snapshot Fabric supported.
	fabricEpoch = time.Unix(1543969469, 0).UTC()
	// 1.13, the first version whose Forge mods declare META-INF/mods.toml.
	forgeTOMLEpoch = time.Unix(1540122067, 0).UTC()
	// 1.5.2 through 1.12.2 describe Forge mods with mcmod.info.
	legacyForgeStart = time.Unix(1366818300, 0).UTC()
	legacyForgeEnd   = time.Unix(1505810340, 0).UTC()
	// First Quilt loader release.
	quiltEpoch = time.Unix(1646070100, 0).UTC()
)

func modProjectTypes() []string { return []string{"mod"} }

func jarExtensions() []string { return []string{"jar", "zip"} }

// AllBuiltinValidators returns the built-in validators in dispatch order.
func AllBuiltinValidators() []validator.Validator {
	return []validator.Validator{
		PackValidator{},
		FabricValidator{},
		ForgeValidator{},
		LegacyForgeValidator{},
		QuiltValidator{},
		LiteLoaderValidator{},
	}
}

// NewRegistry returns a registry holding the built-in validators.
func NewRegistry() *validator.Registry {
	return validator.NewRegistry(AllBuiltinValidators()...)
}
