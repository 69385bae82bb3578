package domain

// PackFormat is the modpack index stored as modrinth.index.json inside an
// .mrpack archive.
type PackFormat struct {
	Game          string            `json:"game"`
	FormatVersion int               `json:"formatVersion"`
	VersionID     string            `json:"versionId"`
	Name          string            `json:"name"`
	Summary       *string           `json:"summary,omitempty"`
	Files         []PackFile        `json:"files"`
	Dependencies  map[string]string `json:"dependencies"`
}

// PackFile is a single file the pack installer downloads.
type PackFile struct {
	Path      string            `json:"path"`
	Hashes    map[string]string `json:"hashes"`
	Env       map[string]string `json:"env,omitempty"`
	Downloads []string          `json:"downloads"`
	FileSize  uint32            `json:"fileSize"`
}

// Pack dependency keys.
const (
	PackDependencyMinecraft    = "minecraft"
	PackDependencyForge        = "forge"
	PackDependencyFabricLoader = "fabric-loader"
	PackDependencyQuiltLoader  = "quilt-loader"
)
