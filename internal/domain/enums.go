package domain

// ProjectType is the tag a project is published under.
type ProjectType string

const (
	ProjectTypeMod     ProjectType = "mod"
	ProjectTypeModpack ProjectType = "modpack"
)

// Loader tags as stored in the loaders table.
const (
	LoaderFabric     = "fabric"
	LoaderForge      = "forge"
	LoaderQuilt      = "quilt"
	LoaderLiteLoader = "liteloader"
)

// ProjectFileTypes maps accepted project file extensions (without dot) to the
// content type they are stored with.
var ProjectFileTypes = map[string]string{
	"jar":     "application/java-archive",
	"zip":     "application/zip",
	"litemod": "application/zip",
	"mrpack":  "application/x-modrinth-modpack+zip",
}

// FileStatus represents the lifecycle of an uploaded version file.
type FileStatus string

const (
	FileStatusPending  FileStatus = "pending"
	FileStatusUploaded FileStatus = "uploaded"
	FileStatusFailed   FileStatus = "failed"
	FileStatusDeleted  FileStatus = "deleted"
)

// GameVersionType classifies entries of the game version catalogue.
type GameVersionType string

const (
	GameVersionRelease  GameVersionType = "release"
	GameVersionSnapshot GameVersionType = "snapshot"
	GameVersionBeta     GameVersionType = "beta"
	GameVersionAlpha    GameVersionType = "alpha"
)
