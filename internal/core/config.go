package core

type StorageMode string

const (
	StorageGlobal    StorageMode = "global"
	StorageWorkspace StorageMode = "workspace"
	StorageCustom    StorageMode = "custom"
)

type StorageConfig interface {
	GetStorageMode() StorageMode
	GetStoragePath() string
	GetWorkspaceRoot() string
	GetGlobalPath() string
}
