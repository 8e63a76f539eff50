package jsonfile

import (
	"path/filepath"

	"github.com/sandevgo/promptvault/internal/core"
)

const (
	promptsFileName  = "prompts.json"
	workspaceDirName = ".promptvault"
)

// ResolveDir picks the storage directory: custom path first, then the
// workspace, then the global fallback.
func ResolveDir(cfg core.StorageConfig) string {
	switch cfg.GetStorageMode() {
	case core.StorageCustom:
		if p := cfg.GetStoragePath(); p != "" {
			return p
		}
	case core.StorageWorkspace:
		if root := cfg.GetWorkspaceRoot(); root != "" {
			return filepath.Join(root, workspaceDirName)
		}
	}
	return cfg.GetGlobalPath()
}
