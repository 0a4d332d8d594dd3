package defs

import "io/fs"

// AppName is the tool name used for config directories and env prefixes.
const AppName = "create-absolutejs"

// Project layout directories, relative to the project root.
const (
	SrcDir      = "src"
	FrontendDir = "src/frontend"
	BackendDir  = "src/backend"
	DBDir       = "db"
)

// Permissions for generated files and directories.
const (
	DirPerm  fs.FileMode = 0o755
	FilePerm fs.FileMode = 0o644
	ExecPerm fs.FileMode = 0o755
)
