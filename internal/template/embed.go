package template

import (
	"embed"
	"io/fs"
	"os"
)

//go:embed all:templates
var embedded embed.FS

// Template tree roots inside the template filesystem.
const (
	RootTree     = "root"
	BackendTree  = "backend"
	TailwindTree = "tailwind"
	FrontendTree = "frontends"
	DatabaseTree = "database"
	QualityTree  = "quality"
)

// EmbeddedTemplates returns the templates compiled into the binary.
func EmbeddedTemplates() (fs.FS, error) {
	return fs.Sub(embedded, "templates")
}

// Open returns dir as the template filesystem when set, and the embedded
// templates otherwise.
func Open(dir string) (fs.FS, error) {
	if dir == "" {
		return EmbeddedTemplates()
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, &fs.PathError{Op: "open", Path: dir, Err: fs.ErrInvalid}
	}
	return os.DirFS(dir), nil
}

// FrontendTreePath returns the template tree of a frontend.
func FrontendTreePath(name string) string {
	return FrontendTree + "/" + name
}

// QualityTreePath returns the template tree of a code-quality tool.
func QualityTreePath(tool string) string {
	return QualityTree + "/" + tool
}

// HasTree reports whether fsys contains the directory tree.
func HasTree(fsys fs.FS, tree string) bool {
	info, err := fs.Stat(fsys, tree)
	return err == nil && info.IsDir()
}
