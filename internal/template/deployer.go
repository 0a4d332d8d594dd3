package template

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/otiai10/copy"

	"github.com/absolutejs/create-absolutejs/internal/defs"
)

// @MX:ANCHOR: [AUTO] Deployer materializes template trees into the generated project.
// @MX:REASON: [AUTO] every frontend, backend, root and quality tree goes through Deploy
// Deployer copies a template tree into a destination directory.
type Deployer interface {
	// Deploy writes every file below tree to destDir. Files ending in .tmpl
	// are rendered with data and saved without the suffix; other files are
	// copied as they are. It returns the written paths relative to destDir.
	Deploy(ctx context.Context, tree, destDir string, data *TemplateContext) ([]string, error)

	// ListTemplates returns the destination paths a tree would produce.
	ListTemplates(tree string) []string
}

// deployer is the concrete implementation of Deployer.
type deployer struct {
	fsys     fs.FS
	renderer Renderer
}

// NewDeployer creates a Deployer backed by the given filesystem.
// In production the fs.FS comes from go:embed; in tests use testing/fstest.MapFS.
func NewDeployer(fsys fs.FS) Deployer {
	return &deployer{fsys: fsys, renderer: NewRenderer(fsys)}
}

// Deploy copies static files with otiai10/copy, then renders templates.
func (d *deployer) Deploy(ctx context.Context, tree, destDir string, data *TemplateContext) ([]string, error) {
	if !HasTree(d.fsys, tree) {
		return nil, fmt.Errorf("%w: tree %s", ErrTemplateNotFound, tree)
	}
	destDir = filepath.Clean(destDir)

	files, err := d.walk(tree)
	if err != nil {
		return nil, err
	}
	for _, rel := range files {
		if err := validateDeployPath(destDir, rel); err != nil {
			return nil, err
		}
	}

	opts := copy.Options{
		FS:                d.fsys,
		PermissionControl: copy.AddPermission(0o200),
		Skip: func(info os.FileInfo, src, _ string) (bool, error) {
			if err := ctx.Err(); err != nil {
				return true, err
			}
			return !info.IsDir() && strings.HasSuffix(src, ".tmpl"), nil
		},
	}
	if err := copy.Copy(tree, destDir, opts); err != nil {
		return nil, fmt.Errorf("template deploy copy %s: %w", tree, err)
	}

	written := make([]string, 0, len(files))
	for _, rel := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		destRel, isTemplate := strings.CutSuffix(rel, ".tmpl")
		written = append(written, destRel)
		if !isTemplate {
			continue
		}

		content, err := d.renderer.Render(path.Join(tree, rel), data)
		if err != nil {
			return nil, fmt.Errorf("template render %q: %w", rel, err)
		}

		destPath := filepath.Join(destDir, filepath.FromSlash(destRel))
		if err := os.MkdirAll(filepath.Dir(destPath), defs.DirPerm); err != nil {
			return nil, fmt.Errorf("template deploy mkdir %q: %w", filepath.Dir(destPath), err)
		}
		if err := os.WriteFile(destPath, content, defs.FilePerm); err != nil {
			return nil, fmt.Errorf("template deploy write %q: %w", destPath, err)
		}
	}

	return written, nil
}

// ListTemplates returns sorted destination paths of all files in tree.
func (d *deployer) ListTemplates(tree string) []string {
	files, err := d.walk(tree)
	if err != nil {
		return nil
	}
	list := make([]string, 0, len(files))
	for _, f := range files {
		list = append(list, strings.TrimSuffix(f, ".tmpl"))
	}
	sort.Strings(list)
	return list
}

// walk returns the files below tree, relative to tree, in walk order.
func (d *deployer) walk(tree string) ([]string, error) {
	var files []string
	err := fs.WalkDir(d.fsys, tree, func(p string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		files = append(files, strings.TrimPrefix(p, tree+"/"))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk template tree %s: %w", tree, err)
	}
	return files, nil
}

// validateDeployPath ensures a template path does not escape destDir.
func validateDeployPath(destDir, relPath string) error {
	cleaned := filepath.Clean(filepath.FromSlash(relPath))

	if filepath.IsAbs(cleaned) {
		return fmt.Errorf("%w: absolute path %q", ErrPathTraversal, relPath)
	}
	if strings.HasPrefix(cleaned, "..") || strings.Contains(cleaned, string(filepath.Separator)+"..") {
		return fmt.Errorf("%w: parent reference in %q", ErrPathTraversal, relPath)
	}

	absRoot, err := filepath.Abs(destDir)
	if err != nil {
		return fmt.Errorf("resolve destination: %w", err)
	}
	absPath := filepath.Join(absRoot, cleaned)
	if !strings.HasPrefix(absPath, absRoot+string(filepath.Separator)) && absPath != absRoot {
		return fmt.Errorf("%w: %q escapes destination", ErrPathTraversal, relPath)
	}
	return nil
}
