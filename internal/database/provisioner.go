package database

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"

	"github.com/absolutejs/create-absolutejs/internal/container"
	"github.com/absolutejs/create-absolutejs/internal/defs"
	"github.com/absolutejs/create-absolutejs/internal/template"
)

// Template names inside the database tree.
const (
	envTemplate           = template.DatabaseTree + "/env.tmpl"
	drizzleSchemaTemplate = template.DatabaseTree + "/drizzle/schema.ts.tmpl"
	drizzleConfigTemplate = template.DatabaseTree + "/drizzle/drizzle.config.ts.tmpl"
	initSQLTemplate       = template.DatabaseTree + "/sql/init.sql.tmpl"
)

// ContainerRuntime is the subset of container.Runtime the provisioner needs.
type ContainerRuntime interface {
	Preflight(ctx context.Context) error
	Up(ctx context.Context, dir, project, file string) error
}

var _ ContainerRuntime = (*container.Runtime)(nil)

// Result describes what Provision produced.
type Result struct {
	// Files lists written paths relative to the project directory.
	Files []string

	// ComposeFile is the compose definition relative to the project, if any.
	ComposeFile string

	// ComposeProject is the compose project name used for the database.
	ComposeProject string

	// Started is set when the database container was brought up.
	Started bool
}

// Provisioner writes the database files of a project and optionally
// starts its local container.
type Provisioner struct {
	renderer template.Renderer
	runtime  ContainerRuntime
	logger   *slog.Logger
}

// Option configures a Provisioner.
type Option func(*Provisioner)

// WithRuntime sets the container runtime used for preflight and startup.
func WithRuntime(rt ContainerRuntime) Option {
	return func(p *Provisioner) {
		p.runtime = rt
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Provisioner) {
		if l != nil {
			p.logger = l
		}
	}
}

// NewProvisioner creates a Provisioner rendering templates with renderer.
func NewProvisioner(renderer template.Renderer, opts ...Option) *Provisioner {
	p := &Provisioner{
		renderer: renderer,
		logger:   slog.Default().With("module", "database"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Preflight checks the container runtime when plan needs one. A plan
// without a container never touches the runtime.
func (p *Provisioner) Preflight(ctx context.Context, plan Plan) error {
	if !plan.Container {
		return nil
	}
	if p.runtime == nil {
		return fmt.Errorf("%w: no container runtime configured", ErrPreflight)
	}
	if err := p.runtime.Preflight(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrPreflight, err)
	}
	return nil
}

// Provision writes the database files for plan into projectDir and starts
// the container when plan.Start is set. data is the project's template
// context; it is copied, never modified.
//
// @MX:ANCHOR: [AUTO] Single entry point for database artifacts; the orchestrator's database stage calls only this.
// @MX:REASON: [AUTO] Preflight must run before any compose call, so ordering lives here.
func (p *Provisioner) Provision(ctx context.Context, projectDir string, plan Plan, data *template.TemplateContext) (*Result, error) {
	res := &Result{}
	if plan.Empty() {
		return res, nil
	}

	if err := p.Preflight(ctx, plan); err != nil {
		return nil, err
	}

	dbDir := filepath.Join(projectDir, defs.DBDir)
	if err := os.MkdirAll(dbDir, defs.DirPerm); err != nil {
		return nil, fmt.Errorf("create %s: %w", defs.DBDir, err)
	}

	tc := *data
	tc.DatabaseURL = DatabaseURL(plan)
	if plan.Drizzle {
		dc, err := drizzleContext(plan)
		if err != nil {
			return nil, err
		}
		tc.Drizzle = dc
	}

	write := func(rel string, content []byte) error {
		if err := renameio.WriteFile(filepath.Join(projectDir, rel), content, defs.FilePerm); err != nil {
			return fmt.Errorf("write %s: %w", rel, err)
		}
		res.Files = append(res.Files, rel)
		return nil
	}
	render := func(name, rel string) error {
		out, err := p.renderer.Render(name, &tc)
		if err != nil {
			return err
		}
		return write(rel, out)
	}

	if err := render(envTemplate, defs.EnvFile); err != nil {
		return nil, err
	}

	if plan.Container {
		compose, err := NewComposeFile(plan.Engine)
		if err != nil {
			return nil, err
		}
		out, err := compose.Marshal()
		if err != nil {
			return nil, err
		}
		res.ComposeFile = filepath.ToSlash(filepath.Join(defs.DBDir, defs.ComposeFile))
		res.ComposeProject = container.ProjectName(data.ProjectName)
		if err := write(res.ComposeFile, out); err != nil {
			return nil, err
		}
	}

	if plan.Drizzle {
		if err := render(drizzleSchemaTemplate, filepath.Join(defs.DBDir, defs.DrizzleSchema)); err != nil {
			return nil, err
		}
		if err := render(drizzleConfigTemplate, filepath.Join(defs.DBDir, defs.DrizzleConfig)); err != nil {
			return nil, err
		}
	}

	if plan.SQLiteFile {
		schema, err := p.renderer.Render(initSQLTemplate, &tc)
		if err != nil {
			return nil, err
		}
		if err := write(filepath.Join(defs.DBDir, defs.InitSQL), schema); err != nil {
			return nil, err
		}
		rel := filepath.Join(defs.DBDir, defs.SQLiteDatabase)
		if err := CreateSQLiteFile(ctx, filepath.Join(projectDir, rel), string(schema)); err != nil {
			return nil, err
		}
		res.Files = append(res.Files, rel)
	}

	p.logger.Debug("database files written",
		"engine", plan.Engine, "orm", plan.ORM, "host", plan.Host, "files", len(res.Files))

	if plan.Start {
		p.logger.Info("starting database container", "project", res.ComposeProject)
		if err := p.runtime.Up(ctx, projectDir, res.ComposeProject, res.ComposeFile); err != nil {
			return res, fmt.Errorf("start database: %w", err)
		}
		res.Started = true
	}
	return res, nil
}
