package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/absolutejs/create-absolutejs/internal/compat"
	"github.com/absolutejs/create-absolutejs/internal/container"
	"github.com/absolutejs/create-absolutejs/internal/core/git"
	"github.com/absolutejs/create-absolutejs/internal/core/layout"
	"github.com/absolutejs/create-absolutejs/internal/database"
	"github.com/absolutejs/create-absolutejs/internal/defs"
	"github.com/absolutejs/create-absolutejs/internal/pkgmgr"
	"github.com/absolutejs/create-absolutejs/internal/process"
	"github.com/absolutejs/create-absolutejs/internal/template"
	"github.com/absolutejs/create-absolutejs/pkg/models"
)

// DatabaseProvisioner writes database artifacts; *database.Provisioner implements it.
type DatabaseProvisioner interface {
	Provision(ctx context.Context, projectDir string, plan database.Plan, data *template.TemplateContext) (*database.Result, error)
}

// GitInitializer creates the initial repository; *git.Initializer implements it.
type GitInitializer interface {
	Init(ctx context.Context, dir string) error
}

var (
	_ DatabaseProvisioner = (*database.Provisioner)(nil)
	_ GitInitializer      = (*git.Initializer)(nil)
)

// Result summarizes a completed run.
type Result struct {
	RunID          uuid.UUID
	ProjectPath    string
	Directories    layout.Directories
	PackageManager pkgmgr.PackageManager

	// Files lists generated files relative to ProjectPath.
	Files []string

	// Database is nil when no database stage output exists.
	Database *database.Result

	Steps    []Step
	Warnings []string
}

// Orchestrator runs scaffold stages. It is safe to reuse across runs.
type Orchestrator struct {
	templates       fs.FS
	deployer        template.Deployer
	provisioner     DatabaseProvisioner
	git             GitInitializer
	runner          process.Runner
	reporter        Reporter
	logger          *slog.Logger
	version         string
	containerBinary string
	packageManager  pkgmgr.PackageManager
	installTimeout  time.Duration
	formatTimeout   time.Duration
	newRunID        func() uuid.UUID
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithProvisioner sets the database provisioner.
func WithProvisioner(p DatabaseProvisioner) Option {
	return func(o *Orchestrator) { o.provisioner = p }
}

// WithGit sets the repository initializer.
func WithGit(g GitInitializer) Option {
	return func(o *Orchestrator) { o.git = g }
}

// WithRunner sets the runner for package manager commands.
func WithRunner(r process.Runner) Option {
	return func(o *Orchestrator) { o.runner = r }
}

// WithReporter sets the progress reporter.
func WithReporter(r Reporter) Option {
	return func(o *Orchestrator) {
		if r != nil {
			o.reporter = r
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Orchestrator) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithVersion sets the generator version written into templates.
func WithVersion(v string) Option {
	return func(o *Orchestrator) { o.version = v }
}

// WithContainerBinary sets the runtime named in generated database scripts.
func WithContainerBinary(bin string) Option {
	return func(o *Orchestrator) { o.containerBinary = bin }
}

// WithPackageManager sets the manager used when the options name none.
func WithPackageManager(pm pkgmgr.PackageManager) Option {
	return func(o *Orchestrator) { o.packageManager = pm }
}

// WithTimeouts bounds the install and format commands.
func WithTimeouts(install, format time.Duration) Option {
	return func(o *Orchestrator) {
		o.installTimeout = install
		o.formatTimeout = format
	}
}

// New creates an Orchestrator generating from templates. Collaborators
// not set through options get production defaults.
func New(templates fs.FS, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		templates:       templates,
		reporter:        nopReporter{},
		logger:          slog.Default().With("module", "scaffold"),
		version:         "dev",
		containerBinary: "docker",
		packageManager:  pkgmgr.Default,
		installTimeout:  10 * time.Minute,
		formatTimeout:   2 * time.Minute,
		newRunID:        uuid.New,
	}
	for _, opt := range opts {
		opt(o)
	}

	o.deployer = template.NewDeployer(templates)
	if o.runner == nil {
		o.runner = process.NewExecRunner(process.WithLogger(o.logger))
	}
	if o.provisioner == nil {
		o.provisioner = database.NewProvisioner(template.NewRenderer(templates), database.WithLogger(o.logger))
	}
	if o.git == nil {
		o.git = git.NewInitializer(o.runner, git.WithLogger(o.logger))
	}
	return o
}

// run holds the state of one Run call.
type run struct {
	o      *Orchestrator
	opts   models.ProjectOptions
	res    *Result
	logger *slog.Logger

	plan   database.Plan
	data   *template.TemplateContext
	unlock func()

	mu sync.Mutex
}

type stageFunc struct {
	stage   Stage
	enabled bool
	fn      func(context.Context) (string, error)
}

// Run generates opts.ProjectName inside parentDir. Stages run strictly in
// order; the first failure aborts with a *StageError and nothing is
// rolled back; the partial Result is returned alongside the error. All
// validation happens in the init stage, before the first filesystem write.
//
// @MX:ANCHOR: [AUTO] Entry point for create and dev; every generated project passes through here.
// @MX:REASON: [AUTO] Stage order is the contract: init validates, allocate-root is the first write.
func (o *Orchestrator) Run(ctx context.Context, parentDir string, opts models.ProjectOptions) (*Result, error) {
	r := &run{
		o:    o,
		opts: opts,
		res: &Result{
			RunID:       o.newRunID(),
			ProjectPath: filepath.Join(parentDir, opts.ProjectName),
		},
	}
	r.logger = o.logger.With("run", r.res.RunID.String(), "project", opts.ProjectName)
	defer func() {
		if r.unlock != nil {
			r.unlock()
		}
	}()

	formatEnabled := opts.FormatFiles && opts.InstallDependencies && opts.CodeQualityTool != models.QualityNone
	stages := []stageFunc{
		{StageInit, true, r.validate},
		{StageAllocateRoot, true, r.allocateRoot},
		{StageScaffoldFrontends, true, r.scaffoldFrontends},
		{StageScaffoldDatabase, true, r.scaffoldDatabase},
		{StageInitGit, opts.InitGit, r.initGit},
		{StageInstallDependencies, opts.InstallDependencies, r.install},
		{StageFormatFiles, formatEnabled, r.format},
	}

	total := 0
	for _, s := range stages {
		if s.enabled {
			total++
		}
	}

	index := 0
	for _, s := range stages {
		if !s.enabled {
			r.res.Steps = append(r.res.Steps, Step{Stage: s.stage, Skipped: true})
			continue
		}
		if err := ctx.Err(); err != nil {
			return r.res, &StageError{Stage: s.stage, Err: err}
		}

		o.reporter.StageStarted(string(s.stage), index, total)
		start := time.Now()
		detail, err := s.fn(ctx)
		o.reporter.StageFinished(string(s.stage), err)
		if err != nil {
			r.logger.Debug("stage failed", "stage", s.stage, "error", err)
			return r.res, &StageError{Stage: s.stage, Err: err}
		}
		r.logger.Debug("stage done", "stage", s.stage, "duration", time.Since(start))
		r.res.Steps = append(r.res.Steps, Step{Stage: s.stage, Detail: detail})
		index++
	}

	r.res.Steps = append(r.res.Steps, Step{Stage: StageDone})
	r.logger.Info("project created", "path", r.res.ProjectPath, "files", len(r.res.Files))
	return r.res, nil
}

func (r *run) warn(msg string) {
	r.mu.Lock()
	r.res.Warnings = append(r.res.Warnings, msg)
	r.mu.Unlock()
	r.o.reporter.Warn(msg)
	r.logger.Debug("warning", "message", msg)
}

func (r *run) addFiles(dir string, files []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, f := range files {
		r.res.Files = append(r.res.Files, filepath.ToSlash(filepath.Join(dir, f)))
	}
}

// Validate runs the option checks of the init stage: compatibility rules,
// the project name and frontend directory allocation. It never touches
// the filesystem, so callers about to delete or replace a project call it
// first.
func Validate(opts models.ProjectOptions) error {
	_, err := checkOptions(opts)
	return err
}

func checkOptions(opts models.ProjectOptions) (layout.Directories, error) {
	if err := compat.CheckProject(opts); err != nil {
		return nil, err
	}
	return layout.Allocate(opts.Frontends, opts.FrontendDirectories, opts.IsSingleFrontend())
}

// validate checks everything and prepares the template context. It never
// writes to the filesystem.
func (r *run) validate(context.Context) (string, error) {
	dirs, err := checkOptions(r.opts)
	if err != nil {
		return "", err
	}
	r.res.Directories = dirs

	pm := r.o.packageManager
	if r.opts.PackageManager != "" {
		var ok bool
		if pm, ok = pkgmgr.Parse(r.opts.PackageManager); !ok {
			r.warn(fmt.Sprintf("unknown package manager %q, using %s", r.opts.PackageManager, pm))
		}
	}
	r.res.PackageManager = pm

	if _, err := os.Lstat(r.res.ProjectPath); err == nil {
		return "", fmt.Errorf("%w: %s", ErrProjectExists, r.res.ProjectPath)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("inspect %s: %w", r.res.ProjectPath, err)
	}

	byFrontend := make(map[models.Frontend]string, len(dirs))
	for dir, f := range dirs {
		byFrontend[f] = dir
	}

	r.plan = database.NewPlan(r.opts)
	ctxOpts := []template.ContextOption{
		template.WithVersion(r.o.version),
		template.WithPackageManager(pm.String(), pm.RunArgv("dev")),
		template.WithFrontends(r.opts.Frontends, byFrontend, defs.FrontendDir),
	}
	if r.plan.Container {
		ctxOpts = append(ctxOpts, template.WithContainer(r.o.containerBinary, container.ProjectName(r.opts.ProjectName)))
	}
	r.data = template.NewTemplateContext(r.opts, ctxOpts...)

	return fmt.Sprintf("%d frontend(s), package manager %s", len(dirs), pm), nil
}

// allocateRoot creates the project directory with a single Mkdir while
// holding a lock file next to it. The lock is held until Run returns.
func (r *run) allocateRoot(context.Context) (string, error) {
	path := r.res.ProjectPath
	lockPath := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+defs.LockSuffix)

	lock := flock.New(lockPath)
	locked, err := lock.TryLock()
	if err != nil {
		return "", fmt.Errorf("lock %s: %w", lockPath, err)
	}
	if !locked {
		return "", fmt.Errorf("%w: %s", ErrProjectLocked, path)
	}
	r.unlock = func() {
		_ = lock.Unlock()
		_ = os.Remove(lockPath)
	}

	if err := os.Mkdir(path, defs.DirPerm); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", fmt.Errorf("%w: %s", ErrProjectExists, path)
		}
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	return path, nil
}

// scaffoldFrontends writes the shared project files, then every frontend
// tree concurrently.
func (r *run) scaffoldFrontends(ctx context.Context) (string, error) {
	root := r.res.ProjectPath

	deploy := func(ctx context.Context, tree, rel string, data *template.TemplateContext) error {
		files, err := r.o.deployer.Deploy(ctx, tree, filepath.Join(root, rel), data)
		if err != nil {
			return fmt.Errorf("deploy %s: %w", tree, err)
		}
		r.addFiles(rel, files)
		return nil
	}

	shared := []struct {
		tree    string
		rel     string
		enabled bool
	}{
		{template.RootTree, "", true},
		{template.BackendTree, defs.BackendDir, true},
		{template.TailwindTree, "", r.opts.UseTailwind},
		{qualityTree(r.opts.CodeQualityTool), "", r.opts.CodeQualityTool != models.QualityNone},
	}
	for _, s := range shared {
		if !s.enabled {
			continue
		}
		if err := deploy(ctx, s.tree, s.rel, r.data); err != nil {
			return "", err
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	generated := 0
	for _, dir := range r.res.Directories.Sorted() {
		f := r.res.Directories[dir]
		tree := template.FrontendTreePath(string(f))
		if !template.HasTree(r.o.templates, tree) {
			r.warn(fmt.Sprintf("no generator registered for frontend %s, skipped", f))
			continue
		}
		generated++
		rel := filepath.Join(defs.FrontendDir, filepath.FromSlash(dir))
		data := r.data.ForFrontend(string(f))
		g.Go(func() error {
			return deploy(gctx, tree, rel, data)
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}
	return fmt.Sprintf("%d frontend(s) generated", generated), nil
}

func qualityTree(tool models.CodeQualityTool) string {
	return template.QualityTreePath(strings.ReplaceAll(string(tool), "+", "-"))
}

func (r *run) scaffoldDatabase(ctx context.Context) (string, error) {
	if r.plan.Empty() {
		return "no database", nil
	}
	res, err := r.o.provisioner.Provision(ctx, r.res.ProjectPath, r.plan, r.data)
	if res != nil {
		r.res.Database = res
		r.addFiles("", res.Files)
	}
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s: %d file(s)", r.plan.Engine, len(res.Files)), nil
}

func (r *run) initGit(ctx context.Context) (string, error) {
	if err := r.o.git.Init(ctx, r.res.ProjectPath); err != nil {
		return "", err
	}
	return "branch " + git.DefaultBranch, nil
}

func (r *run) install(ctx context.Context) (string, error) {
	return r.runPackageManager(ctx, r.res.PackageManager.InstallArgv(), r.o.installTimeout)
}

func (r *run) format(ctx context.Context) (string, error) {
	return r.runPackageManager(ctx, r.res.PackageManager.FormatArgv(), r.o.formatTimeout)
}

func (r *run) runPackageManager(ctx context.Context, argv []string, timeout time.Duration) (string, error) {
	res, err := r.o.runner.Run(ctx, argv, process.Options{Dir: r.res.ProjectPath, Timeout: timeout})
	if err != nil {
		return "", fmt.Errorf("start %s: %w", argv[0], err)
	}
	if err := process.Check(argv, res); err != nil {
		return "", err
	}
	return strings.Join(argv, " "), nil
}
