package template

import (
	"path"
	"slices"
	"strings"

	"github.com/absolutejs/create-absolutejs/pkg/models"
)

// Dependency is one package.json entry.
type Dependency struct {
	Name    string
	Version string
}

// FrontendContext describes one generated frontend.
type FrontendContext struct {
	Name        string
	DisplayName string

	// Dir is the directory relative to src/frontend, empty for the root.
	Dir string

	// Path is the directory relative to the project root, slash separated.
	Path string

	// Route is the server route serving the frontend, without the leading slash.
	Route string

	// Entry is the page file served for Route, relative to Path.
	Entry string
}

// DrizzleContext carries the dialect-specific pieces of the Drizzle schema
// and config templates.
type DrizzleContext struct {
	Dialect     string
	Driver      string
	CorePackage string
	TableFunc   string
	IDColumn    string
	IDExpr      string
	TextFunc    string
	TextArgs    string
}

// TemplateContext provides data for rendering project templates.
// All fields are exported for use with Go's text/template package.
type TemplateContext struct {
	ProjectName string
	Version     string

	Frontends []FrontendContext

	// Frontend is the frontend being rendered; zero outside frontend trees.
	Frontend FrontendContext

	DatabaseEngine  string
	ORM             string
	DatabaseHost    string
	AuthProvider    string
	CodeQualityTool string

	UseTailwind       bool
	UseAuth           bool
	UseDrizzle        bool
	UseESLintPrettier bool

	PackageManager string
	RunDev         string

	// Container fields are set when the database runs in a local container.
	UsesContainer    bool
	ContainerCommand string
	ComposeProject   string

	// Database fields are filled by the database provisioner.
	DatabaseURL string
	Drizzle     DrizzleContext

	Dependencies    []Dependency
	DevDependencies []Dependency
}

// ContextOption configures a TemplateContext.
type ContextOption func(*TemplateContext)

// NewTemplateContext creates a TemplateContext from the scaffold request,
// then applies any provided options.
func NewTemplateContext(opts models.ProjectOptions, options ...ContextOption) *TemplateContext {
	c := &TemplateContext{
		ProjectName:       opts.ProjectName,
		Version:           "dev",
		DatabaseEngine:    string(opts.DatabaseEngine),
		ORM:               string(opts.ORM),
		DatabaseHost:      string(opts.DatabaseHost),
		AuthProvider:      string(opts.AuthProvider),
		CodeQualityTool:   string(opts.CodeQualityTool),
		UseTailwind:       opts.UseTailwind,
		UseAuth:           opts.AuthProvider == models.AuthAbsolute,
		UseDrizzle:        opts.ORM == models.ORMDrizzle,
		UseESLintPrettier: opts.CodeQualityTool == models.QualityESLintPrettier,
		PackageManager:    "bun",
		RunDev:            "bun run dev",
	}

	for _, option := range options {
		option(c)
	}

	c.Dependencies, c.DevDependencies = dependenciesFor(c)
	return c
}

// WithVersion sets the generator version shown in generated files.
func WithVersion(v string) ContextOption {
	return func(c *TemplateContext) {
		c.Version = v
	}
}

// WithPackageManager sets the package manager name and its dev command.
func WithPackageManager(name string, runDev []string) ContextOption {
	return func(c *TemplateContext) {
		c.PackageManager = name
		c.RunDev = strings.Join(runDev, " ")
	}
}

// WithFrontends sets the frontend list from directory assignments,
// given relative to src/frontend and in selection order.
func WithFrontends(frontends []models.Frontend, dirs map[models.Frontend]string, frontendRoot string) ContextOption {
	return func(c *TemplateContext) {
		c.Frontends = c.Frontends[:0]
		for _, f := range frontends {
			c.Frontends = append(c.Frontends, newFrontendContext(f, dirs[f], frontendRoot))
		}
	}
}

// WithContainer marks the database as running in a local container.
func WithContainer(command, project string) ContextOption {
	return func(c *TemplateContext) {
		c.UsesContainer = true
		c.ContainerCommand = command
		c.ComposeProject = project
	}
}

// ForFrontend returns a copy of c with Frontend set to the named frontend.
func (c *TemplateContext) ForFrontend(name string) *TemplateContext {
	cp := *c
	for _, f := range c.Frontends {
		if f.Name == name {
			cp.Frontend = f
			break
		}
	}
	return &cp
}

// HasFrontend reports whether the named frontend was selected.
func (c *TemplateContext) HasFrontend(name string) bool {
	return slices.ContainsFunc(c.Frontends, func(f FrontendContext) bool { return f.Name == name })
}

// HasDatabase reports whether a database engine was selected.
func (c *TemplateContext) HasDatabase() bool {
	return c.DatabaseEngine != "" && c.DatabaseEngine != string(models.EngineNone)
}

// FrontendExtensions returns the extra source extensions the formatter must cover.
func (c *TemplateContext) FrontendExtensions() []string {
	var exts []string
	for _, f := range c.Frontends {
		switch models.Frontend(f.Name) {
		case models.FrontendReact:
			exts = append(exts, "tsx")
		case models.FrontendVue:
			exts = append(exts, "vue")
		case models.FrontendSvelte:
			exts = append(exts, "svelte")
		case models.FrontendHTML, models.FrontendHTMX:
			if !slices.Contains(exts, "html") {
				exts = append(exts, "html")
			}
		}
	}
	return exts
}

func newFrontendContext(f models.Frontend, dir, frontendRoot string) FrontendContext {
	fc := FrontendContext{
		Name:        string(f),
		DisplayName: displayNames[f],
		Dir:         dir,
		Path:        path.Join(frontendRoot, dir),
		Route:       dir,
	}
	switch f {
	case models.FrontendReact:
		fc.Entry = "pages/App.tsx"
	case models.FrontendVue:
		fc.Entry = "pages/App.vue"
	case models.FrontendSvelte:
		fc.Entry = "pages/App.svelte"
	default:
		fc.Entry = "pages/index.html"
	}
	return fc
}

var displayNames = map[models.Frontend]string{
	models.FrontendReact:   "React",
	models.FrontendVue:     "Vue",
	models.FrontendSvelte:  "Svelte",
	models.FrontendHTML:    "HTML",
	models.FrontendHTMX:    "HTMX",
	models.FrontendAngular: "Angular",
}

