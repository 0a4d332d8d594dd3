package wizard

import (
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/absolutejs/create-absolutejs/internal/compat"
	"github.com/absolutejs/create-absolutejs/internal/pkgmgr"
	"github.com/absolutejs/create-absolutejs/pkg/models"
)

// Question IDs.
const (
	IDProjectName     = "project_name"
	IDFrontends       = "frontends"
	IDDirectoryConfig = "directory_config"
	IDDatabaseEngine  = "database_engine"
	IDORM             = "orm"
	IDDatabaseHost    = "database_host"
	IDAuthProvider    = "auth_provider"
	IDCodeQuality     = "code_quality_tool"
	IDTailwind        = "use_tailwind"
	IDPackageManager  = "package_manager"
	IDInitGit         = "init_git"
	IDInstall         = "install_dependencies"
	IDStartDatabase   = "start_database"

	frontendDirPrefix = "frontend_dir:"
)

var frontendDescriptions = map[models.Frontend]string{
	models.FrontendReact:  "Components with hooks",
	models.FrontendVue:    "Single-file components",
	models.FrontendSvelte: "Compiled components",
	models.FrontendHTML:   "Plain pages with TypeScript",
	models.FrontendHTMX:   "Server-driven hypermedia",
}

// DefaultQuestions returns the full question list in the order asked.
// When askName is false the project name was given on the command line.
func DefaultQuestions(askName bool) []Question {
	var qs []Question
	if askName {
		qs = append(qs, Question{
			ID:          IDProjectName,
			Type:        QuestionTypeInput,
			Title:       "Project name",
			Description: "Used as the directory and package name",
			Validate:    compat.CheckProjectName,
		})
	}

	qs = append(qs,
		Question{
			ID:    IDFrontends,
			Type:  QuestionTypeMultiSelect,
			Title: "Frontends",
			Options: func(*models.ProjectOptions) []Option {
				return frontendOptions()
			},
			Validate: func(v string) error {
				if v == "" {
					return errNoFrontend
				}
				return nil
			},
		},
		Question{
			ID:    IDDirectoryConfig,
			Type:  QuestionTypeSelect,
			Title: "Frontend directories",
			Options: func(*models.ProjectOptions) []Option {
				return []Option{
					{Label: "Default", Value: string(models.DirectoryDefault), Desc: "src/frontend, one folder per framework"},
					{Label: "Custom", Value: string(models.DirectoryCustom), Desc: "choose each folder"},
				}
			},
		},
	)

	for _, f := range implementedFrontends() {
		qs = append(qs, Question{
			ID:          frontendDirPrefix + string(f),
			Type:        QuestionTypeInput,
			Title:       "Directory for " + string(f),
			Description: "Relative to src/frontend; \".\" means src/frontend itself",
			Condition: func(o *models.ProjectOptions) bool {
				return o.DirectoryConfig == models.DirectoryCustom && lo.Contains(o.Frontends, f)
			},
		})
	}

	qs = append(qs,
		Question{
			ID:      IDDatabaseEngine,
			Type:    QuestionTypeSelect,
			Title:   "Database engine",
			Options: engineOptions,
		},
		Question{
			ID:        IDORM,
			Type:      QuestionTypeSelect,
			Title:     "ORM",
			Options:   ormOptions,
			Condition: drizzleAvailable,
		},
		Question{
			ID:        IDDatabaseHost,
			Type:      QuestionTypeSelect,
			Title:     "Database host",
			Options:   hostOptions,
			Condition: hasDatabase,
		},
		Question{
			ID:    IDAuthProvider,
			Type:  QuestionTypeSelect,
			Title: "Authentication",
			Options: func(*models.ProjectOptions) []Option {
				return []Option{
					{Label: "Absolute Auth", Value: string(models.AuthAbsolute)},
					{Label: "None", Value: string(models.AuthNone)},
				}
			},
		},
		Question{
			ID:    IDCodeQuality,
			Type:  QuestionTypeSelect,
			Title: "Code quality",
			Options: func(*models.ProjectOptions) []Option {
				return []Option{
					{Label: "ESLint + Prettier", Value: string(models.QualityESLintPrettier)},
					{Label: "None", Value: string(models.QualityNone)},
				}
			},
		},
		Question{ID: IDTailwind, Type: QuestionTypeConfirm, Title: "Use Tailwind CSS?"},
		Question{
			ID:    IDPackageManager,
			Type:  QuestionTypeSelect,
			Title: "Package manager",
			Options: func(*models.ProjectOptions) []Option {
				return lo.Map(pkgmgr.All(), func(p pkgmgr.PackageManager, _ int) Option {
					return Option{Label: p.String(), Value: p.String()}
				})
			},
		},
		Question{ID: IDInitGit, Type: QuestionTypeConfirm, Title: "Initialize a git repository?"},
		Question{ID: IDInstall, Type: QuestionTypeConfirm, Title: "Install dependencies?"},
		Question{
			ID:    IDStartDatabase,
			Type:  QuestionTypeConfirm,
			Title: "Start the database container now?",
			Condition: func(o *models.ProjectOptions) bool {
				return hasDatabase(o) && o.DatabaseHost == models.HostNone && o.DatabaseEngine != models.EngineSQLite
			},
		},
	)
	return qs
}

func implementedFrontends() []models.Frontend {
	return lo.Filter(models.AllFrontends(), func(f models.Frontend, _ int) bool { return f.IsImplemented() })
}

func frontendOptions() []Option {
	return lo.Map(implementedFrontends(), func(f models.Frontend, _ int) Option {
		return Option{Label: string(f), Value: string(f), Desc: frontendDescriptions[f]}
	})
}

func hasDatabase(o *models.ProjectOptions) bool {
	return o.HasDatabase()
}

// drizzleAvailable reports whether the ORM question has a choice to offer.
// Other engines only ever get "none".
func drizzleAvailable(o *models.ProjectOptions) bool {
	return o.HasDatabase() && lo.Contains(compat.DrizzleCompatibleEngines(), o.DatabaseEngine)
}

// probe builds the configuration the compatibility rules see for the
// current answers, using the first selected frontend.
func probe(o *models.ProjectOptions) models.Configuration {
	probe := *o
	if len(probe.Frontends) == 0 {
		probe.Frontends = []models.Frontend{models.FrontendReact}
	}
	return probe.Configurations()[0]
}

func engineOptions(*models.ProjectOptions) []Option {
	return lo.FilterMap(models.AllDatabaseEngines(), func(e models.DatabaseEngine, _ int) (Option, bool) {
		return Option{Label: string(e), Value: string(e)}, e.IsImplemented()
	})
}

// ormOptions offers only ORMs the rules accept with the chosen engine.
func ormOptions(o *models.ProjectOptions) []Option {
	base := probe(o)
	base.DatabaseHost = models.HostNone
	return lo.FilterMap(models.AllORMs(), func(orm models.ORM, _ int) (Option, bool) {
		c := base
		c.ORM = orm
		return Option{Label: string(orm), Value: string(orm)}, compat.IsValid(c)
	})
}

// hostOptions offers only hosts the rules accept with the chosen engine and ORM.
func hostOptions(o *models.ProjectOptions) []Option {
	base := probe(o)
	return lo.FilterMap(models.AllDatabaseHosts(), func(h models.DatabaseHost, _ int) (Option, bool) {
		c := base
		c.DatabaseHost = h
		opt := Option{Label: string(h), Value: string(h)}
		if engines, ok := compat.HostAllowedEngines(h); ok {
			opt.Desc = "serves " + strings.Join(lo.Map(engines, func(e models.DatabaseEngine, _ int) string { return string(e) }), ", ")
		}
		return opt, compat.IsValid(c)
	})
}

// currentValue returns the answer already held in o for question id.
func currentValue(id string, o *models.ProjectOptions) string {
	switch id {
	case IDProjectName:
		return o.ProjectName
	case IDFrontends:
		return strings.Join(lo.Map(o.Frontends, func(f models.Frontend, _ int) string { return string(f) }), ",")
	case IDDirectoryConfig:
		return string(o.DirectoryConfig)
	case IDDatabaseEngine:
		return string(o.DatabaseEngine)
	case IDORM:
		return string(o.ORM)
	case IDDatabaseHost:
		return string(o.DatabaseHost)
	case IDAuthProvider:
		return string(o.AuthProvider)
	case IDCodeQuality:
		return string(o.CodeQualityTool)
	case IDTailwind:
		return strconv.FormatBool(o.UseTailwind)
	case IDPackageManager:
		return o.PackageManager
	case IDInitGit:
		return strconv.FormatBool(o.InitGit)
	case IDInstall:
		return strconv.FormatBool(o.InstallDependencies)
	case IDStartDatabase:
		return strconv.FormatBool(o.StartDatabase)
	}
	if f, ok := strings.CutPrefix(id, frontendDirPrefix); ok {
		return o.FrontendDirectories[models.Frontend(f)]
	}
	return ""
}

// applyValue stores an answer into o. Multi-select answers are comma-joined.
func applyValue(id, v string, o *models.ProjectOptions) {
	switch id {
	case IDProjectName:
		o.ProjectName = strings.TrimSpace(v)
	case IDFrontends:
		o.Frontends = nil
		for _, f := range strings.Split(v, ",") {
			if f = strings.TrimSpace(f); f != "" {
				o.Frontends = append(o.Frontends, models.Frontend(f))
			}
		}
	case IDDirectoryConfig:
		o.DirectoryConfig = models.DirectoryConfig(v)
	case IDDatabaseEngine:
		o.DatabaseEngine = models.DatabaseEngine(v)
		if !o.HasDatabase() {
			o.ORM, o.DatabaseHost = models.ORMNone, models.HostNone
			return
		}
		if o.ORM == models.ORMDrizzle && !lo.Contains(compat.DrizzleCompatibleEngines(), o.DatabaseEngine) {
			o.ORM = models.ORMNone
		}
		if engines, ok := compat.HostAllowedEngines(o.DatabaseHost); ok && !lo.Contains(engines, o.DatabaseEngine) {
			o.DatabaseHost = models.HostNone
		}
	case IDORM:
		o.ORM = models.ORM(v)
	case IDDatabaseHost:
		o.DatabaseHost = models.DatabaseHost(v)
	case IDAuthProvider:
		o.AuthProvider = models.AuthProvider(v)
	case IDCodeQuality:
		o.CodeQualityTool = models.CodeQualityTool(v)
	case IDTailwind:
		o.UseTailwind, _ = strconv.ParseBool(v)
	case IDPackageManager:
		o.PackageManager = v
	case IDInitGit:
		o.InitGit, _ = strconv.ParseBool(v)
	case IDInstall:
		o.InstallDependencies, _ = strconv.ParseBool(v)
	case IDStartDatabase:
		o.StartDatabase, _ = strconv.ParseBool(v)
	default:
		if f, ok := strings.CutPrefix(id, frontendDirPrefix); ok {
			if o.FrontendDirectories == nil {
				o.FrontendDirectories = make(map[models.Frontend]string)
			}
			o.FrontendDirectories[models.Frontend(f)] = strings.TrimSpace(v)
		}
	}
}
