package models

// ProjectOptions is a complete scaffold request as collected by the prompt
// layer, CLI flags or a preset file.
type ProjectOptions struct {
	ProjectName string     `yaml:"project_name" json:"projectName"`
	Frontends   []Frontend `yaml:"frontends" json:"frontends"`

	// FrontendDirectories overrides the target directory of a frontend
	// relative to src/frontend. Values are trimmed before use.
	FrontendDirectories map[Frontend]string `yaml:"frontend_directories,omitempty" json:"frontendDirectories,omitempty"`

	DatabaseEngine  DatabaseEngine  `yaml:"database_engine" json:"databaseEngine"`
	ORM             ORM             `yaml:"orm" json:"orm"`
	DatabaseHost    DatabaseHost    `yaml:"database_host" json:"databaseHost"`
	AuthProvider    AuthProvider    `yaml:"auth_provider" json:"authProvider"`
	CodeQualityTool CodeQualityTool `yaml:"code_quality_tool,omitempty" json:"codeQualityTool,omitempty"`
	DirectoryConfig DirectoryConfig `yaml:"directory_config" json:"directoryConfig"`
	UseTailwind     bool            `yaml:"use_tailwind" json:"useTailwind"`

	// PackageManager is the raw key from the UI boundary (bun, npm, pnpm, yarn).
	PackageManager string `yaml:"package_manager,omitempty" json:"packageManager,omitempty"`

	InitGit             bool `yaml:"init_git" json:"initGit"`
	InstallDependencies bool `yaml:"install_dependencies" json:"installDependencies"`
	FormatFiles         bool `yaml:"format_files" json:"formatFiles"`
	StartDatabase       bool `yaml:"start_database" json:"startDatabase"`
}

// IsSingleFrontend reports whether exactly one frontend was selected.
func (p ProjectOptions) IsSingleFrontend() bool {
	return len(p.Frontends) == 1
}

// Configurations expands the request into one Configuration per selected
// frontend so that every frontend is checked against the same rules.
func (p ProjectOptions) Configurations() []Configuration {
	configs := make([]Configuration, 0, len(p.Frontends))
	for _, f := range p.Frontends {
		configs = append(configs, Configuration{
			Frontend:        f,
			DatabaseEngine:  p.DatabaseEngine,
			ORM:             p.ORM,
			DatabaseHost:    p.DatabaseHost,
			AuthProvider:    p.AuthProvider,
			CodeQualityTool: p.CodeQualityTool,
			DirectoryConfig: p.DirectoryConfig,
			UseTailwind:     p.UseTailwind,
		})
	}
	return configs
}

// HasDatabase reports whether a database engine was selected.
func (p ProjectOptions) HasDatabase() bool {
	return p.DatabaseEngine != "" && p.DatabaseEngine != EngineNone
}

// DefaultProjectOptions returns the options used when neither flags nor
// prompts supply a value.
func DefaultProjectOptions(name string) ProjectOptions {
	return ProjectOptions{
		ProjectName:         name,
		Frontends:           []Frontend{FrontendReact},
		DatabaseEngine:      EngineNone,
		ORM:                 ORMNone,
		DatabaseHost:        HostNone,
		AuthProvider:        AuthNone,
		CodeQualityTool:     QualityESLintPrettier,
		DirectoryConfig:     DirectoryDefault,
		UseTailwind:         false,
		InitGit:             true,
		InstallDependencies: true,
		FormatFiles:         true,
	}
}
