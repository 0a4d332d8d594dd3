// @MX:NOTE: [AUTO] Option domains for every scaffold axis. Unimplemented values stay in the domain so raw input can be rejected explicitly.
package models

// Frontend is a frontend framework that can be scaffolded.
type Frontend string

const (
	FrontendReact   Frontend = "react"
	FrontendVue     Frontend = "vue"
	FrontendSvelte  Frontend = "svelte"
	FrontendHTML    Frontend = "html"
	FrontendHTMX    Frontend = "htmx"
	FrontendAngular Frontend = "angular" // not implemented yet
)

// AllFrontends returns the full frontend domain in declaration order.
func AllFrontends() []Frontend {
	return []Frontend{FrontendReact, FrontendVue, FrontendSvelte, FrontendHTML, FrontendHTMX, FrontendAngular}
}

// IsValid reports whether f is inside the frontend domain.
func (f Frontend) IsValid() bool {
	switch f {
	case FrontendReact, FrontendVue, FrontendSvelte, FrontendHTML, FrontendHTMX, FrontendAngular:
		return true
	}
	return false
}

// IsImplemented reports whether f can actually be generated.
func (f Frontend) IsImplemented() bool {
	return f.IsValid() && f != FrontendAngular
}

// DatabaseEngine is the database engine backing the generated project.
type DatabaseEngine string

const (
	EnginePostgreSQL  DatabaseEngine = "postgresql"
	EngineMySQL       DatabaseEngine = "mysql"
	EngineSQLite      DatabaseEngine = "sqlite"
	EngineMongoDB     DatabaseEngine = "mongodb"
	EngineMariaDB     DatabaseEngine = "mariadb"
	EngineGel         DatabaseEngine = "gel"
	EngineSingleStore DatabaseEngine = "singlestore"
	EngineCockroachDB DatabaseEngine = "cockroachdb"
	EngineMSSQL       DatabaseEngine = "mssql"
	EngineNone        DatabaseEngine = "none"
)

// AllDatabaseEngines returns the full engine domain in declaration order.
func AllDatabaseEngines() []DatabaseEngine {
	return []DatabaseEngine{
		EnginePostgreSQL, EngineMySQL, EngineSQLite, EngineMongoDB, EngineMariaDB,
		EngineGel, EngineSingleStore, EngineCockroachDB, EngineMSSQL, EngineNone,
	}
}

// IsValid reports whether e is inside the engine domain.
func (e DatabaseEngine) IsValid() bool {
	switch e {
	case EnginePostgreSQL, EngineMySQL, EngineSQLite, EngineMongoDB, EngineMariaDB,
		EngineGel, EngineSingleStore, EngineCockroachDB, EngineMSSQL, EngineNone:
		return true
	}
	return false
}

// IsImplemented reports whether e can be provisioned. Every engine in the
// domain is currently implemented.
func (e DatabaseEngine) IsImplemented() bool {
	return e.IsValid()
}

// ORM is the object-relational mapper wired into the generated backend.
type ORM string

const (
	ORMDrizzle ORM = "drizzle"
	ORMPrisma  ORM = "prisma" // not implemented yet
	ORMNone    ORM = "none"
)

// AllORMs returns the full ORM domain in declaration order.
func AllORMs() []ORM {
	return []ORM{ORMDrizzle, ORMPrisma, ORMNone}
}

// IsValid reports whether o is inside the ORM domain.
func (o ORM) IsValid() bool {
	switch o {
	case ORMDrizzle, ORMPrisma, ORMNone:
		return true
	}
	return false
}

// IsImplemented reports whether o can be generated.
func (o ORM) IsImplemented() bool {
	return o.IsValid() && o != ORMPrisma
}

// DatabaseHost is a managed database provider.
type DatabaseHost string

const (
	HostNeon        DatabaseHost = "neon"
	HostPlanetScale DatabaseHost = "planetscale"
	HostTurso       DatabaseHost = "turso"
	HostNone        DatabaseHost = "none"
)

// AllDatabaseHosts returns the full host domain in declaration order.
func AllDatabaseHosts() []DatabaseHost {
	return []DatabaseHost{HostNeon, HostPlanetScale, HostTurso, HostNone}
}

// IsValid reports whether h is inside the host domain.
func (h DatabaseHost) IsValid() bool {
	switch h {
	case HostNeon, HostPlanetScale, HostTurso, HostNone:
		return true
	}
	return false
}

// IsImplemented reports whether h can be configured.
func (h DatabaseHost) IsImplemented() bool {
	return h.IsValid()
}

// AuthProvider is the authentication integration of the generated project.
type AuthProvider string

const (
	AuthAbsolute AuthProvider = "absoluteAuth"
	AuthNone     AuthProvider = "none"
)

// AllAuthProviders returns the full auth provider domain in declaration order.
func AllAuthProviders() []AuthProvider {
	return []AuthProvider{AuthAbsolute, AuthNone}
}

// IsValid reports whether a is inside the auth provider domain.
func (a AuthProvider) IsValid() bool {
	return a == AuthAbsolute || a == AuthNone
}

// IsImplemented reports whether a can be generated.
func (a AuthProvider) IsImplemented() bool {
	return a.IsValid()
}

// CodeQualityTool is the linter/formatter setup. The empty value means no tool.
type CodeQualityTool string

const (
	QualityESLintPrettier CodeQualityTool = "eslint+prettier"
	QualityBiome          CodeQualityTool = "biome" // not implemented yet
	QualityNone           CodeQualityTool = ""
)

// AllCodeQualityTools returns the full code-quality domain in declaration order.
func AllCodeQualityTools() []CodeQualityTool {
	return []CodeQualityTool{QualityESLintPrettier, QualityBiome, QualityNone}
}

// IsValid reports whether q is inside the code-quality domain.
func (q CodeQualityTool) IsValid() bool {
	switch q {
	case QualityESLintPrettier, QualityBiome, QualityNone:
		return true
	}
	return false
}

// IsImplemented reports whether q can be generated.
func (q CodeQualityTool) IsImplemented() bool {
	return q.IsValid() && q != QualityBiome
}

// DirectoryConfig selects between the default layout and user-supplied directories.
type DirectoryConfig string

const (
	DirectoryDefault DirectoryConfig = "default"
	DirectoryCustom  DirectoryConfig = "custom"
)

// AllDirectoryConfigs returns the full directory-config domain in declaration order.
func AllDirectoryConfigs() []DirectoryConfig {
	return []DirectoryConfig{DirectoryDefault, DirectoryCustom}
}

// IsValid reports whether d is inside the directory-config domain.
func (d DirectoryConfig) IsValid() bool {
	return d == DirectoryDefault || d == DirectoryCustom
}

// Configuration is one concrete selection across all option axes.
// It is the unit of the generated compatibility matrix.
type Configuration struct {
	Frontend        Frontend        `json:"frontend" yaml:"frontend"`
	DatabaseEngine  DatabaseEngine  `json:"databaseEngine" yaml:"database_engine"`
	ORM             ORM             `json:"orm" yaml:"orm"`
	DatabaseHost    DatabaseHost    `json:"databaseHost" yaml:"database_host"`
	AuthProvider    AuthProvider    `json:"authProvider" yaml:"auth_provider"`
	CodeQualityTool CodeQualityTool `json:"codeQualityTool,omitempty" yaml:"code_quality_tool,omitempty"`
	DirectoryConfig DirectoryConfig `json:"directoryConfig" yaml:"directory_config"`
	UseTailwind     bool            `json:"useTailwind" yaml:"use_tailwind"`
}
