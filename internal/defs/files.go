package defs

// Common file names written into generated projects.
const (
	// PackageJSON is the project manifest read by every package manager.
	PackageJSON = "package.json"

	// TSConfigJSON is the TypeScript compiler configuration.
	TSConfigJSON = "tsconfig.json"

	// ReadmeMD is the generated project README.
	ReadmeMD = "README.md"

	// GitIgnore lists files excluded from version control.
	GitIgnore = ".gitignore"

	// EnvFile holds local connection strings such as DATABASE_URL.
	EnvFile = ".env"

	// ComposeFile is the container-compose definition for the local database.
	ComposeFile = "docker-compose.db.yml"

	// DrizzleSchema is the Drizzle ORM schema module.
	DrizzleSchema = "schema.ts"

	// DrizzleConfig is the Drizzle Kit configuration module.
	DrizzleConfig = "drizzle.config.ts"

	// SQLiteDatabase is the embedded database file for local sqlite projects.
	SQLiteDatabase = "database.sqlite"

	// InitSQL is the schema bootstrap script for local databases.
	InitSQL = "init.sql"
)

// Tool-side file names.
const (
	// SettingsYAML is the create-absolutejs settings file under the user config dir.
	SettingsYAML = "config.yaml"

	// MatrixJSON is the default file name of the generated compatibility matrix.
	MatrixJSON = "matrix.json"

	// LockSuffix is appended to a project directory name for the scaffold lock file.
	LockSuffix = ".scaffold.lock"
)
