// Package database decides how the selected database is provisioned and
// writes the files under db/: a compose definition for local containers,
// a Drizzle schema and config, or a local SQLite file.
package database

import (
	"github.com/absolutejs/create-absolutejs/pkg/models"
)

// Plan is the provisioning decision for one (engine, orm, host) selection.
// Several flags can be set at once: a Drizzle-managed local postgres gets
// both a container and the Drizzle files.
type Plan struct {
	Engine models.DatabaseEngine
	ORM    models.ORM
	Host   models.DatabaseHost

	// Container is set when the engine runs in a local container.
	Container bool

	// SQLiteFile is set when a local SQLite file is created directly.
	SQLiteFile bool

	// Drizzle is set when a Drizzle schema and config are generated.
	Drizzle bool

	// Hosted is set when a managed host serves the database.
	Hosted bool

	// Start is set when the local container should be started after the
	// files are written. It implies Container.
	Start bool
}

// NewPlan derives the plan from validated options.
func NewPlan(opts models.ProjectOptions) Plan {
	p := PlanFor(opts.DatabaseEngine, opts.ORM, opts.DatabaseHost)
	p.Start = p.Container && opts.StartDatabase
	return p
}

// PlanFor derives the plan from the three database axes.
func PlanFor(engine models.DatabaseEngine, orm models.ORM, host models.DatabaseHost) Plan {
	p := Plan{Engine: engine, ORM: orm, Host: host}
	if engine == models.EngineNone || engine == "" {
		return p
	}

	local := host == models.HostNone || host == ""
	p.Hosted = !local
	p.Container = local && engine != models.EngineSQLite
	p.SQLiteFile = local && engine == models.EngineSQLite && orm != models.ORMDrizzle
	p.Drizzle = orm == models.ORMDrizzle
	return p
}

// Empty reports whether nothing needs to be provisioned.
func (p Plan) Empty() bool {
	return !p.Container && !p.SQLiteFile && !p.Drizzle && !p.Hosted
}
