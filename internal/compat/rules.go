package compat

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/absolutejs/create-absolutejs/pkg/models"
)

// drizzleEngines lists the engines Drizzle can generate a schema for.
var drizzleEngines = []models.DatabaseEngine{
	models.EngineGel,
	models.EngineMySQL,
	models.EnginePostgreSQL,
	models.EngineSQLite,
	models.EngineSingleStore,
}

// hostEngines maps each managed host to the engines it can serve.
// Hosts missing from the table accept any engine.
var hostEngines = map[models.DatabaseHost][]models.DatabaseEngine{
	models.HostTurso:       {models.EngineSQLite},
	models.HostNeon:        {models.EnginePostgreSQL},
	models.HostPlanetScale: {models.EnginePostgreSQL, models.EngineMySQL},
}

// DrizzleCompatibleEngines returns a copy of the engines Drizzle supports.
func DrizzleCompatibleEngines() []models.DatabaseEngine {
	return append([]models.DatabaseEngine(nil), drizzleEngines...)
}

// HostAllowedEngines returns the engines allowed for host and whether the
// host has an entry in the table at all.
func HostAllowedEngines(host models.DatabaseHost) ([]models.DatabaseEngine, bool) {
	engines, ok := hostEngines[host]
	if !ok {
		return nil, false
	}
	return append([]models.DatabaseEngine(nil), engines...), true
}

// IsValid reports whether c is a supported configuration.
func IsValid(c models.Configuration) bool {
	return Check(c) == nil
}

// @MX:ANCHOR: [AUTO] Check is the single source of truth for option compatibility.
// @MX:REASON: [AUTO] used by the matrix generator, the matrix validator and the scaffold orchestrator
// Check evaluates the rules in a fixed order and returns the first violation:
// domain and implementation status, ORM/engine, no-engine, host/engine.
func Check(c models.Configuration) error {
	if err := checkDomain(c); err != nil {
		return err
	}
	if err := checkORMEngine(c); err != nil {
		return err
	}
	if err := checkNoEngine(c); err != nil {
		return err
	}
	return checkHostEngine(c)
}

// checkDomain rejects values outside their domain and values that are not
// implemented. No axis value passes implicitly.
func checkDomain(c models.Configuration) error {
	type axis struct {
		field       string
		value       string
		valid       bool
		implemented bool
	}
	axes := []axis{
		{"frontend", string(c.Frontend), c.Frontend.IsValid(), c.Frontend.IsImplemented()},
		{"databaseEngine", string(c.DatabaseEngine), c.DatabaseEngine.IsValid(), c.DatabaseEngine.IsImplemented()},
		{"orm", string(c.ORM), c.ORM.IsValid(), c.ORM.IsImplemented()},
		{"databaseHost", string(c.DatabaseHost), c.DatabaseHost.IsValid(), c.DatabaseHost.IsImplemented()},
		{"authProvider", string(c.AuthProvider), c.AuthProvider.IsValid(), c.AuthProvider.IsImplemented()},
		{"codeQualityTool", string(c.CodeQualityTool), c.CodeQualityTool.IsValid(), c.CodeQualityTool.IsImplemented()},
		{"directoryConfig", string(c.DirectoryConfig), c.DirectoryConfig.IsValid(), c.DirectoryConfig.IsValid()},
	}
	for _, a := range axes {
		if !a.valid {
			return &RuleViolation{
				Rule:    RuleDomain,
				Fields:  []string{a.field},
				Message: fmt.Sprintf("unknown value %q", a.value),
				Wrapped: ErrUnknownValue,
			}
		}
		if !a.implemented {
			return &RuleViolation{
				Rule:    RuleDomain,
				Fields:  []string{a.field},
				Message: fmt.Sprintf("%q is not implemented yet", a.value),
				Wrapped: ErrUnimplemented,
			}
		}
	}
	return nil
}

func checkORMEngine(c models.Configuration) error {
	if c.ORM != models.ORMDrizzle || lo.Contains(drizzleEngines, c.DatabaseEngine) {
		return nil
	}
	return &RuleViolation{
		Rule:    RuleORMEngine,
		Fields:  []string{"orm", "databaseEngine"},
		Message: fmt.Sprintf("drizzle does not support %q", c.DatabaseEngine),
		Wrapped: ErrIncompatible,
	}
}

func checkNoEngine(c models.Configuration) error {
	if c.DatabaseEngine != models.EngineNone {
		return nil
	}
	if c.ORM != models.ORMNone {
		return &RuleViolation{
			Rule:    RuleNoEngine,
			Fields:  []string{"databaseEngine", "orm"},
			Message: fmt.Sprintf("orm %q requires a database engine", c.ORM),
			Wrapped: ErrIncompatible,
		}
	}
	if c.DatabaseHost != models.HostNone {
		return &RuleViolation{
			Rule:    RuleNoEngine,
			Fields:  []string{"databaseEngine", "databaseHost"},
			Message: fmt.Sprintf("host %q requires a database engine", c.DatabaseHost),
			Wrapped: ErrIncompatible,
		}
	}
	return nil
}

// checkHostEngine applies the host table. A table entry overrides the
// default that an unknown host accepts any engine.
func checkHostEngine(c models.Configuration) error {
	if c.DatabaseHost == models.HostNone {
		return nil
	}
	allowed, ok := hostEngines[c.DatabaseHost]
	if !ok || lo.Contains(allowed, c.DatabaseEngine) {
		return nil
	}
	return &RuleViolation{
		Rule:    RuleHostEngine,
		Fields:  []string{"databaseHost", "databaseEngine"},
		Message: fmt.Sprintf("host %q does not serve %q", c.DatabaseHost, c.DatabaseEngine),
		Wrapped: ErrIncompatible,
	}
}
