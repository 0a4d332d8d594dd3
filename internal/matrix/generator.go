package matrix

import (
	"github.com/absolutejs/create-absolutejs/internal/compat"
	"github.com/absolutejs/create-absolutejs/pkg/models"
)

// Domains holds the values iterated for every axis. The iteration order of
// each slice determines the order of the generated matrix.
type Domains struct {
	Frontends        []models.Frontend
	DatabaseEngines  []models.DatabaseEngine
	ORMs             []models.ORM
	DatabaseHosts    []models.DatabaseHost
	AuthProviders    []models.AuthProvider
	CodeQualityTools []models.CodeQualityTool
	DirectoryConfigs []models.DirectoryConfig
}

// DefaultDomains returns the full option domains, unimplemented values included.
// Filtering is left to the compatibility rules.
func DefaultDomains() Domains {
	return Domains{
		Frontends:        models.AllFrontends(),
		DatabaseEngines:  models.AllDatabaseEngines(),
		ORMs:             models.AllORMs(),
		DatabaseHosts:    models.AllDatabaseHosts(),
		AuthProviders:    models.AllAuthProviders(),
		CodeQualityTools: models.AllCodeQualityTools(),
		DirectoryConfigs: models.AllDirectoryConfigs(),
	}
}

// Generate enumerates the default domains and returns every supported configuration.
func Generate() []models.Configuration {
	return GenerateFrom(DefaultDomains())
}

// GenerateFrom enumerates the Cartesian product of d, outermost to innermost
// frontend, databaseEngine, orm, databaseHost, authProvider, codeQualityTool,
// directoryConfig, useTailwind, and keeps the configurations accepted by
// compat.IsValid. The result is deterministic for a given d.
func GenerateFrom(d Domains) []models.Configuration {
	var out []models.Configuration
	for _, frontend := range d.Frontends {
		for _, engine := range d.DatabaseEngines {
			for _, orm := range d.ORMs {
				for _, host := range d.DatabaseHosts {
					for _, auth := range d.AuthProviders {
						for _, quality := range d.CodeQualityTools {
							for _, dir := range d.DirectoryConfigs {
								for _, tailwind := range []bool{false, true} {
									c := models.Configuration{
										Frontend:        frontend,
										DatabaseEngine:  engine,
										ORM:             orm,
										DatabaseHost:    host,
										AuthProvider:    auth,
										CodeQualityTool: quality,
										DirectoryConfig: dir,
										UseTailwind:     tailwind,
									}
									if compat.IsValid(c) {
										out = append(out, c)
									}
								}
							}
						}
					}
				}
			}
		}
	}
	return out
}
