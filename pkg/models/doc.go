// Package models provides the option domains and configuration types shared
// by the create-absolutejs packages.
//
// # Option Domains
//
// Every scaffold axis is a string enum with a fixed domain:
//   - [Frontend]: react, vue, svelte, html, htmx, angular
//   - [DatabaseEngine]: postgresql, mysql, sqlite, mongodb, mariadb, gel, singlestore, cockroachdb, mssql, none
//   - [ORM]: drizzle, prisma, none
//   - [DatabaseHost]: neon, planetscale, turso, none
//   - [AuthProvider]: absoluteAuth, none
//   - [CodeQualityTool]: eslint+prettier, biome, or empty for no tool
//
// Values that are part of a domain but cannot be generated yet (angular,
// prisma, biome) report false from IsImplemented:
//
//	f := models.FrontendAngular
//	f.IsValid()       // true
//	f.IsImplemented() // false
//
// # Configurations
//
// [Configuration] is a single selection across all axes and is the element
// type of the compatibility matrix. [ProjectOptions] is a scaffold request
// that may select several frontends; [ProjectOptions.Configurations] expands
// it into one Configuration per frontend.
package models
