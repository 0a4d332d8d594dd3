package template

import "sort"

// Pinned versions written into package.json. Network version checks are
// left to the package manager.
var versions = map[string]string{
	"elysia":                   "^1.3.0",
	"@elysiajs/static":         "^1.3.0",
	"@absolutejs/absolute":     "^0.9.0",
	"@absolutejs/auth":         "^0.6.0",
	"react":                    "^19.1.0",
	"react-dom":                "^19.1.0",
	"@types/react":             "^19.1.0",
	"@types/react-dom":         "^19.1.0",
	"vue":                      "^3.5.0",
	"svelte":                   "^5.33.0",
	"htmx.org":                 "^2.0.4",
	"drizzle-orm":              "^0.44.0",
	"drizzle-kit":              "^0.31.0",
	"postgres":                 "^3.4.5",
	"mysql2":                   "^3.14.0",
	"@libsql/client":           "^0.15.0",
	"@neondatabase/serverless": "^1.0.0",
	"@planetscale/database":    "^1.19.0",
	"gel":                      "^2.1.0",
	"mongodb":                  "^6.16.0",
	"mssql":                    "^11.0.1",
	"tailwindcss":              "^4.1.0",
	"@tailwindcss/postcss":     "^4.1.0",
	"eslint":                   "^9.28.0",
	"@eslint/js":               "^9.28.0",
	"typescript-eslint":        "^8.33.0",
	"prettier":                 "^3.5.3",
	"typescript":               "^5.8.3",
	"bun-types":                "^1.2.15",
}

// engineDrivers maps an engine or host to its JavaScript client package.
var engineDrivers = map[string]string{
	"postgresql":  "postgres",
	"cockroachdb": "postgres",
	"mysql":       "mysql2",
	"mariadb":     "mysql2",
	"singlestore": "mysql2",
	"sqlite":      "@libsql/client",
	"gel":         "gel",
	"mongodb":     "mongodb",
	"mssql":       "mssql",
	"neon":        "@neondatabase/serverless",
	"planetscale": "@planetscale/database",
	"turso":       "@libsql/client",
}

// dependenciesFor derives package.json dependencies from the selections.
func dependenciesFor(c *TemplateContext) (deps, devDeps []Dependency) {
	runtime := []string{"elysia", "@elysiajs/static", "@absolutejs/absolute"}
	dev := []string{"typescript", "bun-types"}

	for _, f := range c.Frontends {
		switch f.Name {
		case "react":
			runtime = append(runtime, "react", "react-dom")
			dev = append(dev, "@types/react", "@types/react-dom")
		case "vue":
			runtime = append(runtime, "vue")
		case "svelte":
			runtime = append(runtime, "svelte")
		case "htmx":
			runtime = append(runtime, "htmx.org")
		}
	}
	if c.UseAuth {
		runtime = append(runtime, "@absolutejs/auth")
	}
	if c.HasDatabase() {
		driverKey := c.DatabaseEngine
		if c.DatabaseHost != "" && c.DatabaseHost != "none" {
			driverKey = c.DatabaseHost
		}
		if d, ok := engineDrivers[driverKey]; ok {
			runtime = append(runtime, d)
		}
	}
	if c.UseDrizzle {
		runtime = append(runtime, "drizzle-orm")
		dev = append(dev, "drizzle-kit")
	}
	if c.UseTailwind {
		dev = append(dev, "tailwindcss", "@tailwindcss/postcss")
	}
	if c.UseESLintPrettier {
		dev = append(dev, "eslint", "@eslint/js", "typescript-eslint", "prettier")
	}

	return pin(runtime), pin(dev)
}

func pin(names []string) []Dependency {
	seen := make(map[string]bool, len(names))
	out := make([]Dependency, 0, len(names))
	for _, n := range names {
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, Dependency{Name: n, Version: versions[n]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
