package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/absolutejs/create-absolutejs/pkg/models"
)

// errNameRequired is returned in headless mode when no project name was given.
var errNameRequired = errors.New("a project name is required: pass it as an argument or in the preset")

// addOptionFlags registers one flag per option axis on cmd.
func addOptionFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("preset", "", "YAML file with project options; flags override it")
	f.StringSlice("frontend", nil, "Frontend framework, repeatable (react, vue, svelte, html, htmx)")
	f.StringToString("frontend-dir", nil, "Directory of a frontend below src/frontend, e.g. react=web")
	f.String("database", "", "Database engine (postgresql, mysql, sqlite, mongodb, mariadb, gel, singlestore, cockroachdb, mssql, none)")
	f.String("orm", "", "ORM (drizzle, none)")
	f.String("host", "", "Database host (neon, planetscale, turso, none)")
	f.String("auth", "", "Authentication provider (absoluteAuth, none)")
	f.String("quality", "", "Code quality tool (eslint+prettier, none)")
	f.Bool("tailwind", false, "Add Tailwind CSS")
	f.String("package-manager", "", "Package manager (bun, npm, pnpm, yarn)")
	f.Bool("no-git", false, "Do not initialize a git repository")
	f.Bool("no-install", false, "Do not install dependencies")
	f.Bool("no-format", false, "Do not run the formatter after installing")
	f.Bool("start-database", false, "Start the local database container after scaffolding")
}

// loadPreset reads project options from a YAML file over the defaults.
// Unknown keys are rejected.
func loadPreset(path string) (models.ProjectOptions, error) {
	opts := models.DefaultProjectOptions("")

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return opts, fmt.Errorf("read preset: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil {
		return opts, fmt.Errorf("parse preset %s: %w", path, err)
	}
	return opts, nil
}

// collectOptions builds the request from defaults, the preset and the
// flags the user actually set, in that order. A positional name wins over
// the preset's.
func collectOptions(cmd *cobra.Command, args []string) (models.ProjectOptions, error) {
	opts := models.DefaultProjectOptions("")
	if path := getStringFlag(cmd, "preset"); path != "" {
		preset, err := loadPreset(path)
		if err != nil {
			return opts, err
		}
		opts = preset
	}
	if len(args) > 0 {
		opts.ProjectName = strings.TrimSpace(args[0])
	}

	f := cmd.Flags()
	if f.Changed("frontend") {
		values, _ := f.GetStringSlice("frontend")
		opts.Frontends = opts.Frontends[:0:0]
		for _, v := range values {
			opts.Frontends = append(opts.Frontends, models.Frontend(strings.ToLower(strings.TrimSpace(v))))
		}
	}
	if f.Changed("frontend-dir") {
		dirs, _ := f.GetStringToString("frontend-dir")
		opts.FrontendDirectories = make(map[models.Frontend]string, len(dirs))
		for k, v := range dirs {
			opts.FrontendDirectories[models.Frontend(strings.ToLower(k))] = v
		}
		opts.DirectoryConfig = models.DirectoryCustom
	}
	if f.Changed("database") {
		opts.DatabaseEngine = models.DatabaseEngine(getStringFlag(cmd, "database"))
		if !opts.HasDatabase() && !f.Changed("orm") && !f.Changed("host") {
			opts.ORM, opts.DatabaseHost = models.ORMNone, models.HostNone
		}
	}
	if f.Changed("orm") {
		opts.ORM = models.ORM(getStringFlag(cmd, "orm"))
	}
	if f.Changed("host") {
		opts.DatabaseHost = models.DatabaseHost(getStringFlag(cmd, "host"))
	}
	if f.Changed("auth") {
		opts.AuthProvider = models.AuthProvider(getStringFlag(cmd, "auth"))
	}
	if f.Changed("quality") {
		opts.CodeQualityTool = parseQuality(getStringFlag(cmd, "quality"))
	}
	if f.Changed("tailwind") {
		opts.UseTailwind = getBoolFlag(cmd, "tailwind")
	}
	if f.Changed("package-manager") {
		opts.PackageManager = getStringFlag(cmd, "package-manager")
	}
	if getBoolFlag(cmd, "no-git") {
		opts.InitGit = false
	}
	if getBoolFlag(cmd, "no-install") {
		opts.InstallDependencies = false
	}
	if getBoolFlag(cmd, "no-format") {
		opts.FormatFiles = false
	}
	if f.Changed("start-database") {
		opts.StartDatabase = getBoolFlag(cmd, "start-database")
	}
	return opts, nil
}

// parseQuality maps the "none" spelling used on the command line to the
// empty tool value.
func parseQuality(v string) models.CodeQualityTool {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "none" {
		return models.QualityNone
	}
	return models.CodeQualityTool(v)
}
