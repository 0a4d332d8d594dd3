package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/absolutejs/create-absolutejs/internal/core/scaffold"
	"github.com/absolutejs/create-absolutejs/internal/defs"
	"github.com/absolutejs/create-absolutejs/pkg/models"
)

const markdownWidth = 80

func describeFrontends(res *scaffold.Result) string {
	parts := make([]string, 0, len(res.Directories))
	for _, dir := range res.Directories.Sorted() {
		path := defs.FrontendDir
		if dir != "" {
			path += "/" + dir
		}
		parts = append(parts, fmt.Sprintf("%s (%s)", res.Directories[dir], path))
	}
	return strings.Join(parts, ", ")
}

func describeDatabase(opts models.ProjectOptions) string {
	if !opts.HasDatabase() {
		return "none"
	}
	s := string(opts.DatabaseEngine)
	if opts.ORM != models.ORMNone && opts.ORM != "" {
		s += " + " + string(opts.ORM)
	}
	if opts.DatabaseHost != models.HostNone && opts.DatabaseHost != "" {
		s += " on " + string(opts.DatabaseHost)
	}
	return s
}

// nextStepsMarkdown lists the commands the user runs after scaffolding.
func nextStepsMarkdown(res *scaffold.Result, opts models.ProjectOptions) string {
	pm := res.PackageManager
	var steps []string
	steps = append(steps, "`cd "+opts.ProjectName+"`")
	if !opts.InstallDependencies {
		steps = append(steps, "`"+strings.Join(pm.InstallArgv(), " ")+"`")
	}
	if res.Database != nil && res.Database.ComposeFile != "" && !res.Database.Started {
		steps = append(steps, "`"+strings.Join(pm.RunArgv("db:up"), " ")+"` to start the database")
	}
	if opts.ORM == models.ORMDrizzle {
		steps = append(steps, "`"+strings.Join(pm.RunArgv("db:push"), " ")+"` to create the tables")
	}
	if opts.DatabaseHost != models.HostNone && opts.DatabaseHost != "" {
		steps = append(steps, "set `DATABASE_URL` in `.env` to your "+string(opts.DatabaseHost)+" connection string")
	}
	steps = append(steps, "`"+strings.Join(pm.RunArgv("dev"), " ")+"`")

	var b strings.Builder
	b.WriteString("## Next steps\n\n")
	for i, s := range steps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, s)
	}
	return b.String()
}

// renderMarkdown renders md for a terminal. Unstyled output, or a renderer
// failure, returns md unchanged.
func renderMarkdown(md string, styled bool) string {
	if !styled {
		return md
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(markdownWidth),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
