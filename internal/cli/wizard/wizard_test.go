package wizard

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/samber/lo"

	"github.com/absolutejs/create-absolutejs/internal/ui"
	"github.com/absolutejs/create-absolutejs/pkg/models"
)

func values(opts []Option) []string {
	return lo.Map(opts, func(o Option, _ int) string { return o.Value })
}

func question(t *testing.T, qs []Question, id string) Question {
	t.Helper()
	q, ok := lo.Find(qs, func(q Question) bool { return q.ID == id })
	if !ok {
		t.Fatalf("question %q not found", id)
	}
	return q
}

func TestDefaultQuestions(t *testing.T) {
	t.Parallel()

	withName := DefaultQuestions(true)
	if withName[0].ID != IDProjectName {
		t.Errorf("first question = %q, want project name", withName[0].ID)
	}
	if lo.ContainsBy(DefaultQuestions(false), func(q Question) bool { return q.ID == IDProjectName }) {
		t.Error("project name asked although given")
	}

	ids := lo.Map(withName, func(q Question, _ int) string { return q.ID })
	if len(lo.Uniq(ids)) != len(ids) {
		t.Errorf("duplicate question IDs: %v", ids)
	}
	if lo.Contains(ids, frontendDirPrefix+string(models.FrontendAngular)) {
		t.Error("directory question for an unimplemented frontend")
	}

	for _, q := range withName {
		if (q.Type == QuestionTypeSelect || q.Type == QuestionTypeMultiSelect) && q.Options == nil {
			t.Errorf("select question %q has no options", q.ID)
		}
	}
}

func TestFrontendOptionsExcludeUnimplemented(t *testing.T) {
	t.Parallel()

	want := []string{"react", "vue", "svelte", "html", "htmx"}
	if diff := cmp.Diff(want, values(frontendOptions())); diff != "" {
		t.Errorf("frontend options mismatch:\n%s", diff)
	}
}

func TestORMOptionsFollowRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		engine models.DatabaseEngine
		want   []string
	}{
		{models.EnginePostgreSQL, []string{"drizzle", "none"}},
		{models.EngineMongoDB, []string{"none"}},
		{models.EngineNone, []string{"none"}},
	}
	for _, tt := range tests {
		o := models.DefaultProjectOptions("app")
		o.DatabaseEngine = tt.engine
		if diff := cmp.Diff(tt.want, values(ormOptions(&o))); diff != "" {
			t.Errorf("ormOptions(%s) mismatch:\n%s", tt.engine, diff)
		}
	}
}

func TestHostOptionsFollowRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		engine models.DatabaseEngine
		orm    models.ORM
		want   []string
	}{
		{models.EnginePostgreSQL, models.ORMDrizzle, []string{"neon", "planetscale", "none"}},
		{models.EngineMySQL, models.ORMNone, []string{"planetscale", "none"}},
		{models.EngineSQLite, models.ORMDrizzle, []string{"turso", "none"}},
		{models.EngineMongoDB, models.ORMNone, []string{"none"}},
	}
	for _, tt := range tests {
		o := models.DefaultProjectOptions("app")
		o.DatabaseEngine, o.ORM = tt.engine, tt.orm
		if diff := cmp.Diff(tt.want, values(hostOptions(&o))); diff != "" {
			t.Errorf("hostOptions(%s, %s) mismatch:\n%s", tt.engine, tt.orm, diff)
		}
	}
}

func TestApplyValue(t *testing.T) {
	t.Parallel()

	o := models.DefaultProjectOptions("")
	answers := map[string]string{
		IDProjectName:              " shop ",
		IDFrontends:                "react,htmx",
		IDDirectoryConfig:          "custom",
		frontendDirPrefix + "htmx": " admin ",
		IDDatabaseEngine:           "postgresql",
		IDORM:                      "drizzle",
		IDDatabaseHost:             "neon",
		IDAuthProvider:             "absoluteAuth",
		IDCodeQuality:              "",
		IDTailwind:                 "true",
		IDPackageManager:           "pnpm",
		IDInitGit:                  "false",
		IDInstall:                  "false",
		IDStartDatabase:            "true",
	}
	for id, v := range answers {
		applyValue(id, v, &o)
	}

	want := models.ProjectOptions{
		ProjectName:         "shop",
		Frontends:           []models.Frontend{models.FrontendReact, models.FrontendHTMX},
		FrontendDirectories: map[models.Frontend]string{models.FrontendHTMX: "admin"},
		DatabaseEngine:      models.EnginePostgreSQL,
		ORM:                 models.ORMDrizzle,
		DatabaseHost:        models.HostNeon,
		AuthProvider:        models.AuthAbsolute,
		CodeQualityTool:     models.QualityNone,
		DirectoryConfig:     models.DirectoryCustom,
		UseTailwind:         true,
		PackageManager:      "pnpm",
		FormatFiles:         true,
		StartDatabase:       true,
	}
	if diff := cmp.Diff(want, o); diff != "" {
		t.Errorf("options mismatch (-want +got):\n%s", diff)
	}

	for id, v := range answers {
		if id == IDProjectName || id == frontendDirPrefix+"htmx" {
			continue
		}
		if got := currentValue(id, &o); got != v {
			t.Errorf("currentValue(%s) = %q, want %q", id, got, v)
		}
	}
}

func TestApplyValueNoEngineResetsDatabaseAxes(t *testing.T) {
	t.Parallel()

	o := models.DefaultProjectOptions("app")
	o.ORM, o.DatabaseHost = models.ORMDrizzle, models.HostTurso
	applyValue(IDDatabaseEngine, "none", &o)
	if o.ORM != models.ORMNone || o.DatabaseHost != models.HostNone {
		t.Errorf("orm/host not reset: %s/%s", o.ORM, o.DatabaseHost)
	}
}

func TestApplyValueEngineDropsIncompatibleAnswers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		orm      models.ORM
		host     models.DatabaseHost
		engine   string
		wantORM  models.ORM
		wantHost models.DatabaseHost
	}{
		{"drizzle kept for postgres", models.ORMDrizzle, models.HostNeon, "postgresql", models.ORMDrizzle, models.HostNeon},
		{"drizzle dropped for mongodb", models.ORMDrizzle, models.HostNone, "mongodb", models.ORMNone, models.HostNone},
		{"turso dropped for postgres", models.ORMDrizzle, models.HostTurso, "postgresql", models.ORMDrizzle, models.HostNone},
		{"planetscale kept for mysql", models.ORMNone, models.HostPlanetScale, "mysql", models.ORMNone, models.HostPlanetScale},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			o := models.DefaultProjectOptions("app")
			o.ORM, o.DatabaseHost = tt.orm, tt.host
			applyValue(IDDatabaseEngine, tt.engine, &o)
			if o.ORM != tt.wantORM || o.DatabaseHost != tt.wantHost {
				t.Errorf("orm/host = %s/%s, want %s/%s", o.ORM, o.DatabaseHost, tt.wantORM, tt.wantHost)
			}
		})
	}
}

func TestHostOptionsDescribeServedEngines(t *testing.T) {
	t.Parallel()

	o := models.DefaultProjectOptions("app")
	o.DatabaseEngine = models.EnginePostgreSQL
	got := lo.SliceToMap(hostOptions(&o), func(opt Option) (string, string) { return opt.Value, opt.Desc })
	want := map[string]string{
		"neon":        "serves postgresql",
		"planetscale": "serves postgresql, mysql",
		"none":        "",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("host descriptions mismatch:\n%s", diff)
	}
}

func TestConditions(t *testing.T) {
	t.Parallel()

	qs := DefaultQuestions(false)
	o := models.DefaultProjectOptions("app")

	if question(t, qs, IDORM).Condition(&o) {
		t.Error("ORM asked without a database")
	}
	dir := question(t, qs, frontendDirPrefix+"react")
	if dir.Condition(&o) {
		t.Error("directory asked with default layout")
	}
	o.DirectoryConfig = models.DirectoryCustom
	if !dir.Condition(&o) {
		t.Error("directory not asked with custom layout")
	}
	if question(t, qs, frontendDirPrefix+"vue").Condition(&o) {
		t.Error("directory asked for an unselected frontend")
	}

	orm := question(t, qs, IDORM)
	o.DatabaseEngine = models.EngineMongoDB
	if orm.Condition(&o) {
		t.Error("ORM asked for an engine drizzle does not support")
	}
	o.DatabaseEngine = models.EngineGel
	if !orm.Condition(&o) {
		t.Error("ORM not asked for gel")
	}

	start := question(t, qs, IDStartDatabase)
	o.DatabaseEngine = models.EngineSQLite
	if start.Condition(&o) {
		t.Error("start database asked for sqlite")
	}
	o.DatabaseEngine = models.EnginePostgreSQL
	if !start.Condition(&o) {
		t.Error("start database not asked for local postgres")
	}
}

func TestBuildField(t *testing.T) {
	t.Parallel()

	o := models.DefaultProjectOptions("app")
	qs := DefaultQuestions(true)
	tests := []struct {
		id   string
		want string
	}{
		{IDProjectName, "*huh.Input"},
		{IDFrontends, "*huh.MultiSelect[string]"},
		{IDDatabaseEngine, "*huh.Select[string]"},
		{IDTailwind, "*huh.Confirm"},
	}
	for _, tt := range tests {
		q := question(t, qs, tt.id)
		field, commit := buildField(&q, &o)
		if got := fmt.Sprintf("%T", field); got != tt.want {
			t.Errorf("%s: field = %s, want %s", tt.id, got, tt.want)
		}

		// Committing an untouched field keeps the prefilled answer.
		before := currentValue(tt.id, &o)
		commit()
		if got := currentValue(tt.id, &o); got != before {
			t.Errorf("%s: commit changed %q to %q", tt.id, before, got)
		}
	}
}

func TestRun(t *testing.T) {
	t.Parallel()

	o := models.DefaultProjectOptions("app")
	if err := Run(context.Background(), nil, &o, nil); !errors.Is(err, ErrNoQuestions) {
		t.Errorf("Run(nil) error = %v, want ErrNoQuestions", err)
	}

	skipped := []Question{{ID: IDORM, Type: QuestionTypeSelect, Condition: func(*models.ProjectOptions) bool { return false }}}
	if err := Run(context.Background(), skipped, &o, ui.NewTheme(ui.ThemeConfig{})); err != nil {
		t.Errorf("Run() with only skipped questions error = %v", err)
	}
}

func TestHuhTheme(t *testing.T) {
	t.Parallel()

	if newHuhTheme(nil) == nil || newHuhTheme(ui.NewTheme(ui.ThemeConfig{})) == nil {
		t.Error("newHuhTheme returned nil")
	}
}
