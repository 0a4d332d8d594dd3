package matrix

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/absolutejs/create-absolutejs/internal/compat"
	"github.com/absolutejs/create-absolutejs/pkg/models"
)

func TestGenerate_Properties(t *testing.T) {
	t.Parallel()

	configs := Generate()
	if len(configs) == 0 {
		t.Fatal("Generate() returned no configurations")
	}

	drizzle := compat.DrizzleCompatibleEngines()

	for i, c := range configs {
		if !compat.IsValid(c) {
			t.Errorf("entry %d is not valid: %+v", i, c)
		}
		if c.ORM == models.ORMPrisma || c.CodeQualityTool == models.QualityBiome || c.Frontend == models.FrontendAngular {
			t.Errorf("entry %d uses an excluded feature: %+v", i, c)
		}
		if c.ORM == models.ORMDrizzle && !containsEngine(drizzle, c.DatabaseEngine) {
			t.Errorf("entry %d: drizzle with %s", i, c.DatabaseEngine)
		}
		if c.DatabaseEngine == models.EngineNone && (c.ORM != models.ORMNone || c.DatabaseHost != models.HostNone) {
			t.Errorf("entry %d: engine none with orm=%s host=%s", i, c.ORM, c.DatabaseHost)
		}
		switch c.DatabaseHost {
		case models.HostTurso:
			if c.DatabaseEngine != models.EngineSQLite {
				t.Errorf("entry %d: turso with %s", i, c.DatabaseEngine)
			}
		case models.HostNeon:
			if c.DatabaseEngine != models.EnginePostgreSQL {
				t.Errorf("entry %d: neon with %s", i, c.DatabaseEngine)
			}
		case models.HostPlanetScale:
			if c.DatabaseEngine != models.EnginePostgreSQL && c.DatabaseEngine != models.EngineMySQL {
				t.Errorf("entry %d: planetscale with %s", i, c.DatabaseEngine)
			}
		}
	}
}

func TestGenerate_Count(t *testing.T) {
	t.Parallel()

	// 23 engine/orm/host combinations survive the rules, times 5 frontends,
	// 2 auth providers, 2 code-quality tools, 2 directory configs and tailwind on/off.
	const want = 23 * 5 * 2 * 2 * 2 * 2
	if got := len(Generate()); got != want {
		t.Errorf("len(Generate()) = %d, want %d", got, want)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	t.Parallel()

	first := Generate()
	second := Generate()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Generate() not deterministic (-first +second):\n%s", diff)
	}
}

func TestGenerateFrom_Order(t *testing.T) {
	t.Parallel()

	d := Domains{
		Frontends:        []models.Frontend{models.FrontendReact, models.FrontendVue},
		DatabaseEngines:  []models.DatabaseEngine{models.EngineNone},
		ORMs:             []models.ORM{models.ORMNone},
		DatabaseHosts:    []models.DatabaseHost{models.HostNone},
		AuthProviders:    []models.AuthProvider{models.AuthNone},
		CodeQualityTools: []models.CodeQualityTool{models.QualityNone},
		DirectoryConfigs: []models.DirectoryConfig{models.DirectoryDefault},
	}

	got := GenerateFrom(d)
	base := models.Configuration{
		DatabaseEngine:  models.EngineNone,
		ORM:             models.ORMNone,
		DatabaseHost:    models.HostNone,
		AuthProvider:    models.AuthNone,
		DirectoryConfig: models.DirectoryDefault,
	}
	want := []models.Configuration{
		withFrontend(base, models.FrontendReact, false),
		withFrontend(base, models.FrontendReact, true),
		withFrontend(base, models.FrontendVue, false),
		withFrontend(base, models.FrontendVue, true),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("GenerateFrom() mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateFrom_UnknownValuesFiltered(t *testing.T) {
	t.Parallel()

	d := DefaultDomains()
	d.Frontends = []models.Frontend{"solid", models.FrontendAngular}
	if got := GenerateFrom(d); len(got) != 0 {
		t.Errorf("GenerateFrom() with only unsupported frontends returned %d entries", len(got))
	}
}

func withFrontend(c models.Configuration, f models.Frontend, tailwind bool) models.Configuration {
	c.Frontend = f
	c.UseTailwind = tailwind
	return c
}

func containsEngine(list []models.DatabaseEngine, e models.DatabaseEngine) bool {
	for _, v := range list {
		if v == e {
			return true
		}
	}
	return false
}
